// Package domain defines the core value types for prepkit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Value: A single sequence element (missing, number, or text)
//   - Stopwords: A lowercased set of words excluded from text analysis
//   - The sentinel errors surfaced by the transform library
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
