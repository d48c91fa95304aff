// Package file provides the file-based configuration adapter.
// It persists CLI defaults to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based storage of user defaults
package file
