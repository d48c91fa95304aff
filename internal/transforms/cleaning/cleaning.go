// Package cleaning provides missing-value and duplicate handling for
// mixed sequences.
package cleaning

import (
	"github.com/halden-labs/prepkit-cli/internal/core/domain"
)

// RemoveMissing returns a new sequence with all missing elements removed.
// Relative order of the remaining elements is preserved. An empty input
// yields an empty output.
func RemoveMissing(values []domain.Value) []domain.Value {
	result := make([]domain.Value, 0, len(values))
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		result = append(result, v)
	}
	return result
}

// FillMissing returns a new sequence where every missing element is
// replaced by fill. Non-missing elements are unchanged, order preserved.
func FillMissing(values []domain.Value, fill domain.Value) []domain.Value {
	result := make([]domain.Value, len(values))
	for i, v := range values {
		if v.IsMissing() {
			result[i] = fill
		} else {
			result[i] = v
		}
	}
	return result
}

// Deduplicate returns a sequence containing each distinct value exactly
// once. Output order is NOT part of the contract: callers must not rely
// on it. The current implementation keeps first occurrences, but that is
// an artifact of the set construction, not a guarantee.
func Deduplicate[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
