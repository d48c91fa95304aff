// Package structural provides shape-changing transforms: flattening
// nested sequences and seeded shuffling.
package structural

import (
	"math/rand"
)

// Flatten unnests exactly one level of contained sequences, returning
// all leaf elements in their original nested order.
func Flatten[T any](lists [][]T) []T {
	size := 0
	for _, inner := range lists {
		size += len(inner)
	}

	result := make([]T, 0, size)
	for _, inner := range lists {
		result = append(result, inner...)
	}
	return result
}

// Shuffle returns a new sequence containing the same elements in a
// pseudo-random order determined entirely by seed: the same seed and
// input always produce the same output. The generator is local to the
// call; global random state is never touched.
func Shuffle[T any](values []T, seed int64) []T {
	result := make([]T, len(values))
	copy(result, values)

	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})

	return result
}
