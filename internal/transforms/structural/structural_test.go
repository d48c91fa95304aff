package structural

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	t.Run("one level of nesting", func(t *testing.T) {
		out := Flatten([][]int{{1, 2}, {3, 4}})
		assert.Equal(t, []int{1, 2, 3, 4}, out)
	})

	t.Run("preserves nested order", func(t *testing.T) {
		out := Flatten([][]string{{"c"}, {"a", "b"}})
		assert.Equal(t, []string{"c", "a", "b"}, out)
	})

	t.Run("empty inner lists", func(t *testing.T) {
		out := Flatten([][]int{{}, {1}, {}})
		assert.Equal(t, []int{1}, out)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Flatten[int](nil))
	})
}

func TestShuffle(t *testing.T) {
	t.Run("same seed and input give same order", func(t *testing.T) {
		in := []int{1, 2, 3, 4, 5, 6, 7, 8}

		first := Shuffle(in, 42)
		second := Shuffle(in, 42)

		assert.Equal(t, first, second)
	})

	t.Run("output is a permutation", func(t *testing.T) {
		in := []int{1, 2, 2, 3}
		out := Shuffle(in, 7)

		assert.ElementsMatch(t, in, out)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := []int{1, 2, 3, 4, 5}
		_ = Shuffle(in, 99)

		assert.Equal(t, []int{1, 2, 3, 4, 5}, in)
	})

	t.Run("different seeds usually differ", func(t *testing.T) {
		in := make([]int, 64)
		for i := range in {
			in[i] = i
		}

		a := Shuffle(in, 1)
		b := Shuffle(in, 2)

		assert.NotEqual(t, a, b)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Shuffle([]int{}, 42))
	})
}
