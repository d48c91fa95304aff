package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halden-labs/prepkit-cli/internal/core/domain"
)

func TestStructureCmd_Use(t *testing.T) {
	assert.Equal(t, "structure", structureCmd.Use)
	assert.Equal(t, "flatten", flattenCmd.Use)
	assert.Equal(t, "shuffle", shuffleCmd.Use)
}

func TestFlattenCmd(t *testing.T) {
	setupTestConfig(t)

	t.Run("flattens one level", func(t *testing.T) {
		out, err := execute(t, "structure", "flatten", "--lists", "[[1,2],[3,4]]")

		require.NoError(t, err)
		assert.Contains(t, out, "[1, 2, 3, 4]")
	})

	t.Run("malformed literal fails", func(t *testing.T) {
		_, err := execute(t, "structure", "flatten", "--lists", "[[1,2],[3]")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestShuffleCmd(t *testing.T) {
	setupTestConfig(t)

	t.Run("same seed gives same order", func(t *testing.T) {
		defer resetFlag(t, shuffleCmd, "seed")

		first, err := execute(t, "structure", "shuffle", "--values", "1,2,3,4,5", "--seed", "42")
		require.NoError(t, err)

		second, err := execute(t, "structure", "shuffle", "--values", "1,2,3,4,5", "--seed", "42")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("output is a permutation", func(t *testing.T) {
		defer resetFlag(t, shuffleCmd, "seed")

		out, err := execute(t, "structure", "shuffle", "--values", "1,2,3", "--seed", "7")

		require.NoError(t, err)
		for _, want := range []string{"1", "2", "3"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("configured default seed is reproducible", func(t *testing.T) {
		first, err := execute(t, "structure", "shuffle", "--values", "a,b,c,d")
		require.NoError(t, err)

		second, err := execute(t, "structure", "shuffle", "--values", "a,b,c,d")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
