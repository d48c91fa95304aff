package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halden-labs/prepkit-cli/internal/core/domain"
)

func TestNumericCmd_Use(t *testing.T) {
	assert.Equal(t, "numeric", numericCmd.Use)
	assert.Equal(t, "normalize", normalizeCmd.Use)
	assert.Equal(t, "standardize", standardizeCmd.Use)
	assert.Equal(t, "clip", clipCmd.Use)
	assert.Equal(t, "to-int", toIntCmd.Use)
	assert.Equal(t, "log-transform", logTransformCmd.Use)
}

func TestNormalizeCmd(t *testing.T) {
	setupTestConfig(t)

	t.Run("default target range", func(t *testing.T) {
		out, err := execute(t, "numeric", "normalize", "--values", "1,2,3")

		require.NoError(t, err)
		assert.Contains(t, out, "[0.0000, 0.5000, 1.0000]")
	})

	t.Run("explicit target range", func(t *testing.T) {
		defer resetFlag(t, normalizeCmd, "new-min")
		defer resetFlag(t, normalizeCmd, "new-max")

		out, err := execute(t, "numeric", "normalize", "--values", "1,2", "--new-min", "10", "--new-max", "20")

		require.NoError(t, err)
		assert.Contains(t, out, "[10.0000, 20.0000]")
	})

	t.Run("degenerate range fails", func(t *testing.T) {
		_, err := execute(t, "numeric", "normalize", "--values", "5,5,5")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDegenerateRange)
	})

	t.Run("non-numeric input rejected by adapter", func(t *testing.T) {
		_, err := execute(t, "numeric", "normalize", "--values", "1,a,3")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestStandardizeCmd(t *testing.T) {
	setupTestConfig(t)

	t.Run("standardises values", func(t *testing.T) {
		out, err := execute(t, "numeric", "standardize", "--values", "1,2,3")

		require.NoError(t, err)
		assert.Contains(t, out, "0.0000")
	})

	t.Run("zero variance fails", func(t *testing.T) {
		_, err := execute(t, "numeric", "standardize", "--values", "4,4")

		assert.ErrorIs(t, err, domain.ErrDegenerateRange)
	})
}

func TestClipCmd(t *testing.T) {
	setupTestConfig(t)

	t.Run("clamps into bounds", func(t *testing.T) {
		defer resetFlag(t, clipCmd, "min-value")
		defer resetFlag(t, clipCmd, "max-value")

		out, err := execute(t, "numeric", "clip", "--values", "1,5,10", "--min-value", "2", "--max-value", "8")

		require.NoError(t, err)
		assert.Contains(t, out, "[2.0000, 5.0000, 8.0000]")
	})

	t.Run("inverted bounds fail", func(t *testing.T) {
		defer resetFlag(t, clipCmd, "min-value")
		defer resetFlag(t, clipCmd, "max-value")

		_, err := execute(t, "numeric", "clip", "--values", "1,2", "--min-value", "9", "--max-value", "1")

		assert.ErrorIs(t, err, domain.ErrInvalidRange)
	})
}

func TestToIntCmd(t *testing.T) {
	setupTestConfig(t)

	out, err := execute(t, "numeric", "to-int", "--values", "1,2,3,a")

	require.NoError(t, err)
	assert.Contains(t, out, "[1, 2, 3]")
}

func TestLogTransformCmd(t *testing.T) {
	setupTestConfig(t)

	t.Run("transforms positive values", func(t *testing.T) {
		out, err := execute(t, "numeric", "log-transform", "--values", "1,10,100")

		require.NoError(t, err)
		assert.Contains(t, out, "[0.0000, 2.3026, 4.6052]")
	})

	t.Run("non-positive value fails", func(t *testing.T) {
		_, err := execute(t, "numeric", "log-transform", "--values", "1,0,3")

		assert.ErrorIs(t, err, domain.ErrInvalidDomain)
	})
}

func TestNumericCmd_DecimalsFromConfig(t *testing.T) {
	store := setupTestConfig(t)
	require.NoError(t, store.SetDecimals(2))

	out, err := execute(t, "numeric", "normalize", "--values", "1,2,3")

	require.NoError(t, err)
	assert.Contains(t, out, "[0.00, 0.50, 1.00]")
}
