package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractiveCmd_Use(t *testing.T) {
	assert.Equal(t, "interactive", interactiveCmd.Use)
}

func TestInteractiveCmd_RequiresTerminal(t *testing.T) {
	setupTestConfig(t)

	// Test processes never have a terminal on stdout.
	_, err := execute(t, "interactive")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}
