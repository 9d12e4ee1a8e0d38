package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	setupTestServices(t)

	originalVersion := version
	SetVersion("test-version-1.0.0")
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "topicsearch version test-version-1.0.0")
}

func TestVersionCmd_SkipsWiring(t *testing.T) {
	setupTestServices(t)
	wired := false
	wire = func(*cobra.Command) error {
		wired = true
		return nil
	}

	_, err := execute(t, "version")
	require.NoError(t, err)
	assert.False(t, wired)
}
