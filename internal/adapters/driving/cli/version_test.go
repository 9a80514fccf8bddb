package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	SetVersion("test-version-1.0.0")
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "gapi version test-version-1.0.0")
	assert.NotContains(t, out, "user agent")
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	originalVersion := version
	version = "dev"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "gapi version dev")
}

func TestVersionCmd_VerboseShowsRuntime(t *testing.T) {
	out, err := execute(t, "--verbose", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "go:")
	assert.Contains(t, out, "user agent:")
}
