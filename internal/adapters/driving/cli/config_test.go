package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"true", true},
		{"false", false},
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"2.5", 2.5},
		{"https://example.com/", "https://example.com/"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseValue(tt.input))
		})
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "short", input: "abc123", expected: "******"},
		{name: "exactly 8 chars", input: "12345678", expected: "********"},
		{name: "long", input: "ya29.abcdefgh", expected: "ya29*****efgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskSecret(tt.input))
		})
	}
}

func TestConfigCmd_SetGetList(t *testing.T) {
	dir := t.TempDir()

	_, err := executeIn(t, dir, "config", "set", "endpoint.drive", "http://localhost:8080/drive/v3/")
	require.NoError(t, err)
	_, err = executeIn(t, dir, "config", "set", "rate_limit.sdm.rps", "0.5")
	require.NoError(t, err)
	_, err = executeIn(t, dir, "config", "set", "access_token", "ya29.secret-token")
	require.NoError(t, err)

	out, err := executeIn(t, dir, "config", "get", "endpoint.drive")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/drive/v3/\n", out)

	out, err = executeIn(t, dir, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "endpoint.drive = http://localhost:8080/drive/v3/")
	assert.Contains(t, out, "rate_limit.sdm.rps = 0.5")
	assert.Contains(t, out, "access_token = ya29")
	assert.NotContains(t, out, "secret")
}

func TestConfigCmd_Unset(t *testing.T) {
	dir := t.TempDir()

	_, err := executeIn(t, dir, "config", "set", "verbose", "true")
	require.NoError(t, err)
	_, err = executeIn(t, dir, "config", "unset", "verbose")
	require.NoError(t, err)

	_, err = executeIn(t, dir, "config", "get", "verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose is not set")
}

func TestConfigCmd_ListEmpty(t *testing.T) {
	out, err := execute(t, "config", "list")

	require.NoError(t, err)
	assert.Equal(t, "No configuration set.\n", out)
}

func TestConfigCmd_Path(t *testing.T) {
	dir := t.TempDir()

	out, err := executeIn(t, dir, "config", "path")

	require.NoError(t, err)
	assert.Contains(t, out, dir)
	assert.Contains(t, out, "config.toml")
}
