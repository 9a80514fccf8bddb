package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscodeCmd_Encode(t *testing.T) {
	tests := []struct {
		kind     string
		value    string
		expected string
	}{
		{"int64", "9007199254740993", "9007199254740993"},
		{"uint64", "18446744073709551615", "18446744073709551615"},
		{"timestamp", "2024-01-15T10:30:00Z", "2024-01-15T10:30:00.000Z"},
		{"duration", "1h5m", "3900s"},
		{"bytes", "\xde\xad\xbe\xef", "3q2+7w=="},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			out, err := execute(t, "transcode", "encode", "--kind", tt.kind, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected+"\n", out)
		})
	}
}

func TestTranscodeCmd_Decode(t *testing.T) {
	tests := []struct {
		kind     string
		value    string
		expected string
	}{
		{"int64", "9007199254740993", "9007199254740993\n"},
		{"timestamp", "2024-01-15T10:30:00.123+01:00", "2024-01-15T09:30:00.123Z\n"},
		{"duration", "3900s", "1h5m0s\n"},
		{"bytes", "3q2+7w==", "\xde\xad\xbe\xef"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			out, err := execute(t, "transcode", "decode", "-k", tt.kind, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestTranscodeCmd_BytesFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bin")
	require.NoError(t, os.WriteFile(in, []byte{0xde, 0xad, 0xbe, 0xef}, 0600))

	out, err := execute(t, "transcode", "encode", "-k", "bytes", "--file", in)
	require.NoError(t, err)
	assert.Equal(t, "3q2+7w==\n", out)

	dst := filepath.Join(dir, "out.bin")
	_, err = execute(t, "transcode", "decode", "-k", "bytes", "--file", dst, "3q2+7w==")
	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, data)
}

func TestTranscodeCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing kind", []string{"transcode", "decode", "42"}},
		{"unknown kind", []string{"transcode", "decode", "-k", "float", "42"}},
		{"malformed int64", []string{"transcode", "decode", "-k", "int64", "12x"}},
		{"malformed base64", []string{"transcode", "decode", "-k", "bytes", "not base64!"}},
		{"malformed timestamp", []string{"transcode", "encode", "-k", "timestamp", "yesterday"}},
		{"missing value", []string{"transcode", "encode", "-k", "int64"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
