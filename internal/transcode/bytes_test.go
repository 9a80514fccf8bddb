package transcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		wire  string
	}{
		{name: "empty", input: []byte{}, wire: ""},
		{name: "one byte", input: []byte{0x66}, wire: "Zg=="},
		{name: "two bytes", input: []byte{0x66, 0x6f}, wire: "Zm8="},
		{name: "three bytes", input: []byte{0x66, 0x6f, 0x6f}, wire: "Zm9v"},
		{name: "four bytes", input: []byte{0xDE, 0xAD, 0xBE, 0xEF}, wire: "3q2+7w=="},
		{name: "five bytes", input: []byte("hello"), wire: "aGVsbG8="},
		{name: "high bytes", input: []byte{0xff, 0xfe, 0x00, 0x80, 0x7f, 0xfb, 0xef}, wire: "//4AgH/77w=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := EncodeBytes(tt.input)
			assert.Equal(t, tt.wire, wire)

			got, err := DecodeBytes(wire)
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestBytes_AllByteValues(t *testing.T) {
	input := make([]byte, 256)
	for i := range input {
		input[i] = byte(i)
	}

	got, err := DecodeBytes(EncodeBytes(input))

	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestDecodeBytes_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "invalid character", input: "3q2*7w=="},
		{name: "url alphabet", input: "3q2-7w=="},
		{name: "missing padding", input: "3q2+7w"},
		{name: "too much padding", input: "Zm9v===="},
		{name: "padding in the middle", input: "Zg==Zm9v"},
		{name: "truncated group", input: "Zm9vY"},
		{name: "non-zero trailing bits", input: "Zh=="},
		{name: "line break", input: "Zm9v\nYmFy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBytes(tt.input)

			require.Error(t, err)
			assert.Nil(t, got)
			var terr *Error
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, KindBytes, terr.Kind)
			assert.Equal(t, tt.input, terr.Value)
		})
	}
}

func TestBytes_JSON(t *testing.T) {
	type payload struct {
		Data Bytes `json:"data,omitempty"`
	}

	out, err := json.Marshal(payload{Data: Bytes{0xDE, 0xAD, 0xBE, 0xEF}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":"3q2+7w=="}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal(out, &in))
	assert.Equal(t, Bytes{0xDE, 0xAD, 0xBE, 0xEF}, in.Data)
}

func TestBytes_JSONAbsentAndNull(t *testing.T) {
	type payload struct {
		Data Bytes `json:"data,omitempty"`
	}

	out, err := json.Marshal(payload{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"data":null}`), &in))
	assert.Nil(t, in.Data)
}

func TestBytes_JSONEmptyIsDefault(t *testing.T) {
	type payload struct {
		Data Bytes `json:"data,omitempty"`
	}

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"data":""}`), &in))
	assert.Empty(t, in.Data)

	// Empty bytes are the proto3 default and are omitted like any default.
	out, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))

	b, err := json.Marshal(Bytes{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(b))
}

func TestBytes_JSONMalformed(t *testing.T) {
	var b Bytes

	err := json.Unmarshal([]byte(`"not base64!"`), &b)
	require.Error(t, err)
	var terr *Error
	assert.ErrorAs(t, err, &terr)

	err = json.Unmarshal([]byte(`42`), &b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedType)
}
