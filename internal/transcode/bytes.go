package transcode

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

var errLineBreak = errors.New("line break in base64 text")

// EncodeBytes returns the standard, padded base64 encoding of b.
func EncodeBytes(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBytes decodes standard, padded base64 text.
// Invalid characters, missing or extra padding and non-zero trailing bits
// are rejected.
func DecodeBytes(s string) ([]byte, error) {
	// The stdlib decoder silently skips CR and LF.
	if strings.ContainsAny(s, "\r\n") {
		return nil, &Error{Kind: KindBytes, Value: s, Err: errLineBreak}
	}
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, &Error{Kind: KindBytes, Value: s, Err: err}
	}
	return b, nil
}

// Bytes is a binary field carried as base64 text on the wire. With omitempty
// an empty value is omitted, as proto3 JSON omits defaults.
type Bytes []byte

// MarshalJSON implements json.Marshaler.
func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeBytes(b))
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &Error{Kind: KindBytes, Value: string(data), Err: ErrUnexpectedType}
	}
	v, err := DecodeBytes(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}
