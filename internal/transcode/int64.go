package transcode

import (
	"encoding/json"
	"strconv"
)

// FormatInt64 returns the decimal wire form of n.
func FormatInt64(n int64) string {
	return strconv.FormatInt(n, 10)
}

// ParseInt64 parses a decimal wire string.
func ParseInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &Error{Kind: KindInt64, Value: s, Err: err}
	}
	return n, nil
}

// FormatUint64 returns the decimal wire form of n.
func FormatUint64(n uint64) string {
	return strconv.FormatUint(n, 10)
}

// ParseUint64 parses an unsigned decimal wire string.
func ParseUint64(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &Error{Kind: KindUint64, Value: s, Err: err}
	}
	return n, nil
}

// Int64 is a 64-bit integer carried as a decimal string on the wire.
type Int64 int64

// NewInt64 returns a pointer to n, for optional fields.
func NewInt64(n int64) *Int64 {
	v := Int64(n)
	return &v
}

// Value returns the integer, or 0 for a nil field.
func (n *Int64) Value() int64 {
	if n == nil {
		return 0
	}
	return int64(*n)
}

// MarshalJSON implements json.Marshaler.
func (n Int64) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, FormatInt64(int64(n))), nil
}

// UnmarshalJSON implements json.Unmarshaler. Bare JSON numbers are
// accepted as well as strings.
func (n *Int64) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s, err := unquoteNumber(data, KindInt64)
	if err != nil {
		return err
	}
	v, err := ParseInt64(s)
	if err != nil {
		return err
	}
	*n = Int64(v)
	return nil
}

// Uint64 is an unsigned 64-bit integer carried as a decimal string.
type Uint64 uint64

// NewUint64 returns a pointer to n, for optional fields.
func NewUint64(n uint64) *Uint64 {
	v := Uint64(n)
	return &v
}

// Value returns the integer, or 0 for a nil field.
func (n *Uint64) Value() uint64 {
	if n == nil {
		return 0
	}
	return uint64(*n)
}

// MarshalJSON implements json.Marshaler.
func (n Uint64) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, FormatUint64(uint64(n))), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Uint64) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s, err := unquoteNumber(data, KindUint64)
	if err != nil {
		return err
	}
	v, err := ParseUint64(s)
	if err != nil {
		return err
	}
	*n = Uint64(v)
	return nil
}

func unquoteNumber(data []byte, kind Kind) (string, error) {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", &Error{Kind: kind, Value: string(data), Err: err}
		}
		return s, nil
	}
	return string(data), nil
}
