package transcode

import (
	"encoding/json"
	"time"
)

// TimeLayout is the wire layout written for timestamps: UTC with
// millisecond precision, e.g. 2024-01-15T10:30:00.000Z.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTime returns the ISO-8601 wire form of t.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses an RFC 3339 timestamp with optional fractional seconds.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, &Error{Kind: KindTime, Value: s, Err: err}
	}
	return t, nil
}

// Time is a timestamp carried as an ISO-8601 string on the wire.
// The zero Time is treated as absent by omitzero.
type Time struct {
	time.Time
}

// NewTime wraps t.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatTime(t.Time))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &Error{Kind: KindTime, Value: string(data), Err: ErrUnexpectedType}
	}
	v, err := ParseTime(s)
	if err != nil {
		return err
	}
	t.Time = v
	return nil
}
