package transcode

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	errDurationSuffix = errors.New(`missing "s" suffix`)
	errDurationDigits = errors.New("malformed seconds")
	errDurationRange  = errors.New("out of range")
)

// FormatDuration returns the protobuf Duration wire form of d: seconds with
// 0, 3, 6 or 9 fractional digits followed by "s".
func FormatDuration(d time.Duration) string {
	sign := ""
	u := uint64(d)
	if d < 0 {
		sign = "-"
		u = -u
	}
	secs := u / uint64(time.Second)
	nanos := u % uint64(time.Second)

	switch {
	case nanos == 0:
		return fmt.Sprintf("%s%ds", sign, secs)
	case nanos%1e6 == 0:
		return fmt.Sprintf("%s%d.%03ds", sign, secs, nanos/1e6)
	case nanos%1e3 == 0:
		return fmt.Sprintf("%s%d.%06ds", sign, secs, nanos/1e3)
	default:
		return fmt.Sprintf("%s%d.%09ds", sign, secs, nanos)
	}
}

// ParseDuration parses a protobuf Duration wire string such as "3.5s".
func ParseDuration(s string) (time.Duration, error) {
	fail := func(err error) (time.Duration, error) {
		return 0, &Error{Kind: KindDuration, Value: s, Err: err}
	}

	body, ok := strings.CutSuffix(s, "s")
	if !ok {
		return fail(errDurationSuffix)
	}
	neg := false
	if rest, found := strings.CutPrefix(body, "-"); found {
		neg = true
		body = rest
	}

	whole, frac, dot := strings.Cut(body, ".")
	if !isDigits(whole) || (dot && !isDigits(frac)) || len(frac) > 9 {
		return fail(errDurationDigits)
	}

	secs, err := strconv.ParseUint(whole, 10, 64)
	if err != nil || secs > math.MaxInt64/uint64(time.Second)+1 {
		return fail(errDurationRange)
	}

	var nanos uint64
	if frac != "" {
		nanos, _ = strconv.ParseUint(frac+strings.Repeat("0", 9-len(frac)), 10, 64)
	}

	// A negative duration reaches one nanosecond further than a positive one.
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	mag := secs*uint64(time.Second) + nanos
	if mag > limit {
		return fail(errDurationRange)
	}
	if neg {
		return time.Duration(-mag), nil
	}
	return time.Duration(mag), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Duration is a time.Duration carried as a protobuf Duration string.
type Duration time.Duration

// NewDuration returns a pointer to d, for optional fields.
func NewDuration(d time.Duration) *Duration {
	v := Duration(d)
	return &v
}

// Value returns the duration, or 0 for a nil field.
func (d *Duration) Value() time.Duration {
	if d == nil {
		return 0
	}
	return time.Duration(*d)
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatDuration(time.Duration(d)))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &Error{Kind: KindDuration, Value: string(data), Err: ErrUnexpectedType}
	}
	v, err := ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
