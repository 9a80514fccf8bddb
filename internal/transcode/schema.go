package transcode

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind tags how a field is represented on the wire.
type Kind int

// Field kinds.
const (
	// KindTime is an RFC 3339 string in memory as time.Time.
	KindTime Kind = iota + 1
	// KindInt64 is a decimal string in memory as int64.
	KindInt64
	// KindUint64 is a decimal string in memory as uint64.
	KindUint64
	// KindBytes is base64 text in memory as []byte.
	KindBytes
	// KindDuration is a protobuf Duration string in memory as time.Duration.
	KindDuration
	// KindObject is a nested object transcoded with Field.Schema.
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTime:
		return "timestamp"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindBytes:
		return "bytes"
	case KindDuration:
		return "duration"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for k := KindTime; k <= KindObject; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("transcode: unknown kind %q", s)
}

// Field describes one transcodable field of a loosely typed object.
type Field struct {
	Kind Kind
	// Repeated marks a JSON array whose elements all have Kind.
	Repeated bool
	// Schema describes the nested object for KindObject.
	Schema Schema
}

// Schema maps JSON field names to their field descriptions. Fields not in the
// schema are copied unchanged.
type Schema map[string]Field

// Decode converts a decoded wire object into its in-memory form. Timestamps
// become time.Time, integers int64 or uint64, binary fields []byte and
// durations time.Duration. The input map is not modified. Integer fields
// given as bare float64 numbers must be below 2^53 in magnitude; larger ones
// fail with ErrInexactNumber.
func (s Schema) Decode(m map[string]any) (map[string]any, error) {
	return s.convert(m, decodeValue)
}

// Encode converts an in-memory object back into its wire form. It is the
// inverse of Decode.
func (s Schema) Encode(m map[string]any) (map[string]any, error) {
	return s.convert(m, encodeValue)
}

// maxExactFloat is 2^53, the first integer a float64 cannot tell apart from
// its successor.
const maxExactFloat = 1 << 53

type convertFunc func(f Field, v any) (any, error)

func (s Schema) convert(m map[string]any, fn convertFunc) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]any, len(m))
	for key, v := range m {
		f, ok := s[key]
		if !ok || v == nil {
			out[key] = v
			continue
		}
		cv, err := convertField(f, v, fn)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		out[key] = cv
	}
	return out, nil
}

func convertField(f Field, v any, fn convertFunc) (any, error) {
	if !f.Repeated {
		return fn(f, v)
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &Error{Kind: f.Kind, Value: fmt.Sprint(v), Err: ErrUnexpectedType}
	}
	out := make([]any, len(items))
	for i, item := range items {
		cv, err := fn(f, item)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = cv
	}
	return out, nil
}

func decodeValue(f Field, v any) (any, error) {
	if f.Kind == KindObject {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, mismatch(f.Kind, v)
		}
		return f.Schema.Decode(obj)
	}

	switch n := v.(type) {
	case json.Number:
		v = n.String()
	case float64:
		if f.Kind == KindInt64 || f.Kind == KindUint64 {
			// Past 2^53 a float64 may already be rounded. Decode with
			// json.Decoder.UseNumber to keep such values exact.
			if math.Abs(n) >= maxExactFloat {
				return nil, &Error{Kind: f.Kind, Value: strconv.FormatFloat(n, 'f', -1, 64), Err: ErrInexactNumber}
			}
			if n == math.Trunc(n) {
				v = strconv.FormatFloat(n, 'f', -1, 64)
			}
		}
	}

	s, ok := v.(string)
	if !ok {
		return nil, mismatch(f.Kind, v)
	}
	switch f.Kind {
	case KindTime:
		return ParseTime(s)
	case KindInt64:
		return ParseInt64(s)
	case KindUint64:
		return ParseUint64(s)
	case KindBytes:
		return DecodeBytes(s)
	case KindDuration:
		return ParseDuration(s)
	default:
		return nil, mismatch(f.Kind, v)
	}
}

func encodeValue(f Field, v any) (any, error) {
	switch f.Kind {
	case KindTime:
		if t, ok := v.(time.Time); ok {
			return FormatTime(t), nil
		}
	case KindInt64:
		switch n := v.(type) {
		case int64:
			return FormatInt64(n), nil
		case int:
			return FormatInt64(int64(n)), nil
		}
	case KindUint64:
		switch n := v.(type) {
		case uint64:
			return FormatUint64(n), nil
		case uint:
			return FormatUint64(uint64(n)), nil
		}
	case KindBytes:
		if b, ok := v.([]byte); ok {
			return EncodeBytes(b), nil
		}
	case KindDuration:
		if d, ok := v.(time.Duration); ok {
			return FormatDuration(d), nil
		}
	case KindObject:
		if obj, ok := v.(map[string]any); ok {
			return f.Schema.Encode(obj)
		}
	}
	return nil, mismatch(f.Kind, v)
}

func mismatch(k Kind, v any) error {
	return &Error{Kind: k, Value: fmt.Sprintf("%v", v), Err: ErrUnexpectedType}
}
