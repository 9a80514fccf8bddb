package transcode

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_RoundTrip(t *testing.T) {
	tests := []struct {
		d    time.Duration
		wire string
	}{
		{0, "0s"},
		{time.Second, "1s"},
		{24 * time.Hour, "86400s"},
		{3500 * time.Millisecond, "3.500s"},
		{time.Second + 340*time.Microsecond, "1.000340s"},
		{time.Second + 340012*time.Nanosecond, "1.000340012s"},
		{-1500 * time.Millisecond, "-1.500s"},
		{math.MaxInt64, "9223372036.854775807s"},
		{math.MinInt64, "-9223372036.854775808s"},
	}

	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			assert.Equal(t, tt.wire, FormatDuration(tt.d))

			got, err := ParseDuration(tt.wire)
			require.NoError(t, err)
			assert.Equal(t, tt.d, got)
		})
	}
}

func TestParseDuration_ShortFraction(t *testing.T) {
	got, err := ParseDuration("3.5s")

	require.NoError(t, err)
	assert.Equal(t, 3500*time.Millisecond, got)
}

func TestParseDuration_Malformed(t *testing.T) {
	for _, input := range []string{"", "s", "10", "1h", "1.s", ".5s", "+1s", "1.0000000001s", "a1s", "99999999999s",
		"9223372036.854775808s", "-9223372036.854775809s", "9223372037s"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDuration(input)

			require.Error(t, err)
			var terr *Error
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, KindDuration, terr.Kind)
		})
	}
}

func TestDuration_JSON(t *testing.T) {
	type consent struct {
		TTL *Duration `json:"ttl,omitempty"`
	}

	out, err := json.Marshal(consent{TTL: NewDuration(24 * time.Hour)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ttl":"86400s"}`, string(out))

	var in consent
	require.NoError(t, json.Unmarshal(out, &in))
	assert.Equal(t, 24*time.Hour, in.TTL.Value())

	var empty consent
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.Nil(t, empty.TTL)
}
