package transcode

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_Scenario(t *testing.T) {
	want := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

	wire := FormatTime(want)
	assert.Equal(t, "2024-01-15T10:30:00.000Z", wire)

	got, err := ParseTime(wire)
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "got %s", got)
}

func TestTime_RoundTripMilliseconds(t *testing.T) {
	times := []time.Time{
		time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1999, time.December, 31, 23, 59, 59, 999*int(time.Millisecond), time.UTC),
		time.Date(2038, time.January, 19, 3, 14, 8, 1*int(time.Millisecond), time.UTC),
		time.Date(2024, time.February, 29, 12, 0, 0, 123*int(time.Millisecond), time.FixedZone("IST", 5*3600+1800)),
	}

	for _, want := range times {
		got, err := ParseTime(FormatTime(want))
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "want %s got %s", want, got)
	}
}

func TestFormatTime_NormalisesToUTC(t *testing.T) {
	ts := time.Date(2024, time.January, 15, 12, 30, 0, 0, time.FixedZone("CET", 2*3600))

	assert.Equal(t, "2024-01-15T10:30:00.000Z", FormatTime(ts))
}

func TestParseTime_Accepts(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-01-15T10:30:00Z", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-01-15T10:30:00.5Z", time.Date(2024, 1, 15, 10, 30, 0, 5e8, time.UTC)},
		{"2024-01-15T10:30:00.123456789Z", time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.UTC)},
		{"2024-01-15T12:30:00+02:00", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseTime_Malformed(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2024-01-15", "2024-13-01T00:00:00Z", "2024-01-15 10:30:00Z"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTime(input)

			require.Error(t, err)
			var terr *Error
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, KindTime, terr.Kind)
		})
	}
}

func TestTime_JSON(t *testing.T) {
	type resource struct {
		CreateTime Time `json:"createTime,omitzero"`
	}
	want := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

	out, err := json.Marshal(resource{CreateTime: NewTime(want)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"createTime":"2024-01-15T10:30:00.000Z"}`, string(out))

	var in resource
	require.NoError(t, json.Unmarshal(out, &in))
	assert.True(t, want.Equal(in.CreateTime.Time))
}

func TestTime_JSONAbsentStaysAbsent(t *testing.T) {
	type resource struct {
		Name       string `json:"name"`
		CreateTime Time   `json:"createTime,omitzero"`
		Size       *Int64 `json:"size,omitempty"`
		Data       Bytes  `json:"data,omitempty"`
	}

	var in resource
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a"}`), &in))
	assert.True(t, in.CreateTime.IsZero())
	assert.Nil(t, in.Size)
	assert.Nil(t, in.Data)

	out, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a"}`, string(out))
}

func TestTime_JSONMalformed(t *testing.T) {
	var ts Time

	err := json.Unmarshal([]byte(`"not a time"`), &ts)
	require.Error(t, err)
	var terr *Error
	assert.ErrorAs(t, err, &terr)

	err = json.Unmarshal([]byte(`1705314600`), &ts)
	assert.ErrorIs(t, err, ErrUnexpectedType)
}
