package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	expected := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{name: "RFC3339 with zone", value: "2024-03-01T12:30:00+02:00", ok: true},
		{name: "RFC3339 UTC", value: "2024-03-01T10:30:00Z", ok: true},
		{name: "no zone", value: "2024-03-01T10:30:00", ok: true},
		{name: "space separated", value: "2024-03-01 10:30:00", ok: true},
		{name: "garbage", value: "yesterday", ok: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ts, err := ParseTimestamp(test.value)
			if !test.ok {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, expected.Equal(ts.Time))
			assert.Equal(t, time.UTC, ts.Location())
		})
	}
}

func TestTimestampJSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T10:30:00Z"`, string(data))

	var decoded Timestamp
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, ts.Equal(decoded.Time))

	empty, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(empty))

	require.NoError(t, json.Unmarshal([]byte(`""`), &decoded))
	assert.True(t, decoded.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`42`), &decoded))
}
