package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", d.String())

	_, err = ParseDate("15/06/2025")
	assert.Error(t, err)
}

func TestDateOfTruncatesTime(t *testing.T) {
	ts, _ := time.Parse(time.RFC3339, "2025-06-15T23:45:00Z")
	d := DateOf(ts)
	assert.Equal(t, "2025-06-15", d.String())
}

func TestDateAddDays(t *testing.T) {
	d, _ := ParseDate("2025-06-15")

	assert.Equal(t, "2025-06-22", d.AddDays(7).String())
	assert.Equal(t, "2025-06-08", d.AddDays(-7).String())
	// month rollover
	assert.Equal(t, "2025-07-01", d.AddDays(16).String())
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, _ := ParseDate("2025-06-15")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-15"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equal(d))
}

func TestDateUnmarshalAcceptsRFC3339(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-15T18:30:00Z"`), &d))
	assert.Equal(t, "2025-06-15", d.String())
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
}

func TestDateComparisons(t *testing.T) {
	a, _ := ParseDate("2025-06-14")
	b, _ := ParseDate("2025-06-15")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
}
