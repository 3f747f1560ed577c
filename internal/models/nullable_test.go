package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableStringDistinguishesAbsentAndNull(t *testing.T) {
	type body struct {
		Notes NullableString `json:"notes"`
	}

	t.Run("absent", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{}`), &b))
		assert.False(t, b.Notes.Set)
		assert.False(t, b.Notes.Valid)
	})

	t.Run("explicit null", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"notes":null}`), &b))
		assert.True(t, b.Notes.Set)
		assert.False(t, b.Notes.Valid)
		assert.Nil(t, b.Notes.ToPtr())
	})

	t.Run("value", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"notes":"better today"}`), &b))
		assert.True(t, b.Notes.Set)
		assert.True(t, b.Notes.Valid)
		require.NotNil(t, b.Notes.ToPtr())
		assert.Equal(t, "better today", *b.Notes.ToPtr())
	})
}

func TestNullableTimeDistinguishesAbsentAndNull(t *testing.T) {
	type body struct {
		EndTime NullableTime `json:"end_time"`
	}

	t.Run("absent", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{}`), &b))
		assert.False(t, b.EndTime.Set)
	})

	t.Run("explicit null reopens", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"end_time":null}`), &b))
		assert.True(t, b.EndTime.Set)
		assert.False(t, b.EndTime.Valid)
	})

	t.Run("timestamp closes", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"end_time":"2025-06-15T12:00:00Z"}`), &b))
		assert.True(t, b.EndTime.Set)
		assert.True(t, b.EndTime.Valid)
		want, _ := time.Parse(time.RFC3339, "2025-06-15T12:00:00Z")
		assert.True(t, b.EndTime.Value.Equal(want))
	})
}
