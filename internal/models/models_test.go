package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpisodeDurationHours(t *testing.T) {
	start, _ := time.Parse(time.RFC3339, "2025-06-15T08:00:00Z")

	t.Run("open episode has no duration", func(t *testing.T) {
		e := EpisodeEvent{StartTime: start}
		assert.Nil(t, e.DurationHours())
	})

	t.Run("closed episode rounds to two decimals", func(t *testing.T) {
		end := start.Add(2*time.Hour + 20*time.Minute) // 2.3333... hours
		e := EpisodeEvent{StartTime: start, EndTime: &end}

		got := e.DurationHours()
		require.NotNil(t, got)
		assert.InDelta(t, 2.33, *got, 0.0001)
	})

	t.Run("exact hours stay exact", func(t *testing.T) {
		end := start.Add(3 * time.Hour)
		e := EpisodeEvent{StartTime: start, EndTime: &end}

		got := e.DurationHours()
		require.NotNil(t, got)
		assert.Equal(t, 3.0, *got)
	})
}
