package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("under a minute", func(t *testing.T) {
		assert.Equal(t, "Just now", TimeAgo(now.Add(-30*time.Second), now))
	})

	t.Run("minutes", func(t *testing.T) {
		assert.Equal(t, "1 min ago", TimeAgo(now.Add(-90*time.Second), now))
		assert.Equal(t, "45 mins ago", TimeAgo(now.Add(-45*time.Minute), now))
	})

	t.Run("hours", func(t *testing.T) {
		assert.Equal(t, "1 hour ago", TimeAgo(now.Add(-time.Hour), now))
		assert.Equal(t, "23 hours ago", TimeAgo(now.Add(-23*time.Hour), now))
	})

	t.Run("days", func(t *testing.T) {
		assert.Equal(t, "1 day ago", TimeAgo(now.Add(-25*time.Hour), now))
		assert.Equal(t, "6 days ago", TimeAgo(now.Add(-6*24*time.Hour), now))
	})

	t.Run("older than a week falls back to date", func(t *testing.T) {
		assert.Equal(t, "6/1/2024", TimeAgo(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), now))
	})
}

func TestGrowthPercent(t *testing.T) {
	assert.Equal(t, 0.0, GrowthPercent(10, 0))
	assert.Equal(t, 25.0, GrowthPercent(125, 100))
	assert.Equal(t, -50.0, GrowthPercent(5, 10))
	assert.Equal(t, 33.3, GrowthPercent(4, 3))
}

func TestFormatGrowth(t *testing.T) {
	assert.Equal(t, "+12.5%", FormatGrowth(12.5))
	assert.Equal(t, "+0.0%", FormatGrowth(0))
	assert.Equal(t, "-8.3%", FormatGrowth(-8.3))
}

func TestParseTimestamp(t *testing.T) {
	assert.False(t, ParseTimestamp("2024-06-15T10:30:00Z").IsZero())
	assert.False(t, ParseTimestamp("2024-06-15").IsZero())
	assert.True(t, ParseTimestamp("not a date").IsZero())
	assert.True(t, ParseTimestamp("").IsZero())
}

func TestCentsToAmount(t *testing.T) {
	assert.Equal(t, "150.00", CentsToAmount(15000))
	assert.Equal(t, "0.99", CentsToAmount(99))
	assert.Equal(t, "0.00", CentsToAmount(0))
}
