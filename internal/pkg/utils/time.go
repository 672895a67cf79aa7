package utils

import (
	"fmt"
	"math"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts the timestamp formats seen across upstream
// deployments. Unparseable input yields the zero time so records missing
// a date sort last under newest-first ordering.
func ParseTimestamp(value string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func StartOfToday(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// TimeAgo renders a timestamp relative to now for activity feeds.
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		minutes := int(diff.Minutes())
		return fmt.Sprintf("%d %s ago", minutes, pluralize("min", minutes))
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		return fmt.Sprintf("%d %s ago", hours, pluralize("hour", hours))
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%d %s ago", days, pluralize("day", days))
	default:
		return t.Format("1/2/2006")
	}
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// GrowthPercent is the percentage change from previous to current,
// rounded to one decimal. A zero previous value reports 0 growth.
func GrowthPercent(current, previous int) float64 {
	if previous == 0 {
		return 0
	}
	raw := (float64(current-previous) / float64(previous)) * 100
	return math.Round(raw*10) / 10
}

// FormatGrowth renders a growth percentage with an explicit sign.
func FormatGrowth(percent float64) string {
	if percent >= 0 {
		return fmt.Sprintf("+%.1f%%", percent)
	}
	return fmt.Sprintf("%.1f%%", percent)
}

// CentsToAmount renders a cent amount as a decimal money string.
func CentsToAmount(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
