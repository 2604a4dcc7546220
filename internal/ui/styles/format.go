package styles

import (
	"fmt"
	"time"

	"github.com/zjrosen/gitpanes/internal/git/domain"
)

// Unknown is shown for missing or unparsable timestamps.
const Unknown = "Unknown"

const day = 24 * time.Hour

// FormatCommentIndicator returns the comment indicator string.
// Returns empty string when count is 0.
func FormatCommentIndicator(count int) string {
	if count <= 0 {
		return ""
	}
	return fmt.Sprintf("%d\U0001F4AC", count) // 💬
}

// FormatRelativeTime renders an ISO timestamp relative to now with minute
// resolution. Timestamps in the future read as "Just now".
func FormatRelativeTime(iso string, now time.Time) string {
	t, ok := domain.ParseTimestamp(iso)
	if !ok {
		return Unknown
	}

	diff := now.Sub(t)
	if diff < time.Minute {
		return "Just now"
	}
	if diff < time.Hour {
		return ago(int(diff/time.Minute), "minute")
	}
	if diff < day {
		return ago(int(diff/time.Hour), "hour")
	}

	days := int(diff / day)
	switch {
	case days == 1:
		return "Yesterday"
	case days < 30:
		return ago(days, "day")
	case days/30 < 12:
		return ago(days/30, "month")
	}
	return ago(max(days/365, 1), "year")
}

// FormatDate renders an optional ISO timestamp with day resolution. Counts of
// one use the singular, as FormatRelativeTime does.
func FormatDate(iso *string, now time.Time) string {
	if iso == nil {
		return Unknown
	}
	t, ok := domain.ParseTimestamp(*iso)
	if !ok {
		return Unknown
	}

	days := int(now.Sub(t) / day)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return ago(days, "day")
	case days < 30:
		return ago(days/7, "week")
	case days < 365:
		return ago(days/30, "month")
	}
	return ago(days/365, "year")
}

// FormatTimestamp renders an absolute timestamp for detail views.
func FormatTimestamp(iso string) string {
	t, ok := domain.ParseTimestamp(iso)
	if !ok {
		return Unknown
	}
	return t.Format("2006-01-02 15:04 MST")
}

func ago(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
