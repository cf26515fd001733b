// Package timeutil provides calendar-date helpers for task deadlines.
// Deadlines are whole days, so every value is normalised to midnight UTC.
package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted deadline format.
const DateLayout = "2006-01-02"

// Now returns the current time. Tests replace it to pin "today".
var Now = time.Now

// Date creates a midnight UTC date.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay truncates t to midnight UTC of the same calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns StartOfDay(Now()).
func Today() time.Time {
	return StartOfDay(Now())
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysUntil returns the signed number of calendar days from today to t.
// Negative values mean t is in the past.
func DaysUntil(t time.Time) int {
	d := StartOfDay(t).Sub(Today())
	return int(d.Hours() / 24)
}

// IsOverdue reports whether the deadline has passed.
func IsOverdue(t time.Time) bool {
	return DaysUntil(t) < 0
}

// FormatDue renders a deadline relative to today.
func FormatDue(t time.Time) string {
	days := DaysUntil(t)
	switch {
	case days == 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	case days > 1:
		return fmt.Sprintf("due in %d days", days)
	case days == -1:
		return "overdue by 1 day"
	default:
		return fmt.Sprintf("overdue by %d days", -days)
	}
}
