package domain

import (
	"time"
)

// Task is a single logged unit of work. Tasks are owned by the tracker
// service; the report pipeline only holds read-only copies for the
// queried window.
type Task struct {
	User   User
	Date   time.Time // calendar day; hour/minute parts are ignored
	Length time.Duration
	Text   string
	Story  string
}

// Day returns the task date truncated to midnight UTC, so tasks can be
// compared by calendar day regardless of how the source populated the
// time-of-day parts.
func (t Task) Day() time.Time {
	return Day(t.Date)
}

// Day truncates a time to its calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
