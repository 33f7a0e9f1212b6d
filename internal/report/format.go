package report

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders a duration as HH:MM. Hours are not clamped to a
// day, so a 30-hour week renders as "30:00"; both fields are zero-padded
// to two digits.
func FormatDuration(d time.Duration) string {
	totalSeconds := int64(d / time.Second)
	hours := totalSeconds / 3600
	minutes := (totalSeconds / 60) % 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// NormalizeWhitespace collapses internal runs of whitespace to single
// spaces and trims the ends. Normalizing an already-normalized string
// returns it unchanged.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WrapText splits text into lines of at most width characters, breaking
// only on whitespace. A token longer than the width (a URL, typically)
// gets a line of its own rather than being broken mid-token.
func WrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	lines = append(lines, current)
	return lines
}

// WeekStart returns the Monday of the given ISO 8601 week
func WeekStart(year, week int) time.Time {
	// January 4th is always inside ISO week 1
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	week1Monday := jan4.AddDate(0, 0, 1-weekday)
	return week1Monday.AddDate(0, 0, (week-1)*7)
}
