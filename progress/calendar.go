// Package progress is the reading-progress computation engine: pure
// functions that turn a user's completion history into streaks, points,
// missed-day backlog, and display stats. Nothing here touches the clock,
// the database, or the request context; callers inject "today" as an
// already-resolved YYYY-MM-DD string in the user's effective timezone.
package progress

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the canonical calendar-day format used across the engine.
const DateLayout = "2006-01-02"

// Weekdays is the canonical weekday order shared by every component that
// maps weekdays to indexes. The week starts on Monday; Sunday is index 6.
var Weekdays = [7]string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// ParseDate parses a YYYY-MM-DD string into a UTC-midnight time.Time so
// that day arithmetic is never affected by the machine's local timezone.
// Malformed input is a caller bug; validation belongs at the HTTP edge.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate is the zero-padded inverse of ParseDate.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// WeekdayIndex returns the Monday-based index (0-6) of the date's weekday.
func WeekdayIndex(t time.Time) int {
	return (int(t.UTC().Weekday()) + 6) % 7
}

// WeekdayOf returns the canonical weekday name of the date.
func WeekdayOf(t time.Time) string {
	return Weekdays[WeekdayIndex(t)]
}

// StartOfWeek returns the Monday on or before the date.
func StartOfWeek(t time.Time) time.Time {
	return AddDays(t, -WeekdayIndex(t))
}

// IsSameWeek reports whether both dates fall in the same Monday-anchored week.
func IsSameWeek(a, b time.Time) bool {
	return StartOfWeek(a).Equal(StartOfWeek(b))
}

// IsSameMonth reports whether both dates fall in the same calendar month.
func IsSameMonth(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.Month() == bu.Month()
}

// DaysBetween returns the signed day count from a to b. The result is
// rounded so that a fractional-day artifact from a non-midnight input can
// never shift the count by a whole day.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// AddDays returns the date shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.UTC().AddDate(0, 0, n)
}

// DateForWeekdayInCurrentWeek resolves "this week's <weekday>" relative to
// the reference date, e.g. the Tuesday of the week containing ref.
func DateForWeekdayInCurrentWeek(weekday string, ref time.Time) (string, error) {
	idx := -1
	for i, w := range Weekdays {
		if w == weekday {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", fmt.Errorf("unknown weekday %q", weekday)
	}
	return FormatDate(AddDays(StartOfWeek(ref), idx)), nil
}
