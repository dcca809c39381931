package progress

import (
	"time"

	"github.com/lectioapp/lectio/models"
)

// MissedDay is a placeholder for an expected reading day that has no
// completed log. It carries the resolved weekday so the caller can offer
// a one-click makeup action.
type MissedDay struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// MissedQuery scopes a missed-day scan.
type MissedQuery struct {
	// Today is the user's current date (YYYY-MM-DD); only days strictly
	// before it can be missed.
	Today string
	// StartDate optionally floors the scan at the user's first
	// accountable day; nobody misses a day before they joined.
	StartDate string
	// LookbackDays bounds how far back the scan walks from Today.
	LookbackDays int
	// TargetDaysPerWeek selects which weekdays are expected (1-7).
	TargetDaysPerWeek int
}

// ExpectedWeekdays is the product's day-selection policy for users
// targeting fewer than seven days a week: the first N weekdays counting
// from Monday. A user targeting 3 days is expected to read Monday,
// Tuesday and Wednesday.
func ExpectedWeekdays(targetDaysPerWeek int) []string {
	if targetDaysPerWeek < 1 {
		return nil
	}
	if targetDaysPerWeek > len(Weekdays) {
		targetDaysPerWeek = len(Weekdays)
	}
	return Weekdays[:targetDaysPerWeek]
}

// IsExpectedDay reports whether the date is an expected reading day under
// the target policy.
func IsExpectedDay(d time.Time, targetDaysPerWeek int) bool {
	return targetDaysPerWeek >= 1 && WeekdayIndex(d) < targetDaysPerWeek
}

// MissedDays re-derives the makeup backlog from the full log history:
// every expected day inside the lookback window, strictly before today,
// on/after the start date, with no completed log. The result is ordered
// most-recent-first. The scan is pure, so completing a makeup day removes
// it from the next call with no invalidation step.
func MissedDays(logs []models.ReadingLog, q MissedQuery) []MissedDay {
	today, err := ParseDate(q.Today)
	if err != nil {
		return nil
	}

	completed := make(map[string]bool, len(logs))
	for i := range logs {
		if logs[i].Completed {
			completed[logs[i].Date] = true
		}
	}

	floor := AddDays(today, -q.LookbackDays)
	if q.StartDate != "" {
		if start, err := ParseDate(q.StartDate); err == nil && start.After(floor) {
			floor = start
		}
	}

	var missed []MissedDay
	for d := AddDays(today, -1); !d.Before(floor); d = AddDays(d, -1) {
		if !IsExpectedDay(d, q.TargetDaysPerWeek) {
			continue
		}
		ds := FormatDate(d)
		if completed[ds] {
			continue
		}
		missed = append(missed, MissedDay{Date: ds, Weekday: WeekdayOf(d)})
	}
	return missed
}
