package progress

import (
	"sort"

	"github.com/lectioapp/lectio/models"
)

// Streak holds consecutive-day counts derived from a log history.
type Streak struct {
	CurrentDays int `json:"current_streak_days"`
	LongestDays int `json:"longest_streak_days"`
}

// CalculateStreak walks the completed logs in calendar order and counts
// consecutive-day runs. Continuity is about calendar coverage, not
// submission order: a makeup log counts on its backfilled date, so filling
// a past gap can join two runs. CurrentDays is the streak ending at the
// most recent completed log; whether a streak that excludes today should
// display differently is the caller's decision.
func CalculateStreak(logs []models.ReadingLog) Streak {
	dates := make([]string, 0, len(logs))
	for i := range logs {
		if logs[i].Completed {
			dates = append(dates, logs[i].Date)
		}
	}
	if len(dates) == 0 {
		return Streak{}
	}
	sort.Strings(dates)

	current, longest := 1, 1
	prev, _ := ParseDate(dates[0])
	for _, d := range dates[1:] {
		cur, _ := ParseDate(d)
		switch diff := DaysBetween(prev, cur); {
		case diff == 0:
			// Duplicate date. Should not exist given the uniqueness
			// invariant, but must not corrupt the count.
			continue
		case diff == 1:
			current++
		default:
			current = 1
		}
		if current > longest {
			longest = current
		}
		prev = cur
	}
	return Streak{CurrentDays: current, LongestDays: longest}
}

// IsStreakMilestone reports whether a streak length triggers the milestone
// bonus: positive and divisible by 10.
func IsStreakMilestone(streakDays int) bool {
	return streakDays > 0 && streakDays%10 == 0
}
