package progress

import "github.com/lectioapp/lectio/models"

// UserStats is the consolidated snapshot shown across the UI. It is a
// read-only projection of the log history: recomputed on demand, never
// stored or mutated directly.
type UserStats struct {
	TotalPoints       int    `json:"total_points"`
	CurrentStreakDays int    `json:"current_streak_days"`
	LongestStreakDays int    `json:"longest_streak_days"`
	TotalReadings     int    `json:"total_readings"`
	WeeklyPoints      int    `json:"weekly_points"`
	MonthlyPoints     int    `json:"monthly_points"`
	LastCompletedDate string `json:"last_completed_date"`
}

// ComputeUserStats aggregates the completed logs against the user's
// current date. Safe to call repeatedly and concurrently over the same
// snapshot; it has no side effects.
func ComputeUserStats(logs []models.ReadingLog, todayStr string) UserStats {
	stats := UserStats{}
	today, todayErr := ParseDate(todayStr)

	for i := range logs {
		log := &logs[i]
		if !log.Completed {
			continue
		}
		stats.TotalReadings++
		stats.TotalPoints += log.PointsEarned
		if log.Date > stats.LastCompletedDate {
			stats.LastCompletedDate = log.Date
		}
		if todayErr != nil {
			continue
		}
		d, err := ParseDate(log.Date)
		if err != nil {
			continue
		}
		if IsSameWeek(d, today) {
			stats.WeeklyPoints += log.PointsEarned
		}
		if IsSameMonth(d, today) {
			stats.MonthlyPoints += log.PointsEarned
		}
	}

	streak := CalculateStreak(logs)
	stats.CurrentStreakDays = streak.CurrentDays
	stats.LongestStreakDays = streak.LongestDays
	return stats
}
