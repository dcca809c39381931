package progress

import (
	"testing"

	"github.com/lectioapp/lectio/models"
)

func TestComputeUserStatsEmpty(t *testing.T) {
	got := ComputeUserStats(nil, "2025-01-09")
	if got.TotalPoints != 0 || got.TotalReadings != 0 || got.LastCompletedDate != "" {
		t.Fatalf("empty history: got %+v", got)
	}
}

func TestComputeUserStats(t *testing.T) {
	logs := []models.ReadingLog{
		{Date: "2024-12-30", Completed: true, PointsEarned: 10}, // previous month, previous week
		{Date: "2025-01-06", Completed: true, PointsEarned: 10}, // this week (mon)
		{Date: "2025-01-07", Completed: true, PointsEarned: 35}, // this week
		{Date: "2025-01-08", Completed: true, PointsEarned: 10}, // this week
		{Date: "2025-01-02", Completed: true, PointsEarned: 5},  // this month, previous week
		{Date: "2025-01-03", Completed: false, PointsEarned: 99},
	}
	got := ComputeUserStats(logs, "2025-01-09")

	if got.TotalReadings != 5 {
		t.Errorf("TotalReadings = %d, want 5", got.TotalReadings)
	}
	if got.TotalPoints != 70 {
		t.Errorf("TotalPoints = %d, want 70", got.TotalPoints)
	}
	if got.WeeklyPoints != 55 {
		t.Errorf("WeeklyPoints = %d, want 55", got.WeeklyPoints)
	}
	if got.MonthlyPoints != 60 {
		t.Errorf("MonthlyPoints = %d, want 60", got.MonthlyPoints)
	}
	if got.LastCompletedDate != "2025-01-08" {
		t.Errorf("LastCompletedDate = %q, want 2025-01-08", got.LastCompletedDate)
	}
	if got.CurrentStreakDays != 3 {
		t.Errorf("CurrentStreakDays = %d, want 3", got.CurrentStreakDays)
	}
	if got.LongestStreakDays != 3 {
		t.Errorf("LongestStreakDays = %d, want 3", got.LongestStreakDays)
	}
}

func TestComputeUserStatsUnparseableTodayStillTotals(t *testing.T) {
	logs := completedLogs("2025-01-06", "2025-01-07")
	logs[0].PointsEarned = 10
	logs[1].PointsEarned = 10
	got := ComputeUserStats(logs, "not-a-date")
	if got.TotalPoints != 20 || got.WeeklyPoints != 0 || got.MonthlyPoints != 0 {
		t.Fatalf("got %+v, want totals without week/month buckets", got)
	}
}
