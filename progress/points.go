package progress

import "github.com/lectioapp/lectio/models"

// Point values. A makeup reading is worth less than reading on the day to
// keep catch-up rewarding without making procrastination free.
const (
	PointsToday    = 10
	PointsMakeup   = 5
	BonusAllWeek   = 20
	BonusMilestone = 5
)

// PointsInput describes one completion event at award time.
type PointsInput struct {
	Mode              string
	AllWeekComplete   bool
	IsStreakMilestone bool
}

// BonusFlags echoes which bonuses applied to an award, for display.
type BonusFlags struct {
	AllWeekComplete   bool `json:"all_week_complete"`
	IsStreakMilestone bool `json:"is_streak_milestone"`
}

// CalculatePoints maps a completion event to its point value. It is a
// total function: every validity check happens upstream.
func CalculatePoints(in PointsInput) int {
	points := PointsMakeup
	if in.Mode == models.ModeToday {
		points = PointsToday
	}
	if in.AllWeekComplete {
		points += BonusAllWeek
	}
	if in.IsStreakMilestone {
		points += BonusMilestone
	}
	return points
}

// GetBonusFlags mirrors the two bonus inputs for UI display.
func GetBonusFlags(in PointsInput) BonusFlags {
	return BonusFlags{
		AllWeekComplete:   in.AllWeekComplete,
		IsStreakMilestone: in.IsStreakMilestone,
	}
}
