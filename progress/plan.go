package progress

import (
	"errors"
	"time"

	"github.com/lectioapp/lectio/models"
)

// ErrAlreadyCompleted signals that the draft's date already has a
// completed log. Callers should treat it as success-equivalent so retries
// and double submissions stay idempotent; the database unique index
// remains the atomic guard under concurrency.
var ErrAlreadyCompleted = errors.New("reading already completed for date")

// CompletionDraft is a completion intent before points are decided.
type CompletionDraft struct {
	Date       string
	Mode       string
	SectionIDs []string
	Notes      string
}

// CompletionPlan is the finalized outcome of a draft: the log row to
// persist with its points baked in, plus the preview numbers for display.
type CompletionPlan struct {
	Log     models.ReadingLog
	Points  int
	Bonuses BonusFlags
	Streak  Streak
}

// PlanCompletion turns a draft into the exact log record to persist.
// It previews the streak as if the draft already existed, derives the
// weekly and milestone bonus flags from that preview, and bakes the
// resulting point value into the record, so PointsEarned never needs
// retroactive recomputation.
func PlanCompletion(history []models.ReadingLog, draft CompletionDraft, targetDaysPerWeek int, now time.Time) (CompletionPlan, error) {
	date, err := ParseDate(draft.Date)
	if err != nil {
		return CompletionPlan{}, err
	}
	for i := range history {
		if history[i].Completed && history[i].Date == draft.Date {
			return CompletionPlan{}, ErrAlreadyCompleted
		}
	}

	entry := models.ReadingLog{
		Date:        draft.Date,
		Weekday:     WeekdayOf(date),
		Mode:        draft.Mode,
		Completed:   true,
		CompletedAt: now,
		Notes:       draft.Notes,
	}
	entry.SetSections(draft.SectionIDs)

	preview := CalculateStreak(append(append([]models.ReadingLog{}, history...), entry))

	in := PointsInput{
		Mode:              draft.Mode,
		AllWeekComplete:   allWeekComplete(history, date, targetDaysPerWeek),
		IsStreakMilestone: IsStreakMilestone(preview.CurrentDays),
	}
	entry.PointsEarned = CalculatePoints(in)

	return CompletionPlan{
		Log:     entry,
		Points:  entry.PointsEarned,
		Bonuses: GetBonusFlags(in),
		Streak:  preview,
	}, nil
}

// allWeekComplete reports whether the draft date is the user's last
// outstanding reading of its week: distinct completed days in that week,
// counting the draft itself, reach the weekly target.
func allWeekComplete(history []models.ReadingLog, draftDate time.Time, targetDaysPerWeek int) bool {
	if targetDaysPerWeek < 1 {
		return false
	}
	days := map[string]bool{FormatDate(draftDate): true}
	for i := range history {
		if !history[i].Completed {
			continue
		}
		d, err := ParseDate(history[i].Date)
		if err != nil {
			continue
		}
		if IsSameWeek(d, draftDate) {
			days[history[i].Date] = true
		}
	}
	return len(days) >= targetDaysPerWeek
}
