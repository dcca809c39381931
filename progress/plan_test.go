package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/lectioapp/lectio/models"
)

var planNow = time.Date(2025, 1, 8, 20, 30, 0, 0, time.UTC)

func TestPlanCompletionBase(t *testing.T) {
	plan, err := PlanCompletion(nil, CompletionDraft{Date: "2025-01-08", Mode: models.ModeToday}, 7, planNow)
	if err != nil {
		t.Fatalf("PlanCompletion: %v", err)
	}
	if plan.Points != 10 {
		t.Errorf("points = %d, want 10", plan.Points)
	}
	if plan.Log.Weekday != "wednesday" {
		t.Errorf("weekday = %q, want wednesday", plan.Log.Weekday)
	}
	if !plan.Log.Completed || plan.Log.PointsEarned != plan.Points {
		t.Errorf("log = %+v, want completed with baked points", plan.Log)
	}
	if !plan.Log.CompletedAt.Equal(planNow) {
		t.Errorf("CompletedAt = %v, want %v", plan.Log.CompletedAt, planNow)
	}
}

func TestPlanCompletionWeeklyBonus(t *testing.T) {
	// Target 3 days, two already done this week; the third submission
	// completes the week and earns the +20 bonus.
	history := completedLogs("2025-01-06", "2025-01-07")
	plan, err := PlanCompletion(history, CompletionDraft{Date: "2025-01-08", Mode: models.ModeToday}, 3, planNow)
	if err != nil {
		t.Fatalf("PlanCompletion: %v", err)
	}
	if !plan.Bonuses.AllWeekComplete {
		t.Error("expected AllWeekComplete bonus")
	}
	if plan.Points != 30 {
		t.Errorf("points = %d, want 30 (10 base + 20 weekly)", plan.Points)
	}
}

func TestPlanCompletionMilestoneBonus(t *testing.T) {
	history := completedLogs(
		"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04", "2025-01-05",
		"2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09",
	)
	plan, err := PlanCompletion(history, CompletionDraft{Date: "2025-01-10", Mode: models.ModeToday}, 7, planNow)
	if err != nil {
		t.Fatalf("PlanCompletion: %v", err)
	}
	if !plan.Bonuses.IsStreakMilestone {
		t.Errorf("10th consecutive day should be a milestone, streak %+v", plan.Streak)
	}
	if plan.Streak.CurrentDays != 10 {
		t.Errorf("preview streak = %d, want 10", plan.Streak.CurrentDays)
	}
}

func TestPlanCompletionMakeup(t *testing.T) {
	history := completedLogs("2025-01-06", "2025-01-08")
	plan, err := PlanCompletion(history, CompletionDraft{Date: "2025-01-07", Mode: models.ModeMakeup}, 7, planNow)
	if err != nil {
		t.Fatalf("PlanCompletion: %v", err)
	}
	if plan.Points != 5 {
		t.Errorf("makeup points = %d, want 5", plan.Points)
	}
	// Backfilling the gap joins the runs around it.
	if plan.Streak.CurrentDays != 3 {
		t.Errorf("preview streak = %d, want 3", plan.Streak.CurrentDays)
	}
}

func TestPlanCompletionDuplicateDate(t *testing.T) {
	history := completedLogs("2025-01-08")
	_, err := PlanCompletion(history, CompletionDraft{Date: "2025-01-08", Mode: models.ModeToday}, 7, planNow)
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestPlanCompletionBadDate(t *testing.T) {
	if _, err := PlanCompletion(nil, CompletionDraft{Date: "08/01/2025", Mode: models.ModeToday}, 7, planNow); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPlanCompletionCarriesSections(t *testing.T) {
	draft := CompletionDraft{
		Date:       "2025-01-08",
		Mode:       models.ModeToday,
		SectionIDs: []string{"a1", "b2"},
		Notes:      "finished early",
	}
	plan, err := PlanCompletion(nil, draft, 7, planNow)
	if err != nil {
		t.Fatalf("PlanCompletion: %v", err)
	}
	got := plan.Log.Sections()
	if len(got) != 2 || got[0] != "a1" || got[1] != "b2" {
		t.Errorf("sections = %v, want [a1 b2]", got)
	}
	if plan.Log.Notes != "finished early" {
		t.Errorf("notes = %q", plan.Log.Notes)
	}
}
