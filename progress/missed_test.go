package progress

import (
	"testing"

	"github.com/lectioapp/lectio/models"
)

func TestExpectedWeekdays(t *testing.T) {
	cases := []struct {
		target int
		want   []string
	}{
		{0, nil},
		{1, []string{"monday"}},
		{3, []string{"monday", "tuesday", "wednesday"}},
		{7, []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}},
		{9, []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}},
	}
	for _, c := range cases {
		got := ExpectedWeekdays(c.target)
		if len(got) != len(c.want) {
			t.Errorf("ExpectedWeekdays(%d) = %v, want %v", c.target, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("ExpectedWeekdays(%d)[%d] = %q, want %q", c.target, i, got[i], c.want[i])
			}
		}
	}
}

func TestIsExpectedDay(t *testing.T) {
	mon, _ := ParseDate("2025-01-06")
	thu, _ := ParseDate("2025-01-09")
	sun, _ := ParseDate("2025-01-12")

	if !IsExpectedDay(mon, 1) {
		t.Error("monday should be expected at target 1")
	}
	if IsExpectedDay(thu, 3) {
		t.Error("thursday must not be expected at target 3")
	}
	if !IsExpectedDay(sun, 7) {
		t.Error("sunday should be expected at target 7")
	}
	if IsExpectedDay(mon, 0) {
		t.Error("nothing is expected at target 0")
	}
}

func TestMissedDaysBasicWindow(t *testing.T) {
	// Week of 2025-01-06 (monday), today is thursday; tuesday was skipped.
	logs := completedLogs("2025-01-06", "2025-01-08")
	missed := MissedDays(logs, MissedQuery{
		Today:             "2025-01-09",
		LookbackDays:      7,
		TargetDaysPerWeek: 7,
	})
	var dates []string
	for _, m := range missed {
		dates = append(dates, m.Date)
	}
	// Most-recent-first, everything in the window except completed days.
	want := []string{"2025-01-07", "2025-01-05", "2025-01-04", "2025-01-03", "2025-01-02"}
	if len(dates) != len(want) {
		t.Fatalf("missed = %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("missed = %v, want %v", dates, want)
		}
	}
	if missed[0].Weekday != "tuesday" {
		t.Errorf("weekday of %s = %q, want tuesday", missed[0].Date, missed[0].Weekday)
	}
}

func TestMissedDaysRespectsStartDate(t *testing.T) {
	missed := MissedDays(nil, MissedQuery{
		Today:             "2025-01-09",
		StartDate:         "2025-01-07",
		LookbackDays:      30,
		TargetDaysPerWeek: 7,
	})
	for _, m := range missed {
		if m.Date < "2025-01-07" {
			t.Errorf("day %s precedes start date", m.Date)
		}
	}
	if len(missed) != 2 {
		t.Fatalf("missed = %v, want exactly 01-07 and 01-08", missed)
	}
}

func TestMissedDaysTodayNeverMissed(t *testing.T) {
	missed := MissedDays(nil, MissedQuery{
		Today:             "2025-01-06",
		StartDate:         "2025-01-06",
		LookbackDays:      7,
		TargetDaysPerWeek: 7,
	})
	if len(missed) != 0 {
		t.Fatalf("missed = %v, want none on the start day itself", missed)
	}
}

func TestMissedDaysHonorsTargetPolicy(t *testing.T) {
	// Target 3: only monday-wednesday are expected. Window covers a full week.
	missed := MissedDays(nil, MissedQuery{
		Today:             "2025-01-13", // next monday
		StartDate:         "2025-01-06",
		LookbackDays:      7,
		TargetDaysPerWeek: 3,
	})
	var dates []string
	for _, m := range missed {
		dates = append(dates, m.Date)
	}
	want := []string{"2025-01-08", "2025-01-07", "2025-01-06"}
	if len(dates) != len(want) {
		t.Fatalf("missed = %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("missed = %v, want %v", dates, want)
		}
	}
}

func TestMissedDaysMakeupRemovesEntry(t *testing.T) {
	q := MissedQuery{
		Today:             "2025-01-09",
		StartDate:         "2025-01-06",
		LookbackDays:      7,
		TargetDaysPerWeek: 7,
	}
	before := MissedDays(completedLogs("2025-01-06", "2025-01-08"), q)
	after := MissedDays(completedLogs("2025-01-06", "2025-01-07", "2025-01-08"), q)
	if len(after) != len(before)-1 {
		t.Fatalf("makeup completion: %d -> %d missed, want one fewer", len(before), len(after))
	}
	for _, m := range after {
		if m.Date == "2025-01-07" {
			t.Error("backfilled day still reported missed")
		}
	}
}

func TestMissedDaysIgnoresUncompletedLogs(t *testing.T) {
	logs := []models.ReadingLog{{Date: "2025-01-07", Completed: false}}
	missed := MissedDays(logs, MissedQuery{
		Today:             "2025-01-09",
		StartDate:         "2025-01-07",
		LookbackDays:      7,
		TargetDaysPerWeek: 7,
	})
	found := false
	for _, m := range missed {
		if m.Date == "2025-01-07" {
			found = true
		}
	}
	if !found {
		t.Error("uncompleted log should not clear a missed day")
	}
}

func TestMissedDaysBadTodayReturnsNothing(t *testing.T) {
	if got := MissedDays(nil, MissedQuery{Today: "garbage", LookbackDays: 7, TargetDaysPerWeek: 7}); got != nil {
		t.Fatalf("got %v for unparseable today", got)
	}
}
