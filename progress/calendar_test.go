package progress

import (
	"testing"
	"time"
)

func TestParseFormatRoundTrip(t *testing.T) {
	dates := []string{"2025-01-01", "2025-02-28", "2024-02-29", "2025-12-31", "1999-07-04"}
	for _, s := range dates {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		if got := FormatDate(d); got != s {
			t.Errorf("round trip %q: got %q", s, got)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2025-1-1", "not-a-date", "2025/01/01"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q): expected error", s)
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-01-06", "monday"},
		{"2025-01-07", "tuesday"},
		{"2025-01-10", "friday"},
		{"2025-01-11", "saturday"},
		{"2025-01-12", "sunday"},
	}
	for _, c := range cases {
		d, err := ParseDate(c.date)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", c.date, err)
		}
		if got := WeekdayOf(d); got != c.want {
			t.Errorf("WeekdayOf(%s) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-01-06", "2025-01-06"}, // monday maps to itself
		{"2025-01-08", "2025-01-06"},
		{"2025-01-12", "2025-01-06"}, // sunday belongs to the preceding monday
		{"2025-03-01", "2025-02-24"}, // month boundary
	}
	for _, c := range cases {
		d, _ := ParseDate(c.date)
		if got := FormatDate(StartOfWeek(d)); got != c.want {
			t.Errorf("StartOfWeek(%s) = %s, want %s", c.date, got, c.want)
		}
	}
}

func TestDateForWeekdayDeterminism(t *testing.T) {
	refs := []string{"2025-01-06", "2025-01-09", "2025-01-12", "2024-02-29", "2025-12-31"}
	for _, refStr := range refs {
		ref, _ := ParseDate(refStr)
		for _, w := range Weekdays {
			ds, err := DateForWeekdayInCurrentWeek(w, ref)
			if err != nil {
				t.Fatalf("DateForWeekdayInCurrentWeek(%q, %s): %v", w, refStr, err)
			}
			d, _ := ParseDate(ds)
			if got := WeekdayOf(d); got != w {
				t.Errorf("weekday of %s = %q, want %q (ref %s)", ds, got, w, refStr)
			}
			if !IsSameWeek(d, ref) {
				t.Errorf("%s not in same week as ref %s", ds, refStr)
			}
		}
	}
}

func TestDateForUnknownWeekday(t *testing.T) {
	ref, _ := ParseDate("2025-01-06")
	if _, err := DateForWeekdayInCurrentWeek("caturday", ref); err == nil {
		t.Fatal("expected error for unknown weekday")
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2025-01-01", "2025-01-01", 0},
		{"2025-01-01", "2025-01-02", 1},
		{"2025-01-02", "2025-01-01", -1},
		{"2024-12-31", "2025-01-01", 1},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2025-01-01", "2025-12-31", 364},
	}
	for _, c := range cases {
		a, _ := ParseDate(c.a)
		b, _ := ParseDate(c.b)
		if got := DaysBetween(a, b); got != c.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDaysBetweenRoundsFractionalDays(t *testing.T) {
	// A non-midnight operand must not shift the count by a whole day.
	a := time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 31, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 2 {
		t.Errorf("DaysBetween with hour offset = %d, want 2", got)
	}
}

func TestAddDays(t *testing.T) {
	d, _ := ParseDate("2025-01-31")
	if got := FormatDate(AddDays(d, 1)); got != "2025-02-01" {
		t.Errorf("AddDays +1 = %s, want 2025-02-01", got)
	}
	if got := FormatDate(AddDays(d, -31)); got != "2024-12-31" {
		t.Errorf("AddDays -31 = %s, want 2024-12-31", got)
	}
}

func TestIsSameWeekAndMonth(t *testing.T) {
	mon, _ := ParseDate("2025-01-06")
	sun, _ := ParseDate("2025-01-12")
	nextMon, _ := ParseDate("2025-01-13")
	feb, _ := ParseDate("2025-02-03")

	if !IsSameWeek(mon, sun) {
		t.Error("monday and its sunday should share a week")
	}
	if IsSameWeek(sun, nextMon) {
		t.Error("sunday and the following monday must not share a week")
	}
	if !IsSameMonth(mon, nextMon) {
		t.Error("two january dates should share a month")
	}
	if IsSameMonth(mon, feb) {
		t.Error("january and february must not share a month")
	}
}
