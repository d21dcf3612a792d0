package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 4, 5, 0, time.Local)
}

func TestDayKey(t *testing.T) {
	got := DayKey(date(2026, time.August, 29))
	if got != "2026-08-29" {
		t.Errorf("DayKey = %q, want %q", got, "2026-08-29")
	}
}

func TestIsToday(t *testing.T) {
	ref := date(2026, time.March, 1)

	if !IsToday("2026-03-01", ref) {
		t.Error("expected same day to be today")
	}
	if IsToday("2026-02-28", ref) {
		t.Error("expected previous day not to be today")
	}
	if IsToday("", ref) {
		t.Error("expected empty day not to be today")
	}
}

func TestIsYesterday(t *testing.T) {
	tests := []struct {
		day  string
		ref  time.Time
		want bool
	}{
		{"2026-08-28", date(2026, time.August, 29), true},
		{"2026-08-29", date(2026, time.August, 29), false},
		{"2026-08-27", date(2026, time.August, 29), false},
		// Month boundary.
		{"2026-02-28", date(2026, time.March, 1), true},
		// Year boundary.
		{"2025-12-31", date(2026, time.January, 1), true},
		{"", date(2026, time.August, 29), false},
	}

	for _, tt := range tests {
		got := IsYesterday(tt.day, tt.ref)
		if got != tt.want {
			t.Errorf("IsYesterday(%q, %s) = %v, want %v", tt.day, DayKey(tt.ref), got, tt.want)
		}
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		// 2026-08-29 is a Saturday; week starts Sunday 2026-08-23.
		{date(2026, time.August, 29), "2026-08-23"},
		// A Sunday is its own week start.
		{date(2026, time.August, 23), "2026-08-23"},
		// A Monday rolls back one day.
		{date(2026, time.August, 24), "2026-08-23"},
	}

	for _, tt := range tests {
		ws := WeekStart(tt.in)
		if DayKey(ws) != tt.want {
			t.Errorf("WeekStart(%s) = %s, want %s", DayKey(tt.in), DayKey(ws), tt.want)
		}
		if ws.Hour() != 0 || ws.Minute() != 0 {
			t.Errorf("WeekStart(%s) not at midnight: %s", DayKey(tt.in), ws)
		}
	}
}

func TestNextMidnight(t *testing.T) {
	next := NextMidnight(date(2026, time.August, 29))
	if DayKey(next) != "2026-08-30" {
		t.Errorf("NextMidnight day = %s, want 2026-08-30", DayKey(next))
	}
	if next.Hour() != 0 || next.Minute() != 0 || next.Second() != 0 {
		t.Errorf("NextMidnight not at midnight: %s", next)
	}
}
