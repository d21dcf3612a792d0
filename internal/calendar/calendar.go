// Package calendar provides the single day-boundary definition used by
// streak updates and the daily/weekly challenge trackers. All comparisons
// work on local calendar days, never on time-of-day.
package calendar

import "time"

// dayFormat is the canonical calendar-day key, e.g. "2026-08-29".
const dayFormat = "2006-01-02"

// DayKey returns the calendar-day key for t in t's location.
func DayKey(t time.Time) string {
	return t.Format(dayFormat)
}

// IsToday reports whether day (a DayKey string) is the same calendar day as ref.
func IsToday(day string, ref time.Time) bool {
	return day == DayKey(ref)
}

// IsYesterday reports whether day (a DayKey string) is exactly the calendar
// day before ref. Crossing month and year boundaries is handled by AddDate.
func IsYesterday(day string, ref time.Time) bool {
	return day == DayKey(ref.AddDate(0, 0, -1))
}

// WeekStart returns midnight of the Sunday starting the week containing t.
func WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// WeekKey returns the calendar-day key of the week start containing t.
// Used to namespace weekly challenge flags.
func WeekKey(t time.Time) string {
	return DayKey(WeekStart(t))
}

// NextMidnight returns the first instant of the calendar day after t.
func NextMidnight(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, 1)
}
