package ledger

import "time"

// DayKeyLayout is the canonical calendar-day key format.
const DayKeyLayout = "2006-01-02"

// DayKey returns the canonical YYYY-MM-DD key for t.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// DayOfYear is the 1-based ordinal day of t within its own year.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// DaysInYear returns 365 or 366 for the given calendar year.
func DaysInYear(year int) int {
	return time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

// DateOfDay returns the date of the 1-based day-of-year in year.
func DateOfDay(year, dayOfYear int) time.Time {
	return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, dayOfYear-1)
}
