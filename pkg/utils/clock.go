package utils

import "time"

// WeekBoundaries returns the UTC week containing t: Monday 00:00:00.000
// through Sunday 23:59:59.999.
func WeekBoundaries(t time.Time) (weekStart, weekEnd time.Time) {
	t = t.UTC()
	day := int(t.Weekday())
	if day == 0 {
		day = 7 // Sunday counts as the last day of the week
	}
	weekStart = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -(day - 1))
	weekEnd = weekStart.AddDate(0, 0, 7).Add(-time.Millisecond)
	return weekStart, weekEnd
}

// StartOfDayUTC truncates t to UTC midnight.
func StartOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// UntilEndOfWeek is the cache TTL for weekly assignments.
func UntilEndOfWeek(now time.Time) time.Duration {
	_, weekEnd := WeekBoundaries(now)
	return weekEnd.Sub(now.UTC())
}

// UntilNextMidnightUTC is the cache TTL for daily quotes.
func UntilNextMidnightUTC(now time.Time) time.Duration {
	return StartOfDayUTC(now).AddDate(0, 0, 1).Sub(now.UTC())
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
