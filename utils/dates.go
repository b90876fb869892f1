package utils

import "time"

// StartOfWeek truncates t to midnight on the Monday of its calendar week.
func StartOfWeek(t time.Time) time.Time {
	day := DateOnly(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday rolls back to the previous Monday
	}
	return day.AddDate(0, 0, -offset)
}

// DateOnly drops the clock, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil is the exact calendar-day difference from 'from' to 'to'.
// Negative when 'to' is in the past. The clock portion is ignored.
// Both dates are rebuilt in UTC before subtracting so that DST
// transitions never shorten a day below 24 hours.
func DaysUntil(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
