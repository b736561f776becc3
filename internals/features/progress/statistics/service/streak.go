package service

import (
	"time"
)

// NextStreak applies the day-over-day streak rule on session completion.
// Same calendar day as the last activity leaves the streak untouched, the
// very next day extends it by one, any longer gap resets it to 1. Calendar
// days are compared in UTC.
func NextStreak(current, longest int, lastActivity *time.Time, now time.Time) (int, int) {
	next := 1
	if lastActivity != nil {
		switch daysBetween(*lastActivity, now) {
		case 0:
			next = current
			if next < 1 {
				next = 1
			}
		case 1:
			next = current + 1
		}
	}
	if next > longest {
		longest = next
	}
	return next, longest
}

func daysBetween(earlier, later time.Time) int {
	a := startOfDay(earlier)
	b := startOfDay(later)
	return int(b.Sub(a).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
