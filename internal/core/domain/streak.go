package domain

import "time"

// NextStreak computes the consecutive-day activity streak after an activity on
// today. lastActivity is the previous activity timestamp BEFORE today's login
// was recorded; passing the just-written value would always return current.
// Comparison is by UTC calendar day.
func NextStreak(lastActivity *time.Time, current int, today time.Time) int {
	if lastActivity == nil {
		return 1
	}

	last := truncateDay(*lastActivity)
	day := truncateDay(today)

	switch int(day.Sub(last).Hours() / 24) {
	case 0:
		return current
	case 1:
		return current + 1
	default:
		return 1
	}
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
