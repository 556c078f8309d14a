package planner

import "time"

// EvaluateStreak computes the next login-streak value for a user who is
// active at `now`, given the stored last login and current streak. The
// second return value tells the caller whether the new streak and `now`
// must be written back.
//
// A gap of exactly one calendar day extends the streak, a longer gap
// resets it to 1, and a repeat login on the same day changes nothing.
// A last login in the future (clock skew) is treated like a same-day
// login: the stored streak is returned untouched and nothing is written.
func EvaluateStreak(now time.Time, lastLogin *time.Time, current int) (int, bool) {
	if lastLogin == nil {
		// First ever login.
		return 1, true
	}

	switch days := CalendarDays(*lastLogin, now); {
	case days == 1:
		return current + 1, true
	case days > 1:
		return 1, true
	default:
		return current, false
	}
}
