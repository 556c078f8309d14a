package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var noon = time.Date(2026, time.March, 10, 12, 30, 0, 0, time.UTC)

func TestEvaluateStreakFirstLogin(t *testing.T) {
	// Stored streak is irrelevant when there is no last login.
	for _, current := range []int{0, 5, 99} {
		streak, persist := EvaluateStreak(noon, nil, current)
		assert.Equal(t, 1, streak)
		assert.True(t, persist)
	}
}

func TestEvaluateStreakSameDay(t *testing.T) {
	earlier := time.Date(2026, time.March, 10, 1, 0, 0, 0, time.UTC)
	streak, persist := EvaluateStreak(noon, &earlier, 5)
	assert.Equal(t, 5, streak)
	assert.False(t, persist)
}

func TestEvaluateStreakYesterday(t *testing.T) {
	yesterday := noon.AddDate(0, 0, -1)
	streak, persist := EvaluateStreak(noon, &yesterday, 5)
	assert.Equal(t, 6, streak)
	assert.True(t, persist)
}

func TestEvaluateStreakLateNightToEarlyMorning(t *testing.T) {
	// 23:50 yesterday to 00:10 today is still a one-day gap.
	lastLogin := time.Date(2026, time.March, 9, 23, 50, 0, 0, time.UTC)
	now := time.Date(2026, time.March, 10, 0, 10, 0, 0, time.UTC)
	streak, persist := EvaluateStreak(now, &lastLogin, 3)
	assert.Equal(t, 4, streak)
	assert.True(t, persist)
}

func TestEvaluateStreakGapResets(t *testing.T) {
	for _, days := range []int{2, 3, 30} {
		lastLogin := noon.AddDate(0, 0, -days)
		streak, persist := EvaluateStreak(noon, &lastLogin, 5)
		assert.Equal(t, 1, streak, "gap of %d days", days)
		assert.True(t, persist)
	}
}

func TestEvaluateStreakFutureLastLogin(t *testing.T) {
	// Clock skew: a future-dated record must not change anything.
	future := noon.AddDate(0, 0, 3)
	streak, persist := EvaluateStreak(noon, &future, 7)
	assert.Equal(t, 7, streak)
	assert.False(t, persist)
}
