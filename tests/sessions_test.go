package tests

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSessionStoresMinutes(t *testing.T) {
	status, body := request("POST", "/api/sessions", map[string]interface{}{
		"subject":       "Physics",
		"durationHours": 1.5,
		"type":          "study",
	}, jwtToken)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, 90.0, body["DurationMinutes"])
	assert.Equal(t, "Physics", body["Subject"])
}

func TestAddSessionDefaults(t *testing.T) {
	status, body := request("POST", "/api/sessions", map[string]interface{}{
		"durationHours": 0.5,
	}, jwtToken)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "General", body["Subject"])
	assert.Equal(t, "study", body["Type"])
}

func TestAddSessionRequiresDuration(t *testing.T) {
	status, _ := request("POST", "/api/sessions", map[string]interface{}{
		"subject": "No duration",
	}, jwtToken)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = request("POST", "/api/sessions", map[string]interface{}{
		"durationHours": -2,
	}, jwtToken)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestWeeklyChart(t *testing.T) {
	// Use a fresh user so earlier tests' sessions don't pollute the sums.
	token := registerUser(t, "chart@example.com")

	_, created := request("POST", "/api/sessions", map[string]interface{}{
		"subject":       "Maths",
		"durationHours": 1.5,
	}, token)
	require.Equal(t, 90.0, created["DurationMinutes"])

	request("POST", "/api/sessions", map[string]interface{}{
		"subject":       "Maths",
		"durationHours": 1.0,
		"type":          "exam",
		"date":          time.Now().AddDate(0, 0, -2).Format("2006-01-02"),
	}, token)

	status, buckets := requestList("GET", "/api/sessions/weekly/chart", token)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, buckets, 7)

	today := buckets[6].(map[string]interface{})
	assert.Equal(t, 1.5, today["study"])
	assert.Equal(t, 0.0, today["exam"])

	twoDaysAgo := buckets[4].(map[string]interface{})
	assert.Equal(t, 1.0, twoDaysAgo["exam"])

	var totalStudy float64
	for _, raw := range buckets {
		totalStudy += raw.(map[string]interface{})["study"].(float64)
	}
	assert.Equal(t, 1.5, totalStudy)
}

func TestWeeklySessionsWindow(t *testing.T) {
	token := registerUser(t, "window@example.com")

	request("POST", "/api/sessions", map[string]interface{}{
		"durationHours": 1.0,
	}, token)
	// Session outside the 7-day window must not show up.
	request("POST", "/api/sessions", map[string]interface{}{
		"durationHours": 2.0,
		"date":          time.Now().AddDate(0, 0, -10).Format("2006-01-02"),
	}, token)

	status, sessions := requestList("GET", "/api/sessions/weekly", token)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, sessions, 1)
}
