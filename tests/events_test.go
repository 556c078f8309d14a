package tests

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEvent(t *testing.T) {
	status, body := request("POST", "/api/events", map[string]interface{}{
		"title":      "Calculus lecture",
		"courseName": "Calculus I",
		"time":       "10:00 - 11:30",
		"link":       "https://meet.example.com/calc",
		"date":       "2026-09-02",
	}, jwtToken)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Calculus lecture", body["Title"])
	assert.Equal(t, "class", body["Type"]) // default type
	assert.Equal(t, "10:00 - 11:30", body["TimeRange"])
}

func TestAddEventRequiresTitle(t *testing.T) {
	status, _ := request("POST", "/api/events", map[string]interface{}{
		"date": "2026-09-02",
	}, jwtToken)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAddEventRejectsUnknownType(t *testing.T) {
	status, _ := request("POST", "/api/events", map[string]interface{}{
		"title": "Mystery",
		"type":  "party",
	}, jwtToken)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestDeleteEvent(t *testing.T) {
	_, created := request("POST", "/api/events", map[string]interface{}{
		"title": "Removable",
		"date":  "2026-09-10",
	}, jwtToken)
	id := created["ID"].(float64)

	status, _ := request("DELETE", fmt.Sprintf("/api/events/%.0f", id), nil, jwtToken)
	require.Equal(t, fiber.StatusOK, status)

	_, events := requestList("GET", "/api/events/", jwtToken)
	for _, raw := range events {
		event := raw.(map[string]interface{})
		assert.NotEqual(t, id, event["ID"].(float64))
	}
}

func TestEventsAreScopedToOwner(t *testing.T) {
	otherToken := registerUser(t, "events-other@example.com")

	request("POST", "/api/events", map[string]interface{}{
		"title": "Mine only",
		"date":  "2026-09-15",
	}, jwtToken)

	_, events := requestList("GET", "/api/events/", otherToken)
	assert.Empty(t, events)
}
