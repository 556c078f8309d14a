package controllers

import (
	"log"
	"strings"
	"time"

	"studydash/backend/config"
	"studydash/backend/models"
	"studydash/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EventController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *log.Logger
}

func NewEventController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *EventController {
	return &EventController{DB: db, Cfg: cfg, Logger: logger}
}

// GetEvents godoc
// @Summary List events
// @Description Returns all classes and exams of the authenticated user, soonest first
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Security ApiKeyAuth
// @Router /events [get]
func (ec *EventController) GetEvents(c *fiber.Ctx) error {
	userID := currentUserID(c)

	events := []models.Event{}
	err := ec.DB.Where("user_id = ?", userID).
		Order("date ASC").
		Find(&events).Error
	if err != nil {
		return utils.Neutral(c, ec.Logger, "list events", err, []models.Event{})
	}

	return c.JSON(events)
}

// AddEvent godoc
// @Summary Create an event
// @Description Adds a class or exam; the date defaults to today
// @Tags events
// @Accept json
// @Produce json
// @Success 201 {object} models.Event
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /events [post]
func (ec *EventController) AddEvent(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var input struct {
		Title      string `json:"title"`
		CourseName string `json:"courseName"`
		Time       string `json:"time"`
		Link       string `json:"link"`
		Type       string `json:"type"`
		Date       string `json:"date"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if strings.TrimSpace(input.Title) == "" {
		return utils.BadRequest(c, "Title is required")
	}

	eventType := input.Type
	if eventType == "" {
		eventType = "class"
	}
	if eventType != "class" && eventType != "exam" {
		return utils.BadRequest(c, "Type must be class or exam")
	}

	eventDate := time.Now()
	if input.Date != "" {
		parsed, err := parseDate(input.Date)
		if err != nil {
			return utils.BadRequest(c, "Invalid date")
		}
		eventDate = parsed
	}

	event := models.Event{
		UserID:     userID,
		Title:      strings.TrimSpace(input.Title),
		Date:       eventDate,
		Type:       eventType,
		CourseName: input.CourseName,
		TimeRange:  input.Time,
		Link:       input.Link,
	}
	if err := ec.DB.Create(&event).Error; err != nil {
		return utils.InternalServerError(c, "Could not create event")
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /events/{id} [delete]
func (ec *EventController) DeleteEvent(c *fiber.Ctx) error {
	userID := currentUserID(c)

	err := ec.DB.Where("user_id = ? AND id = ?", userID, c.Params("id")).
		Delete(&models.Event{}).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not delete event")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
