package controllers

import (
	"log"
	"math"
	"strings"
	"time"

	"studydash/backend/config"
	"studydash/backend/models"
	"studydash/backend/planner"
	"studydash/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SessionController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *log.Logger
}

func NewSessionController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *SessionController {
	return &SessionController{DB: db, Cfg: cfg, Logger: logger}
}

// AddSession godoc
// @Summary Log study hours
// @Description Records a study or exam session; duration is given in hours and stored as minutes
// @Tags sessions
// @Accept json
// @Produce json
// @Success 201 {object} models.StudySession
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /sessions [post]
func (sc *SessionController) AddSession(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var input struct {
		Subject       string  `json:"subject"`
		DurationHours float64 `json:"durationHours"`
		Type          string  `json:"type"`
		Date          string  `json:"date"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.DurationHours <= 0 {
		return utils.BadRequest(c, "Valid duration in hours is required")
	}

	sessionType := input.Type
	if sessionType == "" {
		sessionType = "study"
	}
	if sessionType != "study" && sessionType != "exam" {
		return utils.BadRequest(c, "Type must be study or exam")
	}

	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		subject = "General"
	}

	sessionDate := time.Now()
	if input.Date != "" {
		parsed, err := parseDate(input.Date)
		if err != nil {
			return utils.BadRequest(c, "Invalid date")
		}
		sessionDate = parsed
	}

	session := models.StudySession{
		UserID:          userID,
		Subject:         subject,
		DurationMinutes: int(math.Round(input.DurationHours * 60)),
		Type:            sessionType,
		Date:            sessionDate,
	}
	if err := sc.DB.Create(&session).Error; err != nil {
		return utils.InternalServerError(c, "Could not add study session")
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetWeeklySessions godoc
// @Summary List this week's sessions
// @Description Returns raw study sessions from the last 7 calendar days
// @Tags sessions
// @Produce json
// @Success 200 {array} models.StudySession
// @Security ApiKeyAuth
// @Router /sessions/weekly [get]
func (sc *SessionController) GetWeeklySessions(c *fiber.Ctx) error {
	userID := currentUserID(c)

	sessions, err := sc.weeklySessions(userID, time.Now())
	if err != nil {
		return utils.Neutral(c, sc.Logger, "weekly sessions", err, []models.StudySession{})
	}

	return c.JSON(sessions)
}

// GetWeeklyChart godoc
// @Summary Weekly hours chart
// @Description Returns 7 day buckets of study and exam hours, oldest first
// @Tags sessions
// @Produce json
// @Success 200 {array} planner.DayBucket
// @Security ApiKeyAuth
// @Router /sessions/weekly/chart [get]
func (sc *SessionController) GetWeeklyChart(c *fiber.Ctx) error {
	userID := currentUserID(c)
	now := time.Now()

	sessions, err := sc.weeklySessions(userID, now)
	if err != nil {
		return utils.Neutral(c, sc.Logger, "weekly chart", err, planner.WeeklyBuckets(now, nil))
	}

	return c.JSON(planner.WeeklyBuckets(now, sessions))
}

func (sc *SessionController) weeklySessions(userID uint, now time.Time) ([]models.StudySession, error) {
	windowStart := planner.StartOfDay(now).AddDate(0, 0, -6)
	windowEnd := planner.StartOfDay(now).AddDate(0, 0, 1)

	sessions := []models.StudySession{}
	err := sc.DB.Where("user_id = ? AND date >= ? AND date < ?", userID, windowStart, windowEnd).
		Order("date ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
