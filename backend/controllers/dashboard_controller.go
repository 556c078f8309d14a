package controllers

import (
	"log"
	"time"

	"studydash/backend/config"
	"studydash/backend/models"
	"studydash/backend/planner"
	"studydash/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *log.Logger
}

func NewDashboardController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *DashboardController {
	return &DashboardController{DB: db, Cfg: cfg, Logger: logger}
}

// GetStreak godoc
// @Summary Daily login streak
// @Description Evaluates and, if needed, persists the user's daily streak
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /streak [get]
func (dc *DashboardController) GetStreak(c *fiber.Ctx) error {
	userID := currentUserID(c)
	now := time.Now()

	var user models.User
	if err := dc.DB.First(&user, userID).Error; err != nil {
		return utils.Neutral(c, dc.Logger, "streak", err, fiber.Map{"currentStreak": 0})
	}

	streak, persist := planner.EvaluateStreak(now, user.LastLoginDate, user.CurrentStreak)
	if persist {
		err := dc.DB.Model(&models.User{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"current_streak":  streak,
				"last_login_date": now,
			}).Error
		if err != nil {
			// Keep the best-known value rather than failing the widget.
			dc.Logger.Printf("streak update failed for user %d: %v", userID, err)
			streak = user.CurrentStreak
		}
	}

	return c.JSON(fiber.Map{"currentStreak": streak})
}

// GetChallenges godoc
// @Summary Pending challenges
// @Description Returns incomplete tasks and upcoming events as one result set
// @Tags dashboard
// @Produce json
// @Success 200 {object} planner.Challenges
// @Security ApiKeyAuth
// @Router /challenges [get]
func (dc *DashboardController) GetChallenges(c *fiber.Ctx) error {
	userID := currentUserID(c)
	now := time.Now()
	empty := planner.SelectChallenges(now, nil, nil)

	var tasks []models.Task
	if err := dc.DB.Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		return utils.Neutral(c, dc.Logger, "challenges", err, empty)
	}

	var events []models.Event
	if err := dc.DB.Where("user_id = ?", userID).Find(&events).Error; err != nil {
		return utils.Neutral(c, dc.Logger, "challenges", err, empty)
	}

	return c.JSON(planner.SelectChallenges(now, tasks, events))
}

// GetCalendar godoc
// @Summary Month grid
// @Description Returns the 6-week calendar grid with the user's tasks and events placed by day
// @Tags dashboard
// @Produce json
// @Param month query string false "Displayed month (YYYY-MM, defaults to current)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /calendar [get]
func (dc *DashboardController) GetCalendar(c *fiber.Ctx) error {
	userID := currentUserID(c)
	now := time.Now()

	month := now
	if m := c.Query("month"); m != "" {
		parsed, err := time.Parse("2006-01", m)
		if err != nil {
			return utils.BadRequest(c, "Invalid month, expected YYYY-MM")
		}
		month = parsed
	}
	neutral := fiber.Map{
		"month": month.Format("2006-01"),
		"cells": planner.MonthGrid(month, now, nil, nil),
	}

	var tasks []models.Task
	if err := dc.DB.Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		return utils.Neutral(c, dc.Logger, "calendar", err, neutral)
	}

	var events []models.Event
	if err := dc.DB.Where("user_id = ?", userID).Find(&events).Error; err != nil {
		return utils.Neutral(c, dc.Logger, "calendar", err, neutral)
	}

	return c.JSON(fiber.Map{
		"month": month.Format("2006-01"),
		"cells": planner.MonthGrid(month, now, tasks, events),
	})
}
