package controllers

import (
	"log"
	"strings"

	"studydash/backend/config"
	"studydash/backend/models"
	"studydash/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProfileController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *log.Logger
}

func NewProfileController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *ProfileController {
	return &ProfileController{DB: db, Cfg: cfg, Logger: logger}
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the authenticated user's profile data
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := pc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"collegeName":   user.CollegeName,
		"currentStreak": user.CurrentStreak,
		"hoursMode":     user.HoursMode,
		"created_at":    user.CreatedAt,
	})
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Updates the authenticated user's display name and college
// @Tags user
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [put]
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var input struct {
		Name        string `json:"name"`
		CollegeName string `json:"collegeName"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return utils.BadRequest(c, "Name is required")
	}

	err := pc.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"name":         name,
			"college_name": strings.TrimSpace(input.CollegeName),
		}).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"updated": true})
}

// GetHoursMode godoc
// @Summary Get hours tracking mode
// @Description Returns how the user tracks study hours (manual or automatic)
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /user/hours-mode [get]
func (pc *ProfileController) GetHoursMode(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := pc.DB.First(&user, userID).Error; err != nil {
		// Unknown user degrades to the default mode.
		return utils.Neutral(c, pc.Logger, "get hours mode", err, fiber.Map{"hoursMode": "manual"})
	}

	mode := user.HoursMode
	if mode == "" {
		mode = "manual"
	}
	return c.JSON(fiber.Map{"hoursMode": mode})
}

// SetHoursMode godoc
// @Summary Set hours tracking mode
// @Description Switches study-hours tracking between manual and automatic
// @Tags user
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/hours-mode [put]
func (pc *ProfileController) SetHoursMode(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var input struct {
		HoursMode string `json:"hoursMode"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.HoursMode != "manual" && input.HoursMode != "automatic" {
		return utils.BadRequest(c, "hoursMode must be manual or automatic")
	}

	err := pc.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("hours_mode", input.HoursMode).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not update study settings")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"hoursMode": input.HoursMode})
}
