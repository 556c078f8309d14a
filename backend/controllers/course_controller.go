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

type CourseController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *log.Logger
}

func NewCourseController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *CourseController {
	return &CourseController{DB: db, Cfg: cfg, Logger: logger}
}

// GetCourses godoc
// @Summary List courses
// @Description Returns all courses of the authenticated user, newest first
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Security ApiKeyAuth
// @Router /courses [get]
func (cc *CourseController) GetCourses(c *fiber.Ctx) error {
	userID := currentUserID(c)

	courses := []models.Course{}
	err := cc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return utils.Neutral(c, cc.Logger, "list courses", err, []models.Course{})
	}

	return c.JSON(courses)
}

// AddCourse godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Success 201 {object} models.Course
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses [post]
func (cc *CourseController) AddCourse(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return utils.BadRequest(c, "Course name is required")
	}

	course := models.Course{
		UserID: userID,
		Name:   name,
		Status: "active",
	}
	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

// CompleteCourse godoc
// @Summary Mark course completed
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/complete [put]
func (cc *CourseController) CompleteCourse(c *fiber.Ctx) error {
	return cc.setStatus(c, "completed")
}

// ReactivateCourse godoc
// @Summary Mark course active again
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/reactivate [put]
func (cc *CourseController) ReactivateCourse(c *fiber.Ctx) error {
	return cc.setStatus(c, "active")
}

func (cc *CourseController) setStatus(c *fiber.Ctx, status string) error {
	userID := currentUserID(c)

	result := cc.DB.Model(&models.Course{}).
		Where("user_id = ? AND id = ?", userID, c.Params("id")).
		Update("status", status)
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not update course")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Course not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"status": status})
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /courses/{id} [delete]
func (cc *CourseController) DeleteCourse(c *fiber.Ctx) error {
	userID := currentUserID(c)

	err := cc.DB.Where("user_id = ? AND id = ?", userID, c.Params("id")).
		Delete(&models.Course{}).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not delete course")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
