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

type TaskController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *log.Logger
}

func NewTaskController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *TaskController {
	return &TaskController{DB: db, Cfg: cfg, Logger: logger}
}

// GetTasks godoc
// @Summary List tasks
// @Description Returns all tasks of the authenticated user, newest first
// @Tags tasks
// @Produce json
// @Success 200 {array} models.Task
// @Security ApiKeyAuth
// @Router /tasks [get]
func (tc *TaskController) GetTasks(c *fiber.Ctx) error {
	userID := currentUserID(c)

	tasks := []models.Task{}
	err := tc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return utils.Neutral(c, tc.Logger, "list tasks", err, []models.Task{})
	}

	return c.JSON(tasks)
}

// AddTask godoc
// @Summary Create a task
// @Description Creates a task; an optional time label is folded into the subject
// @Tags tasks
// @Accept json
// @Produce json
// @Success 201 {object} models.Task
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks [post]
func (tc *TaskController) AddTask(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var input struct {
		Title   string `json:"title"`
		Subject string `json:"subject"`
		Time    string `json:"time"`
		DueDate string `json:"dueDate"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return utils.BadRequest(c, "Title is required")
	}

	subject := strings.TrimSpace(input.Subject)
	if t := strings.TrimSpace(input.Time); t != "" {
		if subject != "" {
			subject = subject + " | " + t
		} else {
			subject = t
		}
	}

	task := models.Task{
		UserID:  userID,
		Title:   title,
		Subject: subject,
	}
	if input.DueDate != "" {
		due, err := parseDate(input.DueDate)
		if err != nil {
			return utils.BadRequest(c, "Invalid due date")
		}
		task.DueDate = &due
	}

	if err := tc.DB.Create(&task).Error; err != nil {
		return utils.InternalServerError(c, "Could not create task")
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// ToggleTask godoc
// @Summary Toggle task completion
// @Description Flips the completion flag of one of the user's tasks
// @Tags tasks
// @Produce json
// @Success 200 {object} models.Task
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks/{id}/toggle [put]
func (tc *TaskController) ToggleTask(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var task models.Task
	if err := tc.DB.Where("user_id = ? AND id = ?", userID, c.Params("id")).First(&task).Error; err != nil {
		return utils.NotFound(c, "Task not found")
	}

	task.IsCompleted = !task.IsCompleted
	if err := tc.DB.Save(&task).Error; err != nil {
		return utils.InternalServerError(c, "Could not update task")
	}

	return c.JSON(task)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /tasks/{id} [delete]
func (tc *TaskController) DeleteTask(c *fiber.Ctx) error {
	userID := currentUserID(c)

	err := tc.DB.Where("user_id = ? AND id = ?", userID, c.Params("id")).
		Delete(&models.Task{}).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not delete task")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

// ClearCompleted godoc
// @Summary Delete all completed tasks
// @Tags tasks
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /tasks/completed [delete]
func (tc *TaskController) ClearCompleted(c *fiber.Ctx) error {
	userID := currentUserID(c)

	err := tc.DB.Where("user_id = ? AND is_completed = ?", userID, true).
		Delete(&models.Task{}).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not clear completed tasks")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"cleared": true})
}
