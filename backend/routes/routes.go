package routes

import (
	"log"

	"studydash/backend/config"
	"studydash/backend/controllers"
	"studydash/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg, logger)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	authMiddleware := middleware.AuthMiddleware(cfg)

	// Profile routes
	profileController := controllers.NewProfileController(db, cfg, logger)
	user := app.Group("/api/user", authMiddleware)
	user.Get("/profile", profileController.GetProfile)
	user.Put("/profile", profileController.UpdateProfile)
	user.Get("/hours-mode", profileController.GetHoursMode)
	user.Put("/hours-mode", profileController.SetHoursMode)

	// Task routes
	taskController := controllers.NewTaskController(db, cfg, logger)
	tasks := app.Group("/api/tasks", authMiddleware)
	tasks.Get("/", taskController.GetTasks)
	tasks.Post("/", taskController.AddTask)
	tasks.Delete("/completed", taskController.ClearCompleted)
	tasks.Put("/:id/toggle", taskController.ToggleTask)
	tasks.Delete("/:id", taskController.DeleteTask)

	// Event routes
	eventController := controllers.NewEventController(db, cfg, logger)
	events := app.Group("/api/events", authMiddleware)
	events.Get("/", eventController.GetEvents)
	events.Post("/", eventController.AddEvent)
	events.Delete("/:id", eventController.DeleteEvent)

	// Course routes
	courseController := controllers.NewCourseController(db, cfg, logger)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", courseController.GetCourses)
	courses.Post("/", courseController.AddCourse)
	courses.Put("/:id/complete", courseController.CompleteCourse)
	courses.Put("/:id/reactivate", courseController.ReactivateCourse)
	courses.Delete("/:id", courseController.DeleteCourse)

	// Study session routes
	sessionController := controllers.NewSessionController(db, cfg, logger)
	sessions := app.Group("/api/sessions", authMiddleware)
	sessions.Post("/", sessionController.AddSession)
	sessions.Get("/weekly", sessionController.GetWeeklySessions)
	sessions.Get("/weekly/chart", sessionController.GetWeeklyChart)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(db, cfg, logger)
	app.Get("/api/streak", authMiddleware, dashboardController.GetStreak)
	app.Get("/api/challenges", authMiddleware, dashboardController.GetChallenges)
	app.Get("/api/calendar", authMiddleware, dashboardController.GetCalendar)

	// Focus timer routes
	timerController := controllers.NewTimerController(db, cfg, logger)
	timer := app.Group("/api/timer", authMiddleware)
	timer.Get("/", timerController.GetTimer)
	timer.Post("/start", timerController.StartTimer)
	timer.Post("/pause", timerController.PauseTimer)
	timer.Post("/resume", timerController.ResumeTimer)
	timer.Post("/reset", timerController.ResetTimer)
}
