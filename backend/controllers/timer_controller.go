package controllers

import (
	"log"
	"sync"
	"time"

	"studydash/backend/config"
	"studydash/backend/models"
	"studydash/backend/planner"
	"studydash/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TimerController keeps one in-memory focus timer per user. Timers are
// never persisted; a restart simply forgets them.
type TimerController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *log.Logger

	mu     sync.Mutex
	timers map[uint]*planner.Timer
}

func NewTimerController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *TimerController {
	return &TimerController{DB: db, Cfg: cfg, Logger: logger, timers: make(map[uint]*planner.Timer)}
}

type timerState struct {
	Phase            planner.TimerPhase `json:"phase"`
	Cycle            int                `json:"cycle"`
	TotalCycles      int                `json:"totalCycles"`
	RemainingSeconds int                `json:"remainingSeconds"`
	Paused           bool               `json:"paused"`
}

func snapshot(t *planner.Timer) timerState {
	return timerState{
		Phase:            t.Phase,
		Cycle:            t.Cycle,
		TotalCycles:      t.TotalCycles,
		RemainingSeconds: int(t.Remaining / time.Second),
		Paused:           t.Paused,
	}
}

// StartTimer godoc
// @Summary Start a focus timer
// @Description Starts (or restarts) the user's Pomodoro timer
// @Tags timer
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /timer/start [post]
func (tc *TimerController) StartTimer(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var input struct {
		StudyMinutes int `json:"studyMinutes"`
		BreakMinutes int `json:"breakMinutes"`
		Cycles       int `json:"cycles"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.StudyMinutes < 1 || input.BreakMinutes < 1 || input.Cycles < 1 {
		return utils.BadRequest(c, "studyMinutes, breakMinutes and cycles must all be at least 1")
	}

	timer := planner.NewTimer(
		time.Duration(input.StudyMinutes)*time.Minute,
		time.Duration(input.BreakMinutes)*time.Minute,
		input.Cycles,
		time.Now(),
	)

	tc.mu.Lock()
	tc.timers[userID] = timer
	state := snapshot(timer)
	tc.mu.Unlock()

	return c.JSON(state)
}

// GetTimer godoc
// @Summary Current timer state
// @Description Advances the user's timer to now and returns its state
// @Tags timer
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /timer [get]
func (tc *TimerController) GetTimer(c *fiber.Ctx) error {
	userID := currentUserID(c)
	now := time.Now()

	tc.mu.Lock()
	timer, ok := tc.timers[userID]
	if !ok {
		tc.mu.Unlock()
		return c.JSON(timerState{Phase: planner.PhaseIdle, Cycle: 1})
	}
	finished := timer.Tick(now)
	state := snapshot(timer)
	tc.mu.Unlock()

	tc.recordFinished(userID, now, finished)
	return c.JSON(state)
}

// PauseTimer godoc
// @Summary Pause the timer
// @Tags timer
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /timer/pause [post]
func (tc *TimerController) PauseTimer(c *fiber.Ctx) error {
	return tc.withTimer(c, func(t *planner.Timer, now time.Time) []time.Duration {
		t.Pause(now)
		return nil
	})
}

// ResumeTimer godoc
// @Summary Resume the timer
// @Tags timer
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /timer/resume [post]
func (tc *TimerController) ResumeTimer(c *fiber.Ctx) error {
	return tc.withTimer(c, func(t *planner.Timer, now time.Time) []time.Duration {
		t.Resume(now)
		return nil
	})
}

// ResetTimer godoc
// @Summary Reset the timer
// @Tags timer
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /timer/reset [post]
func (tc *TimerController) ResetTimer(c *fiber.Ctx) error {
	return tc.withTimer(c, func(t *planner.Timer, now time.Time) []time.Duration {
		t.Reset()
		return nil
	})
}

func (tc *TimerController) withTimer(c *fiber.Ctx, apply func(*planner.Timer, time.Time) []time.Duration) error {
	userID := currentUserID(c)
	now := time.Now()

	tc.mu.Lock()
	timer, ok := tc.timers[userID]
	if !ok {
		tc.mu.Unlock()
		return utils.NotFound(c, "No timer running")
	}
	finished := timer.Tick(now)
	finished = append(finished, apply(timer, now)...)
	state := snapshot(timer)
	tc.mu.Unlock()

	tc.recordFinished(userID, now, finished)
	return c.JSON(state)
}

// recordFinished logs completed study phases as sessions when the user
// tracks hours automatically.
func (tc *TimerController) recordFinished(userID uint, now time.Time, finished []time.Duration) {
	if len(finished) == 0 {
		return
	}

	var user models.User
	if err := tc.DB.First(&user, userID).Error; err != nil || user.HoursMode != "automatic" {
		return
	}

	for _, d := range finished {
		session := models.StudySession{
			UserID:          userID,
			Subject:         "Focus Timer",
			DurationMinutes: int(d / time.Minute),
			Type:            "study",
			Date:            now,
		}
		if err := tc.DB.Create(&session).Error; err != nil {
			tc.Logger.Printf("auto session for user %d failed: %v", userID, err)
		}
	}
}
