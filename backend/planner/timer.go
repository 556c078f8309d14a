package planner

import "time"

// TimerPhase is a focus-timer state.
type TimerPhase string

const (
	PhaseIdle     TimerPhase = "idle"
	PhaseStudying TimerPhase = "studying"
	PhaseBreak    TimerPhase = "break"
)

// Timer is a Pomodoro-style countdown: alternating study and break
// phases for a fixed number of cycles. It holds no goroutine and no
// wall clock of its own; callers advance it with Tick(now). Nothing
// about it is ever persisted.
type Timer struct {
	StudyDuration time.Duration
	BreakDuration time.Duration
	TotalCycles   int

	Phase     TimerPhase
	Cycle     int
	Remaining time.Duration
	Paused    bool

	lastTick time.Time
}

// NewTimer returns a timer in the studying phase of cycle 1.
func NewTimer(study, brk time.Duration, cycles int, now time.Time) *Timer {
	return &Timer{
		StudyDuration: study,
		BreakDuration: brk,
		TotalCycles:   cycles,
		Phase:         PhaseStudying,
		Cycle:         1,
		Remaining:     study,
		lastTick:      now,
	}
}

// Tick advances the timer by the wall time elapsed since the previous
// tick, crossing as many phase boundaries as that time covers. It
// returns the durations of any study phases that completed, so callers
// can log them. After the final study phase the timer resets to idle.
func (t *Timer) Tick(now time.Time) []time.Duration {
	elapsed := now.Sub(t.lastTick)
	t.lastTick = now
	if t.Paused || t.Phase == PhaseIdle || elapsed < 0 {
		return nil
	}

	var completed []time.Duration
	for elapsed > 0 && t.Phase != PhaseIdle {
		if elapsed < t.Remaining {
			t.Remaining -= elapsed
			break
		}
		elapsed -= t.Remaining

		switch t.Phase {
		case PhaseStudying:
			completed = append(completed, t.StudyDuration)
			if t.Cycle < t.TotalCycles {
				t.Phase = PhaseBreak
				t.Remaining = t.BreakDuration
			} else {
				t.Reset()
			}
		case PhaseBreak:
			t.Phase = PhaseStudying
			t.Cycle++
			t.Remaining = t.StudyDuration
		}
	}
	return completed
}

// Pause freezes the countdown after accounting for time already spent.
func (t *Timer) Pause(now time.Time) {
	t.Tick(now)
	t.Paused = true
}

// Resume restarts the countdown from now.
func (t *Timer) Resume(now time.Time) {
	t.lastTick = now
	t.Paused = false
}

// Reset returns the timer to idle at the first cycle with a full
// study countdown loaded.
func (t *Timer) Reset() {
	t.Phase = PhaseIdle
	t.Cycle = 1
	t.Remaining = t.StudyDuration
	t.Paused = false
}

// Start begins the studying phase of cycle 1 from now.
func (t *Timer) Start(now time.Time) {
	t.Phase = PhaseStudying
	t.Cycle = 1
	t.Remaining = t.StudyDuration
	t.Paused = false
	t.lastTick = now
}
