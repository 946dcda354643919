package services

import (
	"fmt"
	"sync"

	"dhyan/internal/domain"
	"dhyan/internal/logging"
	"dhyan/internal/ports"
)

// TimerEngine runs the focus/break session state machine
type TimerEngine struct {
	closed     bool
	generation uint64 // Incremented on every arm/disarm; stale ticks carry an old value
	mu         sync.Mutex
	notifier   ports.Notifier
	scheduler  ports.Scheduler
	session    domain.Session
	stop       func()
}

// NewTimerEngine creates a paused engine at the start of a focus session.
// notifier may be nil.
func NewTimerEngine(scheduler ports.Scheduler, notifier ports.Notifier) *TimerEngine {
	return &TimerEngine{
		notifier:  notifier,
		scheduler: scheduler,
		session:   domain.NewSession(),
	}
}

// Snapshot returns a copy of the current session state
func (e *TimerEngine) Snapshot() domain.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Start resumes the countdown
func (e *TimerEngine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.session.Running || e.session.TimeLeft == 0 {
		return
	}

	e.session.Running = true
	e.arm()
	logging.Logger.Debug("Timer started",
		"session", e.session.Type,
		"time_left", e.session.TimeLeft)
}

// Pause stops the countdown, keeping the remaining time
func (e *TimerEngine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.session.Running {
		return
	}
	e.session.Running = false
	e.disarm()
	logging.Logger.Debug("Timer paused", "session", e.session.Type, "time_left", e.session.TimeLeft)
}

// Toggle starts a paused timer or pauses a running one
func (e *TimerEngine) Toggle() {
	if e.Snapshot().Running {
		e.Pause()
		return
	}
	e.Start()
}

// Reset restores the full duration of the current session and pauses
func (e *TimerEngine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.Running = false
	e.disarm()
	e.session.TimeLeft = e.session.Type.Duration()
	logging.Logger.Debug("Timer reset", "session", e.session.Type)
}

// SwitchSession jumps to the start of another session type and pauses.
// Callers should not offer switching while the timer runs; the engine allows it.
func (e *TimerEngine) SwitchSession(sessionType domain.SessionType) error {
	if !sessionType.IsValid() {
		return fmt.Errorf("%w: unknown session type %q", domain.ErrInvalidInput, sessionType)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.Running = false
	e.disarm()
	e.session.Type = sessionType
	e.session.TimeLeft = sessionType.Duration()
	logging.Logger.Debug("Session switched", "session", sessionType)
	return nil
}

// Tick advances the countdown by one second. It only has an effect while running.
func (e *TimerEngine) Tick() {
	e.mu.Lock()
	gen := e.generation
	e.mu.Unlock()
	e.tick(gen)
}

// tick applies a scheduler callback armed at generation gen
func (e *TimerEngine) tick(gen uint64) {
	e.mu.Lock()
	if gen != e.generation || !e.session.Running || e.session.TimeLeft == 0 {
		e.mu.Unlock()
		return
	}

	e.session.TimeLeft--
	if e.session.TimeLeft > 0 {
		e.mu.Unlock()
		return
	}

	finished := e.session.Type
	e.session.Running = false
	e.disarm()
	next, count := domain.NextSession(finished, e.session.Count)
	e.session.Count = count
	e.session.Type = next
	e.session.TimeLeft = next.Duration()
	e.session.Completions++
	notifier := e.notifier
	e.mu.Unlock()

	logging.Logger.Info("Session completed",
		"finished", finished,
		"next", next,
		"focus_count", count)

	if notifier != nil {
		notifier.PlayNotification()
	}
}

// Close cancels the scheduler. The engine cannot be started afterwards.
func (e *TimerEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	e.session.Running = false
	e.disarm()
}

// arm starts a fresh repeating callback. Caller holds mu.
func (e *TimerEngine) arm() {
	e.disarm()
	gen := e.generation
	e.stop = e.scheduler.Every(domain.TickInterval, func() { e.tick(gen) })
}

// disarm cancels the active callback, if any. Caller holds mu.
func (e *TimerEngine) disarm() {
	e.generation++
	if e.stop != nil {
		e.stop()
		e.stop = nil
	}
}
