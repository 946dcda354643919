package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dhyan/internal/domain"
	portsmocks "dhyan/internal/ports/mocks"
)

// fakeScheduler captures armed callbacks so tests can fire them by hand
type fakeScheduler struct {
	mu       sync.Mutex
	arms     []*fakeArm
	interval time.Duration
}

type fakeArm struct {
	fn      func()
	stopped bool
}

func (s *fakeScheduler) Every(interval time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	arm := &fakeArm{fn: fn}
	s.arms = append(s.arms, arm)
	s.interval = interval
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		arm.stopped = true
	}
}

// fire runs the latest armed callback n times, as a ticker would
func (s *fakeScheduler) fire(n int) {
	for i := 0; i < n; i++ {
		s.mu.Lock()
		if len(s.arms) == 0 || s.arms[len(s.arms)-1].stopped {
			s.mu.Unlock()
			return
		}
		fn := s.arms[len(s.arms)-1].fn
		s.mu.Unlock()
		fn()
	}
}

func (s *fakeScheduler) active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.arms {
		if !a.stopped {
			n++
		}
	}
	return n
}

func newTestEngine(t *testing.T) (*TimerEngine, *fakeScheduler, *portsmocks.MockNotifier) {
	scheduler := &fakeScheduler{}
	notifier := portsmocks.NewMockNotifier(t)
	return NewTimerEngine(scheduler, notifier), scheduler, notifier
}

// completeSession runs the current session to zero
func completeSession(e *TimerEngine, s *fakeScheduler) {
	e.Start()
	s.fire(e.Snapshot().TimeLeft)
}

func TestTimerEngine_InitialState(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	snap := engine.Snapshot()

	assert.Equal(t, domain.SessionFocus, snap.Type)
	assert.Equal(t, 1500, snap.TimeLeft)
	assert.False(t, snap.Running)
	assert.Zero(t, snap.Count)
}

func TestTimerEngine_StartArmsOneSecondScheduler(t *testing.T) {
	engine, scheduler, _ := newTestEngine(t)

	engine.Start()

	assert.True(t, engine.Snapshot().Running)
	assert.Equal(t, 1, scheduler.active())
	assert.Equal(t, time.Second, scheduler.interval)
}

func TestTimerEngine_StartTwiceArmsOnce(t *testing.T) {
	engine, scheduler, _ := newTestEngine(t)

	engine.Start()
	engine.Start()

	assert.Len(t, scheduler.arms, 1)
}

func TestTimerEngine_TicksDecrementByExactlyN(t *testing.T) {
	tests := []int{1, 10, 299, 1499}

	for _, n := range tests {
		t.Run(fmt.Sprintf("%d ticks", n), func(t *testing.T) {
			engine, scheduler, _ := newTestEngine(t)

			engine.Start()
			scheduler.fire(n)

			assert.Equal(t, 1500-n, engine.Snapshot().TimeLeft)
			assert.True(t, engine.Snapshot().Running)
		})
	}
}

func TestTimerEngine_TickIgnoredWhilePaused(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	engine.Tick()

	assert.Equal(t, 1500, engine.Snapshot().TimeLeft)
}

func TestTimerEngine_PauseCancelsScheduler(t *testing.T) {
	engine, scheduler, _ := newTestEngine(t)

	engine.Start()
	scheduler.fire(5)
	engine.Pause()

	assert.False(t, engine.Snapshot().Running)
	assert.Zero(t, scheduler.active())
	assert.Equal(t, 1495, engine.Snapshot().TimeLeft)
}

func TestTimerEngine_PauseIsIdempotent(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	engine.Pause()
	engine.Pause()

	assert.False(t, engine.Snapshot().Running)
}

func TestTimerEngine_StaleCallbackAfterPauseIsIgnored(t *testing.T) {
	engine, scheduler, _ := newTestEngine(t)

	engine.Start()
	stale := scheduler.arms[0].fn
	engine.Pause()
	engine.Start()
	stale()
	stale()

	assert.Equal(t, 1500, engine.Snapshot().TimeLeft)
}

func TestTimerEngine_ToggleStartsAndPauses(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	engine.Toggle()
	assert.True(t, engine.Snapshot().Running)

	engine.Toggle()
	assert.False(t, engine.Snapshot().Running)
}

func TestTimerEngine_ResetKeepsTypeAndCount(t *testing.T) {
	engine, scheduler, notifier := newTestEngine(t)
	notifier.EXPECT().PlayNotification().Return()

	completeSession(engine, scheduler) // focus -> short break, count 1
	engine.Start()
	scheduler.fire(42)

	engine.Reset()

	snap := engine.Snapshot()
	assert.Equal(t, domain.SessionShortBreak, snap.Type)
	assert.Equal(t, 1, snap.Count)
	assert.Equal(t, 300, snap.TimeLeft)
	assert.False(t, snap.Running)
	assert.Zero(t, scheduler.active())
}

func TestTimerEngine_SwitchSessionSetsFullDuration(t *testing.T) {
	tests := []struct {
		sessionType domain.SessionType
		expected    int
	}{
		{domain.SessionShortBreak, 300},
		{domain.SessionLongBreak, 900},
		{domain.SessionFocus, 1500},
	}

	for _, tt := range tests {
		t.Run(string(tt.sessionType), func(t *testing.T) {
			engine, scheduler, _ := newTestEngine(t)
			engine.Start()
			scheduler.fire(17)

			require.NoError(t, engine.SwitchSession(tt.sessionType))

			snap := engine.Snapshot()
			assert.Equal(t, tt.sessionType, snap.Type)
			assert.Equal(t, tt.expected, snap.TimeLeft)
			assert.False(t, snap.Running)
			assert.Zero(t, scheduler.active())
		})
	}
}

func TestTimerEngine_SwitchSessionRejectsUnknownType(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	err := engine.SwitchSession("siesta")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.SessionFocus, engine.Snapshot().Type)
}

func TestTimerEngine_CompletionNotifiesAndAdvances(t *testing.T) {
	engine, scheduler, notifier := newTestEngine(t)
	notifier.EXPECT().PlayNotification().Return().Once()

	completeSession(engine, scheduler)

	snap := engine.Snapshot()
	assert.Equal(t, domain.SessionShortBreak, snap.Type)
	assert.Equal(t, 300, snap.TimeLeft)
	assert.Equal(t, 1, snap.Count)
	assert.Equal(t, 1, snap.Completions)
	assert.False(t, snap.Running)
	assert.Zero(t, scheduler.active())
}

func TestTimerEngine_CompletionFiresOnce(t *testing.T) {
	engine, scheduler, notifier := newTestEngine(t)
	notifier.EXPECT().PlayNotification().Return().Once()

	engine.Start()
	callback := scheduler.arms[0].fn
	for i := 0; i < 1510; i++ {
		callback()
	}
	engine.Tick()
	engine.Tick()

	snap := engine.Snapshot()
	assert.Equal(t, 1, snap.Completions)
	assert.Equal(t, 300, snap.TimeLeft)
}

func TestTimerEngine_FourthFocusStartsLongBreak(t *testing.T) {
	engine, scheduler, notifier := newTestEngine(t)
	notifier.EXPECT().PlayNotification().Return().Times(8)

	var sequence []domain.SessionType
	for i := 0; i < 8; i++ {
		completeSession(engine, scheduler)
		sequence = append(sequence, engine.Snapshot().Type)
	}

	assert.Equal(t, []domain.SessionType{
		domain.SessionShortBreak, domain.SessionFocus,
		domain.SessionShortBreak, domain.SessionFocus,
		domain.SessionShortBreak, domain.SessionFocus,
		domain.SessionLongBreak, domain.SessionFocus,
	}, sequence)
	assert.Equal(t, 4, engine.Snapshot().Count)
}

func TestTimerEngine_BreakCompletionKeepsCount(t *testing.T) {
	engine, scheduler, notifier := newTestEngine(t)
	notifier.EXPECT().PlayNotification().Return()

	require.NoError(t, engine.SwitchSession(domain.SessionLongBreak))
	completeSession(engine, scheduler)

	snap := engine.Snapshot()
	assert.Equal(t, domain.SessionFocus, snap.Type)
	assert.Zero(t, snap.Count)
}

func TestTimerEngine_NilNotifier(t *testing.T) {
	scheduler := &fakeScheduler{}
	engine := NewTimerEngine(scheduler, nil)

	require.NoError(t, engine.SwitchSession(domain.SessionShortBreak))
	completeSession(engine, scheduler)

	assert.Equal(t, domain.SessionFocus, engine.Snapshot().Type)
}

func TestTimerEngine_CloseStopsAndBlocksStart(t *testing.T) {
	engine, scheduler, _ := newTestEngine(t)

	engine.Start()
	engine.Close()
	engine.Start()

	assert.False(t, engine.Snapshot().Running)
	assert.Zero(t, scheduler.active())
}

func TestTimerEngine_ProgressTracksElapsed(t *testing.T) {
	engine, scheduler, _ := newTestEngine(t)

	engine.Start()
	scheduler.fire(750)

	snap := engine.Snapshot()
	assert.InDelta(t, 0.5, snap.Progress(), 1e-9)
	assert.Equal(t, "12:30", snap.Formatted())
}
