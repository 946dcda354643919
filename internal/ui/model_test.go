package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dhyan/internal/config"
	"dhyan/internal/domain"
	portsmocks "dhyan/internal/ports/mocks"
	"dhyan/internal/services"
)

// manualScheduler never fires; the engine is driven through Tick
type manualScheduler struct{}

func (manualScheduler) Every(time.Duration, func()) func() { return func() {} }

type modelFixture struct {
	model *Model
	repo  *portsmocks.MockTaskRepository
	tasks *services.TaskStore
	timer *services.TimerEngine
}

func newModelFixture(t *testing.T) *modelFixture {
	repo := portsmocks.NewMockTaskRepository(t)
	tasks := services.NewTaskStore(repo)
	timer := services.NewTimerEngine(manualScheduler{}, nil)
	t.Cleanup(timer.Close)
	audio := services.NewAudioManager(portsmocks.NewMockAudioBackend(t), "notify.mp3", domain.DefaultVolume)

	model := NewModel(time.Second, false, nil, config.KeyBindingsConfig{}, timer, audio, tasks)
	model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	return &modelFixture{model: model, repo: repo, tasks: tasks, timer: timer}
}

func press(m *Model, keys string) tea.Cmd {
	var msg tea.KeyMsg
	switch keys {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestModel_SpaceTogglesTimer(t *testing.T) {
	f := newModelFixture(t)

	press(f.model, " ")
	assert.True(t, f.timer.Snapshot().Running)

	press(f.model, " ")
	assert.False(t, f.timer.Snapshot().Running)
}

func TestModel_SwitchSessionBlockedWhileRunning(t *testing.T) {
	f := newModelFixture(t)
	f.timer.Start()

	press(f.model, "2")

	assert.Equal(t, domain.SessionFocus, f.timer.Snapshot().Type)
	assert.Contains(t, f.model.notice, "Pause the timer")
}

func TestModel_SwitchSessionWhilePaused(t *testing.T) {
	f := newModelFixture(t)

	press(f.model, "3")

	snapshot := f.timer.Snapshot()
	assert.Equal(t, domain.SessionLongBreak, snapshot.Type)
	assert.Equal(t, domain.SessionLongBreak.Duration(), snapshot.TimeLeft)
}

func TestModel_SessionCompletionShowsNotice(t *testing.T) {
	f := newModelFixture(t)
	require.NoError(t, f.timer.SwitchSession(domain.SessionShortBreak))
	f.timer.Start()
	for range domain.SessionShortBreak.Duration() {
		f.timer.Tick()
	}

	f.model.Update(timerTickMsg{})

	assert.Equal(t, "Break over. Ready to focus?", f.model.notice)
	assert.Equal(t, domain.SessionFocus, f.timer.Snapshot().Type)
}

func TestModel_ToggleTaskKeyUsesSelection(t *testing.T) {
	f := newModelFixture(t)
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	task, err := f.tasks.Add(context.Background(), domain.TaskInput{Title: "Write report"})
	require.NoError(t, err)
	f.model.taskList.Refresh()

	press(f.model, "x")

	updated, ok := f.tasks.Get(task.ID)
	require.True(t, ok)
	assert.True(t, updated.Completed)
}

func TestModel_TaskKeysIgnoredWithoutSelection(t *testing.T) {
	f := newModelFixture(t)

	press(f.model, "d")

	assert.Equal(t, stateMain, f.model.state)
}

func TestModel_PersistenceFailureKeepsChangeAndShowsError(t *testing.T) {
	f := newModelFixture(t)
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	task, err := f.tasks.Add(context.Background(), domain.TaskInput{Title: "Write report"})
	require.NoError(t, err)
	f.model.taskList.Refresh()
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).
		Return(errors.New("disk full")).Once()

	press(f.model, "x")

	updated, _ := f.tasks.Get(task.ID)
	assert.True(t, updated.Completed)
	require.True(t, f.model.errorManager.HasError())
	assert.Contains(t, f.model.errorManager.GetError().Error(), "session only")
}

func TestModel_DeleteConfirmCancelKeepsTask(t *testing.T) {
	f := newModelFixture(t)
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	task, err := f.tasks.Add(context.Background(), domain.TaskInput{Title: "Write report"})
	require.NoError(t, err)
	f.model.taskList.Refresh()

	press(f.model, "d")
	require.Equal(t, stateConfirmingDelete, f.model.state)

	press(f.model, "esc")

	assert.Equal(t, stateMain, f.model.state)
	_, ok := f.tasks.Get(task.ID)
	assert.True(t, ok)
}

func TestModel_CycleSortAndOrder(t *testing.T) {
	f := newModelFixture(t)
	by, order := f.tasks.Sort()

	press(f.model, "o")
	nextBy, _ := f.tasks.Sort()
	assert.NotEqual(t, by, nextBy)

	press(f.model, "O")
	_, nextOrder := f.tasks.Sort()
	assert.Equal(t, order.Toggle(), nextOrder)
}

func TestModel_VolumeKeys(t *testing.T) {
	f := newModelFixture(t)

	press(f.model, "+")
	assert.InDelta(t, domain.DefaultVolume+volumeStep, f.model.audio.State().Volume, 1e-9)

	press(f.model, "-")
	press(f.model, "-")
	assert.InDelta(t, domain.DefaultVolume-volumeStep, f.model.audio.State().Volume, 1e-9)

	press(f.model, "m")
	assert.True(t, f.model.audio.State().Muted)
}

func TestModel_ViewRendersPanels(t *testing.T) {
	f := newModelFixture(t)

	view := stripAnsi(f.model.View())

	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "Tasks")
	assert.Contains(t, view, "no ambient sound")
}
