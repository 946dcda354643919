package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dhyan/internal/domain"
)

// TaskAwareMsg is implemented by messages that act on the selected task.
// Messages without task requirements don't need to implement this.
type TaskAwareMsg interface {
	WithTask(task domain.Task) tea.Msg
}

// Application messages

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowCommandPaletteMsg requests showing the command palette
type ShowCommandPaletteMsg struct{}

// Timer messages

// ToggleTimerMsg starts a paused timer or pauses a running one
type ToggleTimerMsg struct{}

// ResetTimerMsg restores the full duration of the current session
type ResetTimerMsg struct{}

// SwitchSessionMsg jumps to another session type
type SwitchSessionMsg struct {
	Type domain.SessionType
}

// EditFocusGoalMsg opens the focus goal input
type EditFocusGoalMsg struct{}

// Sound messages

// ShowSoundPickerMsg opens the ambient sound picker
type ShowSoundPickerMsg struct{}

// StopSoundMsg pauses the ambient sound
type StopSoundMsg struct{}

// ToggleMuteMsg flips the mute flag
type ToggleMuteMsg struct{}

// AdjustVolumeMsg changes the ambient volume by Delta
type AdjustVolumeMsg struct {
	Delta float64
}

// soundResultMsg carries the outcome of an ambient play request
type soundResultMsg struct {
	err   error
	sound domain.AmbientSound
}

// Task messages

// NewTaskMsg opens the add task form
type NewTaskMsg struct{}

// EditTaskMsg opens the edit form for a task
type EditTaskMsg struct {
	TaskID string
}

func (m EditTaskMsg) WithTask(t domain.Task) tea.Msg {
	return EditTaskMsg{TaskID: t.ID}
}

// ToggleTaskMsg flips the completion flag of a task
type ToggleTaskMsg struct {
	TaskID string
}

func (m ToggleTaskMsg) WithTask(t domain.Task) tea.Msg {
	return ToggleTaskMsg{TaskID: t.ID}
}

// DeleteTaskMsg asks for confirmation before deleting a task
type DeleteTaskMsg struct {
	TaskID string
}

func (m DeleteTaskMsg) WithTask(t domain.Task) tea.Msg {
	return DeleteTaskMsg{TaskID: t.ID}
}

// CycleSortMsg moves to the next sort field
type CycleSortMsg struct{}

// ToggleSortOrderMsg flips ascending and descending order
type ToggleSortOrderMsg struct{}

// CycleFilterMsg moves to the next task filter
type CycleFilterMsg struct{}

// clearNoticeMsg clears the notice line if no newer notice replaced it
type clearNoticeMsg struct {
	generation int
}

// Polling messages
type (
	rotateQuoteMsg struct{}
	timerTickMsg   struct{}
)
