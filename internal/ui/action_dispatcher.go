package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dhyan/internal/domain"
)

// ActionDispatcher maps key definitions to UI messages.
// This keeps the command palette decoupled from specific message types.
type ActionDispatcher struct {
	task *domain.Task
}

// NewActionDispatcher creates a new action dispatcher.
// task can be nil if no task is selected.
func NewActionDispatcher(task *domain.Task) *ActionDispatcher {
	return &ActionDispatcher{task: task}
}

// Dispatch returns the appropriate tea.Msg for the given key definition.
// Returns nil if the action cannot be dispatched.
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if def.Msg == nil {
		return nil
	}

	if taskMsg, ok := def.Msg.(TaskAwareMsg); ok {
		if d.task == nil {
			return nil
		}
		return taskMsg.WithTask(*d.task)
	}

	return def.Msg
}
