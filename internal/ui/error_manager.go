package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg is sent after the clear delay. Its generation must match the
// manager's for the error to be cleared, so a newer error stays on screen.
type clearErrorMsg struct {
	generation int
}

// ErrorManager holds the error shown on the bottom line and clears it after a delay
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
	generation      int
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay.
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{errorClearDelay: errorClearDelay}
}

// SetError sets the current error to be displayed.
func (em *ErrorManager) SetError(err error) {
	em.currentError = err
	em.generation++
}

// ClearError clears the current error.
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the current error.
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error.
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// ClearAfterDelay returns a tea.Cmd that sends clearErrorMsg after the configured delay.
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	generation := em.generation
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{generation: generation}
	})
}

// handleClear clears the error if msg belongs to the error currently shown
func (em *ErrorManager) handleClear(msg clearErrorMsg) {
	if msg.generation == em.generation {
		em.ClearError()
	}
}
