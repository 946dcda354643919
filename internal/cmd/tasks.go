package cmd

import (
	"context"
	"fmt"
	"time"

	"dhyan/internal/domain"
)

// TasksCmd manages tasks
type TasksCmd struct {
	Add   TasksAddCmd   `cmd:"add" help:"Add a new task"`
	Del   TasksDelCmd   `cmd:"del" aliases:"rm" help:"Delete a task"`
	Done  TasksDoneCmd  `cmd:"done" help:"Mark a task done (or not done with --undo)"`
	Edit  TasksEditCmd  `cmd:"edit" help:"Change fields of a task"`
	List  TasksListCmd  `cmd:"list" aliases:"ls" help:"List tasks" default:"1"`
	Stats TasksStatsCmd `cmd:"stats" help:"Show pending, done and overdue counts"`
}

// loadTasks reads the persisted collection. Unlike the TUI, headless
// commands refuse to work on an unreadable store.
func loadTasks(ctx context.Context, container *Container) error {
	return container.TaskStore.Load(ctx)
}

// parseDueFlag converts --due input; empty means no due date
func parseDueFlag(value string) (*domain.Date, error) {
	if value == "" {
		return nil, nil
	}
	due, err := domain.ParseDueDate(value, time.Now())
	if err != nil {
		return nil, fmt.Errorf("--due: %w", err)
	}
	return &due, nil
}

// shortID is the id prefix shown in tables
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatTaskDue renders the due date and time, or "-" for undated tasks
func formatTaskDue(t domain.Task) string {
	if t.DueDate == nil {
		return "-"
	}
	return t.DueDate.String() + " " + t.DueTime
}
