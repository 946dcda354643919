package cmd

import (
	"context"
	"fmt"

	"dhyan/internal/domain"
	"dhyan/internal/logging"
)

// TasksEditCmd changes fields of a task. Flags left empty keep the current value.
type TasksEditCmd struct {
	ClearDescription bool   `help:"Remove the description"`
	ClearDue         bool   `help:"Remove the due date"`
	Description      string `help:"New description" short:"m"`
	Due              string `help:"New due date: today, tomorrow or YYYY-MM-DD"`
	ID               string `arg:"" help:"Task ID or unique ID prefix"`
	Priority         string `help:"New priority (low, medium or high)" short:"p"`
	Time             string `help:"New due time (HH:MM)"`
	Title            string `help:"New title" short:"t"`
}

// Run executes the edit command
func (s *TasksEditCmd) Run(cli *CLI) error {
	ctx := context.Background()
	store := cli.Container.TaskStore
	if err := loadTasks(ctx, cli.Container); err != nil {
		return err
	}

	task, err := store.Resolve(s.ID)
	if err != nil {
		return err
	}

	patch, err := s.patch()
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return fmt.Errorf("%w: nothing to change (see 'dhyan tasks edit --help')", domain.ErrInvalidInput)
	}

	updated, err := store.Update(ctx, task.ID, patch)
	if err != nil {
		logging.Logger.Error("Failed to update task", "id", task.ID, "error", err)
		return fmt.Errorf("failed to update task: %w", err)
	}

	fmt.Printf("Task '%s' updated\n", updated.Title)
	return nil
}

func (s *TasksEditCmd) patch() (domain.TaskPatch, error) {
	var patch domain.TaskPatch

	if s.Title != "" {
		patch.Title = &s.Title
	}
	if s.ClearDescription {
		empty := ""
		patch.Description = &empty
	} else if s.Description != "" {
		patch.Description = &s.Description
	}
	if s.Priority != "" {
		priority, err := domain.ParsePriority(s.Priority)
		if err != nil {
			return patch, err
		}
		patch.Priority = &priority
	}
	if s.Time != "" {
		patch.DueTime = &s.Time
	}

	if s.ClearDue {
		patch.ClearDueDate = true
		return patch, nil
	}
	due, err := parseDueFlag(s.Due)
	if err != nil {
		return patch, err
	}
	patch.DueDate = due
	return patch, nil
}
