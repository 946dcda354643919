package cmd

import (
	"context"
	"fmt"

	"dhyan/internal/logging"
)

// TasksDoneCmd marks a task completed
type TasksDoneCmd struct {
	ID   string `arg:"" help:"Task ID or unique ID prefix"`
	Undo bool   `help:"Mark the task as not done instead" short:"u"`
}

// Run executes the done command
func (s *TasksDoneCmd) Run(cli *CLI) error {
	ctx := context.Background()
	store := cli.Container.TaskStore
	if err := loadTasks(ctx, cli.Container); err != nil {
		return err
	}

	task, err := store.Resolve(s.ID)
	if err != nil {
		return err
	}

	completed := !s.Undo
	if task.Completed == completed {
		fmt.Printf("Task '%s' is already %s\n", task.Title, doneLabel(completed))
		return nil
	}

	if _, err := store.Toggle(ctx, task.ID); err != nil {
		logging.Logger.Error("Failed to toggle task", "id", task.ID, "error", err)
		return fmt.Errorf("failed to update task: %w", err)
	}

	fmt.Printf("Task '%s' marked %s\n", task.Title, doneLabel(completed))
	return nil
}

func doneLabel(completed bool) string {
	if completed {
		return "done"
	}
	return "not done"
}
