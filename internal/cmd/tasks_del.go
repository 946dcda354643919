package cmd

import (
	"context"
	"fmt"

	"dhyan/internal/domain"
	"dhyan/internal/logging"
)

// TasksDelCmd deletes a task
type TasksDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	ID    string `arg:"" help:"Task ID or unique ID prefix"`
}

// Run executes the del command
func (s *TasksDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing tasks del command", "id", s.ID, "force", s.Force)

	ctx := context.Background()
	store := cli.Container.TaskStore
	if err := loadTasks(ctx, cli.Container); err != nil {
		return err
	}

	task, err := store.Resolve(s.ID)
	if err != nil {
		logging.Logger.Error("Task not found", "id", s.ID, "error", err)
		return err
	}

	if !s.Force && !s.confirmDeletion(task) {
		return nil
	}

	if err := store.Delete(ctx, task.ID); err != nil {
		logging.Logger.Error("Failed to delete task", "id", task.ID, "error", err)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	logging.Logger.Info("Task deleted via CLI", "id", task.ID)
	fmt.Printf("Task '%s' deleted\n", task.Title)
	return nil
}

func (s *TasksDelCmd) confirmDeletion(task domain.Task) bool {
	fmt.Printf("WARNING: This will delete task '%s' (%s)\n", task.Title, shortID(task.ID))
	fmt.Print("\nContinue? (y/N): ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		logging.Logger.Info("User cancelled task deletion", "id", task.ID)
		fmt.Println("Cancelled")
		return false
	}
	return true
}
