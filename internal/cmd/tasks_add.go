package cmd

import (
	"context"
	"fmt"
	"strings"

	"dhyan/internal/domain"
	"dhyan/internal/logging"
)

// TasksAddCmd adds a new task
type TasksAddCmd struct {
	Description string   `help:"Longer description" short:"m"`
	Due         string   `help:"Due date: today, tomorrow or YYYY-MM-DD"`
	Priority    string   `help:"Priority" short:"p" enum:"low,medium,high" default:"medium"`
	Time        string   `help:"Due time (HH:MM), used with --due" default:"09:00"`
	Title       []string `arg:"" help:"Task title"`
}

// Run executes the add command
func (s *TasksAddCmd) Run(cli *CLI) error {
	ctx := context.Background()
	if err := loadTasks(ctx, cli.Container); err != nil {
		return err
	}

	due, err := parseDueFlag(s.Due)
	if err != nil {
		return err
	}

	task, err := cli.Container.TaskStore.Add(ctx, domain.TaskInput{
		Description: s.Description,
		DueDate:     due,
		DueTime:     s.Time,
		Priority:    domain.Priority(s.Priority),
		Title:       strings.Join(s.Title, " "),
	})
	if err != nil {
		logging.Logger.Error("Failed to add task", "error", err)
		return fmt.Errorf("failed to add task: %w", err)
	}

	fmt.Printf("Task '%s' added (%s)\n", task.Title, shortID(task.ID))
	return nil
}
