package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"dhyan/internal/domain"
)

// TasksListCmd lists tasks
type TasksListCmd struct {
	Filter string `help:"Which tasks to show" enum:"all,pending,done,upcoming,overdue" default:"all"`
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	Order  string `help:"Sort order (asc or desc); defaults to settings"`
	Sort   string `help:"Sort key (dueDate, priority or createdAt); defaults to settings"`
}

// taskOutput is the JSON and YAML shape printed by list
type taskOutput struct {
	Completed   bool      `json:"completed" yaml:"completed"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     string    `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	DueTime     string    `json:"dueTime,omitempty" yaml:"dueTime,omitempty"`
	ID          string    `json:"id" yaml:"id"`
	Overdue     bool      `json:"overdue" yaml:"overdue"`
	Priority    string    `json:"priority" yaml:"priority"`
	Title       string    `json:"title" yaml:"title"`
}

// Run executes the list command
func (s *TasksListCmd) Run(cli *CLI) error {
	store := cli.Container.TaskStore
	if err := loadTasks(context.Background(), cli.Container); err != nil {
		return err
	}

	by, order := store.Sort()
	if s.Sort != "" {
		parsed, err := domain.ParseSortBy(s.Sort)
		if err != nil {
			return err
		}
		by = parsed
	}
	if s.Order != "" {
		parsed, err := domain.ParseSortOrder(s.Order)
		if err != nil {
			return err
		}
		order = parsed
	}

	now := time.Now()
	tasks := filterForList(store.Sorted(by, order), s.Filter, now)

	switch s.Format {
	case "json":
		return s.outputJSON(tasks, now)
	case "yaml":
		return s.outputYAML(tasks, now)
	}
	return s.outputTable(tasks, now)
}

func filterForList(tasks []domain.Task, filter string, now time.Time) []domain.Task {
	keep := func(domain.Task) bool { return true }
	switch filter {
	case "pending":
		keep = func(t domain.Task) bool { return !t.Completed }
	case "done":
		keep = func(t domain.Task) bool { return t.Completed }
	case "upcoming":
		keep = func(t domain.Task) bool { return t.IsUpcoming(now) }
	case "overdue":
		keep = func(t domain.Task) bool { return t.IsOverdue(now) }
	}

	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func toTaskOutputs(tasks []domain.Task, now time.Time) []taskOutput {
	result := make([]taskOutput, len(tasks))
	for i, t := range tasks {
		out := taskOutput{
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt,
			Description: t.Description,
			ID:          t.ID,
			Overdue:     t.IsOverdue(now),
			Priority:    string(t.Priority),
			Title:       t.Title,
		}
		if t.DueDate != nil {
			out.DueDate = t.DueDate.String()
			out.DueTime = t.DueTime
		}
		result[i] = out
	}
	return result
}

func (s *TasksListCmd) outputJSON(tasks []domain.Task, now time.Time) error {
	data, err := json.MarshalIndent(toTaskOutputs(tasks, now), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (s *TasksListCmd) outputYAML(tasks []domain.Task, now time.Time) error {
	data, err := yaml.Marshal(toTaskOutputs(tasks, now))
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func (s *TasksListCmd) outputTable(tasks []domain.Task, now time.Time) error {
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tDone\tPriority\tDue\tTitle")
	fmt.Fprintln(w, "──\t────\t────────\t───\t─────")

	for _, t := range tasks {
		done := "[ ]"
		if t.Completed {
			done = "[x]"
		}
		due := formatTaskDue(t)
		if t.IsOverdue(now) {
			due += " (overdue)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", shortID(t.ID), done, t.Priority, due, t.Title)
	}
	w.Flush()

	return nil
}
