package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"dhyan/internal/domain"
	"dhyan/internal/logging"
	"dhyan/internal/services"
)

// TaskFormResult contains the result of the add/edit form
type TaskFormResult struct {
	Cancelled bool
	Error     error
	Task      domain.Task
}

// taskFormValues are the raw field values bound to the form
type taskFormValues struct {
	description string
	dueDate     string
	dueTime     string
	priority    string
	title       string
}

// TaskForm is a Bubble Tea component for adding or editing a task
type TaskForm struct {
	Completed bool
	existing  *domain.Task // nil when adding
	form      *huh.Form
	result    TaskFormResult
	store     *services.TaskStore
	values    *taskFormValues
}

// NewTaskForm creates the form. Pass nil to add a task, or the task to edit.
func NewTaskForm(store *services.TaskStore, existing *domain.Task) *TaskForm {
	values := &taskFormValues{
		dueTime:  domain.DefaultDueTime,
		priority: string(domain.PriorityMedium),
	}
	if existing != nil {
		values.title = existing.Title
		values.description = existing.Description
		values.dueTime = existing.DueTime
		values.priority = string(existing.Priority)
		if existing.DueDate != nil {
			values.dueDate = existing.DueDate.String()
		}
	}

	priorities := make([]huh.Option[string], 0, len(domain.Priorities))
	for i := len(domain.Priorities) - 1; i >= 0; i-- {
		p := string(domain.Priorities[i])
		priorities = append(priorities, huh.NewOption(capitalizeFirst(p), p))
	}

	tf := &TaskForm{
		existing: existing,
		store:    store,
		values:   values,
	}

	tf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("What needs doing?").
				Value(&values.title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Placeholder("optional").
				Lines(3).
				Value(&values.description),
			huh.NewInput().
				Title("Due date").
				Description("YYYY-MM-DD, today or tomorrow; empty for none").
				Value(&values.dueDate).
				Validate(validateDueDate),
			huh.NewInput().
				Title("Due time").
				Description("HH:MM").
				Value(&values.dueTime).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, _, err := domain.ParseClock(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorities...).
				Value(&values.priority),
		),
	)

	return tf
}

func validateDueDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := domain.ParseDueDate(s, time.Now())
	return err
}

func (tf *TaskForm) Init() tea.Cmd {
	return tf.form.Init()
}

func (tf *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			tf.result.Cancelled = true
			tf.Completed = true
			return tf, nil
		}
	}

	form, cmd := tf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		tf.form = f
	}

	if tf.form.State == huh.StateCompleted {
		tf.Completed = true
		task, err := tf.save()
		if err != nil {
			logging.Logger.Error("Failed to save task", "error", err)
			tf.result.Error = err
		}
		tf.result.Task = task
		return tf, nil
	}

	return tf, cmd
}

func (tf *TaskForm) View() string {
	if tf.form != nil {
		return tf.form.View()
	}
	return ""
}

// Result returns the form result
func (tf *TaskForm) Result() TaskFormResult {
	return tf.result
}

// save adds or updates the task from the form values
func (tf *TaskForm) save() (domain.Task, error) {
	v := tf.values
	priority, err := domain.ParsePriority(v.priority)
	if err != nil {
		return domain.Task{}, err
	}

	var dueDate *domain.Date
	if strings.TrimSpace(v.dueDate) != "" {
		d, err := domain.ParseDueDate(v.dueDate, time.Now())
		if err != nil {
			return domain.Task{}, err
		}
		dueDate = &d
	}

	ctx := context.Background()
	if tf.existing == nil {
		return tf.store.Add(ctx, domain.TaskInput{
			Description: v.description,
			DueDate:     dueDate,
			DueTime:     v.dueTime,
			Priority:    priority,
			Title:       v.title,
		})
	}

	patch := domain.TaskPatch{
		Description: &v.description,
		DueTime:     &v.dueTime,
		Priority:    &priority,
		Title:       &v.title,
	}
	if dueDate == nil {
		patch.ClearDueDate = true
	} else {
		patch.DueDate = dueDate
	}

	logging.Logger.Debug("Updating task from form", "id", tf.existing.ID)
	return tf.store.Update(ctx, tf.existing.ID, patch)
}
