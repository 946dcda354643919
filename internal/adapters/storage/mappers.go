package storage

import (
	"encoding/json"
	"time"

	"dhyan/internal/domain"
	"dhyan/internal/logging"
)

// taskRecord is the persisted JSON shape of a task
type taskRecord struct {
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"createdAt"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"`
	DueTime     string  `json:"dueTime"`
	ID          string  `json:"id"`
	Priority    string  `json:"priority"`
	Title       string  `json:"title"`
}

// taskToRecord converts a domain.Task to its JSON record
func taskToRecord(t domain.Task) taskRecord {
	r := taskRecord{
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
		Description: t.Description,
		DueTime:     t.DueTime,
		ID:          t.ID,
		Priority:    string(t.Priority),
		Title:       t.Title,
	}
	if t.DueDate != nil {
		due := t.DueDate.String()
		r.DueDate = &due
	}
	return r
}

// recordToTask converts a JSON record to a domain.Task.
// Unparseable dates are dropped with a warning rather than failing the whole collection.
func recordToTask(r taskRecord) domain.Task {
	t := domain.Task{
		Completed:   r.Completed,
		Description: r.Description,
		DueTime:     r.DueTime,
		ID:          r.ID,
		Priority:    domain.Priority(r.Priority),
		Title:       r.Title,
	}
	if created, err := time.Parse(time.RFC3339Nano, r.CreatedAt); err == nil {
		t.CreatedAt = created
	} else {
		logging.Logger.Warn("Task has unreadable createdAt, sorting it as oldest",
			"id", r.ID, "createdAt", r.CreatedAt, "error", err)
	}
	if r.DueDate != nil && *r.DueDate != "" {
		if due, err := domain.ParseDate(*r.DueDate); err == nil {
			t.DueDate = &due
		} else {
			logging.Logger.Warn("Task has unreadable dueDate, treating it as undated",
				"id", r.ID, "dueDate", *r.DueDate, "error", err)
		}
	}
	return t
}

func encodeTasks(tasks []domain.Task) ([]byte, error) {
	records := make([]taskRecord, len(tasks))
	for i, t := range tasks {
		records[i] = taskToRecord(t)
	}
	return json.Marshal(records)
}

func decodeTasks(data []byte) ([]domain.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, len(records))
	for i, r := range records {
		tasks[i] = recordToTask(r)
	}
	return tasks, nil
}
