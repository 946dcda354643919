package domain

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the importance of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists priorities from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Rank orders priorities: high=3, medium=2, low=1, unknown=0
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// IsValid reports whether p is a known priority
func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// ParsePriority converts user input (case-insensitive) to a Priority.
// An empty string yields the default medium priority.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityMedium, nil
	}
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, s)
	}
	return p, nil
}

// DefaultDueTime is the due time given to tasks that don't specify one
const DefaultDueTime = "09:00"

// Task is a single to-do item
type Task struct {
	CreatedAt   time.Time
	Completed   bool
	Description string
	DueDate     *Date
	DueTime     string // HH:MM
	ID          string
	Priority    Priority
	Title       string
}

// DueAt combines DueDate and DueTime into an instant in loc.
// Returns false for undated tasks.
func (t Task) DueAt(loc *time.Location) (time.Time, bool) {
	if t.DueDate == nil {
		return time.Time{}, false
	}
	hour, minute, err := ParseClock(t.DueTime)
	if err != nil {
		hour, minute, _ = ParseClock(DefaultDueTime)
	}
	return time.Date(t.DueDate.Year, t.DueDate.Month, t.DueDate.Day, hour, minute, 0, 0, loc), true
}

// IsOverdue reports whether the task is pending, dated and due before now
func (t Task) IsOverdue(now time.Time) bool {
	if t.Completed {
		return false
	}
	due, ok := t.DueAt(now.Location())
	return ok && due.Before(now)
}

// IsUpcoming reports whether the task is pending, dated and due at or after now
func (t Task) IsUpcoming(now time.Time) bool {
	if t.Completed {
		return false
	}
	due, ok := t.DueAt(now.Location())
	return ok && !due.Before(now)
}

// TaskInput holds the fields supplied when creating a task
type TaskInput struct {
	Description string
	DueDate     *Date
	DueTime     string
	Priority    Priority
	Title       string
}

// TaskPatch holds optional field updates. Nil fields are left unchanged.
// ID and CreatedAt cannot be patched.
type TaskPatch struct {
	ClearDueDate bool // Removes the due date; takes precedence over DueDate
	Completed    *bool
	Description  *string
	DueDate      *Date
	DueTime      *string
	Priority     *Priority
	Title        *string
}

// IsEmpty reports whether the patch changes nothing
func (p TaskPatch) IsEmpty() bool {
	return !p.ClearDueDate && p.Completed == nil && p.Description == nil && p.DueDate == nil &&
		p.DueTime == nil && p.Priority == nil && p.Title == nil
}

// SortBy selects the sort key for task views
type SortBy string

const (
	SortByCreatedAt SortBy = "createdAt"
	SortByDueDate   SortBy = "dueDate"
	SortByPriority  SortBy = "priority"
)

// SortKeys lists sort keys in the order the UI cycles through them
var SortKeys = []SortBy{SortByDueDate, SortByPriority, SortByCreatedAt}

// ParseSortBy accepts the canonical names plus kebab-case CLI forms
func ParseSortBy(s string) (SortBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "duedate", "due-date", "due":
		return SortByDueDate, nil
	case "priority":
		return SortByPriority, nil
	case "createdat", "created-at", "created":
		return SortByCreatedAt, nil
	}
	return "", fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, s)
}

// Label returns the human readable name of the sort key
func (s SortBy) Label() string {
	switch s {
	case SortByDueDate:
		return "due date"
	case SortByPriority:
		return "priority"
	case SortByCreatedAt:
		return "created"
	}
	return string(s)
}

// SortOrder is the direction of a sort
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder converts user input to a SortOrder (empty means ascending)
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return SortAsc, nil
	case "desc":
		return SortDesc, nil
	}
	return "", fmt.Errorf("%w: unknown sort order %q", ErrInvalidInput, s)
}

// Toggle returns the opposite order
func (o SortOrder) Toggle() SortOrder {
	if o == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// TaskStats summarizes a task collection
type TaskStats struct {
	Completed int
	Overdue   int
	Pending   int
}

// ParseClock parses an HH:MM string
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: due time %q must be HH:MM", ErrInvalidInput, s)
	}
	return t.Hour(), t.Minute(), nil
}
