package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"dhyan/internal/domain"
	"dhyan/internal/logging"
	"dhyan/internal/ports"
)

// TaskStore owns the task collection and persists every mutation
type TaskStore struct {
	mu     sync.Mutex
	newID  func() string
	now    func() time.Time
	order  domain.SortOrder
	repo   ports.TaskRepository
	sortBy domain.SortBy
	tasks  []domain.Task // Insertion order
}

// TaskStoreOption customizes a TaskStore
type TaskStoreOption func(*TaskStore)

// WithClock overrides the time source used for CreatedAt and due checks
func WithClock(now func() time.Time) TaskStoreOption {
	return func(s *TaskStore) { s.now = now }
}

// WithIDGenerator overrides task id generation
func WithIDGenerator(newID func() string) TaskStoreOption {
	return func(s *TaskStore) { s.newID = newID }
}

// WithSort sets the initial view sort
func WithSort(by domain.SortBy, order domain.SortOrder) TaskStoreOption {
	return func(s *TaskStore) {
		s.sortBy = by
		s.order = order
	}
}

// NewTaskStore creates an empty store. Call Load to read persisted tasks.
func NewTaskStore(repo ports.TaskRepository, opts ...TaskStoreOption) *TaskStore {
	s := &TaskStore{
		newID:  uuid.NewString,
		now:    time.Now,
		order:  domain.SortAsc,
		repo:   repo,
		sortBy: domain.SortByDueDate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the persisted one.
// On failure the store is left empty and the error is returned for display.
func (s *TaskStore) Load(ctx context.Context) error {
	tasks, err := s.repo.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.tasks = nil
		logging.Logger.Warn("Failed to load tasks, starting with an empty list", "error", err)
		return fmt.Errorf("%w: failed to load tasks: %w", domain.ErrPersistenceFailure, err)
	}

	s.tasks = normalizeTasks(tasks)
	logging.Logger.Info("Tasks loaded", "count", len(s.tasks))
	return nil
}

// normalizeTasks fills defaults and drops entries with duplicate ids
func normalizeTasks(tasks []domain.Task) []domain.Task {
	seen := make(map[string]bool, len(tasks))
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == "" || seen[t.ID] {
			logging.Logger.Warn("Skipping task with missing or duplicate id", "id", t.ID, "title", t.Title)
			continue
		}
		seen[t.ID] = true
		if !t.Priority.IsValid() {
			t.Priority = domain.PriorityMedium
		}
		if _, _, err := domain.ParseClock(t.DueTime); err != nil {
			t.DueTime = domain.DefaultDueTime
		}
		out = append(out, t)
	}
	return out
}

// Add validates input, creates a task and persists the collection
func (s *TaskStore) Add(ctx context.Context, input domain.TaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	dueTime, err := validDueTime(input.DueTime)
	if err != nil {
		return domain.Task{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return domain.Task{}, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, priority)
	}

	task := domain.Task{
		CreatedAt:   s.now(),
		Description: strings.TrimSpace(input.Description),
		DueDate:     copyDate(input.DueDate),
		DueTime:     dueTime,
		ID:          s.newID(),
		Priority:    priority,
		Title:       title,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, task)
	logging.Logger.Info("Task added", "id", task.ID, "title", task.Title)
	return task, s.saveLocked(ctx)
}

// Update merges patch into the task with id and persists the collection
func (s *TaskStore) Update(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.Task{}, fmt.Errorf("%w: task %q", domain.ErrNotFound, id)
	}

	updated, err := applyPatch(s.tasks[i], patch)
	if err != nil {
		return domain.Task{}, err
	}

	s.tasks[i] = updated
	logging.Logger.Info("Task updated", "id", id)
	return updated, s.saveLocked(ctx)
}

// applyPatch returns t with the patch fields applied, validated as in Add
func applyPatch(t domain.Task, patch domain.TaskPatch) (domain.Task, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return t, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
		}
		t.Title = title
	}
	if patch.Description != nil {
		t.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.ClearDueDate {
		t.DueDate = nil
	} else if patch.DueDate != nil {
		t.DueDate = copyDate(patch.DueDate)
	}
	if patch.DueTime != nil {
		dueTime, err := validDueTime(*patch.DueTime)
		if err != nil {
			return t, err
		}
		t.DueTime = dueTime
	}
	if patch.Priority != nil {
		if !patch.Priority.IsValid() {
			return t, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, *patch.Priority)
		}
		t.Priority = *patch.Priority
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	return t, nil
}

// Delete removes the task with id and persists the collection
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: task %q", domain.ErrNotFound, id)
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)
	logging.Logger.Info("Task deleted", "id", id)
	return s.saveLocked(ctx)
}

// Toggle flips the completed flag of the task with id
func (s *TaskStore) Toggle(ctx context.Context, id string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.Task{}, fmt.Errorf("%w: task %q", domain.ErrNotFound, id)
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	logging.Logger.Info("Task toggled", "id", id, "completed", s.tasks[i].Completed)
	return s.tasks[i], s.saveLocked(ctx)
}

// Get returns the task with id
func (s *TaskStore) Get(id string) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// Resolve finds a task by full id or by an unambiguous id prefix
func (s *TaskStore) Resolve(idOrPrefix string) (domain.Task, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return domain.Task{}, fmt.Errorf("%w: task id is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(idOrPrefix); i >= 0 {
		return s.tasks[i], nil
	}

	var matches []domain.Task
	for _, t := range s.tasks {
		if strings.HasPrefix(t.ID, idOrPrefix) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Task{}, fmt.Errorf("%w: no task matches %q", domain.ErrNotFound, idOrPrefix)
	case 1:
		return matches[0], nil
	}
	return domain.Task{}, fmt.Errorf("%w: %q matches %d tasks", domain.ErrInvalidInput, idOrPrefix, len(matches))
}

// Len returns the number of tasks
func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// SetSort changes the view sort used by All, Upcoming and Overdue
func (s *TaskStore) SetSort(by domain.SortBy, order domain.SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortBy = by
	s.order = order
}

// Sort returns the current view sort
func (s *TaskStore) Sort() (domain.SortBy, domain.SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortBy, s.order
}

// All returns every task in the current view sort
func (s *TaskStore) All() []domain.Task {
	by, order := s.Sort()
	return s.Sorted(by, order)
}

// Sorted returns a sorted copy of the collection. The sort is stable.
func (s *TaskStore) Sorted(by domain.SortBy, order domain.SortOrder) []domain.Task {
	s.mu.Lock()
	tasks := slices.Clone(s.tasks)
	s.mu.Unlock()

	SortTasks(tasks, by, order, time.Local)
	return tasks
}

// Upcoming returns pending dated tasks due at or after now, in the current view sort
func (s *TaskStore) Upcoming() []domain.Task {
	now := s.now()
	return filterTasks(s.All(), func(t domain.Task) bool { return t.IsUpcoming(now) })
}

// Overdue returns pending dated tasks due before now, in the current view sort
func (s *TaskStore) Overdue() []domain.Task {
	now := s.now()
	return filterTasks(s.All(), func(t domain.Task) bool { return t.IsOverdue(now) })
}

// Stats counts pending, completed and overdue tasks
func (s *TaskStore) Stats() domain.TaskStats {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var stats domain.TaskStats
	for _, t := range s.tasks {
		if t.Completed {
			stats.Completed++
			continue
		}
		stats.Pending++
		if t.IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats
}

// SortTasks sorts tasks in place.
// By due date undated tasks go last in both orders. By priority ascending
// means low to high. By creation time ascending is chronological.
func SortTasks(tasks []domain.Task, by domain.SortBy, order domain.SortOrder, loc *time.Location) {
	sign := 1
	if order == domain.SortDesc {
		sign = -1
	}

	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		switch by {
		case domain.SortByPriority:
			return sign * cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
		case domain.SortByCreatedAt:
			return sign * a.CreatedAt.Compare(b.CreatedAt)
		default:
			aDue, aOK := a.DueAt(loc)
			bDue, bOK := b.DueAt(loc)
			switch {
			case !aOK && !bOK:
				return 0
			case !aOK:
				return 1
			case !bOK:
				return -1
			}
			return sign * aDue.Compare(bDue)
		}
	})
}

func filterTasks(tasks []domain.Task, keep func(domain.Task) bool) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// indexLocked returns the position of id or -1. Caller holds mu.
func (s *TaskStore) indexLocked(id string) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool { return t.ID == id })
}

// saveLocked persists the collection. The in-memory state is kept on failure. Caller holds mu.
func (s *TaskStore) saveLocked(ctx context.Context) error {
	if err := s.repo.Save(ctx, slices.Clone(s.tasks)); err != nil {
		logging.Logger.Error("Failed to save tasks", "error", err)
		return fmt.Errorf("%w: failed to save tasks: %w", domain.ErrPersistenceFailure, err)
	}
	return nil
}

func validDueTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.DefaultDueTime, nil
	}
	hour, minute, err := domain.ParseClock(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

func copyDate(d *domain.Date) *domain.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
