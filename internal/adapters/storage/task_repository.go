package storage

import (
	"context"
	"fmt"

	"dhyan/internal/domain"
	"dhyan/internal/ports"
)

// TasksKey is the key the task collection is stored under
const TasksKey = "focus-app-todos"

// TaskRepository implements ports.TaskRepository as one JSON document in a KeyValueStore
type TaskRepository struct {
	store ports.KeyValueStore
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository creates a repository on top of store
func NewTaskRepository(store ports.KeyValueStore) *TaskRepository {
	return &TaskRepository{store: store}
}

// Load returns the stored tasks. A missing key is an empty collection.
func (r *TaskRepository) Load(ctx context.Context) ([]domain.Task, error) {
	data, ok, err := r.store.Get(ctx, TasksKey)
	if err != nil {
		return nil, err
	}
	if !ok || len(data) == 0 {
		return nil, nil
	}

	tasks, err := decodeTasks(data)
	if err != nil {
		return nil, fmt.Errorf("malformed task data: %w", err)
	}
	return tasks, nil
}

// Save replaces the stored collection
func (r *TaskRepository) Save(ctx context.Context, tasks []domain.Task) error {
	data, err := encodeTasks(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	return r.store.Set(ctx, TasksKey, data)
}
