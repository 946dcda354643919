package ports

import (
	"context"

	"dhyan/internal/domain"
)

// KeyValueStore is a flat byte store addressed by string keys
type KeyValueStore interface {
	// Get returns the value for key; found is false when the key is absent
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// TaskRepository loads and saves the whole task collection
type TaskRepository interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
}
