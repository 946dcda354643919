package cmd

import (
	"fmt"

	adapterclock "dhyan/internal/adapters/clock"
	adaptersound "dhyan/internal/adapters/sound"
	adapterstorage "dhyan/internal/adapters/storage"
	"dhyan/internal/config"
	"dhyan/internal/domain"
	"dhyan/internal/logging"
	"dhyan/internal/ports"
	"dhyan/internal/services"
)

// ContainerOptions are the resolved settings the container is wired from
type ContainerOptions struct {
	Ephemeral         bool // In-memory storage
	NotificationSound string
	SortBy            domain.SortBy
	SortOrder         domain.SortOrder
	SoundsDir         string
	Volume            float64
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	AudioManager *services.AudioManager
	TaskStore    *services.TaskStore
	Timer        *services.TimerEngine

	// Used directly by headless commands
	NotificationSound string
	SoundBackend      *adaptersound.Backend

	// Internal - for cleanup only
	kvStore ports.KeyValueStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	// Create adapters
	var kvStore ports.KeyValueStore
	if opts.Ephemeral {
		logging.Logger.Info("Using in-memory task storage")
		kvStore = adapterstorage.NewMemoryStore()
	} else {
		store, err := adapterstorage.NewSQLiteStore(config.GetDBPath())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
		}
		kvStore = store
	}

	notificationSound := opts.NotificationSound
	if notificationSound == "" {
		notificationSound = domain.DefaultNotificationSource
	}

	soundBackend := adaptersound.NewBackend(opts.SoundsDir)
	taskRepo := adapterstorage.NewTaskRepository(kvStore)

	sortBy, sortOrder := domain.SortByDueDate, domain.SortAsc
	if opts.SortBy != "" {
		sortBy = opts.SortBy
	}
	if opts.SortOrder != "" {
		sortOrder = opts.SortOrder
	}

	// Create services
	audioManager := services.NewAudioManager(soundBackend, notificationSound, opts.Volume)
	taskStore := services.NewTaskStore(taskRepo, services.WithSort(sortBy, sortOrder))
	timer := services.NewTimerEngine(adapterclock.NewTicker(), audioManager)

	logging.Logger.Debug("Container initialized",
		"ephemeral", opts.Ephemeral,
		"sounds_dir", opts.SoundsDir,
		"player_available", soundBackend.Available())

	return &Container{
		AudioManager:      audioManager,
		NotificationSound: notificationSound,
		SoundBackend:      soundBackend,
		TaskStore:         taskStore,
		Timer:             timer,
		kvStore:           kvStore,
	}, nil
}

// Close stops the timer, silences audio and closes storage
func (c *Container) Close() error {
	if c.Timer != nil {
		c.Timer.Close()
	}
	if c.AudioManager != nil {
		if err := c.AudioManager.Close(); err != nil {
			logging.Logger.Warn("Failed to close audio", "error", err)
		}
	}
	if c.kvStore != nil {
		return c.kvStore.Close()
	}
	return nil
}
