// Package lock keeps a single TUI instance per DHYAN_HOME.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"dhyan/internal/domain"
	"dhyan/internal/logging"
)

// Lock is an exclusive lock on a file, held until Release
type Lock struct {
	file *os.File
	path string
}

// Acquire takes the lock at path without blocking.
// Returns domain.ErrAlreadyRunning when another process holds it.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	held, err := tryLockFile(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !held {
		file.Close()
		return nil, domain.ErrAlreadyRunning
	}

	// Record the owner for troubleshooting
	_ = file.Truncate(0)
	_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)

	logging.Logger.Debug("Instance lock acquired", "path", path)
	return &Lock{file: file, path: path}, nil
}

// Release unlocks and closes the lock file. Safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := unlockFile(l.file)
	if closeErr := l.file.Close(); err == nil {
		err = closeErr
	}
	l.file = nil
	logging.Logger.Debug("Instance lock released", "path", l.path)
	return err
}
