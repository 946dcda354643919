package sound

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"dhyan/internal/logging"
	"dhyan/internal/ports"
)

// ErrNoPlayer is returned when no supported audio player is installed
var ErrNoPlayer = errors.New("no audio player found")

// DefaultStartupGrace is how long a player must survive before playback counts as started
const DefaultStartupGrace = 400 * time.Millisecond

// PlayerCommand is one invocation of an external audio player
type PlayerCommand struct {
	Args []string
	Name string
}

// CommandBuilder returns player invocations in preference order.
// Platform defaults live in player_*.go files with build tags.
type CommandBuilder func(path string, volume float64, offset time.Duration) []PlayerCommand

// Backend implements ports.AudioBackend by running the platform audio player
type Backend struct {
	bell      io.Writer
	builder   CommandBuilder
	grace     time.Duration
	lookPath  func(string) (string, error)
	soundsDir string
}

// Option configures a Backend
type Option func(*Backend)

// WithCommandBuilder replaces the platform player candidates
func WithCommandBuilder(builder CommandBuilder) Option {
	return func(b *Backend) { b.builder = builder }
}

// WithStartupGrace overrides DefaultStartupGrace
func WithStartupGrace(d time.Duration) Option {
	return func(b *Backend) { b.grace = d }
}

// WithBell sets where the terminal bell fallback is written
func WithBell(w io.Writer) Option {
	return func(b *Backend) { b.bell = w }
}

// NewBackend creates a backend resolving relative sources against soundsDir
func NewBackend(soundsDir string, opts ...Option) *Backend {
	b := &Backend{
		bell:      os.Stdout,
		builder:   platformCommands,
		grace:     DefaultStartupGrace,
		lookPath:  exec.LookPath,
		soundsDir: soundsDir,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewChannel creates an idle channel. Looping channels restart the clip when it ends.
func (b *Backend) NewChannel(loop bool) (ports.AudioChannel, error) {
	return &Channel{backend: b, loop: loop, volume: 1}, nil
}

// Available reports whether any player candidate is installed
func (b *Backend) Available() bool {
	for _, c := range b.builder("", 1, 0) {
		if _, err := b.lookPath(c.Name); err == nil {
			return true
		}
	}
	return false
}

// PlayOnce plays source to the end and blocks until the player exits or ctx
// is cancelled. Without an installed player it rings the terminal bell.
func (b *Backend) PlayOnce(ctx context.Context, source string, volume float64) error {
	path := b.resolve(source)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("sound file unavailable: %w", err)
	}
	volume = min(max(volume, 0), 1)
	if volume == 0 {
		logging.Logger.Debug("Skipping silent sound", "path", path)
		return nil
	}

	for _, candidate := range b.builder(path, volume, 0) {
		bin, err := b.lookPath(candidate.Name)
		if err != nil {
			continue
		}
		logging.Logger.Debug("Playing sound once", "player", bin, "path", path, "volume", volume)
		cmd := exec.CommandContext(ctx, bin, candidate.Args...)
		if err := cmd.Run(); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%s exited: %w", candidate.Name, err)
		}
		return nil
	}

	logging.Logger.Debug("Falling back to terminal bell", "path", path, "reason", ErrNoPlayer)
	b.terminalBell()
	return nil
}

func (b *Backend) resolve(source string) string {
	if source == "" || filepath.IsAbs(source) || b.soundsDir == "" {
		return source
	}
	return filepath.Join(b.soundsDir, source)
}

// terminalBell outputs a terminal bell character as fallback
func (b *Backend) terminalBell() {
	if b.bell != nil {
		fmt.Fprint(b.bell, "\a")
	}
}

// Channel implements ports.AudioChannel with one player process at a time.
// At zero volume no process runs, since not every player can be silenced.
type Channel struct {
	backend *Backend
	closed  bool
	loop    bool
	mu      sync.Mutex
	offset  time.Duration // Resume position
	path    string
	proc    *exec.Cmd
	run     uint64 // Incremented whenever the process is replaced or stopped
	silent  bool   // Looping at zero volume without a process
	started time.Time
	volume  float64
}

// Load selects the clip to play. Looping channels require the file to exist;
// one-shot channels fall back to the terminal bell when it is missing.
func (c *Channel) Load(source string) error {
	path := c.backend.resolve(source)
	if path == "" {
		return errors.New("empty sound source")
	}
	if c.loop {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("sound file unavailable: %w", err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.path = path
	c.offset = 0
	return nil
}

// Play starts the player from the current position
func (c *Channel) Play() <-chan error {
	result := make(chan error, 1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		result <- errors.New("channel closed")
		close(result)
		return result
	}
	if c.path == "" {
		result <- errors.New("no sound loaded")
		close(result)
		return result
	}

	c.stopLocked()
	c.startLocked(result)
	return result
}

// Pause stops the player, remembering the position reached
func (c *Channel) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	return nil
}

// Seek sets the position used by the next start. A playing clip restarts there.
func (c *Channel) Seek(position time.Duration) error {
	if position < 0 {
		position = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	playing := c.playingLocked()
	c.stopLocked()
	c.offset = position
	if playing {
		c.startLocked(make(chan error, 1))
	}
	return nil
}

// SetVolume changes the player volume. A playing clip restarts at its position.
func (c *Channel) SetVolume(volume float64) error {
	volume = min(max(volume, 0), 1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if volume == c.volume {
		return nil
	}
	c.volume = volume

	if c.playingLocked() {
		c.stopLocked()
		c.startLocked(make(chan error, 1))
	}
	return nil
}

// playingLocked reports whether the channel is playing, audibly or not. Caller holds mu.
func (c *Channel) playingLocked() bool {
	return c.proc != nil || c.silent
}

// Close stops the player. The channel cannot be played afterwards.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.closed = true
	return nil
}

// startLocked launches the player and reports the outcome on result. Caller holds mu.
func (c *Channel) startLocked(result chan<- error) {
	if c.volume == 0 {
		if _, err := os.Stat(c.path); err != nil && c.loop {
			result <- fmt.Errorf("sound file unavailable: %w", err)
			close(result)
			return
		}
		c.silent = c.loop
		logging.Logger.Debug("Audio channel silent", "path", c.path, "offset", c.offset, "loop", c.loop)
		close(result)
		return
	}

	cmd, err := c.commandLocked()
	if err != nil {
		if !c.loop {
			logging.Logger.Debug("Falling back to terminal bell", "path", c.path, "reason", err)
			c.backend.terminalBell()
			close(result)
			return
		}
		result <- err
		close(result)
		return
	}

	if err := cmd.Start(); err != nil {
		result <- fmt.Errorf("failed to start %s: %w", cmd.Path, err)
		close(result)
		return
	}

	c.run++
	c.proc = cmd
	c.started = time.Now()
	logging.Logger.Debug("Audio player started",
		"player", cmd.Path,
		"path", c.path,
		"volume", c.volume,
		"offset", c.offset,
		"loop", c.loop)

	go c.watch(c.run, cmd, result)
}

// commandLocked picks the first installed player. Caller holds mu.
func (c *Channel) commandLocked() (*exec.Cmd, error) {
	if _, err := os.Stat(c.path); err != nil {
		return nil, fmt.Errorf("sound file unavailable: %w", err)
	}

	for _, candidate := range c.backend.builder(c.path, c.volume, c.offset) {
		bin, err := c.backend.lookPath(candidate.Name)
		if err != nil {
			continue
		}
		return exec.Command(bin, candidate.Args...), nil
	}
	return nil, ErrNoPlayer
}

// watch waits for a player process. An exit inside the startup grace period
// is the playback outcome; a clean exit of a looping channel restarts the clip.
func (c *Channel) watch(run uint64, cmd *exec.Cmd, result chan<- error) {
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		c.mu.Lock()
		current := c.run == run
		if current {
			c.proc = nil
			c.offset = 0
		}
		c.mu.Unlock()

		if current && err != nil {
			result <- fmt.Errorf("%s exited: %w", filepath.Base(cmd.Path), err)
		}
		// Clips shorter than the grace period are not looped
		close(result)
		return
	case <-time.After(c.backend.grace):
		close(result)
	}

	err := <-done
	c.finished(run, err)
}

// finished handles the end of a player that outlived the grace period
func (c *Channel) finished(run uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.run != run {
		return
	}
	c.proc = nil
	c.offset = 0

	if err != nil {
		logging.Logger.Warn("Audio player exited with error", "path", c.path, "error", err)
		return
	}
	if c.loop && !c.closed {
		c.startLocked(make(chan error, 1))
	}
}

// stopLocked kills the running player and records its position. Caller holds mu.
func (c *Channel) stopLocked() {
	c.run++
	c.silent = false
	if c.proc == nil {
		return
	}
	c.offset += time.Since(c.started)
	if c.proc.Process != nil {
		_ = c.proc.Process.Kill()
	}
	c.proc = nil
}
