package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"dhyan/internal/config"
	"dhyan/internal/domain"
	"dhyan/internal/lock"
	"dhyan/internal/logging"
	"dhyan/internal/ui"
)

const defaultMaxLogFiles = 1000

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" env:"DHYAN_DEBUG"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"DHYAN_DEBUG_FILE"`
	Ephemeral   bool             `help:"Keep tasks in memory only (nothing is saved)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"DHYAN_MAX_LOG_FILES"`
	SoundsDir   string           `help:"Directory holding the ambient and notification clips" env:"DHYAN_SOUNDS_DIR"`
	Volume      float64          `help:"Initial ambient volume between 0 and 1" default:"0.5" env:"DHYAN_VOLUME"`

	Run       RunCmd       `cmd:"" help:"Start the dhyan TUI (default)" default:"1"`
	Timer     TimerCmd     `cmd:"timer" help:"Run a session countdown in the terminal"`
	Tasks     TasksCmd     `cmd:"tasks" help:"Manage tasks (list, add, edit, done, del, stats)"`
	Sounds    SoundsCmd    `cmd:"sounds" help:"List or play ambient sounds"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play the session-complete notification" hidden:""`
	Status    StatusCmd    `cmd:"status" help:"Show task counts on one line (for status bars)"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.MaxLogFiles == defaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("DHYAN_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("DHYAN_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.Volume == domain.DefaultVolume {
			if _, hasEnv := os.LookupEnv("DHYAN_VOLUME"); !hasEnv {
				if c.settings.Volume != nil {
					c.Volume = *c.settings.Volume
				}
			}
		}

		if c.SoundsDir == "" && c.settings.SoundsDir != "" {
			c.SoundsDir = c.settings.SoundsDir
		}
	}

	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume must be between 0 and 1, got %v", domain.ErrInvalidInput, c.Volume)
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child players inherit the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("DHYAN_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("DHYAN_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != defaultMaxLogFiles {
		os.Setenv("DHYAN_MAX_LOG_FILES", strconv.Itoa(c.MaxLogFiles))
	}

	// Logging must be up before gorm opens the database
	container, err := NewContainer(c.containerOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

func (c *CLI) containerOptions() ContainerOptions {
	opts := ContainerOptions{
		Ephemeral: c.Ephemeral,
		SoundsDir: config.ExpandPath(c.SoundsDir),
		Volume:    c.Volume,
	}
	if opts.SoundsDir == "" {
		opts.SoundsDir = config.GetSoundsDir()
	}

	if c.settings == nil {
		return opts
	}
	opts.NotificationSound = c.settings.NotificationSound
	// Settings.Validate already rejected unknown values
	if by, err := domain.ParseSortBy(c.settings.SortBy); err == nil && c.settings.SortBy != "" {
		opts.SortBy = by
	}
	if order, err := domain.ParseSortOrder(c.settings.SortOrder); err == nil && c.settings.SortOrder != "" {
		opts.SortOrder = order
	}
	return opts
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
	NoQuotes        bool `help:"Hide the rotating motivational quote"`
	QuoteInterval   int  `help:"Seconds between motivational quotes" default:"45"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		if r.ErrorClearDelay == 10 && cli.settings.ErrorClearDelay != nil {
			r.ErrorClearDelay = *cli.settings.ErrorClearDelay
		}
	}

	logging.Logger.Info("Starting dhyan TUI", "ephemeral", cli.Ephemeral)

	instanceLock, err := lock.Acquire(config.GetLockPath())
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyRunning) {
			return fmt.Errorf("%w (lock file %s)", err, config.GetLockPath())
		}
		return err
	}
	defer instanceLock.Release()

	// Validate key bindings if configured
	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = cli.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	quotes := config.NewQuoteConfig(cli.settings)
	if r.NoQuotes {
		quotes.Enabled = false
	}
	if r.QuoteInterval <= 0 {
		return fmt.Errorf("%w: quote interval must be positive", domain.ErrInvalidInput)
	}
	if r.QuoteInterval != 45 {
		quotes.Interval = time.Duration(r.QuoteInterval) * time.Second
	}

	container := cli.Container
	loadErr := container.TaskStore.Load(context.Background())
	if loadErr != nil {
		log.Printf("Warning: %v", loadErr)
	}

	model := ui.NewModel(
		time.Duration(r.ErrorClearDelay)*time.Second,
		r.Dev,
		quotes,
		keysConfig,
		container.Timer,
		container.AudioManager,
		container.TaskStore,
	)
	if loadErr != nil {
		model.ShowError(loadErr)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
