package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapterclock "dhyan/internal/adapters/clock"
	"dhyan/internal/domain"
	"dhyan/internal/logging"
	"dhyan/internal/services"
)

// timerRefresh is how often the countdown line is redrawn
const timerRefresh = 250 * time.Millisecond

// TimerCmd runs one session without the TUI
type TimerCmd struct {
	Quiet   bool   `help:"Do not play the notification when the session ends" short:"q"`
	Session string `arg:"" optional:"" help:"Session to run" enum:"focus,short-break,long-break" default:"focus"`
}

// Run counts the session down until it completes or the user interrupts
func (t *TimerCmd) Run(cli *CLI) error {
	sessionType, err := domain.ParseSessionType(t.Session)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The engine notifies through a channel; the clip is played synchronously below
	done := make(chan struct{}, 1)
	engine := services.NewTimerEngine(adapterclock.NewTicker(), notifierFunc(func() {
		done <- struct{}{}
	}))
	defer engine.Close()

	if err := engine.SwitchSession(sessionType); err != nil {
		return err
	}
	engine.Start()
	logging.Logger.Info("Headless timer started", "session", sessionType)

	refresh := time.NewTicker(timerRefresh)
	defer refresh.Stop()

	for {
		select {
		case <-ctx.Done():
			snapshot := engine.Snapshot()
			fmt.Printf("\r%s stopped at %s\n", sessionType.Label(), snapshot.Formatted())
			logging.Logger.Info("Headless timer interrupted", "time_left", snapshot.TimeLeft)
			return nil
		case <-done:
			next := engine.Snapshot().Type
			fmt.Printf("\r%s complete! Up next: %s\n", sessionType.Label(), next.Label())
			if t.Quiet {
				return nil
			}
			return cli.Container.SoundBackend.PlayOnce(ctx, cli.Container.NotificationSound, domain.NotificationVolume)
		case <-refresh.C:
			snapshot := engine.Snapshot()
			fmt.Printf("\r%s %s  %3.0f%%", sessionType.Label(), snapshot.Formatted(), snapshot.Progress()*100)
		}
	}
}

// notifierFunc adapts a function to ports.Notifier
type notifierFunc func()

func (f notifierFunc) PlayNotification() { f() }
