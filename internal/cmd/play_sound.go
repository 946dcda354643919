package cmd

import (
	"context"
	"os"
	"os/signal"

	"dhyan/internal/domain"
	"dhyan/internal/logging"
)

// PlaySoundCmd plays the session-complete notification
type PlaySoundCmd struct {
	File string `arg:"" optional:"" help:"Clip to play instead of the configured notification"`
}

// Run plays the clip and waits for it to finish
func (p *PlaySoundCmd) Run(cli *CLI) error {
	source := cli.Container.NotificationSound
	if p.File != "" {
		source = p.File
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logging.Logger.Info("Playing notification sound", "source", source)
	return cli.Container.SoundBackend.PlayOnce(ctx, source, domain.NotificationVolume)
}
