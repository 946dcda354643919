package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"dhyan/internal/domain"
	"dhyan/internal/logging"
)

// SoundsCmd manages ambient sounds
type SoundsCmd struct {
	List SoundsListCmd `cmd:"list" help:"List the ambient sound catalog" default:"1"`
	Play SoundsPlayCmd `cmd:"play" help:"Loop an ambient sound until interrupted"`
}

// SoundsListCmd lists the catalog
type SoundsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SoundsListCmd) Run(cli *CLI) error {
	sounds := cli.Container.AudioManager.Sounds()

	if s.Format == "json" {
		data, err := json.MarshalIndent(sounds, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tFile")
	fmt.Fprintln(w, "──\t────\t────")
	for _, sound := range sounds {
		fmt.Fprintf(w, "%s\t%s %s\t%s\n", sound.ID, sound.Icon, sound.Name, sound.Source)
	}
	w.Flush()

	if !cli.Container.SoundBackend.Available() {
		fmt.Println()
		fmt.Println("No audio player found (install ffplay, mpv, paplay/aplay or afplay).")
	}
	return nil
}

// SoundsPlayCmd loops one ambient sound
type SoundsPlayCmd struct {
	ID string `arg:"" help:"Sound ID (see 'dhyan sounds list')"`
}

// Run plays the sound until Ctrl+C
func (s *SoundsPlayCmd) Run(cli *CLI) error {
	audio := cli.Container.AudioManager
	sound, ok := audio.FindSound(s.ID)
	if !ok {
		return fmt.Errorf("%w: unknown sound %q", domain.ErrNotFound, s.ID)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := <-audio.PlaySound(sound); err != nil {
		return err
	}
	logging.Logger.Info("Ambient sound playing from CLI", "sound", sound.ID)
	fmt.Printf("Playing %s %s at %d%% (Ctrl+C to stop)\n", sound.Icon, sound.Name, int(audio.EffectiveVolume()*100+0.5))

	<-ctx.Done()
	audio.PauseSound()
	fmt.Println("\nStopped")
	return nil
}
