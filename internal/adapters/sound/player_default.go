//go:build !darwin && !linux && !windows

package sound

import (
	"strconv"
	"time"
)

// platformCommands tries the portable players; the terminal bell covers the rest
func platformCommands(path string, volume float64, offset time.Duration) []PlayerCommand {
	percent := strconv.Itoa(int(volume * 100))
	start := strconv.FormatFloat(offset.Seconds(), 'f', 1, 64)

	return []PlayerCommand{
		{Name: "mpv", Args: []string{"--no-video", "--really-quiet", "--volume=" + percent, "--start=" + start, path}},
		{Name: "ffplay", Args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "-volume", percent, "-ss", start, path}},
	}
}
