//go:build darwin

package sound

import (
	"strconv"
	"time"
)

// platformCommands uses afplay, which ships with macOS, unless mpv is installed
func platformCommands(path string, volume float64, offset time.Duration) []PlayerCommand {
	percent := strconv.Itoa(int(volume * 100))
	start := strconv.FormatFloat(offset.Seconds(), 'f', 1, 64)

	return []PlayerCommand{
		{Name: "mpv", Args: []string{"--no-video", "--really-quiet", "--volume=" + percent, "--start=" + start, path}},
		{Name: "afplay", Args: []string{"-v", strconv.FormatFloat(volume, 'f', 2, 64), path}},
	}
}
