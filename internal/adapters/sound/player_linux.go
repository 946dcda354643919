//go:build linux

package sound

import (
	"strconv"
	"time"
)

// platformCommands prefers players that honour volume and start offset
// (mpv, ffplay), then PulseAudio's paplay and finally ALSA's aplay.
// aplay always plays at full volume; muting is left to Channel.
func platformCommands(path string, volume float64, offset time.Duration) []PlayerCommand {
	percent := strconv.Itoa(int(volume * 100))
	start := strconv.FormatFloat(offset.Seconds(), 'f', 1, 64)

	return []PlayerCommand{
		{Name: "mpv", Args: []string{"--no-video", "--really-quiet", "--volume=" + percent, "--start=" + start, path}},
		{Name: "ffplay", Args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "-volume", percent, "-ss", start, path}},
		{Name: "paplay", Args: []string{"--volume=" + strconv.Itoa(int(volume*65536)), path}},
		{Name: "aplay", Args: []string{"-q", path}},
	}
}
