//go:build windows

package sound

import (
	"fmt"
	"strings"
	"time"
)

// mediaPlayerScript plays a file through WPF's MediaPlayer and blocks until it ends
const mediaPlayerScript = `Add-Type -AssemblyName PresentationCore
$p = New-Object System.Windows.Media.MediaPlayer
$p.Open([uri]'%s')
$p.Volume = %.2f
$p.Position = [TimeSpan]::FromSeconds(%.1f)
$p.Play()
Start-Sleep -Milliseconds 500
while (-not $p.NaturalDuration.HasTimeSpan -or $p.Position -lt $p.NaturalDuration.TimeSpan) { Start-Sleep -Milliseconds 250 }`

// platformCommands drives PowerShell's MediaPlayer
func platformCommands(path string, volume float64, offset time.Duration) []PlayerCommand {
	script := fmt.Sprintf(mediaPlayerScript, strings.ReplaceAll(path, "'", "''"), volume, offset.Seconds())
	return []PlayerCommand{
		{Name: "powershell", Args: []string{"-NoProfile", "-NonInteractive", "-c", script}},
	}
}
