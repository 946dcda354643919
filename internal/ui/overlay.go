package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dhyan/internal/theme"
)

// applyDimOverlay strips styling from every background line and dims it
func applyDimOverlay(background string) string {
	lines := strings.Split(background, "\n")
	for i, line := range lines {
		lines[i] = theme.DimmedStyle.Render(stripAnsi(line))
	}
	return strings.Join(lines, "\n")
}

// stripAnsi removes ANSI escape codes from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			// SGR and cursor sequences end with a letter
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// bottomAnchoredOverlay draws overlay over the last lines of a dimmed background
// filling a width x height screen
func bottomAnchoredOverlay(background, overlay string, width, height int) string {
	bgLines := strings.Split(applyDimOverlay(background), "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	if height > 0 && len(bgLines) > height {
		bgLines = bgLines[:height]
	}

	overlayLines := strings.Split(overlay, "\n")
	startY := max(len(bgLines)-len(overlayLines), 0)

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgLines[y] = line
	}
	return strings.Join(bgLines, "\n")
}
