package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	minLineWidth   = 10
	truncationMark = "..."
)

// formatErrorForDisplay word-wraps an error to at most maxErrorLines lines of
// maxWidth runes. The first line carries the "Error: " prefix; overflow is
// replaced by "..." at the end of the last line.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := err.Error()
	if message == "" {
		return errorPrefix + "unknown error"
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + message
	}

	firstLineWidth := max(maxWidth-utf8.RuneCountInString(errorPrefix), minLineWidth)
	otherLineWidth := max(maxWidth, minLineWidth)

	var lines []string
	var current strings.Builder
	lineWidth := firstLineWidth
	truncated := false

	for i, word := range words {
		currentLen := utf8.RuneCountInString(current.String())
		if currentLen > 0 && currentLen+1+utf8.RuneCountInString(word) > lineWidth {
			lines = append(lines, current.String())
			current.Reset()
			if len(lines) == maxErrorLines {
				truncated = i < len(words)
				break
			}
			lineWidth = otherLineWidth
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, current.String())
	}

	if truncated {
		last := []rune(lines[maxErrorLines-1])
		keep := otherLineWidth - utf8.RuneCountInString(truncationMark)
		if len(last)+utf8.RuneCountInString(truncationMark) > otherLineWidth && keep > 0 && len(last) > keep {
			last = last[:keep]
		}
		lines[maxErrorLines-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
