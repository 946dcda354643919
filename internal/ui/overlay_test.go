package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripAnsi(t *testing.T) {
	assert.Equal(t, "plain", stripAnsi("\x1b[1;31mplain\x1b[0m"))
	assert.Equal(t, "no codes", stripAnsi("no codes"))
}

func TestBottomAnchoredOverlay(t *testing.T) {
	background := "line1\nline2\nline3\nline4"

	result := strings.Split(bottomAnchoredOverlay(background, "palette", 10, 5), "\n")

	assert.Len(t, result, 5)
	assert.Equal(t, "line1", stripAnsi(result[0]))
	assert.Equal(t, "palette   ", result[4])
}
