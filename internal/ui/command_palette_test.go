package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dhyan/internal/config"
)

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		query    string
		target   string
		expected bool
	}{
		{"", "anything", true},
		{"add", "add task", true},
		{"ats", "add task", true},
		{"tsa", "add task", false},
		{"vol", "Volume up", true},
		{"xyz", "add task", false},
	}

	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.target, func(t *testing.T) {
			assert.Equal(t, tt.expected, fuzzyMatch(tt.query, tt.target))
		})
	}
}

func typeInto(cp *CommandPalette, text string) {
	for _, r := range text {
		cp.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestCommandPalette_FilterAndSelect(t *testing.T) {
	cp := NewCommandPalette("", NewKeyMap(config.KeyBindingsConfig{}))

	typeInto(cp, "mute")
	require.NotEmpty(t, cp.actions)
	assert.Equal(t, "mute", cp.actions[0].Name)

	cp.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, cp.Completed)
	assert.False(t, cp.Result.Cancelled)
	require.NotNil(t, cp.Result.Action)
	assert.Equal(t, ToggleMuteMsg{}, cp.Result.Action.Msg)
}

func TestCommandPalette_Cancel(t *testing.T) {
	cp := NewCommandPalette("Write report", NewKeyMap(config.KeyBindingsConfig{}))

	cp.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, cp.Completed)
	assert.True(t, cp.Result.Cancelled)
	assert.Nil(t, cp.Result.Action)
}

func TestCommandPalette_NoMatchesEnterDoesNothing(t *testing.T) {
	cp := NewCommandPalette("", NewKeyMap(config.KeyBindingsConfig{}))

	typeInto(cp, "zzzz")
	assert.Empty(t, cp.actions)

	cp.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, cp.Completed)
}
