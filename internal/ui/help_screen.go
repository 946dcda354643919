package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dhyan/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool // Set once the viewport has been sized
	keys        *KeyMap
	viewport    viewport.Model
}

// helpGroup is one titled section of the help screen
type helpGroup struct {
	bindings []key.Binding
	title    string
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent renders every binding grouped by panel
func buildHelpContent(keys *KeyMap) string {
	groups := []helpGroup{
		{title: "Timer", bindings: []key.Binding{
			keys.Timer.StartPause.Binding,
			keys.Timer.Reset.Binding,
			keys.Timer.StartFocus.Binding,
			keys.Timer.ShortBreak.Binding,
			keys.Timer.LongBreak.Binding,
			keys.Timer.FocusGoal.Binding,
		}},
		{title: "Ambient Sound", bindings: []key.Binding{
			keys.Sound.Picker.Binding,
			keys.Sound.Stop.Binding,
			keys.Sound.VolumeUp.Binding,
			keys.Sound.VolumeDown.Binding,
			keys.Sound.Mute.Binding,
		}},
		{title: "Tasks", bindings: []key.Binding{
			keys.Tasks.New.Binding,
			keys.Tasks.Edit.Binding,
			keys.Tasks.Toggle.Binding,
			keys.Tasks.Delete.Binding,
			keys.Tasks.CycleSort.Binding,
			keys.Tasks.ToggleOrder.Binding,
			keys.Tasks.CycleFilter.Binding,
		}},
		{title: "Navigation", bindings: []key.Binding{
			keys.Navigation.Up.Binding,
			keys.Navigation.Down.Binding,
			keys.Navigation.Filter.Binding,
			keys.Navigation.Select.Binding,
			keys.Navigation.Cancel.Binding,
		}},
		{title: "Application", bindings: []key.Binding{
			keys.Application.CommandPalette.Binding,
			keys.Application.Help.Binding,
			keys.Application.Quit.Binding,
			keys.Application.ForceQuit.Binding,
		}},
	}

	var content strings.Builder
	for i, group := range groups {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(theme.HelpGroupStyle.Render(group.title) + "\n")
		for _, binding := range group.bindings {
			content.WriteString(renderBinding(binding))
		}
	}

	content.WriteString("\n" + theme.HelpGroupStyle.Render("Sessions") + "\n")
	content.WriteString(renderShortcut("focus", "25 minutes of work"))
	content.WriteString(renderShortcut("short break", "5 minutes, after each focus session"))
	content.WriteString(renderShortcut("long break", "15 minutes, after every 4th focus session"))

	return content.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Navigation.Cancel.Binding, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
