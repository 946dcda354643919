package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dhyan/internal/theme"
)

// CommandPalette is a searchable action palette overlay.
type CommandPalette struct {
	actions       []KeyDefinition // Filtered actions
	allActions    []KeyDefinition
	Completed     bool
	filterInput   textinput.Model
	height        int
	keys          KeyMap
	lastQuery     string // Previous filter query (to detect changes)
	Result        CommandPaletteResult
	selectedIndex int
	taskTitle     string // Selected task shown in the header
	width         int
}

// CommandPaletteResult contains the result of the command palette interaction.
type CommandPaletteResult struct {
	Action    *KeyDefinition
	Cancelled bool
}

// NewCommandPalette creates a new command palette.
// taskTitle is the selected task shown in the header, empty when none.
func NewCommandPalette(taskTitle string, keys KeyMap) *CommandPalette {
	actions := GetPaletteActions()

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &CommandPalette{
		actions:     actions,
		allActions:  actions,
		filterInput: ti,
		keys:        keys,
		taskTitle:   taskTitle,
	}
}

// Init initializes the command palette.
func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cp.width = msg.Width
		cp.height = msg.Height
		return cp, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, cp.keys.Navigation.Cancel.Binding) ||
			key.Matches(msg, cp.keys.Application.ForceQuit.Binding):
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil

		case key.Matches(msg, cp.keys.Navigation.Select.Binding):
			if len(cp.actions) > 0 && cp.selectedIndex < len(cp.actions) {
				cp.Completed = true
				cp.Result.Action = &cp.actions[cp.selectedIndex]
			}
			return cp, nil

		case msg.Type == tea.KeyUp:
			if cp.selectedIndex > 0 {
				cp.selectedIndex--
			}
			return cp, nil

		case msg.Type == tea.KeyDown:
			if cp.selectedIndex < len(cp.actions)-1 {
				cp.selectedIndex++
			}
			return cp, nil
		}
	}

	// Update filter input
	var cmd tea.Cmd
	cp.filterInput, cmd = cp.filterInput.Update(msg)

	// Re-filter actions based on input
	cp.filterActions()

	return cp, cmd
}

// View renders the command palette as a full-width bottom panel.
func (cp *CommandPalette) View() string {
	width := cp.paletteWidth()

	header := theme.PaletteTitleStyle.Render("⌘ Command Palette")
	if cp.taskTitle != "" {
		header += " " + theme.DimmedStyle.Render("(selected task: "+cp.taskTitle+")")
	}

	// Build visible action list
	var items []string
	maxHelpLen := cp.maxHelpLen()
	start, end := cp.visibleRange()
	total := len(cp.actions)
	hasMoreAbove := start > 0
	hasMoreBelow := end < total

	for i := start; i < end; i++ {
		def := cp.actions[i]
		helpText := padRight(capitalizeFirst(def.Help), maxHelpLen)
		shortcut := KeyLabel(def.Defaults[0])

		// Determine prefix: selection indicator or scroll arrow
		var prefix string
		if i == cp.selectedIndex {
			prefix = "> "
		} else if i == start && hasMoreAbove {
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		} else if i == end-1 && hasMoreBelow {
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		} else {
			prefix = "  "
		}

		line := prefix +
			theme.PaletteItemStyle.Render(helpText) +
			theme.PaletteShortcutStyle.Render("  "+shortcut)
		items = append(items, line)
	}

	// If no matches
	if len(items) == 0 {
		items = append(items, theme.PaletteDescStyle.Render("  No matching actions"))
	}

	// Pad to fixed height
	for len(items) < maxVisibleItems {
		items = append(items, "")
	}

	actionList := strings.Join(items, "\n")

	// Filter input line
	filterLine := cp.filterInput.View()

	// Combine inner content
	innerContent := header + "\n" +
		"\n" +
		filterLine + "\n" +
		"\n" +
		actionList

	// Apply border around entire palette
	bordered := theme.PaletteBorderStyle.Width(width - 2).Render(innerContent)

	return bordered
}

// filterActions narrows the action list to the current query
func (cp *CommandPalette) filterActions() {
	query := strings.ToLower(cp.filterInput.Value())
	if query == cp.lastQuery {
		return
	}
	cp.lastQuery = query

	if query == "" {
		cp.actions = cp.allActions
		cp.selectedIndex = 0
		return
	}

	filtered := make([]KeyDefinition, 0, len(cp.allActions))
	for _, def := range cp.allActions {
		if fuzzyMatch(query, def.Help) || fuzzyMatch(query, strings.ReplaceAll(def.Name, "_", " ")) {
			filtered = append(filtered, def)
		}
	}
	cp.actions = filtered

	if cp.selectedIndex >= len(cp.actions) {
		cp.selectedIndex = 0
	}
}

// fuzzyMatch reports whether the runes of query appear in order in target
func fuzzyMatch(query, target string) bool {
	remaining := []rune(query)
	for _, c := range strings.ToLower(target) {
		if len(remaining) == 0 {
			break
		}
		if c == remaining[0] {
			remaining = remaining[1:]
		}
	}
	return len(remaining) == 0
}

// maxHelpLen is computed over all actions so alignment is stable while filtering
func (cp *CommandPalette) maxHelpLen() int {
	longest := 0
	for _, def := range cp.allActions {
		longest = max(longest, len(def.Help))
	}
	return longest
}

func (cp *CommandPalette) paletteWidth() int {
	if cp.width > 0 {
		return cp.width
	}
	return 80
}

// maxVisibleItems is the number of palette rows shown at once
const maxVisibleItems = 8

// visibleRange returns the window of actions around the selection
func (cp *CommandPalette) visibleRange() (int, int) {
	total := len(cp.actions)
	if total <= maxVisibleItems {
		return 0, total
	}

	start := max(cp.selectedIndex-maxVisibleItems/2, 0)
	end := start + maxVisibleItems
	if end > total {
		end = total
		start = end - maxVisibleItems
	}
	return start, end
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
