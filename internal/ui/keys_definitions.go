package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"dhyan/internal/domain"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults        []string
	Help            string
	IsPaletteAction bool    // If true, this key appears in command palette
	Msg             tea.Msg // Prototype message for dispatch (nil if not dispatchable)
	Name            string
	TipFormat       string
}

// AllKeyDefinitions contains all configurable key bindings.
// If IsPaletteAction is true, the key appears in the command palette.
// If Msg is set, the action can be dispatched via the command palette.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Defaults: []string{"P"}, Help: "command palette", TipFormat: "press %s to open the command palette"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", IsPaletteAction: true, Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", IsPaletteAction: true, Msg: QuitMsg{}},

	// Navigation keys
	{Name: "cancel", Defaults: []string{"esc"}, Help: "cancel / clear filter"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next task"},
	{Name: "filter", Defaults: []string{"/"}, Help: "search tasks", TipFormat: "press %s to search tasks by title"},
	{Name: "select", Defaults: []string{"enter"}, Help: "confirm selection"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous task"},

	// Timer keys
	{Name: "focus_goal", Defaults: []string{"g"}, Help: "set focus goal", IsPaletteAction: true, Msg: EditFocusGoalMsg{}, TipFormat: "press %s to write down what you want to focus on"},
	{Name: "long_break", Defaults: []string{"3"}, Help: "switch to long break", IsPaletteAction: true, Msg: SwitchSessionMsg{Type: domain.SessionLongBreak}},
	{Name: "reset", Defaults: []string{"r"}, Help: "reset timer", IsPaletteAction: true, Msg: ResetTimerMsg{}, TipFormat: "press %s to restart the current session"},
	{Name: "short_break", Defaults: []string{"2"}, Help: "switch to short break", IsPaletteAction: true, Msg: SwitchSessionMsg{Type: domain.SessionShortBreak}},
	{Name: "start_focus", Defaults: []string{"1"}, Help: "switch to focus", IsPaletteAction: true, Msg: SwitchSessionMsg{Type: domain.SessionFocus}, TipFormat: "press %s to go back to a focus session while paused"},
	{Name: "start_pause", Defaults: []string{" "}, Help: "start / pause timer", IsPaletteAction: true, Msg: ToggleTimerMsg{}, TipFormat: "press %s to start or pause the timer"},

	// Sound keys
	{Name: "mute", Defaults: []string{"m"}, Help: "mute / unmute", IsPaletteAction: true, Msg: ToggleMuteMsg{}},
	{Name: "sound_picker", Defaults: []string{"s"}, Help: "choose ambient sound", IsPaletteAction: true, Msg: ShowSoundPickerMsg{}, TipFormat: "press %s to play rain, forest or cafe sounds"},
	{Name: "stop_sound", Defaults: []string{"S"}, Help: "stop ambient sound", IsPaletteAction: true, Msg: StopSoundMsg{}},
	{Name: "volume_down", Defaults: []string{"-"}, Help: "volume down", IsPaletteAction: true, Msg: AdjustVolumeMsg{Delta: -volumeStep}},
	{Name: "volume_up", Defaults: []string{"+", "="}, Help: "volume up", IsPaletteAction: true, Msg: AdjustVolumeMsg{Delta: volumeStep}, TipFormat: "press %s to raise the ambient volume"},

	// Task keys
	{Name: "cycle_filter", Defaults: []string{"f"}, Help: "cycle filter (all/upcoming/overdue)", IsPaletteAction: true, Msg: CycleFilterMsg{}, TipFormat: "press %s to show only upcoming or overdue tasks"},
	{Name: "cycle_sort", Defaults: []string{"o"}, Help: "cycle sort field", IsPaletteAction: true, Msg: CycleSortMsg{}, TipFormat: "press %s to sort tasks by due date, priority or creation"},
	{Name: "delete_task", Defaults: []string{"d"}, Help: "delete task", IsPaletteAction: true, Msg: DeleteTaskMsg{}, TipFormat: "press %s to delete the selected task"},
	{Name: "edit_task", Defaults: []string{"e"}, Help: "edit task", IsPaletteAction: true, Msg: EditTaskMsg{}},
	{Name: "new_task", Defaults: []string{"n"}, Help: "add task", IsPaletteAction: true, Msg: NewTaskMsg{}, TipFormat: "press %s to add a task"},
	{Name: "toggle_order", Defaults: []string{"O"}, Help: "toggle sort order", IsPaletteAction: true, Msg: ToggleSortOrderMsg{}},
	{Name: "toggle_task", Defaults: []string{"x"}, Help: "mark task done / not done", IsPaletteAction: true, Msg: ToggleTaskMsg{}, TipFormat: "press %s to complete the selected task"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}

// GetPaletteActions returns key definitions that should appear in the command palette.
func GetPaletteActions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if !def.IsPaletteAction {
			continue
		}
		actions = append(actions, def)
	}
	return actions
}
