package ui

import (
	"dhyan/internal/config"
)

// NavigationKeys defines key bindings for moving through lists and dialogs
type NavigationKeys struct {
	Cancel KeyWithTip
	Down   KeyWithTip
	Filter KeyWithTip
	Select KeyWithTip
	Up     KeyWithTip
}

// newNavigationKeys creates navigation key bindings
func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Cancel: buildBinding("cancel", defaults, customKeys),
		Down:   buildBinding("down", defaults, customKeys),
		Filter: buildBinding("filter", defaults, customKeys),
		Select: buildBinding("select", defaults, customKeys),
		Up:     buildBinding("up", defaults, customKeys),
	}
}
