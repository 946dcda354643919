package ui

import (
	"dhyan/internal/config"
)

// TaskKeys defines key bindings for the task panel
type TaskKeys struct {
	CycleFilter KeyWithTip
	CycleSort   KeyWithTip
	Delete      KeyWithTip
	Edit        KeyWithTip
	New         KeyWithTip
	Toggle      KeyWithTip
	ToggleOrder KeyWithTip
}

func newTaskKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) TaskKeys {
	return TaskKeys{
		CycleFilter: buildBinding("cycle_filter", defaults, customKeys),
		CycleSort:   buildBinding("cycle_sort", defaults, customKeys),
		Delete:      buildBinding("delete_task", defaults, customKeys),
		Edit:        buildBinding("edit_task", defaults, customKeys),
		New:         buildBinding("new_task", defaults, customKeys),
		Toggle:      buildBinding("toggle_task", defaults, customKeys),
		ToggleOrder: buildBinding("toggle_order", defaults, customKeys),
	}
}
