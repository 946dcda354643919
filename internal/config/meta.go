package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"help":  []string{"?", "h"},
			"reset": "R",
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug" || fieldName == "quotes_enabled"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "quote_interval_seconds":
				return 45
			case "error_clear_delay":
				return 10
			}
			return 10
		case reflect.Float64:
			return 0.5
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "notification_sound":
			return "timer-notification.mp3"
		case "sort_by":
			return "dueDate"
		case "sort_order":
			return "asc"
		case "sounds_dir":
			return "~/.dhyan/sounds"
		default:
			return "example"
		}
	case reflect.Slice:
		if fieldName == "quotes" {
			return []string{"Progress, not perfection", "Consistency beats intensity"}
		}
		return []string{"example1", "example2"}
	}

	return nil
}
