package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"dhyan/internal/domain"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "start_pause", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of ~/.dhyan/settings.json
type Settings struct {
	Debug                *bool             `json:"debug,omitempty"`
	ErrorClearDelay      *int              `json:"error_clear_delay,omitempty"`
	Keys                 KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles          *int              `json:"max_log_files,omitempty"`
	NotificationSound    string            `json:"notification_sound,omitempty"`
	QuoteIntervalSeconds *int              `json:"quote_interval_seconds,omitempty"`
	Quotes               StringArray       `json:"quotes,omitempty"`
	QuotesEnabled        *bool             `json:"quotes_enabled,omitempty"`
	SortBy               string            `json:"sort_by,omitempty"`
	SortOrder            string            `json:"sort_order,omitempty"`
	SoundsDir            string            `json:"sounds_dir,omitempty"`
	Volume               *float64          `json:"volume,omitempty"`
}

// Validate reports values that are present but unusable
func (s *Settings) Validate() error {
	if s.Volume != nil && (*s.Volume < 0 || *s.Volume > 1) {
		return fmt.Errorf("volume must be between 0 and 1, got %v", *s.Volume)
	}
	if s.QuoteIntervalSeconds != nil && *s.QuoteIntervalSeconds <= 0 {
		return fmt.Errorf("quote_interval_seconds must be positive, got %d", *s.QuoteIntervalSeconds)
	}
	if s.ErrorClearDelay != nil && *s.ErrorClearDelay <= 0 {
		return fmt.Errorf("error_clear_delay must be positive, got %d", *s.ErrorClearDelay)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative, got %d", *s.MaxLogFiles)
	}
	if s.SortBy != "" {
		if _, err := domain.ParseSortBy(s.SortBy); err != nil {
			return fmt.Errorf("sort_by: %w", err)
		}
	}
	if s.SortOrder != "" {
		if _, err := domain.ParseSortOrder(s.SortOrder); err != nil {
			return fmt.Errorf("sort_order: %w", err)
		}
	}
	return nil
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $DHYAN_HOME/settings.json (or ~/.dhyan/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.SoundsDir != "" {
		settings.SoundsDir = ExpandPath(settings.SoundsDir)
	}
	if settings.NotificationSound != "" {
		settings.NotificationSound = ExpandPath(settings.NotificationSound)
	}

	return &settings, nil
}

// SaveSettings saves settings to $DHYAN_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(GetDhyanHome(), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
