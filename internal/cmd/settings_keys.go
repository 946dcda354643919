package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"dhyan/internal/config"
	"dhyan/internal/logging"
	"dhyan/internal/ui"
)

// SettingsKeysCmd lists and overrides keyboard shortcuts
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List key bindings with their defaults and overrides" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Drop key binding overrides"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Override a key binding"`
}

// SettingsKeysListCmd lists key bindings
type SettingsKeysListCmd struct {
	Custom bool   `help:"Only show bindings that have an override"`
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// SettingsKeysSetCmd overrides one key binding
type SettingsKeysSetCmd struct {
	Name string `arg:"" help:"Binding name (e.g., start_pause, new_task, quit)"`
	Keys string `arg:"" help:"Keys, comma-separated for more than one (e.g., a, ctrl+s, up,k)"`
}

// SettingsKeysResetCmd removes overrides so the defaults apply again
type SettingsKeysResetCmd struct {
	Names []string `arg:"" optional:"" help:"Binding names to reset (all overrides when omitted)"`
}

// keyBindingOutput is one binding as printed by the list command
type keyBindingOutput struct {
	Action  string   `json:"action" yaml:"action"`
	Active  []string `json:"active" yaml:"active"`
	Custom  []string `json:"custom,omitempty" yaml:"custom,omitempty"`
	Default []string `json:"default" yaml:"default"`
	Name    string   `json:"name" yaml:"name"`
}

// keyBindingOutputs resolves every known binding against the overrides, sorted by name
func keyBindingOutputs(overrides config.KeyBindingsConfig, onlyCustom bool) []keyBindingOutput {
	names := ui.GetValidKeyNames()
	rows := make([]keyBindingOutput, 0, len(names))
	for _, name := range names {
		def := ui.GetKeyDefinition(name)
		row := keyBindingOutput{
			Action:  def.Help,
			Active:  def.Defaults,
			Default: def.Defaults,
			Name:    name,
		}
		if keys := overrides[name]; len(keys) > 0 {
			row.Custom = []string(keys)
			row.Active = row.Custom
		} else if onlyCustom {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var overrides config.KeyBindingsConfig
	if cli.settings != nil {
		overrides = cli.settings.Keys
	}
	rows := keyBindingOutputs(overrides, s.Custom)

	switch s.Format {
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Print(string(data))
	default:
		s.outputTable(rows)
	}
	return nil
}

func (s *SettingsKeysListCmd) outputTable(rows []keyBindingOutput) {
	fmt.Printf("Key bindings (settings file: %s)\n\n", config.GetSettingsPath())
	if len(rows) == 0 {
		fmt.Println("No custom key bindings")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tKeys\tDefault\tAction")
	fmt.Fprintln(w, "────\t────\t───────\t──────")
	for _, row := range rows {
		active := keyLabels(row.Active)
		if len(row.Custom) > 0 {
			active += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Name, active, keyLabels(row.Default), row.Action)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("* custom binding. Use 'dhyan settings keys set <name> <keys>' to change one.")
}

func keyLabels(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = ui.KeyLabel(k)
	}
	return strings.Join(labels, ", ")
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Name) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Name, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	keys := splitKeys(s.Keys)
	if len(keys) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	settings.Keys[s.Name] = keys

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if err := checkActiveConflicts(settings.Keys, s.Name); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	logging.Logger.Debug("Setting key binding", "name", s.Name, "keys", keys)
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Name, keyLabels(keys))
	return nil
}

// checkActiveConflicts rejects keys of name that another binding already
// answers to, counting defaults of bindings without an override
func checkActiveConflicts(overrides config.KeyBindingsConfig, name string) error {
	claimed := make(map[string]bool, len(overrides[name]))
	for _, k := range overrides[name] {
		claimed[k] = true
	}
	for _, row := range keyBindingOutputs(overrides, false) {
		if row.Name == name {
			continue
		}
		for _, k := range row.Active {
			if claimed[k] {
				return fmt.Errorf("key '%s' is already bound to '%s'", ui.KeyLabel(k), row.Name)
			}
		}
	}
	return nil
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	for _, name := range s.Names {
		if !ui.IsValidKeyName(name) {
			return fmt.Errorf("unknown key '%s'. Valid keys: %s",
				name, strings.Join(ui.GetValidKeyNames(), ", "))
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if len(s.Names) == 0 {
		settings.Keys = nil
	} else {
		for _, name := range s.Names {
			delete(settings.Keys, name)
		}
	}

	logging.Logger.Debug("Resetting key bindings", "names", s.Names)
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if len(s.Names) == 0 {
		fmt.Println("All key bindings reset to defaults")
		return nil
	}
	for _, name := range s.Names {
		fmt.Printf("Reset '%s' to: %s\n", name, keyLabels(ui.GetKeyDefinition(name).Defaults))
	}
	return nil
}

// splitKeys parses a comma-separated key list; "space" stands for the space bar
func splitKeys(value string) []string {
	parts := strings.Split(value, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		switch trimmed {
		case "":
			continue
		case "space":
			trimmed = " "
		}
		keys = append(keys, trimmed)
	}
	return keys
}
