package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"dhyan/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	table := harness.RunCommand(t, env, "settings")
	harness.AssertSuccess(t, table)
	harness.AssertStdoutContains(t, table, env.SettingsPath())
	harness.AssertStdoutContains(t, table, "volume")

	jsonResult := harness.RunCommand(t, env, "settings", "meta", "--format", "json")
	harness.AssertSuccess(t, jsonResult)
	var meta map[string]any
	harness.AssertValidJSON(t, jsonResult, &meta)
	assert.Equal(t, env.SettingsPath(), meta["settings_file"])
	assert.Contains(t, meta, "format")
}

type listedBinding struct {
	Action  string   `json:"action" yaml:"action"`
	Active  []string `json:"active" yaml:"active"`
	Custom  []string `json:"custom" yaml:"custom"`
	Default []string `json:"default" yaml:"default"`
	Name    string   `json:"name" yaml:"name"`
}

func listBindings(t *testing.T, env *harness.TestEnvironment, args ...string) map[string]listedBinding {
	t.Helper()
	result := harness.RunCommand(t, env, append([]string{"settings", "keys", "list", "--format", "json"}, args...)...)
	harness.AssertSuccess(t, result)

	var rows []listedBinding
	harness.AssertValidJSON(t, result, &rows)
	byName := make(map[string]listedBinding, len(rows))
	for _, row := range rows {
		byName[row.Name] = row
	}
	return byName
}

func TestSettingsKeysList(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{"keys": {"quit": "Q"}}`)

	bindings := listBindings(t, env)

	require.Contains(t, bindings, "start_pause")
	assert.Equal(t, []string{" "}, bindings["start_pause"].Active)
	assert.Empty(t, bindings["start_pause"].Custom)
	assert.Equal(t, "start / pause timer", bindings["start_pause"].Action)

	assert.Equal(t, []string{"Q"}, bindings["quit"].Custom)
	assert.Equal(t, []string{"Q"}, bindings["quit"].Active)
	assert.Equal(t, []string{"q"}, bindings["quit"].Default)
}

func TestSettingsKeysList_CustomOnly(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{"keys": {"quit": ["Q"]}}`)

	bindings := listBindings(t, env, "--custom")

	assert.Len(t, bindings, 1)
	assert.Contains(t, bindings, "quit")
}

func TestSettingsKeysList_Table(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{"keys": {"quit": ["Q"]}}`)

	result := harness.RunCommand(t, env, "settings", "keys")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, env.SettingsPath())
	harness.AssertStdoutContains(t, result, "Q *")
	harness.AssertStdoutContains(t, result, "space")
}

func TestSettingsKeysList_YAML(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "keys", "list", "--format", "yaml")

	harness.AssertSuccess(t, result)
	var rows []listedBinding
	require.NoError(t, yaml.Unmarshal([]byte(result.Stdout), &rows))
	assert.NotEmpty(t, rows)
}

func TestSettingsKeysSet(t *testing.T) {
	tests := []struct {
		name         string
		steps        [][]string
		wantExitCode int
		wantStderr   string
		validate     func(t *testing.T, env *harness.TestEnvironment)
	}{
		{
			name:         "set persists binding",
			steps:        [][]string{{"settings", "keys", "set", "reset", "R"}},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertFileContains(t, env.SettingsPath(), `"reset"`)
				result := harness.RunCommand(t, env, "settings", "keys")
				harness.AssertStdoutContains(t, result, "R")
			},
		},
		{
			name:         "multiple keys",
			steps:        [][]string{{"settings", "keys", "set", "new_task", "a, ctrl+n"}},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment) {
				bindings := listBindings(t, env)
				assert.Equal(t, []string{"a", "ctrl+n"}, bindings["new_task"].Custom)
			},
		},
		{
			name:         "unknown name",
			steps:        [][]string{{"settings", "keys", "set", "teleport", "t"}},
			wantExitCode: 1,
			wantStderr:   "unknown key 'teleport'",
		},
		{
			name: "conflicting binding",
			steps: [][]string{
				{"settings", "keys", "set", "reset", "R"},
				{"settings", "keys", "set", "new_task", "R"},
			},
			wantExitCode: 1,
			wantStderr:   "conflict",
		},
		{
			name:         "taken by a default",
			steps:        [][]string{{"settings", "keys", "set", "new_task", "r"}},
			wantExitCode: 1,
			wantStderr:   "key 'r' is already bound to 'reset'",
		},
		{
			name:         "space alias",
			steps:        [][]string{{"settings", "keys", "set", "start_pause", "space, p"}},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment) {
				bindings := listBindings(t, env)
				assert.Equal(t, []string{" ", "p"}, bindings["start_pause"].Custom)
			},
		},
		{
			name:         "empty value",
			steps:        [][]string{{"settings", "keys", "set", "reset", " , "}},
			wantExitCode: 1,
			wantStderr:   "value cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			var result harness.CommandResult
			for _, step := range tt.steps {
				result = harness.RunCommand(t, env, step...)
			}

			harness.AssertExitCode(t, result, tt.wantExitCode)
			if tt.wantStderr != "" {
				harness.AssertStderrContains(t, result, tt.wantStderr)
			}
			if tt.validate != nil {
				tt.validate(t, env)
			}
		})
	}
}

func TestSettingsKeysReset(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCustom []string
	}{
		{name: "one binding", args: []string{"quit"}, wantCustom: []string{"reset"}},
		{name: "all bindings", args: nil, wantCustom: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			env.WriteSettings(`{"keys": {"quit": "Q", "reset": "R"}}`)

			result := harness.RunCommand(t, env, append([]string{"settings", "keys", "reset"}, tt.args...)...)
			harness.AssertSuccess(t, result)

			var custom []string
			for name := range listBindings(t, env, "--custom") {
				custom = append(custom, name)
			}
			assert.Equal(t, tt.wantCustom, custom)
		})
	}
}

func TestSettingsKeysReset_UnknownName(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "keys", "reset", "teleport")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "unknown key 'teleport'")
}

func TestInvalidSettingsFileIsIgnored(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{not json`)

	result := harness.RunCommand(t, env, "status")

	harness.AssertSuccess(t, result)
	harness.AssertStderrContains(t, result, "failed to load settings")
}
