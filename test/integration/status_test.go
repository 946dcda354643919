package integration_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"dhyan/test/integration/harness"
)

func TestStatus(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	empty := harness.RunCommand(t, env, "status")
	harness.AssertSuccess(t, empty)
	assert.Equal(t, "☐:0 ⚠:0 ☑:0", empty.Stdout)

	addTask(t, env, "--due", "2020-01-01", "Overdue")
	addTask(t, env, "Pending")

	result := harness.RunCommand(t, env, "status")
	harness.AssertSuccess(t, result)
	assert.Equal(t, "☐:2 ⚠:1 ☑:0", result.Stdout)
}

func TestStatus_CorruptDatabase(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	if err := os.WriteFile(env.DBPath(), []byte("not a database"), 0644); err != nil {
		t.Fatalf("Failed to write database: %v", err)
	}

	result := harness.RunCommand(t, env, "status")

	// A broken store either fails to open or fails to load
	if result.ExitCode == 0 {
		assert.Equal(t, "☐:? ⚠:? ☑:?", result.Stdout)
	}
}
