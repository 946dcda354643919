package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dhyan/test/integration/harness"
)

func TestSoundsList(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "default table",
			args: []string{"sounds"},
			validate: func(t *testing.T, result harness.CommandResult) {
				for _, id := range []string{"forest", "rain", "ocean", "birds", "whitenoise", "cafe"} {
					harness.AssertStdoutContains(t, result, id)
				}
			},
		},
		{
			name: "json",
			args: []string{"sounds", "list", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var sounds []map[string]string
				harness.AssertValidJSON(t, result, &sounds)
				require.Len(t, sounds, 6)
				assert.Equal(t, "forest", sounds[0]["id"])
				assert.Equal(t, "forest-ambience.mp3", sounds[0]["source"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}

func TestSoundsPlay_UnknownSound(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sounds", "play", "thunder")

	harness.AssertExitCode(t, result, 1)
	harness.AssertStderrContains(t, result, "unknown sound")
}

func TestSoundsPlay_MissingFile(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sounds", "play", "rain")

	harness.AssertExitCode(t, result, 1)
	harness.AssertStderrContains(t, result, "sound file unavailable")
}

func TestPlaySound_MissingFile(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "play-sound", "nope.mp3")

	harness.AssertExitCode(t, result, 1)
	harness.AssertStderrContains(t, result, "sound file unavailable")
}

func TestInvalidVolumeRejected(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--volume", "1.5", "status")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "volume must be between 0 and 1")
}
