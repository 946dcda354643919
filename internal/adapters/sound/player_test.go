//go:build !windows

package sound

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the watcher goroutines
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// shell returns a builder running script with sh
func shell(script string) CommandBuilder {
	return func(path string, volume float64, offset time.Duration) []PlayerCommand {
		return []PlayerCommand{{Name: "sh", Args: []string{"-c", script}}}
	}
}

func writeClip(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("clip"), 0644))
}

func newChannel(t *testing.T, backend *Backend, loop bool) *Channel {
	t.Helper()
	ch, err := backend.NewChannel(loop)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ch.Close() })
	return ch.(*Channel)
}

func TestChannel_LoadResolvesAgainstSoundsDir(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "rain.mp3")
	backend := NewBackend(dir)
	ch := newChannel(t, backend, true)

	require.NoError(t, ch.Load("rain.mp3"))

	assert.Equal(t, filepath.Join(dir, "rain.mp3"), ch.path)
}

func TestChannel_LoadMissingFileFailsForLoopingChannel(t *testing.T) {
	backend := NewBackend(t.TempDir())
	ch := newChannel(t, backend, true)

	err := ch.Load("missing.mp3")

	assert.Error(t, err)
}

func TestChannel_PlayReportsPlayerFailure(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "rain.mp3")
	backend := NewBackend(dir, WithCommandBuilder(shell("exit 3")), WithStartupGrace(2*time.Second))
	ch := newChannel(t, backend, true)
	require.NoError(t, ch.Load("rain.mp3"))

	err := <-ch.Play()

	assert.Error(t, err)
}

func TestChannel_PlayReportsSuccessAfterGrace(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "rain.mp3")
	backend := NewBackend(dir, WithCommandBuilder(shell("sleep 5")), WithStartupGrace(50*time.Millisecond))
	ch := newChannel(t, backend, true)
	require.NoError(t, ch.Load("rain.mp3"))

	err := <-ch.Play()

	require.NoError(t, err)
	ch.mu.Lock()
	running := ch.proc != nil
	ch.mu.Unlock()
	assert.True(t, running)

	require.NoError(t, ch.Pause())
	ch.mu.Lock()
	assert.Nil(t, ch.proc)
	assert.Positive(t, ch.offset)
	ch.mu.Unlock()
}

func TestChannel_NoPlayerLoopingFails(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "rain.mp3")
	noPlayer := func(string, float64, time.Duration) []PlayerCommand {
		return []PlayerCommand{{Name: "definitely-not-an-audio-player"}}
	}
	backend := NewBackend(dir, WithCommandBuilder(noPlayer))
	ch := newChannel(t, backend, true)
	require.NoError(t, ch.Load("rain.mp3"))

	err := <-ch.Play()

	assert.ErrorIs(t, err, ErrNoPlayer)
	assert.False(t, backend.Available())
}

func TestChannel_OneShotFallsBackToBell(t *testing.T) {
	bell := &syncBuffer{}
	backend := NewBackend(t.TempDir(), WithBell(bell))
	ch := newChannel(t, backend, false)
	require.NoError(t, ch.Load("missing.mp3"))

	err := <-ch.Play()

	require.NoError(t, err)
	assert.Equal(t, "\a", bell.String())
}

func TestChannel_PlayWithoutLoad(t *testing.T) {
	ch := newChannel(t, NewBackend(t.TempDir()), false)

	assert.Error(t, <-ch.Play())
}

func TestChannel_SeekSetsOffsetWhileIdle(t *testing.T) {
	ch := newChannel(t, NewBackend(t.TempDir()), false)

	require.NoError(t, ch.Seek(3*time.Second))
	assert.Equal(t, 3*time.Second, ch.offset)

	require.NoError(t, ch.Seek(-time.Second))
	assert.Zero(t, ch.offset)
}

func TestChannel_SetVolumeClamps(t *testing.T) {
	ch := newChannel(t, NewBackend(t.TempDir()), true)

	require.NoError(t, ch.SetVolume(1.7))
	assert.Equal(t, 1.0, ch.volume)

	require.NoError(t, ch.SetVolume(-1))
	assert.Equal(t, 0.0, ch.volume)
}

func TestChannel_SetVolumeRestartsPlayer(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "rain.mp3")
	var volumes []float64
	var mu sync.Mutex
	builder := func(path string, volume float64, offset time.Duration) []PlayerCommand {
		mu.Lock()
		volumes = append(volumes, volume)
		mu.Unlock()
		return []PlayerCommand{{Name: "sh", Args: []string{"-c", "sleep 5"}}}
	}
	backend := NewBackend(dir, WithCommandBuilder(builder), WithStartupGrace(20*time.Millisecond))
	ch := newChannel(t, backend, true)
	require.NoError(t, ch.Load("rain.mp3"))
	require.NoError(t, <-ch.Play())

	require.NoError(t, ch.SetVolume(0.25))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []float64{1, 0.25}, volumes)
}

// countingBuilder records the volume of every player start
func countingBuilder(volumes *[]float64, mu *sync.Mutex) CommandBuilder {
	return func(path string, volume float64, offset time.Duration) []PlayerCommand {
		mu.Lock()
		*volumes = append(*volumes, volume)
		mu.Unlock()
		return []PlayerCommand{{Name: "sh", Args: []string{"-c", "sleep 5"}}}
	}
}

func TestChannel_ZeroVolumeRunsNoPlayer(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "rain.mp3")
	var volumes []float64
	var mu sync.Mutex
	backend := NewBackend(dir, WithCommandBuilder(countingBuilder(&volumes, &mu)), WithStartupGrace(20*time.Millisecond))
	ch := newChannel(t, backend, true)
	require.NoError(t, ch.Load("rain.mp3"))
	require.NoError(t, ch.SetVolume(0))

	require.NoError(t, <-ch.Play())

	ch.mu.Lock()
	assert.Nil(t, ch.proc)
	assert.True(t, ch.silent)
	ch.mu.Unlock()

	require.NoError(t, ch.SetVolume(0.5))

	ch.mu.Lock()
	assert.NotNil(t, ch.proc)
	assert.False(t, ch.silent)
	ch.mu.Unlock()
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []float64{0.5}, volumes)
}

func TestChannel_SetVolumeZeroStopsPlayer(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "rain.mp3")
	var volumes []float64
	var mu sync.Mutex
	backend := NewBackend(dir, WithCommandBuilder(countingBuilder(&volumes, &mu)), WithStartupGrace(20*time.Millisecond))
	ch := newChannel(t, backend, true)
	require.NoError(t, ch.Load("rain.mp3"))
	require.NoError(t, <-ch.Play())

	require.NoError(t, ch.SetVolume(0))

	ch.mu.Lock()
	assert.Nil(t, ch.proc)
	assert.True(t, ch.silent)
	ch.mu.Unlock()

	require.NoError(t, ch.Pause())
	ch.mu.Lock()
	assert.False(t, ch.silent)
	ch.mu.Unlock()
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []float64{1}, volumes)
}

func TestChannel_LoopRestartsAfterCleanExit(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "rain.mp3")
	var mu sync.Mutex
	starts := 0
	builder := func(path string, volume float64, offset time.Duration) []PlayerCommand {
		mu.Lock()
		starts++
		mu.Unlock()
		return []PlayerCommand{{Name: "sh", Args: []string{"-c", "sleep 0.1"}}}
	}
	backend := NewBackend(dir, WithCommandBuilder(builder), WithStartupGrace(10*time.Millisecond))
	ch := newChannel(t, backend, true)
	require.NoError(t, ch.Load("rain.mp3"))
	require.NoError(t, <-ch.Play())

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return starts >= 2
	}, 3*time.Second, 20*time.Millisecond)
}

func TestChannel_CloseBlocksPlay(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "rain.mp3")
	ch := newChannel(t, NewBackend(dir), true)
	require.NoError(t, ch.Load("rain.mp3"))

	require.NoError(t, ch.Close())

	assert.Error(t, <-ch.Play())
}

func TestBackend_PlayOnceWaitsForPlayer(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "bell.mp3")
	marker := filepath.Join(dir, "played")
	backend := NewBackend(dir, WithCommandBuilder(shell("sleep 0.1; touch "+marker)))

	require.NoError(t, backend.PlayOnce(context.Background(), "bell.mp3", 0.7))

	assert.FileExists(t, marker)
}

func TestBackend_PlayOnceReportsPlayerFailure(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "bell.mp3")
	backend := NewBackend(dir, WithCommandBuilder(shell("exit 2")))

	err := backend.PlayOnce(context.Background(), "bell.mp3", 0.7)

	assert.ErrorContains(t, err, "exited")
}

func TestBackend_PlayOnceCancelled(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "bell.mp3")
	backend := NewBackend(dir, WithCommandBuilder(shell("sleep 5")))
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := backend.PlayOnce(ctx, "bell.mp3", 0.7)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBackend_PlayOnceFallsBackToBell(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "bell.mp3")
	bell := &syncBuffer{}
	backend := NewBackend(dir,
		WithBell(bell),
		WithCommandBuilder(func(string, float64, time.Duration) []PlayerCommand {
			return []PlayerCommand{{Name: "definitely-not-a-player"}}
		}))

	require.NoError(t, backend.PlayOnce(context.Background(), "bell.mp3", 0.7))

	assert.Equal(t, "\a", bell.String())
}

func TestBackend_PlayOnceSilentAtZeroVolume(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "bell.mp3")
	marker := filepath.Join(dir, "played")
	bell := &syncBuffer{}
	backend := NewBackend(dir, WithBell(bell), WithCommandBuilder(shell("touch "+marker)))

	require.NoError(t, backend.PlayOnce(context.Background(), "bell.mp3", 0))

	assert.NoFileExists(t, marker)
	assert.Empty(t, bell.String())
}

func TestBackend_PlayOnceMissingFile(t *testing.T) {
	backend := NewBackend(t.TempDir())

	assert.Error(t, backend.PlayOnce(context.Background(), "missing.mp3", 0.7))
}
