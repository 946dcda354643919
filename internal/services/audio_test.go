package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dhyan/internal/domain"
	portsmocks "dhyan/internal/ports/mocks"
)

// playResult returns a finished playback result channel
func playResult(err error) <-chan error {
	ch := make(chan error, 1)
	if err != nil {
		ch <- err
	}
	close(ch)
	return ch
}

func rain(t *testing.T) domain.AmbientSound {
	sound, ok := domain.FindAmbientSound("rain")
	require.True(t, ok)
	return sound
}

func forest(t *testing.T) domain.AmbientSound {
	sound, ok := domain.FindAmbientSound("forest")
	require.True(t, ok)
	return sound
}

func newTestAudio(t *testing.T) (*AudioManager, *portsmocks.MockAudioBackend, *portsmocks.MockAudioChannel) {
	backend := portsmocks.NewMockAudioBackend(t)
	ambient := portsmocks.NewMockAudioChannel(t)
	return NewAudioManager(backend, "notify.mp3", domain.DefaultVolume), backend, ambient
}

func TestAudioManager_PlaySoundSetsState(t *testing.T) {
	manager, backend, ambient := newTestAudio(t)
	backend.EXPECT().NewChannel(true).Return(ambient, nil).Once()
	ambient.EXPECT().Load("rain-sounds.mp3").Return(nil)
	ambient.EXPECT().SetVolume(0.5).Return(nil)
	ambient.EXPECT().Play().Return(playResult(nil))

	err := <-manager.PlaySound(rain(t))

	require.NoError(t, err)
	state := manager.State()
	assert.True(t, state.Playing)
	require.NotNil(t, state.Current)
	assert.Equal(t, "rain", state.Current.ID)
}

func TestAudioManager_PlaySameSoundTogglesOff(t *testing.T) {
	manager, backend, ambient := newTestAudio(t)
	backend.EXPECT().NewChannel(true).Return(ambient, nil).Once()
	ambient.EXPECT().Load("rain-sounds.mp3").Return(nil).Once()
	ambient.EXPECT().SetVolume(0.5).Return(nil)
	ambient.EXPECT().Play().Return(playResult(nil)).Once()
	ambient.EXPECT().Pause().Return(nil).Once()

	require.NoError(t, <-manager.PlaySound(rain(t)))
	require.NoError(t, <-manager.PlaySound(rain(t)))

	state := manager.State()
	assert.False(t, state.Playing)
	require.NotNil(t, state.Current)
	assert.Equal(t, "rain", state.Current.ID)
}

func TestAudioManager_PlayDifferentSoundReplaces(t *testing.T) {
	manager, backend, ambient := newTestAudio(t)
	backend.EXPECT().NewChannel(true).Return(ambient, nil).Once()
	ambient.EXPECT().Load("rain-sounds.mp3").Return(nil)
	ambient.EXPECT().Load("forest-ambience.mp3").Return(nil)
	ambient.EXPECT().SetVolume(0.5).Return(nil)
	ambient.EXPECT().Play().Return(playResult(nil)).Twice()
	ambient.EXPECT().Pause().Return(nil).Once()

	require.NoError(t, <-manager.PlaySound(rain(t)))
	require.NoError(t, <-manager.PlaySound(forest(t)))

	state := manager.State()
	assert.True(t, state.Playing)
	assert.Equal(t, "forest", state.Current.ID)
}

func TestAudioManager_PlaybackFailureReverts(t *testing.T) {
	manager, backend, ambient := newTestAudio(t)
	backend.EXPECT().NewChannel(true).Return(ambient, nil)
	ambient.EXPECT().Load("rain-sounds.mp3").Return(nil)
	ambient.EXPECT().SetVolume(0.5).Return(nil)
	ambient.EXPECT().Play().Return(playResult(errors.New("no output device")))

	err := <-manager.PlaySound(rain(t))

	assert.ErrorIs(t, err, domain.ErrPlaybackFailure)
	state := manager.State()
	assert.False(t, state.Playing)
	require.NotNil(t, state.Current)
	assert.Equal(t, "rain", state.Current.ID)
}

func TestAudioManager_StaleFailureDoesNotRevertNewerPlayback(t *testing.T) {
	manager, backend, ambient := newTestAudio(t)
	pending := make(chan error, 1)
	backend.EXPECT().NewChannel(true).Return(ambient, nil)
	ambient.EXPECT().Load("rain-sounds.mp3").Return(nil)
	ambient.EXPECT().Load("forest-ambience.mp3").Return(nil)
	ambient.EXPECT().SetVolume(0.5).Return(nil)
	ambient.EXPECT().Play().Return(pending).Once()
	ambient.EXPECT().Play().Return(playResult(nil)).Once()
	ambient.EXPECT().Pause().Return(nil)

	first := manager.PlaySound(rain(t))
	require.NoError(t, <-manager.PlaySound(forest(t)))

	pending <- errors.New("interrupted")
	close(pending)
	assert.ErrorIs(t, <-first, domain.ErrPlaybackFailure)

	state := manager.State()
	assert.True(t, state.Playing)
	assert.Equal(t, "forest", state.Current.ID)
}

func TestAudioManager_LoadFailure(t *testing.T) {
	manager, backend, ambient := newTestAudio(t)
	backend.EXPECT().NewChannel(true).Return(ambient, nil)
	ambient.EXPECT().Load("rain-sounds.mp3").Return(errors.New("file not found"))

	err := <-manager.PlaySound(rain(t))

	assert.ErrorIs(t, err, domain.ErrPlaybackFailure)
	assert.False(t, manager.State().Playing)
}

func TestAudioManager_ChannelAcquireFailure(t *testing.T) {
	manager, backend, _ := newTestAudio(t)
	backend.EXPECT().NewChannel(true).Return(nil, errors.New("no player"))

	err := <-manager.PlaySound(rain(t))

	assert.ErrorIs(t, err, domain.ErrPlaybackFailure)
	assert.False(t, manager.State().Playing)
}

func TestAudioManager_UnknownSound(t *testing.T) {
	manager, _, _ := newTestAudio(t)

	err := <-manager.PlaySound(domain.AmbientSound{ID: "thunder"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, manager.State().Current)
}

func TestAudioManager_PauseSoundIsIdempotent(t *testing.T) {
	manager, _, _ := newTestAudio(t)

	manager.PauseSound()
	manager.PauseSound()

	assert.False(t, manager.State().Playing)
}

func TestAudioManager_SetVolumeClamps(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"in range", 0.3, 0.3},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"above", 1.5, 1},
		{"below", -0.2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, _, _ := newTestAudio(t)

			manager.SetVolume(tt.input)

			assert.Equal(t, tt.expected, manager.State().Volume)
		})
	}
}

func TestAudioManager_SetVolumeAppliesToChannel(t *testing.T) {
	manager, backend, ambient := newTestAudio(t)
	backend.EXPECT().NewChannel(true).Return(ambient, nil)
	ambient.EXPECT().Load("rain-sounds.mp3").Return(nil)
	ambient.EXPECT().SetVolume(0.5).Return(nil).Once()
	ambient.EXPECT().SetVolume(0.8).Return(nil).Once()
	ambient.EXPECT().Play().Return(playResult(nil))

	require.NoError(t, <-manager.PlaySound(rain(t)))
	manager.SetVolume(0.8)

	assert.Equal(t, 0.8, manager.EffectiveVolume())
}

func TestAudioManager_ToggleMute(t *testing.T) {
	manager, backend, ambient := newTestAudio(t)
	backend.EXPECT().NewChannel(true).Return(ambient, nil)
	ambient.EXPECT().Load("rain-sounds.mp3").Return(nil)
	ambient.EXPECT().SetVolume(0.5).Return(nil).Twice()
	ambient.EXPECT().SetVolume(0.0).Return(nil).Once()
	ambient.EXPECT().Play().Return(playResult(nil))

	require.NoError(t, <-manager.PlaySound(rain(t)))

	manager.ToggleMute()
	assert.True(t, manager.State().Muted)
	assert.Zero(t, manager.EffectiveVolume())
	assert.Equal(t, 0.5, manager.State().Volume)

	manager.ToggleMute()
	assert.False(t, manager.State().Muted)
	assert.Equal(t, 0.5, manager.EffectiveVolume())
}

func TestAudioManager_PlayNotificationIgnoresAmbientVolume(t *testing.T) {
	manager, backend, _ := newTestAudio(t)
	notification := portsmocks.NewMockAudioChannel(t)
	backend.EXPECT().NewChannel(false).Return(notification, nil).Once()
	notification.EXPECT().Load("notify.mp3").Return(nil).Once()
	notification.EXPECT().SetVolume(domain.NotificationVolume).Return(nil).Once()
	notification.EXPECT().Seek(time.Duration(0)).Return(nil).Twice()
	notification.EXPECT().Play().Return(playResult(nil)).Twice()

	manager.ToggleMute()
	manager.SetVolume(0.1)
	manager.PlayNotification()
	manager.PlayNotification()

	assert.Equal(t, 0.1, manager.State().Volume)
}

func TestAudioManager_PlayNotificationSwallowsFailures(t *testing.T) {
	manager, backend, _ := newTestAudio(t)
	backend.EXPECT().NewChannel(false).Return(nil, errors.New("no player"))

	assert.NotPanics(t, manager.PlayNotification)
}

func TestAudioManager_CloseReleasesChannels(t *testing.T) {
	manager, backend, ambient := newTestAudio(t)
	notification := portsmocks.NewMockAudioChannel(t)
	backend.EXPECT().NewChannel(true).Return(ambient, nil)
	backend.EXPECT().NewChannel(false).Return(notification, nil)
	ambient.EXPECT().Load("rain-sounds.mp3").Return(nil)
	ambient.EXPECT().SetVolume(0.5).Return(nil)
	ambient.EXPECT().Play().Return(playResult(nil))
	ambient.EXPECT().Close().Return(nil).Once()
	notification.EXPECT().Load("notify.mp3").Return(nil)
	notification.EXPECT().SetVolume(domain.NotificationVolume).Return(nil)
	notification.EXPECT().Seek(time.Duration(0)).Return(nil)
	notification.EXPECT().Play().Return(playResult(nil))
	notification.EXPECT().Close().Return(nil).Once()

	require.NoError(t, <-manager.PlaySound(rain(t)))
	manager.PlayNotification()

	require.NoError(t, manager.Close())
	assert.False(t, manager.State().Playing)

	// Closed managers refuse new playback
	assert.ErrorIs(t, <-manager.PlaySound(rain(t)), domain.ErrPlaybackFailure)
}

func TestAudioManager_StateReturnsCopy(t *testing.T) {
	manager, backend, ambient := newTestAudio(t)
	backend.EXPECT().NewChannel(true).Return(ambient, nil)
	ambient.EXPECT().Load("rain-sounds.mp3").Return(nil)
	ambient.EXPECT().SetVolume(0.5).Return(nil)
	ambient.EXPECT().Play().Return(playResult(nil))
	require.NoError(t, <-manager.PlaySound(rain(t)))

	state := manager.State()
	state.Current.ID = "mutated"

	assert.Equal(t, "rain", manager.State().Current.ID)
}
