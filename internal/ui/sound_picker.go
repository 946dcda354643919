package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"dhyan/internal/domain"
	"dhyan/internal/services"
	"dhyan/internal/theme"
)

// SoundPickerResult contains the sound chosen in the picker
type SoundPickerResult struct {
	Cancelled bool
	Sound     domain.AmbientSound
}

// SoundPicker is a Bubble Tea component listing the ambient sound catalog
type SoundPicker struct {
	Completed bool
	audio     *services.AudioManager
	form      *huh.Form
	result    SoundPickerResult
	selected  *string
}

// NewSoundPicker creates the picker with the current sound preselected
func NewSoundPicker(audio *services.AudioManager) *SoundPicker {
	state := audio.State()
	selected := new(string)
	if state.Current != nil {
		*selected = state.Current.ID
	}

	var options []huh.Option[string]
	for _, s := range audio.Sounds() {
		label := fmt.Sprintf("%s  %s", s.Icon, s.Name)
		if state.Playing && state.Current != nil && state.Current.ID == s.ID {
			label += "  (playing, select to stop)"
		}
		options = append(options, huh.NewOption(label, s.ID))
	}

	sp := &SoundPicker{
		audio:    audio,
		selected: selected,
	}
	sp.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Ambient sound").
				Options(options...).
				Value(selected),
		),
	)
	return sp
}

func (sp *SoundPicker) Init() tea.Cmd {
	return sp.form.Init()
}

func (sp *SoundPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sp.result.Cancelled = true
			sp.Completed = true
			return sp, nil
		}
	}

	form, cmd := sp.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sp.form = f
	}

	if sp.form.State == huh.StateCompleted {
		sp.Completed = true
		sound, ok := sp.audio.FindSound(*sp.selected)
		if !ok {
			sp.result.Cancelled = true
			return sp, nil
		}
		sp.result.Sound = sound
		return sp, nil
	}

	return sp, cmd
}

func (sp *SoundPicker) View() string {
	return sp.form.View()
}

// Result returns the picker result
func (sp *SoundPicker) Result() SoundPickerResult {
	return sp.result
}

// playSoundCmd requests playback and waits for the outcome off the UI loop
func playSoundCmd(audio *services.AudioManager, sound domain.AmbientSound) tea.Cmd {
	outcome := audio.PlaySound(sound)
	return func() tea.Msg {
		return soundResultMsg{err: <-outcome, sound: sound}
	}
}

// renderSoundStatus renders the one-line ambient audio summary
func renderSoundStatus(state domain.AudioState) string {
	volume := fmt.Sprintf("volume %d%%", int(state.Volume*100+0.5))
	if state.Muted {
		volume += " (muted)"
	}

	if state.Current == nil {
		return theme.SoundStyle.Render("♪ no ambient sound") + "  " + theme.VolumeStyle.Render(volume)
	}

	name := state.Current.Icon + "  " + state.Current.Name
	if state.Playing {
		return theme.SoundPlayingStyle.Render("♪ "+name+" playing") + "  " + theme.VolumeStyle.Render(volume)
	}
	return theme.SoundStyle.Render("♪ "+name+" paused") + "  " + theme.VolumeStyle.Render(volume)
}
