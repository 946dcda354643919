package domain

// AmbientSound is an entry in the fixed ambient sound catalog
type AmbientSound struct {
	Icon   string `json:"icon"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"` // File name relative to the sounds directory, or an absolute path
}

// NotificationVolume is the fixed volume of the session-complete notification
const NotificationVolume = 0.7

// DefaultVolume is the initial ambient volume
const DefaultVolume = 0.5

// DefaultNotificationSource is the session-complete clip
const DefaultNotificationSource = "timer-notification.mp3"

var ambientSounds = []AmbientSound{
	{ID: "forest", Name: "Forest Sounds", Source: "forest-ambience.mp3", Icon: "🌲"},
	{ID: "rain", Name: "Rain", Source: "rain-sounds.mp3", Icon: "🌧️"},
	{ID: "ocean", Name: "Ocean Waves", Source: "ocean-waves.mp3", Icon: "🌊"},
	{ID: "birds", Name: "Bird Songs", Source: "bird-songs.mp3", Icon: "🐦"},
	{ID: "whitenoise", Name: "White Noise", Source: "white-noise.mp3", Icon: "📻"},
	{ID: "cafe", Name: "Cafe Ambience", Source: "cafe-ambience.mp3", Icon: "☕"},
}

// AmbientSounds returns a copy of the ambient sound catalog
func AmbientSounds() []AmbientSound {
	out := make([]AmbientSound, len(ambientSounds))
	copy(out, ambientSounds)
	return out
}

// FindAmbientSound looks up a catalog entry by id
func FindAmbientSound(id string) (AmbientSound, bool) {
	for _, s := range ambientSounds {
		if s.ID == id {
			return s, true
		}
	}
	return AmbientSound{}, false
}

// AudioState is a point-in-time view of the ambient channel
type AudioState struct {
	Current *AmbientSound
	Muted   bool
	Playing bool
	Volume  float64
}

// EffectiveVolume is the volume actually applied to the ambient channel
func (a AudioState) EffectiveVolume() float64 {
	if a.Muted {
		return 0
	}
	return a.Volume
}
