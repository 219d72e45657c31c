package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// UI sounds
	SoundMenuNavigate
	SoundMenuDismiss
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuDismiss:  "audio/sfx/menu_dismiss.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundMenuDismiss: 0.8,
		},
	}
}
