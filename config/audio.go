package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPet
	SoundChime
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Note is one synthesised tone of a sound effect
type Note struct {
	StartHz  float64 // frequency at the start of the note
	EndHz    float64 // frequency at the end, for a sweep
	Seconds  float64
	Delay    float64 // offset from the start of the effect
	Amp      float64
	DecayExp float64 // envelope decay rate
}

// SoundConfig maps sound IDs to their synthesised notes
type SoundConfig struct {
	Effects           map[SoundID][]Note
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Effects: map[SoundID][]Note{
			SoundPet: {
				{StartHz: 880, EndHz: 1320, Seconds: 0.12, Amp: 0.5, DecayExp: 18},
			},
			SoundChime: {
				{StartHz: 784, EndHz: 784, Seconds: 0.35, Amp: 0.4, DecayExp: 9},
				{StartHz: 1175, EndHz: 1175, Seconds: 0.5, Delay: 0.12, Amp: 0.35, DecayExp: 7},
			},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundChime: 0.8,
		},
	}
}
