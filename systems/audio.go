package systems

import (
	"log"
	"sync"

	"github.com/automoto/seasonscape/assets"
	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesises all sound effects at startup to avoid a hitch on
// first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Effects {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: failed to preload sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays the sound effects queued since the last tick
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}
	initGlobalAudio()
	if audioData.Context == nil {
		audioData.Context = globalAudioContext
	}
	for _, soundID := range audioData.PendingSFX {
		playSFX(audioData, soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(audioData *components.AudioData, soundID cfg.SoundID) {
	if audioData.Muted || audioData.SFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		log.Printf("Warning: failed to play sound %d: %v", soundID, err)
		return
	}

	volume := audioData.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played on the next audio tick
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	GetOrCreateAudio(e).SFXVolume = volume
}

// SetMuted silences or restores all sound effects
func SetMuted(e *ecs.ECS, muted bool) {
	GetOrCreateAudio(e).Muted = muted
}

// ToggleMute flips the mute flag and returns the new value
func ToggleMute(e *ecs.ECS) bool {
	a := GetOrCreateAudio(e)
	a.Muted = !a.Muted
	return a.Muted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed. The audio device is opened lazily by UpdateAudio.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  cfg.Audio.DefaultSFXVol,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// ChimeOnThemeChange queues the theme chime.
func ChimeOnThemeChange(w donburi.World, ev components.ThemeChangedEvent) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	a.PendingSFX = append(a.PendingSFX, cfg.SoundChime)
}
