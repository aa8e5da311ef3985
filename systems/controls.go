package systems

import (
	"os"

	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls handles the keyboard shortcuts: theme selection and the
// display preferences. This system should run AFTER UpdateInput.
func UpdateControls(e *ecs.ECS) {
	input := getOrCreateInput(e)

	switch {
	case GetAction(input, cfg.ActionWinter).JustPressed:
		SetTheme(e, cfg.Winter)
	case GetAction(input, cfg.ActionSpring).JustPressed:
		SetTheme(e, cfg.Spring)
	case GetAction(input, cfg.ActionToggleTheme).JustPressed:
		ToggleTheme(e)
	}

	settings := GetOrCreateSettings(e)
	changed := false

	if GetAction(input, cfg.ActionMute).JustPressed {
		settings.Muted = ToggleMute(e)
		changed = true
	}
	if GetAction(input, cfg.ActionVolume).JustPressed {
		settings.SFXVolume = nextVolumeStep(settings.SFXVolume)
		SetSFXVolume(e, settings.SFXVolume)
		PlaySFX(e, cfg.SoundPet)
		changed = true
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		debug := GetOrCreateDebug(e)
		debug.Visible = !debug.Visible
		settings.DebugOverlay = debug.Visible
		changed = true
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		toggleFullscreen(settings)
		changed = true
	}
	if GetAction(input, cfg.ActionResolution).JustPressed {
		cycleResolution(settings, 1)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}

	if GetAction(input, cfg.ActionQuit).JustPressed {
		os.Exit(0)
	}
}

// nextVolumeStep moves to the next volume step, wrapping to silence after
// the loudest one
func nextVolumeStep(current float64) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	if len(steps) == 0 {
		return current
	}
	return steps[(findClosestStepIndex(current, steps)+1)%len(steps)]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0 // Start with a large difference
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// toggleFullscreen toggles fullscreen mode
func toggleFullscreen(s *components.SettingsData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// cycleResolution cycles through available window sizes
func cycleResolution(s *components.SettingsData, direction int) {
	numResolutions := len(cfg.SettingsMenu.Resolutions)
	if numResolutions == 0 {
		return
	}
	s.ResolutionIndex = (s.ResolutionIndex + direction + numResolutions) % numResolutions

	// Window size only applies outside fullscreen
	if s.Fullscreen {
		return
	}
	res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}
