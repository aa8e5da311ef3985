package systems

import (
	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const pauseLabel = "Paused"

// UpdatePause toggles pause. This system should run AFTER UpdateInput.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
}

// UpdateFrames runs the pending frame callback of every loop. Paused loops
// keep their registrations but do not advance.
func UpdateFrames(ecs *ecs.ECS) {
	RunFrames(ecs)
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.UI.PauseOverlay,
		false,
	)

	if !fonts.Loaded(fonts.Title) {
		return
	}
	face := fonts.Title.Get()
	bounds := text.BoundString(face, pauseLabel)
	x := int((width - float64(bounds.Dx())) / 2)
	y := int(height/2) - bounds.Min.Y/2
	text.Draw(screen, pauseLabel, face, x, y, cfg.UI.ButtonTextActive)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Create(components.Pause)
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
