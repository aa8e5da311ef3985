package systems

import (
	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// EnableCrossFade creates the cross-fade state. Without it theme switches
// cut straight to the new scene.
func EnableCrossFade(e *ecs.ECS) *components.CrossFadeData {
	entry, ok := components.CrossFade.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.CrossFade))
		components.CrossFade.SetValue(entry, components.CrossFadeData{Duration: cfg.Transition.Frames})
	}
	return components.CrossFade.Get(entry)
}

// captureCrossFade renders the running loops into the snapshot before they
// are torn down. It does nothing when cross-fading is disabled or there is
// no surface.
func captureCrossFade(e *ecs.ECS) {
	entry, ok := components.CrossFade.First(e.World)
	if !ok {
		return
	}
	fade := components.CrossFade.Get(entry)
	host := GetOrCreateHost(e)
	if fade.Duration <= 0 || !SurfaceAvailable(host) {
		return
	}

	if fade.Snapshot == nil || fade.Snapshot.Bounds().Dx() != host.Width || fade.Snapshot.Bounds().Dy() != host.Height {
		if fade.Snapshot != nil {
			fade.Snapshot.Deallocate()
		}
		fade.Snapshot = ebiten.NewImage(host.Width, host.Height)
	}
	fade.Snapshot.Clear()
	DrawScenery(e, fade.Snapshot)
	DrawParticles(e, fade.Snapshot)
	DrawRig(e, fade.Snapshot)

	fade.Requested = true
	fade.Remaining = fade.Duration
}

// UpdateCrossFade counts the fade down one frame.
func UpdateCrossFade(e *ecs.ECS) {
	entry, ok := components.CrossFade.First(e.World)
	if !ok {
		return
	}
	fade := components.CrossFade.Get(entry)
	if fade.Remaining > 0 {
		fade.Remaining--
	}
	if fade.Remaining == 0 {
		fade.Requested = false
	}
}

// DrawCrossFade draws the old theme over the new one with linearly
// decreasing alpha.
func DrawCrossFade(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.CrossFade.First(e.World)
	if !ok {
		return
	}
	fade := components.CrossFade.Get(entry)
	if !fade.Requested || fade.Snapshot == nil || fade.Duration <= 0 {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.ColorScale.ScaleAlpha(float32(fade.Remaining) / float32(fade.Duration))
	drawOp.Blend = ebiten.Blend{}
	screen.DrawImage(fade.Snapshot, drawOp)
}
