package systems

import (
	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/shared/rig"
	"github.com/automoto/seasonscape/systems/factory"
	"github.com/automoto/seasonscape/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSpace returns the hit-test space, creating it if needed.
func GetOrCreateSpace(e *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		entry = factory.CreateSpace(e, cfg.C.SpaceWidth, cfg.C.SpaceHeight, cfg.C.SpaceCell, cfg.C.SpaceCell)
	}
	return components.Space.Get(entry)
}

// StartRig starts the character loop for theme. It returns nil and registers
// nothing when there is no surface or the loop already runs.
func StartRig(e *ecs.ECS, theme cfg.Theme) *donburi.Entry {
	host := GetOrCreateHost(e)
	if !SurfaceAvailable(host) {
		return nil
	}
	if _, ok := tags.Rig.First(e.World); ok {
		return nil
	}
	entry := factory.CreateRig(e, theme, host.Width, host.Height, GetOrCreateSpace(e))
	runLoop(e, entry, stepRig,
		loopListener{kind: components.EventResize, fn: resizeRig},
		loopListener{kind: components.EventPointerMove, fn: pointerMoveRig},
		loopListener{kind: components.EventPointerDown, fn: pointerDownRig},
		loopListener{kind: components.EventPointerUp, fn: pointerUpRig},
	)
	return entry
}

// StopRig tears the character loop down and takes its bounding rectangle out
// of the hit-test space.
func StopRig(e *ecs.ECS) {
	entry, ok := tags.Rig.First(e.World)
	if !ok {
		return
	}
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(entry).Object)
	}
	releaseRigImages(components.Rig.Get(entry))
	stopLoop(e, entry)
}

func releaseRigImages(r *components.RigData) {
	for _, img := range []*ebiten.Image{r.Layer, r.Noise} {
		if img != nil {
			img.Deallocate()
		}
	}
	r.Layer, r.Noise = nil, nil
}

func stepRig(e *ecs.ECS, entry *donburi.Entry) {
	components.Rig.Get(entry).Motion.Step(1 / float64(ebiten.TPS()))
}

func resizeRig(e *ecs.ECS, entry *donburi.Entry, ev components.Event) {
	factory.PlaceRig(entry, ev.Width, ev.Height)
}

// rigContains reports whether a surface point lies inside the rig's bounding
// rectangle, testing a one-pixel object against the hit-test space.
func rigContains(e *ecs.ECS, entry *donburi.Entry, x, y float64) bool {
	space := GetOrCreateSpace(e)
	pointObj := resolv.NewObject(x, y, 1, 1)
	pointObj.SetShape(resolv.NewRectangle(0, 0, 1, 1))
	space.Add(pointObj)
	defer space.Remove(pointObj)

	check := pointObj.Check(0, 0, tags.ResolvRig)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		if obj.Data == entry && pointObj.Shape.Intersection(0, 0, obj.Shape) != nil {
			return true
		}
	}
	return false
}

func pointerMoveRig(e *ecs.ECS, entry *donburi.Entry, ev components.Event) {
	r := components.Rig.Get(entry)
	r.Hovered = rigContains(e, entry, ev.X, ev.Y)
	if !r.Hovered {
		r.Motion.SetPetting(false)
	}
	p := rig.Placement{X: r.OriginX, Y: r.OriginY, Scale: r.Scale}
	if p.Scale <= 0 {
		return
	}
	cx, cy := p.Centre()
	r.Motion.LookAt((ev.X-cx)/p.Scale, (ev.Y-cy)/p.Scale)
}

func pointerDownRig(e *ecs.ECS, entry *donburi.Entry, ev components.Event) {
	if !rigContains(e, entry, ev.X, ev.Y) {
		return
	}
	if components.Rig.Get(entry).Motion.SetPetting(true) {
		PlaySFX(e, cfg.SoundPet)
	}
}

func pointerUpRig(e *ecs.ECS, entry *donburi.Entry, ev components.Event) {
	components.Rig.Get(entry).Motion.SetPetting(false)
}

// IsPetting reports whether the running rig is being petted.
func IsPetting(e *ecs.ECS) bool {
	entry, ok := tags.Rig.First(e.World)
	if !ok {
		return false
	}
	return components.Rig.Get(entry).Motion.Petting()
}
