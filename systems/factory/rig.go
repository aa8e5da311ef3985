package factory

import (
	"github.com/automoto/seasonscape/archetypes"
	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/shared/rig"
	"github.com/automoto/seasonscape/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRig spawns the character loop entity and registers its bounding
// rectangle in space.
func CreateRig(ecs *ecs.ECS, theme cfg.Theme, width, height int, space *resolv.Space) *donburi.Entry {
	entry := archetypes.Rig.Spawn(ecs)
	components.Loop.SetValue(entry, components.LoopData{
		Name:  "rig",
		Theme: theme,
	})

	p := rig.Place(float64(width), float64(height))
	x, y, w, h := p.Bounds()
	obj := resolv.NewObject(x, y, w, h, tags.ResolvRig)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	if space != nil {
		space.Add(obj)
	}
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	components.Rig.SetValue(entry, components.RigData{
		Motion:  rig.NewMotion(theme, ebiten.TPS()),
		OriginX: p.X,
		OriginY: p.Y,
		Scale:   p.Scale,
	})
	return entry
}

// PlaceRig moves the rig and its bounding rectangle for a new surface size.
func PlaceRig(entry *donburi.Entry, width, height int) {
	p := rig.Place(float64(width), float64(height))
	r := components.Rig.Get(entry)
	r.OriginX, r.OriginY, r.Scale = p.X, p.Y, p.Scale

	obj := components.Object.Get(entry)
	x, y, w, h := p.Bounds()
	obj.X, obj.Y, obj.W, obj.H = x, y, w, h
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Update()
}
