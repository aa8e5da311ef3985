package archetypes

import (
	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Scenery = newArchetype(
		cfg.LayerScenery,
		tags.Scenery,
		components.Loop,
		components.Scenery,
	)
	ParticleField = newArchetype(
		cfg.LayerParticles,
		tags.ParticleField,
		components.Loop,
		components.ParticleField,
	)
	Rig = newArchetype(
		cfg.LayerRig,
		tags.Rig,
		components.Loop,
		components.Rig,
		components.Object,
	)
	Space = newArchetype(
		cfg.LayerRig,
		components.Space,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(layer ecs.LayerID, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      layer,
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(a.components, cs...)...,
	))
	return e
}
