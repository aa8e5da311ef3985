package factory

import (
	"math/rand"

	"github.com/automoto/seasonscape/archetypes"
	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/shared/particles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateParticleField spawns a particle loop entity seeded with the theme's
// particle batch.
func CreateParticleField(ecs *ecs.ECS, theme cfg.Theme, width, height int, rng *rand.Rand) *donburi.Entry {
	entry := archetypes.ParticleField.Spawn(ecs)
	components.Loop.SetValue(entry, components.LoopData{
		Name:  "particles",
		Theme: theme,
	})
	components.ParticleField.SetValue(entry, components.ParticleFieldData{
		State: particles.New(particles.ParamsFor(theme), float64(width), float64(height), rng),
		Rng:   rng,
	})
	return entry
}
