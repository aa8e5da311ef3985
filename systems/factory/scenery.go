package factory

import (
	"math/rand"

	"github.com/automoto/seasonscape/archetypes"
	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/shared/scenery"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScenery spawns a backdrop loop entity with freshly generated trees,
// stars and orbs for a surface.
func CreateScenery(ecs *ecs.ECS, theme cfg.Theme, width, height int, rng *rand.Rand) *donburi.Entry {
	entry := archetypes.Scenery.Spawn(ecs)
	components.Loop.SetValue(entry, components.LoopData{
		Name:  "scenery",
		Theme: theme,
	})
	components.Scenery.SetValue(entry, components.SceneryData{
		State: scenery.New(&cfg.Scene, float64(width), float64(height), rng),
		Rng:   rng,
	})
	return entry
}
