package components

import (
	"math/rand"

	"github.com/automoto/seasonscape/shared/particles"
	"github.com/yohamta/donburi"
)

// ParticleFieldData is the particle loop state
type ParticleFieldData struct {
	State particles.State
	Rng   *rand.Rand
}

var ParticleField = donburi.NewComponentType[ParticleFieldData]()
