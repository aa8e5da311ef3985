package components

import (
	"math/rand"

	"github.com/automoto/seasonscape/shared/scenery"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SceneryData is the backdrop loop state. The baked layers are rasterised
// once per surface size and theme; Baked is cleared when they go stale.
type SceneryData struct {
	State scenery.State
	Rng   *rand.Rand

	Sky    *ebiten.Image // sky gradient
	Ground *ebiten.Image // road, trees and ground cover
	Baked  bool

	Celestial *ebiten.Image // offscreen target for the crescent cut-out
}

var Scenery = donburi.NewComponentType[SceneryData]()
