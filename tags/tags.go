package tags

import "github.com/yohamta/donburi"

var (
	Scenery       = donburi.NewTag().SetName("Scenery")
	ParticleField = donburi.NewTag().SetName("ParticleField")
	Rig           = donburi.NewTag().SetName("Rig")
)

// Resolv tags for hit testing
const (
	ResolvRig = "rig"
)
