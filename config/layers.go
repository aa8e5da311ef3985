package config

import "github.com/yohamta/donburi/ecs"

// Draw layers, back to front
const (
	LayerScenery ecs.LayerID = iota
	LayerParticles
	LayerRig
	LayerUI
)
