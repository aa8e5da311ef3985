package components

import (
	"image"

	"github.com/automoto/seasonscape/shared/rig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// RigData is the character loop state. The bounding rectangle lives in the
// entity's Object component.
type RigData struct {
	Motion *rig.Motion

	// Top-left of the design box on the surface and its uniform scale
	OriginX, OriginY float64
	Scale            float64

	Hovered bool // pointer is inside the bounding rectangle

	Layer *ebiten.Image // offscreen target for the filtered body
	Noise *ebiten.Image // RigNoise resampled to the size of Layer
}

var Rig = donburi.NewComponentType[RigData]()

// RigNoiseData is the displacement field baked once per world at design
// scale. It outlives the rig loop, so theme switches and resizes only
// resample it.
type RigNoiseData struct {
	Field *image.NRGBA
	Image *ebiten.Image // Field uploaded on first draw
}

var RigNoise = donburi.NewComponentType[RigNoiseData]()
