package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// CrossFadeData tracks the theme cross-fade: a snapshot of the last frame of
// the old theme drawn over the new scene with decreasing alpha.
type CrossFadeData struct {
	Snapshot  *ebiten.Image
	Remaining int // frames left
	Duration  int // total frames
	Requested bool
}

var CrossFade = donburi.NewComponentType[CrossFadeData]()

// DebugData tracks the debug overlay
type DebugData struct {
	Visible bool
	Seed    int64
}

var Debug = donburi.NewComponentType[DebugData]()
