package components

import (
	cfg "github.com/automoto/seasonscape/config"
	"github.com/yohamta/donburi"
)

// LoopData is the lifecycle record of one running visual loop: the theme it
// was started with, its frame counter, its pending frame callback and the
// listeners it registered.
type LoopData struct {
	Name          string
	Theme         cfg.Theme
	Frame         int
	FrameHandle   Handle
	Subscriptions []Subscription
}

var Loop = donburi.NewComponentType[LoopData]()
