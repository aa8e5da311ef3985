package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. While paused no frame callback runs, but
// every loop keeps its registrations.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
