package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the display preferences that survive restarts
type SettingsData struct {
	Fullscreen      bool
	ResolutionIndex int
	DebugOverlay    bool
	Muted           bool
	SFXVolume       float64
	Theme           string // last selected theme name
}

// Settings is the component type for display preferences
var Settings = donburi.NewComponentType[SettingsData]()
