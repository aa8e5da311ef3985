package components

import (
	cfg "github.com/automoto/seasonscape/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ThemeData holds the active theme (singleton component). Only the theme
// coordinator writes it.
type ThemeData struct {
	Current cfg.Theme
	Changes int // number of applied theme switches
}

var Theme = donburi.NewComponentType[ThemeData]()

// ThemeChangedEvent is published after the loops restarted with a new theme
type ThemeChangedEvent struct {
	From, To cfg.Theme
}

var ThemeChanged = events.NewEventType[ThemeChangedEvent]()
