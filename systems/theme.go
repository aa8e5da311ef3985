package systems

import (
	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// GetOrCreateTheme returns the singleton Theme component, creating it with
// the configured start theme if needed.
func GetOrCreateTheme(e *ecs.ECS) *components.ThemeData {
	entry, ok := components.Theme.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Theme))
		components.Theme.SetValue(entry, components.ThemeData{Current: cfg.Debug.StartTheme})
	}
	return components.Theme.Get(entry)
}

// CurrentTheme returns the active theme.
func CurrentTheme(e *ecs.ECS) cfg.Theme {
	return GetOrCreateTheme(e).Current
}

// StartAll starts the backdrop, particle and character loops with the
// active theme, in draw order.
func StartAll(e *ecs.ECS) {
	theme := CurrentTheme(e)
	StartScenery(e, theme)
	StartParticles(e, theme)
	StartRig(e, theme)
}

// StopAll stops every running loop.
func StopAll(e *ecs.ECS) {
	StopScenery(e)
	StopParticles(e)
	StopRig(e)
}

// SetTheme switches to theme and reports whether anything changed. Selecting
// the active theme is a no-op. Otherwise every loop is stopped, the theme is
// written and every loop restarts with fresh state.
func SetTheme(e *ecs.ECS, theme cfg.Theme) bool {
	t := GetOrCreateTheme(e)
	if t.Current == theme {
		return false
	}
	from := t.Current

	captureCrossFade(e)
	StopAll(e)
	t.Current = theme
	t.Changes++
	StartAll(e)

	components.ThemeChanged.Publish(e.World, components.ThemeChangedEvent{From: from, To: theme})
	return true
}

// ToggleTheme switches to the other theme.
func ToggleTheme(e *ecs.ECS) {
	next := cfg.Winter
	if CurrentTheme(e) == cfg.Winter {
		next = cfg.Spring
	}
	SetTheme(e, next)
}

// UpdateEvents delivers the events published since the last tick.
func UpdateEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

// EnsureRunning starts whichever loops are missing once a surface exists.
// Loops skipped while the window had no size start here on the first tick
// with one.
func EnsureRunning(e *ecs.ECS) {
	if !SurfaceAvailable(GetOrCreateHost(e)) {
		return
	}
	StartAll(e)
}
