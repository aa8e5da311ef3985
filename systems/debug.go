package systems

import (
	"fmt"
	"sort"

	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/fonts"
	"github.com/automoto/seasonscape/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const (
	debugMargin     = 10
	debugLineHeight = 16
)

var loopQuery = donburi.NewQuery(filter.Contains(components.Loop))

// GetOrCreateDebug returns the singleton Debug component, creating if needed.
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{
			Visible: cfg.Debug.Overlay,
			Seed:    cfg.Debug.Seed,
		})
	}
	return components.Debug.Get(entry)
}

// DebugLines returns the overlay text: timing, loop populations and the
// registration counts that reveal listener leaks.
func DebugLines(e *ecs.ECS) []string {
	host := GetOrCreateHost(e)
	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("theme %v  switches %d", CurrentTheme(e), GetOrCreateTheme(e).Changes),
		fmt.Sprintf("surface %dx%d  window %s", host.Width, host.Height, windowLabel(GetOrCreateSettings(e))),
		fmt.Sprintf("input %v", getOrCreateInput(e).LastInputMethod),
	}
	lines = append(lines, loopLines(e)...)

	if entry, ok := tags.Scenery.First(e.World); ok {
		s := components.Scenery.Get(entry)
		lines = append(lines, fmt.Sprintf("trees %d  stars %d  orbs %d",
			len(s.State.Trees), len(s.State.Stars), len(s.State.Orbs)))
	}
	if entry, ok := tags.ParticleField.First(e.World); ok {
		f := components.ParticleField.Get(entry)
		lines = append(lines, fmt.Sprintf("particles %d", len(f.State.Particles)))
	}
	if entry, ok := tags.Rig.First(e.World); ok {
		m := components.Rig.Get(entry).Motion
		ex, ey := m.EyeTarget()
		lines = append(lines, fmt.Sprintf("petting %v  squash %.0f  eyes %.1f,%.1f", m.Petting(), m.Target().Squash, ex, ey))
	}

	lines = append(lines, fmt.Sprintf("listeners %d  frames %d", host.ListenerCount(), host.Frames.Len()))
	for k := components.EventKind(0); k < components.EventKindCount; k++ {
		lines = append(lines, fmt.Sprintf("  %v %d", k, host.Listeners[k].Len()))
	}
	if seed := GetOrCreateDebug(e).Seed; seed != 0 {
		lines = append(lines, fmt.Sprintf("seed %d", seed))
	}
	return lines
}

// loopLines lists every running loop with its theme and frame, by name.
func loopLines(e *ecs.ECS) []string {
	var loops []*components.LoopData
	loopQuery.Each(e.World, func(entry *donburi.Entry) {
		loops = append(loops, components.Loop.Get(entry))
	})
	sort.Slice(loops, func(i, j int) bool { return loops[i].Name < loops[j].Name })

	lines := make([]string, 0, len(loops))
	for _, l := range loops {
		lines = append(lines, fmt.Sprintf("loop %s %v frame %d", l.Name, l.Theme, l.Frame))
	}
	return lines
}

func windowLabel(s *components.SettingsData) string {
	if s.Fullscreen {
		return "fullscreen"
	}
	if s.ResolutionIndex < 0 || s.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		return "custom"
	}
	return cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label
}

// DrawDebug renders the overlay text and outlines every hit-test object.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).Visible {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		c := cfg.UI.DebugRectColor
		for _, obj := range space.Objects() {
			x, y := obj.X, obj.Y
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	if !fonts.Loaded(fonts.Debug) {
		return
	}
	face := fonts.Debug.Get()
	for i, line := range DebugLines(ecs) {
		text.Draw(screen, line, face, debugMargin, debugMargin+(i+1)*debugLineHeight, cfg.UI.DebugColor)
	}
}
