package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/seasonscape/assets"
	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/systems"
	"github.com/automoto/seasonscape/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SeasonScene runs the seasonal scene: backdrop, particles and character
// under one theme, plus the theme buttons and overlays.
type SeasonScene struct {
	ecs      *ecs.ECS
	controls *ui.ControlsUI
	saved    *systems.SavedSettings
	once     sync.Once

	width, height int // latest outside size from Layout
}

// NewSeasonScene creates the scene. Saved preferences, if any, are applied
// when the scene configures itself on its first update.
func NewSeasonScene(saved *systems.SavedSettings) *SeasonScene {
	return &SeasonScene{saved: saved}
}

// Resize records the window's surface size. It is applied on the next update.
func (ss *SeasonScene) Resize(width, height int) {
	ss.width, ss.height = width, height
}

func (ss *SeasonScene) Update() {
	ss.once.Do(ss.configure)
	systems.ResizeSurface(ss.ecs, ss.width, ss.height)
	systems.EnsureRunning(ss.ecs)
	ss.ecs.Update()
}

func (ss *SeasonScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SeasonScene) configure() {
	// Preload assets to avoid a hitch on first use (important for WASM)
	systems.PreloadAllSFX()

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: scruffy filter disabled: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateControls)
	ecs.AddSystem(ss.updateControlsUI)

	// Loop callbacks freeze while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateFrames))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCrossFade))

	// Deliver theme change notifications last so every subscriber sees the
	// restarted loops
	ecs.AddSystem(systems.UpdateEvents)

	// Add renderers
	ecs.AddRenderer(cfg.LayerScenery, systems.DrawScenery)
	ecs.AddRenderer(cfg.LayerParticles, systems.DrawParticles)
	ecs.AddRenderer(cfg.LayerRig, systems.DrawRig)
	ecs.AddRenderer(cfg.LayerRig, systems.DrawCrossFade)
	ecs.AddRenderer(cfg.LayerUI, systems.DrawHUD)
	ecs.AddRenderer(cfg.LayerUI, ss.drawControlsUI)
	ecs.AddRenderer(cfg.LayerUI, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerUI, systems.DrawPause)

	ss.ecs = ecs

	// Singletons
	systems.GetOrCreateHost(ss.ecs)
	systems.GetOrCreateSpace(ss.ecs)
	systems.GetOrCreateAudio(ss.ecs)
	systems.GetOrCreateSettings(ss.ecs)
	systems.GetOrCreateDebug(ss.ecs)
	systems.GetOrCreateTheme(ss.ecs)
	systems.EnableCrossFade(ss.ecs)
	systems.GetOrCreateRigNoise(ss.ecs)
	systems.ApplySavedSettings(ss.ecs, ss.saved)

	ss.controls = ui.NewControlsUI(systems.CurrentTheme(ss.ecs), func(theme cfg.Theme) {
		systems.SetTheme(ss.ecs, theme)
	})

	components.ThemeChanged.Subscribe(ss.ecs.World, systems.ChimeOnThemeChange)
	components.ThemeChanged.Subscribe(ss.ecs.World, systems.SaveOnThemeChange)
	components.ThemeChanged.Subscribe(ss.ecs.World, ss.onThemeChanged)
}

func (ss *SeasonScene) updateControlsUI(e *ecs.ECS) {
	ss.controls.Update()
}

func (ss *SeasonScene) drawControlsUI(e *ecs.ECS, screen *ebiten.Image) {
	ss.controls.UI.Draw(screen)
}

func (ss *SeasonScene) onThemeChanged(w donburi.World, ev components.ThemeChangedEvent) {
	ss.controls.Refresh(ev.To)
}
