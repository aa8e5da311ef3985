package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/fonts"
	"github.com/automoto/seasonscape/scenes"
	"github.com/automoto/seasonscape/systems"
	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(saved *systems.SavedSettings) *Game {
	loadFonts()

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewSeasonScene(saved),
	}
}

func loadFonts() {
	faces := []struct {
		name fonts.FontName
		ttf  []byte
		size float64
	}{
		{fonts.Title, fonts.Bold, config.UI.TitleFontSize},
		{fonts.Hint, fonts.Regular, config.UI.HintFontSize},
		{fonts.Debug, fonts.Regular, config.UI.DebugFontSize},
	}
	for _, f := range faces {
		if err := fonts.LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			log.Fatalf("Failed to load fonts: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window: the drawing surface is always the full outside
// size, so the scene re-lays itself out on resize.
func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, width, height)
	g.scene.Resize(width, height)
	return width, height
}

func main() {
	themeName := flag.String("theme", "", "start theme (winter or spring); defaults to the saved one")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "show the debug overlay and log rasteriser diagnostics")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "seed for scene generation (0 = from the clock)")
	flag.BoolVar(&config.Debug.Fullscreen, "fullscreen", false, "start in fullscreen")
	flag.Parse()

	config.Debug.Verbose = config.Debug.Overlay
	if config.Debug.Verbose {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if config.Debug.Seed != 0 {
		systems.SetSeed(config.Debug.Seed)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	// LoadSettings logs its own failures; start from defaults then
	saved, _ := systems.LoadSettings()

	// Start theme: the flag wins over the saved preference
	if saved != nil {
		if t, err := config.ParseTheme(saved.Theme); err == nil {
			config.Debug.StartTheme = t
		}
	}
	if *themeName != "" {
		t, err := config.ParseTheme(*themeName)
		if err != nil {
			log.Fatalf("Invalid -theme: %v", err)
		}
		config.Debug.StartTheme = t
	}

	windowPrefs := systems.WindowPreferences(saved)
	if config.Debug.Fullscreen {
		windowPrefs.Fullscreen = true
	}
	systems.ApplyWindowSettings(windowPrefs)

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal(err)
	}
}
