package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the display preferences stored on disk. The
// scene itself is never saved.
type SavedSettings struct {
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
	DebugOverlay    bool    `json:"debugOverlay"`
	Theme           string  `json:"theme"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "seasonscape",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error
// when nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the preferences held by the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		SFXVolume:       s.SFXVolume,
		Muted:           s.Muted,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		DebugOverlay:    s.DebugOverlay,
		Theme:           s.Theme,
	})
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// with defaults if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
			SFXVolume:       cfg.Audio.DefaultSFXVol,
			Theme:           cfg.Debug.StartTheme.String(),
		})
	}
	return components.Settings.Get(entry)
}

// ApplySavedSettings copies loaded preferences into the Settings, Audio and
// Debug state. Window changes are left to ApplyWindowSettings.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s := GetOrCreateSettings(e)
	s.SFXVolume = saved.SFXVolume
	s.Muted = saved.Muted
	s.Fullscreen = saved.Fullscreen || cfg.Debug.Fullscreen
	s.DebugOverlay = saved.DebugOverlay
	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		s.ResolutionIndex = saved.ResolutionIndex
	}
	// The start theme already resolved the saved one against -theme
	s.Theme = cfg.Debug.StartTheme.String()

	SetSFXVolume(e, s.SFXVolume)
	SetMuted(e, s.Muted)
	GetOrCreateDebug(e).Visible = s.DebugOverlay || cfg.Debug.Overlay
}

// WindowPreferences returns the window part of saved, or the defaults when
// nothing was saved.
func WindowPreferences(saved *SavedSettings) *components.SettingsData {
	s := &components.SettingsData{ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex}
	if saved == nil {
		return s
	}
	s.Fullscreen = saved.Fullscreen
	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		s.ResolutionIndex = saved.ResolutionIndex
	}
	return s
}

// ApplyWindowSettings applies fullscreen and the window size preset
func ApplyWindowSettings(s *components.SettingsData) {
	ebiten.SetFullscreen(s.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !s.Fullscreen && s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// SaveOnThemeChange records the new theme as the preferred one.
func SaveOnThemeChange(w donburi.World, ev components.ThemeChangedEvent) {
	entry, ok := components.Settings.First(w)
	if !ok {
		return
	}
	s := components.Settings.Get(entry)
	s.Theme = ev.To.String()
	SaveCurrentSettings(s)
}
