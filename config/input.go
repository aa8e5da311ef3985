package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical control action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionWinter
	ActionSpring
	ActionToggleTheme
	ActionPause
	ActionMute
	ActionDebug
	ActionFullscreen
	ActionResolution
	ActionVolume
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionWinter: {
				Keys: []ebiten.Key{ebiten.Key1, ebiten.KeyNumpad1},
				// D-pad Left
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionSpring: {
				Keys: []ebiten.Key{ebiten.Key2, ebiten.KeyNumpad2},
				// D-pad Right
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionToggleTheme: {
				Keys: []ebiten.Key{ebiten.KeyTab},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
			ActionResolution: {
				Keys: []ebiten.Key{ebiten.KeyF10},
			},
			ActionVolume: {
				Keys: []ebiten.Key{ebiten.KeyV},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
