package systems

import (
	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// activeTouch is the touch standing in for the mouse, if any
var (
	activeTouch   ebiten.TouchID
	touchTracking bool
)

// UpdateInput polls raw key and gamepad state into the Input component.
// Must run BEFORE any system reading actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// UpdatePointer samples the mouse, or the first active touch, and turns the
// change since the last tick into pointer events.
func UpdatePointer(e *ecs.ECS) {
	x, y, pressed := samplePointer()
	ApplyPointer(e, x, y, pressed)
}

func samplePointer() (x, y float64, pressed bool) {
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if !touchTracking && len(touchIDs) > 0 {
		activeTouch = touchIDs[0]
		touchTracking = true
	}
	if touchTracking {
		if !inpututil.IsTouchJustReleased(activeTouch) {
			tx, ty := ebiten.TouchPosition(activeTouch)
			return float64(tx), float64(ty), true
		}
		touchTracking = false
		tx, ty := inpututil.TouchPositionInPreviousTick(activeTouch)
		return float64(tx), float64(ty), false
	}

	cx, cy := ebiten.CursorPosition()
	return float64(cx), float64(cy), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// ApplyPointer records a pointer sample and dispatches pointermove when it
// moved, then pointerdown or pointerup when the button state changed.
func ApplyPointer(e *ecs.ECS, x, y float64, pressed bool) {
	host := GetOrCreateHost(e)
	if !host.PointerSeen || x != host.PointerX || y != host.PointerY {
		host.PointerX, host.PointerY = x, y
		host.PointerSeen = true
		Dispatch(e, components.Event{Kind: components.EventPointerMove, X: x, Y: y})
	}

	host = GetOrCreateHost(e)
	if pressed == host.PointerPressed {
		return
	}
	host.PointerPressed = pressed
	kind := components.EventPointerUp
	if pressed {
		kind = components.EventPointerDown
	}
	Dispatch(e, components.Event{Kind: kind, X: x, Y: y})
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
