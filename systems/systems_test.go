package systems

import (
	"strings"
	"testing"

	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func newTestECS(t *testing.T, width, height int) *ecs.ECS {
	t.Helper()
	SetSeed(1)
	e := ecs.NewECS(donburi.NewWorld())
	ResizeSurface(e, width, height)
	return e
}

func registrations(e *ecs.ECS) (listeners, frames int) {
	host := GetOrCreateHost(e)
	return host.ListenerCount(), host.Frames.Len()
}

func rigEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Rig.First(e.World)
	if !ok {
		t.Fatal("rig loop not running")
	}
	return entry
}

func TestStartAllRegistersEveryLoop(t *testing.T) {
	e := newTestECS(t, 1280, 720)
	StartAll(e)

	// scenery: resize; particles: resize, move; rig: resize, move, down, up
	listeners, frames := registrations(e)
	if listeners != 7 {
		t.Errorf("listeners = %d, want 7", listeners)
	}
	if frames != 3 {
		t.Errorf("frames = %d, want 3", frames)
	}
}

func TestStartStopDoesNotLeak(t *testing.T) {
	e := newTestECS(t, 1280, 720)

	for i := 0; i < 50; i++ {
		StartAll(e)
		RunFrames(e)
		StopAll(e)
	}

	listeners, frames := registrations(e)
	if listeners != 0 || frames != 0 {
		t.Errorf("after 50 cycles: listeners = %d, frames = %d, want 0, 0", listeners, frames)
	}
	if n := len(GetOrCreateSpace(e).Objects()); n != 0 {
		t.Errorf("space objects = %d, want 0", n)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	e := newTestECS(t, 800, 600)
	StopAll(e)
	StartAll(e)
	StopAll(e)
	StopAll(e)

	listeners, frames := registrations(e)
	if listeners != 0 || frames != 0 {
		t.Errorf("listeners = %d, frames = %d, want 0, 0", listeners, frames)
	}
}

func TestStartTwiceKeepsOneLoop(t *testing.T) {
	e := newTestECS(t, 800, 600)
	StartAll(e)
	before, _ := registrations(e)
	StartAll(e)
	after, frames := registrations(e)

	if after != before {
		t.Errorf("listeners = %d after second start, want %d", after, before)
	}
	if frames != 3 {
		t.Errorf("frames = %d, want 3", frames)
	}
}

func TestZeroSizeSurfaceRegistersNothing(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"no surface", 0, 0},
		{"zero width", 0, 600},
		{"zero height", 800, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t, tt.width, tt.height)
			StartAll(e)
			listeners, frames := registrations(e)
			if listeners != 0 || frames != 0 {
				t.Errorf("listeners = %d, frames = %d, want 0, 0", listeners, frames)
			}
			if _, ok := tags.Scenery.First(e.World); ok {
				t.Errorf("scenery entity created without a surface")
			}
		})
	}
}

func TestEnsureRunningWaitsForSurface(t *testing.T) {
	e := newTestECS(t, 0, 0)
	EnsureRunning(e)
	if _, frames := registrations(e); frames != 0 {
		t.Fatalf("frames = %d before a surface exists, want 0", frames)
	}

	ResizeSurface(e, 640, 480)
	EnsureRunning(e)
	if _, frames := registrations(e); frames != 3 {
		t.Errorf("frames = %d once the surface exists, want 3", frames)
	}
}

func TestFrameCallbackKeepsOneHandle(t *testing.T) {
	e := newTestECS(t, 800, 600)
	StartAll(e)

	for i := 0; i < 10; i++ {
		RunFrames(e)
	}
	if _, frames := registrations(e); frames != 3 {
		t.Errorf("frames = %d after 10 ticks, want 3", frames)
	}
	entry := rigEntry(t, e)
	if got := components.Loop.Get(entry).Frame; got != 10 {
		t.Errorf("rig frame = %d, want 10", got)
	}
}

func TestSetThemeSameIsNoop(t *testing.T) {
	e := newTestECS(t, 800, 600)
	StartAll(e)
	before := rigEntry(t, e)

	if SetTheme(e, CurrentTheme(e)) {
		t.Errorf("SetTheme(current) = true, want false")
	}
	if after := rigEntry(t, e); after.Entity() != before.Entity() {
		t.Errorf("rig restarted on a no-op theme switch")
	}
	if n := GetOrCreateTheme(e).Changes; n != 0 {
		t.Errorf("Changes = %d, want 0", n)
	}
}

func TestSetThemeRestartsLoops(t *testing.T) {
	e := newTestECS(t, 800, 600)
	StartAll(e)
	listenersBefore, _ := registrations(e)

	var got []components.ThemeChangedEvent
	components.ThemeChanged.Subscribe(e.World, func(w donburi.World, ev components.ThemeChangedEvent) {
		got = append(got, ev)
	})

	if !SetTheme(e, cfg.Spring) {
		t.Fatalf("SetTheme(Spring) = false, want true")
	}
	if CurrentTheme(e) != cfg.Spring {
		t.Errorf("CurrentTheme = %v, want spring", CurrentTheme(e))
	}

	listeners, frames := registrations(e)
	if listeners != listenersBefore || frames != 3 {
		t.Errorf("listeners = %d, frames = %d, want %d, 3", listeners, frames, listenersBefore)
	}

	entry, ok := tags.ParticleField.First(e.World)
	if !ok {
		t.Fatal("particle loop not running")
	}
	if n := len(components.ParticleField.Get(entry).State.Particles); n != 80 {
		t.Errorf("spring particles = %d, want 80", n)
	}
	if theme := components.Rig.Get(rigEntry(t, e)).Motion.Theme(); theme != cfg.Spring {
		t.Errorf("rig theme = %v, want spring", theme)
	}

	UpdateEvents(e)
	if len(got) != 1 || got[0].From != cfg.Winter || got[0].To != cfg.Spring {
		t.Errorf("events = %+v, want one winter -> spring", got)
	}
}

func TestToggleThemeRoundTrip(t *testing.T) {
	e := newTestECS(t, 800, 600)
	StartAll(e)

	ToggleTheme(e)
	ToggleTheme(e)

	if CurrentTheme(e) != cfg.Winter {
		t.Errorf("CurrentTheme = %v, want winter", CurrentTheme(e))
	}
	if n := GetOrCreateTheme(e).Changes; n != 2 {
		t.Errorf("Changes = %d, want 2", n)
	}
	entry, _ := tags.ParticleField.First(e.World)
	if n := len(components.ParticleField.Get(entry).State.Particles); n != 150 {
		t.Errorf("winter particles = %d, want 150", n)
	}
}

func TestPauseSkipsFrames(t *testing.T) {
	e := newTestECS(t, 800, 600)
	StartAll(e)
	GetOrCreatePause(e).IsPaused = true

	frames := WithPauseCheck(UpdateFrames)
	frames(e)
	frames(e)

	if got := components.Loop.Get(rigEntry(t, e)).Frame; got != 0 {
		t.Errorf("rig frame = %d while paused, want 0", got)
	}

	GetOrCreatePause(e).IsPaused = false
	frames(e)
	if got := components.Loop.Get(rigEntry(t, e)).Frame; got != 1 {
		t.Errorf("rig frame = %d after resume, want 1", got)
	}
}

func TestResizeReachesRunningLoops(t *testing.T) {
	e := newTestECS(t, 800, 600)
	StartAll(e)

	ResizeSurface(e, 1600, 900)

	entry, _ := tags.Scenery.First(e.World)
	s := components.Scenery.Get(entry)
	if s.State.Layout.Width != 1600 || s.State.Layout.Height != 900 {
		t.Errorf("scenery size = %vx%v, want 1600x900", s.State.Layout.Width, s.State.Layout.Height)
	}
	obj := components.Object.Get(rigEntry(t, e))
	if obj.X+obj.W > 1600 || obj.Y+obj.H > 900 {
		t.Errorf("rig rect %v,%v %vx%v outside the surface", obj.X, obj.Y, obj.W, obj.H)
	}
}

func TestApplyPointerDispatch(t *testing.T) {
	e := newTestECS(t, 800, 600)
	host := GetOrCreateHost(e)

	var kinds []components.EventKind
	for k := components.EventKind(0); k < components.EventKindCount; k++ {
		host.Listen(k, func(ev components.Event) {
			kinds = append(kinds, ev.Kind)
		})
	}

	ApplyPointer(e, 10, 10, false) // first sample moves
	ApplyPointer(e, 10, 10, false) // unchanged
	ApplyPointer(e, 10, 10, true)  // press
	ApplyPointer(e, 20, 10, true)  // drag
	ApplyPointer(e, 20, 10, false) // release

	want := []components.EventKind{
		components.EventPointerMove,
		components.EventPointerDown,
		components.EventPointerMove,
		components.EventPointerUp,
	}
	if len(kinds) != len(want) {
		t.Fatalf("events = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestPettingFollowsPointer(t *testing.T) {
	e := newTestECS(t, 1280, 720)
	StartAll(e)
	entry := rigEntry(t, e)
	obj := components.Object.Get(entry)
	cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2

	ApplyPointer(e, cx, cy, true)
	if !IsPetting(e) {
		t.Fatalf("IsPetting = false after press inside, want true")
	}
	if pending := GetOrCreateAudio(e).PendingSFX; len(pending) != 1 || pending[0] != cfg.SoundPet {
		t.Errorf("PendingSFX = %v, want [SoundPet]", pending)
	}

	ApplyPointer(e, 1, 1, true)
	if IsPetting(e) {
		t.Errorf("IsPetting = true after leaving the rig, want false")
	}

	ApplyPointer(e, cx, cy, false)
	ApplyPointer(e, cx, cy, true)
	ApplyPointer(e, cx, cy, false)
	if IsPetting(e) {
		t.Errorf("IsPetting = true after release, want false")
	}
}

func TestPressOutsideDoesNotPet(t *testing.T) {
	e := newTestECS(t, 1280, 720)
	StartAll(e)

	ApplyPointer(e, 1, 1, true)
	if IsPetting(e) {
		t.Errorf("IsPetting = true after press outside, want false")
	}
	if n := len(GetOrCreateAudio(e).PendingSFX); n != 0 {
		t.Errorf("PendingSFX has %d sounds, want 0", n)
	}
}

func TestNextVolumeStepWraps(t *testing.T) {
	steps := cfg.SettingsMenu.VolumeSteps
	last := steps[len(steps)-1]
	if got := nextVolumeStep(last); got != steps[0] {
		t.Errorf("nextVolumeStep(%v) = %v, want %v", last, got, steps[0])
	}
	if got := nextVolumeStep(steps[0]); got != steps[1] {
		t.Errorf("nextVolumeStep(%v) = %v, want %v", steps[0], got, steps[1])
	}
}

func TestApplySavedSettingsRejectsBadIndex(t *testing.T) {
	e := newTestECS(t, 800, 600)
	ApplySavedSettings(e, &SavedSettings{SFXVolume: 0.25, Muted: true, ResolutionIndex: 99})

	s := GetOrCreateSettings(e)
	if s.ResolutionIndex != cfg.SettingsMenu.DefaultResolutionIndex {
		t.Errorf("ResolutionIndex = %d, want default %d", s.ResolutionIndex, cfg.SettingsMenu.DefaultResolutionIndex)
	}
	a := GetOrCreateAudio(e)
	if !a.Muted || a.SFXVolume != 0.25 {
		t.Errorf("audio = muted %v volume %v, want muted 0.25", a.Muted, a.SFXVolume)
	}
}

func TestDebugLinesReportRegistrations(t *testing.T) {
	e := newTestECS(t, 800, 600)
	StartAll(e)

	lines := DebugLines(e)
	found := false
	for _, l := range lines {
		if l == "listeners 7  frames 3" {
			found = true
		}
	}
	if !found {
		t.Errorf("DebugLines = %q, want a line %q", lines, "listeners 7  frames 3")
	}
}

func TestRigNoiseSurvivesThemeAndResize(t *testing.T) {
	e := newTestECS(t, 800, 600)
	StartAll(e)
	field := GetOrCreateRigNoise(e).Field

	_, _, w, h := rigLayerSize(1)
	if b := field.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Errorf("noise size = %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}

	ToggleTheme(e)
	ToggleTheme(e)
	ResizeSurface(e, 1600, 900)
	ResizeSurface(e, 1024, 768)

	if got := GetOrCreateRigNoise(e).Field; got != field {
		t.Errorf("noise field rebuilt after theme round trip and resize")
	}
	if n := donburi.NewQuery(filter.Contains(components.RigNoise)).Count(e.World); n != 1 {
		t.Errorf("noise entities = %d, want 1", n)
	}
}

func TestRigContainsUsesSpace(t *testing.T) {
	e := newTestECS(t, 1280, 720)
	StartAll(e)
	entry := rigEntry(t, e)
	obj := components.Object.Get(entry)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", obj.X + obj.W/2, obj.Y + obj.H/2, true},
		{"top left inside", obj.X + 2, obj.Y + 2, true},
		{"left of box", obj.X - 10, obj.Y + obj.H/2, false},
		{"below box", obj.X + obj.W/2, obj.Y + obj.H + 10, false},
		{"off surface", -50, -50, false},
	}
	for _, tt := range tests {
		if got := rigContains(e, entry, tt.x, tt.y); got != tt.want {
			t.Errorf("%s: rigContains(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
	if n := len(GetOrCreateSpace(e).Objects()); n != 1 {
		t.Errorf("space objects = %d after hit tests, want 1", n)
	}
}

func TestDebugLinesNameLoopsAndDevices(t *testing.T) {
	e := newTestECS(t, 800, 600)
	StartAll(e)
	RunFrames(e)

	lines := strings.Join(DebugLines(e), "\n")
	for _, want := range []string{
		"loop particles winter frame 1",
		"loop rig winter frame 1",
		"loop scenery winter frame 1",
		"window " + cfg.SettingsMenu.Resolutions[cfg.SettingsMenu.DefaultResolutionIndex].Label,
		"input keyboard",
	} {
		if !strings.Contains(lines, want) {
			t.Errorf("DebugLines missing %q:\n%s", want, lines)
		}
	}
}
