package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/seasonscape/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// rng seeds the generator of every new loop
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// SetSeed makes loop generation reproducible.
func SetSeed(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

func newLoopRand() *rand.Rand {
	return rand.New(rand.NewSource(rng.Int63()))
}

// GetOrCreateHost returns the singleton Host component, creating if needed.
func GetOrCreateHost(e *ecs.ECS) *components.HostData {
	entry, ok := components.Host.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Host))
	}
	return components.Host.Get(entry)
}

// SurfaceAvailable reports whether the host has something to draw on.
func SurfaceAvailable(host *components.HostData) bool {
	return host.Width > 0 && host.Height > 0
}

// ResizeSurface records the surface size and tells the resize listeners when
// it changed. A collapsed surface is recorded but not dispatched.
func ResizeSurface(e *ecs.ECS, width, height int) {
	host := GetOrCreateHost(e)
	if host.Width == width && host.Height == height {
		return
	}
	host.Width, host.Height = width, height
	if !SurfaceAvailable(host) {
		return
	}
	Dispatch(e, components.Event{Kind: components.EventResize, Width: width, Height: height})
}

// Dispatch calls every listener of the event's kind synchronously, in
// registration order. Listeners may unregister while being dispatched.
func Dispatch(e *ecs.ECS, ev components.Event) {
	for _, fn := range GetOrCreateHost(e).Listeners[ev.Kind].Snapshot() {
		fn(ev)
	}
}

// RunFrames runs every pending frame callback once. Callbacks requested
// while running wait for the next tick.
func RunFrames(e *ecs.ECS) {
	for _, fn := range GetOrCreateHost(e).Frames.Drain() {
		fn()
	}
}

// loopListener is a listener owned by one loop entity
type loopListener struct {
	kind components.EventKind
	fn   func(e *ecs.ECS, entry *donburi.Entry, ev components.Event)
}

// runLoop registers the loop's listeners and its first frame callback. The
// callback steps the loop and requests itself again, so one pending handle
// per loop exists at any time.
func runLoop(e *ecs.ECS, entry *donburi.Entry, step func(e *ecs.ECS, entry *donburi.Entry), listeners ...loopListener) {
	host := GetOrCreateHost(e)
	loop := components.Loop.Get(entry)

	for _, l := range listeners {
		l := l
		sub := host.Listen(l.kind, func(ev components.Event) {
			if entry.Valid() {
				l.fn(e, entry, ev)
			}
		})
		loop.Subscriptions = append(loop.Subscriptions, sub)
	}

	var frame components.FrameFunc
	frame = func() {
		if !entry.Valid() {
			return
		}
		components.Loop.Get(entry).Frame++
		step(e, entry)
		if entry.Valid() {
			components.Loop.Get(entry).FrameHandle = GetOrCreateHost(e).Frames.Add(frame)
		}
	}
	loop.FrameHandle = host.Frames.Add(frame)
}

// stopLoop cancels the pending frame callback, removes exactly the listeners
// the loop registered and removes the entity.
func stopLoop(e *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	host := GetOrCreateHost(e)
	loop := components.Loop.Get(entry)

	host.Frames.Remove(loop.FrameHandle)
	for _, s := range loop.Subscriptions {
		host.Unlisten(s)
	}
	loop.FrameHandle = 0
	loop.Subscriptions = nil
	e.World.Remove(entry.Entity())
}
