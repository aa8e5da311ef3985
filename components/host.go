package components

import "github.com/yohamta/donburi"

// Handle identifies one registration in a Registry. The zero Handle is never
// issued, so it can mean "nothing registered".
type Handle int

type registryEntry[F any] struct {
	handle Handle
	fn     F
}

// Registry is an ordered set of callbacks. Removal is by the handle returned
// from Add, so removing one owner's callback never touches another's.
type Registry[F any] struct {
	next    Handle
	entries []registryEntry[F]
}

// Add registers fn and returns its handle.
func (r *Registry[F]) Add(fn F) Handle {
	r.next++
	r.entries = append(r.entries, registryEntry[F]{handle: r.next, fn: fn})
	return r.next
}

// Remove unregisters the callback behind h. It reports false if h was not registered.
func (r *Registry[F]) Remove(h Handle) bool {
	for i, e := range r.entries {
		if e.handle == h {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether h is registered.
func (r *Registry[F]) Has(h Handle) bool {
	for _, e := range r.entries {
		if e.handle == h {
			return true
		}
	}
	return false
}

// Len returns the number of registered callbacks.
func (r *Registry[F]) Len() int {
	return len(r.entries)
}

// Snapshot returns the callbacks in registration order. Callbacks may change
// the registry while the caller walks the snapshot.
func (r *Registry[F]) Snapshot() []F {
	out := make([]F, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.fn
	}
	return out
}

// Drain returns the callbacks and empties the registry.
func (r *Registry[F]) Drain() []F {
	out := r.Snapshot()
	r.entries = r.entries[:0]
	return out
}

// EventKind is a window or pointer event a loop can listen to
type EventKind int

const (
	EventResize EventKind = iota
	EventPointerMove
	EventPointerDown
	EventPointerUp
	EventKindCount // Must be last - used for array sizing
)

func (k EventKind) String() string {
	switch k {
	case EventResize:
		return "resize"
	case EventPointerMove:
		return "pointermove"
	case EventPointerDown:
		return "pointerdown"
	case EventPointerUp:
		return "pointerup"
	}
	return "unknown"
}

// Event carries the pointer position or the new surface size
type Event struct {
	Kind          EventKind
	X, Y          float64
	Width, Height int
}

// Listener handles one dispatched event
type Listener func(Event)

// FrameFunc is a one-shot frame callback. It must request itself again to
// keep running.
type FrameFunc func()

// Subscription records a listener registration so it can be removed later
type Subscription struct {
	Kind   EventKind
	Handle Handle
}

// HostData models the window the loops run in: its surface size, the
// pending frame callbacks and the event listeners (singleton component).
type HostData struct {
	Width, Height int

	Frames    Registry[FrameFunc]
	Listeners [EventKindCount]Registry[Listener]

	// Pointer sampling state, maintained by the input system
	PointerX, PointerY float64
	PointerSeen        bool
	PointerPressed     bool
}

// Listen registers fn for events of kind.
func (h *HostData) Listen(kind EventKind, fn Listener) Subscription {
	return Subscription{Kind: kind, Handle: h.Listeners[kind].Add(fn)}
}

// Unlisten removes a listener registered with Listen.
func (h *HostData) Unlisten(s Subscription) bool {
	if s.Kind < 0 || s.Kind >= EventKindCount {
		return false
	}
	return h.Listeners[s.Kind].Remove(s.Handle)
}

// ListenerCount returns the number of listeners across all event kinds.
func (h *HostData) ListenerCount() int {
	n := 0
	for i := range h.Listeners {
		n += h.Listeners[i].Len()
	}
	return n
}

var Host = donburi.NewComponentType[HostData]()
