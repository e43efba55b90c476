package field

import "sync"

// PointerKind distinguishes mouse-type from touch-type pointers. A mouse is
// active from its first move inside the surface until it leaves; a touch is
// active only between down and up/cancel.
type PointerKind uint8

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// PointerSample is a single-tick view of the interaction point in field
// coordinates (origin-centered, y up).
type PointerSample struct {
	X, Y   float32
	Active bool
}

// Transform maps host surface coordinates to field coordinates.
type Transform func(sx, sy float32) (x, y float32)

// PointerTracker converts host pointer events into the interaction point the
// force field reads. Event callbacks and Sample may run on different
// goroutines, so all state sits behind a mutex and readers always get a
// consistent snapshot.
//
// Simultaneous touch and mouse are supported: the reported point is always
// the most recent move, and the field is active while any touch is down or
// the mouse is inside the surface.
type PointerTracker struct {
	mu          sync.Mutex
	x, y        float32
	mouseInside bool
	touches     map[int32]struct{}
	transform   Transform
}

// NewPointerTracker creates a tracker for a host surface of the given size.
// The default transform centers the origin and flips the vertical axis
// relative to screen space.
func NewPointerTracker(width, height float32) *PointerTracker {
	p := &PointerTracker{touches: make(map[int32]struct{})}
	p.Resize(width, height)
	return p
}

// Resize installs the default transform for a new surface size.
func (p *PointerTracker) Resize(width, height float32) {
	p.SetTransform(func(sx, sy float32) (float32, float32) {
		return sx - width/2, height/2 - sy
	})
}

// SetTransform overrides the screen-to-field mapping, e.g. to route through
// a camera.
func (p *PointerTracker) SetTransform(t Transform) {
	p.mu.Lock()
	p.transform = t
	p.mu.Unlock()
}

// Down records a pressed pointer. Touch pointers become active here.
func (p *PointerTracker) Down(id int32, kind PointerKind, sx, sy float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if kind == PointerTouch {
		p.touches[id] = struct{}{}
	} else {
		p.mouseInside = true
	}
	p.x, p.y = p.transform(sx, sy)
}

// Move updates the interaction point. A mouse pointer becomes active on its
// first move inside the surface.
func (p *PointerTracker) Move(id int32, kind PointerKind, sx, sy float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if kind == PointerMouse {
		p.mouseInside = true
	}
	p.x, p.y = p.transform(sx, sy)
}

// Up releases a touch pointer.
func (p *PointerTracker) Up(id int32) {
	p.mu.Lock()
	delete(p.touches, id)
	p.mu.Unlock()
}

// Cancel is the host aborting a touch sequence; treated like Up.
func (p *PointerTracker) Cancel(id int32) {
	p.Up(id)
}

// Leave records the mouse leaving the surface.
func (p *PointerTracker) Leave() {
	p.mu.Lock()
	p.mouseInside = false
	p.mu.Unlock()
}

// Sample returns the current interaction state. Active while any touch is
// down or the mouse is inside the surface.
func (p *PointerTracker) Sample() PointerSample {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PointerSample{
		X:      p.x,
		Y:      p.y,
		Active: p.mouseInside || len(p.touches) > 0,
	}
}
