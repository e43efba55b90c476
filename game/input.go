package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ember/field"
)

// handleInput processes keyboard, mouse, and touch input for one frame.
func (g *Game) handleInput() {
	g.handleResize()
	g.handlePointer()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyS) {
		g.exportSnapshot()
	}

	g.handleCameraInput()
}

// handlePointer feeds raylib mouse and touch state into the tracker.
func (g *Game) handlePointer() {
	mouse := rl.GetMousePosition()
	overPanel := g.panel.Contains(mouse.X, mouse.Y)

	if rl.IsCursorOnScreen() && !overPanel {
		g.pointer.Move(0, field.PointerMouse, mouse.X, mouse.Y)
	} else {
		g.pointer.Leave()
	}

	// Touch: diff the active touch set against last frame's.
	count := rl.GetTouchPointCount()
	seen := make(map[int32]bool, count)
	for i := int32(0); i < count; i++ {
		id := rl.GetTouchPointId(i)
		pos := rl.GetTouchPosition(i)
		seen[id] = true
		if g.touches[id] {
			g.pointer.Move(id, field.PointerTouch, pos.X, pos.Y)
		} else {
			g.pointer.Down(id, field.PointerTouch, pos.X, pos.Y)
		}
	}
	for id := range g.touches {
		if !seen[id] {
			g.pointer.Up(id)
		}
	}
	g.touches = seen
}

// handleResize propagates window resizes to the camera, renderers, and the
// simulation bounds.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.width && h == g.height {
		return
	}
	g.width = w
	g.height = h

	g.camera.Resize(w, h)
	g.camera.SetFieldBounds(w/2, h/2)
	g.background.Resize(int32(w), int32(h))
	g.pointer.SetTransform(g.camera.ScreenToWorld)

	// Boundary half-extents live inside the integrator, so a resize rebuilds
	// the field at the new size.
	g.integrator.Stop()
	g.integrator = field.NewIntegrator(g.cfg, g.rng, g.pointer, w/2, h/2, g.seedPoints)
}

// handleCameraInput processes pan/zoom controls.
func (g *Game) handleCameraInput() {
	panSpeed := float32(8.0) / g.camera.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, -panSpeed)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
