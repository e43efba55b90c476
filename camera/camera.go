// Package camera provides a 2D viewport over the origin-centered field.
package camera

// Camera controls the viewport into the particle field. Field coordinates
// are origin-centered with y up; screen coordinates have y down. The field
// is bounded, so panning clamps instead of wrapping.
type Camera struct {
	// Position is the camera center in field coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Field half-extents (for pan clamping)
	HalfW, HalfH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the origin with 1:1 zoom.
func New(viewportW, viewportH, halfW, halfH float32) *Camera {
	return &Camera{
		X:         0,
		Y:         0,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		HalfW:     halfW,
		HalfH:     halfH,
		MinZoom:   0.5,
		MaxZoom:   8.0,
	}
}

// WorldToScreen converts field coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 - (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to field coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y - (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with given radius could be
// visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Pan moves the camera center, clamped to the field bounds.
func (c *Camera) Pan(dx, dy float32) {
	c.X = clampf(c.X+dx, -c.HalfW, c.HalfW)
	c.Y = clampf(c.Y+dy, -c.HalfH, c.HalfH)
}

// ZoomBy multiplies the zoom level, clamped to [MinZoom, MaxZoom].
func (c *Camera) ZoomBy(factor float32) {
	c.Zoom = clampf(c.Zoom*factor, c.MinZoom, c.MaxZoom)
}

// Reset recenters the camera on the origin at 1:1 zoom.
func (c *Camera) Reset() {
	c.X = 0
	c.Y = 0
	c.Zoom = 1.0
}

// Resize updates the viewport dimensions after a window resize.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// SetFieldBounds updates the field half-extents after a reinit.
func (c *Camera) SetFieldBounds(halfW, halfH float32) {
	c.HalfW = halfW
	c.HalfH = halfH
	c.X = clampf(c.X, -halfW, halfW)
	c.Y = clampf(c.Y, -halfH, halfH)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
