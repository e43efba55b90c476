package camera

import "testing"

func TestWorldToScreenCentered(t *testing.T) {
	c := New(1280, 720, 640, 360)

	// The origin maps to the viewport center.
	sx, sy := c.WorldToScreen(0, 0)
	if sx != 640 || sy != 360 {
		t.Errorf("origin mapped to (%v,%v), want (640,360)", sx, sy)
	}

	// Field y is up, screen y is down.
	sx, sy = c.WorldToScreen(0, 100)
	if sx != 640 || sy != 260 {
		t.Errorf("(0,100) mapped to (%v,%v), want (640,260)", sx, sy)
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	c := New(1280, 720, 640, 360)
	c.Pan(50, -30)
	c.ZoomBy(2)

	wx, wy := float32(123), float32(-77)
	sx, sy := c.WorldToScreen(wx, wy)
	gx, gy := c.ScreenToWorld(sx, sy)

	if absf(gx-wx) > 0.001 || absf(gy-wy) > 0.001 {
		t.Errorf("round trip (%v,%v) -> (%v,%v)", wx, wy, gx, gy)
	}
}

func TestZoomScalesDistance(t *testing.T) {
	c := New(1280, 720, 640, 360)
	c.ZoomBy(2)

	sx, _ := c.WorldToScreen(100, 0)
	if sx != 640+200 {
		t.Errorf("x at 2x zoom = %v, want 840", sx)
	}
}

func TestZoomClamped(t *testing.T) {
	c := New(1280, 720, 640, 360)

	c.ZoomBy(1000)
	if c.Zoom != c.MaxZoom {
		t.Errorf("zoom = %v, want clamped to %v", c.Zoom, c.MaxZoom)
	}

	c.ZoomBy(0.00001)
	if c.Zoom != c.MinZoom {
		t.Errorf("zoom = %v, want clamped to %v", c.Zoom, c.MinZoom)
	}
}

func TestPanClampedToField(t *testing.T) {
	c := New(1280, 720, 640, 360)

	c.Pan(10000, 10000)
	if c.X != 640 || c.Y != 360 {
		t.Errorf("center = (%v,%v), want clamped to (640,360)", c.X, c.Y)
	}

	c.Pan(-20000, -20000)
	if c.X != -640 || c.Y != -360 {
		t.Errorf("center = (%v,%v), want clamped to (-640,-360)", c.X, c.Y)
	}
}

func TestReset(t *testing.T) {
	c := New(1280, 720, 640, 360)
	c.Pan(100, 100)
	c.ZoomBy(3)

	c.Reset()
	if c.X != 0 || c.Y != 0 || c.Zoom != 1 {
		t.Errorf("after reset: (%v,%v) zoom %v, want origin at 1x", c.X, c.Y, c.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	c := New(1280, 720, 640, 360)

	if !c.IsVisible(0, 0, 5) {
		t.Error("origin not visible")
	}
	if c.IsVisible(5000, 0, 5) {
		t.Error("far-off point reported visible")
	}

	// Zooming in shrinks the visible area.
	c.ZoomBy(8)
	if c.IsVisible(620, 0, 1) {
		t.Error("point outside the zoomed view reported visible")
	}
}

func TestSetFieldBoundsReclamps(t *testing.T) {
	c := New(1280, 720, 640, 360)
	c.Pan(640, 360)

	c.SetFieldBounds(100, 100)
	if c.X != 100 || c.Y != 100 {
		t.Errorf("center = (%v,%v), want reclamped to (100,100)", c.X, c.Y)
	}
}
