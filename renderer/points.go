// Package renderer draws the particle field as additively blended point
// sprites, plus a soft noise background behind it.
package renderer

import (
	"math"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ember/camera"
	"github.com/pthm-cable/ember/config"
)

// PointRenderer draws the live position buffer. It never writes the buffers.
type PointRenderer struct {
	cfg *config.Config
}

// NewPointRenderer creates a point sprite renderer.
func NewPointRenderer(cfg *config.Config) *PointRenderer {
	return &PointRenderer{cfg: cfg}
}

// Draw renders every particle. positions is the flat interleaved buffer;
// temperatures tints each sprite from cool to warm.
func (r *PointRenderer) Draw(positions, temperatures []float32, cam *camera.Camera) {
	cfg := r.cfg
	base := ParseColor(cfg.Field.Color)
	size := cfg.Field.Size * cam.Zoom
	if size < 0.5 {
		size = 0.5
	}

	rl.BeginBlendMode(rl.BlendAdditive)
	for i := range temperatures {
		x := positions[i*3]
		y := positions[i*3+1]
		if !cam.IsVisible(x, y, cfg.Field.Size) {
			continue
		}

		alpha := r.coronaAlpha(hypotf(x, y)) * cfg.Field.Opacity
		if alpha <= 0 {
			continue
		}

		col := heatTint(base, temperatures[i])
		col.A = uint8(clampf(alpha, 0, 1) * 255)

		sx, sy := cam.WorldToScreen(x, y)
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, size, col)
	}
	rl.EndBlendMode()
}

// coronaAlpha shapes the radial falloff: full brightness inside the inner
// boundary, fading to nothing at the outer one, with the sharpness exponent
// steepening the slope.
func (r *PointRenderer) coronaAlpha(dist float32) float32 {
	c := &r.cfg.Corona
	if c.OuterBoundary <= c.InnerBoundary {
		return 1
	}
	t := clampf((dist-c.InnerBoundary)/(c.OuterBoundary-c.InnerBoundary), 0, 1)
	if c.SlopeSharpness > 0 {
		t = float32(math.Pow(float64(t), float64(c.SlopeSharpness)))
	}
	return 1 - t
}

// heatTint shifts the base color toward white for hot particles and toward a
// dim blue for cold ones.
func heatTint(base rl.Color, temp float32) rl.Color {
	t := clampf(temp, 0, 1)
	if t >= 0.5 {
		// Warm half: lerp toward white.
		f := (t - 0.5) * 2
		return rl.Color{
			R: lerpByte(base.R, 255, f),
			G: lerpByte(base.G, 255, f),
			B: lerpByte(base.B, 255, f),
			A: base.A,
		}
	}
	// Cool half: lerp toward a dark blue.
	f := (0.5 - t) * 2
	return rl.Color{
		R: lerpByte(base.R, 20, f),
		G: lerpByte(base.G, 40, f),
		B: lerpByte(base.B, 110, f),
		A: base.A,
	}
}

// ParseColor parses a "#rrggbb" string. Malformed input falls back to white;
// a bad config value must not break rendering.
func ParseColor(s string) rl.Color {
	if len(s) == 7 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return rl.White
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rl.White
	}
	return rl.Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}

func lerpByte(a, b uint8, f float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*clampf(f, 0, 1))
}

func hypotf(x, y float32) float32 {
	return float32(math.Hypot(float64(x), float64(y)))
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
