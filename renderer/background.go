package renderer

import (
	"github.com/aquilax/go-perlin"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Background cell size in pixels. Coarse on purpose: the shimmer sits far
// behind additively blended sprites, fine detail would be invisible.
const bgCellSize = 40

// Background draws a slow perlin shimmer behind the particle field.
type Background struct {
	noise *perlin.Perlin
	t     float64

	width, height int32
}

// NewBackground creates the shimmer layer for the given screen size.
func NewBackground(width, height int32, seed int64) *Background {
	return &Background{
		noise:  perlin.NewPerlin(2, 2, 3, seed),
		width:  width,
		height: height,
	}
}

// Resize updates the layer after a window resize.
func (b *Background) Resize(width, height int32) {
	b.width = width
	b.height = height
}

// Draw renders one frame of the shimmer and advances its clock.
func (b *Background) Draw() {
	b.t += 0.003

	for y := int32(0); y < b.height; y += bgCellSize {
		for x := int32(0); x < b.width; x += bgCellSize {
			n := b.noise.Noise3D(float64(x)*0.002, float64(y)*0.002, b.t)
			// Noise is in [-1,1]; keep the glow faint.
			v := (n + 1) * 0.5 * 18
			shade := uint8(v)
			rl.DrawRectangle(x, y, bgCellSize, bgCellSize, rl.Color{
				R: shade / 2,
				G: shade / 3,
				B: shade,
				A: 255,
			})
		}
	}
}
