// Package ui implements the raygui control panel that edits the live
// configuration. The panel is the only writer of config values at runtime;
// the engine just reads whatever is there on its next tick.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ember/config"
)

const (
	panelWidth  = 320
	rowHeight   = 22
	sliderWidth = panelWidth - 130
)

// Panel renders the tunables and writes edits straight into the config.
type Panel struct {
	cfg     *config.Config
	visible bool

	x, y float32
	rowY float32
}

// NewPanel creates a hidden control panel anchored at the given corner.
func NewPanel(cfg *config.Config, x, y float32) *Panel {
	return &Panel{cfg: cfg, x: x, y: y}
}

// Toggle switches panel visibility and returns the new state.
func (p *Panel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *Panel) IsVisible() bool {
	return p.visible
}

// Contains reports whether a screen point is over the panel, so the host can
// keep panel drags from panning the camera.
func (p *Panel) Contains(sx, sy float32) bool {
	if !p.visible {
		return false
	}
	return sx >= p.x && sx <= p.x+panelWidth && sy >= p.y
}

// Draw renders the panel and applies any edits to the config.
func (p *Panel) Draw() {
	if !p.visible {
		return
	}
	cfg := p.cfg
	p.rowY = p.y + 8

	rl.DrawRectangle(int32(p.x), int32(p.y), panelWidth, 660, rl.Color{R: 10, G: 10, B: 18, A: 230})
	rl.DrawRectangleLines(int32(p.x), int32(p.y), panelWidth, 660, rl.Color{R: 60, G: 60, B: 90, A: 255})

	p.header("Field")
	cfg.Field.Count = int(p.slider("count", float32(cfg.Field.Count), 500, 20000))
	cfg.Field.Size = p.slider("size", cfg.Field.Size, 0.5, 8)
	cfg.Field.Speed = p.slider("speed", cfg.Field.Speed, 0, 3)
	cfg.Field.Opacity = p.slider("opacity", cfg.Field.Opacity, 0, 1)

	p.header("Physics")
	cfg.Physics.Damping = p.slider("damping", cfg.Physics.Damping, 0.8, 1)
	cfg.Physics.Turbulence = p.slider("turbulence", cfg.Physics.Turbulence, 0, 1)
	cfg.Physics.TurbulenceScale = p.slider("turb scale", cfg.Physics.TurbulenceScale, 0, 0.1)

	p.header("Convection")
	cfg.Convection.Strength = p.slider("strength", cfg.Convection.Strength, 0, 4)
	cfg.Convection.Buoyancy = p.slider("buoyancy", cfg.Convection.Buoyancy, 0, 0.1)
	cfg.Convection.TemperatureDiffusion = p.slider("diffusion", cfg.Convection.TemperatureDiffusion, 0, 0.2)

	p.header("Pointer")
	cfg.Pointer.Radius = p.slider("radius", cfg.Pointer.Radius, 0, 400)
	cfg.Pointer.Force = p.slider("force", cfg.Pointer.Force, 0, 2)
	cfg.Pointer.Heat = p.slider("heat", cfg.Pointer.Heat, 0, 0.5)

	p.header("Obstacle")
	cfg.Obstacle.Enabled = p.checkbox("enabled", cfg.Obstacle.Enabled)
	cfg.Obstacle.Radius = p.slider("radius", cfg.Obstacle.Radius, 0, 600)
	cfg.Obstacle.Force = p.slider("force", cfg.Obstacle.Force, 0, 3)
	cfg.Obstacle.Heat = p.slider("heat", cfg.Obstacle.Heat, 0, 0.5)

	p.header("Wind / Gravity / Vortex")
	cfg.Wind.X = p.slider("wind x", cfg.Wind.X, -0.2, 0.2)
	cfg.Wind.Y = p.slider("wind y", cfg.Wind.Y, -0.2, 0.2)
	cfg.Wind.Variation = p.slider("wind var", cfg.Wind.Variation, 0, 0.1)
	cfg.Gravity.X = p.slider("gravity x", cfg.Gravity.X, -0.5, 0.5)
	cfg.Gravity.Y = p.slider("gravity y", cfg.Gravity.Y, -0.5, 0.5)
	cfg.Gravity.Range = p.slider("grav range", cfg.Gravity.Range, 0, 1500)
	cfg.Vortex.Strength = p.slider("vortex", cfg.Vortex.Strength, 0, 1)
	cfg.Vortex.Radius = p.slider("vortex rad", cfg.Vortex.Radius, 0, 1000)

	p.header("Corona")
	cfg.Corona.InnerBoundary = p.slider("inner", cfg.Corona.InnerBoundary, 0, 800)
	cfg.Corona.OuterBoundary = p.slider("outer", cfg.Corona.OuterBoundary, 100, 3000)
	cfg.Corona.SlopeSharpness = p.slider("sharpness", cfg.Corona.SlopeSharpness, 0.5, 6)
}

// header draws a section title.
func (p *Panel) header(title string) {
	p.rowY += 4
	rl.DrawText(title, int32(p.x+10), int32(p.rowY), 14, rl.Color{R: 170, G: 170, B: 210, A: 255})
	p.rowY += rowHeight - 4
}

// slider draws one labeled slider row and returns the (possibly edited) value.
func (p *Panel) slider(label string, value, min, max float32) float32 {
	rl.DrawText(label, int32(p.x+14), int32(p.rowY+3), 10, rl.Gray)
	v := gui.SliderBar(
		rl.Rectangle{X: p.x + 90, Y: p.rowY, Width: sliderWidth, Height: 14},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.3g", v), int32(p.x+96+sliderWidth), int32(p.rowY+3), 10, rl.LightGray)
	p.rowY += rowHeight - 4
	return v
}

// checkbox draws one labeled checkbox row and returns the new state.
func (p *Panel) checkbox(label string, checked bool) bool {
	v := gui.CheckBox(
		rl.Rectangle{X: p.x + 90, Y: p.rowY, Width: 14, Height: 14},
		label, checked,
	)
	p.rowY += rowHeight - 4
	return v
}
