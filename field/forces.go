package field

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/ember/config"
)

// ForceField computes per-particle acceleration and heat transfer. The term
// order is a contract: the emergent trajectories of a chaotic iterated system
// depend on it, so terms are accumulated exactly in the sequence below and
// never reordered.
//
// Early terms (applied before the position update): buoyancy, convection,
// temperature diffusion, pointer, obstacle. Late terms (applied after it):
// gravity well, wind, vortex.
//
// Every division by a distance is guarded: at distance zero the term is
// skipped so NaN can never enter the buffers.
type ForceField struct {
	cfg   *config.Config
	rng   *rand.Rand
	halfW float32
	halfH float32
}

// NewForceField creates a force field over the given half-extents.
func NewForceField(cfg *config.Config, rng *rand.Rand, halfW, halfH float32) *ForceField {
	return &ForceField{cfg: cfg, rng: rng, halfW: halfW, halfH: halfH}
}

// applyEarly accumulates the pre-move terms into particle i's velocity and
// temperature. t is the simulation clock in seconds.
func (f *ForceField) applyEarly(st *State, i int, t float64, ptr PointerSample) {
	cfg := f.cfg
	pi := i * 3
	x := st.Positions[pi]
	y := st.Positions[pi+1]
	temp := st.Temperatures[i]

	// Buoyancy: warm particles rise, cold ones sink.
	st.Velocities[pi+1] += (temp - 0.5) * cfg.Convection.Buoyancy

	f.convection(st, i, x, y, t)

	// Temperature diffusion: relax toward cool-at-top, warm-at-bottom.
	if f.halfH > 0 {
		heightFactor := (y + f.halfH) / (2 * f.halfH)
		temp += ((1 - heightFactor) - temp) * cfg.Convection.TemperatureDiffusion
	}

	temp = f.pointer(st, i, x, y, ptr, temp)
	temp = f.obstacle(st, i, x, y, temp)

	st.Temperatures[i] = clamp01(temp)
}

// convection applies the orbital, radial and noise flow terms.
func (f *ForceField) convection(st *State, i int, x, y float32, t float64) {
	c := &f.cfg.Convection
	pi := i * 3

	dist := hypotf(x, y)
	if dist > 0 {
		angle := atan2f(y, x)
		orbital := c.Strength * 0.1

		inward := float32(0)
		if f.cfg.Obstacle.Enabled && f.cfg.Obstacle.Radius > 0 {
			inward = (dist - f.cfg.Obstacle.Radius*0.6) / f.cfg.Obstacle.Radius
			if inward < 0 {
				inward = 0
			}
			inward *= 0.02
		}
		radial := sinf(float32(t)*c.SpeedX+dist*c.ScaleX)*0.01*c.Strength - inward

		// Two noise scales: a slow large-scale drift at reduced frequencies
		// and a medium-scale churn at the configured ones.
		large := sinf(float32(t)*c.SpeedX*0.3+x*c.ScaleX*0.5) *
			cosf(float32(t)*c.SpeedY*0.4+y*c.ScaleY*0.5) * 0.008 * c.Strength
		medium := sinf(float32(t)*c.SpeedX+x*c.ScaleX) *
			cosf(float32(t)*c.SpeedY+y*c.ScaleY) * 0.008 * c.Strength
		noise := large + medium

		st.Velocities[pi] += -sinf(angle)*orbital + x/dist*radial + noise
		st.Velocities[pi+1] += cosf(angle)*orbital + y/dist*radial + noise
	}

	st.Velocities[pi] += (f.rng.Float32()*2 - 1) * 0.005 * c.Strength
	st.Velocities[pi+1] += (f.rng.Float32()*2 - 1) * 0.005 * c.Strength
}

// pointer pushes the particle away from an active interaction point with a
// falloff linear in distance, and heats it. Returns the updated temperature.
func (f *ForceField) pointer(st *State, i int, x, y float32, ptr PointerSample, temp float32) float32 {
	p := &f.cfg.Pointer
	if !ptr.Active {
		return temp
	}
	dx := x - ptr.X
	dy := y - ptr.Y
	d := hypotf(dx, dy)
	if d <= 0 || d >= p.Radius {
		return temp
	}
	push := (p.Radius - d) / p.Radius * p.Force
	pi := i * 3
	st.Velocities[pi] += dx / d * push
	st.Velocities[pi+1] += dy / d * push
	return clamp01(temp + p.Heat)
}

// obstacle repels the particle from the central repulsor inside a soft
// effective radius of 0.7x the configured one, adds a tangential swirl at
// half the push magnitude, and heats it. Returns the updated temperature.
func (f *ForceField) obstacle(st *State, i int, x, y float32, temp float32) float32 {
	o := &f.cfg.Obstacle
	if !o.Enabled {
		return temp
	}
	effR := o.Radius * 0.7
	dx := x - o.X
	dy := y - o.Y
	d := hypotf(dx, dy)
	if d <= 0 || d >= effR {
		return temp
	}
	push := sqrtf((effR-d)/effR) * o.Force * 0.3
	pi := i * 3
	st.Velocities[pi] += dx/d*push - dy/d*push*0.5
	st.Velocities[pi+1] += dy/d*push + dx/d*push*0.5
	return clamp01(temp + o.Heat)
}

// applyLate accumulates the post-move terms: gravity well, wind, vortex.
func (f *ForceField) applyLate(st *State, i int) {
	cfg := f.cfg
	pi := i * 3
	x := st.Positions[pi]
	y := st.Positions[pi+1]

	// Gravity well: linear falloff from the origin out to the range.
	g := &cfg.Gravity
	if (g.X != 0 || g.Y != 0) && g.Range > 0 {
		d := hypotf(x, y)
		if d <= g.Range {
			fall := 1 - d/g.Range
			st.Velocities[pi] += g.X * fall
			st.Velocities[pi+1] += g.Y * fall
		}
	}

	// Wind: constant drift plus per-axis jitter.
	w := &cfg.Wind
	if w.X != 0 || w.Y != 0 || w.Variation != 0 {
		st.Velocities[pi] += w.X + (f.rng.Float32()*2-1)*w.Variation
		st.Velocities[pi+1] += w.Y + (f.rng.Float32()*2-1)*w.Variation
	}

	// Vortex: tangential force decaying linearly to the vortex radius.
	v := &cfg.Vortex
	if v.Strength > 0 {
		d := hypotf(x, y)
		if d > 0 && d < v.Radius {
			a := atan2f(y, x) + math.Pi/2
			mag := (1 - d/v.Radius) * v.Strength
			st.Velocities[pi] += cosf(a) * mag
			st.Velocities[pi+1] += sinf(a) * mag
		}
	}
}

func hypotf(x, y float32) float32 {
	return float32(math.Hypot(float64(x), float64(y)))
}

func sinf(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func cosf(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func atan2f(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

func sqrtf(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}
