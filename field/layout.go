package field

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/ember/config"
)

// Generate fills st with the initial layout. seed is an optional flat
// [x,y,z,...] list of replay positions; its first min(N,S) entries are used
// verbatim with zero velocity. Any remaining particles are placed
// procedurally in an annulus around the obstacle. Procedural particles never
// land closer to the origin than 1.2x the obstacle radius.
func Generate(st *State, cfg *config.Config, rng *rand.Rand, halfW, halfH float32) {
	GenerateFromSeed(st, cfg, rng, halfW, halfH, nil)
}

// GenerateFromSeed is Generate with a replay seed.
func GenerateFromSeed(st *State, cfg *config.Config, rng *rand.Rand, halfW, halfH float32, seed []float32) {
	seeded := len(seed) / 3
	if seeded > st.Count {
		seeded = st.Count
	}

	for i := 0; i < seeded; i++ {
		st.Positions[i*3] = seed[i*3]
		st.Positions[i*3+1] = seed[i*3+1]
		st.Positions[i*3+2] = seed[i*3+2]
		// Replayed particles start dead still so a loaded layout does not
		// drift before the first tick.
		st.Velocities[i*3] = 0
		st.Velocities[i*3+1] = 0
		st.Velocities[i*3+2] = 0
	}

	ann := newAnnulus(cfg, halfW, halfH)
	for i := seeded; i < st.Count; i++ {
		x, y := ann.sample(cfg, rng)
		st.Positions[i*3] = x
		st.Positions[i*3+1] = y
		st.Positions[i*3+2] = 0

		// Outward initial velocity only in full procedural mode; overflow
		// particles appended to a snapshot stay at rest like the rest of it.
		if seeded == 0 {
			vx, vy := initialVelocity(x, y, cfg.Layout.InitialVelocity, rng)
			st.Velocities[i*3] = vx
			st.Velocities[i*3+1] = vy
			st.Velocities[i*3+2] = 0
		}
	}

	for i := 0; i < st.Count; i++ {
		st.Temperatures[i] = rng.Float32()
	}
}

// annulus holds the derived ring geometry for procedural placement.
type annulus struct {
	minR, maxR float32
	mean, dev  float32
}

func newAnnulus(cfg *config.Config, halfW, halfH float32) annulus {
	minR := 1.2 * cfg.Obstacle.Radius
	if minR < 0 {
		minR = 0
	}
	short := 2 * halfW
	if 2*halfH < short {
		short = 2 * halfH
	}
	maxR := 0.4 * short
	if maxR < minR {
		maxR = minR
	}
	return annulus{
		minR: minR,
		maxR: maxR,
		mean: (minR + maxR) / 2,
		dev:  (maxR - minR) / 4,
	}
}

// sample draws one position on the ring. Radius is Gaussian via Box-Muller,
// clamped into [minR, maxR]; jitter is up to 10% of the radius per axis,
// scaled by the spread multipliers. The minimum-radius invariant is enforced
// by pushing out after jitter.
func (a annulus) sample(cfg *config.Config, rng *rand.Rand) (float32, float32) {
	theta := a.angle(cfg, rng)

	u1 := 1 - rng.Float64() // (0,1], keeps the log finite
	u2 := rng.Float64()
	g := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

	r := a.mean + float32(g)*a.dev
	if r < a.minR {
		r = a.minR
	}
	if r > a.maxR {
		r = a.maxR
	}

	jx := (rng.Float32()*2 - 1) * 0.1 * r * cfg.Layout.SpreadX
	jy := (rng.Float32()*2 - 1) * 0.1 * r * cfg.Layout.SpreadY
	x := float32(math.Cos(float64(theta)))*r + jx
	y := float32(math.Sin(float64(theta)))*r + jy

	// Jitter may have pulled the point inside the exclusion ring.
	if a.minR > 0 {
		d := float32(math.Hypot(float64(x), float64(y)))
		if d == 0 {
			x, y = a.minR, 0
		} else if d < a.minR {
			s := a.minR / d
			x *= s
			y *= s
		}
	}
	return x, y
}

// angle draws the ring angle: uniform, or grouped around cluster_count seed
// angles with an arc spread of cluster_radius.
func (a annulus) angle(cfg *config.Config, rng *rand.Rand) float32 {
	if cfg.Layout.ClusterCount <= 0 {
		return rng.Float32() * 2 * math.Pi
	}
	k := rng.Intn(cfg.Layout.ClusterCount)
	base := 2 * math.Pi * float32(k) / float32(cfg.Layout.ClusterCount)
	spread := float32(0)
	if a.mean > 0 {
		spread = cfg.Layout.ClusterRadius / a.mean
	}
	return base + (rng.Float32()*2-1)*spread
}

// initialVelocity points radially outward at the configured magnitude with
// uniform jitter of amplitude 0.2 per axis. A particle exactly at the origin
// has no outward direction, so it gets a random kick of amplitude 0.5.
func initialVelocity(x, y, magnitude float32, rng *rand.Rand) (float32, float32) {
	d := float32(math.Hypot(float64(x), float64(y)))
	if d == 0 {
		return (rng.Float32()*2 - 1) * 0.5, (rng.Float32()*2 - 1) * 0.5
	}
	jx := (rng.Float32()*2 - 1) * 0.2
	jy := (rng.Float32()*2 - 1) * 0.2
	return x/d*magnitude + jx, y/d*magnitude + jy
}
