package field

import (
	"math/rand"

	"github.com/pthm-cable/ember/config"
)

// Phase is the integrator lifecycle state. Idle means built but not yet
// ticked, Running is the steady per-frame loop, Stopped is terminal and
// releases the buffers.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseStopped
)

// dt is the simulation clock advance per tick. The position update uses the
// specified velocity*speed*60 per-tick form, so trajectories are indexed by
// tick, not wall time; dt only drives the convection clock.
const dt = 1.0 / 60.0

// Integrator owns a State and advances it one tick at a time. It is the only
// writer of the particle buffers. Nothing here returns an error: numeric
// trouble is contained by zero-distance guards and clamping, and a bad frame
// self-corrects through damping on the next one.
type Integrator struct {
	cfg     *config.Config
	rng     *rand.Rand
	state   *State
	forces  *ForceField
	pointer *PointerTracker

	halfW, halfH float32
	tick         int32
	clock        float64
	phase        Phase
}

// NewIntegrator builds the state from the configured count and layout and
// returns an idle integrator. seed is an optional snapshot replay, nil for
// full procedural generation.
func NewIntegrator(cfg *config.Config, rng *rand.Rand, pointer *PointerTracker, halfW, halfH float32, seed []float32) *Integrator {
	st := NewState(cfg.Field.Count)
	GenerateFromSeed(st, cfg, rng, halfW, halfH, seed)
	return &Integrator{
		cfg:     cfg,
		rng:     rng,
		state:   st,
		forces:  NewForceField(cfg, rng, halfW, halfH),
		pointer: pointer,
		halfW:   halfW,
		halfH:   halfH,
		phase:   PhaseIdle,
	}
}

// Step advances the field by one tick. Per particle, in order: early forces,
// position update, late forces, damping, turbulence, boundary reflection.
// The order is contractual; see ForceField.
func (it *Integrator) Step() {
	if it.phase == PhaseStopped {
		return
	}
	it.phase = PhaseRunning
	it.clock += dt
	it.tick++

	cfg := it.cfg
	st := it.state
	var ptr PointerSample
	if it.pointer != nil {
		ptr = it.pointer.Sample()
	}

	speed := cfg.Field.Speed * 60
	boundX := it.halfW - cfg.Boundary.Padding
	boundY := it.halfH - cfg.Boundary.Padding
	turb := cfg.Physics.Turbulence * cfg.Physics.TurbulenceScale

	for i := 0; i < st.Count; i++ {
		it.forces.applyEarly(st, i, it.clock, ptr)

		pi := i * 3
		st.Positions[pi] += st.Velocities[pi] * speed
		st.Positions[pi+1] += st.Velocities[pi+1] * speed

		it.forces.applyLate(st, i)

		st.Velocities[pi] *= cfg.Physics.Damping
		st.Velocities[pi+1] *= cfg.Physics.Damping

		st.Velocities[pi] += (it.rng.Float32() - 0.5) * turb
		st.Velocities[pi+1] += (it.rng.Float32() - 0.5) * turb

		it.reflect(i, boundX, boundY)
	}
}

// reflect clamps particle i to the padded bounds, inverting and damping the
// velocity on contact. The top edge cools the particle, the bottom edge
// heats it.
func (it *Integrator) reflect(i int, boundX, boundY float32) {
	st := it.state
	bd := it.cfg.Boundary.Damping
	pi := i * 3

	if st.Positions[pi] > boundX {
		st.Positions[pi] = boundX
		st.Velocities[pi] = -absf(st.Velocities[pi]) * bd
	} else if st.Positions[pi] < -boundX {
		st.Positions[pi] = -boundX
		st.Velocities[pi] = absf(st.Velocities[pi]) * bd
	}

	if st.Positions[pi+1] > boundY {
		st.Positions[pi+1] = boundY
		st.Velocities[pi+1] = -absf(st.Velocities[pi+1]) * bd
		st.Temperatures[i] = clamp01(st.Temperatures[i] * it.cfg.Temperature.CoolingRate)
	} else if st.Positions[pi+1] < -boundY {
		st.Positions[pi+1] = -boundY
		st.Velocities[pi+1] = absf(st.Velocities[pi+1]) * bd
		st.Temperatures[i] = clamp01(st.Temperatures[i] * it.cfg.Temperature.HeatingRate)
	}
}

// Positions returns the live position buffer. Read-only by contract: the
// renderer consumes it directly each frame.
func (it *Integrator) Positions() []float32 {
	return it.state.Positions
}

// Temperatures returns the live temperature buffer, read-only by contract.
func (it *Integrator) Temperatures() []float32 {
	return it.state.Temperatures
}

// Velocities returns the live velocity buffer, read-only by contract.
func (it *Integrator) Velocities() []float32 {
	return it.state.Velocities
}

// CopyPositions returns an independent snapshot-format copy of the positions.
func (it *Integrator) CopyPositions() []float32 {
	return it.state.CopyPositions()
}

// Count returns the particle count.
func (it *Integrator) Count() int {
	return it.state.Count
}

// Tick returns the number of completed ticks.
func (it *Integrator) Tick() int32 {
	return it.tick
}

// Clock returns the simulation clock in seconds.
func (it *Integrator) Clock() float64 {
	return it.clock
}

// Phase returns the lifecycle state.
func (it *Integrator) Phase() Phase {
	return it.phase
}

// Stop moves the integrator to its terminal state and releases the buffers.
// Further Step calls are no-ops.
func (it *Integrator) Stop() {
	it.phase = PhaseStopped
	it.state.release()
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
