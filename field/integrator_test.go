package field

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/ember/config"
)

func TestBoundaryAndTemperatureInvariants(t *testing.T) {
	cfg := testConfig(t)
	cfg.Field.Count = 200

	const halfW, halfH = 400, 300
	it := NewIntegrator(cfg, rand.New(rand.NewSource(1)), nil, halfW, halfH, nil)

	for tick := 0; tick < 300; tick++ {
		it.Step()
		for i := 0; i < it.Count(); i++ {
			x := it.Positions()[i*3]
			y := it.Positions()[i*3+1]
			if x < -halfW || x > halfW || y < -halfH || y > halfH {
				t.Fatalf("tick %d particle %d at (%v,%v), out of bounds", tick, i, x, y)
			}
			if temp := it.Temperatures()[i]; temp < 0 || temp > 1 {
				t.Fatalf("tick %d particle %d temperature %v, want in [0,1]", tick, i, temp)
			}
		}
	}
}

func TestNoSpuriousEnergyInjection(t *testing.T) {
	// All force magnitudes zero and damping = 1: velocities must not change
	// by a single bit across ticks.
	cfg := zeroForceConfig(t)
	cfg.Field.Count = 50
	cfg.Field.Speed = 0.01 // keep particles clear of the boundary

	it := NewIntegrator(cfg, rand.New(rand.NewSource(1)), nil, 400, 300, nil)
	want := make([]float32, len(it.Velocities()))
	for i := range want {
		want[i] = 1e-3
		it.Velocities()[i] = 1e-3
	}

	for tick := 0; tick < 100; tick++ {
		it.Step()
	}
	for i, v := range it.Velocities() {
		if v != want[i] {
			t.Fatalf("velocity[%d] = %v, want exactly %v", i, v, want[i])
		}
	}
}

func TestRestStaysAtRest(t *testing.T) {
	cfg := zeroForceConfig(t)
	cfg.Field.Count = 20

	it := NewIntegrator(cfg, rand.New(rand.NewSource(2)), nil, 400, 300, nil)
	for i := range it.Velocities() {
		it.Velocities()[i] = 0
	}
	start := it.CopyPositions()

	for tick := 0; tick < 200; tick++ {
		it.Step()
	}

	for i, p := range it.Positions() {
		if p != start[i] {
			t.Fatalf("position[%d] moved from %v to %v with all forces zero", i, start[i], p)
		}
	}
}

func TestDampingBleedsVelocity(t *testing.T) {
	cfg := zeroForceConfig(t)
	cfg.Field.Count = 1
	cfg.Field.Speed = 0
	cfg.Physics.Damping = 0.5

	it := NewIntegrator(cfg, rand.New(rand.NewSource(3)), nil, 400, 300, nil)
	it.Velocities()[0] = 1

	it.Step()
	if v := it.Velocities()[0]; v != 0.5 {
		t.Errorf("velocity after one tick = %v, want 0.5", v)
	}
	it.Step()
	if v := it.Velocities()[0]; v != 0.25 {
		t.Errorf("velocity after two ticks = %v, want 0.25", v)
	}
}

func TestBoundaryReflectionDampsAndHeats(t *testing.T) {
	cfg := zeroForceConfig(t)
	cfg.Field.Count = 1
	cfg.Boundary.Damping = 0.5
	cfg.Boundary.Padding = 0
	cfg.Temperature.CoolingRate = 0.5
	cfg.Temperature.HeatingRate = 1.5

	// Launch one particle straight up into the top edge.
	it := NewIntegrator(cfg, rand.New(rand.NewSource(4)), nil, 400, 300, nil)
	it.Positions()[0] = 0
	it.Positions()[1] = 299
	it.Velocities()[0] = 0
	it.Velocities()[1] = 1 // moves 60 per tick at speed 1
	it.Temperatures()[0] = 1

	it.Step()

	if y := it.Positions()[1]; y != 300 {
		t.Errorf("y = %v, want clamped to 300", y)
	}
	if vy := it.Velocities()[1]; vy != -0.5 {
		t.Errorf("vy = %v, want -0.5 after damped reflection", vy)
	}
	if temp := it.Temperatures()[0]; temp != 0.5 {
		t.Errorf("temperature = %v, want halved by top-edge cooling", temp)
	}

	// And one straight down into the bottom edge.
	it = NewIntegrator(cfg, rand.New(rand.NewSource(5)), nil, 400, 300, nil)
	it.Positions()[0] = 0
	it.Positions()[1] = -299
	it.Velocities()[1] = -1
	it.Temperatures()[0] = 0.9

	it.Step()

	if y := it.Positions()[1]; y != -300 {
		t.Errorf("y = %v, want clamped to -300", y)
	}
	if vy := it.Velocities()[1]; vy != 0.5 {
		t.Errorf("vy = %v, want +0.5 after damped reflection", vy)
	}
	if temp := it.Temperatures()[0]; temp != 1 {
		t.Errorf("temperature = %v, want 0.9*1.5 clamped to 1", temp)
	}
}

func TestHostileConfigStaysFinite(t *testing.T) {
	// The engine does not validate config; it must stay NaN-free under
	// nonsense values.
	cfg := testConfig(t)
	cfg.Field.Count = 100
	cfg.Physics.Damping = -1.2
	cfg.Physics.Turbulence = -0.5
	cfg.Convection.Strength = -3
	cfg.Convection.Buoyancy = -1
	cfg.Boundary.Damping = -0.5
	cfg.Boundary.Padding = -20
	cfg.Pointer.Radius = -50
	cfg.Pointer.Force = -10
	cfg.Obstacle.Radius = 0
	cfg.Gravity = config.GravityConfig{X: 5, Y: 5, Range: 0}
	cfg.Vortex = config.VortexConfig{Strength: 2, Radius: -10}
	cfg.Temperature.CoolingRate = -2
	cfg.Temperature.HeatingRate = 99

	tracker := NewPointerTracker(800, 600)
	tracker.Move(0, PointerMouse, 400, 300)

	it := NewIntegrator(cfg, rand.New(rand.NewSource(6)), tracker, 400, 300, nil)
	for tick := 0; tick < 120; tick++ {
		it.Step()
	}

	for i, p := range it.Positions() {
		if math.IsNaN(float64(p)) {
			t.Fatalf("position[%d] is NaN", i)
		}
	}
	for i, temp := range it.Temperatures() {
		if temp < 0 || temp > 1 || math.IsNaN(float64(temp)) {
			t.Fatalf("temperature[%d] = %v, want in [0,1]", i, temp)
		}
	}
}

func TestLifecyclePhases(t *testing.T) {
	cfg := testConfig(t)
	cfg.Field.Count = 10

	it := NewIntegrator(cfg, rand.New(rand.NewSource(7)), nil, 400, 300, nil)
	if it.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want PhaseIdle before first tick", it.Phase())
	}

	it.Step()
	if it.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want PhaseRunning after a tick", it.Phase())
	}
	if it.Tick() != 1 {
		t.Errorf("tick = %d, want 1", it.Tick())
	}

	it.Stop()
	if it.Phase() != PhaseStopped {
		t.Errorf("phase = %v, want PhaseStopped", it.Phase())
	}
	if it.Positions() != nil {
		t.Error("positions not released after Stop")
	}

	// Stopped is terminal; further steps are no-ops.
	it.Step()
	if it.Phase() != PhaseStopped || it.Tick() != 1 {
		t.Errorf("Step after Stop advanced state: phase %v tick %d", it.Phase(), it.Tick())
	}
}

func TestCopyPositionsIndependent(t *testing.T) {
	cfg := testConfig(t)
	cfg.Field.Count = 10

	it := NewIntegrator(cfg, rand.New(rand.NewSource(8)), nil, 400, 300, nil)
	snap := it.CopyPositions()
	before := snap[0]

	it.Step()
	it.Positions()[0] = 12345

	if snap[0] != before {
		t.Error("CopyPositions shares memory with the live buffer")
	}
	if len(snap) != it.Count()*3 {
		t.Errorf("snapshot length = %d, want %d", len(snap), it.Count()*3)
	}
}
