package telemetry

import (
	"math"
	"testing"
)

func TestCollectBasicMoments(t *testing.T) {
	// Two particles: one at rest and cold, one moving at speed 5 and hot.
	velocities := []float32{
		0, 0, 0,
		3, 4, 0,
	}
	temperatures := []float32{0.2, 0.8}

	ws := Collect(100, 10.5, velocities, temperatures, true)

	if ws.WindowEndTick != 100 || ws.SimTimeSec != 10.5 {
		t.Errorf("window bookkeeping = (%d, %v), want (100, 10.5)", ws.WindowEndTick, ws.SimTimeSec)
	}
	if ws.ParticleCount != 2 {
		t.Errorf("particle count = %d, want 2", ws.ParticleCount)
	}
	if math.Abs(ws.SpeedMean-2.5) > 1e-9 {
		t.Errorf("speed mean = %v, want 2.5", ws.SpeedMean)
	}
	if ws.SpeedMax != 5 {
		t.Errorf("speed max = %v, want 5", ws.SpeedMax)
	}
	if math.Abs(ws.TempMean-0.5) > 1e-6 {
		t.Errorf("temp mean = %v, want 0.5", ws.TempMean)
	}
	if ws.HotFraction != 0.5 {
		t.Errorf("hot fraction = %v, want 0.5", ws.HotFraction)
	}
	if !ws.PointerActive {
		t.Error("pointer active flag lost")
	}
}

func TestCollectEmptyField(t *testing.T) {
	ws := Collect(0, 0, nil, nil, false)
	if ws.ParticleCount != 0 {
		t.Errorf("particle count = %d, want 0", ws.ParticleCount)
	}
	if ws.SpeedMean != 0 || ws.TempMean != 0 {
		t.Errorf("moments on empty field = (%v, %v), want zeros", ws.SpeedMean, ws.TempMean)
	}
}

func TestCollectStdDev(t *testing.T) {
	// Four identical speeds: zero spread.
	velocities := []float32{
		1, 0, 0,
		0, 1, 0,
		-1, 0, 0,
		0, -1, 0,
	}
	temperatures := []float32{0.5, 0.5, 0.5, 0.5}

	ws := Collect(1, 0, velocities, temperatures, false)
	if ws.SpeedStd > 1e-9 {
		t.Errorf("speed std = %v, want ~0", ws.SpeedStd)
	}
	if ws.TempStd > 1e-9 {
		t.Errorf("temp std = %v, want ~0", ws.TempStd)
	}
}
