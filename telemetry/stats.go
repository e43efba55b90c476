// Package telemetry aggregates particle field statistics and per-tick
// performance timings, emitting them via slog and CSV.
package telemetry

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregate field statistics sampled at the end of a stats
// window.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`
	ParticleCount int     `csv:"particles"`

	// Velocity distribution
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedMax  float64 `csv:"speed_max"`

	// Temperature distribution
	TempMean float64 `csv:"temp_mean"`
	TempStd  float64 `csv:"temp_std"`
	// Fraction of particles hotter than 0.75
	HotFraction float64 `csv:"hot_fraction"`

	PointerActive bool `csv:"pointer_active"`
}

// Collect computes window stats from the live buffers. velocities is the flat
// interleaved buffer; temperatures has one value per particle.
func Collect(tick int32, simTime float64, velocities, temperatures []float32, pointerActive bool) WindowStats {
	n := len(temperatures)
	ws := WindowStats{
		WindowEndTick: tick,
		SimTimeSec:    simTime,
		ParticleCount: n,
		PointerActive: pointerActive,
	}
	if n == 0 {
		return ws
	}

	speeds := make([]float64, n)
	temps := make([]float64, n)
	hot := 0
	for i := 0; i < n; i++ {
		speeds[i] = math.Hypot(float64(velocities[i*3]), float64(velocities[i*3+1]))
		if speeds[i] > ws.SpeedMax {
			ws.SpeedMax = speeds[i]
		}
		temps[i] = float64(temperatures[i])
		if temps[i] > 0.75 {
			hot++
		}
	}

	ws.SpeedMean = stat.Mean(speeds, nil)
	ws.SpeedStd = stat.StdDev(speeds, nil)
	ws.TempMean = stat.Mean(temps, nil)
	ws.TempStd = stat.StdDev(temps, nil)
	ws.HotFraction = float64(hot) / float64(n)
	return ws
}

// Log emits the window stats as a structured record.
func (ws WindowStats) Log() {
	slog.Info("field stats",
		"tick", ws.WindowEndTick,
		"sim_time", ws.SimTimeSec,
		"particles", ws.ParticleCount,
		"speed_mean", ws.SpeedMean,
		"speed_max", ws.SpeedMax,
		"temp_mean", ws.TempMean,
		"temp_std", ws.TempStd,
		"hot_fraction", ws.HotFraction,
		"pointer_active", ws.PointerActive,
	)
}
