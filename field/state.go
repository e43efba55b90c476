// Package field implements the particle field simulation core: particle
// buffers, initial layout, per-particle forces and the per-tick integrator.
package field

// State owns the three parallel particle buffers. Positions and velocities
// are flat interleaved [x0,y0,z0,x1,y1,z1,...] slices because the renderer
// consumes the position buffer directly; z is always 0 in this 2D model and
// is kept only for that layout. Temperatures hold one value per particle,
// clamped into [0,1] after every write.
//
// Count is fixed at allocation. Changing it means building a new State and
// regenerating the layout, never resizing in place.
type State struct {
	Count        int
	Positions    []float32
	Velocities   []float32
	Temperatures []float32
}

// NewState allocates zeroed buffers for count particles.
func NewState(count int) *State {
	if count < 0 {
		count = 0
	}
	return &State{
		Count:        count,
		Positions:    make([]float32, count*3),
		Velocities:   make([]float32, count*3),
		Temperatures: make([]float32, count),
	}
}

// CopyPositions returns an independent snapshot-format copy of the position
// buffer for export or debugging.
func (s *State) CopyPositions() []float32 {
	out := make([]float32, len(s.Positions))
	copy(out, s.Positions)
	return out
}

// release drops the buffers. Used when the integrator stops for good.
func (s *State) release() {
	s.Count = 0
	s.Positions = nil
	s.Velocities = nil
	s.Temperatures = nil
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
