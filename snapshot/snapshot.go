// Package snapshot reads and writes particle position snapshots. A snapshot
// is an ordered CSV of (x,y,z) triples; the engine replays it verbatim as the
// initial layout, and can export the live positions back in the same format.
package snapshot

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// Point is one snapshot entry. z is always 0 in the 2D field but kept for
// renderer buffer compatibility.
type Point struct {
	X float32 `csv:"x"`
	Y float32 `csv:"y"`
	Z float32 `csv:"z"`
}

// Load reads an ordered snapshot from a CSV file. A missing or malformed
// file is an error here; callers treat it as non-fatal and fall back to
// procedural generation.
func Load(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	var pts []Point
	if err := gocsv.UnmarshalFile(f, &pts); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return pts, nil
}

// Save writes points to a CSV file in snapshot format.
func Save(path string, pts []Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&pts, f); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Flatten converts points to the flat interleaved [x0,y0,z0,...] layout the
// field consumes.
func Flatten(pts []Point) []float32 {
	if len(pts) == 0 {
		return nil
	}
	out := make([]float32, len(pts)*3)
	for i, p := range pts {
		out[i*3] = p.X
		out[i*3+1] = p.Y
		out[i*3+2] = p.Z
	}
	return out
}

// FromPositions converts a flat interleaved position buffer into points.
// Trailing values short of a full triple are dropped.
func FromPositions(buf []float32) []Point {
	n := len(buf) / 3
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{X: buf[i*3], Y: buf[i*3+1], Z: buf[i*3+2]}
	}
	return pts
}
