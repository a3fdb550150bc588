// Package contour extracts iso-lines from scalar fields sampled on a
// regular lattice using marching squares.
package contour

import (
	"errors"
	"fmt"

	"github.com/gogpu/plot3d/field"
)

// DefaultCount is the number of levels used when none are requested.
const DefaultCount = 5

// ErrShapeMismatch is returned when a field does not match its lattice.
var ErrShapeMismatch = errors.New("contour: field shape does not match grid")

// Segment is one straight piece of an iso-line in lattice coordinates.
// I and J name the lattice cell it crosses.
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
	Level  float64
	I, J   int
}

// Levels returns n evenly spaced levels strictly inside (lo, hi):
// lo + k*(hi-lo)/(n+1) for k = 1..n. The extremes are excluded because a
// contour at the peak or floor of a field degenerates to a point.
func Levels(lo, hi float64, n int) []float64 {
	if n < 1 || !(hi > lo) {
		return nil
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n+1)
	for k := range out {
		out[k] = lo + float64(k+1)*step
	}
	return out
}

// Lines returns the iso-line segments of s at each level. Segments are
// emitted level by level, then cell by cell in row-major order, so the
// output is deterministic.
func Lines(g field.Grid2, s field.Scalar2, levels []float64) ([]Segment, error) {
	if g.NX != s.NX || g.NY != s.NY {
		return nil, fmt.Errorf("%w: grid %dx%d, field %dx%d",
			ErrShapeMismatch, g.NX, g.NY, s.NX, s.NY)
	}
	var segs []Segment
	for _, level := range levels {
		for i := 0; i+1 < g.NX; i++ {
			for j := 0; j+1 < g.NY; j++ {
				segs = appendCell(segs, g, s, i, j, level)
			}
		}
	}
	return segs, nil
}

type point struct{ x, y float64 }

// appendCell adds the segments crossing cell (i, j). Corners are visited
// counter-clockwise: (i,j), (i+1,j), (i+1,j+1), (i,j+1).
func appendCell(segs []Segment, g field.Grid2, s field.Scalar2, i, j int, level float64) []Segment {
	ci := [4]int{i, i + 1, i + 1, i}
	cj := [4]int{j, j, j + 1, j + 1}

	var (
		xs, ys, vs [4]float64
		above      [4]bool
	)
	for c := 0; c < 4; c++ {
		xs[c], ys[c] = g.At(ci[c], cj[c])
		vs[c] = s.At(ci[c], cj[c])
		above[c] = vs[c] >= level
	}

	var cross []point
	for e := 0; e < 4; e++ {
		a, b := e, (e+1)%4
		if above[a] == above[b] {
			continue
		}
		t := (level - vs[a]) / (vs[b] - vs[a])
		cross = append(cross, point{
			x: xs[a] + t*(xs[b]-xs[a]),
			y: ys[a] + t*(ys[b]-ys[a]),
		})
	}

	seg := func(p, q point) Segment {
		return Segment{X0: p.x, Y0: p.y, X1: q.x, Y1: q.y, Level: level, I: i, J: j}
	}

	switch len(cross) {
	case 2:
		segs = append(segs, seg(cross[0], cross[1]))
	case 4:
		// Saddle: the cell center decides which diagonal is connected.
		center := (vs[0] + vs[1] + vs[2] + vs[3]) / 4
		if (center >= level) == above[0] {
			segs = append(segs, seg(cross[0], cross[1]), seg(cross[2], cross[3]))
		} else {
			segs = append(segs, seg(cross[3], cross[0]), seg(cross[1], cross[2]))
		}
	}
	return segs
}
