// Package field provides regular sample lattices and the scalar and vector
// fields evaluated over them.
//
// Lattices follow the numpy conventions the gallery formulas were written
// against: MGrid2 matches numpy.mgrid with a float step (stop exclusive),
// and MeshGrid3 matches numpy.meshgrid with ij indexing. All values are
// stored row-major with the last index varying fastest; scalar samples are
// held in a gonum dense matrix.
package field

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrBadStep is returned when a lattice step is zero, negative or NaN.
	ErrBadStep = errors.New("field: step must be positive")

	// ErrEmptyRange is returned when a range yields no samples.
	ErrEmptyRange = errors.New("field: empty range")
)

// Arange returns the values start, start+step, ... strictly below stop.
// The sample count is ceil((stop-start)/step) and value k is start+k*step,
// as numpy.arange computes them.
func Arange(start, stop, step float64) ([]float64, error) {
	if !(step > 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadStep, step)
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil, fmt.Errorf("%w: [%v, %v)", ErrEmptyRange, start, stop)
	}
	out := make([]float64, n)
	for k := range out {
		out[k] = float64(k)
	}
	floats.Scale(step, out)
	floats.AddConst(start, out)
	return out, nil
}

// Linspace returns n evenly spaced values over [start, stop], both ends
// included. It returns nil for n < 1 and [start] for n == 1.
func Linspace(start, stop float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	floats.Span(out, start, stop)
	out[n-1] = stop
	return out
}

// Grid2 is a regular 2D lattice. X and Y hold the coordinate of every
// sample, indexed i*NY+j.
type Grid2 struct {
	NX, NY int
	X, Y   []float64
}

// MGrid2 builds the lattice numpy.mgrid[x0:x1:dx, y0:y1:dy] produces.
func MGrid2(x0, x1, dx, y0, y1, dy float64) (Grid2, error) {
	xs, err := Arange(x0, x1, dx)
	if err != nil {
		return Grid2{}, err
	}
	ys, err := Arange(y0, y1, dy)
	if err != nil {
		return Grid2{}, err
	}
	g := Grid2{
		NX: len(xs),
		NY: len(ys),
		X:  make([]float64, len(xs)*len(ys)),
		Y:  make([]float64, len(xs)*len(ys)),
	}
	for i, x := range xs {
		for j, y := range ys {
			g.X[i*g.NY+j] = x
			g.Y[i*g.NY+j] = y
		}
	}
	return g, nil
}

// Len returns the number of samples in the lattice.
func (g Grid2) Len() int { return g.NX * g.NY }

// At returns the coordinates of sample (i, j). It does not range check.
func (g Grid2) At(i, j int) (x, y float64) {
	k := i*g.NY + j
	return g.X[k], g.Y[k]
}

// Axes returns the distinct x and y coordinates of the lattice.
func (g Grid2) Axes() (xs, ys []float64) {
	xs = make([]float64, g.NX)
	ys = make([]float64, g.NY)
	for i := range xs {
		xs[i] = g.X[i*g.NY]
	}
	for j := range ys {
		ys[j] = g.Y[j]
	}
	return xs, ys
}

// Grid3 is a regular 3D lattice indexed (i*NY+j)*NZ+k.
type Grid3 struct {
	NX, NY, NZ int
	X, Y, Z    []float64
}

// MeshGrid3 builds the lattice numpy.meshgrid(x, y, z, indexing='ij')
// produces.
func MeshGrid3(x, y, z []float64) Grid3 {
	n := len(x) * len(y) * len(z)
	g := Grid3{
		NX: len(x), NY: len(y), NZ: len(z),
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}
	for i, xv := range x {
		for j, yv := range y {
			for k, zv := range z {
				idx := (i*g.NY+j)*g.NZ + k
				g.X[idx] = xv
				g.Y[idx] = yv
				g.Z[idx] = zv
			}
		}
	}
	return g
}

// Len returns the number of samples in the lattice.
func (g Grid3) Len() int { return g.NX * g.NY * g.NZ }
