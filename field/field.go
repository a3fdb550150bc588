package field

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Scalar2 is a scalar field sampled on a Grid2. Sample (i, j) is element
// (i, j) of an NX x NY matrix.
type Scalar2 struct {
	NX, NY int
	m      *mat.Dense
}

// NewScalar2 evaluates f at every sample of g.
func NewScalar2(g Grid2, f func(x, y float64) float64) Scalar2 {
	s := Scalar2{NX: g.NX, NY: g.NY}
	if g.Len() == 0 {
		return s
	}
	values := make([]float64, g.Len())
	for k := range values {
		values[k] = f(g.X[k], g.Y[k])
	}
	s.m = mat.NewDense(g.NX, g.NY, values)
	return s
}

// Value returns the sample at (i, j).
func (s Scalar2) Value(i, j int) (float64, error) {
	if i < 0 || i >= s.NX {
		return 0, fmt.Errorf("field: x index (%d) out of range, must be between 0 and %d", i, s.NX-1)
	}
	if j < 0 || j >= s.NY {
		return 0, fmt.Errorf("field: y index (%d) out of range, must be between 0 and %d", j, s.NY-1)
	}
	return s.m.At(i, j), nil
}

// At returns the sample at (i, j). It panics when (i, j) is out of range.
func (s Scalar2) At(i, j int) float64 {
	return s.m.At(i, j)
}

// Len returns the number of samples.
func (s Scalar2) Len() int {
	if s.m == nil {
		return 0
	}
	return s.NX * s.NY
}

// Values returns a copy of the samples in row-major order.
func (s Scalar2) Values() []float64 {
	if s.m == nil {
		return nil
	}
	out := make([]float64, 0, s.Len())
	for i := 0; i < s.NX; i++ {
		out = append(out, s.m.RawRowView(i)...)
	}
	return out
}

// Range returns the smallest and largest sample.
// An empty field reports (0, 0).
func (s Scalar2) Range() (lo, hi float64) {
	if s.m == nil {
		return 0, 0
	}
	return mat.Min(s.m), mat.Max(s.m)
}

// Vector3 is a vector field sampled on a Grid3.
type Vector3 struct {
	NX, NY, NZ int
	U, V, W    []float64
}

// NewVector3 evaluates f at every sample of g.
func NewVector3(g Grid3, f func(x, y, z float64) (u, v, w float64)) Vector3 {
	n := g.Len()
	vf := Vector3{
		NX: g.NX, NY: g.NY, NZ: g.NZ,
		U: make([]float64, n),
		V: make([]float64, n),
		W: make([]float64, n),
	}
	for k := 0; k < n; k++ {
		vf.U[k], vf.V[k], vf.W[k] = f(g.X[k], g.Y[k], g.Z[k])
	}
	return vf
}

// Len returns the number of samples.
func (vf Vector3) Len() int { return len(vf.U) }

// At returns sample k as a vector.
func (vf Vector3) At(k int) r3.Vec {
	return r3.Vec{X: vf.U[k], Y: vf.V[k], Z: vf.W[k]}
}

// Magnitude returns the Euclidean length of sample k.
func (vf Vector3) Magnitude(k int) float64 {
	return r3.Norm(vf.At(k))
}
