package gallery

import (
	"math"

	"github.com/gogpu/plot3d/field"
)

// Mountain constants. Figures 1 to 3 use the tall mountain, the contour
// figures 4 to 7 the low one.
const (
	TallHeight = 2277.0
	LowHeight  = 22.77
	Radius     = 4.0
)

// Sampling of the height field: mgrid[-10:10:0.5, -10:10:0.5].
const (
	gridMin  = -10.0
	gridMax  = 10.0
	gridStep = 0.5
)

// CurveSamples is the number of points on the parametric curve.
const CurveSamples = 100

// Height is the mountain profile h0 / (1 + (x^2+y^2)/r^2).
func Height(h0, r, x, y float64) float64 {
	return h0 / (1 + (x*x+y*y)/(r*r))
}

// HeightField samples Height over the gallery lattice.
func HeightField(h0, r float64) (field.Grid2, field.Scalar2, error) {
	g, err := field.MGrid2(gridMin, gridMax, gridStep, gridMin, gridMax, gridStep)
	if err != nil {
		return field.Grid2{}, field.Scalar2{}, err
	}
	h := field.NewScalar2(g, func(x, y float64) float64 {
		return Height(h0, r, x, y)
	})
	return g, h, nil
}

// Curve returns a spiral that climbs the mountain: for s in [0, 2pi] the
// radius shrinks linearly from 10 to 0 while z follows the height profile
// at that radius.
func Curve(h0, r float64, n int) (x, y, z []float64) {
	s := field.Linspace(0, 2*math.Pi, n)
	x = make([]float64, len(s))
	y = make([]float64, len(s))
	z = make([]float64, len(s))
	for k, sk := range s {
		rho := 10 * (1 - sk/(2*math.Pi))
		sin, cos := math.Sincos(sk)
		x[k] = rho * cos
		y[k] = rho * sin
		z[k] = h0 / (1 + rho*rho/(r*r))
	}
	return x, y, z
}

// RadialField samples -p/|p|^3 on an 8x8x8 lattice over [0.5, 2]^3.
func RadialField() (field.Grid3, field.Vector3) {
	axis := field.Linspace(0.5, 2, 8)
	g := field.MeshGrid3(axis, axis, axis)
	vf := field.NewVector3(g, func(x, y, z float64) (float64, float64, float64) {
		r3 := math.Pow(math.Sqrt(x*x+y*y+z*z), 3)
		return -x / r3, -y / r3, -z / r3
	})
	return g, vf
}
