package plot3d

import (
	"fmt"
	"math"

	"github.com/gogpu/plot3d/field"
)

// Quiver draws one arrow per sample of a vector field. It is created by
// Figure.Quiver3D.
type Quiver struct {
	grid   field.Grid3
	vec    field.Vector3
	scale  float64
	mode   GlyphMode
	width  float64
	pal    palette
	place  placement
	lo, hi float64
}

func newQuiver(g field.Grid3, vf field.Vector3, o objectOptions) (*Quiver, error) {
	if g.NX != vf.NX || g.NY != vf.NY || g.NZ != vf.NZ || g.Len() != vf.Len() {
		return nil, fmt.Errorf("%w: grid %dx%dx%d, vectors %dx%dx%d",
			ErrShapeMismatch, g.NX, g.NY, g.NZ, vf.NX, vf.NY, vf.NZ)
	}
	if g.Len() == 0 {
		return nil, ErrEmptyData
	}
	pal, err := o.palette()
	if err != nil {
		return nil, err
	}
	q := &Quiver{
		grid:  g,
		vec:   vf,
		scale: o.scaleFactor,
		mode:  o.mode,
		width: o.lineWidth,
		pal:   pal,
	}
	if q.width <= 0 {
		q.width = 1.5
	}
	q.lo, q.hi = math.Inf(1), math.Inf(-1)
	for k := 0; k < vf.Len(); k++ {
		m := vf.Magnitude(k)
		q.lo, q.hi = math.Min(q.lo, m), math.Max(q.hi, m)
	}
	data := EmptyBox()
	for k := 0; k < g.Len(); k++ {
		tail, d := q.arrow(k)
		data = data.Extend(tail).Extend(tail.Add(d))
	}
	q.place = placement{data: data, extent: o.extent}
	return q, nil
}

// arrow returns the tail of arrow k and its scaled vector.
func (q *Quiver) arrow(k int) (tail, d Vec3) {
	tail = V3(q.grid.X[k], q.grid.Y[k], q.grid.Z[k])
	d = V3(q.vec.U[k], q.vec.V[k], q.vec.W[k]).Mul(q.scale)
	return tail, d
}

// Len returns the number of arrows.
func (q *Quiver) Len() int { return q.grid.Len() }

// Bounds implements Object.
func (q *Quiver) Bounds() Box { return q.place.scene() }

// DataBounds implements Object.
func (q *Quiver) DataBounds() Box { return q.place.data }

func (q *Quiver) primitives(v *view) []primitive {
	prims := make([]primitive, 0, q.grid.Len())
	for k := 0; k < q.grid.Len(); k++ {
		tail, d := q.arrow(k)
		pt, dt := v.project(q.place.apply(tail))
		ph, dh := v.project(q.place.apply(tail.Add(d)))
		prims = append(prims, arrow{
			tail:  pt,
			tip:   ph,
			z:     (dt + dh) / 2,
			col:   q.pal.at(q.vec.Magnitude(k), q.lo, q.hi),
			width: q.width,
			head:  q.mode == ModeArrow,
		})
	}
	return prims
}
