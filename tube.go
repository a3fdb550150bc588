package plot3d

import (
	"fmt"
	"math"
)

// Tube is a parametric curve drawn with a thickness. It is created by
// Figure.Plot3D.
type Tube struct {
	x, y, z []float64
	radius  float64
	pal     palette
	place   placement
	lo, hi  float64
}

func newTube(x, y, z []float64, o objectOptions) (*Tube, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return nil, fmt.Errorf("%w: x has %d points, y %d, z %d",
			ErrShapeMismatch, len(x), len(y), len(z))
	}
	if len(x) == 0 {
		return nil, ErrEmptyData
	}
	pal, err := o.palette()
	if err != nil {
		return nil, err
	}
	t := &Tube{
		x:      append([]float64(nil), x...),
		y:      append([]float64(nil), y...),
		z:      append([]float64(nil), z...),
		radius: o.tubeRadius,
		pal:    pal,
	}
	t.lo, t.hi = math.Inf(1), math.Inf(-1)
	for _, v := range z {
		t.lo, t.hi = math.Min(t.lo, v), math.Max(t.hi, v)
	}
	t.place = placement{data: dataBounds(t.x, t.y, t.z), extent: o.extent}
	return t, nil
}

// Len returns the number of curve samples.
func (t *Tube) Len() int { return len(t.x) }

// Bounds implements Object.
func (t *Tube) Bounds() Box { return t.place.scene() }

// DataBounds implements Object.
func (t *Tube) DataBounds() Box { return t.place.data }

func (t *Tube) primitives(v *view) []primitive {
	width := math.Max(1, 2*v.pixels(t.radius*t.place.lengthScale()))
	if len(t.x) == 1 {
		p, d := v.project(t.place.apply(V3(t.x[0], t.y[0], t.z[0])))
		return []primitive{line{a: p, b: p, z: d, col: t.pal.at(t.z[0], t.lo, t.hi), width: width, round: true}}
	}
	prims := make([]primitive, 0, len(t.x)-1)
	for k := 0; k+1 < len(t.x); k++ {
		a := t.place.apply(V3(t.x[k], t.y[k], t.z[k]))
		b := t.place.apply(V3(t.x[k+1], t.y[k+1], t.z[k+1]))
		pa, da := v.project(a)
		pb, db := v.project(b)
		prims = append(prims, line{
			a:     pa,
			b:     pb,
			z:     (da + db) / 2,
			col:   t.pal.at((t.z[k]+t.z[k+1])/2, t.lo, t.hi),
			width: width,
			round: true,
		})
	}
	return prims
}
