package plot3d

import (
	"fmt"
	"math"

	"github.com/gogpu/plot3d/contour"
	"github.com/gogpu/plot3d/field"
)

// ContourSurface draws the iso-lines of a height field, each lifted to
// the height of its level. It is created by Figure.ContourSurf.
type ContourSurface struct {
	grid     field.Grid2
	heights  field.Scalar2
	levels   []float64
	segments []contour.Segment
	warp     float64
	width    float64
	pal      palette
	place    placement
	lo, hi   float64
}

func newContourSurface(g field.Grid2, z field.Scalar2, o objectOptions) (*ContourSurface, error) {
	if g.NX != z.NX || g.NY != z.NY {
		return nil, fmt.Errorf("%w: grid %dx%d, heights %dx%d",
			ErrShapeMismatch, g.NX, g.NY, z.NX, z.NY)
	}
	if g.Len() == 0 {
		return nil, ErrEmptyData
	}
	pal, err := o.palette()
	if err != nil {
		return nil, err
	}

	c := &ContourSurface{
		grid:    g,
		heights: z,
		warp:    o.warpScale,
		width:   o.lineWidth,
		pal:     pal,
	}
	if c.width <= 0 {
		c.width = 2
	}
	c.lo, c.hi = z.Range()

	if o.levels != nil {
		c.levels = append([]float64(nil), o.levels...)
	} else {
		c.levels = contour.Levels(c.lo, c.hi, o.contours)
	}
	c.segments, err = contour.Lines(g, z, c.levels)
	if err != nil {
		return nil, err
	}

	data := EmptyBox()
	for k := 0; k < g.Len(); k++ {
		i, j := k/g.NY, k%g.NY
		data = data.Extend(V3(g.X[k], g.Y[k], z.At(i, j)*c.warp))
	}
	c.place = placement{data: data, extent: o.extent}
	return c, nil
}

// Levels returns the contour levels in drawing order.
func (c *ContourSurface) Levels() []float64 {
	return append([]float64(nil), c.levels...)
}

// Segments returns the iso-line segments in data coordinates.
func (c *ContourSurface) Segments() []contour.Segment {
	return append([]contour.Segment(nil), c.segments...)
}

// Heights returns the height field the contours were traced on.
func (c *ContourSurface) Heights() field.Scalar2 { return c.heights }

// Bounds implements Object.
func (c *ContourSurface) Bounds() Box { return c.place.scene() }

// DataBounds implements Object.
func (c *ContourSurface) DataBounds() Box { return c.place.data }

func (c *ContourSurface) primitives(v *view) []primitive {
	depths := c.latticeDepths(v)
	prims := make([]primitive, 0, len(c.segments))
	for _, s := range c.segments {
		z := s.Level * c.warp
		a := c.place.apply(V3(s.X0, s.Y0, z))
		b := c.place.apply(V3(s.X1, s.Y1, z))
		pa, da := v.project(a)
		pb, db := v.project(b)
		prims = append(prims, line{
			a:     pa,
			b:     pb,
			z:     max((da+db)/2, c.cellDepth(depths, s.I, s.J)),
			col:   c.pal.at(s.Level, c.lo, c.hi),
			width: c.width,
			round: true,
			lay:   layerOnSurface,
		})
	}
	return prims
}

// latticeDepths returns the view depth of every sample of the height field.
func (c *ContourSurface) latticeDepths(v *view) []float64 {
	g := c.grid
	depths := make([]float64, g.Len())
	for k := range depths {
		i, j := k/g.NY, k%g.NY
		_, depths[k] = v.project(c.place.apply(V3(g.X[k], g.Y[k], c.heights.At(i, j)*c.warp)))
	}
	return depths
}

// cellDepth returns the largest sample depth around cell (i, j) and its
// eight neighbours. A segment drawn at that depth sorts after every face
// of the surface it lies on near that cell.
func (c *ContourSurface) cellDepth(depths []float64, i, j int) float64 {
	g := c.grid
	d := math.Inf(-1)
	for a := max(i-1, 0); a <= min(i+2, g.NX-1); a++ {
		for b := max(j-1, 0); b <= min(j+2, g.NY-1); b++ {
			d = max(d, depths[a*g.NY+b])
		}
	}
	return d
}
