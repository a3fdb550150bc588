package plot3d

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/plot3d/field"
)

// Surface is a height field drawn as a grid of shaded quads. It is
// created by Figure.Mesh and Figure.Surf.
type Surface struct {
	grid    field.Grid2
	heights field.Scalar2
	warp    float64
	rep     Representation
	pal     palette
	place   placement
	lo, hi  float64
}

func newSurface(g field.Grid2, z field.Scalar2, o objectOptions) (*Surface, error) {
	if g.NX != z.NX || g.NY != z.NY {
		return nil, fmt.Errorf("%w: grid %dx%d, heights %dx%d",
			ErrShapeMismatch, g.NX, g.NY, z.NX, z.NY)
	}
	if g.NX < 2 || g.NY < 2 {
		return nil, fmt.Errorf("%w: surface needs at least 2x2 samples", ErrEmptyData)
	}
	pal, err := o.palette()
	if err != nil {
		return nil, err
	}
	s := &Surface{
		grid:    g,
		heights: z,
		warp:    o.warpScale,
		rep:     o.representation,
		pal:     pal,
	}
	s.lo, s.hi = z.Range()

	data := EmptyBox()
	for i := 0; i < g.NX; i++ {
		for j := 0; j < g.NY; j++ {
			data = data.Extend(s.point(i, j))
		}
	}
	s.place = placement{data: data, extent: o.extent}
	return s, nil
}

// point returns sample (i, j) in data coordinates with the warp applied.
func (s *Surface) point(i, j int) Vec3 {
	x, y := s.grid.At(i, j)
	return V3(x, y, s.heights.At(i, j)*s.warp)
}

// Heights returns the height field the surface was built from.
func (s *Surface) Heights() field.Scalar2 { return s.heights }

// Bounds implements Object.
func (s *Surface) Bounds() Box { return s.place.scene() }

// DataBounds implements Object.
func (s *Surface) DataBounds() Box { return s.place.data }

func (s *Surface) primitives(v *view) []primitive {
	g := s.grid
	prims := make([]primitive, 0, (g.NX-1)*(g.NY-1))
	for i := 0; i+1 < g.NX; i++ {
		for j := 0; j+1 < g.NY; j++ {
			corners := [4]Vec3{
				s.place.apply(s.point(i, j)),
				s.place.apply(s.point(i+1, j)),
				s.place.apply(s.point(i+1, j+1)),
				s.place.apply(s.point(i, j+1)),
			}
			mean := (s.heights.At(i, j) + s.heights.At(i+1, j) +
				s.heights.At(i+1, j+1) + s.heights.At(i, j+1)) / 4
			base := s.pal.at(mean, s.lo, s.hi)

			centroid := corners[0].Add(corners[1]).Add(corners[2]).Add(corners[3]).Mul(0.25)
			_, z := v.project(centroid)

			pts := make([]gg.Point, 4)
			for k, c := range corners {
				pts[k], _ = v.project(c)
			}

			if s.rep == RepresentationWireframe {
				for k := 0; k < 4; k++ {
					prims = append(prims, line{
						a: pts[k], b: pts[(k+1)%4], z: z,
						col: base, width: 1,
					})
				}
				continue
			}

			normal := corners[2].Sub(corners[0]).Cross(corners[3].Sub(corners[1]))
			prims = append(prims, polygon{
				pts:   pts,
				z:     z,
				fill:  v.shade(normal, base),
				seams: true,
			})
		}
	}
	return prims
}
