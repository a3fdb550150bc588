package plot3d

import (
	"cmp"
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// Fraction of the figure left free around the projected scene.
const viewMargin = 0.08

// view holds everything needed to turn scene points into pixels for one
// render of a figure.
type view struct {
	right, up, toward Vec3

	center Vec3
	scale  float64
	cx, cy float64

	width, height int
	fg, bg        gg.RGBA

	scene Box
	data  Box
}

// newView fits the projection of scene into the figure, leaving top
// pixels free above it for a title.
func newView(o figureOptions, scene, data Box, top float64) *view {
	right, up, toward := o.camera.basis()
	v := &view{
		right:  right,
		up:     up,
		toward: toward,
		center: scene.Center(),
		width:  o.width,
		height: o.height,
		fg:     o.fg,
		bg:     o.bg,
		scene:  scene,
		data:   data,
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range scene.Corners() {
		q := c.Sub(v.center)
		sx, sy := q.Dot(right), q.Dot(up)
		minX, maxX = math.Min(minX, sx), math.Max(maxX, sx)
		minY, maxY = math.Min(minY, sy), math.Max(maxY, sy)
	}

	availW := float64(o.width) * (1 - 2*viewMargin)
	availH := float64(o.height)*(1-2*viewMargin) - top
	spanX, spanY := maxX-minX, maxY-minY
	switch {
	case spanX > 0 && spanY > 0:
		v.scale = math.Min(availW/spanX, availH/spanY)
	case spanX > 0:
		v.scale = availW / spanX
	case spanY > 0:
		v.scale = availH / spanY
	default:
		v.scale = 1
	}

	v.cx = float64(o.width)/2 - v.scale*(minX+maxX)/2
	v.cy = (float64(o.height)+top)/2 + v.scale*(minY+maxY)/2
	return v
}

// project returns the pixel position of p and its depth. Larger depth is
// closer to the viewer.
func (v *view) project(p Vec3) (gg.Point, float64) {
	q := p.Sub(v.center)
	return gg.Pt(v.cx+v.scale*q.Dot(v.right), v.cy-v.scale*q.Dot(v.up)), q.Dot(v.toward)
}

// pixels converts a scene length into pixels.
func (v *view) pixels(l float64) float64 {
	return l * v.scale
}

// shade applies a headlight to base for a face with normal n.
func (v *view) shade(n Vec3, base gg.RGBA) gg.RGBA {
	d := math.Abs(n.Normalize().Dot(v.toward))
	k := 0.35 + 0.65*d
	return gg.RGBA{R: base.R * k, G: base.G * k, B: base.B * k, A: base.A}
}

// Draw layers break depth ties. Lines lying on a surface are drawn over
// faces at the same depth.
const (
	layerFace = iota
	layerOnSurface
)

// primitive is a flat, depth-sorted drawing operation.
type primitive interface {
	depth() float64
	layer() int
	draw(dc *gg.Context) error
}

// sortPrimitives orders prims back to front, then by layer. The sort is
// stable so equal keys keep creation order and renders stay deterministic.
func sortPrimitives(prims []primitive) {
	slices.SortStableFunc(prims, func(a, b primitive) int {
		return cmp.Or(
			cmp.Compare(a.depth(), b.depth()),
			cmp.Compare(a.layer(), b.layer()),
		)
	})
}

// polygon is a filled face, optionally stroked in its own color to close
// anti-aliasing seams between neighbours.
type polygon struct {
	pts   []gg.Point
	z     float64
	fill  gg.RGBA
	seams bool
}

func (p polygon) depth() float64 { return p.z }
func (p polygon) layer() int { return layerFace }

func (p polygon) draw(dc *gg.Context) error {
	tracePolygon(dc, p.pts)
	dc.SetColor(p.fill)
	if !p.seams {
		return dc.Fill()
	}
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetLineWidth(0.75)
	dc.SetLineJoin(gg.LineJoinRound)
	return dc.Stroke()
}

// line is a stroked segment.
type line struct {
	a, b  gg.Point
	z     float64
	col   gg.RGBA
	width float64
	round bool
	lay   int
}

func (l line) depth() float64 { return l.z }
func (l line) layer() int { return l.lay }

func (l line) draw(dc *gg.Context) error {
	if l.round {
		dc.SetLineCap(gg.LineCapRound)
	} else {
		dc.SetLineCap(gg.LineCapButt)
	}
	dc.SetColor(l.col)
	dc.SetLineWidth(l.width)
	dc.MoveTo(l.a.X, l.a.Y)
	dc.LineTo(l.b.X, l.b.Y)
	return dc.Stroke()
}

// arrow is a shaft from tail to tip with an optional filled head.
type arrow struct {
	tail, tip gg.Point
	z         float64
	col       gg.RGBA
	width     float64
	head      bool
}

func (a arrow) depth() float64 { return a.z }
func (a arrow) layer() int { return layerFace }

func (a arrow) draw(dc *gg.Context) error {
	dir := a.tip.Sub(a.tail)
	n := dir.Length()
	if n == 0 {
		return nil
	}
	dc.SetColor(a.col)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineWidth(a.width)

	if !a.head {
		dc.MoveTo(a.tail.X, a.tail.Y)
		dc.LineTo(a.tip.X, a.tip.Y)
		return dc.Stroke()
	}

	headLen := math.Max(0.35*n, 2*a.width)
	if headLen > n {
		headLen = n
	}
	u := dir.Div(n)
	perp := gg.Pt(-u.Y, u.X)
	base := a.tip.Sub(u.Mul(headLen))
	half := headLen * 0.45

	if headLen < n {
		dc.MoveTo(a.tail.X, a.tail.Y)
		dc.LineTo(base.X, base.Y)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	tracePolygon(dc, []gg.Point{
		a.tip,
		base.Add(perp.Mul(half)),
		base.Sub(perp.Mul(half)),
	})
	return dc.Fill()
}

func tracePolygon(dc *gg.Context, pts []gg.Point) {
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.ClosePath()
}
