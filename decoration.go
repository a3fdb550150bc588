package plot3d

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Outline is the wireframe bounding box of another object.
type Outline struct {
	target Object
	col    *gg.RGBA
	width  float64
}

// Bounds implements Object.
func (o *Outline) Bounds() Box { return o.target.Bounds() }

// DataBounds implements Object.
func (o *Outline) DataBounds() Box { return o.target.DataBounds() }

// boxEdges lists the corner pairs of the twelve edges of a box, using
// the corner numbering of Box.Corners.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func (o *Outline) primitives(v *view) []primitive {
	col := v.fg
	if o.col != nil {
		col = *o.col
	}
	corners := o.target.Bounds().Corners()
	prims := make([]primitive, 0, len(boxEdges))
	for _, e := range boxEdges {
		a, da := v.project(corners[e[0]])
		b, db := v.project(corners[e[1]])
		prims = append(prims, line{a: a, b: b, z: (da + db) / 2, col: col, width: o.width})
	}
	return prims
}

// overlay is drawn after all objects, on top of the scene.
type overlay interface {
	drawOverlay(dc *gg.Context, v *view) error
}

// AxesOption configures Figure.Axes.
type AxesOption func(*Axes)

// WithAxisLabels sets the names written at the end of each axis.
func WithAxisLabels(x, y, z string) AxesOption {
	return func(a *Axes) {
		a.labels = [3]string{x, y, z}
	}
}

// WithNbLabels sets the number of tick labels on each axis.
func WithNbLabels(n int) AxesOption {
	return func(a *Axes) {
		a.nbLabels = n
	}
}

// WithAxesColor sets the color of axis lines and text. By default the
// figure foreground is used.
func WithAxesColor(c gg.RGBA) AxesOption {
	return func(a *Axes) {
		a.col = &c
	}
}

// Axes draws three labeled edges of the figure's scene box with tick
// values in data units.
type Axes struct {
	labels   [3]string
	nbLabels int
	col      *gg.RGBA
}

// axisTickLen is the tick mark length in pixels.
const axisTickLen = 4

func (a *Axes) drawOverlay(dc *gg.Context, v *view) error {
	if v.scene.IsEmpty() {
		return nil
	}
	col := v.fg
	if a.col != nil {
		col = *a.col
	}
	size := labelSize(v.height)
	face, err := labelFace(size)
	if err != nil {
		return err
	}
	dc.SetFont(face)
	dc.SetColor(col)
	dc.SetLineWidth(1)
	dc.SetLineCap(gg.LineCapButt)

	origin := v.scene.Min
	scene := v.scene.Size()
	data := v.data.Size()
	center, _ := v.project(v.scene.Center())

	for axis := 0; axis < 3; axis++ {
		dir := axisVec(axis)
		end := origin.Add(dir.Mul(component(scene, axis)))
		p0, _ := v.project(origin)
		p1, _ := v.project(end)
		dc.MoveTo(p0.X, p0.Y)
		dc.LineTo(p1.X, p1.Y)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("plot3d: draw axis: %w", err)
		}

		// Labels go on the side of the edge away from the scene center.
		mid := p0.Add(p1).Mul(0.5)
		out := mid.Sub(center)
		if l := out.Length(); l > 0 {
			out = out.Div(l)
		} else {
			out = gg.Pt(0, 1)
		}

		n := a.nbLabels
		var lastW float64
		for k := 0; k < n; k++ {
			t := 0.0
			if n > 1 {
				t = float64(k) / float64(n-1)
			}
			p, _ := v.project(origin.Lerp(end, t))
			tick := p.Add(out.Mul(axisTickLen))
			dc.MoveTo(p.X, p.Y)
			dc.LineTo(tick.X, tick.Y)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("plot3d: draw tick: %w", err)
			}
			value := component(v.data.Min, axis) + t*component(data, axis)
			label := formatTick(value, component(data, axis))
			at := p.Add(out.Mul(axisTickLen + size))
			dc.DrawStringAnchored(label, at.X, at.Y, 0.5, 0.5)
			lastW, _ = dc.MeasureString(label)
		}

		if name := a.labels[axis]; name != "" {
			along := gg.Pt(1, 0)
			if l := p1.Distance(p0); l > 0 {
				along = p1.Sub(p0).Div(l)
			}
			nameW, h := dc.MeasureString(name)
			d := nameOffset(along, lastW, nameW, h) + size/2
			at := p1.Add(out.Mul(axisTickLen + size)).Add(along.Mul(d))
			dc.DrawStringAnchored(name, at.X, at.Y, 0.5, 0.5)
		}
	}
	return nil
}

// nameOffset returns how far along the unit edge direction u an axis name
// of width nameW must move from the last tick label, of width tickW, so
// that the two text boxes of height h no longer overlap.
func nameOffset(u gg.Point, tickW, nameW, h float64) float64 {
	d := math.Inf(1)
	if ux := math.Abs(u.X); ux > 0 {
		d = (tickW + nameW) / 2 / ux
	}
	if uy := math.Abs(u.Y); uy > 0 {
		d = math.Min(d, h/uy)
	}
	if math.IsInf(d, 1) {
		return 0
	}
	return d
}

func axisVec(axis int) Vec3 {
	switch axis {
	case 0:
		return V3(1, 0, 0)
	case 1:
		return V3(0, 1, 0)
	default:
		return V3(0, 0, 1)
	}
}

func component(p Vec3, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// labelSize returns the axis label font size for a figure height.
func labelSize(height int) float64 {
	return max(8, float64(height)/32)
}

// Title is text centered at the top of the figure.
type Title struct {
	text string
	size float64
}

// fontSize returns the title font size for a figure height. A size of 1
// makes the text a fifth of the figure height.
func (t *Title) fontSize(height int) float64 {
	return max(6, t.size*float64(height)/5)
}

func (t *Title) drawOverlay(dc *gg.Context, v *view) error {
	if t.text == "" {
		return nil
	}
	size := t.fontSize(v.height)
	face, err := labelFace(size)
	if err != nil {
		return err
	}
	dc.SetFont(face)
	dc.SetColor(v.fg)
	baseline := titleTop(v.height) + face.Metrics().Ascent
	dc.DrawStringAnchored(t.text, float64(v.width)/2, baseline, 0.5, 0)
	return nil
}

// titleTop returns the pixel row where the title's ascent starts.
func titleTop(height int) float64 {
	return float64(height) * viewMargin / 2
}
