package plot3d

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/plot3d/field"
)

// Figure is a numbered canvas holding plotted objects and decorations.
//
// A Figure is built up by calls such as Mesh, Surf and Axes and rendered
// on demand by Render, SavePNG or EncodePNG. Rendering does not modify the
// figure, so a figure can be rendered any number of times with identical
// results.
type Figure struct {
	id       int
	opts     figureOptions
	objects  []Object
	overlays []overlay
}

// NewFigure creates an empty figure.
func NewFigure(id int, opts ...FigureOption) *Figure {
	o := defaultFigureOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Figure{id: id, opts: o}
}

// ID returns the figure number.
func (f *Figure) ID() int { return f.id }

// Size returns the rendered image size in pixels.
func (f *Figure) Size() (width, height int) { return f.opts.width, f.opts.height }

// Objects returns the plotted objects in creation order.
func (f *Figure) Objects() []Object {
	return append([]Object(nil), f.objects...)
}

func (f *Figure) add(obj Object) {
	f.objects = append(f.objects, obj)
}

// Mesh plots the height field z over the lattice g as a shaded surface.
func (f *Figure) Mesh(g field.Grid2, z field.Scalar2, opts ...ObjectOption) (*Surface, error) {
	s, err := newSurface(g, z, applyObjectOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("plot3d: mesh: %w", err)
	}
	f.add(s)
	return s, nil
}

// Surf plots the height field z over the lattice g, scaling heights by
// the warp scale (WithWarpScale, default 1).
func (f *Figure) Surf(g field.Grid2, z field.Scalar2, opts ...ObjectOption) (*Surface, error) {
	o := applyObjectOptions(opts)
	o.representation = RepresentationSurface
	s, err := newSurface(g, z, o)
	if err != nil {
		return nil, fmt.Errorf("plot3d: surf: %w", err)
	}
	f.add(s)
	return s, nil
}

// ContourSurf plots iso-lines of z, each at the height of its level.
// Levels come from WithLevels, or WithContours for an evenly spaced
// count (default contour.DefaultCount).
func (f *Figure) ContourSurf(g field.Grid2, z field.Scalar2, opts ...ObjectOption) (*ContourSurface, error) {
	c, err := newContourSurface(g, z, applyObjectOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("plot3d: contour_surf: %w", err)
	}
	f.add(c)
	return c, nil
}

// Plot3D plots the curve through (x[k], y[k], z[k]) as a tube of radius
// WithTubeRadius.
func (f *Figure) Plot3D(x, y, z []float64, opts ...ObjectOption) (*Tube, error) {
	t, err := newTube(x, y, z, applyObjectOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("plot3d: plot3d: %w", err)
	}
	f.add(t)
	return t, nil
}

// Quiver3D plots one arrow per sample of vf, anchored at the matching
// sample of g.
func (f *Figure) Quiver3D(g field.Grid3, vf field.Vector3, opts ...ObjectOption) (*Quiver, error) {
	q, err := newQuiver(g, vf, applyObjectOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("plot3d: quiver3d: %w", err)
	}
	f.add(q)
	return q, nil
}

// Outline draws the bounding box of obj. Only WithColor and WithLineWidth
// apply; the default color is the figure foreground.
func (f *Figure) Outline(obj Object, opts ...ObjectOption) (*Outline, error) {
	if obj == nil {
		return nil, fmt.Errorf("plot3d: outline: %w", ErrNilObject)
	}
	o := applyObjectOptions(opts)
	out := &Outline{target: obj, col: o.color, width: o.lineWidth}
	if out.width <= 0 {
		out.width = 1
	}
	f.add(out)
	return out, nil
}

// Axes adds labeled axes around everything plotted in the figure.
func (f *Figure) Axes(opts ...AxesOption) *Axes {
	a := &Axes{nbLabels: 2}
	for _, opt := range opts {
		opt(a)
	}
	f.overlays = append(f.overlays, a)
	return a
}

// Title adds a caption at the top of the figure. size scales the text
// with the figure height.
func (f *Figure) Title(text string, size float64) *Title {
	t := &Title{text: text, size: size}
	f.overlays = append(f.overlays, t)
	return t
}

// bounds returns the union of all objects' scene and data bounds.
func (f *Figure) bounds() (scene, data Box) {
	scene, data = EmptyBox(), EmptyBox()
	for _, obj := range f.objects {
		scene = scene.Union(obj.Bounds())
		data = data.Union(obj.DataBounds())
	}
	if scene.IsEmpty() {
		scene, data = Box{}, Box{}
	}
	return scene, data
}

// titleSpace returns the pixels reserved above the scene for titles.
func (f *Figure) titleSpace() float64 {
	var top float64
	for _, ov := range f.overlays {
		if t, ok := ov.(*Title); ok && t.text != "" {
			top = max(top, 1.4*t.fontSize(f.opts.height))
		}
	}
	return top
}

// Render rasterizes the figure onto a new context.
func (f *Figure) Render() (*gg.Context, error) {
	dc := gg.NewContext(f.opts.width, f.opts.height)
	dc.ClearWithColor(f.opts.bg)

	scene, data := f.bounds()
	v := newView(f.opts, scene, data, f.titleSpace())

	var prims []primitive
	for _, obj := range f.objects {
		prims = append(prims, obj.primitives(v)...)
	}
	sortPrimitives(prims)
	for _, p := range prims {
		if err := p.draw(dc); err != nil {
			return nil, fmt.Errorf("plot3d: figure %d: %w", f.id, err)
		}
	}
	for _, ov := range f.overlays {
		if err := ov.drawOverlay(dc, v); err != nil {
			return nil, fmt.Errorf("plot3d: figure %d: %w", f.id, err)
		}
	}

	Logger().Debug("plot3d: figure rendered",
		"id", f.id,
		"objects", len(f.objects),
		"primitives", len(prims),
		"width", f.opts.width,
		"height", f.opts.height)
	return dc, nil
}

// EncodePNG renders the figure and writes it to w as PNG.
func (f *Figure) EncodePNG(w io.Writer) error {
	dc, err := f.Render()
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("plot3d: figure %d: encode png: %w", f.id, err)
	}
	return nil
}

// SavePNG renders the figure and writes it to path. The parent directory
// must already exist.
func (f *Figure) SavePNG(path string) error {
	dc, err := f.Render()
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("plot3d: figure %d: save %s: %w", f.id, path, err)
	}
	Logger().Info("plot3d: figure saved", "id", f.id, "path", path)
	return nil
}
