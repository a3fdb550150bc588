package plot3d

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/plot3d/colormap"
	"github.com/gogpu/plot3d/contour"
)

// FigureOption configures a Figure during creation.
//
// Example:
//
//	fig := plot3d.NewFigure(1,
//	    plot3d.WithForeground(gg.Black),
//	    plot3d.WithBackground(gg.White),
//	)
type FigureOption func(*figureOptions)

type figureOptions struct {
	width, height int
	fg, bg        gg.RGBA
	camera        Camera
}

// Default figure size in pixels.
const (
	DefaultWidth  = 400
	DefaultHeight = 350
)

func defaultFigureOptions() figureOptions {
	return figureOptions{
		width:  DefaultWidth,
		height: DefaultHeight,
		fg:     gg.White,
		bg:     gg.RGB(0.5, 0.5, 0.5),
		camera: DefaultCamera(),
	}
}

// WithForeground sets the color used for outlines, axes and text.
func WithForeground(c gg.RGBA) FigureOption {
	return func(o *figureOptions) {
		o.fg = c
	}
}

// WithBackground sets the color the figure is cleared with.
func WithBackground(c gg.RGBA) FigureOption {
	return func(o *figureOptions) {
		o.bg = c
	}
}

// WithSize sets the rendered image size in pixels. Non-positive values
// are ignored.
func WithSize(width, height int) FigureOption {
	return func(o *figureOptions) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithCamera sets the viewing direction.
func WithCamera(c Camera) FigureOption {
	return func(o *figureOptions) {
		o.camera = c
	}
}

// Representation selects how a mesh is drawn.
type Representation int

const (
	// RepresentationSurface fills every cell.
	RepresentationSurface Representation = iota
	// RepresentationWireframe strokes cell edges only.
	RepresentationWireframe
)

// GlyphMode selects how a quiver draws each vector.
type GlyphMode int

const (
	// ModeArrow draws a shaft with a filled head.
	ModeArrow GlyphMode = iota
	// ModeLine draws the shaft only.
	ModeLine
)

// ObjectOption configures a plotted object. Options that do not apply to
// an object are ignored by it.
type ObjectOption func(*objectOptions)

type objectOptions struct {
	extent         *Box
	colormap       string
	color          *gg.RGBA
	representation Representation
	warpScale      float64
	contours       int
	levels         []float64
	lineWidth      float64
	tubeRadius     float64
	scaleFactor    float64
	mode           GlyphMode
}

func defaultObjectOptions() objectOptions {
	return objectOptions{
		colormap:    colormap.Default,
		warpScale:   1,
		contours:    contour.DefaultCount,
		tubeRadius:  0.025,
		scaleFactor: 1,
		mode:        ModeArrow,
	}
}

func applyObjectOptions(opts []ObjectOption) objectOptions {
	o := defaultObjectOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithExtent maps the object's data bounds onto the box
// (xmin, xmax, ymin, ymax, zmin, zmax).
func WithExtent(xmin, xmax, ymin, ymax, zmin, zmax float64) ObjectOption {
	return func(o *objectOptions) {
		b := Extent(xmin, xmax, ymin, ymax, zmin, zmax)
		o.extent = &b
	}
}

// WithColormap names the lookup table used to color scalars.
func WithColormap(name string) ObjectOption {
	return func(o *objectOptions) {
		o.colormap = name
	}
}

// WithColor paints the object in a single color instead of a colormap.
func WithColor(c gg.RGBA) ObjectOption {
	return func(o *objectOptions) {
		o.color = &c
	}
}

// WithRepresentation selects surface or wireframe drawing for meshes.
func WithRepresentation(r Representation) ObjectOption {
	return func(o *objectOptions) {
		o.representation = r
	}
}

// WithWarpScale multiplies heights before they are placed on the z axis.
func WithWarpScale(s float64) ObjectOption {
	return func(o *objectOptions) {
		o.warpScale = s
	}
}

// WithContours requests n evenly spaced contour levels.
func WithContours(n int) ObjectOption {
	return func(o *objectOptions) {
		o.contours = n
		o.levels = nil
	}
}

// WithLevels requests contours at exactly the given levels.
func WithLevels(levels ...float64) ObjectOption {
	return func(o *objectOptions) {
		o.levels = append([]float64(nil), levels...)
	}
}

// WithLineWidth sets the stroke width in pixels for line objects.
func WithLineWidth(w float64) ObjectOption {
	return func(o *objectOptions) {
		o.lineWidth = w
	}
}

// WithTubeRadius sets the radius of a Plot3D tube in data units.
func WithTubeRadius(r float64) ObjectOption {
	return func(o *objectOptions) {
		o.tubeRadius = r
	}
}

// WithScaleFactor scales quiver arrow lengths.
func WithScaleFactor(s float64) ObjectOption {
	return func(o *objectOptions) {
		o.scaleFactor = s
	}
}

// WithMode selects the quiver glyph.
func WithMode(m GlyphMode) ObjectOption {
	return func(o *objectOptions) {
		o.mode = m
	}
}

// palette resolves the object's fixed color or its colormap.
func (o objectOptions) palette() (palette, error) {
	if o.color != nil {
		return palette{fixed: o.color}, nil
	}
	cmap, err := colormap.Lookup(o.colormap)
	if err != nil {
		return palette{}, err
	}
	return palette{cmap: cmap}, nil
}

// palette colors scalars either with one fixed color or a colormap.
type palette struct {
	fixed *gg.RGBA
	cmap  *colormap.Colormap
}

func (p palette) at(v, lo, hi float64) gg.RGBA {
	if p.fixed != nil {
		return *p.fixed
	}
	return p.cmap.Normalized(v, lo, hi)
}
