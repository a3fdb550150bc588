package gallery

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/plot3d"
	"github.com/gogpu/plot3d/field"
)

// data holds the fields shared by the figures. It is computed once per
// Build and never modified.
type data struct {
	grid field.Grid2
	tall field.Scalar2
	low  field.Scalar2

	curveX, curveY, curveZ []float64

	arrows  field.Grid3
	vectors field.Vector3
}

func newData() (*data, error) {
	g, tall, err := HeightField(TallHeight, Radius)
	if err != nil {
		return nil, err
	}
	_, low, err := HeightField(LowHeight, Radius)
	if err != nil {
		return nil, err
	}
	d := &data{grid: g, tall: tall, low: low}
	d.curveX, d.curveY, d.curveZ = Curve(TallHeight, Radius, CurveSamples)
	d.arrows, d.vectors = RadialField()
	return d, nil
}

var (
	unitCube = plot3d.WithExtent(0, 1, 0, 1, 0, 1)
	grey     = gg.RGB(0.5, 0.5, 0.5)
)

func xyzAxes(f *plot3d.Figure) {
	f.Axes(
		plot3d.WithAxisLabels("x", "y", "z"),
		plot3d.WithNbLabels(5),
		plot3d.WithAxesColor(gg.Black),
	)
}

func buildSimplePlot(f *plot3d.Figure, d *data) error {
	if _, err := f.Mesh(d.grid, d.tall, unitCube); err != nil {
		return err
	}
	xyzAxes(f)
	f.Title("h(x,y)", 0.4)
	return nil
}

func buildSurfaceWithCurve(f *plot3d.Figure, d *data) error {
	if _, err := f.Surf(d.grid, d.tall, unitCube, plot3d.WithColor(grey)); err != nil {
		return err
	}
	if _, err := f.Plot3D(d.curveX, d.curveY, d.curveZ, plot3d.WithTubeRadius(0.2), unitCube); err != nil {
		return err
	}
	xyzAxes(f)
	return nil
}

func buildSubplots(f *plot3d.Figure, d *data) error {
	if _, err := f.Mesh(d.grid, d.tall,
		plot3d.WithExtent(0, 0.25, 0, 0.25, 0, 0.25),
		plot3d.WithColormap("cool"),
	); err != nil {
		return err
	}

	middle, err := f.Mesh(d.grid, d.tall,
		plot3d.WithExtent(0.375, 0.625, 0, 0.25, 0, 0.25),
		plot3d.WithColormap("Accent"),
	)
	if err != nil {
		return err
	}
	if _, err := f.Outline(middle); err != nil {
		return err
	}

	right, err := f.Mesh(d.grid, d.tall,
		plot3d.WithExtent(0.75, 1, 0, 0.25, 0, 0.25),
		plot3d.WithColormap("prism"),
	)
	if err != nil {
		return err
	}
	_, err = f.Outline(right, plot3d.WithColor(grey))
	return err
}

func buildSurfaceContours(f *plot3d.Figure, d *data) error {
	if _, err := f.Surf(d.grid, d.low); err != nil {
		return err
	}
	_, err := f.ContourSurf(d.grid, d.low)
	return err
}

func buildTenLevels(f *plot3d.Figure, d *data) error {
	_, err := f.ContourSurf(d.grid, d.low, plot3d.WithContours(10))
	return err
}

func buildTenLevelsBlack(f *plot3d.Figure, d *data) error {
	if _, err := f.Surf(d.grid, d.low); err != nil {
		return err
	}
	_, err := f.ContourSurf(d.grid, d.low, plot3d.WithContours(10), plot3d.WithColor(gg.Black))
	return err
}

func buildExplicitLevels(f *plot3d.Figure, d *data) error {
	_, err := f.ContourSurf(d.grid, d.low, plot3d.WithLevels(ExplicitLevels...))
	return err
}

func buildQuiver(f *plot3d.Figure, d *data) error {
	if _, err := f.Quiver3D(d.arrows, d.vectors,
		plot3d.WithMode(plot3d.ModeArrow),
		plot3d.WithColormap("jet"),
		plot3d.WithScaleFactor(0.5),
	); err != nil {
		return err
	}
	xyzAxes(f)
	return nil
}
