// Package gallery builds the documentation figures: a mountain height
// field drawn as meshes and surfaces, a spiral path up the mountain,
// contour plots of a lower mountain and a radial vector field.
//
// Build creates figures 1 to 8 in a plot3d.Session; Export then selects
// each one by id and writes it under an output directory.
package gallery

import (
	"fmt"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/gogpu/plot3d"
)

// Entry describes one gallery figure.
type Entry struct {
	ID   int
	File string
	Desc string

	build func(f *plot3d.Figure, d *data) error
}

// Entries lists the figures in id order.
var Entries = []Entry{
	{ID: 1, File: "simple_plot_mayavi.png", Desc: "mountain mesh", build: buildSimplePlot},
	{ID: 2, File: "simple_plot_colours_mayavi.png", Desc: "mountain surface with spiral path", build: buildSurfaceWithCurve},
	{ID: 3, File: "subplot.png", Desc: "three meshes side by side", build: buildSubplots},
	{ID: 4, File: "simple_contour_mayavi.png", Desc: "surface with default contours", build: buildSurfaceContours},
	{ID: 5, File: "contour_10levels_mayavi.png", Desc: "ten contour levels", build: buildTenLevels},
	{ID: 6, File: "contour_10levels_black_mayavi.png", Desc: "surface with ten black contours", build: buildTenLevelsBlack},
	{ID: 7, File: "contour_speclevels_mayavi.png", Desc: "explicit contour levels", build: buildExplicitLevels},
	{ID: 8, File: "quiver_mayavi.png", Desc: "radial vector field", build: buildQuiver},
}

// DefaultOutputDir is where Export writes unless told otherwise.
const DefaultOutputDir = "images"

// ExplicitLevels are the contour levels of figure 7.
var ExplicitLevels = []float64{5, 10, 15, 20}

// figureStyle is black on white, as every gallery figure uses.
func figureStyle() []plot3d.FigureOption {
	return []plot3d.FigureOption{
		plot3d.WithForeground(gg.Black),
		plot3d.WithBackground(gg.White),
	}
}

// Build creates all gallery figures in s.
func Build(s *plot3d.Session) error {
	d, err := newData()
	if err != nil {
		return err
	}
	for _, e := range Entries {
		if err := e.build(s.Figure(e.ID, figureStyle()...), d); err != nil {
			return fmt.Errorf("gallery: figure %d (%s): %w", e.ID, e.Desc, err)
		}
		plot3d.Logger().Debug("gallery: figure built", "id", e.ID, "desc", e.Desc)
	}
	return nil
}

// Output records one exported file.
type Output struct {
	ID   int
	Path string
}

// Export saves the figures listed in ids (all entries when ids is empty)
// into dir, in id order. dir must already exist. Export stops at the
// first failure and returns what was written so far.
func Export(s *plot3d.Session, dir string, ids ...int) ([]Output, error) {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Output
	for _, e := range Entries {
		if len(ids) > 0 && !want[e.ID] {
			continue
		}
		path := filepath.Join(dir, e.File)
		if err := s.Save(e.ID, path); err != nil {
			return out, fmt.Errorf("gallery: export figure %d: %w", e.ID, err)
		}
		out = append(out, Output{ID: e.ID, Path: path})
	}
	return out, nil
}

// Lookup returns the entry with the given id.
func Lookup(id int) (Entry, bool) {
	for _, e := range Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
