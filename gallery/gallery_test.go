package gallery

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/plot3d"
)

func TestHeightFormula(t *testing.T) {
	g, h, err := HeightField(TallHeight, Radius)
	if err != nil {
		t.Fatal(err)
	}
	if g.NX != 40 || g.NY != 40 {
		t.Fatalf("grid = %dx%d, want 40x40", g.NX, g.NY)
	}
	for i := 0; i < g.NX; i++ {
		for j := 0; j < g.NY; j++ {
			x, y := g.At(i, j)
			want := TallHeight / (1 + (x*x+y*y)/(Radius*Radius))
			if got := h.At(i, j); math.Abs(got-want) > 1e-12*TallHeight {
				t.Fatalf("h(%v, %v) = %v, want %v", x, y, got, want)
			}
		}
	}
	if _, hi := h.Range(); hi != TallHeight {
		t.Errorf("peak = %v, want h0 at the origin", hi)
	}
}

func TestCurveOnMountain(t *testing.T) {
	x, y, z := Curve(TallHeight, Radius, CurveSamples)
	if len(x) != 100 || len(y) != 100 || len(z) != 100 {
		t.Fatalf("lengths = %d/%d/%d, want 100", len(x), len(y), len(z))
	}
	for k := range x {
		want := Height(TallHeight, Radius, x[k], y[k])
		if math.Abs(z[k]-want) > 1e-9*TallHeight {
			t.Errorf("sample %d: z = %v, h(x,y) = %v", k, z[k], want)
		}
	}
	if x[0] != 10 || y[0] != 0 {
		t.Errorf("curve starts at (%v, %v), want (10, 0)", x[0], y[0])
	}
	if r := math.Hypot(x[99], y[99]); r > 1e-12 {
		t.Errorf("curve ends at radius %v, want the summit", r)
	}
}

func TestRadialField(t *testing.T) {
	g, vf := RadialField()
	if g.Len() != 512 || vf.Len() != 512 {
		t.Fatalf("len = %d/%d, want 512", g.Len(), vf.Len())
	}
	for k := 0; k < g.Len(); k++ {
		r := math.Sqrt(g.X[k]*g.X[k] + g.Y[k]*g.Y[k] + g.Z[k]*g.Z[k])
		if m := vf.Magnitude(k); math.Abs(m-1/(r*r)) > 1e-12 {
			t.Fatalf("|v| at %d = %v, want 1/r^2 = %v", k, m, 1/(r*r))
		}
		// Pointing at the origin.
		if d := vf.U[k]*g.X[k] + vf.V[k]*g.Y[k] + vf.W[k]*g.Z[k]; d >= 0 {
			t.Fatalf("vector %d does not point inward", k)
		}
	}
}

func TestDataDeterministic(t *testing.T) {
	a, err := newData()
	if err != nil {
		t.Fatal(err)
	}
	b, err := newData()
	if err != nil {
		t.Fatal(err)
	}
	eq := func(name string, p, q []float64) {
		t.Helper()
		if len(p) != len(q) {
			t.Fatalf("%s: lengths differ", name)
		}
		for i := range p {
			if math.Float64bits(p[i]) != math.Float64bits(q[i]) {
				t.Fatalf("%s[%d]: %v != %v", name, i, p[i], q[i])
			}
		}
	}
	eq("tall", a.tall.Values(), b.tall.Values())
	eq("low", a.low.Values(), b.low.Values())
	eq("curveZ", a.curveZ, b.curveZ)
	eq("U", a.vectors.U, b.vectors.U)
}

func TestBuildCreatesEightFigures(t *testing.T) {
	s := plot3d.NewSession(plot3d.WithSize(80, 70))
	if err := Build(s); err != nil {
		t.Fatalf("Build: %v", err)
	}
	ids := s.IDs()
	if len(ids) != 8 {
		t.Fatalf("IDs = %v, want 1..8", ids)
	}
	wantObjects := map[int]int{1: 1, 2: 2, 3: 5, 4: 2, 5: 1, 6: 2, 7: 1, 8: 1}
	for id, n := range wantObjects {
		f, err := s.Lookup(id)
		if err != nil {
			t.Fatal(err)
		}
		if got := len(f.Objects()); got != n {
			t.Errorf("figure %d has %d objects, want %d", id, got, n)
		}
	}
}

func TestExplicitLevelsFigure(t *testing.T) {
	s := plot3d.NewSession(plot3d.WithSize(80, 70))
	if err := Build(s); err != nil {
		t.Fatal(err)
	}
	f, _ := s.Lookup(7)
	c, ok := f.Objects()[0].(*plot3d.ContourSurface)
	if !ok {
		t.Fatalf("figure 7 object is %T, want *plot3d.ContourSurface", f.Objects()[0])
	}
	got := c.Levels()
	if len(got) != 4 || got[0] != 5 || got[3] != 20 {
		t.Errorf("levels = %v, want [5 10 15 20]", got)
	}

	f5, _ := s.Lookup(5)
	if n := len(f5.Objects()[0].(*plot3d.ContourSurface).Levels()); n != 10 {
		t.Errorf("figure 5 has %d levels, want 10", n)
	}
}

func TestExportWritesOneFilePerFigure(t *testing.T) {
	s := plot3d.NewSession(plot3d.WithSize(80, 70))
	if err := Build(s); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	out, err := Export(s, dir)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(out) != len(Entries) {
		t.Fatalf("exported %d files, want %d", len(out), len(Entries))
	}
	for i, e := range Entries {
		want := filepath.Join(dir, e.File)
		if out[i].ID != e.ID || out[i].Path != want {
			t.Errorf("output %d = %+v, want figure %d at %s", i, out[i], e.ID, want)
		}
		if st, err := os.Stat(want); err != nil || st.Size() == 0 {
			t.Errorf("%s missing or empty: %v", e.File, err)
		}
	}
	files, _ := os.ReadDir(dir)
	if len(files) != 8 {
		t.Errorf("directory holds %d files, want 8", len(files))
	}
}

func TestExportSubset(t *testing.T) {
	s := plot3d.NewSession(plot3d.WithSize(60, 50))
	if err := Build(s); err != nil {
		t.Fatal(err)
	}
	out, err := Export(s, t.TempDir(), 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 8 {
		t.Errorf("Export subset = %+v, want figures 1 and 8 in id order", out)
	}
}

func TestExportMissingDirectory(t *testing.T) {
	s := plot3d.NewSession(plot3d.WithSize(40, 40))
	if err := Build(s); err != nil {
		t.Fatal(err)
	}
	out, err := Export(s, filepath.Join(t.TempDir(), "images"))
	if err == nil {
		t.Fatal("Export into a missing directory should fail")
	}
	if len(out) != 0 {
		t.Errorf("Export reported %d outputs before failing, want 0", len(out))
	}
}

func TestExportUnbuiltSession(t *testing.T) {
	_, err := Export(plot3d.NewSession(), t.TempDir())
	if !errors.Is(err, plot3d.ErrNoFigure) {
		t.Errorf("err = %v, want plot3d.ErrNoFigure", err)
	}
}

func TestRerunIsBitIdentical(t *testing.T) {
	render := func() []byte {
		s := plot3d.NewSession(plot3d.WithSize(90, 80))
		if err := Build(s); err != nil {
			t.Fatal(err)
		}
		f, _ := s.Lookup(2)
		var buf bytes.Buffer
		if err := f.EncodePNG(&buf); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}
	if !bytes.Equal(render(), render()) {
		t.Error("figure 2 differs between runs")
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(8)
	if !ok || e.File != "quiver_mayavi.png" {
		t.Errorf("Lookup(8) = %+v, %v", e, ok)
	}
	if _, ok := Lookup(0); ok {
		t.Error("Lookup(0) should fail")
	}
}

// darkPixels counts pixels that are close to black.
func darkPixels(t *testing.T, f *plot3d.Figure) int {
	t.Helper()
	dc, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := dc.Image()
	b := img.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r>>8 < 64 && g>>8 < 64 && bl>>8 < 64 {
				n++
			}
		}
	}
	return n
}

func TestBlackContoursVisibleOverSurface(t *testing.T) {
	d, err := newData()
	if err != nil {
		t.Fatal(err)
	}

	over := plot3d.NewFigure(6, figureStyle()...)
	if err := buildTenLevelsBlack(over, d); err != nil {
		t.Fatal(err)
	}
	alone := plot3d.NewFigure(6, figureStyle()...)
	if _, err := alone.ContourSurf(d.grid, d.low, plot3d.WithContours(10), plot3d.WithColor(gg.Black)); err != nil {
		t.Fatal(err)
	}

	want := darkPixels(t, alone)
	got := darkPixels(t, over)
	if want == 0 {
		t.Fatal("contours alone drew nothing")
	}
	// Only the far side of the summit may hide contour lines.
	if ratio := float64(got) / float64(want); ratio < 0.6 {
		t.Errorf("contour pixels over the surface = %d of %d (%.0f%%), want at least 60%%",
			got, want, 100*ratio)
	}
}
