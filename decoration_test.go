package plot3d

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestNameOffsetClearsLastTick(t *testing.T) {
	const tickW, nameW, h = 24.0, 8.0, 12.0
	tests := []struct {
		name string
		u    gg.Point
	}{
		{"horizontal", gg.Pt(1, 0)},
		{"vertical", gg.Pt(0, -1)},
		{"shallow", gg.Pt(math.Cos(0.3), math.Sin(0.3))},
		{"steep", gg.Pt(math.Cos(1.2), -math.Sin(1.2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := nameOffset(tt.u, tickW, nameW, h)
			dx, dy := math.Abs(tt.u.X*d), math.Abs(tt.u.Y*d)
			// Two centered boxes are disjoint when separated on either axis.
			if dx < (tickW+nameW)/2-1e-9 && dy < h-1e-9 {
				t.Errorf("offset %v leaves boxes overlapping (dx=%v, dy=%v)", d, dx, dy)
			}
		})
	}
	if d := nameOffset(gg.Pt(0, 0), tickW, nameW, h); d != 0 {
		t.Errorf("degenerate direction offset = %v, want 0", d)
	}
}

func TestAxesRenderNames(t *testing.T) {
	g := testGrid(t)
	f := NewFigure(1, WithForeground(gg.Black), WithBackground(gg.White), WithSize(300, 260))
	if _, err := f.Mesh(g, bump(g), WithExtent(0, 1, 0, 1, 0, 1)); err != nil {
		t.Fatal(err)
	}
	f.Axes(WithAxisLabels("x", "y", "z"), WithNbLabels(5))
	if _, err := f.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
}
