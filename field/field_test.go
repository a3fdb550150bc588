package field

import (
	"errors"
	"math"
	"testing"
)

func TestArange(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step float64
		wantLen           int
		wantFirst         float64
		wantLast          float64
	}{
		{"mgrid axis", -10, 10, 0.5, 40, -10, 9.5},
		{"unit", 0, 3, 1, 3, 0, 2},
		{"partial step", 0, 1, 0.3, 4, 0, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Arange(tt.start, tt.stop, tt.step)
			if err != nil {
				t.Fatalf("Arange: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if got[0] != tt.wantFirst {
				t.Errorf("first = %v, want %v", got[0], tt.wantFirst)
			}
			if math.Abs(got[len(got)-1]-tt.wantLast) > 1e-12 {
				t.Errorf("last = %v, want %v", got[len(got)-1], tt.wantLast)
			}
		})
	}
}

func TestArangeErrors(t *testing.T) {
	if _, err := Arange(0, 1, 0); !errors.Is(err, ErrBadStep) {
		t.Errorf("zero step: err = %v, want ErrBadStep", err)
	}
	if _, err := Arange(0, 1, -1); !errors.Is(err, ErrBadStep) {
		t.Errorf("negative step: err = %v, want ErrBadStep", err)
	}
	if _, err := Arange(1, 1, 0.5); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("empty range: err = %v, want ErrEmptyRange", err)
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(0.5, 2, 8)
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	if got[0] != 0.5 || got[7] != 2 {
		t.Errorf("ends = (%v, %v), want (0.5, 2)", got[0], got[7])
	}
	for k := 1; k < len(got); k++ {
		if d := got[k] - got[k-1]; math.Abs(d-1.5/7) > 1e-12 {
			t.Errorf("step %d = %v, want %v", k, d, 1.5/7)
		}
	}

	if Linspace(0, 1, 0) != nil {
		t.Error("Linspace(n=0) should be nil")
	}
	if one := Linspace(3, 9, 1); len(one) != 1 || one[0] != 3 {
		t.Errorf("Linspace(n=1) = %v, want [3]", one)
	}
}

func TestMGrid2(t *testing.T) {
	g, err := MGrid2(-10, 10, 0.5, -10, 10, 0.5)
	if err != nil {
		t.Fatalf("MGrid2: %v", err)
	}
	if g.NX != 40 || g.NY != 40 || g.Len() != 1600 {
		t.Fatalf("size = %dx%d, want 40x40", g.NX, g.NY)
	}
	// mgrid: x varies along the first index, y along the second.
	if x, y := g.At(0, 0); x != -10 || y != -10 {
		t.Errorf("At(0,0) = (%v, %v), want (-10, -10)", x, y)
	}
	if x, y := g.At(1, 0); x != -9.5 || y != -10 {
		t.Errorf("At(1,0) = (%v, %v), want (-9.5, -10)", x, y)
	}
	if x, y := g.At(0, 1); x != -10 || y != -9.5 {
		t.Errorf("At(0,1) = (%v, %v), want (-10, -9.5)", x, y)
	}

	xs, ys := g.Axes()
	if len(xs) != 40 || len(ys) != 40 || xs[39] != 9.5 || ys[39] != 9.5 {
		t.Errorf("Axes ends = (%v, %v), want 9.5", xs[len(xs)-1], ys[len(ys)-1])
	}
}

func TestMeshGrid3(t *testing.T) {
	g := MeshGrid3([]float64{1, 2}, []float64{3, 4, 5}, []float64{6, 7, 8, 9})
	if g.Len() != 24 {
		t.Fatalf("Len = %d, want 24", g.Len())
	}
	// ij indexing: idx = (i*NY + j)*NZ + k
	idx := (1*3+2)*4 + 3
	if g.X[idx] != 2 || g.Y[idx] != 5 || g.Z[idx] != 9 {
		t.Errorf("sample (1,2,3) = (%v, %v, %v), want (2, 5, 9)", g.X[idx], g.Y[idx], g.Z[idx])
	}
}

func TestScalar2(t *testing.T) {
	g, err := MGrid2(0, 3, 1, 0, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	s := NewScalar2(g, func(x, y float64) float64 { return 10*x + y })

	v, err := s.Value(2, 1)
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != 21 {
		t.Errorf("Value(2,1) = %v, want 21", v)
	}
	if _, err := s.Value(3, 0); err == nil {
		t.Error("Value(3,0) should be out of range")
	}
	if _, err := s.Value(0, -1); err == nil {
		t.Error("Value(0,-1) should be out of range")
	}

	lo, hi := s.Range()
	if lo != 0 || hi != 21 {
		t.Errorf("Range = (%v, %v), want (0, 21)", lo, hi)
	}

	vals := s.Values()
	vals[0] = 99
	if s.At(0, 0) != 0 {
		t.Error("Values must return a copy")
	}
}

func TestVector3(t *testing.T) {
	g := MeshGrid3([]float64{3}, []float64{4}, []float64{0, 1})
	vf := NewVector3(g, func(x, y, z float64) (float64, float64, float64) {
		return x, y, z
	})
	if vf.Len() != 2 {
		t.Fatalf("Len = %d, want 2", vf.Len())
	}
	if m := vf.Magnitude(0); m != 5 {
		t.Errorf("Magnitude(0) = %v, want 5", m)
	}
}

func TestScalar2Empty(t *testing.T) {
	var zero Scalar2
	if lo, hi := zero.Range(); lo != 0 || hi != 0 {
		t.Errorf("zero Range = (%v, %v), want (0, 0)", lo, hi)
	}
	if zero.Len() != 0 || zero.Values() != nil {
		t.Error("zero field should be empty")
	}
	if _, err := zero.Value(0, 0); err == nil {
		t.Error("Value on an empty field should be out of range")
	}
}

func TestScalar2ValuesRowMajor(t *testing.T) {
	g, err := MGrid2(0, 2, 1, 0, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	s := NewScalar2(g, func(x, y float64) float64 { return 10*x + y })
	want := []float64{0, 1, 2, 10, 11, 12}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("Values = %v, want %v", got, want)
	}
	for k := range want {
		if got[k] != want[k] {
			t.Errorf("Values[%d] = %v, want %v", k, got[k], want[k])
		}
	}
}
