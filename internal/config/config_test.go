package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var ids = []int{1, 2, 3, 4, 5, 6, 7, 8}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""), ids)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Default()
	if cfg.OutputDir != want.OutputDir || cfg.Width != want.Width || cfg.Height != want.Height {
		t.Errorf("Parse(\"\") = %+v, want %+v", cfg, want)
	}
	if cfg.Camera != want.Camera {
		t.Errorf("Camera = %+v, want %+v", cfg.Camera, want.Camera)
	}
}

func TestParseOverrides(t *testing.T) {
	src := `
output_dir: out/docs
width: 800
camera:
  azimuth: 30
only: [1, 8]
`
	cfg, err := Parse([]byte(src), ids)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.OutputDir != "out/docs" {
		t.Errorf("OutputDir = %q, want out/docs", cfg.OutputDir)
	}
	if cfg.Width != 800 || cfg.Height != 350 {
		t.Errorf("size = %dx%d, want 800x350", cfg.Width, cfg.Height)
	}
	if cfg.Camera.Azimuth != 30 || cfg.Camera.Elevation != Default().Camera.Elevation {
		t.Errorf("Camera = %+v, want azimuth 30 with default elevation", cfg.Camera)
	}
	if len(cfg.Only) != 2 || cfg.Only[0] != 1 || cfg.Only[1] != 8 {
		t.Errorf("Only = %v, want [1 8]", cfg.Only)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"zero width", "width: 0"},
		{"negative height", "height: -5"},
		{"unknown figure", "only: [9]"},
		{"empty output", `output_dir: ""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.src), ids); !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("width: [oops"), ids)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("a YAML syntax error should not be reported as ErrInvalid")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.yaml")
	if err := os.WriteFile(path, []byte("height: 600\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path, ids)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Height != 600 {
		t.Errorf("Height = %d, want 600", cfg.Height)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml"), ids); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want os.ErrNotExist", err)
	}
}
