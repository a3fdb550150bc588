// Command plotgallery renders the documentation figures to images/.
//
// With no flags it builds figures 1 to 8 and writes them into ./images,
// which must already exist.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/plot3d"
	"github.com/gogpu/plot3d/gallery"
	"github.com/gogpu/plot3d/internal/config"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML gallery configuration")
		outDir     = flag.String("out", "", "output directory (overrides config)")
		only       = flag.String("only", "", "comma-separated figure ids to export")
		verbose    = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		plot3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := loadConfig(*configPath, *outDir, *only)
	if err != nil {
		log.Fatalf("plotgallery: %v", err)
	}

	session := plot3d.NewSession(
		plot3d.WithSize(cfg.Width, cfg.Height),
		plot3d.WithCamera(plot3d.Camera{
			Azimuth:   cfg.Camera.Azimuth,
			Elevation: cfg.Camera.Elevation,
		}),
	)
	if err := gallery.Build(session); err != nil {
		log.Fatalf("plotgallery: %v", err)
	}

	outputs, err := gallery.Export(session, cfg.OutputDir, cfg.Only...)
	for _, o := range outputs {
		e, _ := gallery.Lookup(o.ID)
		fmt.Println(okStyle.Render("✓"),
			fmt.Sprintf("figure %d", o.ID),
			pathStyle.Render(o.Path),
			dimStyle.Render(e.Desc))
	}
	if err != nil {
		log.Fatalf("plotgallery: %v", err)
	}

	log.Printf("Saved %d figures to %s (%dx%d)\n", len(outputs), cfg.OutputDir, cfg.Width, cfg.Height)
}

// loadConfig merges the config file, if any, with command-line overrides.
func loadConfig(path, outDir, only string) (config.Config, error) {
	ids := make([]int, 0, len(gallery.Entries))
	for _, e := range gallery.Entries {
		ids = append(ids, e.ID)
	}

	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path, ids); err != nil {
			return config.Config{}, err
		}
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}
	if only != "" {
		subset, err := parseIDs(only)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Only = subset
	}
	return cfg, cfg.Validate(ids)
}

func parseIDs(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad figure id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
