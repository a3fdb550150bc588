// Package colormap maps normalized scalars to colors.
//
// The built-in tables reproduce the lookup tables the gallery figures were
// designed with: "blue-red" (the default), "jet", "cool", "prism",
// "Accent", "gray" and "hot". Continuous tables interpolate between stops
// with go-colorful; "Accent" is a qualitative table of eight colors.
package colormap

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// Default is the colormap used when an object does not name one.
const Default = "blue-red"

// ErrUnknown is returned by Lookup for names that have no table.
var ErrUnknown = errors.New("colormap: unknown colormap")

// Colormap maps t in [0, 1] to a color.
type Colormap struct {
	name string
	fn   func(t float64) colorful.Color
}

// Name returns the table name.
func (c *Colormap) Name() string { return c.name }

// At returns the color for t. Values outside [0, 1] are clamped and NaN
// maps to 0.
func (c *Colormap) At(t float64) gg.RGBA {
	if math.IsNaN(t) {
		t = 0
	}
	t = math.Max(0, math.Min(1, t))
	col := c.fn(t).Clamped()
	return gg.RGB(col.R, col.G, col.B)
}

// Normalized returns the color for v relative to [lo, hi].
// A degenerate range maps every value to the middle of the table.
func (c *Colormap) Normalized(v, lo, hi float64) gg.RGBA {
	if hi-lo <= 0 {
		return c.At(0.5)
	}
	return c.At((v - lo) / (hi - lo))
}

var tables = map[string]*Colormap{}

func register(name string, fn func(t float64) colorful.Color) {
	tables[name] = &Colormap{name: name, fn: fn}
}

// Lookup returns the table registered under name.
func Lookup(name string) (*Colormap, error) {
	c, ok := tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return c, nil
}

// MustLookup is like Lookup but panics on unknown names.
func MustLookup(name string) *Colormap {
	c, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns the registered table names in sorted order.
func Names() []string {
	names := make([]string, 0, len(tables))
	for n := range tables {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type stop struct {
	pos float64
	col colorful.Color
}

// mustHex parses a table constant. Tables are package literals, so a
// parse failure is a programming error.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("colormap: bad table color %q: %v", s, err))
	}
	return c
}

// gradient interpolates linearly in RGB between stops sorted by position.
func gradient(stops ...stop) func(t float64) colorful.Color {
	return func(t float64) colorful.Color {
		if t <= stops[0].pos {
			return stops[0].col
		}
		for i := 1; i < len(stops); i++ {
			a, b := stops[i-1], stops[i]
			if t <= b.pos {
				return a.col.BlendRgb(b.col, (t-a.pos)/(b.pos-a.pos))
			}
		}
		return stops[len(stops)-1].col
	}
}

// listed picks one of a fixed set of colors, like a qualitative palette.
func listed(hexes ...string) func(t float64) colorful.Color {
	cols := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		cols[i] = mustHex(h)
	}
	return func(t float64) colorful.Color {
		i := int(t * float64(len(cols)))
		if i >= len(cols) {
			i = len(cols) - 1
		}
		return cols[i]
	}
}

func init() {
	// Hue sweep from blue (240) down to red (0) at full saturation.
	register("blue-red", func(t float64) colorful.Color {
		return colorful.Hsv(240*(1-t), 1, 1)
	})

	register("jet", gradient(
		stop{0, mustHex("#00007f")},
		stop{0.125, mustHex("#0000ff")},
		stop{0.375, mustHex("#00ffff")},
		stop{0.625, mustHex("#ffff00")},
		stop{0.875, mustHex("#ff0000")},
		stop{1, mustHex("#7f0000")},
	))

	register("cool", gradient(
		stop{0, mustHex("#00ffff")},
		stop{1, mustHex("#ff00ff")},
	))

	register("gray", gradient(
		stop{0, mustHex("#000000")},
		stop{1, mustHex("#ffffff")},
	))

	register("hot", gradient(
		stop{0, mustHex("#0b0000")},
		stop{0.365, mustHex("#ff0000")},
		stop{0.746, mustHex("#ffff00")},
		stop{1, mustHex("#ffffff")},
	))

	register("Accent", listed(
		"#7fc97f", "#beaed4", "#fdc086", "#ffff99",
		"#386cb0", "#f0027f", "#bf5b17", "#666666",
	))

	// prism cycles red, yellow, green, blue, violet many times over [0, 1].
	register("prism", func(t float64) colorful.Color {
		x := t * 20.9 * math.Pi
		return colorful.Color{
			R: 0.75*math.Sin(x+0.25*math.Pi) + 0.67,
			G: 0.75*math.Sin(x-0.25*math.Pi) + 0.33,
			B: -1.1 * math.Sin(x),
		}
	})
}
