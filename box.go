package plot3d

import "math"

// Box is an axis-aligned bounding box. The zero value is the degenerate
// box at the origin; use EmptyBox for a box that contains nothing.
type Box struct {
	Min, Max Vec3
}

// EmptyBox returns a box that any Extend or Union replaces.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{Min: V3(inf, inf, inf), Max: V3(-inf, -inf, -inf)}
}

// Extent returns the box (xmin, xmax, ymin, ymax, zmin, zmax), the order
// used by WithExtent.
func Extent(xmin, xmax, ymin, ymax, zmin, zmax float64) Box {
	return Box{Min: V3(xmin, ymin, zmin), Max: V3(xmax, ymax, zmax)}
}

// IsEmpty reports whether the box contains no point.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend returns the smallest box containing b and p.
func (b Box) Extend(p Vec3) Box {
	return Box{
		Min: V3(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)),
		Max: V3(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)),
	}
}

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	if o.IsEmpty() {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Size returns the edge lengths of the box.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec3 {
	return b.Min.Lerp(b.Max, 0.5)
}

// Corners returns the eight corners of the box. Corner k has bit 0 set
// for Max.X, bit 1 for Max.Y and bit 2 for Max.Z.
func (b Box) Corners() [8]Vec3 {
	var out [8]Vec3
	for k := range out {
		p := b.Min
		if k&1 != 0 {
			p.X = b.Max.X
		}
		if k&2 != 0 {
			p.Y = b.Max.Y
		}
		if k&4 != 0 {
			p.Z = b.Max.Z
		}
		out[k] = p
	}
	return out
}

// MapTo maps p linearly from b onto dst. An axis along which b has no
// span maps to the middle of dst on that axis.
func (b Box) MapTo(dst Box, p Vec3) Vec3 {
	return V3(
		mapAxis(p.X, b.Min.X, b.Max.X, dst.Min.X, dst.Max.X),
		mapAxis(p.Y, b.Min.Y, b.Max.Y, dst.Min.Y, dst.Max.Y),
		mapAxis(p.Z, b.Min.Z, b.Max.Z, dst.Min.Z, dst.Max.Z),
	)
}

func mapAxis(v, lo, hi, dlo, dhi float64) float64 {
	if hi-lo <= 0 {
		return (dlo + dhi) / 2
	}
	return dlo + (v-lo)/(hi-lo)*(dhi-dlo)
}

// placement maps an object's data coordinates into scene coordinates.
type placement struct {
	data   Box
	extent *Box
}

func (pl placement) apply(p Vec3) Vec3 {
	if pl.extent == nil {
		return p
	}
	return pl.data.MapTo(*pl.extent, p)
}

// scene returns the scene-space bounds of the object.
func (pl placement) scene() Box {
	if pl.extent == nil {
		return pl.data
	}
	return *pl.extent
}

// lengthScale converts a data-space length into scene units, using the
// mean scale of the x and y axes.
func (pl placement) lengthScale() float64 {
	if pl.extent == nil {
		return 1
	}
	ds, es := pl.data.Size(), pl.extent.Size()
	var sum float64
	var n int
	if ds.X > 0 {
		sum += es.X / ds.X
		n++
	}
	if ds.Y > 0 {
		sum += es.Y / ds.Y
		n++
	}
	if n == 0 {
		return 1
	}
	return sum / float64(n)
}
