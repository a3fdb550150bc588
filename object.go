package plot3d

// Object is something plotted in a figure.
type Object interface {
	// Bounds returns the object's bounding box in scene coordinates,
	// after any extent has been applied.
	Bounds() Box

	// DataBounds returns the object's bounding box in data coordinates.
	DataBounds() Box

	primitives(v *view) []primitive
}

// dataBounds returns the bounding box of parallel coordinate arrays.
func dataBounds(xs, ys, zs []float64) Box {
	b := EmptyBox()
	for k := range xs {
		b = b.Extend(V3(xs[k], ys[k], zs[k]))
	}
	return b
}
