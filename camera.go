package plot3d

import "math"

// Camera describes the viewing direction. Azimuth is measured in the
// xy-plane from +x, Elevation from the +z axis, both in degrees.
type Camera struct {
	Azimuth   float64
	Elevation float64
}

// DefaultCamera looks at the scene from the isometric direction (1, 1, 1).
func DefaultCamera() Camera {
	return Camera{Azimuth: 45, Elevation: 54.7356}
}

// basis returns the screen right and up axes and the unit vector pointing
// from the scene toward the viewer.
func (c Camera) basis() (right, up, toward Vec3) {
	az := c.Azimuth * math.Pi / 180
	el := c.Elevation * math.Pi / 180
	sa, ca := math.Sincos(az)
	se, ce := math.Sincos(el)
	toward = V3(se*ca, se*sa, ce)
	right = V3(-sa, ca, 0)
	up = V3(-ce*ca, -ce*sa, se)
	return right, up, toward
}

// Project returns the screen coordinates (x right, y up) of p and its
// depth along the viewing direction. Larger depth is closer to the viewer.
func (c Camera) Project(p Vec3) (sx, sy, depth float64) {
	right, up, toward := c.basis()
	return p.Dot(right), p.Dot(up), p.Dot(toward)
}
