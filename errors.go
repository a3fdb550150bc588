package plot3d

import "errors"

var (
	// ErrShapeMismatch is returned when arrays handed to a plotting call
	// do not have compatible lengths.
	ErrShapeMismatch = errors.New("plot3d: array shapes do not match")

	// ErrEmptyData is returned when a plotting call receives no samples.
	ErrEmptyData = errors.New("plot3d: no data")

	// ErrNoFigure is returned when a Session has no figure with the
	// requested id.
	ErrNoFigure = errors.New("plot3d: no such figure")

	// ErrNilObject is returned by Outline when given a nil object.
	ErrNilObject = errors.New("plot3d: nil object")
)
