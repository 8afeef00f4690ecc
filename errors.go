package glyphscan

import "errors"

// Errors reported by outline building and rendering. All of them are
// programmer-error contract violations; malformed geometry itself never
// fails (coordinates saturate in fixed point, degenerate sizes render
// empty).
var (
	// ErrNoActiveContour is reported when a drawing command (LineTo,
	// QuadTo, CubicTo or Close) is recorded before any MoveTo.
	ErrNoActiveContour = errors.New("glyphscan: drawing command before MoveTo")

	// ErrInvalidLevel is reported when an oversampling level other than
	// Level2, Level4 or Level8 is passed to a grayscale render.
	ErrInvalidLevel = errors.New("glyphscan: oversampling level must be 2, 4 or 8")
)
