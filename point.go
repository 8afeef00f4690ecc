package glyphscan

import (
	xfixed "golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphscan/fixed"
)

// Point is a position in device space, in 26.6 fixed-point pixels,
// Y growing downward.
type Point struct {
	X, Y fixed.F26Dot6
}

// Pt returns a Point from fixed-point coordinates.
func Pt(x, y fixed.F26Dot6) Point {
	return Point{X: x, Y: y}
}

// PtFloat returns a Point from float64 pixel coordinates.
func PtFloat(x, y float64) Point {
	return Point{X: fixed.FromFloat64(x), Y: fixed.FromFloat64(y)}
}

// PtInt returns a Point from whole pixel coordinates.
func PtInt(x, y int) Point {
	return Point{X: fixed.FromInt(x), Y: fixed.FromInt(y)}
}

// FromPoint26_6 converts an x/image fixed-point point. The representations
// are bit-compatible, so this is a relabeling.
func FromPoint26_6(p xfixed.Point26_6) Point {
	return Point{X: fixed.FromInt26_6(p.X), Y: fixed.FromInt26_6(p.Y)}
}

// mulInt scales a point by a plain integer factor, used when replaying an
// outline at an oversampled resolution.
func (p Point) mulInt(k int32) Point {
	return Point{X: fixed.F26Dot6(int32(p.X) * k), Y: fixed.F26Dot6(int32(p.Y) * k)}
}
