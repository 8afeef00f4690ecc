package glyphscan

import (
	"github.com/gogpu/glyphscan/fixed"
	"github.com/gogpu/glyphscan/internal/raster"
)

type outlineOp uint8

const (
	opMoveTo outlineOp = iota
	opLineTo
	opQuadTo
	opCubicTo
	opClose
)

// Outline is a recorded outline: a sequence of contours, each a MoveTo
// followed by line and curve commands and a Close. Coordinates are
// device-space pixels, Y down, already scaled by the caller.
//
// The zero value is an empty outline ready for use. Recording is sticky on
// error: the first contract violation (a drawing command before any MoveTo)
// is remembered and reported by Err and by the render entry points, and
// later commands are ignored.
//
// Contours do not need an explicit Close: a following MoveTo, or the
// render itself, closes an open contour with an implicit line back to its
// start. This auto-close policy is fixed, not configurable.
type Outline struct {
	ops     []outlineOp
	pts     []Point
	started bool
	err     error
}

// MoveTo starts a new contour at p.
func (o *Outline) MoveTo(p Point) {
	if o.err != nil {
		return
	}
	o.ops = append(o.ops, opMoveTo)
	o.pts = append(o.pts, p)
	o.started = true
}

// LineTo records a line from the current position to p.
func (o *Outline) LineTo(p Point) {
	if !o.ready() {
		return
	}
	o.ops = append(o.ops, opLineTo)
	o.pts = append(o.pts, p)
}

// QuadTo records a quadratic Bezier through ctrl to p.
func (o *Outline) QuadTo(ctrl, p Point) {
	if !o.ready() {
		return
	}
	o.ops = append(o.ops, opQuadTo)
	o.pts = append(o.pts, ctrl, p)
}

// CubicTo records a cubic Bezier through ctrl0 and ctrl1 to p.
func (o *Outline) CubicTo(ctrl0, ctrl1, p Point) {
	if !o.ready() {
		return
	}
	o.ops = append(o.ops, opCubicTo)
	o.pts = append(o.pts, ctrl0, ctrl1, p)
}

// Close ends the current contour, connecting back to its start if needed.
func (o *Outline) Close() {
	if !o.ready() {
		return
	}
	o.ops = append(o.ops, opClose)
}

// Rect records an axis-aligned rectangular contour, wound in command order
// (top-left, top-right, bottom-right, bottom-left is clockwise in Y-down
// device space).
func (o *Outline) Rect(x0, y0, x1, y1 fixed.F26Dot6) {
	o.MoveTo(Pt(x0, y0))
	o.LineTo(Pt(x1, y0))
	o.LineTo(Pt(x1, y1))
	o.LineTo(Pt(x0, y1))
	o.Close()
}

// Reset empties the outline for reuse, keeping allocated capacity.
func (o *Outline) Reset() {
	o.ops = o.ops[:0]
	o.pts = o.pts[:0]
	o.started = false
	o.err = nil
}

// Empty reports whether the outline records no commands.
func (o *Outline) Empty() bool {
	return len(o.ops) == 0
}

// Err returns the first recording error, or nil.
func (o *Outline) Err() error {
	return o.err
}

// ready gates drawing commands on an active contour and a clean outline.
func (o *Outline) ready() bool {
	if o.err != nil {
		return false
	}
	if !o.started {
		o.err = ErrNoActiveContour
		return false
	}
	return true
}

// replay feeds the recorded commands into a scan converter, scaling every
// coordinate by the plain integer factor k (k=1 for monochrome, k=level
// for oversampled grayscale).
func (o *Outline) replay(sc *raster.ScanConverter, k int32) {
	i := 0
	for _, op := range o.ops {
		switch op {
		case opMoveTo:
			p := o.pts[i].mulInt(k)
			i++
			sc.MoveTo(p.X, p.Y)
		case opLineTo:
			p := o.pts[i].mulInt(k)
			i++
			sc.LineTo(p.X, p.Y)
		case opQuadTo:
			c := o.pts[i].mulInt(k)
			p := o.pts[i+1].mulInt(k)
			i += 2
			sc.QuadTo(c.X, c.Y, p.X, p.Y)
		case opCubicTo:
			c0 := o.pts[i].mulInt(k)
			c1 := o.pts[i+1].mulInt(k)
			p := o.pts[i+2].mulInt(k)
			i += 3
			sc.CubicTo(c0.X, c0.Y, c1.X, c1.Y, p.X, p.Y)
		case opClose:
			sc.Close()
		}
	}
}
