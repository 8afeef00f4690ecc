// Package raster converts vector outlines to coverage bitmaps by scanline
// rasterization over a per-scanline edge table.
//
// The converter accepts device-space geometry only. Scaling from font units
// and the Y-axis flip between font space and raster space are the caller's
// job; mixing those transforms into the rasterizer is how shifted and
// upside-down glyphs happen.
package raster

import "github.com/gogpu/glyphscan/fixed"

// FillRule selects how winding decides "inside".
type FillRule uint8

const (
	// FillNonZero fills where the signed sum of edge windings is non-zero.
	FillNonZero FillRule = iota
	// FillEvenOdd fills where the number of crossed edges is odd.
	FillEvenOdd
)

// ScanConverter builds an edge table from path commands and fills it
// scanline by scanline into a monochrome byte-per-pixel bitmap.
//
// A converter is resettable: Reset keeps the edge table's allocations, so
// one converter can rasterize many glyphs with near-zero steady-state
// allocation. It is not safe for concurrent use; use one converter per
// goroutine.
type ScanConverter struct {
	width, height int
	flatness      fixed.F26Dot6
	table         edgeTable

	penX, penY     fixed.F26Dot6
	startX, startY fixed.F26Dot6
	open           bool
}

// New creates a scan converter for a width x height pixel bitmap.
func New(width, height int) *ScanConverter {
	s := &ScanConverter{flatness: DefaultFlatness}
	s.Reset(width, height)
	return s
}

// Reset clears all recorded geometry and resizes the converter, keeping
// allocated capacity.
func (s *ScanConverter) Reset(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width = width
	s.height = height
	s.table.reset(height)
	s.penX, s.penY = 0, 0
	s.startX, s.startY = 0, 0
	s.open = false
}

// SetFlatness overrides the curve flattening tolerance. Zero or negative
// restores the default (1/16 pixel).
func (s *ScanConverter) SetFlatness(tol fixed.F26Dot6) {
	if tol <= 0 {
		tol = DefaultFlatness
	}
	s.flatness = tol
}

// Width returns the bitmap width in pixels.
func (s *ScanConverter) Width() int { return s.width }

// Height returns the bitmap height in pixels.
func (s *ScanConverter) Height() int { return s.height }

// MoveTo starts a new contour at (x, y). An open contour is closed first
// with an implicit line back to its start.
func (s *ScanConverter) MoveTo(x, y fixed.F26Dot6) {
	if s.open {
		s.Close()
	}
	s.penX, s.penY = x, y
	s.startX, s.startY = x, y
	s.open = true
}

// LineTo adds a line from the pen to (x, y).
func (s *ScanConverter) LineTo(x, y fixed.F26Dot6) {
	s.addLine(s.penX, s.penY, x, y)
	s.penX, s.penY = x, y
}

// QuadTo adds a quadratic Bezier from the pen through control (cx, cy)
// to (x, y), flattened to lines.
func (s *ScanConverter) QuadTo(cx, cy, x, y fixed.F26Dot6) {
	flattenQuad(s.penX, s.penY, cx, cy, x, y, s.flatness, 0, func(ex, ey fixed.F26Dot6) {
		s.addLine(s.penX, s.penY, ex, ey)
		s.penX, s.penY = ex, ey
	})
}

// CubicTo adds a cubic Bezier from the pen through controls (cx0, cy0) and
// (cx1, cy1) to (x, y), flattened to lines.
func (s *ScanConverter) CubicTo(cx0, cy0, cx1, cy1, x, y fixed.F26Dot6) {
	flattenCubic(s.penX, s.penY, cx0, cy0, cx1, cy1, x, y, s.flatness, 0, func(ex, ey fixed.F26Dot6) {
		s.addLine(s.penX, s.penY, ex, ey)
		s.penX, s.penY = ex, ey
	})
}

// Close ends the current contour, adding the implicit closing line when the
// pen is away from the contour start. Closing when no contour is open is a
// no-op.
func (s *ScanConverter) Close() {
	if !s.open {
		return
	}
	if s.penX != s.startX || s.penY != s.startY {
		s.addLine(s.penX, s.penY, s.startX, s.startY)
	}
	s.penX, s.penY = s.startX, s.startY
	s.open = false
}

func (s *ScanConverter) addLine(x0, y0, x1, y1 fixed.F26Dot6) {
	if e, yStart, ok := newEdge(x0, y0, x1, y1); ok {
		s.table.insert(e, yStart)
	}
}

// Render fills the recorded outline into pix, a byte-per-pixel monochrome
// buffer (1 inside, 0 outside) of at least height*stride bytes with
// stride >= width. An open contour is auto-closed first. The buffer is
// cleared before filling; no state is retained about it afterwards.
func (s *ScanConverter) Render(rule FillRule, pix []uint8, stride int) {
	if s.open {
		s.Close()
	}
	for y := 0; y < s.height; y++ {
		clearRow(pix[y*stride : y*stride+s.width])
	}

	// Buckets are read-only during the sweep, so rendering the same table
	// again reproduces the same bitmap as long as the active set starts
	// empty.
	s.table.active = s.table.active[:0]

	for y := 0; y < s.height; y++ {
		s.table.activate(y)
		// Expiry must precede span emission for this scanline.
		s.table.expire(y)
		s.table.sortActive()

		row := pix[y*stride : y*stride+s.width]
		switch rule {
		case FillEvenOdd:
			s.fillEvenOdd(row)
		default:
			s.fillNonZero(row)
		}

		s.table.step()
	}
}

// fillNonZero emits spans where the accumulated signed winding is non-zero.
func (s *ScanConverter) fillNonZero(row []uint8) {
	winding := 0
	var spanStart fixed.F26Dot6
	for _, e := range s.table.active {
		was := winding
		winding += int(e.dir)
		if was == 0 && winding != 0 {
			spanStart = e.x
		} else if was != 0 && winding == 0 {
			fillSpan(row, spanStart, e.x)
		}
	}
}

// fillEvenOdd emits spans between alternating crossings.
func (s *ScanConverter) fillEvenOdd(row []uint8) {
	inside := false
	var spanStart fixed.F26Dot6
	for _, e := range s.table.active {
		if inside {
			fillSpan(row, spanStart, e.x)
		} else {
			spanStart = e.x
		}
		inside = !inside
	}
}

// fillSpan paints pixels [x0, x1) at pixel granularity, clamped to the row.
func fillSpan(row []uint8, x0, x1 fixed.F26Dot6) {
	xs := x0.ToInt()
	xe := x1.ToInt()
	if xs < 0 {
		xs = 0
	}
	if xe > len(row) {
		xe = len(row)
	}
	for x := xs; x < xe; x++ {
		row[x] = 1
	}
}

func clearRow(row []uint8) {
	for i := range row {
		row[i] = 0
	}
}
