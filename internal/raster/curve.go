// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/gogpu/glyphscan/fixed"

// Bezier flattening by recursive midpoint subdivision (de Casteljau).
//
// A segment is accepted as flat when its control points sit within the
// flatness tolerance of the chord midpoint, measured with the Manhattan
// metric; otherwise it is split at t=0.5 and both halves are tested again.
// Subdivision depth is capped: outlines come from untrusted font data, and
// the cap bounds the cost of adversarial control points. A segment that is
// still not flat at the cap is emitted as a line anyway, trading a sub-pixel
// error for guaranteed termination.

// DefaultFlatness is the default flatness tolerance: 4/64 = 1/16 pixel.
const DefaultFlatness = fixed.F26Dot6(4)

// maxSplitDepth caps recursive subdivision. 2^16 segments per curve is far
// beyond what any real glyph needs at display sizes.
const maxSplitDepth = 16

// quadFlatness measures how far the control point of a quadratic sits from
// the chord midpoint, in Manhattan distance.
func quadFlatness(x0, y0, cx, cy, x1, y1 fixed.F26Dot6) fixed.F26Dot6 {
	midX := (x0 + x1) / 2
	midY := (y0 + y1) / 2
	return (cx - midX).Abs() + (cy - midY).Abs()
}

// cubicFlatness measures the worse of the two control point deviations of a
// cubic from the chord midpoint, in Manhattan distance.
func cubicFlatness(x0, y0, cx0, cy0, cx1, cy1, x1, y1 fixed.F26Dot6) fixed.F26Dot6 {
	midX := (x0 + x1) / 2
	midY := (y0 + y1) / 2
	d0 := (cx0 - midX).Abs() + (cy0 - midY).Abs()
	d1 := (cx1 - midX).Abs() + (cy1 - midY).Abs()
	return fixed.Max(d0, d1)
}

// flattenQuad subdivides a quadratic Bezier and emits the endpoint of each
// flat-enough piece, in order. The emit callback receives successive
// polyline vertices; the caller connects them from its current position.
func flattenQuad(x0, y0, cx, cy, x1, y1, tol fixed.F26Dot6, depth int, emit func(x, y fixed.F26Dot6)) {
	if depth >= maxSplitDepth || quadFlatness(x0, y0, cx, cy, x1, y1) <= tol {
		emit(x1, y1)
		return
	}

	// Midpoint subdivision. Averaging raw values halves at full precision.
	m0x, m0y := (x0+cx)/2, (y0+cy)/2
	m1x, m1y := (cx+x1)/2, (cy+y1)/2
	mx, my := (m0x+m1x)/2, (m0y+m1y)/2

	flattenQuad(x0, y0, m0x, m0y, mx, my, tol, depth+1, emit)
	flattenQuad(mx, my, m1x, m1y, x1, y1, tol, depth+1, emit)
}

// flattenCubic subdivides a cubic Bezier the same way.
func flattenCubic(x0, y0, cx0, cy0, cx1, cy1, x1, y1, tol fixed.F26Dot6, depth int, emit func(x, y fixed.F26Dot6)) {
	if depth >= maxSplitDepth || cubicFlatness(x0, y0, cx0, cy0, cx1, cy1, x1, y1) <= tol {
		emit(x1, y1)
		return
	}

	m0x, m0y := (x0+cx0)/2, (y0+cy0)/2
	m1x, m1y := (cx0+cx1)/2, (cy0+cy1)/2
	m2x, m2y := (cx1+x1)/2, (cy1+y1)/2

	n0x, n0y := (m0x+m1x)/2, (m0y+m1y)/2
	n1x, n1y := (m1x+m2x)/2, (m1y+m2y)/2

	mx, my := (n0x+n1x)/2, (n0y+n1y)/2

	flattenCubic(x0, y0, m0x, m0y, n0x, n0y, mx, my, tol, depth+1, emit)
	flattenCubic(mx, my, n1x, n1y, m2x, m2y, x1, y1, tol, depth+1, emit)
}
