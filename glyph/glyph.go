// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glyph adapts font glyph outlines to the glyphscan rasterizer.
//
// The rasterizer's contract is that it receives device-space geometry:
// pixels, Y down, already positioned inside the bitmap. This package owns
// everything needed to get a font glyph into that space - the font-unit
// scale, the Y-axis flip where the source is Y-up, and the translation by
// the glyph's bounding box - so that none of it leaks into the scan
// converter. Two sources are supported: golang.org/x/image/font/sfnt fonts
// and go-text/typesetting faces.
package glyph

import (
	"errors"

	"github.com/gogpu/glyphscan"
	"github.com/gogpu/glyphscan/fixed"
)

// ErrNoOutline is reported for glyphs without outline data, such as
// bitmap-only or color-layer glyphs.
var ErrNoOutline = errors.New("glyph: glyph has no outline data")

// Placement positions a rasterized glyph relative to its origin on the
// baseline.
type Placement struct {
	// Left and Top are the bearing: the pixel offset from the glyph
	// origin to the top-left corner of the bitmap. Top is negative for
	// anything extending above the baseline, which is nearly every glyph.
	Left, Top int

	// Width and Height are the bitmap size in pixels covering the
	// outline's bounding box. Both are zero for empty glyphs like space.
	Width, Height int

	// Advance is the horizontal advance to the next glyph origin.
	Advance fixed.F26Dot6
}

// bounds accumulates a fixed-point bounding box over outline points.
type bounds struct {
	minX, minY, maxX, maxY fixed.F26Dot6
	any                    bool
}

func (b *bounds) add(p glyphscan.Point) {
	if !b.any {
		b.minX, b.maxX = p.X, p.X
		b.minY, b.maxY = p.Y, p.Y
		b.any = true
		return
	}
	b.minX = fixed.Min(b.minX, p.X)
	b.maxX = fixed.Max(b.maxX, p.X)
	b.minY = fixed.Min(b.minY, p.Y)
	b.maxY = fixed.Max(b.maxY, p.Y)
}

// placement converts the box to whole-pixel placement and returns the
// fixed-point translation that moves the outline into bitmap space.
func (b *bounds) placement() (p Placement, dx, dy fixed.F26Dot6) {
	if !b.any {
		return Placement{}, 0, 0
	}
	left := b.minX.ToInt()
	top := b.minY.ToInt()
	p = Placement{
		Left:   left,
		Top:    top,
		Width:  b.maxX.ToIntCeil() - left,
		Height: b.maxY.ToIntCeil() - top,
	}
	return p, -fixed.FromInt(left), -fixed.FromInt(top)
}
