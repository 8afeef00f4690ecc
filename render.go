// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphscan

import (
	"log/slog"

	"github.com/gogpu/glyphscan/internal/raster"
)

// RenderMono rasterizes an outline into a monochrome width x height bitmap
// under the given fill rule.
//
// The call is a pure function of its inputs: it allocates the bitmap,
// fills it, and retains nothing. A zero-sized request returns an empty
// bitmap, not an error; the only error is a recording error carried by the
// outline itself.
func RenderMono(width, height int, rule FillRule, o *Outline) (*MonoBitmap, error) {
	var a Arena
	return a.RenderMono(width, height, rule, o)
}

// RenderGray rasterizes an outline into an anti-aliased width x height
// coverage bitmap. The outline is rendered monochrome at level times the
// resolution and box-averaged down; level must be Level2, Level4 or Level8.
func RenderGray(width, height int, rule FillRule, level Level, o *Outline) (*GrayBitmap, error) {
	var a Arena
	return a.RenderGray(width, height, rule, level, o)
}

// Arena is reusable rasterization scratch: the edge table and the
// supersampled intermediate buffer survive across calls, so a caller
// rendering many glyphs allocates little beyond the output bitmaps.
//
// The zero value is ready for use. An Arena is not safe for concurrent
// use; give each rendering goroutine its own. Arenas hold no results,
// only scratch, so dropping one loses nothing.
type Arena struct {
	sc    *raster.ScanConverter
	super []uint8
}

// RenderMono is RenderMono using this arena's scratch.
func (a *Arena) RenderMono(width, height int, rule FillRule, o *Outline) (*MonoBitmap, error) {
	if err := o.Err(); err != nil {
		return nil, err
	}
	bm := NewMonoBitmap(width, height)
	if bm.Width == 0 || bm.Height == 0 {
		return bm, nil
	}

	sc := a.converter(bm.Width, bm.Height)
	o.replay(sc, 1)
	sc.Render(ruleFor(rule), bm.Pix, bm.Stride)

	Logger().Debug("glyphscan: mono render",
		slog.Int("width", bm.Width), slog.Int("height", bm.Height),
		slog.String("rule", rule.String()))
	return bm, nil
}

// RenderGray is RenderGray using this arena's scratch.
func (a *Arena) RenderGray(width, height int, rule FillRule, level Level, o *Outline) (*GrayBitmap, error) {
	if err := o.Err(); err != nil {
		return nil, err
	}
	if !level.valid() {
		return nil, ErrInvalidLevel
	}
	bm := NewGrayBitmap(width, height)
	if bm.Width == 0 || bm.Height == 0 {
		return bm, nil
	}

	k := int(level)
	sw, sh := bm.Width*k, bm.Height*k
	if cap(a.super) < sw*sh {
		a.super = make([]uint8, sw*sh)
	}
	super := a.super[:sw*sh]

	sc := a.converter(sw, sh)
	o.replay(sc, int32(k))
	sc.Render(ruleFor(rule), super, sw)

	raster.Downsample(super, sw, bm.Pix, bm.Stride, bm.Width, bm.Height, k)

	Logger().Debug("glyphscan: gray render",
		slog.Int("width", bm.Width), slog.Int("height", bm.Height),
		slog.String("rule", rule.String()), slog.String("level", level.String()))
	return bm, nil
}

// converter returns the arena's scan converter, reset for the given size.
func (a *Arena) converter(width, height int) *raster.ScanConverter {
	if a.sc == nil {
		a.sc = raster.New(width, height)
	} else {
		a.sc.Reset(width, height)
	}
	return a.sc
}

// ruleFor maps the public fill rule onto the internal one.
func ruleFor(rule FillRule) raster.FillRule {
	if rule == EvenOdd {
		return raster.FillEvenOdd
	}
	return raster.FillNonZero
}
