// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	xfixed "golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphscan"
	"github.com/gogpu/glyphscan/fixed"
)

// FromSFNT loads a glyph outline from an sfnt font at sizePx pixels per em
// and returns it translated into bitmap space, plus its placement.
//
// sfnt.LoadGlyph already delivers device-scaled coordinates with Y pointing
// down, so the only transform applied here is the bounding-box translation.
// buf may be nil; passing a reused buffer avoids per-call allocation.
//
// Glyphs with no outline (such as space) return an empty outline and a
// zero-size placement carrying the advance.
func FromSFNT(f *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, sizePx float64) (*glyphscan.Outline, Placement, error) {
	if buf == nil {
		buf = &sfnt.Buffer{}
	}
	ppem := xfixed.Int26_6(sizePx * 64)

	segs, err := f.LoadGlyph(buf, gid, ppem, nil)
	if err != nil {
		return nil, Placement{}, err
	}

	var b bounds
	for _, seg := range segs {
		for _, arg := range segArgs(seg) {
			b.add(glyphscan.FromPoint26_6(arg))
		}
	}
	place, dx, dy := b.placement()

	adv, err := f.GlyphAdvance(buf, gid, ppem, font.HintingNone)
	if err == nil {
		place.Advance = fixed.FromInt26_6(adv)
	}

	o := &glyphscan.Outline{}
	for _, seg := range segs {
		p0 := shiftPoint(seg.Args[0], dx, dy)
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			o.MoveTo(p0)
		case sfnt.SegmentOpLineTo:
			o.LineTo(p0)
		case sfnt.SegmentOpQuadTo:
			o.QuadTo(p0, shiftPoint(seg.Args[1], dx, dy))
		case sfnt.SegmentOpCubeTo:
			o.CubicTo(p0, shiftPoint(seg.Args[1], dx, dy), shiftPoint(seg.Args[2], dx, dy))
		}
	}
	if len(segs) > 0 {
		o.Close()
	}
	return o, place, nil
}

// RasterizeSFNT renders a glyph from an sfnt font to an anti-aliased
// coverage bitmap sized to the glyph's bounding box.
func RasterizeSFNT(f *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, sizePx float64, rule glyphscan.FillRule, level glyphscan.Level) (*glyphscan.GrayBitmap, Placement, error) {
	o, place, err := FromSFNT(f, buf, gid, sizePx)
	if err != nil {
		return nil, Placement{}, err
	}
	bm, err := glyphscan.RenderGray(place.Width, place.Height, rule, level, o)
	if err != nil {
		return nil, Placement{}, err
	}
	return bm, place, nil
}

// segArgs returns the meaningful argument points of a segment.
func segArgs(seg sfnt.Segment) []xfixed.Point26_6 {
	switch seg.Op {
	case sfnt.SegmentOpQuadTo:
		return seg.Args[:2]
	case sfnt.SegmentOpCubeTo:
		return seg.Args[:3]
	default:
		return seg.Args[:1]
	}
}

func shiftPoint(p xfixed.Point26_6, dx, dy fixed.F26Dot6) glyphscan.Point {
	q := glyphscan.FromPoint26_6(p)
	return glyphscan.Pt(q.X+dx, q.Y+dy)
}
