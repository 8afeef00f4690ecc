// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import (
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/glyphscan"
	"github.com/gogpu/glyphscan/fixed"
)

// FromFace loads a glyph outline from a go-text/typesetting face at sizePx
// pixels per em and returns it translated into bitmap space, plus its
// placement.
//
// typesetting outlines are in font units with Y pointing up, so this
// adapter applies the full boundary transform: scale by sizePx/upem, flip
// Y, then translate by the bounding box. Glyphs whose data is not an
// outline (bitmap or SVG glyphs) report ErrNoOutline.
func FromFace(face *font.Face, gid font.GID, sizePx float64) (*glyphscan.Outline, Placement, error) {
	data := face.GlyphData(gid)
	out, ok := data.(font.GlyphOutline)
	if !ok {
		return nil, Placement{}, ErrNoOutline
	}

	scale := sizePx / float64(face.Upem())

	var b bounds
	for _, seg := range out.Segments {
		for _, arg := range outlineArgs(seg) {
			b.add(devicePoint(arg, scale))
		}
	}
	place, dx, dy := b.placement()
	place.Advance = fixed.FromFloat64(float64(face.HorizontalAdvance(gid)) * scale)

	o := &glyphscan.Outline{}
	for _, seg := range out.Segments {
		p0 := shiftDevice(seg.Args[0], scale, dx, dy)
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			o.MoveTo(p0)
		case ot.SegmentOpLineTo:
			o.LineTo(p0)
		case ot.SegmentOpQuadTo:
			o.QuadTo(p0, shiftDevice(seg.Args[1], scale, dx, dy))
		case ot.SegmentOpCubeTo:
			o.CubicTo(p0, shiftDevice(seg.Args[1], scale, dx, dy), shiftDevice(seg.Args[2], scale, dx, dy))
		}
	}
	if len(out.Segments) > 0 {
		o.Close()
	}
	return o, place, nil
}

// RasterizeFace renders a glyph from a typesetting face to an anti-aliased
// coverage bitmap sized to the glyph's bounding box.
func RasterizeFace(face *font.Face, gid font.GID, sizePx float64, rule glyphscan.FillRule, level glyphscan.Level) (*glyphscan.GrayBitmap, Placement, error) {
	o, place, err := FromFace(face, gid, sizePx)
	if err != nil {
		return nil, Placement{}, err
	}
	bm, err := glyphscan.RenderGray(place.Width, place.Height, rule, level, o)
	if err != nil {
		return nil, Placement{}, err
	}
	return bm, place, nil
}

// outlineArgs returns the meaningful argument points of a segment.
func outlineArgs(seg font.Segment) []font.SegmentPoint {
	switch seg.Op {
	case ot.SegmentOpQuadTo:
		return seg.Args[:2]
	case ot.SegmentOpCubeTo:
		return seg.Args[:3]
	default:
		return seg.Args[:1]
	}
}

// devicePoint maps a font-unit point to device space: scale and Y flip.
// Segment coordinates arrive as float32, so the fixed-point conversion
// stays in float32 and saturates on malformed coordinates.
func devicePoint(p font.SegmentPoint, scale float64) glyphscan.Point {
	s := float32(scale)
	return glyphscan.Pt(fixed.FromFloat32(p.X*s), fixed.FromFloat32(-p.Y*s))
}

func shiftDevice(p font.SegmentPoint, scale float64, dx, dy fixed.F26Dot6) glyphscan.Point {
	q := devicePoint(p, scale)
	return glyphscan.Pt(q.X+dx, q.Y+dy)
}
