// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glyphscan rasterizes glyph outlines to coverage bitmaps with a
// from-scratch scanline scan converter: 26.6 fixed-point coordinates,
// adaptive Bezier flattening, a per-scanline edge table, and oversampled
// anti-aliasing. It renders outlines as given, unhinted, on the CPU.
//
// The input is device-space geometry. Callers (usually the adapters in the
// glyph subpackage) apply the font-unit scale and the Y-axis flip before
// building an Outline; glyphscan treats coordinates as final pixels with Y
// growing downward.
//
// Basic use:
//
//	var o glyphscan.Outline
//	o.MoveTo(glyphscan.Pt(fixed.FromInt(2), fixed.FromInt(2)))
//	o.LineTo(glyphscan.Pt(fixed.FromInt(30), fixed.FromInt(2)))
//	o.LineTo(glyphscan.Pt(fixed.FromInt(30), fixed.FromInt(30)))
//	o.Close()
//	bm, err := glyphscan.RenderGray(32, 32, glyphscan.NonZero, glyphscan.Level4, &o)
//
// Rendering is a pure function of its inputs. Nothing is shared between
// calls, so goroutines may rasterize concurrently without synchronization;
// an [Arena] makes the per-call scratch reusable when one goroutine renders
// many glyphs.
package glyphscan
