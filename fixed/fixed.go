// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fixed implements 26.6 fixed-point arithmetic for scan conversion.
//
// The F26Dot6 format stores 26 integer bits and 6 fractional bits in a
// signed 32-bit integer, giving 1/64 pixel precision. All arithmetic is
// integer arithmetic, so identical inputs produce bit-identical results on
// every platform. The representation is compatible with
// [golang.org/x/image/math/fixed.Int26_6].
package fixed

import (
	"fmt"
	"math"

	xfixed "golang.org/x/image/math/fixed"
)

// F26Dot6 is a 26.6 fixed-point number.
//
// Because the underlying type is an integer, addition and subtraction use
// the native + and - operators. Multiplication and division must go through
// Mul and Div, which widen to int64 internally so the 6-bit fractional
// boundary loses no precision.
type F26Dot6 int32

const (
	// Shift is the number of fractional bits.
	Shift = 6

	// One is 1.0 in 26.6 format.
	One F26Dot6 = 1 << Shift

	// Half is 0.5 in 26.6 format.
	Half F26Dot6 = 1 << (Shift - 1)

	// FracMask masks the fractional bits of a value.
	FracMask F26Dot6 = One - 1
)

// FromInt converts an integer pixel count to F26Dot6.
func FromInt(i int) F26Dot6 {
	return F26Dot6(i << Shift)
}

// FromFloat64 converts a float64 to F26Dot6, truncating toward zero.
// The conversion is lossy below 1/64 pixel. Values outside the 26.6 range
// saturate to the nearest representable bound and NaN converts to zero:
// coordinates come from untrusted font data, and a wild value clamping to
// the edge of the coordinate space is recoverable where a wrapped sign is
// not.
func FromFloat64(f float64) F26Dot6 {
	f *= 64
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return F26Dot6(math.MaxInt32)
	case f <= math.MinInt32:
		return F26Dot6(math.MinInt32)
	}
	return F26Dot6(f)
}

// FromFloat32 converts a float32 to F26Dot6, truncating toward zero, with
// the same saturation behavior as FromFloat64.
func FromFloat32(f float32) F26Dot6 {
	return FromFloat64(float64(f))
}

// FromInt26_6 converts from the x/image fixed-point type.
// The two types share a bit layout, so this is a relabeling.
func FromInt26_6(v xfixed.Int26_6) F26Dot6 {
	return F26Dot6(v)
}

// To26_6 converts to the x/image fixed-point type.
func (x F26Dot6) To26_6() xfixed.Int26_6 {
	return xfixed.Int26_6(x)
}

// Float64 converts to float64.
func (x F26Dot6) Float64() float64 {
	return float64(x) / 64
}

// ToInt returns the integer part, rounding toward negative infinity.
func (x F26Dot6) ToInt() int {
	return int(x >> Shift)
}

// ToIntRound returns the nearest integer, with ties rounding up.
func (x F26Dot6) ToIntRound() int {
	return int((x + Half) >> Shift)
}

// ToIntCeil returns the smallest integer not less than x.
func (x F26Dot6) ToIntCeil() int {
	return int((x + FracMask) >> Shift)
}

// Floor rounds down to a whole unit.
func (x F26Dot6) Floor() F26Dot6 {
	return x &^ FracMask
}

// Ceil rounds up to a whole unit.
func (x F26Dot6) Ceil() F26Dot6 {
	return (x + FracMask) &^ FracMask
}

// Round rounds to the nearest whole unit, with ties rounding up.
func (x F26Dot6) Round() F26Dot6 {
	return (x + Half) &^ FracMask
}

// Fract returns the fractional bits of x, in the range [0, 63].
// For negative values this is the offset above Floor, matching the
// two's-complement bit pattern, so x.Floor()+x.Fract() == x always holds.
func (x F26Dot6) Fract() F26Dot6 {
	return x & FracMask
}

// Mul returns x*y in 26.6 format.
// The product is computed in 64 bits and shifted back down, so no precision
// is lost at the fractional boundary. Results outside the 26.6 range wrap;
// glyph geometry stays far below that range.
func (x F26Dot6) Mul(y F26Dot6) F26Dot6 {
	return F26Dot6((int64(x) * int64(y)) >> Shift)
}

// Div returns x/y in 26.6 format, computed as (x<<6)/y in 64 bits.
//
// Div panics when y is zero. A zero divisor here is a contract violation:
// the only division in the rasterizer is the slope of an edge, and
// zero-height edges are dropped before any slope is computed.
func (x F26Dot6) Div(y F26Dot6) F26Dot6 {
	if y == 0 {
		panic("fixed: division by zero")
	}
	return F26Dot6((int64(x) << Shift) / int64(y))
}

// Abs returns the absolute value of x.
func (x F26Dot6) Abs() F26Dot6 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min(a, b F26Dot6) F26Dot6 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b F26Dot6) F26Dot6 {
	if a > b {
		return a
	}
	return b
}

// String formats x as a decimal pixel value, e.g. "5.25" or "-0.015625".
func (x F26Dot6) String() string {
	return fmt.Sprintf("%g", x.Float64())
}
