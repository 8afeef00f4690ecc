package glyphscan

// FillRule decides which regions of a filled outline are "inside".
//
// Both rules walk each scanline's edge crossings from left to right.
// NonZero sums the signed winding of every crossed edge and fills while the
// sum is non-zero; EvenOdd fills while the crossing count is odd. The two
// agree on simple contours and differ exactly where contours overlap
// themselves or each other.
type FillRule uint8

const (
	// NonZero is the non-zero winding rule, the convention font outlines
	// are drawn for: counters are carried by opposite-winding contours.
	NonZero FillRule = iota
	// EvenOdd is the even-odd (parity) rule.
	EvenOdd
)

// String returns the rule name.
func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// Level is the oversampling factor for grayscale rendering: the outline is
// rasterized monochrome at Level times the requested resolution in each
// axis, and each Level x Level block is averaged into one alpha byte.
type Level int

const (
	// Level2 renders 4 samples per pixel.
	Level2 Level = 2
	// Level4 renders 16 samples per pixel. The recommended default
	// balance of quality and cost.
	Level4 Level = 4
	// Level8 renders 64 samples per pixel.
	Level8 Level = 8
)

// Samples returns the number of monochrome samples per output pixel.
func (l Level) Samples() int {
	return int(l) * int(l)
}

// valid reports whether l is one of the supported factors.
func (l Level) valid() bool {
	return l == Level2 || l == Level4 || l == Level8
}

// String returns a name like "4x4".
func (l Level) String() string {
	switch l {
	case Level2:
		return "2x2"
	case Level4:
		return "4x4"
	case Level8:
		return "8x8"
	default:
		return "invalid"
	}
}
