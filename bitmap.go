package glyphscan

import "image"

// MonoBitmap is a monochrome coverage bitmap, one byte per pixel with value
// 0 (outside) or 1 (inside). The buffer is owned by the caller of the
// render that produced it; the rasterizer keeps no reference.
type MonoBitmap struct {
	Width  int
	Height int
	// Stride is the byte distance between vertically adjacent pixels.
	Stride int
	Pix    []uint8
}

// NewMonoBitmap allocates a zeroed bitmap with Stride == Width.
// Zero or negative dimensions yield an empty bitmap.
func NewMonoBitmap(width, height int) *MonoBitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &MonoBitmap{
		Width:  width,
		Height: height,
		Stride: width,
		Pix:    make([]uint8, width*height),
	}
}

// At reports whether the pixel at (x, y) is inside the outline.
// Out-of-range coordinates are outside.
func (b *MonoBitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.Pix[y*b.Stride+x] != 0
}

// GrayBitmap is an anti-aliased coverage bitmap, one alpha byte per pixel,
// 0 fully outside to 255 fully inside.
type GrayBitmap struct {
	Width  int
	Height int
	Stride int
	Pix    []uint8
}

// NewGrayBitmap allocates a zeroed bitmap with Stride == Width.
// Zero or negative dimensions yield an empty bitmap.
func NewGrayBitmap(width, height int) *GrayBitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &GrayBitmap{
		Width:  width,
		Height: height,
		Stride: width,
		Pix:    make([]uint8, width*height),
	}
}

// AlphaAt returns the coverage at (x, y). Out-of-range coordinates are 0.
func (b *GrayBitmap) AlphaAt(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Stride+x]
}

// Alpha returns the bitmap as an *image.Alpha sharing the same pixel
// buffer, for compositing with the standard library image packages.
func (b *GrayBitmap) Alpha() *image.Alpha {
	return &image.Alpha{
		Pix:    b.Pix,
		Stride: b.Stride,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
