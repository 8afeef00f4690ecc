// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Downsample box-averages a monochrome supersampled bitmap into 8-bit
// coverage. src is (dw*k) x (dh*k) bytes with 0/1 samples and stride
// srcStride; dst receives dw x dh alpha bytes with stride dstStride, where
// each output byte is blackSamples*255/(k*k).
//
// Oversampled rendering plus this averaging is the whole anti-aliasing
// strategy: simple, analytically checkable, and it reuses the monochrome
// scanline path unchanged at k times the resolution.
func Downsample(src []uint8, srcStride int, dst []uint8, dstStride, dw, dh, k int) {
	samples := k * k
	for oy := 0; oy < dh; oy++ {
		out := dst[oy*dstStride : oy*dstStride+dw]
		for ox := 0; ox < dw; ox++ {
			coverage := 0
			for dy := 0; dy < k; dy++ {
				rowOff := (oy*k+dy)*srcStride + ox*k
				for _, v := range src[rowOff : rowOff+k] {
					if v != 0 {
						coverage++
					}
				}
			}
			out[ox] = uint8(coverage * 255 / samples)
		}
	}
}
