// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphscan

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/glyphscan/fixed"
)

// donut builds a 64x64 square with a counter-wound 32x32 hole, the classic
// counter shape: outer contour clockwise, inner counter-clockwise.
func donut() *Outline {
	var o Outline
	o.MoveTo(PtInt(0, 0))
	o.LineTo(PtInt(64, 0))
	o.LineTo(PtInt(64, 64))
	o.LineTo(PtInt(0, 64))
	o.Close()
	o.MoveTo(PtInt(16, 16))
	o.LineTo(PtInt(16, 48))
	o.LineTo(PtInt(48, 48))
	o.LineTo(PtInt(48, 16))
	o.Close()
	return &o
}

// overlappingSquares builds two same-wound squares sharing a corner region,
// the minimal shape on which the two fill rules disagree.
func overlappingSquares() *Outline {
	var o Outline
	o.Rect(fixed.FromInt(0), fixed.FromInt(0), fixed.FromInt(20), fixed.FromInt(20))
	o.Rect(fixed.FromInt(10), fixed.FromInt(10), fixed.FromInt(30), fixed.FromInt(30))
	return &o
}

func TestRenderMonoDonut(t *testing.T) {
	bm, err := RenderMono(64, 64, NonZero, donut())
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			hole := x >= 16 && x < 48 && y >= 16 && y < 48
			if got := bm.At(x, y); got == hole {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, !hole)
			}
		}
	}
}

func TestRenderMonoDonutBothRules(t *testing.T) {
	// Opposite-wound counter: non-zero and even-odd agree on the hole.
	nz, err := RenderMono(64, 64, NonZero, donut())
	if err != nil {
		t.Fatal(err)
	}
	eo, err := RenderMono(64, 64, EvenOdd, donut())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(nz.Pix, eo.Pix) {
		t.Error("fill rules disagree on an opposite-wound counter")
	}
}

func TestRenderMonoFillRuleDivergence(t *testing.T) {
	// Two overlapping squares with the same winding: non-zero fills the
	// union, even-odd cuts out the overlap.
	o := overlappingSquares()

	nz, err := RenderMono(30, 30, NonZero, o)
	if err != nil {
		t.Fatal(err)
	}
	eo, err := RenderMono(30, 30, EvenOdd, o)
	if err != nil {
		t.Fatal(err)
	}

	// Overlap region [10,20)x[10,20).
	if !nz.At(15, 15) {
		t.Error("non-zero should fill the overlap")
	}
	if eo.At(15, 15) {
		t.Error("even-odd should leave the overlap empty")
	}
	// Outside the overlap the rules agree.
	for _, p := range [][2]int{{5, 5}, {25, 25}, {5, 25}, {25, 5}} {
		if nz.At(p[0], p[1]) != eo.At(p[0], p[1]) {
			t.Errorf("rules disagree outside the overlap at (%d, %d)", p[0], p[1])
		}
	}
}

func TestRenderMonoConvexAgreement(t *testing.T) {
	// A simple convex contour is identical under both rules.
	var o Outline
	o.MoveTo(PtInt(5, 2))
	o.LineTo(PtInt(18, 9))
	o.LineTo(PtInt(12, 18))
	o.LineTo(PtInt(2, 11))
	o.Close()

	nz, err := RenderMono(20, 20, NonZero, &o)
	if err != nil {
		t.Fatal(err)
	}
	eo, err := RenderMono(20, 20, EvenOdd, &o)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(nz.Pix, eo.Pix) {
		t.Error("fill rules disagree on a convex contour")
	}
}

func TestRenderDeterministic(t *testing.T) {
	var o Outline
	o.MoveTo(PtFloat(2.5, 3.25))
	o.QuadTo(PtFloat(30, -5), PtFloat(28.75, 20))
	o.CubicTo(PtFloat(20, 35), PtFloat(10, 25), PtFloat(2.5, 3.25))
	o.Close()

	first, err := RenderGray(32, 32, NonZero, Level4, &o)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := RenderGray(32, 32, NonZero, Level4, &o)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first.Pix, again.Pix) {
			t.Fatalf("render %d differs from the first", i+2)
		}
	}
}

func TestRenderIdempotentOutline(t *testing.T) {
	// The outline is read-only during render: rendering it at different
	// sizes and levels, then repeating the first call, reproduces the first
	// bitmap exactly.
	o := donut()

	first, err := RenderGray(64, 64, NonZero, Level2, o)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := RenderMono(64, 64, EvenOdd, o); err != nil {
		t.Fatal(err)
	}
	if _, err := RenderGray(64, 64, NonZero, Level8, o); err != nil {
		t.Fatal(err)
	}
	again, err := RenderGray(64, 64, NonZero, Level2, o)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Pix, again.Pix) {
		t.Error("re-rendering the outline changed the result")
	}
}

func TestRenderGrayInterior(t *testing.T) {
	// Pixel-aligned geometry: every interior pixel is fully covered, every
	// exterior pixel fully empty, at every level.
	var o Outline
	o.Rect(fixed.FromInt(2), fixed.FromInt(2), fixed.FromInt(14), fixed.FromInt(14))

	for _, level := range []Level{Level2, Level4, Level8} {
		t.Run(level.String(), func(t *testing.T) {
			bm, err := RenderGray(16, 16, NonZero, level, &o)
			if err != nil {
				t.Fatal(err)
			}
			for y := 0; y < 16; y++ {
				for x := 0; x < 16; x++ {
					inside := x >= 2 && x < 14 && y >= 2 && y < 14
					want := uint8(0)
					if inside {
						want = 255
					}
					if got := bm.AlphaAt(x, y); got != want {
						t.Fatalf("alpha at (%d, %d) = %d, want %d", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestRenderGrayConvergence(t *testing.T) {
	// Lower-left triangle (0,0)-(8,8)-(0,8): the exact coverage of each
	// diagonal pixel is 0.5, and each level's box average lands closer to it
	// than the previous. Mean absolute error must strictly decrease.
	var o Outline
	o.MoveTo(PtInt(0, 0))
	o.LineTo(PtInt(8, 8))
	o.LineTo(PtInt(0, 8))
	o.Close()

	mae := func(level Level) float64 {
		bm, err := RenderGray(8, 8, NonZero, level, &o)
		if err != nil {
			t.Fatal(err)
		}
		sum := 0.0
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				var exact float64
				switch {
				case x < y:
					exact = 1
				case x == y:
					exact = 0.5
				}
				got := float64(bm.AlphaAt(x, y)) / 255
				d := got - exact
				if d < 0 {
					d = -d
				}
				sum += d
			}
		}
		return sum / 64
	}

	e2, e4, e8 := mae(Level2), mae(Level4), mae(Level8)
	if !(e2 > e4 && e4 > e8) {
		t.Errorf("error must shrink with the level: 2x2=%.4f 4x4=%.4f 8x8=%.4f", e2, e4, e8)
	}
}

func TestRenderEmptyAndZeroSize(t *testing.T) {
	t.Run("empty outline", func(t *testing.T) {
		var o Outline
		bm, err := RenderGray(8, 8, NonZero, Level4, &o)
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range bm.Pix {
			if p != 0 {
				t.Fatal("empty outline produced coverage")
			}
		}
	})

	t.Run("zero size", func(t *testing.T) {
		bm, err := RenderMono(0, 0, NonZero, donut())
		if err != nil {
			t.Fatal(err)
		}
		if bm.Width != 0 || bm.Height != 0 || len(bm.Pix) != 0 {
			t.Error("zero-size render should return an empty bitmap")
		}
	})

	t.Run("negative size", func(t *testing.T) {
		bm, err := RenderGray(-3, 10, NonZero, Level4, donut())
		if err != nil {
			t.Fatal(err)
		}
		if bm.Width != 0 {
			t.Error("negative width should clamp to empty")
		}
	})
}

func TestRenderErrors(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		for _, level := range []Level{0, 1, 3, 5, 16, -4} {
			if _, err := RenderGray(8, 8, NonZero, level, donut()); !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("level %d: err = %v, want ErrInvalidLevel", level, err)
			}
		}
	})

	t.Run("line before moveto", func(t *testing.T) {
		var o Outline
		o.LineTo(PtInt(5, 5))
		if _, err := RenderMono(8, 8, NonZero, &o); !errors.Is(err, ErrNoActiveContour) {
			t.Errorf("err = %v, want ErrNoActiveContour", err)
		}
		if _, err := RenderGray(8, 8, NonZero, Level4, &o); !errors.Is(err, ErrNoActiveContour) {
			t.Errorf("gray err = %v, want ErrNoActiveContour", err)
		}
	})
}

func TestArenaReuse(t *testing.T) {
	var a Arena
	want, err := RenderGray(64, 64, NonZero, Level4, donut())
	if err != nil {
		t.Fatal(err)
	}

	// Interleave shapes and sizes through one arena; results must match the
	// fresh-arena renders byte for byte.
	var tri Outline
	tri.MoveTo(PtInt(0, 0))
	tri.LineTo(PtInt(8, 8))
	tri.LineTo(PtInt(0, 8))
	tri.Close()

	for i := 0; i < 3; i++ {
		got, err := a.RenderGray(64, 64, NonZero, Level4, donut())
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got.Pix, want.Pix) {
			t.Fatalf("round %d: arena render differs from fresh render", i)
		}
		if _, err := a.RenderMono(8, 8, EvenOdd, &tri); err != nil {
			t.Fatal(err)
		}
	}
}

func TestConcurrentArenas(t *testing.T) {
	// One arena per goroutine needs no synchronization; all workers must
	// agree on the output.
	want, err := RenderGray(64, 64, NonZero, Level4, donut())
	if err != nil {
		t.Fatal(err)
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]*GrayBitmap, workers)
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var a Arena
			for i := 0; i < 10; i++ {
				results[w], errs[w] = a.RenderGray(64, 64, NonZero, Level4, donut())
				if errs[w] != nil {
					return
				}
			}
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		if errs[w] != nil {
			t.Fatalf("worker %d: %v", w, errs[w])
		}
		if !bytes.Equal(results[w].Pix, want.Pix) {
			t.Errorf("worker %d produced a different bitmap", w)
		}
	}
}

func BenchmarkRenderGrayDonut(b *testing.B) {
	o := donut()
	var a Arena
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := a.RenderGray(64, 64, NonZero, Level4, o); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderMonoDonut(b *testing.B) {
	o := donut()
	var a Arena
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := a.RenderMono(64, 64, NonZero, o); err != nil {
			b.Fatal(err)
		}
	}
}
