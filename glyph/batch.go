package glyph

import (
	"runtime"
	"sync"

	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/glyphscan"
)

// Rendered is the result of one glyph in a batch rasterization.
type Rendered struct {
	Bitmap    *glyphscan.GrayBitmap
	Placement Placement
	Err       error
}

// RasterizeBatchSFNT renders many glyphs from one font concurrently and
// returns the results in input order.
//
// Rasterization shares nothing between calls, so the batch needs no
// synchronization beyond distributing the work: each worker goroutine owns
// its own sfnt.Buffer and glyphscan.Arena and reuses them across the glyphs
// it picks up. workers <= 0 uses GOMAXPROCS.
func RasterizeBatchSFNT(f *sfnt.Font, gids []sfnt.GlyphIndex, sizePx float64, rule glyphscan.FillRule, level glyphscan.Level, workers int) []Rendered {
	results := make([]Rendered, len(gids))
	if len(gids) == 0 {
		return results
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(gids) {
		workers = len(gids)
	}

	next := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			var buf sfnt.Buffer
			var arena glyphscan.Arena
			for i := range next {
				results[i] = renderOne(f, &buf, &arena, gids[i], sizePx, rule, level)
			}
		}()
	}
	for i := range gids {
		next <- i
	}
	close(next)
	wg.Wait()
	return results
}

func renderOne(f *sfnt.Font, buf *sfnt.Buffer, arena *glyphscan.Arena, gid sfnt.GlyphIndex, sizePx float64, rule glyphscan.FillRule, level glyphscan.Level) Rendered {
	o, place, err := FromSFNT(f, buf, gid, sizePx)
	if err != nil {
		return Rendered{Err: err}
	}
	bm, err := arena.RenderGray(place.Width, place.Height, rule, level, o)
	if err != nil {
		return Rendered{Err: err}
	}
	return Rendered{Bitmap: bm, Placement: place}
}
