package raster

import "github.com/gogpu/glyphscan/fixed"

// edge is one directed boundary segment of the flattened outline, stored in
// the form the scanline loop wants: a current crossing x that advances by a
// constant step per scanline, a winding direction, and the scanline at which
// the edge stops contributing.
type edge struct {
	// x is the crossing position at the current scanline.
	x fixed.F26Dot6

	// xStep is dx/dy, added to x when moving to the next scanline.
	xStep fixed.F26Dot6

	// yStop is the first scanline the edge does NOT cover. An edge is
	// active at scanline y iff yStart <= y < yStop.
	yStop int32

	// dir is +1 when the original segment pointed downward, -1 upward.
	dir int8
}

// newEdge builds an edge from a line segment, normalizing to top-down order
// and recording the pre-swap direction as the winding. It reports the first
// scanline the edge covers.
//
// Horizontal segments, and segments that fit between two scanlines without
// crossing either, produce no edge. Dropping zero-height segments here is
// what makes the slope division safe; they contribute no winding crossings
// anyway.
func newEdge(x0, y0, x1, y1 fixed.F26Dot6) (edge, int32, bool) {
	dy := y1 - y0
	if dy == 0 {
		return edge{}, 0, false
	}

	dir := int8(1)
	if dy < 0 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		dir = -1
	}

	// Half-open scanline range [yStart, yStop).
	yStart := int32(y0.ToIntCeil())
	yStop := int32(y1.ToIntCeil())
	if yStart >= yStop {
		return edge{}, 0, false
	}

	step := (x1 - x0).Div(y1 - y0)

	// Seed x where the edge crosses its first scanline.
	x := x0 + (fixed.FromInt(int(yStart)) - y0).Mul(step)

	return edge{x: x, xStep: step, yStop: yStop, dir: dir}, yStart, true
}

// edgeTable buckets edges by their starting scanline and maintains the
// active working set for the scanline being processed.
//
// The table is reusable: reset keeps bucket and active-list capacity, so a
// converter that renders many glyphs through one table allocates only when
// a glyph is taller or denser than anything seen before.
type edgeTable struct {
	buckets [][]edge
	active  []edge
}

// reset prepares the table for an outline of the given height in scanlines.
func (t *edgeTable) reset(height int) {
	if cap(t.buckets) < height {
		t.buckets = append(t.buckets[:cap(t.buckets)], make([][]edge, height-cap(t.buckets))...)
	}
	t.buckets = t.buckets[:height]
	for i := range t.buckets {
		t.buckets[i] = t.buckets[i][:0]
	}
	t.active = t.active[:0]
}

// insert buckets an edge at its starting scanline, clipping the start to the
// table's vertical range. Edges entirely above or below the table are
// discarded; an edge starting above scanline 0 is advanced to scanline 0 so
// its x stays consistent with its slope.
func (t *edgeTable) insert(e edge, yStart int32) {
	if e.yStop <= 0 || yStart >= int32(len(t.buckets)) {
		return
	}
	if yStart < 0 {
		e.x += fixed.FromInt(int(-yStart)).Mul(e.xStep)
		yStart = 0
	}
	t.buckets[yStart] = append(t.buckets[yStart], e)
}

// activate moves every edge starting at scanline y into the active set.
func (t *edgeTable) activate(y int) {
	t.active = append(t.active, t.buckets[y]...)
}

// expire drops edges whose span no longer covers scanline y. This must run
// before span emission for y: an edge removed one scanline late toggles the
// winding once too often and paints a stray line across glyph counters.
func (t *edgeTable) expire(y int) {
	kept := t.active[:0]
	for _, e := range t.active {
		if e.yStop > int32(y) {
			kept = append(kept, e)
		}
	}
	t.active = kept
}

// sortActive orders the active set by current x. Insertion sort: the set is
// small and nearly sorted from the previous scanline.
func (t *edgeTable) sortActive() {
	for i := 1; i < len(t.active); i++ {
		e := t.active[i]
		j := i - 1
		for j >= 0 && t.active[j].x > e.x {
			t.active[j+1] = t.active[j]
			j--
		}
		t.active[j+1] = e
	}
}

// step advances every active edge to the next scanline.
func (t *edgeTable) step() {
	for i := range t.active {
		t.active[i].x += t.active[i].xStep
	}
}
