package geom

import (
	"github.com/paulmach/orb"

	"plotsketch/internal/linetree"
)

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Box returns the bbox spanning (x0, y0)-(x1, y1).
func Box(x0, y0, x1, y1 float64) BBox {
	return BBox{MinX: min(x0, x1), MinY: min(y0, y1), MaxX: max(x0, x1), MaxY: max(y0, y1)}
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Empty reports whether b has no area.
func (b BBox) Empty() bool { return !(b.MaxX > b.MinX && b.MaxY > b.MinY) }

// Inset shrinks b by d on every side.
func (b BBox) Inset(d float64) BBox {
	return BBox{MinX: b.MinX + d, MinY: b.MinY + d, MaxX: b.MaxX - d, MaxY: b.MaxY - d}
}

func (b BBox) Contains(p linetree.Point) bool {
	return p[0] >= b.MinX && p[0] <= b.MaxX && p[1] >= b.MinY && p[1] <= b.MaxY
}

func (b BBox) bound() orb.Bound {
	return orb.Bound{Min: orb.Point{b.MinX, b.MinY}, Max: orb.Point{b.MaxX, b.MaxY}}
}

// Bounds returns the bbox of every point in f. ok is false when f has no points.
func Bounds(f linetree.Flat) (bbox BBox, ok bool) {
	n := 0
	for _, d := range f {
		for _, p := range d.Points() {
			if n == 0 {
				bbox = BBox{MinX: p[0], MinY: p[1], MaxX: p[0], MaxY: p[1]}
			} else {
				if p[0] < bbox.MinX {
					bbox.MinX = p[0]
				}
				if p[1] < bbox.MinY {
					bbox.MinY = p[1]
				}
				if p[0] > bbox.MaxX {
					bbox.MaxX = p[0]
				}
				if p[1] > bbox.MaxY {
					bbox.MaxY = p[1]
				}
			}
			n++
		}
	}
	return bbox, n > 0
}
