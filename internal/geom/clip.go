package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"

	"plotsketch/internal/linetree"
)

func lineString(pts []Point) orb.LineString {
	ls := make(orb.LineString, len(pts))
	for i, p := range pts {
		ls[i] = orb.Point(p)
	}
	return ls
}

func points(ls []orb.Point) []Point {
	pts := make([]Point, len(ls))
	for i, p := range ls {
		pts[i] = Point(p)
	}
	return pts
}

// ClipToBox cuts every drawable in f against b. A polyline leaving and
// re-entering the box becomes several pieces; pieces shorter than two points
// are dropped.
func ClipToBox(f linetree.Flat, b BBox) linetree.Flat {
	bound := b.bound()
	out := make(linetree.Flat, 0, len(f))
	for _, d := range f {
		pts := d.Points()
		if allInside(pts, b) {
			out = append(out, d)
			continue
		}
		for _, piece := range clip.LineString(bound, lineString(pts)) {
			if leaf := Leaf(points(piece)); leaf != nil {
				out = append(out, leaf)
			}
		}
	}
	return out
}

func allInside(pts []Point, b BBox) bool {
	for _, p := range pts {
		if !b.Contains(p) {
			return false
		}
	}
	return true
}

// Simplify runs Douglas-Peucker with the given tolerance over every Path.
// Lines are already minimal and pass through.
func Simplify(f linetree.Flat, tolerance float64) linetree.Flat {
	if tolerance <= 0 {
		return f
	}
	dp := simplify.DouglasPeucker(tolerance)
	out := make(linetree.Flat, 0, len(f))
	for _, d := range f {
		p, ok := d.(linetree.Path)
		if !ok {
			out = append(out, d)
			continue
		}
		if leaf := Leaf(points(dp.LineString(lineString(p)))); leaf != nil {
			out = append(out, leaf)
		}
	}
	return out
}

// Length is the total pen-down distance of f.
func Length(f linetree.Flat) float64 {
	var total float64
	for _, d := range f {
		total += planar.Length(lineString(d.Points()))
	}
	return total
}

// Travel is the straight-line distance from the end of a to the start of b.
func Travel(a, b linetree.Drawable) float64 {
	pa, pb := a.Points(), b.Points()
	return planar.Distance(orb.Point(pa[len(pa)-1]), orb.Point(pb[0]))
}

// Fit scales f uniformly into dst, centered. With flipY the y axis is
// mirrored, for data whose y grows upward (lon/lat).
func Fit(f linetree.Flat, dst BBox, flipY bool) linetree.Flat {
	src, ok := Bounds(f)
	if !ok || dst.Empty() {
		return f
	}
	s := 1.0
	switch {
	case src.Width() > 0 && src.Height() > 0:
		s = min(dst.Width()/src.Width(), dst.Height()/src.Height())
	case src.Width() > 0:
		s = dst.Width() / src.Width()
	case src.Height() > 0:
		s = dst.Height() / src.Height()
	}
	ox := dst.MinX + (dst.Width()-src.Width()*s)/2
	oy := dst.MinY + (dst.Height()-src.Height()*s)/2
	tx := func(p Point) Point {
		x := ox + (p[0]-src.MinX)*s
		y := oy + (p[1]-src.MinY)*s
		if flipY {
			y = oy + (src.MaxY-p[1])*s
		}
		return Point{x, y}
	}
	out := make(linetree.Flat, len(f))
	for i, d := range f {
		pts := d.Points()
		np := make([]Point, len(pts))
		for j, p := range pts {
			np[j] = tx(p)
		}
		switch d.(type) {
		case linetree.Line:
			out[i] = linetree.Line{np[0], np[1]}
		default:
			out[i] = linetree.Path(np)
		}
	}
	return out
}
