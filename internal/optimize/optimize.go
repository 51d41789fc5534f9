// Package optimize reorders plotter paths to cut pen-up travel.
package optimize

import (
	"plotsketch/internal/geom"
	"plotsketch/internal/linetree"
)

// Stats summarizes a flat plot.
type Stats struct {
	Lines, Paths, Points int
	DrawLength           float64 // pen down
	TravelLength         float64 // pen up, between drawables
}

// Measure computes Stats for f drawn in order.
func Measure(f linetree.Flat) Stats {
	var s Stats
	s.Lines, s.Paths, s.Points = f.Count()
	s.DrawLength = geom.Length(f)
	for i := 1; i < len(f); i++ {
		s.TravelLength += geom.Travel(f[i-1], f[i])
	}
	return s
}

// Order returns f greedily reordered: starting from the origin, always draw
// next the drawable whose nearest end is closest to the pen, reversing it
// when its far end is the closer one. The result has the same drawables.
func Order(f linetree.Flat) linetree.Flat {
	if len(f) < 2 {
		return f
	}
	used := make([]bool, len(f))
	out := make(linetree.Flat, 0, len(f))
	pen := linetree.Point{}
	for range f {
		best, bestD, rev := -1, 0.0, false
		for i, d := range f {
			if used[i] {
				continue
			}
			pts := d.Points()
			if ds := geom.Distance(pen, pts[0]); best < 0 || ds < bestD {
				best, bestD, rev = i, ds, false
			}
			if de := geom.Distance(pen, pts[len(pts)-1]); de < bestD {
				best, bestD, rev = i, de, true
			}
		}
		used[best] = true
		d := f[best]
		if rev {
			d = reverse(d)
		}
		out = append(out, d)
		pts := d.Points()
		pen = pts[len(pts)-1]
	}
	return out
}

func reverse(d linetree.Drawable) linetree.Drawable {
	switch v := d.(type) {
	case linetree.Line:
		return linetree.Line{v[1], v[0]}
	case linetree.Path:
		out := make(linetree.Path, len(v))
		for i, p := range v {
			out[len(v)-1-i] = p
		}
		return out
	}
	return d
}
