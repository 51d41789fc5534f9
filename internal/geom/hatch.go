package geom

import (
	"math"

	"plotsketch/internal/linetree"
)

// Hatch fills the convex polygon poly with parallel lines spaced apart,
// running at angle radians. Concave input gets one line per scanline spanning
// its outermost crossings.
func Hatch(poly []Point, spacing, angle float64) []linetree.Line {
	if len(poly) < 3 || spacing <= 0 {
		return nil
	}
	sin, cos := math.Sincos(-angle)
	rot := make([]Point, len(poly))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range poly {
		rot[i] = Point{p[0]*cos - p[1]*sin, p[0]*sin + p[1]*cos}
		minY = math.Min(minY, rot[i][1])
		maxY = math.Max(maxY, rot[i][1])
	}

	sin, cos = math.Sincos(angle)
	back := func(x, y float64) Point { return Point{x*cos - y*sin, x*sin + y*cos} }

	var out []linetree.Line
	for y := minY + spacing/2; y < maxY; y += spacing {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := range rot {
			a, b := rot[i], rot[(i+1)%len(rot)]
			if (a[1] <= y) == (b[1] <= y) {
				continue
			}
			x := a[0] + (y-a[1])/(b[1]-a[1])*(b[0]-a[0])
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
		if hi > lo {
			out = append(out, linetree.Line{back(lo, y), back(hi, y)})
		}
	}
	return out
}
