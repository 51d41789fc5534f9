// Package geom holds the small amount of plane geometry the sketches share:
// vector arithmetic, regular polygons, clipping and simplification of flat
// line lists, and importers that turn GeoJSON/WKT/JSON files into line trees.
package geom

import (
	"math"

	"plotsketch/internal/linetree"
)

type Point = linetree.Point

// Add returns a+b.
func Add(a, b Point) Point { return Point{a[0] + b[0], a[1] + b[1]} }

// Sub returns a-b.
func Sub(a, b Point) Point { return Point{a[0] - b[0], a[1] - b[1]} }

// Scale multiplies both coordinates of a by s.
func Scale(a Point, s float64) Point { return Point{a[0] * s, a[1] * s} }

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point { return Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2} }

// Angle is the direction of v in radians, in (-pi, pi].
func Angle(v Point) float64 { return math.Atan2(v[1], v[0]) }

// Polar builds the vector of length r pointing at angle.
func Polar(r, angle float64) Point { return Point{r * math.Cos(angle), r * math.Sin(angle)} }

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 { return math.Hypot(a[0]-b[0], a[1]-b[1]) }

// Avg is the centroid of the vertices in pts.
func Avg(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range pts {
		c[0] += p[0]
		c[1] += p[1]
	}
	return Scale(c, 1/float64(len(pts)))
}

// RegularPolygon returns n vertices on the circle of the given radius around
// center. With offset 0 the first vertex points along +y.
func RegularPolygon(n int, center Point, radius, offset float64) []Point {
	if n <= 0 {
		return nil
	}
	offset += math.Pi / 2
	pts := make([]Point, n)
	for i := range pts {
		rot := offset + float64(i)*2*math.Pi/float64(n)
		pts[i] = Point{center[0] + radius*math.Cos(rot), center[1] + radius*math.Sin(rot)}
	}
	return pts
}

// Ring returns pts with the first vertex repeated at the end.
func Ring(pts []Point) linetree.Path {
	if len(pts) == 0 {
		return nil
	}
	out := make(linetree.Path, 0, len(pts)+1)
	out = append(out, pts...)
	return append(out, pts[0])
}

// Leaf wraps pts as the matching drawable: two points make a Line, three or
// more a Path. Shorter inputs return nil.
func Leaf(pts []Point) linetree.Drawable {
	switch {
	case len(pts) == 2:
		return linetree.Line{pts[0], pts[1]}
	case len(pts) >= 3:
		return linetree.Path(pts)
	}
	return nil
}
