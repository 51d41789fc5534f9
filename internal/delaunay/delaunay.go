// Package delaunay triangulates point sets with the Bowyer-Watson algorithm
// and derives Voronoi cells from the triangulation.
package delaunay

import (
	"math"
	"sort"

	"plotsketch/internal/linetree"
)

type Point = linetree.Point

// Triangle references three vertices by index.
type Triangle struct {
	Nodes [3]int

	cx, cy, r2 float64
}

type edge struct{ a, b int }

func newEdge(a, b int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a, b}
}

func (t *Triangle) circumcircle(pts []Point) bool {
	p0, p1, p2 := pts[t.Nodes[0]], pts[t.Nodes[1]], pts[t.Nodes[2]]
	ax, ay := p1[0]-p0[0], p1[1]-p0[1]
	bx, by := p2[0]-p0[0], p2[1]-p0[1]
	d := 2 * (ax*by - ay*bx)
	if d == 0 {
		return false
	}
	m := ax*ax + ay*ay
	u := bx*bx + by*by
	ux := (by*m - ay*u) / d
	uy := (ax*u - bx*m) / d
	t.cx, t.cy = p0[0]+ux, p0[1]+uy
	t.r2 = ux*ux + uy*uy
	return true
}

// Center is the circumcenter of t.
func (t Triangle) Center() Point { return Point{t.cx, t.cy} }

func (t Triangle) inCircle(p Point) bool {
	dx, dy := t.cx-p[0], t.cy-p[1]
	return dx*dx+dy*dy < t.r2
}

func (t Triangle) has(i int) bool {
	return t.Nodes[0] == i || t.Nodes[1] == i || t.Nodes[2] == i
}

// Triangulate returns the Delaunay triangles of pts. Duplicate and
// collinear-only inputs yield fewer (possibly zero) triangles.
func Triangulate(pts []Point) []Triangle {
	if len(pts) < 3 {
		return nil
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, minY = math.Min(minX, p[0]), math.Min(minY, p[1])
		maxX, maxY = math.Max(maxX, p[0]), math.Max(maxY, p[1])
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		return nil
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	// work on a copy extended with the super triangle
	n := len(pts)
	all := make([]Point, n, n+3)
	copy(all, pts)
	all = append(all,
		Point{midX - 20*span, midY - span},
		Point{midX, midY + 20*span},
		Point{midX + 20*span, midY - span},
	)
	super := Triangle{Nodes: [3]int{n, n + 1, n + 2}}
	super.circumcircle(all)
	tris := []Triangle{super}

	for i := 0; i < n; i++ {
		p := all[i]
		count := map[edge]int{}
		var order []edge
		keep := tris[:0:0]
		for _, t := range tris {
			if !t.inCircle(p) {
				keep = append(keep, t)
				continue
			}
			for _, e := range []edge{
				newEdge(t.Nodes[0], t.Nodes[1]),
				newEdge(t.Nodes[1], t.Nodes[2]),
				newEdge(t.Nodes[2], t.Nodes[0]),
			} {
				if count[e] == 0 {
					order = append(order, e)
				}
				count[e]++
			}
		}
		for _, e := range order {
			if count[e] != 1 {
				continue
			}
			t := Triangle{Nodes: [3]int{e.a, e.b, i}}
			if t.circumcircle(all) {
				keep = append(keep, t)
			}
		}
		tris = keep
	}

	out := tris[:0]
	for _, t := range tris {
		if t.has(n) || t.has(n+1) || t.has(n+2) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Edges returns every triangle edge once, as index pairs.
func Edges(tris []Triangle) [][2]int {
	seen := map[edge]bool{}
	var out [][2]int
	for _, t := range tris {
		for k := 0; k < 3; k++ {
			e := newEdge(t.Nodes[k], t.Nodes[(k+1)%3])
			if seen[e] {
				continue
			}
			seen[e] = true
			out = append(out, [2]int{e.a, e.b})
		}
	}
	return out
}

// Cell is the Voronoi region of one site.
type Cell struct {
	Site    int
	Polygon []Point // vertices in counter-clockwise order
}

// Voronoi returns the bounded Voronoi cells of pts: one per site whose
// triangle fan closes around it. Sites on the convex hull have unbounded
// cells and are left out.
func Voronoi(pts []Point, tris []Triangle) []Cell {
	incident := make([][]int, len(pts))
	for ti, t := range tris {
		for _, v := range t.Nodes {
			incident[v] = append(incident[v], ti)
		}
	}
	var cells []Cell
	for site, ts := range incident {
		if len(ts) < 3 || !closedFan(site, ts, tris) {
			continue
		}
		s := pts[site]
		poly := make([]Point, len(ts))
		for i, ti := range ts {
			poly[i] = tris[ti].Center()
		}
		sort.Slice(poly, func(i, j int) bool {
			return math.Atan2(poly[i][1]-s[1], poly[i][0]-s[0]) < math.Atan2(poly[j][1]-s[1], poly[j][0]-s[0])
		})
		cells = append(cells, Cell{Site: site, Polygon: poly})
	}
	return cells
}

// closedFan reports whether every neighbor of site is shared by exactly two
// of its triangles.
func closedFan(site int, ts []int, tris []Triangle) bool {
	seen := map[int]int{}
	for _, ti := range ts {
		for _, v := range tris[ti].Nodes {
			if v != site {
				seen[v]++
			}
		}
	}
	for _, c := range seen {
		if c != 2 {
			return false
		}
	}
	return true
}
