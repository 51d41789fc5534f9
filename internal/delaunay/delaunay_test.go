package delaunay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexagon() []Point {
	pts := []Point{{0, 0}}
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		pts = append(pts, Point{math.Cos(a), math.Sin(a)})
	}
	return pts
}

func TestTriangulateHexagon(t *testing.T) {
	pts := hexagon()
	tris := Triangulate(pts)
	require.Len(t, tris, 6)
	for _, tr := range tris {
		assert.True(t, tr.has(0), "every triangle touches the center: %v", tr.Nodes)
	}
	assert.Len(t, Edges(tris), 12)
}

func TestTriangulateEmptyInputs(t *testing.T) {
	assert.Nil(t, Triangulate(nil))
	assert.Nil(t, Triangulate([]Point{{0, 0}, {1, 1}}))
	assert.Nil(t, Triangulate([]Point{{1, 1}, {1, 1}, {1, 1}}))
}

func TestTriangulateIsDelaunay(t *testing.T) {
	pts := []Point{{0, 0}, {4, 0.3}, {8, 0}, {1, 3}, {5, 4}, {8.2, 3.5}, {0.4, 7}, {4.1, 8}, {7.7, 7.2}, {3, 2}}
	tris := Triangulate(pts)
	require.NotEmpty(t, tris)
	for _, tr := range tris {
		for i, p := range pts {
			if tr.has(i) {
				continue
			}
			assert.False(t, tr.inCircle(p), "point %d inside circumcircle of %v", i, tr.Nodes)
		}
	}
}

func TestVoronoiHexagon(t *testing.T) {
	pts := hexagon()
	cells := Voronoi(pts, Triangulate(pts))
	require.Len(t, cells, 1)
	c := cells[0]
	assert.Equal(t, 0, c.Site)
	require.Len(t, c.Polygon, 6)
	for _, v := range c.Polygon {
		assert.InDelta(t, 1/math.Sqrt(3), math.Hypot(v[0], v[1]), 1e-9)
	}
	// counter-clockwise around the site
	prev := math.Inf(-1)
	for _, v := range c.Polygon {
		a := math.Atan2(v[1], v[0])
		assert.Greater(t, a, prev)
		prev = a
	}
}
