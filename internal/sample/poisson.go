// Package sample spreads points over a rectangle with Poisson-disc spacing.
package sample

import (
	"math"
	"math/rand/v2"

	"plotsketch/internal/geom"
	"plotsketch/internal/linetree"
)

// Sampler places points so that no two are closer than the spacing returned
// by Density at the newer point. Density must stay within [MinDist, MaxDist];
// nil means MinDist everywhere.
type Sampler struct {
	Bounds   geom.BBox
	MinDist  float64
	MaxDist  float64
	Density  func(linetree.Point) float64
	Attempts int // candidates tried around each active point, default 30
	Limit    int // stop after this many points, 0 for no limit
}

// Sample runs Bridson's algorithm with a variable radius.
func (s Sampler) Sample(rng *rand.Rand) []linetree.Point {
	if s.Bounds.Empty() || s.MinDist <= 0 {
		return nil
	}
	maxDist := max(s.MaxDist, s.MinDist)
	attempts := s.Attempts
	if attempts <= 0 {
		attempts = 30
	}
	radius := func(p linetree.Point) float64 {
		if s.Density == nil {
			return s.MinDist
		}
		return math.Min(maxDist, math.Max(s.MinDist, s.Density(p)))
	}

	cell := s.MinDist / math.Sqrt2
	cols := int(math.Ceil(s.Bounds.Width()/cell)) + 1
	rows := int(math.Ceil(s.Bounds.Height()/cell)) + 1
	grid := make([][]int, cols*rows)
	reach := int(math.Ceil(maxDist / cell))

	cellOf := func(p linetree.Point) (int, int) {
		return int((p[0] - s.Bounds.MinX) / cell), int((p[1] - s.Bounds.MinY) / cell)
	}
	var pts []linetree.Point
	fits := func(c linetree.Point) bool {
		if !s.Bounds.Contains(c) {
			return false
		}
		r := radius(c)
		cx, cy := cellOf(c)
		for y := max(0, cy-reach); y <= min(rows-1, cy+reach); y++ {
			for x := max(0, cx-reach); x <= min(cols-1, cx+reach); x++ {
				for _, i := range grid[y*cols+x] {
					if geom.Distance(pts[i], c) < r {
						return false
					}
				}
			}
		}
		return true
	}
	add := func(p linetree.Point) {
		cx, cy := cellOf(p)
		grid[cy*cols+cx] = append(grid[cy*cols+cx], len(pts))
		pts = append(pts, p)
	}

	first := linetree.Point{
		s.Bounds.MinX + rng.Float64()*s.Bounds.Width(),
		s.Bounds.MinY + rng.Float64()*s.Bounds.Height(),
	}
	add(first)
	active := []int{0}
	for len(active) > 0 {
		if s.Limit > 0 && len(pts) >= s.Limit {
			break
		}
		ai := rng.IntN(len(active))
		p := pts[active[ai]]
		r := radius(p)
		placed := false
		for range attempts {
			c := geom.Add(p, geom.Polar(r*(1+rng.Float64()), rng.Float64()*2*math.Pi))
			if fits(c) {
				add(c)
				active = append(active, len(pts)-1)
				placed = true
				break
			}
		}
		if !placed {
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}
	return pts
}
