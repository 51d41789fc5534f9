package sketch

import (
	"fmt"
	"math"

	"plotsketch/internal/delaunay"
	"plotsketch/internal/geom"
	"plotsketch/internal/linetree"
	"plotsketch/internal/paper"
	"plotsketch/internal/sample"
)

func init() {
	Register(&Sketch{
		Name:        "voronoi",
		Description: "hatched Voronoi tiles, dense at the center and thinning outward",
		Orientation: paper.Landscape,
		Margin:      2,
		ClosePaths:  true,
		Defaults: Params{
			"min_density":     0.25,
			"max_density":     5,
			"center_distance": 5,
			"center_core":     0.75,
			"tile_filter":     0.35,
			"min_hatch":       0.05,
			"max_hatch":       1,
			"hatch":           1,
			"outline":         1,
		},
		Generate: voronoi,
	})
}

func voronoi(e Env) (linetree.Tree, error) {
	minD, maxD := e.Param("min_density"), e.Param("max_density")
	if minD <= 0 {
		return nil, fmt.Errorf("min_density must be positive, got %g", minD)
	}
	center := e.Center()
	centerDist := e.Param("center_distance")
	core := e.Param("center_core")
	reach := (e.Width - e.Margin) / 2

	// 0 near the center, growing quadratically past center_distance
	falloff := func(v geom.Point) float64 {
		d := math.Max(0, geom.Distance(v, center)-centerDist)
		return math.Pow(d/reach, 2)
	}

	s := sample.Sampler{
		Bounds:  e.Page(),
		MinDist: minD,
		MaxDist: maxD,
		Density: func(v linetree.Point) float64 { return minD + falloff(v)*(maxD-minD) },
	}
	sites := s.Sample(e.Rand)
	cells := delaunay.Voronoi(sites, delaunay.Triangulate(sites))

	var hatches, outlines linetree.Node
	minH, maxH := e.Param("min_hatch"), e.Param("max_hatch")
	for _, c := range cells {
		site := sites[c.Site]
		if d := geom.Distance(site, center); d <= centerDist && d >= core {
			continue
		}
		if e.Rand.Float64()*e.Param("tile_filter") <= falloff(site) {
			continue
		}
		if e.Flag("hatch") {
			spacing := minH + falloff(c.Polygon[0])*(maxH-minH)
			for _, l := range geom.Hatch(c.Polygon, spacing, e.Rand.Float64()*2*math.Pi) {
				hatches = append(hatches, l)
			}
		}
		if e.Flag("outline") {
			outlines = append(outlines, linetree.Path(c.Polygon))
		}
	}
	return linetree.Node{hatches, outlines}, nil
}
