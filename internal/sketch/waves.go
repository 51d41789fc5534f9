package sketch

import (
	"fmt"
	"math"

	"plotsketch/internal/linetree"
	"plotsketch/internal/paper"
	"plotsketch/internal/sample"
)

func init() {
	Register(&Sketch{
		Name:        "waves",
		Description: "short ticks scattered with noise-driven Poisson spacing",
		Orientation: paper.Landscape,
		Margin:      1,
		Defaults: Params{
			"min_distance": 0.5,
			"max_distance": 1,
			"scale":        0.15,
			"tick":         0.1,
		},
		Generate: waves,
	})
}

func waves(e Env) (linetree.Tree, error) {
	minD, maxD := e.Param("min_distance"), e.Param("max_distance")
	if minD <= 0 {
		return nil, fmt.Errorf("min_distance must be positive, got %g", minD)
	}
	scale, tick := e.Param("scale"), e.Param("tick")
	s := sample.Sampler{
		Bounds:  e.Page(),
		MinDist: minD,
		MaxDist: maxD,
		Density: func(p linetree.Point) float64 {
			n := math.Abs(e.Noise.Eval2(p[0]*scale, p[1]*scale))
			return minD + n*(maxD-minD)
		},
	}
	pts := s.Sample(e.Rand)
	tree := make(linetree.Node, len(pts))
	for i, p := range pts {
		tree[i] = linetree.Line{{p[0] + tick, p[1]}, p}
	}
	return tree, nil
}
