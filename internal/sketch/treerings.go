package sketch

import (
	"fmt"
	"math"

	"plotsketch/internal/geom"
	"plotsketch/internal/linetree"
	"plotsketch/internal/paper"
)

func init() {
	Register(&Sketch{
		Name:        "tree-rings",
		Description: "concentric rings warped by octave simplex noise",
		Orientation: paper.Landscape,
		Margin:      1,
		ClosePaths:  true,
		Defaults: Params{
			"circles":    60,
			"sides":      300,
			"min_radius": 0.1,
			"max_radius": 7.5,
			"strength":   1,
			"scale":      0.05,
			"octaves":    5,
		},
		Generate: treeRings,
	})
}

func treeRings(e Env) (linetree.Tree, error) {
	circles, sides := e.Int("circles"), e.Int("sides")
	if circles < 0 {
		return nil, fmt.Errorf("circles must not be negative, got %d", circles)
	}
	if sides < 3 {
		return nil, fmt.Errorf("sides must be at least 3, got %d", sides)
	}
	minR, maxR := e.Param("min_radius"), e.Param("max_radius")
	strength := e.Param("strength")
	center := e.Center()
	noise := octaves(e, e.Param("scale"), e.Int("octaves"))

	// ring 0 has radius min_radius and collapses to a dot, so start at 1
	tree := make(linetree.Node, 0, circles)
	for k := 1; k < circles; k++ {
		r := minR + maxR*math.Sin(math.Pi*float64(k)/float64(circles))
		ring := geom.RegularPolygon(sides, center, r, 0)
		for i, v := range ring {
			ring[i] = geom.Add(v, geom.Polar(strength*noise(v), geom.Angle(geom.Sub(center, v))))
		}
		tree = append(tree, linetree.Path(ring))
	}
	return tree, nil
}

// octaves sums depth+1 layers of noise, halving strength and wavelength each
// layer.
func octaves(e Env, scale float64, depth int) func(geom.Point) float64 {
	return func(v geom.Point) float64 {
		sum, strength, freq := 0.0, 1.0, 1.0
		for d := 0; d <= depth; d++ {
			sum += strength * e.Noise.Eval2(scale*v[0]/freq, scale*v[1]/freq)
			strength /= 2
			freq /= 2
		}
		return sum
	}
}
