package sketch

import (
	"fmt"

	"plotsketch/internal/geom"
	"plotsketch/internal/linetree"
	"plotsketch/internal/paper"
)

func init() {
	Register(&Sketch{
		Name:        "polygon-tube",
		Description: "noisy circles marching away from a center with growing radii",
		Orientation: paper.Landscape,
		Margin:      2.5,
		ClosePaths:  true,
		Defaults: Params{
			"circles":    200,
			"sides":      300,
			"min_radius": 1.5,
			"max_radius": 7.5,
			"z_spacing":  0.125,
			"strength":   1.5,
			"scale":      0.15,
		},
		Generate: polygonTube,
	})
}

func polygonTube(e Env) (linetree.Tree, error) {
	circles, sides := e.Int("circles"), e.Int("sides")
	if circles < 0 {
		return nil, fmt.Errorf("circles must not be negative, got %d", circles)
	}
	if sides < 3 {
		return nil, fmt.Errorf("sides must be at least 3, got %d", sides)
	}
	minR, maxR := e.Param("min_radius"), e.Param("max_radius")
	scale, strength, dz := e.Param("scale"), e.Param("strength"), e.Param("z_spacing")
	ww, wh := e.Width-e.Margin, e.Height-e.Margin
	center := geom.Point{2 * e.Width / 7, 3 * e.Height / 4}

	tree := make(linetree.Node, 0, circles)
	for k := 0; k < circles; k++ {
		t := float64(k) / float64(circles)
		pos := geom.Add(center, geom.Point{1.25 * ww / 7 * t, -wh / 4 * t})
		ring := geom.RegularPolygon(sides, pos, minR+(maxR-minR)*t, 0)
		for i, v := range ring {
			amount := strength * e.Noise.Eval3(scale*v[0], scale*v[1], scale*float64(k)*dz)
			ring[i] = geom.Add(v, geom.Polar(amount, geom.Angle(geom.Sub(center, v))))
		}
		tree = append(tree, linetree.Path(ring))
	}
	return tree, nil
}
