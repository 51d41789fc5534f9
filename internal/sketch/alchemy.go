package sketch

import (
	"fmt"

	"plotsketch/internal/geom"
	"plotsketch/internal/linetree"
	"plotsketch/internal/paper"
)

func init() {
	Register(&Sketch{
		Name:        "alchemy",
		Description: "row of regular polygons with spokes to the opposite side",
		Orientation: paper.Landscape,
		Margin:      1,
		ClosePaths:  true,
		Defaults: Params{
			"polygons": 5,
			"smallest": 3,
			"radius":   2,
		},
		Generate: alchemy,
	})
}

func alchemy(e Env) (linetree.Tree, error) {
	n, smallest, r := e.Int("polygons"), e.Int("smallest"), e.Param("radius")
	if n < 0 {
		return nil, fmt.Errorf("polygons must not be negative, got %d", n)
	}
	if smallest < 3 {
		return nil, fmt.Errorf("smallest polygon needs 3 sides, got %d", smallest)
	}
	if r <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %g", r)
	}
	working := e.Width - e.Margin
	tree := make(linetree.Node, 0, n)
	for k := 0; k < n; k++ {
		center := geom.Point{e.Margin + r + float64(k)/float64(n)*working, e.Height / 2}
		border := geom.RegularPolygon(smallest+k, center, r, 0)
		spokes := make(linetree.Node, len(border))
		for i, v := range border {
			spokes[i] = linetree.Line{v, opposite(border, i)}
		}
		tree = append(tree, linetree.Node{linetree.Path(border), spokes})
	}
	return tree, nil
}

// opposite is the vertex across from poly[i], or for an odd polygon the
// midpoint of the edge across from it.
func opposite(poly []geom.Point, i int) geom.Point {
	n := len(poly)
	j := (i + n/2) % n
	if n%2 == 0 {
		return poly[j]
	}
	return geom.Midpoint(poly[j], poly[(j+1)%n])
}
