package sketch

import (
	"fmt"
	"math"

	"plotsketch/internal/linetree"
	"plotsketch/internal/paper"
)

func init() {
	Register(&Sketch{
		Name:        "noise-lines",
		Description: "vertical lines bent by simplex noise, stronger toward the bottom",
		Orientation: paper.Portrait,
		Margin:      1.5,
		Defaults: Params{
			"lines":    200,
			"segments": 300,
			"scale":    3,
			"strength": 12,
		},
		Generate: noiseLines,
	})
}

func noiseLines(e Env) (linetree.Tree, error) {
	rows, segs := e.Int("lines"), e.Int("segments")
	scale, strength := e.Param("scale"), e.Param("strength")
	if rows < 0 {
		return nil, fmt.Errorf("lines must not be negative, got %d", rows)
	}
	if segs < 3 {
		return nil, fmt.Errorf("segments must be at least 3, got %d", segs)
	}
	if scale == 0 {
		return nil, fmt.Errorf("scale must be non-zero")
	}
	tree := make(linetree.Node, 0, rows)
	for row := 0; row < rows; row++ {
		xr := float64(row) / float64(rows)
		edge := math.Min(xr, 1-xr)
		line := make(linetree.Path, segs)
		for col := range line {
			yr := float64(col) / float64(segs)
			bx, by := e.Width*xr, e.Height*yr
			n := strength * e.Noise.Eval2(bx/scale, by/scale)
			line[col] = linetree.Point{bx + edge*n*yr*yr*yr, by}
		}
		tree = append(tree, line)
	}
	return tree, nil
}
