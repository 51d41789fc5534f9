// Package svgout writes plots as plotter-ready SVG: the document is sized in
// centimeters and user units are thousandths of a centimeter.
package svgout

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"plotsketch/internal/sketch"
)

// Units is the number of SVG user units per centimeter.
const Units = 1000

// errWriter remembers the first write error, since svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func scale(v float64) int { return int(math.Round(v * Units)) }

// Write renders p to w, one polyline per drawable.
func Write(w io.Writer, p *sketch.Plot) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startraw(
		fmt.Sprintf(`width="%gcm"`, p.Width),
		fmt.Sprintf(`height="%gcm"`, p.Height),
		fmt.Sprintf(`viewBox="0 0 %d %d"`, scale(p.Width), scale(p.Height)),
		`xmlns="http://www.w3.org/2000/svg"`,
	)
	canvas.Title(p.Name)
	canvas.Desc(fmt.Sprintf("seed %d, %d drawables", p.Seed, len(p.Lines)))
	canvas.Gstyle(fmt.Sprintf("fill:none;stroke:black;stroke-width:%d;stroke-linecap:round;stroke-linejoin:round", max(1, scale(p.PenWidth))))
	for _, d := range p.Lines {
		pts := d.Points()
		xs, ys := make([]int, len(pts)), make([]int, len(pts))
		for i, pt := range pts {
			xs[i], ys[i] = scale(pt[0]), scale(pt[1])
		}
		canvas.Polyline(xs, ys)
	}
	canvas.Gend()
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("svgout: %w", ew.err)
	}
	return nil
}
