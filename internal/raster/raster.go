// Package raster draws plots to PNG previews.
package raster

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"

	"plotsketch/internal/sketch"
)

// DefaultScale is the preview resolution in pixels per centimeter.
const DefaultScale = 40.0

// Draw renders p at scale pixels per centimeter: black strokes on white, each
// drawable traced from its first point and never closed implicitly.
func Draw(p *sketch.Plot, scale float64) (image.Image, error) {
	ctx, err := draw(p, scale)
	if err != nil {
		return nil, err
	}
	return ctx.Image(), nil
}

func draw(p *sketch.Plot, scale float64) (*gg.Context, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	w, h := int(math.Ceil(p.Width*scale)), int(math.Ceil(p.Height*scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: empty page %gx%g", p.Width, p.Height)
	}
	ctx := gg.NewContext(w, h)
	ctx.DrawRectangle(0, 0, float64(w), float64(h))
	ctx.SetRGBA(1, 1, 1, 1)
	ctx.Fill()

	ctx.SetRGB(0, 0, 0)
	ctx.SetLineWidth(math.Max(1, p.PenWidth*scale))
	ctx.SetLineCap(gg.LineCapRound)
	ctx.SetLineJoin(gg.LineJoinRound)
	for _, d := range p.Lines {
		pts := d.Points()
		ctx.MoveTo(pts[0][0]*scale, pts[0][1]*scale)
		for _, pt := range pts[1:] {
			ctx.LineTo(pt[0]*scale, pt[1]*scale)
		}
		ctx.Stroke()
	}
	return ctx, nil
}

// Write encodes the preview of p as PNG.
func Write(w io.Writer, p *sketch.Plot, scale float64) error {
	ctx, err := draw(p, scale)
	if err != nil {
		return err
	}
	if err := ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	return nil
}
