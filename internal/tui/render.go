package tui

import (
	"math"
	"strings"
)

// project returns the micro-pixels per cm and the micro offset of the page
// origin for a w x h cell canvas. The page keeps its aspect ratio; braille
// dots are close enough to square.
func (m Model) project(w, h int) (scale, ox, oy float64, ok bool) {
	if m.plot == nil || m.plot.Width <= 0 || m.plot.Height <= 0 || w <= 1 || h <= 1 {
		return 0, 0, 0, false
	}
	wMic, hMic := float64(w*2-1), float64(h*4-1)
	scale = math.Min(wMic/m.plot.Width, hMic/m.plot.Height) * m.zoom
	ox = (wMic-m.plot.Width*scale)/2 + float64(m.offsetX*2)
	oy = (hMic-m.plot.Height*scale)/2 + float64(m.offsetY*4)
	return scale, ox, oy, true
}

// screenXYMicro maps page cm into the 2x4 microgrid per cell.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	s, ox, oy, ok := m.project(w, h)
	if !ok {
		return 0, 0, false
	}
	return int(math.Round(ox + x*s)), int(math.Round(oy + y*s)), true
}

// cellToCm converts a canvas cell back to page coordinates.
func (m Model) cellToCm(cx, cy, w, h int) (float64, float64, bool) {
	s, ox, oy, ok := m.project(w, h)
	if !ok {
		return 0, 0, false
	}
	mx, my := float64(cx*2)+0.5, float64(cy*4)+1.5
	return (mx - ox) / s, (my - oy) / s, true
}

func (m Model) renderCanvas(w, h int) string {
	if m.plot == nil {
		return dimStyle.Render("no plot: Tab opens the sketch list, p pastes a line tree")
	}
	page := newBrailleBuf(w, h)
	br := newBrailleBuf(w, h)

	// page outline
	corners := [][2]float64{{0, 0}, {m.plot.Width, 0}, {m.plot.Width, m.plot.Height}, {0, m.plot.Height}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		ax, ay, _ := m.screenXYMicro(a[0], a[1], w, h)
		bx, by, _ := m.screenXYMicro(b[0], b[1], w, h)
		page.drawLineMicro(ax, ay, bx, by)
	}

	for _, d := range m.plot.Lines {
		var prev *[2]int
		for _, p := range d.Points() {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			if prev != nil {
				br.drawLineMicro(prev[0], prev[1], mx, my)
			}
			prev = &[2]int{mx, my}
		}
	}

	// plot dots win over the page outline
	pageLines, plotLines := page.toLines(), br.toLines()
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		pr, dr := []rune(pageLines[y]), []rune(plotLines[y])
		var sb strings.Builder
		hx := -1
		if m.hovering && m.hoverMicY/4 == y {
			hx = m.hoverMicX / 2
		}
		for x := range dr {
			switch {
			case x == hx:
				sb.WriteString(hoverStyle.Render("◯"))
			case dr[x] != ' ':
				sb.WriteRune(dr[x])
			case pr[x] != ' ':
				sb.WriteString(pageStyle.Render(string(pr[x])))
			default:
				sb.WriteRune(' ')
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// nearestVertex finds the drawable vertex closest to micro point (hx, hy).
func (m Model) nearestVertex(hx, hy, w, h int) (int, int, bool) {
	if m.plot == nil {
		return 0, 0, false
	}
	best := math.MaxInt
	var bx, by int
	for _, d := range m.plot.Lines {
		for _, p := range d.Points() {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			dx, dy := mx-hx, my-hy
			if dd := dx*dx + dy*dy; dd < best {
				best, bx, by = dd, mx, my
			}
		}
	}
	return bx, by, best != math.MaxInt
}
