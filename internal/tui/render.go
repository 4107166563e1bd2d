package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pacermap/internal/track"
)

// cellToLatLon converts a map cell coordinate back to lat/lon in the visible region.
func (m Model) cellToLatLon(cx, cy, w, h int) (float64, float64, bool) {
	v, ok := m.visible()
	if !ok || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	nx := float64(cx) / float64(w-1)
	ny := 1.0 - float64(cy)/float64(h-1)
	return v.MinLat + ny*v.LatSpan(), v.MinLon + nx*v.LonSpan(), true
}

// microXY maps a coordinate onto the 2x4 per cell braille grid. The result
// may lie outside the canvas.
func microXY(v track.Region, c track.Coordinate, w, h int) (float64, float64) {
	nx := (c.Lon - v.MinLon) / v.LonSpan()
	ny := (c.Lat - v.MinLat) / v.LatSpan()
	return nx * float64(w*2-1), (1.0 - ny) * float64(h*4-1)
}

// screenXYMicro is microXY rounded to a dot. ok is false when nothing is
// visible or the dot is off canvas.
func (m Model) screenXYMicro(c track.Coordinate, w, h int) (int, int, bool) {
	v, ok := m.visible()
	if !ok {
		return 0, 0, false
	}
	fx, fy := microXY(v, c, w, h)
	x, y := int(math.Round(fx)), int(math.Round(fy))
	if x < 0 || y < 0 || x >= w*2 || y >= h*4 {
		return x, y, false
	}
	return x, y, true
}

func (m Model) renderMap(w, h int) string {
	lines := make([]string, h)
	for y := range lines {
		lines[y] = strings.Repeat(" ", w)
	}
	v, ok := m.visible()
	if !ok || m.cur.coords.Empty() {
		return strings.Join(lines, "\n")
	}

	br := newBrailleBuf(w, h)
	maxX, maxY := float64(w*2-1), float64(h*4-1)

	if m.showLine && len(m.cur.coords) > 1 {
		px, py := microXY(v, m.cur.coords[0], w, h)
		for _, c := range m.cur.coords[1:] {
			x, y := microXY(v, c, w, h)
			if x0, y0, x1, y1, in := clipSegment(px, py, x, y, maxX, maxY); in {
				br.drawLineMicro(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
			}
			px, py = x, y
		}
	}
	// a lone fix has no segment, so it is always drawn as a dot
	if m.showPoints || len(m.cur.coords) == 1 {
		for _, c := range m.cur.coords {
			if x, y, in := m.screenXYMicro(c, w, h); in {
				br.setPixel(x, y)
			}
		}
	}

	braLines := br.toLines()
	for y := 0; y < h && y < len(braLines); y++ {
		lines[y] = colorRuns(braLines[y], m.overlay)
	}

	// Hover highlight: draw an orange circle at the hovered vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(braLines) {
			r := []rune(braLines[cy])
			if cx >= 0 && cx < len(r) {
				circle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("◯")
				lines[cy] = colorRuns(string(r[:cx]), m.overlay) + circle + colorRuns(string(r[cx+1:]), m.overlay)
			}
		}
	}
	return strings.Join(lines, "\n")
}

// colorRuns styles every run of non blank cells with st.
func colorRuns(line string, st lipgloss.Style) string {
	var b, run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(st.Render(run.String()))
			run.Reset()
		}
	}
	for _, r := range line {
		if r == ' ' {
			flush()
			b.WriteRune(r)
			continue
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}

// clipSegment clips a segment to [0,maxX]x[0,maxY] (Liang-Barsky) so that
// zoomed in views never rasterise far off canvas.
func clipSegment(x0, y0, x1, y1, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{{-dx, x0}, {dx, maxX - x0}, {-dy, y0}, {dy, maxY - y0}}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// inspectNearest finds the path vertex closest to the viewport center.
func (m Model) inspectNearest() (track.Coordinate, bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return m.nearestVertex(w, h*2, w, h)
}

// nearestVertex returns the visible vertex closest to the micro dot (mx, my).
func (m Model) nearestVertex(mx, my, w, h int) (track.Coordinate, bool) {
	best := math.MaxInt
	var bc track.Coordinate
	for _, c := range m.cur.coords {
		x, y, ok := m.screenXYMicro(c, w, h)
		if !ok {
			continue
		}
		dx, dy := x-mx, y-my
		if d := dx*dx + dy*dy; d < best {
			best = d
			bc = c
		}
	}
	return bc, best != math.MaxInt
}
