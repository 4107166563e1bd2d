package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pacermap/internal/track"
)

type fitFrameMsg struct{ gen int }

// startScale is how much larger than the target the first fit starts out.
const startScale = 4.0

func fitTick(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return fitFrameMsg{gen: gen} })
}

// fitTo requests that the visible region become r. The request is not
// awaited; a later fit or a manual zoom/pan supersedes it.
func (m *Model) fitTo(r track.Region) tea.Cmd {
	m.fit.gen++
	if m.opts.FitFrames <= 0 || m.opts.FrameInterval <= 0 {
		m.fit.active = false
		m.view, m.hasView = r, true
		return nil
	}
	from := m.view
	if !m.hasView {
		from = r.Pad(m.opts.MinSpan).Scale(startScale)
	}
	m.fit = fitAnim{gen: m.fit.gen, active: true, from: from, to: r}
	m.view, m.hasView = from, true
	return fitTick(m.fit.gen, m.opts.FrameInterval)
}

// stepFit advances the running animation by one frame.
func (m *Model) stepFit(msg fitFrameMsg) tea.Cmd {
	if !m.fit.active || msg.gen != m.fit.gen {
		return nil
	}
	m.fit.frame++
	if m.fit.frame >= m.opts.FitFrames {
		m.view = m.fit.to
		m.fit.active = false
		return nil
	}
	t := float64(m.fit.frame) / float64(m.opts.FitFrames)
	m.view = m.fit.from.Lerp(m.fit.to, easeOut(t))
	return fitTick(m.fit.gen, m.opts.FrameInterval)
}

// cancelFit stops the animation where it is.
func (m *Model) cancelFit() {
	if m.fit.active {
		m.fit.active = false
		m.fit.gen++
	}
}

func easeOut(t float64) float64 { return 1 - (1-t)*(1-t) }

// visible is the region actually projected, padded so a single point or a
// straight north/south or east/west path still has area.
func (m Model) visible() (track.Region, bool) {
	if !m.hasView {
		return track.Region{}, false
	}
	return m.view.Pad(m.opts.MinSpan), true
}

const (
	zoomStep = 1.2
	panStep  = 0.1
)

func (m *Model) zoom(factor float64) {
	v, ok := m.visible()
	if !ok {
		return
	}
	m.cancelFit()
	next := v.Scale(factor)
	if next.LatSpan() > 360 || next.LonSpan() > 720 {
		return
	}
	m.view = next
}

func (m *Model) pan(latFrac, lonFrac float64) {
	v, ok := m.visible()
	if !ok {
		return
	}
	m.cancelFit()
	m.view = v.Shift(latFrac, lonFrac)
}
