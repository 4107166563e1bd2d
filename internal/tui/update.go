package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lo := m.layout()
		m.mapW, m.mapH = lo.mapW, lo.mapH
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
		return m, nil
	case fitFrameMsg:
		cmd := m.stepFit(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// If list is visible and filtering, send keys to list and ignore global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.promptMode {
		switch msg.String() {
		case "esc":
			m.promptMode = false
			m.ti.Blur()
			m.status = "view mode"
			return m, nil
		case "enter":
			p := strings.TrimSpace(m.ti.Value())
			if p == "" {
				m.status = "open: empty path"
				return m, nil
			}
			m.promptMode = false
			m.ti.Blur()
			cmd := m.loadPath(p)
			return m, cmd
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}
	if m.showTable {
		switch msg.String() {
		case "a", "esc":
			m.showTable = false
			return m, nil
		case "q":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		m.showPoints = !m.showPoints
		m.status = fmt.Sprintf("points: %v", m.showPoints)
	case "2":
		m.showLine = !m.showLine
		m.status = fmt.Sprintf("line: %v", m.showLine)
	case "l":
		// toggle all layers
		all := m.showPoints && m.showLine
		m.showPoints = !all
		m.showLine = !all
		m.status = fmt.Sprintf("layers: pts=%v line=%v", m.showPoints, m.showLine)
	case "+", "=":
		m.zoom(1 / zoomStep)
		m.status = "zoom in"
	case "-", "_":
		m.zoom(zoomStep)
		m.status = "zoom out"
	case "f":
		if !m.cur.hasRegion {
			m.status = "nothing to fit"
			return m, nil
		}
		m.status = "fit to path"
		cmd := m.fitTo(m.cur.region)
		return m, cmd
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
		}
	case "o":
		m.promptMode = true
		m.ti.SetValue("")
		m.status = "open path"
		cmd := m.ti.Focus()
		return m, cmd
	case "h":
		m.helpVisible = !m.helpVisible
	case "a":
		m.showTable = true
		m.refreshTable()
		m.status = fmt.Sprintf("points table: %d rows", len(m.cur.coords))
	case "i":
		m.toggleInspect()
	case "esc":
		m.inspectPopup = ""
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				cmd := m.selectItem(it)
				return m, cmd
			}
		}
	case "up", "down":
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if msg.String() == "up" {
			m.pan(panStep, 0)
		} else {
			m.pan(-panStep, 0)
		}
	case "left":
		m.pan(0, -panStep)
	case "right":
		m.pan(0, panStep)
	default:
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) toggleInspect() {
	if m.inspectPopup != "" {
		m.inspectPopup = ""
		return
	}
	c, ok := m.inspectNearest()
	if !ok {
		m.inspectPopup = "no point nearby"
		m.status = m.inspectPopup
		return
	}
	name := filepath.Base(m.cur.path)
	r := m.cur.region
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("path: %s", m.cur.path),
		fmt.Sprintf("lat: [%.5f, %.5f]", r.MinLat, r.MaxLat),
		fmt.Sprintf("lon: [%.5f, %.5f]", r.MinLon, r.MaxLon),
		fmt.Sprintf("points: %d", len(m.cur.coords)),
		fmt.Sprintf("nearest: lat=%.6f lon=%.6f", c.Lat, c.Lon),
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	lo := m.layout()
	if !lo.inMap(msg.X, msg.Y) {
		m.hovering = false
		m.hoverHasGeo = false
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.zoom(1 / zoomStep)
		return
	case tea.MouseButtonWheelDown:
		m.zoom(zoomStep)
		return
	}
	cx, cy := msg.X-lo.mapX, msg.Y-lo.mapY
	m.hoverLat, m.hoverLon, m.hoverHasGeo = m.cellToLatLon(cx, cy, lo.mapW, lo.mapH)
	// snap the highlight to the nearest vertex using micro coords
	hx, hy := cx*2, cy*4
	c, ok := m.nearestVertex(hx, hy, lo.mapW, lo.mapH)
	m.hovering = ok
	if ok {
		m.hoverMicX, m.hoverMicY, _ = m.screenXYMicro(c, lo.mapW, lo.mapH)
	}
}
