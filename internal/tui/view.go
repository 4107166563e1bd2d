package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header
	header := titleStyle.Render(" pacermap ─ pacer log path viewer ")
	header = lipgloss.NewStyle().Width(lo.contentW).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showTable:
		tw := min(lo.mapW, 40)
		m.tbl.SetWidth(tw - 4)
		m.tbl.SetHeight(min(lo.mapH-2, 20))
		box := boxStyle.Width(tw).Render(m.tbl.View())
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.promptMode:
		m.ti.Width = max(10, lo.mapW-len(m.ti.Prompt)-2)
		box := boxStyle.Width(lo.mapW - 2).Render(m.ti.View())
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Left, lipgloss.Center, box)
	default:
		// plain map canvas: no border, no background highlight
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(m.renderMap(lo.mapW, lo.mapH))
	}

	// Body row, the inspect popup replaces the map while it is open
	body := mapView
	if m.inspectPopup != "" && !m.showTable && !m.promptMode {
		maxPopupW := max(20, min(48, lo.contentW/2))
		box := boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
		body = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Left, lipgloss.Center, box)
	}
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", body)
	}

	// Footer: selected file + status, then help with coords on the right
	shown := m.selected
	if shown == "" {
		shown = "no file selected"
	}
	top := lipgloss.JoinHorizontal(lipgloss.Bottom, pathStyle.Render(" "+shown+" "), dimStyle.Render(" "+m.status+" "))
	help := m.renderHelp()
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lat=%.5f lon=%.5f  ", m.hoverLat, m.hoverLon))
	}
	spacerW := max(0, lo.contentW-lipgloss.Width(help)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	bottom := lipgloss.JoinHorizontal(lipgloss.Bottom, help, right)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinVertical(lipgloss.Left, top, bottom))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"f fit",
		"Tab files",
		"o open",
		"a points",
		"i inspect",
		"l layers",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
