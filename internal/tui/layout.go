package tui

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout holds the screen geometry shared by View and mouse handling.
type layout struct {
	contentW, contentH int
	sidebarW           int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	var lo layout
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
		lo.mapX = sidebarWidth + 1
	}
	lo.mapY = headerHeight
	lo.mapW = max(10, lo.contentW-lo.sidebarW-1)
	lo.mapH = lo.contentH
	return lo
}

func (lo layout) inMap(x, y int) bool {
	return x >= lo.mapX && x < lo.mapX+lo.mapW && y >= lo.mapY && y < lo.mapY+lo.mapH
}
