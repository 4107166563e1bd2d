package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshTable rebuilds the points table from the current track.
func (m *Model) refreshTable() {
	rows := make([]table.Row, 0, len(m.cur.coords))
	for i, c := range m.cur.coords {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(c.Lat, 'f', 6, 64),
			strconv.FormatFloat(c.Lon, 'f', 6, 64),
		})
	}
	m.tbl.SetRows(rows)
	m.tbl.GotoTop()
}
