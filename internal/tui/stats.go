package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshStats rebuilds the table from the current plot and sketch params.
func (m *Model) refreshStats() {
	rows := m.buildStats()
	if len(rows) == 0 {
		m.showStats = false
		m.status = "nothing rendered yet"
		return
	}
	keyW, valW := len("key"), len("value")
	for _, r := range rows {
		keyW = max(keyW, len(r[0]))
		valW = max(valW, len(r[1]))
	}
	cols := []table.Column{
		{Title: "key", Width: min(keyW+2, 24)},
		{Title: "value", Width: min(valW+2, 32)},
	}
	// clear rows first so the old rows never meet the new columns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func (m *Model) buildStats() []table.Row {
	p := m.plot
	if p == nil {
		return nil
	}
	rows := []table.Row{
		{"source", m.source},
		{"seed", fmt.Sprintf("%d", p.Seed)},
		{"page", fmt.Sprintf("%.2f x %.2f cm", p.Width, p.Height)},
		{"pen", fmt.Sprintf("%.3f cm", p.PenWidth)},
		{"close paths", fmt.Sprintf("%v", m.closing())},
		{"lines", fmt.Sprintf("%d", p.Stats.Lines)},
		{"paths", fmt.Sprintf("%d", p.Stats.Paths)},
		{"points", fmt.Sprintf("%d", p.Stats.Points)},
		{"draw", fmt.Sprintf("%.1f cm", p.Stats.DrawLength)},
		{"travel", fmt.Sprintf("%.1f cm", p.Stats.TravelLength)},
	}
	if m.current == nil {
		return rows
	}
	for _, k := range m.current.ParamNames() {
		v, ok := m.opts.Params[k]
		if !ok {
			v = m.current.Defaults[k]
		}
		rows = append(rows, table.Row{"param " + k, fmt.Sprintf("%g", v)})
	}
	return rows
}
