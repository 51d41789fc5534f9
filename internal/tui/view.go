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
	contentWidth := max(10, m.width)
	_, _, mapWidth, mapHeight := m.layout()

	// Header
	title := " plotsketch ─ pen plotter preview "
	if m.plot != nil {
		title += fmt.Sprintf("─ %s %.2fx%.2f cm ", m.source, m.plot.Width, m.plot.Height)
	}
	header := lipgloss.NewStyle().Width(contentWidth).Render(titleStyle.Render(title))

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var canvas string
	switch {
	case m.showStats:
		tw := 0
		for _, c := range m.tbl.Columns() {
			tw += c.Width + 2
		}
		boxW := min(mapWidth, max(32, tw+4))
		m.tbl.SetWidth(boxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, len(m.tbl.Rows())+1))
		box := boxStyle.Width(boxW).Render(m.tbl.View())
		canvas = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 12))
		canvas = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	default:
		canvas = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderCanvas(mapWidth, mapHeight))
	}

	body := canvas
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", canvas)
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	if strings.Contains(m.status, "error") {
		status = errStyle.Render(" " + m.status + " ")
	}
	coords := ""
	if m.hoverHasPos {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.2fcm y=%.2fcm  ", m.hoverX, m.hoverY))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"Tab sketches",
		"r reroll",
		"c close",
		"o optimize",
		"s svg",
		"p paste",
		"a stats",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
