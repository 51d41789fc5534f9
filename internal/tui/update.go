package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	sidebarWidth = 32
	headerHeight = 1
	footerHeight = 2
)

// layout returns the canvas origin and size for the current window.
func (m Model) layout() (originX, originY, w, h int) {
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	side := 0
	if m.showSidebar {
		side = sidebarWidth + 1
	}
	return side, headerHeight, max(10, contentWidth-side-1), contentHeight
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, _, m.mapW, m.mapH = m.layout()
		m.l.SetSize(sidebarWidth-2, m.mapH-2)
	case exportedMsg:
		if msg.err != nil {
			m.status = "export error: " + msg.err.Error()
			m.logger.Error("export", "path", msg.path, "err", msg.err)
		} else {
			m.status = "exported " + msg.path
			m.logger.Info("exported", "path", msg.path)
		}
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				m.status = "view mode"
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				if err := m.loadPasted(text); err != nil {
					m.status = "paste error: " + err.Error()
					return m, nil
				}
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.resetView()
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshItems()
			}
			_, _, m.mapW, m.mapH = m.layout()
			m.l.SetSize(sidebarWidth-2, m.mapH-2)
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.ta.Focus()
			m.status = "paste mode"
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showStats = !m.showStats
			if m.showStats {
				m.refreshStats()
			}
		case "r":
			if m.current == nil {
				m.status = "reroll needs a sketch"
				break
			}
			m.reroll()
		case "c":
			m.toggleClosing()
		case "o":
			m.opts.Optimize = !m.opts.Optimize
			m.rerender()
		case "s":
			if m.plot == nil {
				m.status = "nothing to export"
				break
			}
			m.status = "exporting..."
			return m, exportCmd(m.cwd, m.plot)
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(item); ok {
					if it.sketch != nil {
						m.selectSketch(it.sketch.Name)
					} else {
						m.loadPath(it.path)
					}
				}
				return m, nil
			}
		case "up":
			if !m.showSidebar {
				m.offsetY -= 1
			}
		case "down":
			if !m.showSidebar {
				m.offsetY += 1
			}
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		ox, oy, w, h := m.layout()
		cx, cy := msg.X-ox, msg.Y-oy
		if cx < 0 || cx >= w || cy < 0 || cy >= h {
			m.hovering = false
			m.hoverHasPos = false
			break
		}
		m.hoverX, m.hoverY, m.hoverHasPos = m.cellToCm(cx, cy, w, h)
		m.hoverMicX, m.hoverMicY, m.hovering = m.nearestVertex(cx*2, cy*4, w, h)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
