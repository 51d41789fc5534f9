package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotsketch/internal/linetree"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func sized(t *testing.T, m Model) Model {
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestBrailleBuf(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(-1, 0)
	b.setPixel(4, 0)
	lines := b.toLines()
	require.Len(t, lines, 1)
	assert.Equal(t, string([]rune{0x2800 + 0x01 + 0x80, ' '}), lines[0])

	b = newBrailleBuf(3, 1)
	b.drawLineMicro(0, 0, 5, 0)
	assert.Equal(t, strings.Repeat(string(rune(0x2800+0x01+0x08)), 3), b.toLines()[0])

	b = newBrailleBuf(1, 1)
	b.drawLineMicro(-50, -50, -10, -10)
	assert.Equal(t, " ", b.toLines()[0])
}

func TestSketchRendersOnCanvas(t *testing.T) {
	m := sized(t, NewWithSketch(Config{Dir: t.TempDir()}, "alchemy"))
	require.NotNil(t, m.plot)
	assert.Equal(t, "alchemy", m.plot.Name)

	view := m.View()
	assert.Contains(t, view, "plotsketch")
	assert.Contains(t, view, "alchemy")
	hasDots := strings.ContainsFunc(view, func(r rune) bool { return r > 0x2800 && r <= 0x28FF })
	assert.True(t, hasDots, "canvas draws braille dots")
}

func TestUnknownSketch(t *testing.T) {
	m := NewWithSketch(Config{Dir: t.TempDir()}, "nope")
	assert.Nil(t, m.plot)
	assert.Contains(t, m.status, "unknown sketch")
}

func TestRerollAndClose(t *testing.T) {
	m := sized(t, NewWithSketch(Config{Dir: t.TempDir()}, "alchemy"))
	seed := m.plot.Seed
	_, _, before := m.plot.Lines.Count()
	require.True(t, m.closing())

	m, _ = send(t, m, key("c"))
	assert.False(t, m.closing())
	_, _, after := m.plot.Lines.Count()
	assert.Equal(t, before-5, after)
	assert.Contains(t, m.status, "close=false")

	m, _ = send(t, m, key("r"))
	assert.NotEqual(t, seed, m.plot.Seed)
	assert.False(t, m.closing(), "closing survives a reroll")
}

func TestPasteTree(t *testing.T) {
	m := sized(t, New(Config{Dir: t.TempDir()}))
	assert.Nil(t, m.plot)

	m, _ = send(t, m, key("p"))
	require.True(t, m.pasteMode)
	m.ta.SetValue(`[[[0,0],[1,1]],[[0,0],[1,0],[1,1]]]`)
	m, _ = send(t, m, key("enter"))
	assert.False(t, m.pasteMode)
	require.NotNil(t, m.plot)
	assert.Equal(t, "paste", m.plot.Name)
	assert.Equal(t, 1, m.plot.Stats.Lines)
	assert.Equal(t, 1, m.plot.Stats.Paths)

	m, _ = send(t, m, key("c"))
	path, ok := m.plot.Lines[1].(linetree.Path)
	require.True(t, ok)
	assert.Len(t, path, 4)

	m, _ = send(t, m, key("p"))
	m.ta.SetValue(`[[[0,0]]]`)
	m, _ = send(t, m, key("enter"))
	assert.True(t, m.pasteMode)
	assert.Contains(t, m.status, "paste error")

	m, _ = send(t, m, key("esc"))
	assert.False(t, m.pasteMode)
}

func TestExportSVG(t *testing.T) {
	dir := t.TempDir()
	m := sized(t, NewWithSketch(Config{Dir: dir}, "alchemy"))
	m, cmd := send(t, m, key("s"))
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(exportedMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	m, _ = send(t, m, msg)
	assert.Contains(t, m.status, "exported")
	data, err := os.ReadFile(done.path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<polyline")
	assert.Equal(t, dir, filepath.Dir(done.path))
}

func TestStatsTable(t *testing.T) {
	m := sized(t, NewWithSketch(Config{Dir: t.TempDir()}, "waves"))
	m, _ = send(t, m, key("a"))
	require.True(t, m.showStats)
	var keys []string
	for _, r := range m.tbl.Rows() {
		keys = append(keys, r[0])
	}
	assert.Contains(t, keys, "seed")
	assert.Contains(t, keys, "param tick")
	assert.Contains(t, m.View(), "travel")

	empty := sized(t, New(Config{Dir: t.TempDir()}))
	empty, _ = send(t, empty, key("a"))
	assert.False(t, empty.showStats)
}

func TestSidebarLoadsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shape.wkt"), []byte("LINESTRING (0 0, 10 0, 10 5)"), 0o644))

	m := sized(t, New(Config{Dir: dir}))
	m, _ = send(t, m, key("tab"))
	require.True(t, m.showSidebar)

	var titles []string
	for _, it := range m.items {
		titles = append(titles, it.(item).title)
	}
	assert.Contains(t, titles, "alchemy")
	assert.Equal(t, "shape.wkt", titles[len(titles)-1])

	m.loadPath(filepath.Join(dir, "shape.wkt"))
	require.NotNil(t, m.plot)
	assert.Equal(t, "shape", m.plot.Name)
	assert.Equal(t, 1, m.plot.Stats.Paths)
}

func TestZoomAndQuit(t *testing.T) {
	m := sized(t, NewWithSketch(Config{Dir: t.TempDir()}, "alchemy"))
	m, _ = send(t, m, key("+"))
	assert.InDelta(t, 1.2, m.zoom, 1e-9)
	m, _ = send(t, m, key("0"))
	assert.Equal(t, 1.0, m.zoom)

	_, cmd := send(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHover(t *testing.T) {
	m := sized(t, NewWithSketch(Config{Dir: t.TempDir()}, "alchemy"))
	m, _ = send(t, m, tea.MouseMsg{X: 50, Y: 14})
	assert.True(t, m.hoverHasPos)
	assert.True(t, m.hovering)
	assert.Greater(t, m.hoverX, 0.0)
	assert.Less(t, m.hoverX, m.plot.Width)

	m, _ = send(t, m, tea.MouseMsg{X: 50, Y: 0})
	assert.False(t, m.hoverHasPos)
}
