package tui

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"plotsketch/internal/geom"
	"plotsketch/internal/linetree"
	"plotsketch/internal/sketch"
	"plotsketch/internal/svgout"
)

type item struct {
	title, desc string
	path        string
	sketch      *sketch.Sketch
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

// refreshItems lists every sketch followed by the geometry files in cwd.
func (m *Model) refreshItems() {
	var items []list.Item
	for _, s := range sketch.All() {
		items = append(items, item{title: s.Name, desc: s.Description, sketch: s})
	}
	var files []list.Item
	if entries, err := os.ReadDir(m.cwd); err == nil {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if geom.Supported(ext) {
				files = append(files, item{title: e.Name(), desc: ext, path: filepath.Join(m.cwd, e.Name())})
			}
		}
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].(item).title < files[j].(item).title })
	m.items = append(items, files...)
	m.l.SetItems(m.items)
}

func (m *Model) selectSketch(name string) {
	s, err := sketch.Lookup(name)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.current, m.tree, m.source = s, nil, s.Name
	m.opts.Params = m.cfg.Params[s.Name]
	m.resetView()
	m.rerender()
}

// loadPath imports a geometry file.
func (m *Model) loadPath(p string) {
	tree, flipY, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.logger.Error("load", "path", p, "err", err)
		return
	}
	m.current, m.tree, m.flipY = nil, tree, flipY
	m.source = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	m.opts.Params = nil
	m.resetView()
	m.rerender()
}

// loadPasted renders a JSON line tree typed or pasted into the textarea.
func (m *Model) loadPasted(text string) error {
	flat, err := linetree.DecodeJSON(strings.NewReader(text), false)
	if err != nil {
		return err
	}
	m.current, m.tree, m.flipY, m.source = nil, flat.Node(), false, "paste"
	m.opts.Params = nil
	m.resetView()
	m.rerender()
	return nil
}

func (m *Model) resetView() {
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
}

func (m *Model) rerender() {
	var (
		p   *sketch.Plot
		err error
	)
	switch {
	case m.current != nil:
		p, err = sketch.Render(m.current, m.opts)
	case m.tree != nil:
		p, err = sketch.Import(m.source, m.tree, m.flipY, m.opts)
	default:
		return
	}
	if err != nil {
		m.status = "render error: " + err.Error()
		m.logger.Error("render", "source", m.source, "err", err)
		return
	}
	m.plot = p
	m.status = fmt.Sprintf("%s  seed=%d  lines=%d paths=%d  close=%v", p.Name, p.Seed, p.Stats.Lines, p.Stats.Paths, m.closing())
	m.logger.Info("rendered", "source", m.source, "seed", p.Seed, "drawables", len(p.Lines), "draw_cm", p.Stats.DrawLength)
	if m.showStats {
		m.refreshStats()
	}
}

// closing is the effective close-paths setting for what is shown.
func (m Model) closing() bool {
	if m.opts.ClosePaths != nil {
		return *m.opts.ClosePaths
	}
	return m.current != nil && m.current.ClosePaths
}

func (m *Model) toggleClosing() {
	v := !m.closing()
	m.opts.ClosePaths = &v
	m.rerender()
}

func (m *Model) reroll() {
	m.opts.Seed = rand.Uint64()
	m.rerender()
}

type exportedMsg struct {
	path string
	err  error
}

// exportCmd writes p as SVG into dir off the event loop.
func exportCmd(dir string, p *sketch.Plot) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, fmt.Sprintf("%s-%d.svg", p.Name, p.Seed))
		f, err := os.Create(path)
		if err != nil {
			return exportedMsg{path: path, err: err}
		}
		err = svgout.Write(f, p)
		return exportedMsg{path: path, err: errors.Join(err, f.Close())}
	}
}
