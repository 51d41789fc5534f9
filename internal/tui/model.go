// Package tui is a terminal previewer for plots: a braille canvas of the
// page with a sketch sidebar, a stats table and a paste box for raw line
// trees.
package tui

import (
	"io"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"plotsketch/internal/linetree"
	"plotsketch/internal/sketch"
)

// Config seeds a Model.
type Config struct {
	Render sketch.Options
	Params map[string]map[string]float64 // per-sketch overrides
	Dir    string                        // scanned for geometry files, receives exports
	Logger *log.Logger
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string
	logger *log.Logger

	// sidebar
	cwd   string
	l     list.Model
	items []list.Item

	// what is shown
	cfg     Config
	opts    sketch.Options
	current *sketch.Sketch
	source  string
	tree    linetree.Tree // imported or pasted geometry
	flipY   bool
	plot    *sketch.Plot

	// last rendered canvas size
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// stats table
	showStats bool
	tbl       table.Model

	// hover state
	hovering    bool
	hoverMicX   int
	hoverMicY   int
	hoverHasPos bool
	hoverX      float64
	hoverY      float64
}

func New(cfg Config) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "plotsketch ready",
		cfg:         cfg,
		opts:        cfg.Render,
		logger:      cfg.Logger,
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	m.cwd = cfg.Dir
	if m.cwd == "" {
		m.cwd, _ = os.Getwd()
	}
	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Sketches"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste a JSON line tree, e.g. [[[0,0],[1,1]],[[0,0],[1,0],[1,1]]]. Enter renders; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshItems()
	return m
}

// NewWithSketch opens the named sketch at launch.
func NewWithSketch(cfg Config, name string) Model {
	m := New(cfg)
	m.selectSketch(name)
	return m
}

// NewWithPath preloads a geometry file at launch.
func NewWithPath(cfg Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
