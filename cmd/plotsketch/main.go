package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"plotsketch/internal/config"
	"plotsketch/internal/paper"
	"plotsketch/internal/sketch"
)

var errTerminal = errors.New("refusing to write to a terminal, use -o or a pipe")

type app struct {
	out, errOut io.Writer
	isTTY       func(io.Writer) bool

	cfgPath     string
	logLevel    string
	logFile     string
	paperName   string
	orientation string
	seed        uint64
	margin      float64
	penWidth    float64
	simplify    float64
	scale       float64
	closePaths  bool
	optimize    bool
	sets        []string

	cfg    config.Config
	logger *log.Logger
}

func main() {
	a := &app{out: os.Stdout, errOut: os.Stderr, isTTY: isTerminal}
	if err := a.root().Execute(); err != nil {
		if a.logger != nil {
			a.logger.Error(err)
		} else {
			fmt.Fprintln(os.Stderr, "plotsketch:", err)
		}
		os.Exit(1)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) root() *cobra.Command {
	root := &cobra.Command{
		Use:           "plotsketch",
		Short:         "Generative pen-plotter sketches rendered to SVG, PNG or the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	f := root.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "TOML config file")
	f.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	f.StringVar(&a.paperName, "paper", "", "paper size ("+strings.Join(paper.Names(), ", ")+")")
	f.StringVar(&a.orientation, "orientation", "", "portrait or landscape")
	f.Uint64Var(&a.seed, "seed", 0, "random seed (random when unset)")
	f.Float64Var(&a.margin, "margin", 0, "margin in cm")
	f.Float64Var(&a.penWidth, "pen-width", 0, "pen width in cm")
	f.Float64Var(&a.simplify, "simplify", 0, "Douglas-Peucker tolerance in cm, 0 disables")
	f.BoolVar(&a.closePaths, "close", false, "close paths back to their first point")
	f.BoolVar(&a.optimize, "optimize", false, "reorder drawables to cut pen-up travel")
	f.StringArrayVar(&a.sets, "set", nil, "override a sketch param, key=value (repeatable)")

	root.AddCommand(a.listCmd(), a.svgCmd(), a.pngCmd(), a.flattenCmd(), a.convertCmd(), a.viewCmd())
	return root
}

// setup loads the config file and lays the flags that were set over it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("paper") {
		cfg.Paper = a.paperName
	}
	if flags.Changed("orientation") {
		o, err := paper.ParseOrientation(a.orientation)
		if err != nil {
			return err
		}
		cfg.Orientation = &o
	}
	if flags.Changed("seed") {
		cfg.Seed = &a.seed
	}
	if flags.Changed("margin") {
		cfg.Margin = &a.margin
	}
	if flags.Changed("pen-width") {
		cfg.PenWidth = a.penWidth
	}
	if flags.Changed("simplify") {
		cfg.Simplify = a.simplify
	}
	if flags.Changed("close") {
		cfg.ClosePaths = &a.closePaths
	}
	if flags.Changed("optimize") {
		cfg.Optimize = a.optimize
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("scale") {
		cfg.PixelsPerCm = a.scale
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.logger = log.NewWithOptions(a.errOut, log.Options{
		Level:           level,
		Prefix:          "plotsketch",
		ReportTimestamp: true,
	})
	return nil
}

// options turns the merged config into render options for one sketch.
func (a *app) options(name string) (sketch.Options, error) {
	size, err := paper.Lookup(a.cfg.Paper)
	if err != nil {
		return sketch.Options{}, err
	}
	seed := rand.Uint64()
	if a.cfg.Seed != nil {
		seed = *a.cfg.Seed
	}
	params := sketch.Params(a.cfg.SketchParams(name))
	for _, kv := range a.sets {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return sketch.Options{}, fmt.Errorf("--set %q: want key=value", kv)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return sketch.Options{}, fmt.Errorf("--set %q: %w", kv, err)
		}
		params[strings.TrimSpace(k)] = f
	}
	return sketch.Options{
		Paper:       size,
		Orientation: a.cfg.Orientation,
		Margin:      a.cfg.Margin,
		Seed:        seed,
		ClosePaths:  a.cfg.ClosePaths,
		Simplify:    a.cfg.Simplify,
		Optimize:    a.cfg.Optimize,
		PenWidth:    a.cfg.PenWidth,
		Params:      params,
	}, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// create opens path for writing; "" and "-" mean stdout, which must not be a
// terminal.
func (a *app) create(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		if a.isTTY(a.out) {
			return nil, errTerminal
		}
		return nopCloser{a.out}, nil
	}
	return os.Create(path)
}
