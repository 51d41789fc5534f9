package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"plotsketch/internal/geom"
	"plotsketch/internal/linetree"
	"plotsketch/internal/raster"
	"plotsketch/internal/sketch"
	"plotsketch/internal/svgout"
	"plotsketch/internal/tui"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered sketches and their params",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range sketch.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Orientation, s.Description)
				for _, k := range s.ParamNames() {
					fmt.Fprintf(tw, "\t  %s\t%g\n", k, s.Defaults[k])
				}
			}
			return tw.Flush()
		},
	}
}

// render runs the named sketch with the merged settings.
func (a *app) render(name string) (*sketch.Plot, error) {
	s, err := sketch.Lookup(name)
	if err != nil {
		return nil, err
	}
	opt, err := a.options(name)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	p, err := sketch.Render(s, opt)
	if err != nil {
		return nil, err
	}
	a.logPlot("rendered", p, start)
	return p, nil
}

func (a *app) logPlot(msg string, p *sketch.Plot, start time.Time) {
	a.logger.Info(msg,
		"sketch", p.Name,
		"seed", p.Seed,
		"page", fmt.Sprintf("%gx%g", p.Width, p.Height),
		"lines", p.Stats.Lines,
		"paths", p.Stats.Paths,
		"draw_cm", fmt.Sprintf("%.1f", p.Stats.DrawLength),
		"travel_cm", fmt.Sprintf("%.1f", p.Stats.TravelLength),
		"took", time.Since(start).Round(time.Millisecond),
	)
}

func (a *app) writeSVG(p *sketch.Plot, output string) error {
	w, err := a.create(output)
	if err != nil {
		return err
	}
	if err := svgout.Write(w, p); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	a.logger.Debug("wrote svg", "output", outputName(output))
	return nil
}

func outputName(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}
	return path
}

func (a *app) svgCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "svg <sketch>",
		Short: "Render a sketch to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := a.render(args[0])
			if err != nil {
				return err
			}
			return a.writeSVG(p, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	return cmd
}

func (a *app) pngCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "png <sketch>",
		Short: "Render a PNG preview of a sketch",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := a.render(args[0])
			if err != nil {
				return err
			}
			path := output
			if path == "" {
				path = fmt.Sprintf("%s-%d.png", p.Name, p.Seed)
			}
			w, err := a.create(path)
			if err != nil {
				return err
			}
			if err := raster.Write(w, p, a.cfg.PixelsPerCm); err != nil {
				w.Close()
				return err
			}
			a.logger.Info("wrote png", "output", outputName(path))
			return w.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <sketch>-<seed>.png), - for stdout")
	cmd.Flags().Float64Var(&a.scale, "scale", 0, "pixels per cm")
	return cmd
}

func (a *app) flattenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flatten [file]",
		Short: "Flatten a JSON line tree into a list of lines and paths",
		Long: "Reads a nested JSON line tree (stdin when no file is given) and writes\n" +
			"the flat list of lines and paths as JSON. --close closes every path.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			closePaths := a.cfg.ClosePaths != nil && *a.cfg.ClosePaths
			flat, err := linetree.DecodeJSON(r, closePaths)
			if err != nil {
				var bad *linetree.InvalidInputError
				if errors.As(err, &bad) {
					a.logger.Debug("invalid line tree", "pos", bad.Pos, "reason", bad.Reason)
				}
				return err
			}
			lines, paths, points := flat.Count()
			a.logger.Debug("flattened", "lines", lines, "paths", paths, "points", points)
			data, err := flat.MarshalJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
			return err
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "convert <file.{json,geojson,wkt,csv,kml}>",
		Short: "Fit geometry from a file onto the page and write SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			start := time.Now()
			tree, flipY, err := geom.Load(args[0])
			if err != nil {
				return err
			}
			opt, err := a.options("")
			if err != nil {
				return err
			}
			opt.Params = nil
			name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			p, err := sketch.Import(name, tree, flipY, opt)
			if err != nil {
				return err
			}
			a.logPlot("converted", p, start)
			return a.writeSVG(p, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	return cmd
}

func (a *app) viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [sketch|file]",
		Short: "Preview sketches in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// the alt screen owns the terminal, logs go to a file or nowhere
			logger := log.New(io.Discard)
			if a.logFile != "" {
				f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				logger = log.NewWithOptions(f, log.Options{Level: a.logger.GetLevel(), ReportTimestamp: true})
			}
			cfg, err := a.viewConfig(args)
			if err != nil {
				return err
			}
			cfg.Logger = logger

			var m tea.Model
			switch {
			case len(args) == 0:
				m = tui.New(cfg)
			case isSketch(args[0]):
				m = tui.NewWithSketch(cfg, args[0])
			default:
				m = tui.NewWithPath(cfg, args[0])
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&a.logFile, "log-file", "", "append logs to this file while the viewer runs")
	return cmd
}

// viewConfig builds the viewer settings. --set overrides apply to the sketch
// named on the command line, so they need one.
func (a *app) viewConfig(args []string) (tui.Config, error) {
	name := ""
	if len(args) == 1 && isSketch(args[0]) {
		name = args[0]
	}
	if name == "" && len(a.sets) > 0 {
		return tui.Config{}, errors.New("--set needs a sketch to view")
	}
	opt, err := a.options(name)
	if err != nil {
		return tui.Config{}, err
	}
	params := make(map[string]map[string]float64, len(a.cfg.Params)+1)
	for k, v := range a.cfg.Params {
		params[k] = v
	}
	if name != "" {
		params[name] = opt.Params
	}
	opt.Params = nil
	return tui.Config{Render: opt, Params: params}, nil
}

func isSketch(name string) bool {
	_, err := sketch.Lookup(name)
	return err == nil
}
