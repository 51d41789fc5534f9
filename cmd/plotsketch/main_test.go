package main

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	a := &app{out: &out, errOut: &errOut, isTTY: func(io.Writer) bool { return false }}
	root := a.root()
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestList(t *testing.T) {
	out, _, err := run(t, "", "list")
	require.NoError(t, err)
	for _, name := range []string{"alchemy", "noise-lines", "polygon-tube", "tree-rings", "voronoi", "waves"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "min_distance")
}

func TestSVG(t *testing.T) {
	out, logs, err := run(t, "", "svg", "alchemy", "--seed", "3", "--close=false")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `width="27.94cm"`)
	assert.Contains(t, out, "seed 3")
	assert.Contains(t, out, "<polyline")
	assert.Contains(t, logs, "rendered")
	assert.Contains(t, logs, "alchemy")
}

func TestSVGToFileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rings.svg")
	_, _, err := run(t, "",
		"svg", "tree-rings", "-o", path,
		"--paper", "a4", "--orientation", "portrait", "--margin", "2",
		"--set", "circles=8", "--set", "sides=30", "--optimize", "--simplify", "0.01")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="21cm"`)
	assert.Contains(t, string(data), `height="29.7cm"`)
}

func TestSVGErrors(t *testing.T) {
	_, _, err := run(t, "", "svg", "nope")
	assert.ErrorContains(t, err, "unknown sketch")

	_, _, err = run(t, "", "svg", "alchemy", "--set", "bogus=1")
	assert.ErrorContains(t, err, "unknown param")

	_, _, err = run(t, "", "svg", "alchemy", "--set", "radius")
	assert.ErrorContains(t, err, "key=value")

	_, _, err = run(t, "", "svg", "alchemy", "--paper", "napkin")
	assert.ErrorContains(t, err, "unknown size")

	_, _, err = run(t, "", "svg", "alchemy", "--log-level", "loud")
	assert.Error(t, err)
}

func TestRefusesTerminal(t *testing.T) {
	var out bytes.Buffer
	a := &app{out: &out, errOut: io.Discard, isTTY: func(io.Writer) bool { return true }}
	root := a.root()
	root.SetArgs([]string{"svg", "alchemy"})
	err := root.Execute()
	assert.ErrorIs(t, err, errTerminal)
	assert.Empty(t, out.String())
}

func TestPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	_, _, err := run(t, "", "png", "alchemy", "-o", path, "--scale", "10")
	require.NoError(t, err)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 280, cfg.Width)
	assert.Equal(t, 216, cfg.Height)
}

func TestFlatten(t *testing.T) {
	in := `[[[0,0],[1,1]],[[[2,2],[3,3],[4,4]]],{"p1":{"x":5,"y":5},"p2":{"x":6,"y":6}}]`
	out, _, err := run(t, in, "flatten", "--close")
	require.NoError(t, err)
	assert.JSONEq(t, `[[[0,0],[1,1]],[[2,2],[3,3],[4,4],[2,2]],[[5,5],[6,6]]]`, out)

	out, _, err = run(t, in, "flatten")
	require.NoError(t, err)
	assert.JSONEq(t, `[[[0,0],[1,1]],[[2,2],[3,3],[4,4]],[[5,5],[6,6]]]`, out)

	_, _, err = run(t, `[[[0,0],[1,1]],[true]]`, "flatten")
	assert.ErrorContains(t, err, "invalid input kind")

	path := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, os.WriteFile(path, []byte(in), 0o644))
	out, _, err = run(t, "", "flatten", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[[5,5],[6,6]]")
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "shape.wkt")
	require.NoError(t, os.WriteFile(in, []byte("POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))"), 0o644))
	out, logs, err := run(t, "", "convert", in)
	require.NoError(t, err)
	assert.Contains(t, out, "<title>shape</title>")
	assert.Equal(t, 1, strings.Count(out, "<polyline"))
	assert.Contains(t, logs, "converted")

	_, _, err = run(t, "", "convert", filepath.Join(dir, "missing.wkt"))
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
paper = "a5"
seed = 11
log_level = "warn"

[params.alchemy]
polygons = 2
`), 0o644))
	out, logs, err := run(t, "", "svg", "alchemy", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, `width="21cm"`)
	assert.Contains(t, out, "seed 11")
	assert.NotContains(t, logs, "rendered", "info is below warn")
}

func TestViewConfig(t *testing.T) {
	var out bytes.Buffer
	a := &app{out: &out, errOut: io.Discard, isTTY: func(io.Writer) bool { return false }}
	root := a.root()
	root.SetArgs([]string{"list", "--set", "polygons=3"})
	require.NoError(t, root.Execute())

	cfg, err := a.viewConfig([]string{"alchemy"})
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Params["alchemy"]["polygons"])
	assert.Nil(t, cfg.Render.Params)

	_, err = a.viewConfig(nil)
	assert.ErrorContains(t, err, "needs a sketch")
	_, err = a.viewConfig([]string{"shape.wkt"})
	assert.ErrorContains(t, err, "needs a sketch")

	a.sets = []string{"polygons"}
	_, err = a.viewConfig([]string{"alchemy"})
	assert.ErrorContains(t, err, "key=value")
}
