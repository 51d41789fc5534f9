package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotsketch/internal/paper"
)

func TestRead(t *testing.T) {
	src := `
paper = "a4"
orientation = "landscape"
margin = 2.5
seed = 7
close_paths = true
optimize = true

[params.noise-lines]
lines = 120
`
	c, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "a4", c.Paper)
	require.NotNil(t, c.Orientation)
	assert.Equal(t, paper.Landscape, *c.Orientation)
	require.NotNil(t, c.Margin)
	assert.Equal(t, 2.5, *c.Margin)
	require.NotNil(t, c.Seed)
	assert.Equal(t, uint64(7), *c.Seed)
	require.NotNil(t, c.ClosePaths)
	assert.True(t, *c.ClosePaths)
	assert.True(t, c.Optimize)
	assert.Equal(t, 0.03, c.PenWidth)
	assert.Equal(t, map[string]float64{"lines": 120}, c.SketchParams("noise-lines"))
	assert.Empty(t, c.SketchParams("waves"))
}

func TestReadRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":   `colour = "red"`,
		"unknown paper": `paper = "napkin"`,
		"bad margin":    `margin = -1`,
		"bad pen":       `pen_width = 0`,
		"bad orient":    `orientation = "diagonal"`,
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	p := filepath.Join(t.TempDir(), "plot.toml")
	require.NoError(t, os.WriteFile(p, []byte(`paper = "a3"`), 0o644))
	c, err = Load(p)
	require.NoError(t, err)
	assert.Equal(t, "a3", c.Paper)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	c := Default()
	c.Params = map[string]map[string]float64{"alchemy": {"polygons": 4}}
	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))
	back, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.Params, back.Params)
	assert.Equal(t, c.Paper, back.Paper)
}
