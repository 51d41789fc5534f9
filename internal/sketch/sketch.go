// Package sketch holds the generative sketches and the pipeline that turns a
// sketch's nested geometry into a flat, clipped plot sized for paper.
package sketch

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/ojrac/opensimplex-go"

	"plotsketch/internal/geom"
	"plotsketch/internal/linetree"
	"plotsketch/internal/optimize"
	"plotsketch/internal/paper"
)

// Params are a sketch's numeric knobs.
type Params map[string]float64

// Env is what a generator sees: the page, its randomness and its params.
type Env struct {
	Width, Height float64
	Margin        float64
	Seed          uint64
	Rand          *rand.Rand
	Noise         opensimplex.Noise
	Params        Params
}

// Param returns the resolved value of a param, 0 when unknown.
func (e Env) Param(name string) float64 { return e.Params[name] }

// Int returns a param rounded to the nearest integer.
func (e Env) Int(name string) int { return int(math.Round(e.Params[name])) }

// Flag reports whether a param is non-zero.
func (e Env) Flag(name string) bool { return e.Params[name] != 0 }

// Center is the middle of the page.
func (e Env) Center() linetree.Point { return linetree.Point{e.Width / 2, e.Height / 2} }

// Page is the full page box, margin included.
func (e Env) Page() geom.BBox { return geom.Box(0, 0, e.Width, e.Height) }

// Sketch describes one generator and its defaults.
type Sketch struct {
	Name        string
	Description string
	Orientation paper.Orientation
	Margin      float64
	ClosePaths  bool
	Defaults    Params
	Generate    func(Env) (linetree.Tree, error)
}

// ParamNames lists the sketch's params, sorted.
func (s *Sketch) ParamNames() []string {
	names := make([]string, 0, len(s.Defaults))
	for k := range s.Defaults {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

var registry = map[string]*Sketch{}

// Register adds s to the registry. It panics on a duplicate name.
func Register(s *Sketch) {
	if _, dup := registry[s.Name]; dup {
		panic("sketch: duplicate name " + s.Name)
	}
	registry[s.Name] = s
}

// Lookup returns the sketch registered under name.
func Lookup(name string) (*Sketch, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("sketch: unknown sketch %q", name)
	}
	return s, nil
}

// All returns every registered sketch sorted by name.
func All() []*Sketch {
	out := make([]*Sketch, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Options control a render. Nil pointers fall back to the sketch defaults.
type Options struct {
	Paper       paper.Size
	Orientation *paper.Orientation
	Margin      *float64
	Seed        uint64
	ClosePaths  *bool
	Simplify    float64
	Optimize    bool
	PenWidth    float64
	Params      Params
}

// Plot is flat, clipped geometry on a page, ready for a sink.
type Plot struct {
	Name     string
	Seed     uint64
	Width    float64
	Height   float64
	PenWidth float64
	Lines    linetree.Flat
	Stats    optimize.Stats
}

// Render runs s with opt and returns the finished plot.
func Render(s *Sketch, opt Options) (*Plot, error) {
	params, err := s.resolve(opt.Params)
	if err != nil {
		return nil, err
	}
	o := s.Orientation
	if opt.Orientation != nil {
		o = *opt.Orientation
	}
	size := opt.Paper
	if size.Width == 0 {
		size = paper.Letter
	}
	w, h := size.Dimensions(o)
	margin := s.Margin
	if opt.Margin != nil {
		margin = *opt.Margin
	}
	closePaths := s.ClosePaths
	if opt.ClosePaths != nil {
		closePaths = *opt.ClosePaths
	}
	env := Env{
		Width:  w,
		Height: h,
		Margin: margin,
		Seed:   opt.Seed,
		Rand:   rand.New(rand.NewPCG(opt.Seed, opt.Seed^0x9e3779b97f4a7c15)),
		Noise:  opensimplex.New(int64(opt.Seed)),
		Params: params,
	}
	tree, err := s.Generate(env)
	if err != nil {
		return nil, fmt.Errorf("sketch %s: %w", s.Name, err)
	}
	opt.Margin = &margin
	opt.ClosePaths = &closePaths
	p, err := Build(s.Name, tree, w, h, opt)
	if err != nil {
		return nil, fmt.Errorf("sketch %s: %w", s.Name, err)
	}
	return p, nil
}

// Build flattens tree, clips it to the margin box of a w by h page and
// applies the optional simplify and ordering passes.
func Build(name string, tree linetree.Tree, w, h float64, opt Options) (*Plot, error) {
	closePaths := opt.ClosePaths != nil && *opt.ClosePaths
	flat, err := linetree.Flatten(tree, closePaths)
	if err != nil {
		return nil, err
	}
	margin := 0.0
	if opt.Margin != nil {
		margin = *opt.Margin
	}
	box := geom.Box(0, 0, w, h).Inset(margin)
	if box.Empty() {
		return nil, fmt.Errorf("margin %g leaves no room on a %gx%g page", margin, w, h)
	}
	flat = geom.ClipToBox(flat, box)
	flat = geom.Simplify(flat, opt.Simplify)
	if opt.Optimize {
		flat = optimize.Order(flat)
	}
	pen := opt.PenWidth
	if pen <= 0 {
		pen = 0.03
	}
	return &Plot{
		Name:     name,
		Seed:     opt.Seed,
		Width:    w,
		Height:   h,
		PenWidth: pen,
		Lines:    flat,
		Stats:    optimize.Measure(flat),
	}, nil
}

func (s *Sketch) resolve(overrides Params) (Params, error) {
	out := make(Params, len(s.Defaults))
	for k, v := range s.Defaults {
		out[k] = v
	}
	for k, v := range overrides {
		if _, ok := s.Defaults[k]; !ok {
			return nil, fmt.Errorf("sketch %s: unknown param %q", s.Name, k)
		}
		out[k] = v
	}
	return out, nil
}
