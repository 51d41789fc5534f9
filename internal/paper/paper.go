// Package paper knows physical paper sizes. All lengths are centimeters.
package paper

import (
	"fmt"
	"sort"
	"strings"
)

type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// ParseOrientation accepts "portrait" or "landscape" (any case, or p/l).
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portrait", "p":
		return Portrait, nil
	case "landscape", "l":
		return Landscape, nil
	}
	return Portrait, fmt.Errorf("paper: unknown orientation %q", s)
}

func (o *Orientation) UnmarshalText(b []byte) error {
	v, err := ParseOrientation(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func (o Orientation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Size is a sheet in portrait orientation.
type Size struct {
	Name   string
	Width  float64
	Height float64
}

var sizes = map[string]Size{
	"letter":  {"letter", 21.59, 27.94},
	"legal":   {"legal", 21.59, 35.56},
	"tabloid": {"tabloid", 27.94, 43.18},
	"a5":      {"a5", 14.8, 21.0},
	"a4":      {"a4", 21.0, 29.7},
	"a3":      {"a3", 29.7, 42.0},
	"a2":      {"a2", 42.0, 59.4},
	"11x14":   {"11x14", 27.94, 35.56},
	"9x12":    {"9x12", 22.86, 30.48},
}

// Letter is the default sheet.
var Letter = sizes["letter"]

// Lookup finds a size by name, case-insensitively.
func Lookup(name string) (Size, error) {
	s, ok := sizes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Size{}, fmt.Errorf("paper: unknown size %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// Names lists the known sizes, sorted.
func Names() []string {
	out := make([]string, 0, len(sizes))
	for k := range sizes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Dimensions returns width and height of s laid out in o.
func (s Size) Dimensions(o Orientation) (w, h float64) {
	w, h = s.Width, s.Height
	if o == Landscape {
		w, h = h, w
	}
	return w, h
}
