package linetree

import (
	"encoding/json"
	"fmt"
	"math"
)

// Point is an (x, y) pair.
type Point [2]float64

// Valid reports whether both coordinates are finite.
func (p Point) Valid() bool {
	return finite(p[0]) && finite(p[1])
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Tree is a Line, a Path or a Node of further trees.
type Tree interface {
	isTree()
}

// Drawable is a leaf of a Tree: a Line or a Path.
type Drawable interface {
	Tree
	Points() []Point
}

// Line is a single segment.
type Line [2]Point

// Path is an open polyline of three or more points.
type Path []Point

// Node is an ordered sequence of sub-trees.
type Node []Tree

func (Line) isTree() {}
func (Path) isTree() {}
func (Node) isTree() {}

func (l Line) Points() []Point { return []Point{l[0], l[1]} }
func (p Path) Points() []Point { return p }

// NewLine returns the segment a-b.
func NewLine(a, b Point) (Line, error) {
	if !a.Valid() || !b.Valid() {
		return Line{}, &InvalidInputError{Reason: "line has a non-finite coordinate"}
	}
	return Line{a, b}, nil
}

// NewPath copies pts into a Path. At least three finite points are required;
// two points make a Line.
func NewPath(pts ...Point) (Path, error) {
	if len(pts) < 3 {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("path needs 3 points, got %d", len(pts))}
	}
	for _, p := range pts {
		if !p.Valid() {
			return nil, &InvalidInputError{Reason: "path has a non-finite coordinate"}
		}
	}
	out := make(Path, len(pts))
	copy(out, pts)
	return out, nil
}

// Closed returns a copy of p with its first point appended.
func (p Path) Closed() Path {
	if len(p) == 0 {
		return nil
	}
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, p[0])
}

// Flat is the normalized, non-nested output of Flatten.
type Flat []Drawable

// Node wraps f back into a tree.
func (f Flat) Node() Node {
	n := make(Node, len(f))
	for i, d := range f {
		n[i] = d
	}
	return n
}

// Count returns the number of points across all drawables.
func (f Flat) Count() (lines, paths, points int) {
	for _, d := range f {
		switch v := d.(type) {
		case Line:
			lines++
			points += 2
		case Path:
			paths++
			points += len(v)
		}
	}
	return lines, paths, points
}

// Polylines returns the raw point lists, in order.
func (f Flat) Polylines() [][]Point {
	out := make([][]Point, len(f))
	for i, d := range f {
		out[i] = d.Points()
	}
	return out
}

// MarshalJSON writes f in array form: [[[x,y],[x,y]], ...].
func (f Flat) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Polylines())
}
