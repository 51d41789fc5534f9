// Package linetree normalizes nested line geometry into a flat list of
// drawable polylines.
//
// Sketches build geometry by composing generators, so their output is an
// arbitrarily nested tree whose leaves are Lines (two points) and Paths
// (three or more points). Renderers only accept the flat form. Flatten walks
// the tree pre-order, left to right, and returns every leaf exactly once,
// optionally closing each Path by re-appending its first point.
package linetree

// Walk calls fn for every leaf of t in pre-order, left to right.
// It stops at the first error returned by fn.
func Walk(t Tree, fn func(Drawable) error) error {
	return walk(t, nil, fn)
}

func walk(t Tree, pos []int, fn func(Drawable) error) error {
	switch v := t.(type) {
	case Line:
		if !v[0].Valid() || !v[1].Valid() {
			return invalid(pos, "line has a non-finite coordinate")
		}
		return fn(v)
	case Path:
		if len(v) < 3 {
			return invalid(pos, "path has fewer than 3 points")
		}
		for _, p := range v {
			if !p.Valid() {
				return invalid(pos, "path has a non-finite coordinate")
			}
		}
		return fn(v)
	case Node:
		for i, child := range v {
			if err := walk(child, append(pos, i), fn); err != nil {
				return err
			}
		}
		return nil
	default:
		return invalid(pos, "not a line, path or node")
	}
}

// Flatten returns the leaves of t in pre-order. Lines and Paths are both
// accepted at the top level. With closePaths set, every Path comes back with
// its first point appended; Lines are never extended. The input is not
// modified.
func Flatten(t Tree, closePaths bool) (Flat, error) {
	out := Flat{}
	err := Walk(t, func(d Drawable) error {
		out = appendLeaf(out, d, closePaths)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func appendLeaf(out Flat, d Drawable, closePaths bool) Flat {
	if p, ok := d.(Path); ok && closePaths {
		return append(out, p.Closed())
	}
	return append(out, d)
}
