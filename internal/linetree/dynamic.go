package linetree

import (
	"encoding/json"
	"io"
	"reflect"
	"strconv"
)

// FlattenAny flattens an untyped tree, as produced by encoding/json or built
// from plain slices such as [][][2]float64. Any slice or array is a sequence
// and any numeric kind is a coordinate. Each node is classified by shape, in
// this order:
//
//  1. a line object {"p1": {"x":..,"y":..}, "p2": {..}}
//  2. a Line: exactly two elements, each a pair of finite numbers
//  3. a Path: two or more elements, each a pair of finite numbers
//  4. otherwise a sequence of sub-trees, flattened in order
//
// A two point sequence is therefore always a Line. Anything that is not a
// sequence where one is expected yields ErrInvalidInputKind. Typed trees are
// handed to Flatten unchanged.
func FlattenAny(v any, closePaths bool) (Flat, error) {
	if t, ok := v.(Tree); ok {
		return Flatten(t, closePaths)
	}
	out := Flat{}
	if err := flattenValue(reflect.ValueOf(v), nil, closePaths, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeJSON reads one JSON line tree from r and flattens it.
func DecodeJSON(r io.Reader, closePaths bool) (Flat, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return FlattenAny(raw, closePaths)
}

func flattenValue(rv reflect.Value, pos []int, closePaths bool, out *Flat) error {
	rv = indirect(rv)
	if l, ok := lineObject(rv); ok {
		*out = append(*out, l)
		return nil
	}
	if !isSeq(rv) {
		return invalid(pos, "expected a sequence, got "+kindName(rv))
	}
	if l, ok := asLine(rv); ok {
		*out = append(*out, l)
		return nil
	}
	if p, ok := asPath(rv); ok {
		*out = appendLeaf(*out, p, closePaths)
		return nil
	}
	for i := 0; i < rv.Len(); i++ {
		if err := flattenValue(rv.Index(i), append(pos, i), closePaths, out); err != nil {
			return err
		}
	}
	return nil
}

func asLine(rv reflect.Value) (Line, bool) {
	if rv.Len() != 2 {
		return Line{}, false
	}
	a, ok := asPoint(rv.Index(0))
	if !ok {
		return Line{}, false
	}
	b, ok := asPoint(rv.Index(1))
	if !ok {
		return Line{}, false
	}
	return Line{a, b}, true
}

func asPath(rv reflect.Value) (Path, bool) {
	n := rv.Len()
	if n < 2 {
		return nil, false
	}
	p := make(Path, n)
	for i := 0; i < n; i++ {
		pt, ok := asPoint(rv.Index(i))
		if !ok {
			return nil, false
		}
		p[i] = pt
	}
	return p, true
}

func asPoint(rv reflect.Value) (Point, bool) {
	rv = indirect(rv)
	if !isSeq(rv) || rv.Len() != 2 {
		return Point{}, false
	}
	x, okx := number(rv.Index(0))
	y, oky := number(rv.Index(1))
	if !okx || !oky {
		return Point{}, false
	}
	pt := Point{x, y}
	return pt, pt.Valid()
}

// lineObject matches the object form {p1: {x, y}, p2: {x, y}}.
func lineObject(rv reflect.Value) (Line, bool) {
	p1, ok := mapField(rv, "p1")
	if !ok {
		return Line{}, false
	}
	p2, ok := mapField(rv, "p2")
	if !ok {
		return Line{}, false
	}
	a, ok := objectPoint(p1)
	if !ok {
		return Line{}, false
	}
	b, ok := objectPoint(p2)
	if !ok {
		return Line{}, false
	}
	return Line{a, b}, true
}

func objectPoint(rv reflect.Value) (Point, bool) {
	xv, ok := mapField(rv, "x")
	if !ok {
		return Point{}, false
	}
	yv, ok := mapField(rv, "y")
	if !ok {
		return Point{}, false
	}
	x, okx := number(xv)
	y, oky := number(yv)
	if !okx || !oky {
		return Point{}, false
	}
	pt := Point{x, y}
	return pt, pt.Valid()
}

func mapField(rv reflect.Value, key string) (reflect.Value, bool) {
	rv = indirect(rv)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return reflect.Value{}, false
	}
	v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !v.IsValid() {
		return reflect.Value{}, false
	}
	return indirect(v), true
}

var jsonNumber = reflect.TypeOf(json.Number(""))

func number(rv reflect.Value) (float64, bool) {
	rv = indirect(rv)
	if !rv.IsValid() {
		return 0, false
	}
	if rv.Type() == jsonNumber {
		f, err := strconv.ParseFloat(rv.String(), 64)
		return f, err == nil
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}

func isSeq(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	k := rv.Kind()
	return k == reflect.Slice || k == reflect.Array
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func kindName(rv reflect.Value) string {
	if !rv.IsValid() {
		return "nil"
	}
	return rv.Kind().String()
}
