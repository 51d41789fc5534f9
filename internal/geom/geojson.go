package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"plotsketch/internal/linetree"
)

// ReadGeoJSON reads a FeatureCollection, a Feature or a bare geometry and
// returns its lines and polygon rings as a tree. Points are skipped: a pen
// has nothing to draw for them.
func ReadGeoJSON(r io.Reader) (linetree.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	var geoms []orb.Geometry
	switch head.Type {
	case "":
		return nil, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			geoms = append(geoms, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		geoms = append(geoms, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		geoms = append(geoms, g.Geometry())
	}
	var n linetree.Node
	for _, g := range geoms {
		if t := FromGeometry(g); len(t) > 0 {
			n = append(n, t)
		}
	}
	if len(n) == 0 {
		return nil, errors.New("no lines or polygons found")
	}
	return n, nil
}

// LoadGeoJSON is ReadGeoJSON on a file.
func LoadGeoJSON(path string) (linetree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	n, err := ReadGeoJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// FromGeometry converts an orb geometry into a line tree. Point geometries
// produce nothing.
func FromGeometry(g orb.Geometry) linetree.Node {
	var n linetree.Node
	add := func(pts []orb.Point) {
		if leaf := Leaf(points(pts)); leaf != nil {
			n = append(n, leaf)
		}
	}
	switch v := g.(type) {
	case orb.LineString:
		add(v)
	case orb.MultiLineString:
		for _, ls := range v {
			add(ls)
		}
	case orb.Ring:
		add(v)
	case orb.Polygon:
		for _, ring := range v {
			add(ring)
		}
	case orb.MultiPolygon:
		for _, poly := range v {
			if sub := FromGeometry(poly); len(sub) > 0 {
				n = append(n, sub)
			}
		}
	case orb.Collection:
		for _, c := range v {
			if sub := FromGeometry(c); len(sub) > 0 {
				n = append(n, sub)
			}
		}
	case orb.Bound:
		add(v.ToRing())
	}
	return n
}
