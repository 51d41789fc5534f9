package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"plotsketch/internal/linetree"
)

type kmlRing struct {
	Coordinates string `xml:"LinearRing>coordinates"`
}

type kmlPolygon struct {
	Outer kmlRing   `xml:"outerBoundaryIs"`
	Inner []kmlRing `xml:"innerBoundaryIs"`
}

type kmlGeometry struct {
	LineStrings []struct {
		Coordinates string `xml:"coordinates"`
	} `xml:"LineString"`
	Polygons []kmlPolygon  `xml:"Polygon"`
	Multi    []kmlGeometry `xml:"MultiGeometry"`
}

type kmlPlacemark struct {
	kmlGeometry
}

type kmlFolder struct {
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Folders    []kmlFolder    `xml:"Folder"`
}

type kmlDoc struct {
	kmlFolder
	Document []kmlFolder `xml:"Document"`
}

// ReadKML extracts LineString and Polygon placemarks from a KML document,
// descending into Document, Folder and MultiGeometry. KML coordinates are
// "lon,lat[,alt]"; altitude is ignored.
func ReadKML(r io.Reader) (linetree.Node, error) {
	var doc kmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("kml: %w", err)
	}
	var c orb.Collection
	var walk func(f kmlFolder)
	walk = func(f kmlFolder) {
		for _, pm := range f.Placemarks {
			c = append(c, pm.geometries()...)
		}
		for _, sub := range f.Folders {
			walk(sub)
		}
	}
	walk(doc.kmlFolder)
	for _, d := range doc.Document {
		walk(d)
	}
	n := FromGeometry(c)
	if len(n) == 0 {
		return nil, errors.New("kml: no lines or polygons found")
	}
	return n, nil
}

func (g kmlGeometry) geometries() []orb.Geometry {
	var out []orb.Geometry
	for _, ls := range g.LineStrings {
		out = append(out, orb.LineString(parseCoords(ls.Coordinates)))
	}
	for _, p := range g.Polygons {
		poly := orb.Polygon{orb.Ring(parseCoords(p.Outer.Coordinates))}
		for _, in := range p.Inner {
			poly = append(poly, orb.Ring(parseCoords(in.Coordinates)))
		}
		out = append(out, poly)
	}
	for _, m := range g.Multi {
		out = append(out, m.geometries()...)
	}
	return out
}

// parseCoords reads whitespace separated lon,lat[,alt] tuples, skipping
// malformed ones.
func parseCoords(s string) []orb.Point {
	var pts []orb.Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(vals[0], 64)
		lat, err2 := strconv.ParseFloat(vals[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pts = append(pts, orb.Point{lon, lat})
	}
	return pts
}
