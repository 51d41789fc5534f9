package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"plotsketch/internal/linetree"
)

// ReadCSV reads a polyline table. Column detection (case-insensitive):
// x|lon|lng|long|longitude and y|lat|latitude. An optional path|id|group
// column splits rows into separate polylines; consecutive rows with the same
// value belong together. geo reports lon/lat headers.
func ReadCSV(r io.Reader) (tree linetree.Node, geo bool, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("csv: %w", err)
	}
	if len(recs) == 0 {
		return nil, false, errors.New("csv: empty")
	}
	idxX, idxY, idxGroup := -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude":
			geo = true
			fallthrough
		case "y":
			if idxY == -1 {
				idxY = i
			}
		case "lon", "lng", "long", "longitude":
			geo = true
			fallthrough
		case "x":
			if idxX == -1 {
				idxX = i
			}
		case "path", "id", "group":
			if idxGroup == -1 {
				idxGroup = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return nil, false, errors.New("csv: x/y (or lon/lat) columns not found")
	}

	var pts []Point
	group := ""
	flush := func() {
		if leaf := Leaf(pts); leaf != nil {
			tree = append(tree, leaf)
		}
		pts = nil
	}
	for _, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		if idxGroup >= 0 && idxGroup < len(row) && row[idxGroup] != group {
			flush()
			group = row[idxGroup]
		}
		pts = append(pts, Point{x, y})
	}
	flush()
	if len(tree) == 0 {
		return nil, false, errors.New("csv: no polylines with two or more points")
	}
	return tree, geo, nil
}
