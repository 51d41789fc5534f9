package geom

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"

	"plotsketch/internal/linetree"
)

// ParseWKT parses LINESTRING, MULTILINESTRING, POLYGON, MULTIPOLYGON and
// GEOMETRYCOLLECTION text into a tree.
func ParseWKT(s string) (linetree.Node, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	n := FromGeometry(g)
	if len(n) == 0 {
		return nil, errors.New("wkt: no lines or polygons parsed")
	}
	return n, nil
}

var extensions = []string{".json", ".geojson", ".wkt", ".csv", ".kml"}

// Supported reports whether Load understands files with extension ext.
func Supported(ext string) bool {
	return slices.Contains(extensions, strings.ToLower(ext))
}

// Load reads a line tree from path, picking the format by extension:
// .json holds a raw line tree, then .geojson, .wkt, .csv and .kml. The flipY
// result is true for geographic data whose y axis points up.
func Load(path string) (tree linetree.Tree, flipY bool, err error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, false, err
		}
		defer f.Close()
		flat, err := linetree.DecodeJSON(f, false)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", path, err)
		}
		return flat.Node(), false, nil
	case ".geojson":
		n, err := LoadGeoJSON(path)
		return n, true, err
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, false, err
		}
		n, err := ParseWKT(string(data))
		return n, true, err
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, false, err
		}
		defer f.Close()
		n, geo, err := ReadCSV(f)
		return n, geo, err
	case ".kml":
		f, err := os.Open(path)
		if err != nil {
			return nil, false, err
		}
		defer f.Close()
		n, err := ReadKML(f)
		return n, true, err
	}
	return nil, false, fmt.Errorf("unsupported file: %q", ext)
}
