package track

import (
	"encoding/json"
	"fmt"
)

// decodeGeoJSON collects the vertices of Point, MultiPoint, LineString and
// MultiLineString geometries in document order. Polygons are not paths and
// are ignored. GeoJSON positions are [lon, lat].
func decodeGeoJSON(data []byte) (Path, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse GeoJSON: %w", err)
	}
	var p Path
	parsePoint := func(v any) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if lok && aok {
				p.Append(Coordinate{Lat: lat, Lon: lon})
			}
		}
	}
	parseArrayPoints := func(v any) {
		arr, _ := v.([]any)
		for _, el := range arr {
			parsePoint(el)
		}
	}
	var walkGeom func(g map[string]any)
	walkGeom = func(g map[string]any) {
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			parsePoint(g["coordinates"])
		case "MultiPoint", "LineString":
			parseArrayPoints(g["coordinates"])
		case "MultiLineString":
			arr, _ := g["coordinates"].([]any)
			for _, ls := range arr {
				parseArrayPoints(ls)
			}
		case "GeometryCollection":
			gs, _ := g["geometries"].([]any)
			for _, sub := range gs {
				if sm, ok := sub.(map[string]any); ok {
					walkGeom(sm)
				}
			}
		}
	}
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for _, f := range fs {
			if fm, ok := f.(map[string]any); ok {
				if g, ok := fm["geometry"].(map[string]any); ok {
					walkGeom(g)
				}
			}
		}
	default:
		walkGeom(raw)
	}
	return p, nil
}
