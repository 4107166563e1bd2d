package track

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

// decodeGPX flattens every track segment, then every route, into one path.
func decodeGPX(data []byte) (Path, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse GPX: %w", err)
	}

	var p Path
	for _, t := range g.Tracks {
		for _, seg := range t.Segments {
			for _, pt := range seg.Points {
				p.Append(Coordinate{Lat: pt.Latitude, Lon: pt.Longitude})
			}
		}
	}
	for _, r := range g.Routes {
		for _, pt := range r.Points {
			p.Append(Coordinate{Lat: pt.Latitude, Lon: pt.Longitude})
		}
	}
	return p, nil
}
