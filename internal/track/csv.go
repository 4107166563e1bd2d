package track

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// decodeCSV reads rows with latitude/longitude columns.
// Column detection: lat|latitude|y and lon|lng|long|longitude|x (case-insensitive).
func decodeCSV(data []byte) (Path, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	if len(recs) == 0 {
		return nil, nil
	}
	idxLat, idxLon := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return nil, fmt.Errorf("%w: csv latitude/longitude columns not found", ErrUnsupportedFormat)
	}
	var p Path
	for _, row := range recs[1:] {
		if idxLon >= len(row) || idxLat >= len(row) {
			continue
		}
		lat, ok1 := parseDegrees(strings.TrimSpace(row[idxLat]))
		lon, ok2 := parseDegrees(strings.TrimSpace(row[idxLon]))
		if !ok1 || !ok2 {
			continue
		}
		p.Append(Coordinate{Lat: lat, Lon: lon})
	}
	return p, nil
}
