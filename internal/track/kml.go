package track

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// decodeKML reads the coordinates of every Point and LineString, wherever
// the Placemark sits in the Document/Folder tree. KML tuples are
// "lon,lat[,alt]"; altitude is ignored.
func decodeKML(data []byte) (Path, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var (
		p     Path
		stack []string
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse KML: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "coordinates" && len(stack) > 0 {
				parent := stack[len(stack)-1]
				if parent == "Point" || parent == "LineString" {
					var text string
					if err := dec.DecodeElement(&text, &el); err != nil {
						return nil, fmt.Errorf("parse KML: %w", err)
					}
					p = append(p, parseKMLTuples(text)...)
					continue
				}
			}
			stack = append(stack, el.Name.Local)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
}

func parseKMLTuples(text string) Path {
	var p Path
	for _, tuple := range strings.Fields(text) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, ok1 := parseDegrees(strings.TrimSpace(vals[0]))
		lat, ok2 := parseDegrees(strings.TrimSpace(vals[1]))
		if !ok1 || !ok2 {
			continue
		}
		p.Append(Coordinate{Lat: lat, Lon: lon})
	}
	return p
}
