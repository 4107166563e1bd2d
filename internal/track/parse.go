package track

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// locationMarker tags a location record: "<timestamp> l <lat> <lon> ...".
const locationMarker = " l "

// ParseOptions tunes the log parser. The zero value is the lenient default.
type ParseOptions struct {
	// RejectOutOfRange drops fixes outside lat [-90,90] / lon [-180,180].
	RejectOutOfRange bool
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ParseLog extracts the location records of a pacer log, in file order.
// Malformed lines are skipped silently.
func ParseLog(text string) Path {
	return ParseLogWith(text, ParseOptions{})
}

// ParseLogWith is ParseLog with explicit options.
func ParseLogWith(text string, opts ParseOptions) Path {
	var p Path
	if text == "" {
		return p
	}
	for _, line := range strings.Split(lineBreaks.Replace(text), "\n") {
		c, ok := parseLocation(line)
		if !ok {
			continue
		}
		if opts.RejectOutOfRange && !c.Valid() {
			continue
		}
		p.Append(c)
	}
	return p
}

// ReadLog reads r to the end and parses it. Only the read itself can fail.
func ReadLog(r io.Reader, opts ParseOptions) (Path, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return ParseLogWith(string(b), opts), nil
}

func parseLocation(line string) (Coordinate, bool) {
	if !strings.Contains(line, locationMarker) {
		return Coordinate{}, false
	}
	fields := strings.Split(line, " ")
	if len(fields) <= 4 {
		return Coordinate{}, false
	}
	lat, ok := parseDegrees(fields[2])
	if !ok {
		return Coordinate{}, false
	}
	lon, ok := parseDegrees(fields[3])
	if !ok {
		return Coordinate{}, false
	}
	return Coordinate{Lat: lat, Lon: lon}, true
}

// parseDegrees accepts any finite float; NaN and Inf cannot be plotted.
func parseDegrees(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
