package track

import (
	"strings"

	"github.com/adrianmo/go-nmea"
)

// decodeNMEA collects fixes from RMC sentences with an active status. Logs
// without RMC fall back to GGA fixes. Unparseable sentences are skipped.
func decodeNMEA(text string) Path {
	var rmc, gga Path
	for _, line := range strings.Split(lineBreaks.Replace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s, err := nmea.Parse(line)
		if err != nil {
			continue
		}
		switch s.DataType() {
		case nmea.TypeRMC:
			m := s.(nmea.RMC)
			if m.Validity != "A" {
				continue
			}
			rmc.Append(Coordinate{Lat: m.Latitude, Lon: m.Longitude})
		case nmea.TypeGGA:
			m := s.(nmea.GGA)
			if m.FixQuality == "" || m.FixQuality == "0" {
				continue
			}
			gga.Append(Coordinate{Lat: m.Latitude, Lon: m.Longitude})
		}
	}
	if len(rmc) > 0 {
		return rmc
	}
	return gga
}
