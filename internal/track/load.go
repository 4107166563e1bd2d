package track

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidEncoding is returned for files that are not UTF-8 text.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")
	// ErrUnsupportedFormat is returned when a file's layout can't be mapped to coordinates.
	ErrUnsupportedFormat = errors.New("unsupported track format")
)

// Format names the decoder used for a file.
type Format string

const (
	FormatLog  Format = "log"
	FormatGPX  Format = "gpx"
	FormatNMEA Format = "nmea"
	FormatCSV  Format = "csv"
	FormatJSON Format = "geojson"
	FormatKML  Format = "kml"
)

// DetectFormat picks a decoder from the file extension. Anything unknown is
// treated as a pacer log.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gpx":
		return FormatGPX
	case ".nmea", ".nma":
		return FormatNMEA
	case ".csv":
		return FormatCSV
	case ".geojson", ".json":
		return FormatJSON
	case ".kml":
		return FormatKML
	default:
		return FormatLog
	}
}

// Load reads the file at path and decodes its coordinates. A read or
// decoding failure is the only error; malformed records are skipped.
func Load(path string, opts ParseOptions) (Path, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(DetectFormat(path), data, opts)
}

// Decode turns raw file content into a path using the given format.
func Decode(f Format, data []byte, opts ParseOptions) (Path, error) {
	if f != FormatGPX && f != FormatKML && !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	var (
		p   Path
		err error
	)
	switch f {
	case FormatLog:
		return ParseLogWith(string(data), opts), nil
	case FormatGPX:
		p, err = decodeGPX(data)
	case FormatNMEA:
		p = decodeNMEA(string(data))
	case FormatCSV:
		p, err = decodeCSV(data)
	case FormatJSON:
		p, err = decodeGeoJSON(data)
	case FormatKML:
		p, err = decodeKML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, err
	}
	if opts.RejectOutOfRange {
		p = p.filterValid()
	}
	return p, nil
}

func (p Path) filterValid() Path {
	var out Path
	for _, c := range p {
		if c.Valid() {
			out.Append(c)
		}
	}
	return out
}
