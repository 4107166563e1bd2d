package track

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]Format{
		"run.log":    FormatLog,
		"run.txt":    FormatLog,
		"run":        FormatLog,
		"ride.GPX":   FormatGPX,
		"fix.nmea":   FormatNMEA,
		"fix.nma":    FormatNMEA,
		"export.csv": FormatCSV,
		"a.geojson":  FormatJSON,
		"a.json":     FormatJSON,
		"a.kml":      FormatKML,
	}
	for in, want := range cases {
		if got := DetectFormat(in); got != want {
			t.Errorf("DetectFormat(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestLoad_Log(t *testing.T) {
	p := writeFile(t, "pacer.log", "1678000000 l 37.7749 -122.4194 5 1\n1678000001 b 88\n")
	path, err := Load(p, ParseOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(path) != 1 || path[0] != (Coordinate{37.7749, -122.4194}) {
		t.Fatalf("unexpected path %+v", path)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path, err := Load(writeFile(t, "empty.log", ""), ParseOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !path.Empty() {
		t.Fatalf("want empty path, got %+v", path)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.log"), ParseOptions{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want ErrNotExist, got %v", err)
	}
}

func TestLoad_InvalidEncoding(t *testing.T) {
	p := writeFile(t, "bin.log", "1 l 2 3 x\n\xff\xfe\n")
	if _, err := Load(p, ParseOptions{}); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("want ErrInvalidEncoding, got %v", err)
	}
}

func TestLoad_GPX(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk><trkseg>
    <trkpt lat="47.1" lon="8.5"></trkpt>
    <trkpt lat="47.2" lon="8.6"></trkpt>
  </trkseg></trk>
</gpx>`
	path, err := Load(writeFile(t, "ride.gpx", doc), ParseOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Path{{47.1, 8.5}, {47.2, 8.6}}
	if len(path) != len(want) || path[0] != want[0] || path[1] != want[1] {
		t.Fatalf("want %+v, got %+v", want, path)
	}
}

func TestLoad_NMEA(t *testing.T) {
	const log = "$GPRMC,220516,A,5133.82,N,00042.24,W,173.8,231.8,130694,004.2,W*70\n" +
		"garbage\n" +
		"$GPRMC,220517,V,5133.82,N,00042.24,W,173.8,231.8,130694,004.2,W*66\n"
	path, err := Load(writeFile(t, "fix.nmea", log), ParseOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(path) != 1 {
		t.Fatalf("want 1 active fix, got %+v", path)
	}
	if path[0].Lat < 51.56 || path[0].Lat > 51.57 || path[0].Lon > -0.70 || path[0].Lon < -0.71 {
		t.Fatalf("unexpected fix %+v", path[0])
	}
}

func TestLoad_CSV(t *testing.T) {
	path, err := Load(writeFile(t, "pts.csv", "name,Latitude,lng\na,1.5,2.5\nb,x,3\nc,4,5\n"), ParseOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(path) != 2 || path[0] != (Coordinate{1.5, 2.5}) || path[1] != (Coordinate{4, 5}) {
		t.Fatalf("unexpected path %+v", path)
	}
	if _, err := Load(writeFile(t, "bad.csv", "a,b\n1,2\n"), ParseOptions{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("want ErrUnsupportedFormat, got %v", err)
	}
}

func TestDecode_StrictFiltersAlternateFormats(t *testing.T) {
	path, err := Decode(FormatCSV, []byte("lat,lon\n95,10\n10,10\n"), ParseOptions{RejectOutOfRange: true})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(path) != 1 {
		t.Fatalf("want 1 in-range point, got %+v", path)
	}
}

func TestLoad_GeoJSON(t *testing.T) {
	const doc = `{"type":"FeatureCollection","features":[
  {"type":"Feature","geometry":{"type":"LineString","coordinates":[[8.5,47.1],[8.6,47.2]]}},
  {"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}},
  {"type":"Feature","geometry":{"type":"Point","coordinates":[8.7,47.3,420]}}
]}`
	path, err := Load(writeFile(t, "route.geojson", doc), ParseOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Path{{47.1, 8.5}, {47.2, 8.6}, {47.3, 8.7}}
	if len(path) != len(want) {
		t.Fatalf("want %+v, got %+v", want, path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("point %d: want %+v, got %+v", i, want[i], path[i])
		}
	}
	if _, err := Load(writeFile(t, "broken.json", "{"), ParseOptions{}); err == nil {
		t.Fatal("want error for malformed JSON")
	}
}

func TestLoad_KML(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2"><Document><Folder>
  <Placemark><LineString><coordinates>
    8.5,47.1,0 8.6,47.2,0
  </coordinates></LineString></Placemark>
  <Placemark><Polygon><outerBoundaryIs><LinearRing><coordinates>0,0 1,0 1,1 0,0</coordinates></LinearRing></outerBoundaryIs></Polygon></Placemark>
  <Placemark><Point><coordinates>8.7,47.3</coordinates></Point></Placemark>
</Folder></Document></kml>`
	path, err := Load(writeFile(t, "route.kml", doc), ParseOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Path{{47.1, 8.5}, {47.2, 8.6}, {47.3, 8.7}}
	if len(path) != len(want) {
		t.Fatalf("want %+v, got %+v", want, path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("point %d: want %+v, got %+v", i, want[i], path[i])
		}
	}
}
