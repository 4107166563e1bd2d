package track

// Coordinate is a single fix in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Valid reports whether c lies inside the WGS84 ranges.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Path is an ordered sequence of coordinates in file order.
type Path []Coordinate

// Append adds c at the end of the path.
func (p *Path) Append(c Coordinate) { *p = append(*p, c) }

func (p Path) Len() int    { return len(p) }
func (p Path) Empty() bool { return len(p) == 0 }

// Region is an axis aligned lat/lon rectangle.
type Region struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

func (r Region) LatSpan() float64 { return r.MaxLat - r.MinLat }
func (r Region) LonSpan() float64 { return r.MaxLon - r.MinLon }

func (r Region) Center() Coordinate {
	return Coordinate{Lat: (r.MinLat + r.MaxLat) / 2, Lon: (r.MinLon + r.MaxLon) / 2}
}

// Degenerate reports whether either axis has zero extent.
func (r Region) Degenerate() bool {
	return !(r.MaxLat > r.MinLat && r.MaxLon > r.MinLon)
}

func (r Region) Contains(c Coordinate) bool {
	return c.Lat >= r.MinLat && c.Lat <= r.MaxLat && c.Lon >= r.MinLon && c.Lon <= r.MaxLon
}

// Pad grows every axis narrower than minSpan to minSpan, keeping its center.
func (r Region) Pad(minSpan float64) Region {
	if r.LatSpan() < minSpan {
		c := (r.MinLat + r.MaxLat) / 2
		r.MinLat, r.MaxLat = c-minSpan/2, c+minSpan/2
	}
	if r.LonSpan() < minSpan {
		c := (r.MinLon + r.MaxLon) / 2
		r.MinLon, r.MaxLon = c-minSpan/2, c+minSpan/2
	}
	return r
}

// Scale resizes r around its center; factor < 1 zooms in.
func (r Region) Scale(factor float64) Region {
	c := r.Center()
	hl, hw := r.LatSpan()*factor/2, r.LonSpan()*factor/2
	return Region{MinLat: c.Lat - hl, MaxLat: c.Lat + hl, MinLon: c.Lon - hw, MaxLon: c.Lon + hw}
}

// Shift moves r by fractions of its own span.
func (r Region) Shift(latFrac, lonFrac float64) Region {
	dl, dw := r.LatSpan()*latFrac, r.LonSpan()*lonFrac
	return Region{MinLat: r.MinLat + dl, MaxLat: r.MaxLat + dl, MinLon: r.MinLon + dw, MaxLon: r.MaxLon + dw}
}

// Lerp interpolates every edge from r towards to; t is clamped to [0,1].
func (r Region) Lerp(to Region, t float64) Region {
	if t <= 0 {
		return r
	}
	if t >= 1 {
		return to
	}
	mix := func(a, b float64) float64 { return a + (b-a)*t }
	return Region{
		MinLat: mix(r.MinLat, to.MinLat),
		MaxLat: mix(r.MaxLat, to.MaxLat),
		MinLon: mix(r.MinLon, to.MinLon),
		MaxLon: mix(r.MaxLon, to.MaxLon),
	}
}
