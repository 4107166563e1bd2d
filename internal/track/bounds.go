package track

// Bounds returns the smallest region containing every coordinate of p.
// ok is false for an empty path; callers must not fit a view to it.
func Bounds(p Path) (r Region, ok bool) {
	if len(p) == 0 {
		return Region{}, false
	}
	r = Region{MinLat: p[0].Lat, MaxLat: p[0].Lat, MinLon: p[0].Lon, MaxLon: p[0].Lon}
	for _, c := range p[1:] {
		if c.Lat < r.MinLat {
			r.MinLat = c.Lat
		}
		if c.Lat > r.MaxLat {
			r.MaxLat = c.Lat
		}
		if c.Lon < r.MinLon {
			r.MinLon = c.Lon
		}
		if c.Lon > r.MaxLon {
			r.MaxLon = c.Lon
		}
	}
	return r, true
}
