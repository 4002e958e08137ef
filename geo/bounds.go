package geo

import "encoding/json"

// BoundingRegion is the axis-aligned lat/lon rectangle covering a set of
// points. It only grows: Extend is monotonic, order-independent and
// idempotent.
type BoundingRegion struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// RegionAround returns the degenerate region containing only p.
func RegionAround(p Point) BoundingRegion {
	return BoundingRegion{
		MinLat: p.Lat, MinLon: p.Lon,
		MaxLat: p.Lat, MaxLon: p.Lon,
	}
}

// BoundsOf returns the smallest region covering all points. ok is false
// for an empty point set, for which no region is defined.
func BoundsOf(points []Point) (region BoundingRegion, ok bool) {
	if len(points) == 0 {
		return BoundingRegion{}, false
	}

	region = RegionAround(points[0])
	for _, p := range points[1:] {
		region = region.Extend(p)
	}

	return region, true
}

func (r BoundingRegion) Extend(p Point) BoundingRegion {
	if p.Lat < r.MinLat {
		r.MinLat = p.Lat
	}
	if p.Lat > r.MaxLat {
		r.MaxLat = p.Lat
	}
	if p.Lon < r.MinLon {
		r.MinLon = p.Lon
	}
	if p.Lon > r.MaxLon {
		r.MaxLon = p.Lon
	}

	return r
}

func (r BoundingRegion) Contains(p Point) bool {
	return p.Lat >= r.MinLat && p.Lat <= r.MaxLat &&
		p.Lon >= r.MinLon && p.Lon <= r.MaxLon
}

// MarshalJSON encodes the region as [[south, west], [north, east]], the
// form Leaflet's fitBounds accepts.
func (r BoundingRegion) MarshalJSON() ([]byte, error) {
	return json.Marshal([][]float64{
		{r.MinLat, r.MinLon},
		{r.MaxLat, r.MaxLon},
	})
}
