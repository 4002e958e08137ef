package geo

import (
	"encoding/json"

	"gitlab.com/begraf/spurkarte/option"
)

// Point is a geographic coordinate with an optional elevation in meters.
type Point struct {
	Lat, Lon  float64
	Elevation option.Option[float64]
}

// ElevationOrZero substitutes 0 for a missing elevation. All pipeline
// computations use this substitution rather than treating absence as an
// error.
func (p Point) ElevationOrZero() float64 {
	return p.Elevation.GetOr(0)
}

// MarshalJSON encodes the point as a [lat, lon] pair, the form Leaflet
// expects for lat-lng literals.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}
