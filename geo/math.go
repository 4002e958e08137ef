package geo

import (
	"math"

	"github.com/jftuga/geodist"
)

// DistanceKm returns the great-circle distance between a and b in
// kilometers (haversine formula, mean earth radius).
func DistanceKm(a, b Point) float64 {
	_, km := geodist.HaversineDistance(
		geodist.Coord{Lat: a.Lat, Lon: a.Lon},
		geodist.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	return km
}

// BearingDegrees returns the initial compass bearing from a to b,
// normalized into [0, 360). For coincident points the direction is
// undefined and 0 is returned.
func BearingDegrees(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lon1 := a.Lon * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lon2 := b.Lon * math.Pi / 180

	dLon := lon2 - lon1

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	deg := math.Atan2(y, x) * 180 / math.Pi
	deg = math.Mod(deg+360, 360)
	if deg == 360 {
		deg = 0
	}

	return deg
}
