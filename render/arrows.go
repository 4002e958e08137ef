package render

import (
	"gitlab.com/begraf/spurkarte/geo"
	"gitlab.com/begraf/spurkarte/track"
)

// DirectionMarker is a direction-of-travel arrow placed along a track.
type DirectionMarker struct {
	Position       geo.Point
	BearingDegrees float64
	CumulativeKm   float64
}

// DirectionMarkers places an arrow roughly every intervalKm along the
// track. This is a greedy fixed-interval sampler: after each segment, an
// arrow is emitted once the distance accumulated since the last arrow
// reaches the interval, and the baseline resets to the distance at the
// emission point rather than to the nearest interval multiple. Spacing
// between arrows is therefore >= intervalKm, not exactly intervalKm.
// That is the intended behavior.
func DirectionMarkers(t track.Track, intervalKm float64) []DirectionMarker {
	if intervalKm <= 0 || len(t.Points) < 2 {
		return nil
	}

	var markers []DirectionMarker
	accumulated := 0.0
	lastArrow := 0.0

	for i := 0; i+1 < len(t.Points); i++ {
		start, end := t.Points[i], t.Points[i+1]
		accumulated += geo.DistanceKm(start, end)

		if accumulated-lastArrow >= intervalKm {
			markers = append(markers, DirectionMarker{
				Position:       start,
				BearingDegrees: geo.BearingDegrees(start, end),
				CumulativeKm:   accumulated,
			})
			lastArrow = accumulated
		}
	}

	return markers
}
