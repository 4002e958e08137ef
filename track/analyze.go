package track

import "gitlab.com/begraf/spurkarte/geo"

// ElevationRange is the span of elevations over all points of a document.
type ElevationRange struct {
	Min, Max float64
}

func (r ElevationRange) Span() float64 {
	return r.Max - r.Min
}

// ElevationRangeOf flattens all points across all tracks and returns their
// elevation range, substituting 0 for missing elevations. The flattened
// point sequence is returned for reuse by viewport fitting. ok is false
// when the tracks contain no points at all; the range is undefined then
// and callers must skip range-dependent work.
func ElevationRangeOf(tracks []Track) (rng ElevationRange, points []geo.Point, ok bool) {
	for _, t := range tracks {
		points = append(points, t.Points...)
	}

	if len(points) == 0 {
		return ElevationRange{}, nil, false
	}

	rng.Min = points[0].ElevationOrZero()
	rng.Max = rng.Min

	for _, p := range points[1:] {
		ele := p.ElevationOrZero()
		if ele < rng.Min {
			rng.Min = ele
		}
		if ele > rng.Max {
			rng.Max = ele
		}
	}

	return rng, points, true
}
