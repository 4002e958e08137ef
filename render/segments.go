package render

import (
	"github.com/lucasb-eyer/go-colorful"
	"gitlab.com/begraf/spurkarte/geo"
	"gitlab.com/begraf/spurkarte/track"
)

// ColoredSegment is one drawable track segment between two adjacent
// points, colored by their average elevation.
type ColoredSegment struct {
	Start, End geo.Point
	Color      colorful.Color
}

// Segments walks the track's consecutive point pairs and colors each
// segment by the pair's average elevation relative to the document-wide
// range. Segments are emitted in position order.
func Segments(t track.Track, rng track.ElevationRange, scale ColorScale) []ColoredSegment {
	if len(t.Points) < 2 {
		return nil
	}

	segments := make([]ColoredSegment, 0, len(t.Points)-1)
	for i := 0; i+1 < len(t.Points); i++ {
		start, end := t.Points[i], t.Points[i+1]
		avg := (start.ElevationOrZero() + end.ElevationOrZero()) / 2

		segments = append(segments, ColoredSegment{
			Start: start,
			End:   end,
			Color: scale.At(avg, rng),
		})
	}

	return segments
}
