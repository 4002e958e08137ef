package render

import (
	"gitlab.com/begraf/spurkarte/geo"
	"gitlab.com/begraf/spurkarte/track"
)

// Options are the tunable rendering constants. The defaults match what
// the map frontend was styled against; they are style choices, not
// correctness contracts.
type Options struct {
	Scale           ColorScale
	ArrowIntervalKm float64
	LineWeight      int
	LineOpacity     float64
}

func DefaultOptions() Options {
	scale, err := NewColorScale(DefaultLowColor, DefaultHighColor)
	if err != nil {
		panic(err)
	}

	return Options{
		Scale:           scale,
		ArrowIntervalKm: DefaultArrowIntervalKm,
		LineWeight:      DefaultLineWeight,
		LineOpacity:     DefaultLineOpacity,
	}
}

// NewOptions builds Options from configured values, validating the two
// scale colors.
func NewOptions(lowHex, highHex string, arrowIntervalKm float64, lineWeight int, lineOpacity float64) (Options, error) {
	scale, err := NewColorScale(lowHex, highHex)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Scale:           scale,
		ArrowIntervalKm: arrowIntervalKm,
		LineWeight:      lineWeight,
		LineOpacity:     lineOpacity,
	}, nil
}

const (
	DefaultLowColor        = "#3288bd"
	DefaultHighColor       = "#d53e4f"
	DefaultArrowIntervalKm = 3.0
	DefaultLineWeight      = 4
	DefaultLineOpacity     = 0.9
)

// Renderer runs the whole pipeline against a map sink. It owns the
// overlays it has emitted and clears them at the start of every render,
// so the sink only ever shows the most recent document.
type Renderer struct {
	sink     MapSink
	opts     Options
	overlays []OverlayHandle
}

func NewRenderer(sink MapSink, opts Options) *Renderer {
	return &Renderer{sink: sink, opts: opts}
}

// RenderDocument clears any previous overlays, then draws the document:
// elevation-colored segments and direction arrows per track, a marker
// (plus popup, if annotated) per waypoint, and finally fits the viewport
// to all geometry. An empty document renders nothing.
func (r *Renderer) RenderDocument(doc *track.Document) {
	r.Clear()

	rng, trackPoints, hasPoints := track.ElevationRangeOf(doc.Tracks)
	if hasPoints {
		for _, t := range doc.Tracks {
			r.renderTrack(t, rng)
		}
	}

	r.renderWaypoints(doc.Waypoints)

	allPoints := append(trackPoints, doc.WaypointPoints()...)
	if region, ok := geo.BoundsOf(allPoints); ok {
		r.sink.FitViewport(region)
	}
}

// Clear removes every overlay emitted by the previous render.
func (r *Renderer) Clear() {
	for _, handle := range r.overlays {
		r.sink.RemoveOverlay(handle)
	}

	r.overlays = nil
}

// OverlayCount reports how many overlays the renderer currently tracks.
func (r *Renderer) OverlayCount() int {
	return len(r.overlays)
}

func (r *Renderer) renderTrack(t track.Track, rng track.ElevationRange) {
	for _, segment := range Segments(t, rng, r.opts.Scale) {
		handle := r.sink.DrawLine(segment.Start, segment.End, LineStyle{
			Color:   segment.Color.Hex(),
			Weight:  r.opts.LineWeight,
			Opacity: r.opts.LineOpacity,
		})
		r.overlays = append(r.overlays, handle)
	}

	for _, marker := range DirectionMarkers(t, r.opts.ArrowIntervalKm) {
		handle := r.sink.DrawMarker(marker.Position, MarkerStyle{
			Icon:            IconArrow,
			RotationDegrees: marker.BearingDegrees,
		})
		r.overlays = append(r.overlays, handle)
	}
}

func (r *Renderer) renderWaypoints(waypoints []track.Waypoint) {
	for _, w := range waypoints {
		handle := r.sink.DrawMarker(w.Point, MarkerStyle{Icon: IconWaypoint})
		if popup, ok := PopupHTML(w); ok {
			r.sink.ShowPopup(handle, popup)
		}

		r.overlays = append(r.overlays, handle)
	}
}
