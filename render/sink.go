package render

import (
	"github.com/google/uuid"
	"gitlab.com/begraf/spurkarte/geo"
)

// OverlayHandle identifies an overlay placed on a map sink. Handles are
// opaque; the renderer retains them only to clear the overlays on the
// next load.
type OverlayHandle string

func newOverlayHandle() OverlayHandle {
	return OverlayHandle(uuid.NewString())
}

// LineStyle is the visual style of a drawn segment.
type LineStyle struct {
	Color   string
	Weight  int
	Opacity float64
}

// Marker icon kinds understood by the map frontend.
const (
	IconArrow    = "arrow"
	IconWaypoint = "waypoint"
)

// MarkerStyle is the visual style of a drawn marker.
type MarkerStyle struct {
	Icon            string
	RotationDegrees float64
}

// MapSink is the capability set of an interactive map consuming the
// pipeline's output.
type MapSink interface {
	DrawLine(from, to geo.Point, style LineStyle) OverlayHandle
	DrawMarker(at geo.Point, style MarkerStyle) OverlayHandle
	ShowPopup(handle OverlayHandle, contentHTML string)
	FitViewport(region geo.BoundingRegion)
	RemoveOverlay(handle OverlayHandle)
}
