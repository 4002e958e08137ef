package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gitlab.com/begraf/spurkarte/geo"
)

// LeafletSink collects draw requests into the JSON payload consumed by
// the mountMap script on the frontend.
type LeafletSink struct {
	lines   []*leafletLine
	markers []*leafletMarker
	bounds  *geo.BoundingRegion
}

type leafletLine struct {
	handle OverlayHandle

	From    geo.Point `json:"from"`
	To      geo.Point `json:"to"`
	Color   string    `json:"color"`
	Weight  int       `json:"weight"`
	Opacity float64   `json:"opacity"`
}

type leafletMarker struct {
	handle OverlayHandle

	LatLng   geo.Point `json:"latlng"`
	Icon     string    `json:"icon"`
	Rotation float64   `json:"rotation"`
	Popup    string    `json:"popup,omitempty"`
}

func NewLeafletSink() *LeafletSink {
	return &LeafletSink{}
}

func (s *LeafletSink) DrawLine(from, to geo.Point, style LineStyle) OverlayHandle {
	line := &leafletLine{
		handle:  newOverlayHandle(),
		From:    from,
		To:      to,
		Color:   style.Color,
		Weight:  style.Weight,
		Opacity: style.Opacity,
	}
	s.lines = append(s.lines, line)

	return line.handle
}

func (s *LeafletSink) DrawMarker(at geo.Point, style MarkerStyle) OverlayHandle {
	marker := &leafletMarker{
		handle:   newOverlayHandle(),
		LatLng:   at,
		Icon:     style.Icon,
		Rotation: style.RotationDegrees,
	}
	s.markers = append(s.markers, marker)

	return marker.handle
}

func (s *LeafletSink) ShowPopup(handle OverlayHandle, contentHTML string) {
	for _, marker := range s.markers {
		if marker.handle == handle {
			marker.Popup = contentHTML
			return
		}
	}
}

func (s *LeafletSink) FitViewport(region geo.BoundingRegion) {
	s.bounds = &region
}

func (s *LeafletSink) RemoveOverlay(handle OverlayHandle) {
	for i, line := range s.lines {
		if line.handle == handle {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}

	for i, marker := range s.markers {
		if marker.handle == handle {
			s.markers = append(s.markers[:i], s.markers[i+1:]...)
			return
		}
	}
}

// OverlayCount reports the number of overlays currently held by the sink.
func (s *LeafletSink) OverlayCount() int {
	return len(s.lines) + len(s.markers)
}

// Payload serializes the current overlay set for mountMap. Lines and
// markers keep their emission order, which the frontend relies on for
// layering (last drawn wins on overlap).
func (s *LeafletSink) Payload() ([]byte, error) {
	lines := s.lines
	if lines == nil {
		lines = []*leafletLine{}
	}
	markers := s.markers
	if markers == nil {
		markers = []*leafletMarker{}
	}

	payload := map[string]any{
		"lines":   lines,
		"markers": markers,
	}
	if s.bounds != nil {
		payload["bounds"] = *s.bounds
	}

	return json.Marshal(payload)
}

// EmplaceMap wraps a serialized payload into the `<div class="gpx-map">`
// block whose inline script mounts the Leaflet map once the DOM is ready.
func EmplaceMap(payload []byte, elementID string) string {
	var buf bytes.Buffer

	_, _ = buf.WriteString(fmt.Sprintf(`<div class="gpx-map" id="%s">`, elementID))

	_, _ = buf.WriteString(fmt.Sprintf(`
	<script>
	(function () {
		const mapData = %s;
		let mapContainer = document.currentScript.parentElement;
		window.addEventListener('DOMContentLoaded', function() {
			mountMap(mapContainer, mapData);
		});
	})();
	</script>`,
		string(payload),
	))
	_, _ = buf.WriteString("</div>")

	return buf.String()
}
