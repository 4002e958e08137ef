package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/begraf/spurkarte/geo"
)

type decodedPayload struct {
	Lines []struct {
		From    []float64 `json:"from"`
		To      []float64 `json:"to"`
		Color   string    `json:"color"`
		Weight  int       `json:"weight"`
		Opacity float64   `json:"opacity"`
	} `json:"lines"`
	Markers []struct {
		LatLng   []float64 `json:"latlng"`
		Icon     string    `json:"icon"`
		Rotation float64   `json:"rotation"`
		Popup    string    `json:"popup"`
	} `json:"markers"`
	Bounds [][]float64 `json:"bounds"`
}

func decodePayload(t *testing.T, sink *LeafletSink) decodedPayload {
	t.Helper()

	data, err := sink.Payload()
	require.NoError(t, err)

	var payload decodedPayload
	require.NoError(t, json.Unmarshal(data, &payload))

	return payload
}

func TestLeafletSinkPayload(t *testing.T) {
	sink := NewLeafletSink()

	sink.DrawLine(
		geo.Point{Lat: 47, Lon: 11},
		geo.Point{Lat: 47.1, Lon: 11.1},
		LineStyle{Color: "#3288bd", Weight: 4, Opacity: 0.9},
	)
	markerHandle := sink.DrawMarker(geo.Point{Lat: 47.2, Lon: 11.2}, MarkerStyle{
		Icon:            IconArrow,
		RotationDegrees: 45,
	})
	sink.ShowPopup(markerHandle, "<h3>Hut</h3>")
	sink.FitViewport(geo.RegionAround(geo.Point{Lat: 47, Lon: 11}))

	payload := decodePayload(t, sink)

	require.Len(t, payload.Lines, 1)
	assert.Equal(t, []float64{47, 11}, payload.Lines[0].From)
	assert.Equal(t, []float64{47.1, 11.1}, payload.Lines[0].To)
	assert.Equal(t, "#3288bd", payload.Lines[0].Color)
	assert.Equal(t, 4, payload.Lines[0].Weight)
	assert.Equal(t, 0.9, payload.Lines[0].Opacity)

	require.Len(t, payload.Markers, 1)
	assert.Equal(t, []float64{47.2, 11.2}, payload.Markers[0].LatLng)
	assert.Equal(t, IconArrow, payload.Markers[0].Icon)
	assert.Equal(t, 45.0, payload.Markers[0].Rotation)
	assert.Equal(t, "<h3>Hut</h3>", payload.Markers[0].Popup)

	assert.Equal(t, [][]float64{{47, 11}, {47, 11}}, payload.Bounds)
}

func TestLeafletSinkEmptyPayload(t *testing.T) {
	payload := decodePayload(t, NewLeafletSink())

	assert.Empty(t, payload.Lines)
	assert.Empty(t, payload.Markers)
	assert.Empty(t, payload.Bounds)
}

func TestLeafletSinkRemoveOverlay(t *testing.T) {
	sink := NewLeafletSink()

	lineHandle := sink.DrawLine(geo.Point{Lat: 1, Lon: 2}, geo.Point{Lat: 3, Lon: 4}, LineStyle{})
	markerHandle := sink.DrawMarker(geo.Point{Lat: 5, Lon: 6}, MarkerStyle{Icon: IconWaypoint})
	assert.Equal(t, 2, sink.OverlayCount())

	sink.RemoveOverlay(lineHandle)
	assert.Equal(t, 1, sink.OverlayCount())

	sink.RemoveOverlay(markerHandle)
	assert.Equal(t, 0, sink.OverlayCount())

	// Removing an unknown handle is a no-op.
	sink.RemoveOverlay(OverlayHandle("unknown"))
	assert.Equal(t, 0, sink.OverlayCount())

	payload := decodePayload(t, sink)
	assert.Empty(t, payload.Lines)
	assert.Empty(t, payload.Markers)
}

func TestEmplaceMap(t *testing.T) {
	sink := NewLeafletSink()
	sink.DrawMarker(geo.Point{Lat: 47, Lon: 11}, MarkerStyle{Icon: IconWaypoint})

	payload, err := sink.Payload()
	require.NoError(t, err)

	html := EmplaceMap(payload, "map-00")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	container := doc.Find("div.gpx-map")
	require.Equal(t, 1, container.Length())
	id, _ := container.Attr("id")
	assert.Equal(t, "map-00", id)

	script := container.Find("script").Text()
	assert.Contains(t, script, "mountMap(mapContainer, mapData)")
	assert.Contains(t, script, `"markers"`)
}
