package track

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="spurkarte-test" xmlns="http://www.topografix.com/GPX/1/1">
  <wpt lat="47.421" lon="10.985">
    <ele>2962.0</ele>
    <name>Zugspitze</name>
    <desc>Highest peak</desc>
  </wpt>
  <wpt lat="47.5" lon="11.0"></wpt>
  <trk>
    <name>Morning ride</name>
    <trkseg>
      <trkpt lat="47.40" lon="10.90"><ele>700</ele></trkpt>
      <trkpt lat="47.41" lon="10.91"></trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="47.42" lon="10.92"><ele>900</ele></trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestParseSampleDocument(t *testing.T) {
	doc, err := Parse([]byte(sampleGPX))
	require.NoError(t, err)

	require.Len(t, doc.Tracks, 1)
	trk := doc.Tracks[0]
	assert.Equal(t, "Morning ride", trk.Name)

	// Segments of one GPX track are flattened into a single point sequence.
	require.Len(t, trk.Points, 3)
	assert.Equal(t, 47.40, trk.Points[0].Lat)
	assert.Equal(t, 10.90, trk.Points[0].Lon)
	assert.Equal(t, 700.0, trk.Points[0].Elevation.Get())
	assert.True(t, trk.Points[1].Elevation.IsNone())
	assert.Equal(t, 0.0, trk.Points[1].ElevationOrZero())

	require.Len(t, doc.Waypoints, 2)
	assert.Equal(t, "Zugspitze", doc.Waypoints[0].Name)
	assert.Equal(t, "Highest peak", doc.Waypoints[0].Description)
	assert.Equal(t, 2962.0, doc.Waypoints[0].Elevation.Get())
	assert.True(t, doc.Waypoints[0].HasAnnotation())
	assert.False(t, doc.Waypoints[1].HasAnnotation())
}

func TestParseMalformedInput(t *testing.T) {
	_, err := Parse([]byte("<gpx><trk><trkseg>"))
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestLoadFileMissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.gpx"))
	require.Error(t, err)

	var ioErr *IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.gpx")
	require.NoError(t, os.WriteFile(path, []byte(sampleGPX), 0o666))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Tracks, 1)
	assert.Len(t, doc.Waypoints, 2)
	assert.False(t, doc.IsEmpty())
}
