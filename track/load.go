package track

import (
	"os"

	"github.com/tkrajina/gpxgo/gpx"
	"gitlab.com/begraf/spurkarte/geo"
	"gitlab.com/begraf/spurkarte/option"
)

// Parse builds a document from raw GPX bytes. Malformed input yields a
// *ParseError.
func Parse(data []byte) (*Document, error) {
	gpxData, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	return fromGPX(gpxData), nil
}

// LoadFile reads and parses a GPX file. An unreadable file yields a
// *IOError, malformed content a *ParseError.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	return Parse(data)
}

func fromGPX(gpxData *gpx.GPX) *Document {
	doc := &Document{}

	for _, trk := range gpxData.Tracks {
		t := Track{Name: trk.Name}
		for _, segment := range trk.Segments {
			for _, p := range segment.Points {
				t.Points = append(t.Points, convertPoint(p.Point))
			}
		}

		doc.Tracks = append(doc.Tracks, t)
	}

	for _, wpt := range gpxData.Waypoints {
		doc.Waypoints = append(doc.Waypoints, Waypoint{
			Point:       convertPoint(wpt.Point),
			Name:        wpt.Name,
			Description: wpt.Description,
		})
	}

	return doc
}

func convertPoint(p gpx.Point) geo.Point {
	elevation := option.None[float64]()
	if p.Elevation.NotNull() {
		elevation = option.Some(p.Elevation.Value())
	}

	return geo.Point{Lat: p.Latitude, Lon: p.Longitude, Elevation: elevation}
}
