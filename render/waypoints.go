package render

import (
	"fmt"
	"html"
	"strings"

	"gitlab.com/begraf/spurkarte/track"
)

// PopupHTML builds the popup fragment for a waypoint: name as heading,
// description as body, elevation suffixed "m". ok is false for waypoints
// with none of the three fields, which get a bare marker.
func PopupHTML(w track.Waypoint) (string, bool) {
	if !w.HasAnnotation() {
		return "", false
	}

	var buf strings.Builder

	if w.Name != "" {
		buf.WriteString("<h3>")
		buf.WriteString(html.EscapeString(w.Name))
		buf.WriteString("</h3>")
	}

	if w.Description != "" {
		buf.WriteString("<p>")
		buf.WriteString(html.EscapeString(w.Description))
		buf.WriteString("</p>")
	}

	if w.Elevation.IsSome() {
		buf.WriteString(fmt.Sprintf("<p>%.1f m</p>", w.Elevation.Get()))
	}

	return buf.String(), true
}
