package track

import "gitlab.com/begraf/spurkarte/geo"

// Track is an ordered sequence of points; insertion order is traversal
// order along the path and defines segment adjacency.
type Track struct {
	Name   string
	Points []geo.Point
}

// Waypoint is a standalone annotated location, not connected by segments.
type Waypoint struct {
	geo.Point
	Name        string
	Description string
}

// Document is a parsed GPX file. It is never mutated by the pipeline.
type Document struct {
	Tracks    []Track
	Waypoints []Waypoint
}

// HasAnnotation reports whether the waypoint carries any popup-worthy
// content.
func (w Waypoint) HasAnnotation() bool {
	return w.Name != "" || w.Description != "" || w.Elevation.IsSome()
}

func (d *Document) IsEmpty() bool {
	return len(d.Tracks) == 0 && len(d.Waypoints) == 0
}

// WaypointPoints returns the bare coordinates of all waypoints.
func (d *Document) WaypointPoints() []geo.Point {
	points := make([]geo.Point, len(d.Waypoints))
	for i, w := range d.Waypoints {
		points[i] = w.Point
	}

	return points
}
