// Package res holds the embedded web resources: HTML templates and the
// static frontend assets mounting the Leaflet map.
package res

import "embed"

//go:embed templates
var Templates embed.FS

//go:embed static
var Static embed.FS
