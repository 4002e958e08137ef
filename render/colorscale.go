package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gitlab.com/begraf/spurkarte/track"
)

// ColorScale maps elevations within a range onto a linear blend between a
// low and a high color.
type ColorScale struct {
	Low, High colorful.Color
}

// NewColorScale builds a scale from two hex color strings.
func NewColorScale(lowHex, highHex string) (ColorScale, error) {
	low, err := colorful.Hex(lowHex)
	if err != nil {
		return ColorScale{}, fmt.Errorf("low color: %w", err)
	}

	high, err := colorful.Hex(highHex)
	if err != nil {
		return ColorScale{}, fmt.Errorf("high color: %w", err)
	}

	return ColorScale{Low: low, High: high}, nil
}

// At returns the color for an elevation relative to rng. The ratio is
// clamped to [0, 1]; segment colors are derived from averaged elevations
// and may otherwise fall slightly outside the document range. A zero-span
// range maps every elevation to the low color: the divisor is treated as
// 1, so the ratio is 0 for all points of a flat track.
func (s ColorScale) At(elevation float64, rng track.ElevationRange) colorful.Color {
	span := rng.Span()
	if span == 0 {
		span = 1
	}

	ratio := (elevation - rng.Min) / span
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	return s.Low.BlendRgb(s.High, ratio)
}

// HexAt is At rendered as a CSS hex string for the map payload.
func (s ColorScale) HexAt(elevation float64, rng track.ElevationRange) string {
	return s.At(elevation, rng).Hex()
}
