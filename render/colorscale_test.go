package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/begraf/spurkarte/track"
)

func testScale(t *testing.T) ColorScale {
	t.Helper()

	scale, err := NewColorScale(DefaultLowColor, DefaultHighColor)
	require.NoError(t, err)

	return scale
}

func TestColorScaleZeroSpanRange(t *testing.T) {
	scale := testScale(t)
	flat := track.ElevationRange{Min: 250, Max: 250}

	// Every elevation of a flat track maps to the low color.
	for _, ele := range []float64{0, 249, 250, 251, 10000} {
		assert.Equal(t, scale.Low.Hex(), scale.At(ele, flat).Hex())
	}
}

func TestColorScaleClamping(t *testing.T) {
	scale := testScale(t)
	rng := track.ElevationRange{Min: 100, Max: 200}

	assert.Equal(t, scale.Low.Hex(), scale.At(100, rng).Hex())
	assert.Equal(t, scale.Low.Hex(), scale.At(-500, rng).Hex())
	assert.Equal(t, scale.High.Hex(), scale.At(200, rng).Hex())
	assert.Equal(t, scale.High.Hex(), scale.At(9000, rng).Hex())
}

func TestColorScaleInterpolation(t *testing.T) {
	scale := testScale(t)
	rng := track.ElevationRange{Min: 0, Max: 100}

	quarter := scale.At(25, rng)
	threeQuarters := scale.At(75, rng)

	// Strictly between the endpoints, and on the expected side.
	assert.NotEqual(t, scale.Low.Hex(), quarter.Hex())
	assert.NotEqual(t, scale.High.Hex(), quarter.Hex())
	assert.Less(t, quarter.DistanceRgb(scale.Low), quarter.DistanceRgb(scale.High))
	assert.Less(t, threeQuarters.DistanceRgb(scale.High), threeQuarters.DistanceRgb(scale.Low))
}

func TestNewColorScaleRejectsBadHex(t *testing.T) {
	_, err := NewColorScale("#zzzzzz", DefaultHighColor)
	assert.Error(t, err)

	_, err = NewColorScale(DefaultLowColor, "not-a-color")
	assert.Error(t, err)
}
