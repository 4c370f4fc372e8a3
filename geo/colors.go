package geo

import (
	"math"

	"github.com/invertedv/soybean/county"
)

// Color ramps keyed by category label: hue encodes the category, shade
// encodes production.
var ramps = map[string]string{
	county.LeanDem:      "Blues",
	county.LeanRep:      "Reds",
	county.RaceWhite:    "Greens",
	county.RaceBlack:    "Purples",
	county.RaceHispanic: "Oranges",
}

// Ramp returns the colorscale name for a category label; unknown labels
// get greys.
func Ramp(category string) string {
	if r, ok := ramps[category]; ok {
		return r
	}

	return "Greys"
}

// Intensity maps production v onto [floor, 1] against the batch maximum
// using log1p normalization, since production has huge outliers. Zero,
// negative, or missing production maps to 0 (no shading).
func Intensity(v, max, floor float64) float64 {
	if math.IsNaN(v) || v <= 0 || max <= 0 {
		return 0
	}

	x := math.Log1p(v) / math.Log1p(max)
	if x < floor {
		return floor
	}

	if x > 1 {
		return 1
	}

	return x
}
