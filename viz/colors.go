// Package viz renders the static charts over the pipeline's output tables.
package viz

import (
	"image/color"

	"github.com/invertedv/soybean/county"
)

// party palette
var partyColors = map[string]color.Color{
	county.LeanDem: color.RGBA{R: 0x00, G: 0xAE, B: 0xF3, A: 0xFF},
	county.LeanRep: color.RGBA{R: 0xE8, G: 0x1B, B: 0x23, A: 0xFF},
}

// PartyColor returns the chart color for a political lean. Unlabeled
// records get grey.
func PartyColor(lean string) color.Color {
	if c, ok := partyColors[lean]; ok {
		return c
	}

	return color.RGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
}
