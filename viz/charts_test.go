package viz

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invertedv/soybean/county"
)

func TestPartyColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x00, G: 0xAE, B: 0xF3, A: 0xFF}, PartyColor(county.LeanDem))
	assert.Equal(t, color.RGBA{R: 0xE8, G: 0x1B, B: 0x23, A: 0xFF}, PartyColor(county.LeanRep))
	assert.Equal(t, color.RGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}, PartyColor(""))
}

func TestMillionTicks(t *testing.T) {
	tks := millionTicks{}.Ticks(0, 4e6)
	require.NotEmpty(t, tks)

	for _, tk := range tks {
		if tk.Label != "" {
			assert.Regexp(t, `^-?\d+M$`, tk.Label)
		}
	}
}

func TestCharts(t *testing.T) {
	dir := t.TempDir()

	polAgg := []county.Allocation{
		{Label: county.LeanDem, Bushels: 1.2e8, Share: 0.3},
		{Label: county.LeanRep, Bushels: 2.8e8, Share: 0.7},
	}
	raceAgg := []county.Allocation{
		{Label: county.RaceBlack, Bushels: 2e6},
		{Label: county.RaceHispanic, Bushels: 8e6},
		{Label: county.RaceWhite, Bushels: 3.9e8},
	}

	mk := func(fips, lean string, income, bushels float64) *county.Record {
		r := county.New(fips, "", "")
		r.PoliticalLean = lean
		r.MedianHouseholdIncome = income
		r.SoybeanBushels = bushels

		return r
	}
	recs := []*county.Record{
		mk("01001", county.LeanRep, 52000, 1.1e6),
		mk("19153", county.LeanDem, 70000, 2.5e7),
		mk("06037", county.LeanDem, 80000, 0), // no production: excluded
	}

	require.Nil(t, PoliticalAllocation(polAgg, filepath.Join(dir, "pol.png")))
	require.Nil(t, EconomicScatter(recs, filepath.Join(dir, "scatter.png")))
	require.Nil(t, DemographicDist(raceAgg, filepath.Join(dir, "race.png")))

	for _, name := range []string{"pol.png", "scatter.png", "race.png"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

// No categorized production at all still renders an empty chart rather
// than failing the run.
func TestEconomicScatterEmpty(t *testing.T) {
	recs := []*county.Record{county.New("01001", "", "")}

	assert.Nil(t, EconomicScatter(recs, filepath.Join(t.TempDir(), "empty.png")))
}
