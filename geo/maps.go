package geo

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb/geojson"
	"gonum.org/v1/gonum/stat"

	"github.com/invertedv/soybean/county"
)

// Shading floors keep faintly producing counties visible on the category
// maps.
const (
	leanFloor = 0.1
	raceFloor = 0.2
)

// greens for the production map, light to dark
var greens = []string{"#c7e9c0", "#74c476", "#41ab5d", "#238b45", "#005a32"}

// ProductionMap shades producing counties by quintile bucket of bushels.
// Quantile buckets, not a linear scale: production outliers would wash
// out everything else. Zero-production counties are left unshaded.
func ProductionMap(fc *geojson.FeatureCollection, recs []*county.Record, fileName string) error {
	var vals []float64
	for _, r := range recs {
		if r.SoybeanBushels > 0 {
			vals = append(vals, r.SoybeanBushels)
		}
	}

	if len(vals) == 0 {
		return fmt.Errorf("no production to map")
	}

	sort.Float64s(vals)
	var edges []float64
	for _, p := range []float64{0.2, 0.4, 0.6, 0.8} {
		edges = append(edges, stat.Quantile(p, stat.Empirical, vals, nil))
	}

	var (
		fips []string
		z    []float64
	)
	for _, r := range recs {
		if r.SoybeanBushels <= 0 {
			continue
		}

		fips = append(fips, r.FIPS)
		z = append(z, float64(bucket(r.SoybeanBushels, edges)))
	}

	m := NewMap(fc,
		WithTitle("US Soybean Production Intensity by County"),
		WithSize(1100, 700))
	m.AddLayer("bushels", fips, z, stepped(greens), float64(len(greens)-1), true)

	return m.Save(fileName)
}

// PoliticalMap layers one trace per lean: hue is the party ramp, shade is
// log-scaled production.
func PoliticalMap(fc *geojson.FeatureCollection, recs []*county.Record, fileName string) error {
	maxSoy := maxBushels(recs)

	m := NewMap(fc,
		WithTitle("Soybean Output vs Political Landscape (darker = more soybeans; red = Rep, blue = Dem)"),
		WithSize(1100, 700))
	for _, lean := range []string{county.LeanDem, county.LeanRep} {
		fips, z := layer(recs, maxSoy, leanFloor, func(r *county.Record) bool { return r.PoliticalLean == lean })
		if len(fips) == 0 {
			continue
		}

		m.AddLayer(lean, fips, z, Ramp(lean), 1, false)
	}

	return m.Save(fileName)
}

// RaceMap layers one trace per majority group: green = White, purple =
// Black, orange = Hispanic.
func RaceMap(fc *geojson.FeatureCollection, recs []*county.Record, fileName string) error {
	maxSoy := maxBushels(recs)

	m := NewMap(fc,
		WithTitle("Soybean Output by Demographic Majority (green = White, purple = Black, orange = Hispanic)"),
		WithSize(1100, 700))
	for _, race := range []string{county.RaceWhite, county.RaceBlack, county.RaceHispanic} {
		fips, z := layer(recs, maxSoy, raceFloor, func(r *county.Record) bool { return r.MajorityRace == race })
		if len(fips) == 0 {
			continue
		}

		m.AddLayer(race, fips, z, Ramp(race), 1, false)
	}

	return m.Save(fileName)
}

// layer collects the FIPS and shading intensity of producing counties
// that keep selects.
func layer(recs []*county.Record, maxSoy, floor float64, keep func(*county.Record) bool) ([]string, []float64) {
	var (
		fips []string
		z    []float64
	)
	for _, r := range recs {
		if !keep(r) || r.SoybeanBushels <= 0 {
			continue
		}

		fips = append(fips, r.FIPS)
		z = append(z, Intensity(r.SoybeanBushels, maxSoy, floor))
	}

	return fips, z
}

func maxBushels(recs []*county.Record) float64 {
	mx := 0.0
	for _, r := range recs {
		if r.SoybeanBushels > mx {
			mx = r.SoybeanBushels
		}
	}

	return mx
}

func bucket(v float64, edges []float64) int {
	for ind, edge := range edges {
		if v <= edge {
			return ind
		}
	}

	return len(edges)
}

// stepped converts a color list to a discrete plotly colorscale.
func stepped(colors []string) [][]any {
	var stops [][]any
	n := float64(len(colors))
	for ind, c := range colors {
		stops = append(stops,
			[]any{float64(ind) / n, c},
			[]any{float64(ind+1) / n, c})
	}

	return stops
}
