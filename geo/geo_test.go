package geo

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invertedv/soybean/county"
)

func feature(id any) *geojson.Feature {
	f := geojson.NewFeature(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})
	f.ID = id

	return f
}

func TestLower48(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.Append(feature("01001"))
	fc.Append(feature("02013")) // Alaska
	fc.Append(feature("15001")) // Hawaii
	fc.Append(feature("72005")) // Puerto Rico
	fc.Append(feature("19153"))

	out := Lower48(fc)
	require.Equal(t, 2, len(out.Features))
	assert.Equal(t, "01001", FeatureFIPS(out.Features[0]))
	assert.Equal(t, "19153", FeatureFIPS(out.Features[1]))
}

func TestFeatureFIPS(t *testing.T) {
	assert.Equal(t, "01001", FeatureFIPS(feature("01001")))
	assert.Equal(t, "01001", FeatureFIPS(feature(1001.0)))
	assert.Equal(t, "", FeatureFIPS(feature(nil)))
}

func TestRamp(t *testing.T) {
	assert.Equal(t, "Blues", Ramp(county.LeanDem))
	assert.Equal(t, "Reds", Ramp(county.LeanRep))
	assert.Equal(t, "Greens", Ramp(county.RaceWhite))
	assert.Equal(t, "Greys", Ramp("anything else"))
}

func TestIntensity(t *testing.T) {
	// no production, missing, or empty batch: no shading
	assert.Equal(t, 0.0, Intensity(0, 100, 0.1))
	assert.Equal(t, 0.0, Intensity(county.NA(), 100, 0.1))
	assert.Equal(t, 0.0, Intensity(50, 0, 0.1))

	// the batch max lands exactly at full intensity
	assert.Equal(t, 1.0, Intensity(100, 100, 0.1))

	// small producers are clamped to the floor
	assert.Equal(t, 0.2, Intensity(1, 1e9, 0.2))

	// in between: log1p ratio
	v := Intensity(1000, 1e6, 0.1)
	want := math.Log1p(1000) / math.Log1p(1e6)
	assert.InDelta(t, want, v, 1e-12)
	assert.Greater(t, v, 0.1)
	assert.Less(t, v, 1.0)
}

func TestBucket(t *testing.T) {
	edges := []float64{10, 20, 30, 40}

	assert.Equal(t, 0, bucket(5, edges))
	assert.Equal(t, 0, bucket(10, edges))
	assert.Equal(t, 2, bucket(25, edges))
	assert.Equal(t, 4, bucket(100, edges))
}

func TestProductionMapNoData(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	recs := []*county.Record{county.New("01001", "", "")}
	recs[0].SoybeanBushels = 0

	e := ProductionMap(fc, recs, filepath.Join(t.TempDir(), "map.html"))
	assert.NotNil(t, e)
}

func TestMaps(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.Append(feature("01001"))
	fc.Append(feature("19153"))

	mk := func(fips, lean, race string, bushels float64) *county.Record {
		r := county.New(fips, "", "")
		r.PoliticalLean = lean
		r.MajorityRace = race
		r.SoybeanBushels = bushels

		return r
	}
	recs := []*county.Record{
		mk("01001", county.LeanRep, county.RaceWhite, 1000),
		mk("19153", county.LeanDem, county.RaceHispanic, 25000500),
		mk("06037", county.LeanDem, county.RaceWhite, 0),
	}

	dir := t.TempDir()
	require.Nil(t, ProductionMap(fc, recs, filepath.Join(dir, "soy.html")))
	require.Nil(t, PoliticalMap(fc, recs, filepath.Join(dir, "pol.html")))
	require.Nil(t, RaceMap(fc, recs, filepath.Join(dir, "race.html")))

	for _, name := range []string{"soy.html", "pol.html", "race.html"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}
