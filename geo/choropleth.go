package geo

import (
	"fmt"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
	"github.com/paulmach/orb/geojson"
)

// Map is a choropleth figure over a county boundary collection. Layers
// are choropleth traces sharing the same geometry.
type Map struct {
	fig *grob.Fig
	lay *grob.Layout
	fc  *geojson.FeatureCollection
}

type Opt func(m *Map) *Map

func NewMap(fc *geojson.FeatureCollection, opt ...Opt) *Map {
	fig := &grob.Fig{}
	lay := &grob.Layout{
		Geo:        &grob.LayoutGeo{Scope: grob.LayoutGeoScopeUsa},
		Showlegend: grob.False,
	}
	fig.Layout = lay

	m := &Map{fig: fig, lay: lay, fc: fc}
	for _, o := range opt {
		o(m)
	}

	return m
}

func WithTitle(title string) Opt {
	return func(m *Map) *Map { m.lay.Title = &grob.LayoutTitle{Text: title}; return m }
}

func WithSize(w, h float64) Opt {
	if w < 0.0 || h < 0.0 {
		panic(fmt.Errorf("negative size"))
	}
	return func(m *Map) *Map {
		m.lay.Width = w
		m.lay.Height = h
		return m
	}
}

// AddLayer shades the counties in fips by z on colorscale, which is a
// plotly scale name or explicit color stops. z is scaled against [0, zMax].
func (m *Map) AddLayer(name string, fips []string, z []float64, colorscale any, zMax float64, showScale bool) {
	scale := grob.False
	if showScale {
		scale = grob.True
	}

	tr := &grob.Choropleth{
		Name:       name,
		Locations:  fips,
		Z:          z,
		Geojson:    m.fc,
		Colorscale: colorscale,
		Zmin:       0,
		Zmax:       zMax,
		Showscale:  scale,
		Marker: &grob.ChoroplethMarker{
			Line: &grob.ChoroplethMarkerLine{Color: "white", Width: 0.3},
		},
	}

	m.fig.AddTraces(tr)
}

// Save writes the map as a self-contained html page.
func (m *Map) Save(fileName string) error {
	offline.ToHtml(m.fig, fileName)

	return nil
}
