package viz

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/invertedv/soybean/county"
)

const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
	barWidth    = 40 // points
)

// millionTicks labels the production axis in millions of bushels.
type millionTicks struct{}

func (millionTicks) Ticks(min, max float64) []plot.Tick {
	tks := plot.DefaultTicks{}.Ticks(min, max)
	for ind := range tks {
		if tks[ind].Label == "" {
			continue
		}

		tks[ind].Label = fmt.Sprintf("%.0fM", tks[ind].Value/1e6)
	}

	return tks
}

// PoliticalAllocation writes a bar chart of production by political lean,
// one party-colored bar per category with its share printed above.
func PoliticalAllocation(aggs []county.Allocation, fileName string) error {
	p := plot.New()
	p.Title.Text = "US Soybean Production Allocation by Political Leaning"
	p.X.Label.Text = "County Majority Vote"
	p.Y.Label.Text = "Total Bushels Produced"
	p.Y.Tick.Marker = millionTicks{}

	names := make([]string, len(aggs))
	var shares plotter.XYLabels
	for ind, a := range aggs {
		b, e := plotter.NewBarChart(plotter.Values{a.Bushels}, vg.Points(barWidth))
		if e != nil {
			return e
		}

		b.XMin = float64(ind)
		b.Color = PartyColor(a.Label)
		b.LineStyle.Width = 0
		p.Add(b)

		names[ind] = a.Label
		shares.XYs = append(shares.XYs, plotter.XY{X: float64(ind), Y: a.Bushels})
		shares.Labels = append(shares.Labels, fmt.Sprintf("%.1f%%", 100*a.Share))
	}
	p.NominalX(names...)

	if len(shares.Labels) > 0 {
		lbl, e := plotter.NewLabels(shares)
		if e != nil {
			return e
		}

		p.Add(lbl)
	}

	return p.Save(chartWidth, chartHeight, fileName)
}

// EconomicScatter writes income vs production, colored by political lean.
// Counties with no production or no income are excluded, and the Y axis
// is log-scaled: production is power-law distributed.
func EconomicScatter(recs []*county.Record, fileName string) error {
	p := plot.New()
	p.Title.Text = "Soybean Output vs. Economic Status"
	p.X.Label.Text = "Median Household Income ($)"
	p.Y.Label.Text = "Soybean Production (Bushels)"

	plotted := 0
	for _, lean := range []string{county.LeanDem, county.LeanRep} {
		var pts plotter.XYs
		for _, r := range recs {
			if r.PoliticalLean != lean || county.Missing(r.MedianHouseholdIncome) || r.SoybeanBushels <= 0 {
				continue
			}

			pts = append(pts, plotter.XY{X: r.MedianHouseholdIncome, Y: r.SoybeanBushels})
		}

		if len(pts) == 0 {
			continue
		}

		s, e := plotter.NewScatter(pts)
		if e != nil {
			return e
		}

		s.GlyphStyle.Color = PartyColor(lean)
		s.GlyphStyle.Radius = vg.Points(2)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(lean, s)
		plotted++
	}

	// a log scale needs at least one positive point
	if plotted > 0 {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Legend.Top = true

	return p.Save(chartWidth, chartHeight, fileName)
}

// DemographicDist writes a bar chart of production by county majority race.
func DemographicDist(aggs []county.Allocation, fileName string) error {
	p := plot.New()
	p.Title.Text = "Soybean Production by County Majority Demographics"
	p.X.Label.Text = "County Majority Group"
	p.Y.Label.Text = "Total Bushels"
	p.Y.Tick.Marker = millionTicks{}

	names := make([]string, len(aggs))
	for ind, a := range aggs {
		b, e := plotter.NewBarChart(plotter.Values{a.Bushels}, vg.Points(barWidth))
		if e != nil {
			return e
		}

		b.XMin = float64(ind)
		b.Color = plotutil.Color(ind)
		b.LineStyle.Width = 0
		p.Add(b)
		names[ind] = a.Label
	}
	p.NominalX(names...)

	return p.Save(chartWidth, chartHeight, fileName)
}
