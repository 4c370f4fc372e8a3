// Command soybean runs the county soybean allocation analysis: it merges
// election results, ACS demographics and USDA production by county,
// derives the political and income categories, and writes the aggregate
// tables, charts and maps.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/invertedv/soybean/census"
	"github.com/invertedv/soybean/config"
	"github.com/invertedv/soybean/county"
	"github.com/invertedv/soybean/election"
	"github.com/invertedv/soybean/geo"
	"github.com/invertedv/soybean/nass"
	"github.com/invertedv/soybean/viz"
)

func main() {
	if e := run(); e != nil {
		slog.Error("run failed", "err", e)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgPath   = flag.String("config", "", "optional YAML config file")
		electFile = flag.String("election", "", "override the election results file")
	)
	flag.Parse()

	cfg, e := config.Load(*cfgPath)
	if e != nil {
		return e
	}

	if *electFile != "" {
		cfg.ElectionFile = *electFile
	}

	setupLog(cfg.LogLevel)

	keys, e := config.LoadKeys()
	if e != nil {
		return e
	}

	ctx := context.Background()

	merged, byIncome, e := build(ctx, cfg, keys)
	if e != nil {
		return e
	}

	polAgg := county.Allocate(merged, county.ByLean)
	raceAgg := county.Allocate(merged, county.ByRace)
	econAgg := county.Allocate(byIncome, county.ByIncome)

	report(polAgg, econAgg, raceAgg)

	if e := os.MkdirAll(cfg.OutputDir, 0o755); e != nil {
		return e
	}

	if e := render(ctx, cfg, merged, polAgg, raceAgg); e != nil {
		return e
	}

	color.Green("analysis complete: %d counties, outputs in %s", len(merged), cfg.OutputDir)

	return nil
}

// build runs the three loaders and the merge+categorize stages. Only the
// election source is fatal; the remote sources degrade to missing fields
// with a warning.
func build(ctx context.Context, cfg *config.Config, keys *config.Keys) (merged, byIncome []*county.Record, err error) {
	slog.Info("loading election data", "file", cfg.ElectionFile)
	elect, e := election.NewReader().Load(cfg.ElectionFile)
	if e != nil {
		return nil, nil, fmt.Errorf("election data is required: %w", e)
	}

	slog.Info("fetching census data")
	demo, e := census.NewClient(cfg.CensusURL, keys.Census).Load(ctx)
	if e != nil {
		slog.Warn("census source unavailable; demographic fields will be missing", "err", e)
	}

	slog.Info("fetching soybean production data", "year", cfg.Year)
	soy, e := nass.NewClient(cfg.NassURL, keys.Ag, cfg.Year).Load(ctx)
	if e != nil {
		slog.Warn("nass source unavailable; production treated as zero", "err", e)
	}

	if merged, e = county.Merge(elect, demo, soy); e != nil {
		return nil, nil, e
	}

	county.CategorizeLean(merged)
	byIncome = county.CategorizeIncome(merged)

	slog.Info("processed", "counties", len(merged), "with_income", len(byIncome))

	return merged, byIncome, nil
}

func report(polAgg, econAgg, raceAgg []county.Allocation) {
	show := func(title, dim string, aggs []county.Allocation, withShare bool) {
		color.Cyan("\n%s", title)
		tbl := tablewriter.NewWriter(os.Stdout)
		header := []string{dim, "Bushels"}
		if withShare {
			header = append(header, "Share")
		}
		tbl.SetHeader(header)

		for _, a := range aggs {
			row := []string{a.Label, fmt.Sprintf("%.0f", a.Bushels)}
			if withShare {
				row = append(row, fmt.Sprintf("%.1f%%", 100*a.Share))
			}
			tbl.Append(row)
		}
		tbl.Render()
	}

	show("Production by political lean", "Lean", polAgg, true)
	show("Production by income quartile", "Quartile", econAgg, false)
	show("Production by county majority race", "Majority", raceAgg, false)
}

// render writes the charts, then the maps. Map trouble is reported, not
// fatal: the aggregate outputs already exist at this point.
func render(ctx context.Context, cfg *config.Config, merged []*county.Record, polAgg, raceAgg []county.Allocation) error {
	out := func(name string) string { return filepath.Join(cfg.OutputDir, name) }

	slog.Info("generating charts")
	if e := viz.PoliticalAllocation(polAgg, out("output_political_allocation.png")); e != nil {
		return e
	}

	if e := viz.EconomicScatter(merged, out("output_economic_scatter.png")); e != nil {
		return e
	}

	if e := viz.DemographicDist(raceAgg, out("output_demographic_dist.png")); e != nil {
		return e
	}

	slog.Info("generating maps")
	fc, e := geo.LoadCounties(ctx, cfg.BoundaryURL)
	if e != nil {
		slog.Warn("skipping maps", "err", e)
		return nil
	}

	maps := []struct {
		file string
		gen  func() error
	}{
		{"output_soybean_map.html", func() error { return geo.ProductionMap(fc, merged, out("output_soybean_map.html")) }},
		{"map_politics_soy.html", func() error { return geo.PoliticalMap(fc, merged, out("map_politics_soy.html")) }},
		{"map_race_soy.html", func() error { return geo.RaceMap(fc, merged, out("map_race_soy.html")) }},
	}
	for _, m := range maps {
		if e := m.gen(); e != nil {
			slog.Warn("map failed", "map", m.file, "err", e)
		}
	}

	return nil
}

func setupLog(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}
