// Package geo fetches the county boundary geometry and renders the
// choropleth maps. It consumes only the merged+categorized table; the
// FIPS column is the join key against boundary features.
package geo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/paulmach/orb/geojson"
)

// DefaultBoundaryURL is a lightweight US county boundary GeoJSON whose
// feature ids are county FIPS codes.
const DefaultBoundaryURL = "https://raw.githubusercontent.com/plotly/datasets/master/geojson-counties-fips.json"

// Alaska, Hawaii and Puerto Rico are dropped to frame the lower 48.
var excludedStates = map[string]bool{"02": true, "15": true, "72": true}

// LoadCounties fetches and decodes the boundary collection at rawURL,
// keeping only the lower 48.
func LoadCounties(ctx context.Context, rawURL string) (*geojson.FeatureCollection, error) {
	if rawURL == "" {
		rawURL = DefaultBoundaryURL
	}

	req, e := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if e != nil {
		return nil, e
	}

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, e := client.Do(req)
	if e != nil {
		return nil, fmt.Errorf("boundaries: %w", e)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("boundaries: %s", resp.Status)
	}

	body, e := io.ReadAll(resp.Body)
	if e != nil {
		return nil, e
	}

	fc, e := geojson.UnmarshalFeatureCollection(body)
	if e != nil {
		return nil, fmt.Errorf("boundaries: %w", e)
	}

	return Lower48(fc), nil
}

// Lower48 drops features for the excluded states.
func Lower48(fc *geojson.FeatureCollection) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	for _, f := range fc.Features {
		id := FeatureFIPS(f)
		if len(id) >= 2 && excludedStates[id[:2]] {
			continue
		}

		out.Append(f)
	}

	return out
}

// FeatureFIPS returns a boundary feature's county FIPS. The collection
// stores it as the feature id, usually a string but sometimes numeric.
func FeatureFIPS(f *geojson.Feature) string {
	switch id := f.ID.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		return fmt.Sprintf("%05.0f", id)
	default:
		return ""
	}
}
