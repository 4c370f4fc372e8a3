// Package nass fetches county soybean production from the USDA NASS
// Quick Stats API.
package nass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/invertedv/soybean/county"
)

// DefaultURL is the Quick Stats GET endpoint.
const DefaultURL = "https://quickstats.nass.usda.gov/api/api_GET/"

// DefaultYear is the Census of Agriculture year queried by default.
const DefaultYear = "2022"

type Client struct {
	baseURL string
	key     string
	year    string
	http    *http.Client
}

// NewClient returns a client pinned to county-level soybean production,
// measured in bushels, for the given census year.
func NewClient(baseURL, key, year string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}

	if year == "" {
		year = DefaultYear
	}

	return &Client{baseURL: baseURL, key: key, year: year, http: &http.Client{Timeout: time.Minute}}
}

// quickStatsRow is the slice of the Quick Stats record we use. Value is a
// string: numbers carry thousands separators and withheld values are the
// "(D)" disclosure placeholder.
type quickStatsRow struct {
	StateANSI  string `json:"state_ansi"`
	CountyANSI string `json:"county_ansi"`
	Value      string `json:"Value"`
}

type quickStatsPayload struct {
	Data []quickStatsRow `json:"data"`
}

// Load fetches production by county, keyed by FIPS. Withheld values map
// to the missing sentinel, never zero: the null-to-zero coercion belongs
// to the merge step. A payload without a data key is "no data", not an
// error. Missing key, transport failure, non-200 status or malformed
// JSON make the source unavailable.
func (c *Client) Load(ctx context.Context) (map[string]float64, error) {
	if c.key == "" {
		return nil, fmt.Errorf("nass: no API key")
	}

	q := url.Values{}
	q.Set("key", c.key)
	q.Set("source_desc", "CENSUS")
	q.Set("sector_desc", "CROPS")
	q.Set("group_desc", "FIELD CROPS")
	q.Set("commodity_desc", "SOYBEANS")
	q.Set("statisticcat_desc", "PRODUCTION")
	q.Set("short_desc", "SOYBEANS - PRODUCTION, MEASURED IN BU")
	q.Set("domain_desc", "TOTAL")
	q.Set("agg_level_desc", "COUNTY")
	q.Set("year", c.year)

	req, e := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if e != nil {
		return nil, e
	}

	resp, e := c.http.Do(req)
	if e != nil {
		return nil, fmt.Errorf("nass: %w", e)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("nass: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var payload quickStatsPayload
	if e := json.NewDecoder(resp.Body).Decode(&payload); e != nil {
		return nil, fmt.Errorf("nass: bad payload: %w", e)
	}

	out := make(map[string]float64)
	for _, row := range payload.Data {
		// FIPS is the 2-digit state ANSI followed by the 3-digit county
		// ANSI. Rows without a county code ("other counties" rollups)
		// can't join and are skipped.
		if row.CountyANSI == "" {
			continue
		}

		fips, e := county.NormalizeFIPS(zfill(row.StateANSI, 2) + zfill(row.CountyANSI, 3))
		if e != nil {
			continue
		}

		out[fips] = toBushels(row.Value)
	}

	return out, nil
}

// toBushels parses a Quick Stats value string such as "1,234,000".
// Non-numeric placeholders like "(D)" mean withheld and parse to missing.
func toBushels(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")

	v, e := strconv.ParseFloat(s, 64)
	if e != nil || v < 0 {
		return county.NA()
	}

	return v
}

func zfill(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}

	return s
}
