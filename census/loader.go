// Package census fetches county demographic and economic attributes from
// the Census Bureau's ACS 5-year API.
package census

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/invertedv/soybean/county"
)

// DefaultURL is the ACS 5-year endpoint for the 2023 survey.
const DefaultURL = "https://api.census.gov/data/2023/acs/acs5"

// ACS variable codes.
const (
	varIncome   = "B19013_001E" // median household income
	varPop25    = "B15003_001E" // population 25 and over
	varBachelor = "B15003_022E" // bachelor's degree holders
	varWhite    = "B03002_003E" // White alone, non-Hispanic
	varBlack    = "B03002_004E" // Black alone, non-Hispanic
	varHispanic = "B03002_012E" // Hispanic or Latino
)

type Client struct {
	baseURL string
	key     string
	http    *http.Client
}

// NewClient returns a client for the ACS endpoint at baseURL. The key is
// the caller-supplied API credential; Load reports an error when it is
// empty.
func NewClient(baseURL, key string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}

	return &Client{baseURL: baseURL, key: key, http: &http.Client{Timeout: time.Minute}}
}

// Load fetches the six tracked variables for every county and returns the
// derived attributes keyed by FIPS. Any failure -- missing key, transport
// error, non-200 status, malformed payload -- makes this source
// unavailable; the caller decides whether that is fatal.
func (c *Client) Load(ctx context.Context) (map[string]county.Demographics, error) {
	if c.key == "" {
		return nil, fmt.Errorf("census: no API key")
	}

	get := strings.Join([]string{varIncome, varPop25, varBachelor, varWhite, varBlack, varHispanic}, ",")
	u := fmt.Sprintf("%s?get=%s&for=county:*&key=%s", c.baseURL, get, url.QueryEscape(c.key))

	req, e := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if e != nil {
		return nil, e
	}

	resp, e := c.http.Do(req)
	if e != nil {
		return nil, fmt.Errorf("census: %w", e)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("census: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	// The API returns a JSON array of arrays whose first row is the header.
	var rows [][]string
	if e := json.NewDecoder(resp.Body).Decode(&rows); e != nil {
		return nil, fmt.Errorf("census: bad payload: %w", e)
	}

	return tabulate(rows)
}

func tabulate(rows [][]string) (map[string]county.Demographics, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("census: empty payload")
	}

	pos := make(map[string]int)
	for ind, name := range rows[0] {
		pos[name] = ind
	}

	for _, need := range []string{varIncome, varPop25, varBachelor, varWhite, varBlack, varHispanic, "state", "county"} {
		if _, ok := pos[need]; !ok {
			return nil, fmt.Errorf("census: payload is missing %s", need)
		}
	}

	out := make(map[string]county.Demographics)
	for ind := 1; ind < len(rows); ind++ {
		row := rows[ind]
		if len(row) < len(rows[0]) {
			continue
		}

		fips, e := county.NormalizeFIPS(row[pos["state"]] + row[pos["county"]])
		if e != nil {
			continue
		}

		d := county.Demographics{
			MedianHouseholdIncome: toCount(row[pos[varIncome]]),
			PctBachelorsDegree:    pctBachelors(toCount(row[pos[varBachelor]]), toCount(row[pos[varPop25]])),
			MajorityRace: majorityRace(
				toCount(row[pos[varWhite]]),
				toCount(row[pos[varBlack]]),
				toCount(row[pos[varHispanic]])),
		}
		out[fips] = d
	}

	return out, nil
}

// toCount parses an ACS numeric value. The API flags missing values with
// large negative sentinels (e.g. -666666666), so anything negative or
// unparseable is missing.
func toCount(s string) float64 {
	v, e := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if e != nil || v < 0 {
		return county.NA()
	}

	return v
}

// pctBachelors is 100 * bachelor / pop25. A zero or missing denominator
// propagates missing rather than dividing.
func pctBachelors(bachelor, pop25 float64) float64 {
	if county.Missing(bachelor) || county.Missing(pop25) || pop25 == 0 {
		return county.NA()
	}

	return 100 * bachelor / pop25
}

// majorityRace picks the label with the largest population count. Exact
// ties go to the earlier label in the fixed order White, Black, Hispanic.
func majorityRace(white, black, hispanic float64) string {
	cands := []struct {
		count float64
		label string
	}{
		{white, county.RaceWhite},
		{black, county.RaceBlack},
		{hispanic, county.RaceHispanic},
	}

	best, lbl := math.Inf(-1), ""
	for _, cand := range cands {
		if county.Missing(cand.count) {
			continue
		}

		if cand.count > best {
			best, lbl = cand.count, cand.label
		}
	}

	return lbl
}
