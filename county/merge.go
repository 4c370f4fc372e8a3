package county

import "fmt"

// Demographics carries the census-sourced attributes for one county.
type Demographics struct {
	MedianHouseholdIncome float64
	PctBachelorsDegree    float64
	MajorityRace          string
}

// Merge left-joins the census and agricultural tables onto the election
// table by FIPS. The election table defines the row universe: every
// election row survives, and census/NASS entries without a matching
// election row are dropped. A nil demo or soy table is a degraded source
// and leaves that source's fields missing. After both joins, missing
// SoybeanBushels coalesce to zero: no production record means no
// production, not unknown.
//
// The input records are not modified; the returned rows are copies.
func Merge(elect []*Record, demo map[string]Demographics, soy map[string]float64) ([]*Record, error) {
	if len(elect) == 0 {
		return nil, fmt.Errorf("no election data: nothing to merge")
	}

	out := make([]*Record, 0, len(elect))
	for ind := 0; ind < len(elect); ind++ {
		r := *elect[ind]

		if d, ok := demo[r.FIPS]; ok {
			r.MedianHouseholdIncome = d.MedianHouseholdIncome
			r.PctBachelorsDegree = d.PctBachelorsDegree
			r.MajorityRace = d.MajorityRace
		}

		if v, ok := soy[r.FIPS]; ok {
			r.SoybeanBushels = v
		}

		if Missing(r.SoybeanBushels) {
			r.SoybeanBushels = 0
		}

		out = append(out, &r)
	}

	return out, nil
}
