package county

import (
	"fmt"
	"sort"
)

// Dim selects the categorical dimension to aggregate over.
type Dim int

const (
	ByLean Dim = iota
	ByIncome
	ByRace
)

func (d Dim) label(r *Record) string {
	switch d {
	case ByLean:
		return r.PoliticalLean
	case ByIncome:
		return r.IncomeQuartile
	case ByRace:
		return r.MajorityRace
	default:
		panic(fmt.Errorf("unknown dimension %d", d))
	}
}

// Allocation is one row of a category aggregation: the summed production
// for one label, and for the political dimension its share of the total.
type Allocation struct {
	Label   string
	Bushels float64
	Share   float64
}

// quartile display order; other dimensions sort by label
var quartileOrder = map[string]int{
	QuartileLow:      0,
	QuartileLowerMid: 1,
	QuartileUpperMid: 2,
	QuartileHigh:     3,
	QuartileUnknown:  4,
}

// Allocate sums SoybeanBushels by the labels of dim present in recs. Rows
// whose label is undefined contribute to no bucket, and only labels seen
// in the data produce output rows. For ByLean each row also carries its
// share of the cross-category total; when the total is zero every share
// is zero.
func Allocate(recs []*Record, dim Dim) []Allocation {
	sums := make(map[string]float64)
	for _, r := range recs {
		lbl := dim.label(r)
		if lbl == "" {
			continue
		}

		sums[lbl] += r.SoybeanBushels
	}

	labels := make([]string, 0, len(sums))
	for lbl := range sums {
		labels = append(labels, lbl)
	}

	if dim == ByIncome {
		sort.Slice(labels, func(i, j int) bool { return quartileOrder[labels[i]] < quartileOrder[labels[j]] })
	} else {
		sort.Strings(labels)
	}

	total := 0.0
	for _, lbl := range labels {
		total += sums[lbl]
	}

	out := make([]Allocation, 0, len(labels))
	for _, lbl := range labels {
		a := Allocation{Label: lbl, Bushels: sums[lbl]}
		if dim == ByLean && total > 0 {
			a.Share = sums[lbl] / total
		}

		out = append(out, a)
	}

	return out
}
