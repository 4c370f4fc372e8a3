package county

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// CategorizeLean assigns PoliticalLean in place: Democratic when DemShare
// is strictly above one half, Republican otherwise. Records with a missing
// DemShare are left unlabeled, not defaulted.
func CategorizeLean(recs []*Record) {
	for _, r := range recs {
		if Missing(r.DemShare) {
			continue
		}

		if r.DemShare > 0.5 {
			r.PoliticalLean = LeanDem
		} else {
			r.PoliticalLean = LeanRep
		}
	}
}

// CategorizeIncome drops records with no income and assigns equal-frequency
// quartile labels over the survivors. The boundaries come from the incomes
// in recs, so membership is relative to the batch. If the distribution has
// too few distinct values to form four non-degenerate bins, every survivor
// gets QuartileUnknown.
//
// Unlike CategorizeLean, this filter is destructive: the returned table can
// be shorter than recs.
func CategorizeIncome(recs []*Record) []*Record {
	var (
		kept    []*Record
		incomes []float64
	)
	for _, r := range recs {
		if Missing(r.MedianHouseholdIncome) {
			continue
		}

		kept = append(kept, r)
		incomes = append(incomes, r.MedianHouseholdIncome)
	}

	if len(kept) == 0 {
		return kept
	}

	sort.Float64s(incomes)
	q1 := stat.Quantile(0.25, stat.LinInterp, incomes, nil)
	q2 := stat.Quantile(0.5, stat.LinInterp, incomes, nil)
	q3 := stat.Quantile(0.75, stat.LinInterp, incomes, nil)

	// Equal-frequency bins need strictly increasing edges, including the
	// min and max of the data.
	lo, hi := incomes[0], incomes[len(incomes)-1]
	if !(lo < q1 && q1 < q2 && q2 < q3 && q3 < hi) {
		for _, r := range kept {
			r.IncomeQuartile = QuartileUnknown
		}

		return kept
	}

	for _, r := range kept {
		switch inc := r.MedianHouseholdIncome; {
		case inc <= q1:
			r.IncomeQuartile = QuartileLow
		case inc <= q2:
			r.IncomeQuartile = QuartileLowerMid
		case inc <= q3:
			r.IncomeQuartile = QuartileUpperMid
		default:
			r.IncomeQuartile = QuartileHigh
		}
	}

	return kept
}
