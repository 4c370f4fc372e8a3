package county

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withIncome(fips string, income float64) *Record {
	r := New(fips, "", "")
	r.MedianHouseholdIncome = income

	return r
}

func TestCategorizeLean(t *testing.T) {
	shares := []float64{0.6, 0.4, 0.5, 0.5001, NA()}
	want := []string{LeanDem, LeanRep, LeanRep, LeanDem, ""}

	var recs []*Record
	for ind, s := range shares {
		r := New(fmt.Sprintf("%05d", ind+1), "", "")
		r.DemShare = s
		recs = append(recs, r)
	}

	CategorizeLean(recs)

	for ind := 0; ind < len(recs); ind++ {
		// exactly 0.5 is Republican: the Democratic cut is strict
		assert.Equal(t, want[ind], recs[ind].PoliticalLean, "share %v", shares[ind])
	}
}

func TestCategorizeIncomeQuartiles(t *testing.T) {
	incomes := []float64{30000, 35000, 45000, 50000, 60000, 65000, 80000, 90000}

	var recs []*Record
	for ind, inc := range incomes {
		recs = append(recs, withIncome(fmt.Sprintf("%05d", ind+1), inc))
	}
	// one record with no income: dropped, not labeled
	recs = append(recs, New("99999", "", ""))

	kept := CategorizeIncome(recs)
	require.Equal(t, 8, len(kept))
	assert.LessOrEqual(t, len(kept), len(recs))

	want := []string{
		QuartileLow, QuartileLow,
		QuartileLowerMid, QuartileLowerMid,
		QuartileUpperMid, QuartileUpperMid,
		QuartileHigh, QuartileHigh,
	}
	for ind := 0; ind < len(kept); ind++ {
		assert.Equal(t, want[ind], kept[ind].IncomeQuartile, "income %v", incomes[ind])
	}

	// the lean derivation keeps nulls in place; the income filter is the
	// only row-dropping step
	assert.Empty(t, recs[len(recs)-1].IncomeQuartile)
}

// Too few distinct incomes to form four bins degrades to the sentinel,
// never an error.
func TestCategorizeIncomeDegenerate(t *testing.T) {
	var recs []*Record
	for ind := 0; ind < 100; ind++ {
		inc := 40000.0
		if ind%2 == 0 {
			inc = 60000.0
		}

		recs = append(recs, withIncome(fmt.Sprintf("%05d", ind+1), inc))
	}

	kept := CategorizeIncome(recs)
	require.Equal(t, 100, len(kept))

	for _, r := range kept {
		assert.Equal(t, QuartileUnknown, r.IncomeQuartile)
	}
}

func TestCategorizeIncomeAllMissing(t *testing.T) {
	recs := []*Record{New("01001", "", ""), New("01003", "", "")}

	kept := CategorizeIncome(recs)
	assert.Equal(t, 0, len(kept))
}
