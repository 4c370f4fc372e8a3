package county

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both remote sources down: the election table alone still flows through
// merge, categorization and aggregation without error.
func TestPipelineElectionOnly(t *testing.T) {
	merged, e := Merge(electTwo(), nil, nil)
	require.Nil(t, e)
	require.Equal(t, 2, len(merged))

	CategorizeLean(merged)
	byIncome := CategorizeIncome(merged)

	assert.Equal(t, LeanDem, merged[0].PoliticalLean)
	assert.Equal(t, LeanRep, merged[1].PoliticalLean)
	assert.Equal(t, 0, len(byIncome))

	// no income data: the income aggregation has no rows
	assert.Equal(t, 0, len(Allocate(byIncome, ByIncome)))

	// the political aggregation still covers both counties, with zero
	// production and zero shares
	polAgg := Allocate(merged, ByLean)
	require.Equal(t, 2, len(polAgg))
	for _, a := range polAgg {
		assert.Equal(t, 0.0, a.Bushels)
		assert.Equal(t, 0.0, a.Share)
	}

	assert.Equal(t, 0, len(Allocate(merged, ByRace)))
}
