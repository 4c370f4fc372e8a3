// Package county holds the merged county-level record and the merge,
// categorization and aggregation steps that operate on it.
package county

import (
	"fmt"
	"math"
	"strings"
)

// Political lean labels.
const (
	LeanDem = "Democratic"
	LeanRep = "Republican"
)

// Majority-race labels, in tie-break order.
const (
	RaceWhite    = "White"
	RaceBlack    = "Black"
	RaceHispanic = "Hispanic"
)

// Income quartile labels, lowest to highest, plus the degenerate-bin sentinel.
const (
	QuartileLow      = "Low Income"
	QuartileLowerMid = "Lower-Mid"
	QuartileUpperMid = "Upper-Mid"
	QuartileHigh     = "High Income"
	QuartileUnknown  = "Unknown"
)

// MissingVotes flags an absent total_votes count.
const MissingVotes = -1

// Record is one county. Float fields are NA() when a source didn't supply
// them, TotalVotes is MissingVotes, string fields are empty.
// SoybeanBushels is NA() until Merge coalesces it to zero.
type Record struct {
	FIPS       string
	StateName  string
	CountyName string

	DemShare   float64
	RepShare   float64
	TotalVotes int

	MedianHouseholdIncome float64
	PctBachelorsDegree    float64
	MajorityRace          string

	SoybeanBushels float64

	// derived
	PoliticalLean  string
	IncomeQuartile string
}

// New returns a Record for fips with every measured field set to missing.
func New(fips, stateName, countyName string) *Record {
	return &Record{
		FIPS:                  fips,
		StateName:             stateName,
		CountyName:            countyName,
		DemShare:              NA(),
		RepShare:              NA(),
		TotalVotes:            MissingVotes,
		MedianHouseholdIncome: NA(),
		PctBachelorsDegree:    NA(),
		SoybeanBushels:        NA(),
	}
}

// NA is the missing value for float fields.
func NA() float64 {
	return math.NaN()
}

// Missing returns true when x is the missing-value sentinel.
func Missing(x float64) bool {
	return math.IsNaN(x)
}

// NormalizeFIPS left-pads id with zeros to the 5-character state+county
// form (e.g. "1001" -> "01001"). Normalizing an already 5-character code
// returns it unchanged.
func NormalizeFIPS(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > 5 {
		return "", fmt.Errorf("bad county fips %q", id)
	}

	for _, r := range id {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("bad county fips %q", id)
		}
	}

	return strings.Repeat("0", 5-len(id)) + id, nil
}
