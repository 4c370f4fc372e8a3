// Package election loads county-level presidential results from a local
// results file. The election table is the backbone of the pipeline: it
// defines the universe of counties every other source joins against.
package election

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/invertedv/soybean/county"
)

// Column names expected in the results file.
const (
	ColFIPS     = "county_fips"
	ColState    = "state_name"
	ColCounty   = "county_name"
	ColDemShare = "per_dem"
	ColRepShare = "per_gop"
	ColVotes    = "total_votes"
)

// Reader reads a results table from a delimited file or an xlsx workbook.
type Reader struct {
	sep   rune
	sheet string
}

type Opt func(r *Reader)

// WithSep sets the field separator for delimited files.
func WithSep(sep rune) Opt {
	return func(r *Reader) { r.sep = sep }
}

// WithSheet sets the worksheet name read from xlsx files.
func WithSheet(name string) Opt {
	return func(r *Reader) { r.sheet = name }
}

func NewReader(opt ...Opt) *Reader {
	r := &Reader{sep: ',', sheet: "Sheet1"}
	for _, o := range opt {
		o(r)
	}

	return r
}

// Load reads fileName and returns one record per county. Workbooks are
// detected by the .xlsx extension; anything else is read as delimited
// text with a header row. A missing or unreadable file is an error, and
// so is any malformed county identifier: bad identifiers are a defect in
// the input, not rows to drop silently.
func (rdr *Reader) Load(fileName string) ([]*county.Record, error) {
	var (
		rows [][]string
		e    error
	)
	if strings.EqualFold(filepath.Ext(fileName), ".xlsx") {
		rows, e = rdr.loadXLSX(fileName)
	} else {
		rows, e = rdr.loadCSV(fileName)
	}

	if e != nil {
		return nil, e
	}

	return build(rows)
}

func (rdr *Reader) loadCSV(fileName string) ([][]string, error) {
	f, e := os.Open(fileName)
	if e != nil {
		return nil, e
	}
	defer func() { _ = f.Close() }()

	cr := csv.NewReader(f)
	cr.Comma = rdr.sep
	cr.TrimLeadingSpace = true

	rows, ex := cr.ReadAll()
	if ex != nil {
		return nil, fmt.Errorf("%s: %w", fileName, ex)
	}

	return rows, nil
}

func (rdr *Reader) loadXLSX(fileName string) ([][]string, error) {
	wb, e := excelize.OpenFile(fileName)
	if e != nil {
		return nil, e
	}
	defer func() { _ = wb.Close() }()

	rows, ex := wb.GetRows(rdr.sheet)
	if ex != nil {
		return nil, fmt.Errorf("%s: %w", fileName, ex)
	}

	return rows, nil
}

// build converts header+data rows into records. The header row locates
// the required columns; extra columns are ignored.
func build(rows [][]string) ([]*county.Record, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("election file has no data rows")
	}

	pos := make(map[string]int)
	for ind, name := range rows[0] {
		pos[strings.TrimSpace(name)] = ind
	}

	for _, need := range []string{ColFIPS, ColState, ColCounty, ColDemShare, ColRepShare, ColVotes} {
		if _, ok := pos[need]; !ok {
			return nil, fmt.Errorf("election file is missing column %s", need)
		}
	}

	var recs []*county.Record
	for ind := 1; ind < len(rows); ind++ {
		row := rows[ind]
		if len(row) < len(rows[0]) {
			return nil, fmt.Errorf("election file row %d is short", ind+1)
		}

		fips, e := county.NormalizeFIPS(row[pos[ColFIPS]])
		if e != nil {
			return nil, fmt.Errorf("election file row %d: %w", ind+1, e)
		}

		r := county.New(fips, row[pos[ColState]], row[pos[ColCounty]])
		r.DemShare = toShare(row[pos[ColDemShare]])
		r.RepShare = toShare(row[pos[ColRepShare]])
		if v, ex := strconv.Atoi(strings.TrimSpace(row[pos[ColVotes]])); ex == nil && v >= 0 {
			r.TotalVotes = v
		}

		recs = append(recs, r)
	}

	return recs, nil
}

// toShare parses a fractional vote share; anything unparseable or outside
// [0,1] is missing.
func toShare(s string) float64 {
	v, e := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if e != nil || v < 0 || v > 1 {
		return county.NA()
	}

	return v
}
