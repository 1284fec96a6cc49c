// Package cleaning provides the table-cleaning helpers used from
// exploratory analysis sessions: value-distribution summaries, missing
// value reports, date/boolean column conversion, column-name
// normalization and free-text cleanup. Every helper is a single pass
// over a gota DataFrame and either returns a derived frame or mutates
// one column of the input in place.
package cleaning

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"TidyTable/src/utils"
)

// naLabel is how missing values show up in summaries, matching gota's
// own printed representation.
const naLabel = "NaN"

// ColumnSummary returns the unique values of a column with their count
// and percentage of the total, missing values included. The result has
// columns <column>, Count and Pct (rounded to 2 decimals), ordered by
// descending count.
func ColumnSummary(df dataframe.DataFrame, column string) (dataframe.DataFrame, error) {
	if !utils.HasColumn(df, column) {
		return dataframe.DataFrame{}, fmt.Errorf("column %q does not exist in the dataframe", column)
	}

	col := df.Col(column)
	total := col.Len()
	if total == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("column %q is empty", column)
	}

	counts := make(map[string]int)
	for i := 0; i < total; i++ {
		counts[cellValue(col.Elem(i))]++
	}

	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	// descending count, value as tiebreak so output is deterministic
	sort.Slice(values, func(i, j int) bool {
		if counts[values[i]] != counts[values[j]] {
			return counts[values[i]] > counts[values[j]]
		}
		return values[i] < values[j]
	})

	cnts := make([]int, len(values))
	pcts := make([]float64, len(values))
	for i, v := range values {
		cnts[i] = counts[v]
		pcts[i] = round2(float64(counts[v]) / float64(total) * 100)
	}

	return dataframe.New(
		series.New(values, series.String, column),
		series.New(cnts, series.Int, "Count"),
		series.New(pcts, series.Float, "Pct"),
	), nil
}

// PrintColumnSummary writes the value summary of a column to w,
// limited to maxRows rows. maxRows <= 0 prints everything.
func PrintColumnSummary(w io.Writer, df dataframe.DataFrame, column string, maxRows int) error {
	summary, err := ColumnSummary(df, column)
	if err != nil {
		return err
	}

	if maxRows > 0 && summary.Nrow() > maxRows {
		distinct := summary.Nrow()
		idx := make([]int, maxRows)
		for i := range idx {
			idx[i] = i
		}
		summary = summary.Subset(idx)
		if summary.Err != nil {
			return summary.Err
		}
		fmt.Fprintf(w, "%v... showing %d of %d values\n", summary, maxRows, distinct)
		return nil
	}

	fmt.Fprintln(w, summary)
	return nil
}

// cellValue renders an element the way the summary groups it: missing
// and empty cells collapse to the NA label.
func cellValue(e series.Element) string {
	if e.IsNA() {
		return naLabel
	}
	s := e.String()
	if strings.TrimSpace(s) == "" {
		return naLabel
	}
	return s
}

func isMissing(e series.Element) bool {
	return cellValue(e) == naLabel
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
