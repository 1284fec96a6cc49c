package cleaning

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"TidyTable/src/utils"
)

// DateReport summarizes one column's date conversion.
type DateReport struct {
	Column    string
	Converted int
	Failed    int
}

// ConvertDateColumns parses each listed column with the given layout
// (reference time notation, e.g. "02/01/2006") and rewrites it as an
// ISO formatted string column. Values that do not parse become NaN.
// Missing columns and parse failures are reported on stdout and
// skipped; the remaining columns are still converted.
func ConvertDateColumns(df *dataframe.DataFrame, columns []string, layout string) []DateReport {
	if layout == "" {
		layout = "02/01/2006"
	}
	outLayout := "2006-01-02"
	if strings.Contains(layout, "15:04") {
		outLayout = "2006-01-02 15:04:05"
	}

	var reports []DateReport
	for _, col := range columns {
		if !utils.HasColumn(*df, col) {
			fmt.Printf("column %q does not exist in the dataframe, skipping\n", col)
			continue
		}

		src := df.Col(col)
		total := src.Len()
		out := make([]string, total)
		converted, failed := 0, 0

		for i := 0; i < total; i++ {
			e := src.Elem(i)
			if isMissing(e) {
				out[i] = naLabel
				failed++
				continue
			}
			t, err := time.Parse(layout, strings.TrimSpace(e.String()))
			if err != nil {
				out[i] = naLabel
				failed++
				continue
			}
			out[i] = t.Format(outLayout)
			converted++
		}

		*df = df.Mutate(series.New(out, series.String, col))

		if total > 0 {
			pctConverted := round2(float64(converted) / float64(total) * 100)
			pctFailed := round2(float64(failed) / float64(total) * 100)
			fmt.Printf("column %q: %d values converted (%.2f%%)\n", col, converted, pctConverted)
			fmt.Printf("column %q: %d values not converted (%.2f%%)\n", col, failed, pctFailed)
		}

		reports = append(reports, DateReport{Column: col, Converted: converted, Failed: failed})
	}
	return reports
}
