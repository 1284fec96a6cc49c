package cleaning

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// NullReport returns the missing-value count and percentage for every
// column of df. The result has columns Column, Nulls and PctNulls.
func NullReport(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("dataframe has no rows")
	}

	names := df.Names()
	nulls := make([]int, len(names))
	pcts := make([]float64, len(names))

	for i, name := range names {
		col := df.Col(name)
		n := 0
		for j := 0; j < col.Len(); j++ {
			if isMissing(col.Elem(j)) {
				n++
			}
		}
		nulls[i] = n
		pcts[i] = round2(float64(n) / float64(df.Nrow()) * 100)
	}

	return dataframe.New(
		series.New(names, series.String, "Column"),
		series.New(nulls, series.Int, "Nulls"),
		series.New(pcts, series.Float, "PctNulls"),
	), nil
}
