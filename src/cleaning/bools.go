package cleaning

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"TidyTable/src/utils"
)

// boolTokens maps normalized yes/no answers to booleans. Spanish
// tokens come first because the datasets this started with use them.
var boolTokens = map[string]bool{
	"si":    true,
	"sí":    true,
	"yes":   true,
	"true":  true,
	"no":    false,
	"false": false,
}

// ConvertBoolColumn rewrites a yes/no column as a boolean column.
// Values are trimmed and lowercased before mapping; anything outside
// the known tokens (including missing cells) stays NA instead of
// collapsing to false.
func ConvertBoolColumn(df *dataframe.DataFrame, column string) error {
	if !utils.HasColumn(*df, column) {
		return fmt.Errorf("column %q does not exist in the dataframe", column)
	}

	src := df.Col(column)
	out := make([]string, src.Len())
	unmapped := 0

	for i := 0; i < src.Len(); i++ {
		e := src.Elem(i)
		if isMissing(e) {
			out[i] = naLabel
			continue
		}
		token := strings.ToLower(strings.TrimSpace(e.String()))
		b, ok := boolTokens[token]
		if !ok {
			out[i] = naLabel
			unmapped++
			continue
		}
		if b {
			out[i] = "true"
		} else {
			out[i] = "false"
		}
	}

	*df = df.Mutate(series.New(out, series.Bool, column))

	if unmapped > 0 {
		fmt.Printf("column %q converted to boolean, %d values left as NaN\n", column, unmapped)
	} else {
		fmt.Printf("column %q converted to boolean\n", column)
	}
	return nil
}
