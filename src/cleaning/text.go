package cleaning

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/transform"

	"TidyTable/src/utils"
)

var spaceRe = regexp.MustCompile(`\s+`)

// TextOptions selects which cleanups CleanTextColumn applies.
type TextOptions struct {
	Lowercase      bool
	FoldASCII      bool
	CollapseSpaces bool
}

// DefaultTextOptions enables every cleanup.
func DefaultTextOptions() TextOptions {
	return TextOptions{Lowercase: true, FoldASCII: true, CollapseSpaces: true}
}

// CleanTextColumn normalizes a free-text column in place: trims and
// collapses whitespace, folds accented characters to ASCII and
// lowercases, as selected by opts. Missing cells are left untouched.
func CleanTextColumn(df *dataframe.DataFrame, column string, opts TextOptions) error {
	if !utils.HasColumn(*df, column) {
		return fmt.Errorf("column %q does not exist in the dataframe", column)
	}

	cleaned := df.Col(column).Map(func(e series.Element) series.Element {
		if e.IsNA() {
			return e
		}
		e.Set(CleanText(e.String(), opts))
		return e
	})

	*df = df.Mutate(series.New(cleaned, series.String, column))
	return nil
}

// CleanText applies the selected cleanups to a single value.
func CleanText(s string, opts TextOptions) string {
	s = strings.TrimSpace(s)
	if opts.CollapseSpaces {
		s = spaceRe.ReplaceAllString(s, " ")
	}
	if opts.FoldASCII {
		if folded, _, err := transform.String(stripAccents, s); err == nil {
			s = folded
		}
	}
	if opts.Lowercase {
		s = strings.ToLower(s)
	}
	return s
}
