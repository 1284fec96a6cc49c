package cleaning

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9]+`)
)

// symbolWords spells out symbols that would otherwise be lost when
// non-alphanumeric runs collapse to underscores.
var symbolWords = strings.NewReplacer(
	"%", " pct ",
	"#", " num ",
	"&", " and ",
)

// NormalizeName converts a column header to snake_case ASCII:
// "Column %" -> "column_pct", "Año de Alta" -> "ano_de_alta".
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = symbolWords.Replace(s)
	if folded, _, err := transform.String(stripAccents, s); err == nil {
		s = folded
	}
	s = nonAlnumRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "unnamed"
	}
	return s
}

// NormalizeColumnNames rewrites every column header of df with
// NormalizeName, suffixing duplicates so names stay unique.
func NormalizeColumnNames(df *dataframe.DataFrame) error {
	names := df.Names()
	seen := make(map[string]int, len(names))
	normalized := make([]string, len(names))

	for i, name := range names {
		n := NormalizeName(name)
		seen[n]++
		if seen[n] > 1 {
			n = fmt.Sprintf("%s_%d", n, seen[n])
		}
		normalized[i] = n
	}

	return df.SetNames(normalized...)
}
