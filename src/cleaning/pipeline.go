package cleaning

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"TidyTable/src/config"
)

// Pipeline applies the configured cleaning steps to freshly loaded
// tables. The individual helpers stay independent; the pipeline only
// strings them together in the order notebooks usually do.
type Pipeline struct {
	cfg *config.CleanConfig
}

func NewPipeline(cfg *config.CleanConfig) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Report collects what a pipeline run did to one table.
type Report struct {
	Name  string
	Rows  int
	Cols  int
	Nulls dataframe.DataFrame
	Dates []DateReport
	Bools []string
	Texts []string
}

// Run cleans df according to the clean config and returns the cleaned
// frame with a run report. Per-column failures are logged and skipped
// so one bad column never aborts the rest of the table.
func (p *Pipeline) Run(df dataframe.DataFrame, name string) (dataframe.DataFrame, *Report, error) {
	if df.Err != nil {
		return df, nil, fmt.Errorf("cannot clean %s: %w", name, df.Err)
	}

	report := &Report{Name: name}

	if p.cfg.NormalizeNames {
		if err := NormalizeColumnNames(&df); err != nil {
			return df, nil, fmt.Errorf("normalizing column names of %s: %w", name, err)
		}
	}

	report.Dates = ConvertDateColumns(&df, p.columns(p.cfg.DateColumns), p.cfg.GetDateLayout())

	for _, col := range p.columns(p.cfg.BoolColumns) {
		if err := ConvertBoolColumn(&df, col); err != nil {
			fmt.Println(err)
			continue
		}
		report.Bools = append(report.Bools, col)
	}

	for _, col := range p.columns(p.cfg.TextColumns) {
		if err := CleanTextColumn(&df, col, DefaultTextOptions()); err != nil {
			fmt.Println(err)
			continue
		}
		report.Texts = append(report.Texts, col)
	}

	nulls, err := NullReport(df)
	if err != nil {
		return df, nil, fmt.Errorf("null report for %s: %w", name, err)
	}
	report.Nulls = nulls
	report.Rows = df.Nrow()
	report.Cols = df.Ncol()

	return df, report, nil
}

// columns maps configured column names through the same normalization
// the headers get, so the config can list the original headers.
func (p *Pipeline) columns(cols []string) []string {
	if !p.cfg.NormalizeNames {
		return cols
	}
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = NormalizeName(c)
	}
	return out
}

// Markdown renders the report as a short markdown document for the
// webhook push and the report mail.
func (r *Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Cleaning report: %s\n\n", r.Name)
	fmt.Fprintf(&b, "Rows: %d, Columns: %d\n\n", r.Rows, r.Cols)

	if len(r.Dates) > 0 {
		b.WriteString("### Date conversions\n")
		for _, d := range r.Dates {
			fmt.Fprintf(&b, "- %s: %d converted, %d failed\n", d.Column, d.Converted, d.Failed)
		}
		b.WriteString("\n")
	}
	if len(r.Bools) > 0 {
		fmt.Fprintf(&b, "Boolean columns: %s\n\n", strings.Join(r.Bools, ", "))
	}
	if len(r.Texts) > 0 {
		fmt.Fprintf(&b, "Text columns cleaned: %s\n\n", strings.Join(r.Texts, ", "))
	}

	b.WriteString("### Missing values\n")
	fmt.Fprintf(&b, "```\n%v```\n", r.Nulls)
	return b.String()
}
