package cleaning

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

func TestNullReport(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"Ana", "", "Juan", "Eva"}, series.String, "nombre"),
		series.New([]string{"1", "2", "3", "4"}, series.String, "id"),
		series.New([]string{"", "", "", "x"}, series.String, "nota"),
	)

	report, err := NullReport(df)
	if err != nil {
		t.Fatalf("NullReport: %v", err)
	}

	records := report.Records()
	if len(records) != 4 { // header + one row per column
		t.Fatalf("report rows = %d, want 4: %v", len(records), records)
	}

	want := map[string][2]string{
		"nombre": {"1", "25.000000"},
		"id":     {"0", "0.000000"},
		"nota":   {"3", "75.000000"},
	}
	for _, row := range records[1:] {
		w, ok := want[row[0]]
		if !ok {
			t.Errorf("unexpected column %q in report", row[0])
			continue
		}
		if row[1] != w[0] || row[2] != w[1] {
			t.Errorf("column %s: got (%s, %s), want (%s, %s)", row[0], row[1], row[2], w[0], w[1])
		}
	}
}

func TestNullReportEmptyFrame(t *testing.T) {
	if _, err := NullReport(dataframe.DataFrame{}); err == nil {
		t.Fatal("expected error for empty dataframe")
	}
}
