package cleaning

import (
	"reflect"
	"testing"

	"github.com/go-gota/gota/series"
)

func TestConvertBoolColumn(t *testing.T) {
	df := stringFrame("activo", "si", "Sí", " NO ", "yes", "maybe", "")

	if err := ConvertBoolColumn(&df, "activo"); err != nil {
		t.Fatalf("ConvertBoolColumn: %v", err)
	}

	col := df.Col("activo")
	if col.Type() != series.Bool {
		t.Errorf("column type = %v, want bool", col.Type())
	}

	got := col.Records()
	want := []string{"true", "true", "false", "true", "NaN", "NaN"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("records = %v, want %v", got, want)
	}

	// unknown tokens must stay NA, not collapse to false
	if !col.Elem(4).IsNA() {
		t.Error("unmapped value should be NA")
	}
	if !col.Elem(5).IsNA() {
		t.Error("missing value should stay NA")
	}
}

func TestConvertBoolColumnMissingColumn(t *testing.T) {
	df := stringFrame("activo", "si")
	if err := ConvertBoolColumn(&df, "enabled"); err == nil {
		t.Fatal("expected error for unknown column")
	}
}
