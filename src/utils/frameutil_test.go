package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b"}, "b") {
		t.Error("Contains should find b")
	}
	if Contains([]int{1, 2}, 3) {
		t.Error("Contains found a value that is not there")
	}
}

func TestHasColumn(t *testing.T) {
	df := dataframe.New(series.New([]string{"x"}, series.String, "nombre"))
	if !HasColumn(df, "nombre") {
		t.Error("HasColumn missed an existing column")
	}
	if HasColumn(df, "edad") {
		t.Error("HasColumn reported a missing column")
	}
}

func TestSaveCSV(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"Ana", "Juan"}, series.String, "nombre"),
		series.New([]int{30, 41}, series.Int, "edad"),
	)

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := SaveCSV(df, path); err != nil {
		t.Fatalf("SaveCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.HasPrefix(got, "nombre,edad\n") {
		t.Errorf("missing header in %q", got)
	}
	if !strings.Contains(got, "Ana,30") {
		t.Errorf("missing row in %q", got)
	}
}

func TestSaveXLSX(t *testing.T) {
	df := dataframe.New(series.New([]string{"x"}, series.String, "col"))

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := SaveXLSX(df, path); err != nil {
		t.Fatalf("SaveXLSX: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("workbook file is empty")
	}
}
