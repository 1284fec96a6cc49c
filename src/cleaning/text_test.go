package cleaning

import (
	"reflect"
	"testing"
)

func TestCleanText(t *testing.T) {
	opts := DefaultTextOptions()
	cases := []struct {
		in   string
		want string
	}{
		{"  Ça   va  BIEN ", "ca va bien"},
		{"José\tGarcía", "jose garcia"},
		{"already clean", "already clean"},
		{"Müller\n& Söhne", "muller & sohne"},
		{"", ""},
	}

	for _, c := range cases {
		if got := CleanText(c.in, opts); got != c.want {
			t.Errorf("CleanText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanTextKeepCase(t *testing.T) {
	opts := TextOptions{Lowercase: false, FoldASCII: true, CollapseSpaces: true}
	if got := CleanText("  José  PÉREZ ", opts); got != "Jose PEREZ" {
		t.Errorf("got %q, want %q", got, "Jose PEREZ")
	}
}

func TestCleanTextColumn(t *testing.T) {
	df := stringFrame("cliente", " ACME  S.L. ", "  Ñandú   Corp", "ok")

	if err := CleanTextColumn(&df, "cliente", DefaultTextOptions()); err != nil {
		t.Fatalf("CleanTextColumn: %v", err)
	}

	got := df.Col("cliente").Records()
	want := []string{"acme s.l.", "nandu corp", "ok"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("records = %v, want %v", got, want)
	}
}

func TestCleanTextColumnMissingColumn(t *testing.T) {
	df := stringFrame("cliente", "x")
	if err := CleanTextColumn(&df, "proveedor", DefaultTextOptions()); err == nil {
		t.Fatal("expected error for unknown column")
	}
}
