package datapush

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPushReport(t *testing.T) {
	var got reportMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewPusher(srv.URL)
	if err := p.PushReport("TidyTable: clientes.csv", "## report body"); err != nil {
		t.Fatalf("PushReport: %v", err)
	}
	if got.Title != "TidyTable: clientes.csv" || got.Text != "## report body" {
		t.Errorf("payload = %+v", got)
	}
}

func TestPushReportUnconfigured(t *testing.T) {
	p := NewPusher("")
	if err := p.PushReport("t", "x"); err != nil {
		t.Errorf("empty URL should be a no-op, got %v", err)
	}
}

func TestPostRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewPusher(srv.URL)
	if err := p.post([]byte(`{}`)); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
