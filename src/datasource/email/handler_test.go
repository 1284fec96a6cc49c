package email

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAttachmentHandlerSavesTables(t *testing.T) {
	dir := t.TempDir()
	handler := NewAttachmentHandler("weekly export", dir)

	msg := &Email{
		UID:     42,
		Date:    time.Now(),
		Subject: "weekly export - clientes",
		Attachments: []*Attachment{
			{Filename: "clientes.csv", Content: []byte("a,b\n1,2\n")},
			{Filename: "logo.png", Content: []byte{0x89, 0x50}},
			{Filename: "ventas.xlsx", Content: []byte("stub")},
		},
	}

	saved, err := handler.Handle(msg)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("saved %d files, want 2 (png skipped): %v", len(saved), saved)
	}

	data, err := os.ReadFile(filepath.Join(dir, "clientes.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("attachment content = %q", data)
	}

	// same UID again is a no-op
	saved, err = handler.Handle(msg)
	if err != nil {
		t.Fatal(err)
	}
	if saved != nil {
		t.Errorf("second Handle saved %v, want nothing", saved)
	}
}

func TestAttachmentHandlerIgnoresOtherSubjects(t *testing.T) {
	handler := NewAttachmentHandler("weekly export", t.TempDir())

	msg := &Email{
		UID:     7,
		Subject: "lunch plans",
		Attachments: []*Attachment{
			{Filename: "menu.csv", Content: []byte("a\n1\n")},
		},
	}

	saved, err := handler.Handle(msg)
	if err != nil {
		t.Fatal(err)
	}
	if saved != nil {
		t.Errorf("saved %v for non-matching subject", saved)
	}
}

func TestFilterLatestTargetEmail(t *testing.T) {
	older := &Email{Subject: "weekly export v1", Date: time.Now().Add(-2 * time.Hour)}
	newer := &Email{Subject: "weekly export v2", Date: time.Now()}
	other := &Email{Subject: "unrelated", Date: time.Now()}

	got := filterLatestTargetEmail([]*Email{older, other, newer}, "weekly export")
	if got != newer {
		t.Errorf("got %+v, want the newest matching mail", got)
	}

	if got := filterLatestTargetEmail([]*Email{other}, "weekly export"); got != nil {
		t.Errorf("got %+v, want nil when nothing matches", got)
	}
}

func TestDecodeHeader(t *testing.T) {
	// RFC 2047 encoded "café" in Latin-1
	in := "=?iso-8859-1?Q?caf=E9?="
	if got := decodeHeader(in); got != "café" {
		t.Errorf("decodeHeader = %q, want café", got)
	}

	plain := "plain subject"
	if got := decodeHeader(plain); got != plain {
		t.Errorf("decodeHeader(%q) = %q", plain, got)
	}
}
