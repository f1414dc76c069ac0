package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestAppendAndRecent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	sources := []string{"fcn a() -> Int32 { }", "\"open", "fcn b("}
	outcomes := []Outcome{Parsed, LexFailed, ParseFailed}
	for i, src := range sources {
		entry := &Entry{
			SessionID: "session",
			Source:    src,
			Outcome:   outcomes[i],
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Append(ctx, entry); err != nil {
			t.Fatalf("Failed to append entry: %v", err)
		}
		if entry.ID == "" {
			t.Error("Expected Append to assign an ID")
		}
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to read history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Source != "fcn b(" || entries[0].Outcome != ParseFailed {
		t.Errorf("Expected newest entry first, got %+v", entries[0])
	}
	if entries[1].Source != "\"open" || entries[1].Outcome != LexFailed {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
	if entries[0].SessionID != "session" {
		t.Errorf("Expected session id to round trip, got %q", entries[0].SessionID)
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := store.Append(context.Background(), &Entry{SessionID: "s", Source: "x", Outcome: Parsed}); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer store.Close()

	entries, err := store.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Failed to read history: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry after reopen, got %d", len(entries))
	}
}
