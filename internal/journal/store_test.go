package journal

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := OpenAt(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("OpenAt() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndCount(t *testing.T) {
	store := openTestStore(t)

	entry := NewEntry(TargetCompositor)
	entry.MarkSuccess("repository package", "mangowc")

	if err := store.Record(entry); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}
}

func TestListNewestFirst(t *testing.T) {
	store := openTestStore(t)

	targets := []Target{TargetDependencies, TargetCompositor, TargetShell}
	for _, target := range targets {
		entry := NewEntry(target)
		entry.MarkSuccess("installed", "")
		if err := store.Record(entry); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
		time.Sleep(time.Millisecond)
	}

	entries, err := store.List(0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("List() returned %d entries, want 3", len(entries))
	}
	if entries[0].Target != TargetShell {
		t.Errorf("newest entry target = %q, want %q", entries[0].Target, TargetShell)
	}
	if entries[2].Target != TargetDependencies {
		t.Errorf("oldest entry target = %q, want %q", entries[2].Target, TargetDependencies)
	}
}

func TestListLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		entry := NewEntry(TargetConfig)
		entry.MarkSuccess("deployed", "")
		if err := store.Record(entry); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	entries, err := store.List(2)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("List(2) returned %d entries", len(entries))
	}
}

func TestFailedEntryRoundtrip(t *testing.T) {
	store := openTestStore(t)

	entry := NewEntry(TargetShell)
	entry.MarkFailed(errors.New("all strategies exhausted"))
	if err := store.Record(entry); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	entries, err := store.List(1)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List() returned %d entries", len(entries))
	}
	got := entries[0]
	if got.Success {
		t.Error("entry should be marked failed")
	}
	if got.Error != "all strategies exhausted" {
		t.Errorf("Error = %q", got.Error)
	}
}
