package ledger

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndLookup(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	hash := HashContent("1\n00:00:01,000 --> 00:00:02,000\nhi")

	if _, found, err := store.LookupDone(ctx, "f1", hash); err != nil || found {
		t.Fatalf("LookupDone() on empty ledger = (%v, %v)", found, err)
	}

	if err := store.Record(ctx, Entry{SourceID: "f1", FileName: "a.srt", ContentHash: hash, Status: StatusFailed, Message: "timeout"}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if _, found, _ := store.LookupDone(ctx, "f1", hash); found {
		t.Error("failed entry should not count as done")
	}

	if err := store.Record(ctx, Entry{SourceID: "f1", FileName: "a.srt", ContentHash: hash, Status: StatusDone, OutputRef: "https://link"}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	e, found, err := store.LookupDone(ctx, "f1", hash)
	if err != nil || !found {
		t.Fatalf("LookupDone() = (%v, %v)", found, err)
	}
	if e.OutputRef != "https://link" || e.FileName != "a.srt" {
		t.Errorf("LookupDone() = %+v", e)
	}
	if time.Since(e.ProcessedAt) > time.Minute {
		t.Errorf("ProcessedAt = %v, want recent", e.ProcessedAt)
	}

	if _, found, _ := store.LookupDone(ctx, "f1", HashContent("changed")); found {
		t.Error("changed content should not match")
	}

	if err := store.Record(ctx, Entry{SourceID: "f1", FileName: "a.srt", ContentHash: hash, Status: StatusSkipped, OutputRef: "https://link"}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	e, found, err = store.LookupDone(ctx, "f1", hash)
	if err != nil || !found || e.Status != StatusDone {
		t.Errorf("LookupDone() after skip = (%+v, %v, %v), want the done entry", e, found, err)
	}
}

func TestRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"a.srt", "b.srt", "c.srt"} {
		if err := store.Record(ctx, Entry{SourceID: name, FileName: name, ContentHash: "h", Status: StatusDone}); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 2 || entries[0].FileName != "c.srt" || entries[1].FileName != "b.srt" {
		t.Errorf("Recent() = %+v", entries)
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Record(ctx, Entry{SourceID: "x", FileName: "x.srt", ContentHash: "h", Status: StatusDone}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()
	if _, found, _ := reopened.LookupDone(ctx, "x", "h"); !found {
		t.Error("entry lost after reopen")
	}
}

func TestSchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	if _, err := Open(dir); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("Open() error = %v, want ErrSchemaMismatch", err)
	}
}

func TestHashContent(t *testing.T) {
	if HashContent("a") == HashContent("b") {
		t.Error("different content hashed equal")
	}
	if len(HashContent("")) != 64 {
		t.Error("hash should be hex sha256")
	}
}
