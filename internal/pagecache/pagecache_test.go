package pagecache

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDirStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewDirStore(t.TempDir())

	if err := store.SaveChunk([]string{"page one", "page two"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.SaveChunk([]string{"page three"}, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pages, err := store.LoadAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"page one", "page two", "page three"}
	if !reflect.DeepEqual(pages, want) {
		t.Errorf("expected %v, got %v", want, pages)
	}
}

func TestDirStore_LoadAllEmpty(t *testing.T) {
	store := NewDirStore(t.TempDir())
	pages, err := store.LoadAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("expected no pages, got %d", len(pages))
	}
}

func TestDirStore_LoadStopsAtGap(t *testing.T) {
	store := NewDirStore(t.TempDir())
	if err := store.SaveChunk([]string{"a"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Chunk 3 exists but 2 is missing; loading stops after chunk 1.
	if err := store.SaveChunk([]string{"c"}, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pages, err := store.LoadAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(pages, []string{"a"}) {
		t.Errorf("expected [a], got %v", pages)
	}
}

func TestDirStore_CorruptChunkKeepsPartialResults(t *testing.T) {
	dir := t.TempDir()
	store := NewDirStore(dir)
	if err := store.SaveChunk([]string{"good"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "guns-2.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pages, err := store.LoadAll()
	if err == nil {
		t.Fatal("expected an error for the corrupt chunk")
	}
	if !reflect.DeepEqual(pages, []string{"good"}) {
		t.Errorf("expected already-loaded pages to be kept, got %v", pages)
	}
}

func TestDirStore_AllChunksPresent(t *testing.T) {
	store := NewDirStore(t.TempDir())
	if store.AllChunksPresent(25, 10) {
		t.Error("expected false with no chunks on disk")
	}

	store.SaveChunk([]string{"a"}, 1)
	store.SaveChunk([]string{"b"}, 2)
	if store.AllChunksPresent(25, 10) {
		t.Error("expected false with 2 of 3 chunks")
	}

	store.SaveChunk([]string{"c"}, 3)
	if !store.AllChunksPresent(25, 10) {
		t.Error("expected true with all 3 chunks")
	}
	// 30 pages fit exactly in 3 chunks of 10.
	if !store.AllChunksPresent(30, 10) {
		t.Error("expected true for an exact chunk boundary")
	}
	if store.AllChunksPresent(31, 10) {
		t.Error("expected false when a fourth chunk is required")
	}
}
