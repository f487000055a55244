package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreSpoolCycle(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	ctx := context.Background()
	key, err := store.Write(ctx, "uploads/ref-1.png", []byte("payload"))
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if key != "uploads/ref-1.png" {
		t.Fatalf("key = %q", key)
	}

	data, err := store.Read(ctx, key)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("data = %q", data)
	}

	if err := store.Remove(key); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.BasePath(), "uploads", "ref-1.png")); !os.IsNotExist(err) {
		t.Fatalf("file still present after Remove: %v", err)
	}
	// Second removal is a no-op.
	if err := store.Remove(key); err != nil {
		t.Fatalf("repeat Remove returned error: %v", err)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	if _, err := store.Write(context.Background(), "../escape.txt", []byte("x")); err == nil {
		t.Fatal("expected traversal key to be rejected")
	}
	if _, err := store.Read(context.Background(), "../../etc/passwd"); err == nil {
		t.Fatal("expected traversal key to be rejected")
	}
}
