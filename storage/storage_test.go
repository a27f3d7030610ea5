package storage_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"food-marketplace-datastore/storage"
)

// runHandleTests runs a common suite against any Handle implementation.
func runHandleTests(t *testing.T, h storage.Handle) {
	t.Helper()

	t.Run("Read missing", func(t *testing.T) {
		_, err := h.Read("missing")
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected ErrNotExist, got %v", err)
		}
	})

	t.Run("Write and Read", func(t *testing.T) {
		want := []byte(`[{"_id":"a"}]`)
		if err := h.Write("col1", want); err != nil {
			t.Fatal(err)
		}
		got, err := h.Read("col1")
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("Write overwrites", func(t *testing.T) {
		if err := h.Write("col1", []byte(`[]`)); err != nil {
			t.Fatal(err)
		}
		got, err := h.Read("col1")
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != `[]` {
			t.Fatalf("expected [], got %s", got)
		}
	})
}

func TestDirHandle(t *testing.T) {
	h, err := storage.NewDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runHandleTests(t, h)
}

func TestMemHandle(t *testing.T) {
	runHandleTests(t, storage.NewMem())
}

func TestDirCreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/data"
	if _, err := storage.NewDir(dir); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Fatalf("expected directory at %s", dir)
	}
}
