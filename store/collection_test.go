package store_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"food-marketplace-datastore/storage"
	"food-marketplace-datastore/store"
)

type rec struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// failingHandle reads fine but refuses every write.
type failingHandle struct {
	storage.Handle
}

func (failingHandle) Write(string, []byte) error {
	return errors.New("disk full")
}

func TestCollection(t *testing.T) {
	log := zerolog.Nop()

	t.Run("Load missing collection", func(t *testing.T) {
		col := store.NewCollection[rec]("recs", storage.NewMem(), log)
		if got := col.Load(); len(got) != 0 {
			t.Fatalf("expected empty, got %d records", len(got))
		}
	})

	t.Run("Save then Load round trip", func(t *testing.T) {
		col := store.NewCollection[rec]("recs", storage.NewMem(), log)
		want := []rec{{ID: "1", Title: "first"}, {ID: "2", Title: "second"}, {ID: "3", Title: "third"}}
		if !col.Save(want) {
			t.Fatal("save failed")
		}
		got := col.Load()
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round trip mismatch: got %+v", got)
		}
	})

	t.Run("Load malformed collection", func(t *testing.T) {
		h := storage.NewMem()
		if err := h.Write("recs", []byte("not json at all")); err != nil {
			t.Fatal(err)
		}
		col := store.NewCollection[rec]("recs", h, log)
		if got := col.Load(); len(got) != 0 {
			t.Fatalf("expected empty, got %d records", len(got))
		}
	})

	t.Run("Save reports write failure", func(t *testing.T) {
		col := store.NewCollection[rec]("recs", failingHandle{storage.NewMem()}, log)
		if col.Save([]rec{{ID: "1"}}) {
			t.Fatal("expected save to report failure")
		}
	})

	t.Run("Mutate without write leaves file untouched", func(t *testing.T) {
		h := storage.NewMem()
		col := store.NewCollection[rec]("recs", h, log)
		col.Save([]rec{{ID: "1", Title: "keep"}})
		before, err := h.Read("recs")
		if err != nil {
			t.Fatal(err)
		}
		col.Mutate(func(records []rec) ([]rec, bool) {
			return nil, false
		})
		after, err := h.Read("recs")
		if err != nil {
			t.Fatal(err)
		}
		if string(before) != string(after) {
			t.Fatal("backing data changed despite write=false")
		}
	})
}

func TestNextID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := store.NextID()
		if id == "" {
			t.Fatal("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestNewMeta(t *testing.T) {
	m := store.NewMeta()
	if m.ID == "" {
		t.Fatal("empty id")
	}
	if !m.CreatedAt.Equal(m.UpdatedAt) {
		t.Fatalf("createdAt %v != updatedAt %v", m.CreatedAt, m.UpdatedAt)
	}
	if strings.TrimSpace(m.ID) != m.ID {
		t.Fatalf("id has surrounding whitespace: %q", m.ID)
	}
}
