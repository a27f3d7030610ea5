// Package storage provides the persistence substrate for the collection
// stores: one serialized document per named collection, read and written
// whole. Handles are injected so stores can run against an in-memory fake
// in tests.
package storage

import (
	"os"
	"path/filepath"
)

// Handle reads and writes the raw serialized form of one collection.
type Handle interface {
	Read(collection string) ([]byte, error)
	Write(collection string, data []byte) error
}

// Dir stores each collection as <name>.json inside a data directory.
//
// Layout:
//
//	data/
//	  users.json
//	  shops.json
//	  menuItems.json
//	  orders.json
//	  reviews.json
//	  menuItemReviews.json
type Dir struct {
	dir string
}

// NewDir creates the data directory if needed and returns a handle over it.
func NewDir(dir string) (*Dir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Dir{dir: dir}, nil
}

func (d *Dir) path(collection string) string {
	return filepath.Join(d.dir, collection+".json")
}

func (d *Dir) Read(collection string) ([]byte, error) {
	return os.ReadFile(d.path(collection))
}

func (d *Dir) Write(collection string, data []byte) error {
	return os.WriteFile(d.path(collection), data, 0o644)
}
