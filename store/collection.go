// Package store implements the collection stores of the marketplace on top
// of a storage.Handle. Every operation is a whole-collection load, an
// in-memory mutation and a whole-collection save; there is no cache between
// operations, so each call sees the latest persisted state.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"food-marketplace-datastore/storage"
)

// Collection binds one entity type to its named backing collection. The
// mutex serializes load-mutate-save cycles against the same collection so
// two concurrent writers cannot silently drop each other's update.
type Collection[T any] struct {
	name   string
	handle storage.Handle
	log    zerolog.Logger
	mu     sync.RWMutex
}

func NewCollection[T any](name string, h storage.Handle, log zerolog.Logger) *Collection[T] {
	return &Collection[T]{
		name:   name,
		handle: h,
		log:    log.With().Str("collection", name).Logger(),
	}
}

// Load reads and parses the whole collection. A missing, unreadable or
// malformed backing file yields an empty slice: the store stays available
// and the real failure goes to the log instead of the caller.
func (c *Collection[T]) Load() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.load()
}

func (c *Collection[T]) load() []T {
	data, err := c.handle.Read(c.name)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.log.Warn().Err(err).Msg("collection unreadable, treating as empty")
		}
		return nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.log.Warn().Err(err).Msg("collection malformed, treating as empty")
		return nil
	}
	return records
}

// Save overwrites the backing collection with the given records. Failures
// are logged and reported as false, never raised.
func (c *Collection[T]) Save(records []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

func (c *Collection[T]) save(records []T) bool {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		c.log.Error().Err(err).Msg("collection serialize failed")
		return false
	}
	if err := c.handle.Write(c.name, data); err != nil {
		c.log.Error().Err(err).Msg("collection write failed")
		return false
	}
	return true
}

// Mutate runs fn over the loaded records while holding the collection lock.
// When fn reports write=false nothing is persisted and the backing file is
// left untouched; otherwise the returned records are saved. Mutate reports
// whether a save happened and succeeded.
func (c *Collection[T]) Mutate(fn func(records []T) (out []T, write bool)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, write := fn(c.load())
	if !write {
		return false
	}
	return c.save(records)
}
