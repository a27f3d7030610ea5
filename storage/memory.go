package storage

import (
	"os"
	"sync"
)

// Mem is an ephemeral Handle for tests and demos.
type Mem struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMem() *Mem {
	return &Mem{blobs: make(map[string][]byte)}
}

func (m *Mem) Read(collection string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blobs[collection]
	if !ok {
		return nil, os.ErrNotExist
	}
	return append([]byte(nil), b...), nil
}

func (m *Mem) Write(collection string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[collection] = append([]byte(nil), data...)
	return nil
}
