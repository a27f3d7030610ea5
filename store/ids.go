package store

import (
	"time"

	"github.com/google/uuid"

	"food-marketplace-datastore/models"
)

// NextID returns a fresh identifier for a new record. V7 UUIDs combine a
// creation timestamp with random tail bits, so ids are distinct in practice
// without any coordination with the backing files.
func NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// entropy source failure, fall back to a purely random id
		return uuid.NewString()
	}
	return id.String()
}

// NewMeta stamps the bookkeeping fields for a freshly created record.
// CreatedAt and UpdatedAt start equal.
func NewMeta() models.Meta {
	now := time.Now().UTC()
	return models.Meta{ID: NextID(), CreatedAt: now, UpdatedAt: now}
}
