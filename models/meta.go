package models

import "time"

// Meta carries the bookkeeping fields every stored record shares. IDs are
// assigned once at creation and never change; UpdatedAt is refreshed on
// every mutation.
type Meta struct {
	ID        string    `json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
