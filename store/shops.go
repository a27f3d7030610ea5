package store

import (
	"time"

	"github.com/rs/zerolog"

	"food-marketplace-datastore/models"
	"food-marketplace-datastore/storage"
)

// ShopFilter narrows FindAll results. Nil fields mean no constraint; set
// fields must all match.
type ShopFilter struct {
	IsApproved *bool
	Owner      *string
}

func (f ShopFilter) match(s models.Shop) bool {
	if f.IsApproved != nil && s.IsApproved != *f.IsApproved {
		return false
	}
	if f.Owner != nil && s.Owner != *f.Owner {
		return false
	}
	return true
}

// ShopUpdate lists the fields a partial update may overwrite. Nil fields
// are retained from the stored record.
type ShopUpdate struct {
	Name         *string
	Cuisine      *string
	Address      *string
	Description  *string
	IsApproved   *bool
	Rating       *float64
	TotalReviews *int
}

func (u ShopUpdate) apply(s *models.Shop) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Cuisine != nil {
		s.Cuisine = *u.Cuisine
	}
	if u.Address != nil {
		s.Address = *u.Address
	}
	if u.Description != nil {
		s.Description = *u.Description
	}
	if u.IsApproved != nil {
		s.IsApproved = *u.IsApproved
	}
	if u.Rating != nil {
		s.Rating = *u.Rating
	}
	if u.TotalReviews != nil {
		s.TotalReviews = *u.TotalReviews
	}
}

// Shops persists marketplace shops.
type Shops struct {
	col *Collection[models.Shop]
}

func NewShops(h storage.Handle, log zerolog.Logger) *Shops {
	return &Shops{col: NewCollection[models.Shop]("shops", h, log)}
}

// Create appends a new shop. New shops start unapproved with a zero rating;
// approval and rating are written later by other subsystems through Update.
func (s *Shops) Create(shop models.Shop) models.Shop {
	shop.Meta = NewMeta()
	shop.IsApproved = false
	shop.Rating = 0
	shop.TotalReviews = 0
	s.col.Mutate(func(records []models.Shop) ([]models.Shop, bool) {
		return append(records, shop), true
	})
	return shop
}

// FindAll returns the shops matching every set filter field.
func (s *Shops) FindAll(f ShopFilter) []models.Shop {
	var out []models.Shop
	for _, shop := range s.col.Load() {
		if f.match(shop) {
			out = append(out, shop)
		}
	}
	return out
}

// FindByID returns the shop with the given id, or nil.
func (s *Shops) FindByID(id string) *models.Shop {
	for _, shop := range s.col.Load() {
		if shop.ID == id {
			return &shop
		}
	}
	return nil
}

// Update merges the set fields over the stored shop, refreshes UpdatedAt
// and returns the result, or nil when no shop has that id. A miss writes
// nothing back.
func (s *Shops) Update(id string, u ShopUpdate) *models.Shop {
	var out *models.Shop
	s.col.Mutate(func(records []models.Shop) ([]models.Shop, bool) {
		for i := range records {
			if records[i].ID != id {
				continue
			}
			u.apply(&records[i])
			records[i].UpdatedAt = time.Now().UTC()
			shop := records[i]
			out = &shop
			return records, true
		}
		return nil, false
	})
	return out
}
