package store

import (
	"time"

	"github.com/rs/zerolog"

	"food-marketplace-datastore/models"
	"food-marketplace-datastore/storage"
)

// MenuItemFilter narrows FindAll results; nil fields mean no constraint.
type MenuItemFilter struct {
	Shop     *string
	Category *string
}

func (f MenuItemFilter) match(m models.MenuItem) bool {
	if f.Shop != nil && m.Shop != *f.Shop {
		return false
	}
	if f.Category != nil && m.Category != *f.Category {
		return false
	}
	return true
}

// MenuItemUpdate lists the fields a partial update may overwrite.
type MenuItemUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	IsAvailable *bool
}

func (u MenuItemUpdate) apply(m *models.MenuItem) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
	if u.Price != nil {
		m.Price = *u.Price
	}
	if u.Category != nil {
		m.Category = *u.Category
	}
	if u.IsAvailable != nil {
		m.IsAvailable = *u.IsAvailable
	}
}

// MenuItems persists the items on shop menus.
type MenuItems struct {
	col *Collection[models.MenuItem]
}

func NewMenuItems(h storage.Handle, log zerolog.Logger) *MenuItems {
	return &MenuItems{col: NewCollection[models.MenuItem]("menuItems", h, log)}
}

// Create appends a new menu item, available by default.
func (s *MenuItems) Create(item models.MenuItem) models.MenuItem {
	item.Meta = NewMeta()
	item.IsAvailable = true
	s.col.Mutate(func(records []models.MenuItem) ([]models.MenuItem, bool) {
		return append(records, item), true
	})
	return item
}

// FindAll returns the items matching every set filter field.
func (s *MenuItems) FindAll(f MenuItemFilter) []models.MenuItem {
	var out []models.MenuItem
	for _, item := range s.col.Load() {
		if f.match(item) {
			out = append(out, item)
		}
	}
	return out
}

// FindByID returns the item with the given id, or nil.
func (s *MenuItems) FindByID(id string) *models.MenuItem {
	for _, item := range s.col.Load() {
		if item.ID == id {
			return &item
		}
	}
	return nil
}

// Update merges the set fields over the stored item and returns the result,
// or nil when no item has that id. A miss writes nothing back.
func (s *MenuItems) Update(id string, u MenuItemUpdate) *models.MenuItem {
	var out *models.MenuItem
	s.col.Mutate(func(records []models.MenuItem) ([]models.MenuItem, bool) {
		for i := range records {
			if records[i].ID != id {
				continue
			}
			u.apply(&records[i])
			records[i].UpdatedAt = time.Now().UTC()
			item := records[i]
			out = &item
			return records, true
		}
		return nil, false
	})
	return out
}

// Delete removes the item with the given id and persists the remainder.
// Legacy looseness: it reports true even when nothing matched.
func (s *MenuItems) Delete(id string) bool {
	s.col.Mutate(func(records []models.MenuItem) ([]models.MenuItem, bool) {
		kept := records[:0]
		for _, item := range records {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		return kept, true
	})
	return true
}
