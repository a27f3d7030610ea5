package store

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"food-marketplace-datastore/models"
	"food-marketplace-datastore/storage"
)

// ReviewFilter narrows FindAll results; nil fields mean no constraint.
type ReviewFilter struct {
	Shop *string
}

func (f ReviewFilter) match(r models.Review) bool {
	return f.Shop == nil || r.Shop == *f.Shop
}

// Reviews persists customer reviews. Two divergent paths coexist for legacy
// reasons: a generic reviews collection using the shared id generator, and a
// separately keyed menuItemReviews collection with its own timestamp id
// format. See DESIGN.md before unifying them.
type Reviews struct {
	col     *Collection[models.Review]
	itemCol *Collection[models.MenuItemReview]
}

func NewReviews(h storage.Handle, log zerolog.Logger) *Reviews {
	return &Reviews{
		col:     NewCollection[models.Review]("reviews", h, log),
		itemCol: NewCollection[models.MenuItemReview]("menuItemReviews", h, log),
	}
}

// Create appends a shop review.
func (s *Reviews) Create(r models.Review) models.Review {
	r.Meta = NewMeta()
	s.col.Mutate(func(records []models.Review) ([]models.Review, bool) {
		return append(records, r), true
	})
	return r
}

// FindAll returns the shop reviews matching every set filter field.
func (s *Reviews) FindAll(f ReviewFilter) []models.Review {
	var out []models.Review
	for _, r := range s.col.Load() {
		if f.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// CreateMenuItemReview appends a menu item review under the legacy id
// scheme ("menuItemReview" + unix milliseconds).
func (s *Reviews) CreateMenuItemReview(r models.MenuItemReview) models.MenuItemReview {
	now := time.Now().UTC()
	r.Meta = models.Meta{
		ID:        "menuItemReview" + strconv.FormatInt(now.UnixMilli(), 10),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.itemCol.Mutate(func(records []models.MenuItemReview) ([]models.MenuItemReview, bool) {
		return append(records, r), true
	})
	return r
}

// FindMenuItemReviews returns the reviews for one menu item.
func (s *Reviews) FindMenuItemReviews(menuItem string) []models.MenuItemReview {
	var out []models.MenuItemReview
	for _, r := range s.itemCol.Load() {
		if r.MenuItem == menuItem {
			out = append(out, r)
		}
	}
	return out
}
