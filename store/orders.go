package store

import (
	"github.com/rs/zerolog"

	"food-marketplace-datastore/models"
	"food-marketplace-datastore/storage"
)

// OrderFilter narrows FindAll results; nil fields mean no constraint.
type OrderFilter struct {
	Customer *string
	Shop     *string
}

func (f OrderFilter) match(o models.Order) bool {
	if f.Customer != nil && o.Customer != *f.Customer {
		return false
	}
	if f.Shop != nil && o.Shop != *f.Shop {
		return false
	}
	return true
}

// Orders persists checkout orders. The store only creates and finds;
// status and payment transitions belong to collaborating subsystems.
type Orders struct {
	col *Collection[models.Order]
}

func NewOrders(h storage.Handle, log zerolog.Logger) *Orders {
	return &Orders{col: NewCollection[models.Order]("orders", h, log)}
}

// Create appends a new order with pending order and payment status.
func (s *Orders) Create(order models.Order) models.Order {
	order.Meta = NewMeta()
	order.Status = models.OrderPending
	order.PaymentStatus = models.PaymentPending
	s.col.Mutate(func(records []models.Order) ([]models.Order, bool) {
		return append(records, order), true
	})
	return order
}

// FindAll returns the orders matching every set filter field.
func (s *Orders) FindAll(f OrderFilter) []models.Order {
	var out []models.Order
	for _, order := range s.col.Load() {
		if f.match(order) {
			out = append(out, order)
		}
	}
	return out
}

// FindByID returns the order with the given id, or nil.
func (s *Orders) FindByID(id string) *models.Order {
	for _, order := range s.col.Load() {
		if order.ID == id {
			return &order
		}
	}
	return nil
}
