package models

// OrderStatus represents the lifecycle states of an order. Transitions are
// driven by collaborating subsystems, not enforced by the store.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// OrderLine snapshots one menu item at the moment of checkout.
type OrderLine struct {
	MenuItem string  `json:"menuItem"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	Meta
	Customer        string        `json:"customer"`
	Shop            string        `json:"shop"`
	Items           []OrderLine   `json:"items,omitempty"`
	Total           float64       `json:"total"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
}
