package model

import "time"

// OrderStatus is the fixed set of states an order moves through.
// Orders are owned by the peer order service; this service only reads them.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is the peer service's order record. UserID is a foreign key by
// value only; there is no join capability against the user store.
type Order struct {
	ID           int64       `json:"id"`
	UserID       int64       `json:"userId"`
	Status       OrderStatus `json:"status"`
	CreationDate time.Time   `json:"creationDate"`
	Total        float64     `json:"total"`
}
