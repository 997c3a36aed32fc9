package models

import (
	"fmt"
	"time"
)

// OrderStatus is the processing state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipping  OrderStatus = "Shipping"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// OrderStatuses returns every valid status in display order. Aggregation
// iterates this so every status shows up in counts even at zero.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPending, OrderStatusShipping, OrderStatusCompleted, OrderStatusCancelled}
}

// IsValid reports whether s is one of the known statuses
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipping, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderDateFormat is the layout for Order.CreatedAt (YYYY-MM-DD)
const OrderDateFormat = "2006-01-02"

// Order represents a customer order in the queue
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName" validate:"required"`
	Phone        string      `json:"phone" validate:"required,phone"`
	Address      string      `json:"address" validate:"required"`
	TotalAmount  float64     `json:"totalAmount" validate:"gte=0"`
	Status       OrderStatus `json:"status" validate:"required,oneof=Pending Shipping Completed Cancelled"`
	CreatedAt    string      `json:"createdAt" validate:"required"`
}

// NewOrderID derives an order identifier from the creation time,
// e.g. "DH1700000000000". Two creations inside the same millisecond would
// collide; the store treats that as an invariant violation and rejects it.
func NewOrderID(t time.Time) string {
	return fmt.Sprintf("DH%d", t.UnixMilli())
}
