package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses lists every known status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus converts raw value into a known status, ignoring case.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	return status, status.Valid()
}

// Valid reports whether status is a member of the lifecycle.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Cancellable reports whether an order in this status may be moved to CANCELLED.
// Cancelling an already cancelled order is a no-op that still succeeds.
func (s OrderStatus) Cancellable() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCancelled:
		return true
	}
	return false
}

// Next returns the following fulfillment step.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusPending:
		return OrderStatusConfirmed, true
	case OrderStatusConfirmed:
		return OrderStatusShipped, true
	case OrderStatusShipped:
		return OrderStatusDelivered, true
	}
	return "", false
}

// Order describes a purchase placed by an account.
type Order struct {
	ID        int64
	OwnerID   int64
	Item      string
	Amount    decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CancelOutcome reports how a cancellation request ended.
type CancelOutcome int

const (
	// CancelApplied means the order is CANCELLED after the call.
	CancelApplied CancelOutcome = iota
	// CancelNotFound means no order has the identifier.
	CancelNotFound
	// CancelNotAllowed means the order is already shipped or delivered.
	CancelNotAllowed
)
