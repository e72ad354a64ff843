package repository

import "github.com/polkiloo/orderdesk/internal/domain/model"

// OrderStore describes persistence operations with orders.
type OrderStore interface {
	InsertOrder(order model.Order) int64
	GetOrder(id int64) (model.Order, bool)
	ListOrdersByOwner(ownerID int64) []model.Order
	ListOrders() []model.Order
	ReplaceOrder(order model.Order) bool
	// UpdateOrder applies mutate to a copy of the stored order and persists it
	// only when mutate returns true. The whole step holds the store lock.
	UpdateOrder(id int64, mutate func(*model.Order) bool) bool
	RemoveOrder(id int64) bool
}
