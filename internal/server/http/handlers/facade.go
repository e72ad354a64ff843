package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// AccountFacade describes account capabilities required by handlers.
type AccountFacade interface {
	CreateAccount(name, contact string) int64
	Account(id int64) (model.Account, bool)
	ActiveAccounts() []model.Account
	DeactivateAccount(id int64) bool
	OrdersForOwner(ownerID int64) []model.Order
	TotalAmount(ownerID int64) decimal.Decimal
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ownerID int64, item string, amount decimal.Decimal) int64
	Order(id int64) (model.Order, bool)
	SetOrderStatus(id int64, status model.OrderStatus) bool
	CancelOrderOutcome(id int64) model.CancelOutcome
}

// AdminFacade provides maintenance operations.
type AdminFacade interface {
	Reset()
}

// OrderDeskFacade aggregates the full set of operations used across handlers.
type OrderDeskFacade interface {
	AccountFacade
	OrderFacade
	AdminFacade
}
