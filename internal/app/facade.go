package app

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

// OrderDeskFacade exposes account and order management to transports and workers.
type OrderDeskFacade struct {
	accounts *usecase.AccountUseCase
	orders   *usecase.OrderUseCase
	store    repository.Store
	logger   *slog.Logger
}

func NewOrderDeskFacade(accounts *usecase.AccountUseCase, orders *usecase.OrderUseCase, store repository.Store, logger *slog.Logger) *OrderDeskFacade {
	return &OrderDeskFacade{accounts: accounts, orders: orders, store: store, logger: logger}
}

func (f *OrderDeskFacade) CreateAccount(name, contact string) int64 {
	return f.accounts.CreateAccount(name, contact)
}

func (f *OrderDeskFacade) Account(id int64) (model.Account, bool) {
	return f.accounts.GetAccount(id)
}

func (f *OrderDeskFacade) ActiveAccounts() []model.Account {
	return f.accounts.ListActiveAccounts()
}

func (f *OrderDeskFacade) DeactivateAccount(id int64) bool {
	return f.accounts.DeactivateAccount(id)
}

func (f *OrderDeskFacade) AccountExists(id int64) bool {
	return f.accounts.AccountExists(id)
}

func (f *OrderDeskFacade) CreateOrder(ownerID int64, item string, amount decimal.Decimal) int64 {
	return f.orders.CreateOrder(ownerID, item, amount)
}

func (f *OrderDeskFacade) Order(id int64) (model.Order, bool) {
	return f.orders.GetOrder(id)
}

func (f *OrderDeskFacade) OrdersForOwner(ownerID int64) []model.Order {
	return f.orders.ListOrdersForOwner(ownerID)
}

func (f *OrderDeskFacade) SetOrderStatus(id int64, status model.OrderStatus) bool {
	return f.orders.SetOrderStatus(id, status)
}

func (f *OrderDeskFacade) CancelOrder(id int64) bool {
	return f.orders.CancelOrder(id)
}

// CancelOrderOutcome cancels the order and reports the reason of a refusal.
func (f *OrderDeskFacade) CancelOrderOutcome(id int64) model.CancelOutcome {
	return f.orders.Cancel(id)
}

func (f *OrderDeskFacade) TotalAmount(ownerID int64) decimal.Decimal {
	return f.orders.TotalAmount(ownerID)
}

func (f *OrderDeskFacade) OrdersForFulfillment(limit int) []model.Order {
	return f.orders.OrdersForFulfillment(limit)
}

func (f *OrderDeskFacade) AdvanceOrder(id int64) (model.OrderStatus, bool) {
	return f.orders.AdvanceOrder(id)
}

// Reset drops every account and order and restarts identifier sequences.
func (f *OrderDeskFacade) Reset() {
	stats := f.store.Stats()
	f.store.Clear()
	f.logger.Warn("store cleared",
		slog.Int("accounts", stats.Accounts),
		slog.Int("orders", stats.Orders),
	)
}
