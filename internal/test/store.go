package test

import (
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// StoreStub keeps accounts and orders in plain maps for single-goroutine tests.
// It is not safe for concurrent use.
type StoreStub struct {
	Accounts    map[int64]model.Account
	Orders      map[int64]model.Order
	NextAccount int64
	NextOrder   int64
	Inserts     int
}

// NewStoreStub constructs stub store with initialized maps.
func NewStoreStub() *StoreStub {
	return &StoreStub{
		Accounts:    make(map[int64]model.Account),
		Orders:      make(map[int64]model.Order),
		NextAccount: 1,
		NextOrder:   1,
	}
}

// InsertAccount stores account under the next identifier.
func (s *StoreStub) InsertAccount(account model.Account) int64 {
	s.Inserts++
	account.ID = s.NextAccount
	s.NextAccount++
	s.Accounts[account.ID] = account
	return account.ID
}

// GetAccount returns stored account.
func (s *StoreStub) GetAccount(id int64) (model.Account, bool) {
	account, ok := s.Accounts[id]
	return account, ok
}

// ListAccounts returns stored accounts.
func (s *StoreStub) ListAccounts() []model.Account {
	out := make([]model.Account, 0, len(s.Accounts))
	for _, account := range s.Accounts {
		out = append(out, account)
	}
	return out
}

// ReplaceAccount overwrites existing account.
func (s *StoreStub) ReplaceAccount(account model.Account) bool {
	if _, ok := s.Accounts[account.ID]; !ok {
		return false
	}
	s.Accounts[account.ID] = account
	return true
}

// RemoveAccount deletes account.
func (s *StoreStub) RemoveAccount(id int64) bool {
	if _, ok := s.Accounts[id]; !ok {
		return false
	}
	delete(s.Accounts, id)
	return true
}

// InsertOrder stores order under the next identifier.
func (s *StoreStub) InsertOrder(order model.Order) int64 {
	s.Inserts++
	order.ID = s.NextOrder
	s.NextOrder++
	s.Orders[order.ID] = order
	return order.ID
}

// GetOrder returns stored order.
func (s *StoreStub) GetOrder(id int64) (model.Order, bool) {
	order, ok := s.Orders[id]
	return order, ok
}

// ListOrdersByOwner returns orders of a single owner.
func (s *StoreStub) ListOrdersByOwner(ownerID int64) []model.Order {
	var out []model.Order
	for _, order := range s.Orders {
		if order.OwnerID == ownerID {
			out = append(out, order)
		}
	}
	return out
}

// ListOrders returns stored orders.
func (s *StoreStub) ListOrders() []model.Order {
	out := make([]model.Order, 0, len(s.Orders))
	for _, order := range s.Orders {
		out = append(out, order)
	}
	return out
}

// ReplaceOrder overwrites existing order.
func (s *StoreStub) ReplaceOrder(order model.Order) bool {
	if _, ok := s.Orders[order.ID]; !ok {
		return false
	}
	s.Orders[order.ID] = order
	return true
}

// UpdateOrder applies mutate to a copy and stores it when mutate returns true.
func (s *StoreStub) UpdateOrder(id int64, mutate func(*model.Order) bool) bool {
	order, ok := s.Orders[id]
	if !ok {
		return false
	}
	if !mutate(&order) {
		return false
	}
	order.ID = id
	s.Orders[id] = order
	return true
}

// RemoveOrder deletes order.
func (s *StoreStub) RemoveOrder(id int64) bool {
	if _, ok := s.Orders[id]; !ok {
		return false
	}
	delete(s.Orders, id)
	return true
}

// Stats reports record counts.
func (s *StoreStub) Stats() repository.Stats {
	return repository.Stats{Accounts: len(s.Accounts), Orders: len(s.Orders)}
}

// Clear drops all records and restarts identifiers.
func (s *StoreStub) Clear() {
	s.Accounts = make(map[int64]model.Account)
	s.Orders = make(map[int64]model.Order)
	s.NextAccount = 1
	s.NextOrder = 1
}

// RecorderStub counts recorded outcomes keyed by "operation/result".
type RecorderStub struct {
	Accounts    map[string]int
	Orders      map[string]int
	Transitions map[model.OrderStatus]int
}

// NewRecorderStub constructs recorder with initialized maps.
func NewRecorderStub() *RecorderStub {
	return &RecorderStub{
		Accounts:    make(map[string]int),
		Orders:      make(map[string]int),
		Transitions: make(map[model.OrderStatus]int),
	}
}

// AccountOperation records account outcome.
func (r *RecorderStub) AccountOperation(operation, result string) {
	r.Accounts[operation+"/"+result]++
}

// OrderOperation records order outcome.
func (r *RecorderStub) OrderOperation(operation, result string) {
	r.Orders[operation+"/"+result]++
}

// OrderTransition records status change.
func (r *RecorderStub) OrderTransition(status model.OrderStatus) {
	r.Transitions[status]++
}

var _ repository.Store = (*StoreStub)(nil)
