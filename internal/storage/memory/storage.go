package memory

import (
	"sync"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

const firstID int64 = 1

// Storage keeps accounts and orders in process memory.
// A single lock guards both collections and both ID sequences, so an
// identifier is reserved in the same critical section that publishes the record.
type Storage struct {
	mu sync.RWMutex

	accounts      map[int64]model.Account
	orders        map[int64]model.Order
	nextAccountID int64
	nextOrderID   int64
}

var _ repository.Store = (*Storage)(nil)

// New creates empty storage.
func New() *Storage {
	return &Storage{
		accounts:      make(map[int64]model.Account),
		orders:        make(map[int64]model.Order),
		nextAccountID: firstID,
		nextOrderID:   firstID,
	}
}

// --- AccountStore implementation ---

func (s *Storage) InsertAccount(account model.Account) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	account.ID = s.nextAccountID
	s.nextAccountID++
	s.accounts[account.ID] = account
	return account.ID
}

func (s *Storage) GetAccount(id int64) (model.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	return account, ok
}

func (s *Storage) ListAccounts() []model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		result = append(result, account)
	}
	return result
}

func (s *Storage) ReplaceAccount(account model.Account) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.ID]; !ok {
		return false
	}
	s.accounts[account.ID] = account
	return true
}

func (s *Storage) RemoveAccount(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[id]; !ok {
		return false
	}
	delete(s.accounts, id)
	return true
}

// --- OrderStore implementation ---

func (s *Storage) InsertOrder(order model.Order) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextOrderID
	s.nextOrderID++
	s.orders[order.ID] = order
	return order.ID
}

func (s *Storage) GetOrder(id int64) (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	return order, ok
}

func (s *Storage) ListOrdersByOwner(ownerID int64) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []model.Order
	for _, order := range s.orders {
		if order.OwnerID == ownerID {
			result = append(result, order)
		}
	}
	return result
}

func (s *Storage) ListOrders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Order, 0, len(s.orders))
	for _, order := range s.orders {
		result = append(result, order)
	}
	return result
}

func (s *Storage) ReplaceOrder(order model.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; !ok {
		return false
	}
	s.orders[order.ID] = order
	return true
}

func (s *Storage) UpdateOrder(id int64, mutate func(*model.Order) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return false
	}
	if !mutate(&order) {
		return false
	}
	order.ID = id
	s.orders[id] = order
	return true
}

func (s *Storage) RemoveOrder(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return false
	}
	delete(s.orders, id)
	return true
}

// Stats returns current record counts.
func (s *Storage) Stats() repository.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return repository.Stats{Accounts: len(s.accounts), Orders: len(s.orders)}
}

// Clear drops all records and restarts both ID sequences.
func (s *Storage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = make(map[int64]model.Account)
	s.orders = make(map[int64]model.Order)
	s.nextAccountID = firstID
	s.nextOrderID = firstID
}
