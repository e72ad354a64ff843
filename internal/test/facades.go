package test

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// AccountFacadeStub provides controllable behaviour for account endpoints.
type AccountFacadeStub struct {
	CreateFn     func(string, string) int64
	AccountFn    func(int64) (model.Account, bool)
	ActiveFn     func() []model.Account
	DeactivateFn func(int64) bool
	OrdersFn     func(int64) []model.Order
	TotalFn      func(int64) decimal.Decimal
}

// CreateAccount delegates to provided function or returns id 1.
func (s AccountFacadeStub) CreateAccount(name, contact string) int64 {
	if s.CreateFn != nil {
		return s.CreateFn(name, contact)
	}
	return 1
}

// Account returns configured account or an active default one.
func (s AccountFacadeStub) Account(id int64) (model.Account, bool) {
	if s.AccountFn != nil {
		return s.AccountFn(id)
	}
	return model.Account{ID: id, Name: "user", Contact: "user@example.com", Active: true, CreatedAt: time.Unix(0, 0)}, true
}

// ActiveAccounts returns predefined accounts.
func (s AccountFacadeStub) ActiveAccounts() []model.Account {
	if s.ActiveFn != nil {
		return s.ActiveFn()
	}
	return []model.Account{{ID: 1, Name: "user", Contact: "user@example.com", Active: true}}
}

// DeactivateAccount delegates to provided function or succeeds.
func (s AccountFacadeStub) DeactivateAccount(id int64) bool {
	if s.DeactivateFn != nil {
		return s.DeactivateFn(id)
	}
	return true
}

// OrdersForOwner returns predefined orders for given owner.
func (s AccountFacadeStub) OrdersForOwner(ownerID int64) []model.Order {
	if s.OrdersFn != nil {
		return s.OrdersFn(ownerID)
	}
	return []model.Order{{ID: 1, OwnerID: ownerID, Item: "item", Amount: decimal.NewFromInt(1), Status: model.OrderStatusPending}}
}

// TotalAmount returns configured total or zero.
func (s AccountFacadeStub) TotalAmount(ownerID int64) decimal.Decimal {
	if s.TotalFn != nil {
		return s.TotalFn(ownerID)
	}
	return decimal.Zero
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn func(int64, string, decimal.Decimal) int64
	OrderFn  func(int64) (model.Order, bool)
	StatusFn func(int64, model.OrderStatus) bool
	CancelFn func(int64) model.CancelOutcome
}

// CreateOrder delegates to provided function or returns id 1.
func (s OrderFacadeStub) CreateOrder(ownerID int64, item string, amount decimal.Decimal) int64 {
	if s.CreateFn != nil {
		return s.CreateFn(ownerID, item, amount)
	}
	return 1
}

// Order returns configured order or a pending default one.
func (s OrderFacadeStub) Order(id int64) (model.Order, bool) {
	if s.OrderFn != nil {
		return s.OrderFn(id)
	}
	return model.Order{ID: id, OwnerID: 1, Item: "item", Amount: decimal.NewFromInt(1), Status: model.OrderStatusPending}, true
}

// SetOrderStatus delegates to provided function or succeeds.
func (s OrderFacadeStub) SetOrderStatus(id int64, status model.OrderStatus) bool {
	if s.StatusFn != nil {
		return s.StatusFn(id, status)
	}
	return true
}

// CancelOrderOutcome delegates to provided function or succeeds.
func (s OrderFacadeStub) CancelOrderOutcome(id int64) model.CancelOutcome {
	if s.CancelFn != nil {
		return s.CancelFn(id)
	}
	return model.CancelApplied
}

// AdminFacadeStub counts reset requests.
type AdminFacadeStub struct {
	Resets *int32
}

// Reset records invocation when counter is configured.
func (s AdminFacadeStub) Reset() {
	if s.Resets != nil {
		atomic.AddInt32(s.Resets, 1)
	}
}

// OrderDeskFacadeStub aggregates facade dependencies for HTTP layer tests.
type OrderDeskFacadeStub struct {
	AccountFacadeStub
	OrderFacadeStub
	AdminFacadeStub
}

// WorkerFacadeStub mimics worker interactions with the order desk facade.
type WorkerFacadeStub struct {
	Orders          [][]model.Order
	OrdersFn        func(int) []model.Order
	AdvanceFn       func(int64) (model.OrderStatus, bool)
	Advances        []int64
	mu              sync.Mutex
	ordersCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// OrdersForFulfillment returns batches from configured queue.
func (s *WorkerFacadeStub) OrdersForFulfillment(limit int) []model.Order {
	if s.OrdersFn != nil {
		return s.OrdersFn(limit)
	}
	call := atomic.AddInt32(&s.ordersCallCount, 1)
	if int(call) <= len(s.Orders) {
		return s.Orders[call-1]
	}
	time.Sleep(10 * time.Millisecond)
	return nil
}

// AdvanceOrder records every attempt and reports configured outcome.
func (s *WorkerFacadeStub) AdvanceOrder(id int64) (model.OrderStatus, bool) {
	s.mu.Lock()
	s.Advances = append(s.Advances, id)
	s.mu.Unlock()
	if s.AdvanceFn != nil {
		return s.AdvanceFn(id)
	}
	return model.OrderStatusConfirmed, true
}

// KeyVerifierStub accepts a single key.
type KeyVerifierStub struct {
	Key string
}

// Verify compares candidate with the configured key.
func (s KeyVerifierStub) Verify(candidate string) bool {
	return s.Key != "" && candidate == s.Key
}

// HTTPObserverStub collects observed request paths.
type HTTPObserverStub struct {
	mu       sync.Mutex
	Observed []string
}

// ObserveHTTPRequest records request route and status.
func (s *HTTPObserverStub) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Observed = append(s.Observed, method+" "+path)
}
