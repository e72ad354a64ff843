package usecase

import (
	"cmp"
	"log/slog"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// AccountReader is the part of account management consulted before an order is placed.
type AccountReader interface {
	GetAccount(id int64) (model.Account, bool)
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderStore
	accounts AccountReader
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderStore, accounts AccountReader, recorder Recorder, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		accounts: accounts,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateOrder places a PENDING order for an existing active account.
// Returns model.InvalidID when any precondition fails.
//
// The owner check and the insert are separate steps; an account deactivated
// in between does not invalidate the order.
func (u *OrderUseCase) CreateOrder(ownerID int64, item string, amount decimal.Decimal) int64 {
	owner, found := u.accounts.GetAccount(ownerID)
	err := ValidateOwner(owner, found)
	if err == nil {
		err = ValidateOrderFields(item, amount)
	}
	if err != nil {
		u.logger.Debug("order rejected",
			slog.Int64("owner_id", ownerID),
			slog.String("reason", err.Error()),
		)
		u.recorder.OrderOperation("create", resultRejected)
		return model.InvalidID
	}

	now := u.now()
	id := u.orders.InsertOrder(model.Order{
		OwnerID:   ownerID,
		Item:      item,
		Amount:    amount,
		Status:    model.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	u.logger.Info("order created",
		slog.Int64("order_id", id),
		slog.Int64("owner_id", ownerID),
		slog.String("amount", amount.String()),
	)
	u.recorder.OrderOperation("create", resultOK)
	return id
}

// GetOrder fetches order by identifier.
func (u *OrderUseCase) GetOrder(id int64) (model.Order, bool) {
	return u.orders.GetOrder(id)
}

// ListOrdersForOwner returns all orders of the owner ordered by ID.
func (u *OrderUseCase) ListOrdersForOwner(ownerID int64) []model.Order {
	orders := u.orders.ListOrdersByOwner(ownerID)
	sortByID(orders)
	return orders
}

// SetOrderStatus overwrites order status without checking the transition.
// Returns false for unknown orders and statuses outside the lifecycle.
func (u *OrderUseCase) SetOrderStatus(id int64, status model.OrderStatus) bool {
	if !status.Valid() {
		u.logger.Debug("status change rejected",
			slog.Int64("order_id", id),
			slog.String("reason", domainErrors.ErrInvalidStatus.Error()),
		)
		u.recorder.OrderOperation("set_status", resultRejected)
		return false
	}

	applied := u.orders.UpdateOrder(id, func(o *model.Order) bool {
		o.Status = status
		o.UpdatedAt = u.now()
		return true
	})
	if !applied {
		u.recorder.OrderOperation("set_status", resultNotFound)
		return false
	}
	u.recorder.OrderOperation("set_status", resultOK)
	u.recorder.OrderTransition(status)
	return true
}

// CancelOrder moves PENDING or CONFIRMED order to CANCELLED.
// Shipped and delivered orders cannot be cancelled; an already cancelled
// order stays cancelled and the call succeeds.
func (u *OrderUseCase) CancelOrder(id int64) bool {
	return u.Cancel(id) == model.CancelApplied
}

// Cancel behaves like CancelOrder and reports why a cancellation failed.
// The lookup and the status change happen in one store step.
func (u *OrderUseCase) Cancel(id int64) model.CancelOutcome {
	var found, alreadyCancelled bool
	applied := u.orders.UpdateOrder(id, func(o *model.Order) bool {
		found = true
		if o.Status == model.OrderStatusCancelled {
			alreadyCancelled = true
			return false
		}
		if !o.Status.Cancellable() {
			return false
		}
		o.Status = model.OrderStatusCancelled
		o.UpdatedAt = u.now()
		return true
	})

	switch {
	case applied:
		u.logger.Info("order cancelled", slog.Int64("order_id", id))
		u.recorder.OrderOperation("cancel", resultOK)
		u.recorder.OrderTransition(model.OrderStatusCancelled)
		return model.CancelApplied
	case alreadyCancelled:
		u.recorder.OrderOperation("cancel", resultOK)
		return model.CancelApplied
	case !found:
		u.recorder.OrderOperation("cancel", resultNotFound)
		return model.CancelNotFound
	default:
		u.recorder.OrderOperation("cancel", resultRejected)
		return model.CancelNotAllowed
	}
}

// TotalAmount sums amounts of the owner's orders that are not cancelled.
// Unknown owners have a zero total.
func (u *OrderUseCase) TotalAmount(ownerID int64) decimal.Decimal {
	total := decimal.Zero
	for _, order := range u.orders.ListOrdersByOwner(ownerID) {
		if order.Status != model.OrderStatusCancelled {
			total = total.Add(order.Amount)
		}
	}
	return total
}

// OrdersForFulfillment returns orders that still have a fulfillment step ahead,
// oldest first. A non-positive limit returns all of them.
func (u *OrderUseCase) OrdersForFulfillment(limit int) []model.Order {
	var pending []model.Order
	for _, order := range u.orders.ListOrders() {
		if _, ok := order.Status.Next(); ok {
			pending = append(pending, order)
		}
	}
	sortByID(pending)
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}

// AdvanceOrder moves the order one step along PENDING, CONFIRMED, SHIPPED, DELIVERED.
func (u *OrderUseCase) AdvanceOrder(id int64) (model.OrderStatus, bool) {
	var next model.OrderStatus
	applied := u.orders.UpdateOrder(id, func(o *model.Order) bool {
		n, ok := o.Status.Next()
		if !ok {
			return false
		}
		o.Status = n
		o.UpdatedAt = u.now()
		next = n
		return true
	})
	if !applied {
		return "", false
	}
	u.recorder.OrderOperation("advance", resultOK)
	u.recorder.OrderTransition(next)
	return next, true
}

func sortByID(orders []model.Order) {
	slices.SortFunc(orders, func(a, b model.Order) int { return cmp.Compare(a.ID, b.ID) })
}
