package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest describes order placement payload.
// Amount accepts both JSON numbers and quoted decimals.
type CreateOrderRequest struct {
	OwnerID int64           `json:"owner_id"`
	Item    string          `json:"item"`
	Amount  decimal.Decimal `json:"amount"`
}

// StatusRequest describes status overwrite payload.
type StatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse describes a single order.
type OrderResponse struct {
	ID        int64           `json:"id"`
	OwnerID   int64           `json:"owner_id"`
	Item      string          `json:"item"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
