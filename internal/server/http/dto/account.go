package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest describes account registration payload.
type CreateAccountRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// CreatedResponse carries identifier of a newly created record.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// AccountResponse describes a single account.
type AccountResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// TotalResponse reports the sum of an owner's non-cancelled orders.
type TotalResponse struct {
	OwnerID int64           `json:"owner_id"`
	Total   decimal.Decimal `json:"total"`
}
