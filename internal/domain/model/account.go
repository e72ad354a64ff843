package model

import "time"

// InvalidID is returned by creation operations when a precondition fails.
// Store-assigned identifiers are always positive.
const InvalidID int64 = -1

// Account represents a registered customer that can own orders.
type Account struct {
	ID        int64
	Name      string
	Contact   string
	Active    bool
	CreatedAt time.Time
}
