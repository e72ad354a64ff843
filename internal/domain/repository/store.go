package repository

// Stats reports the number of records currently held by a store.
type Stats struct {
	Accounts int
	Orders   int
}

// Store is the single source of truth shared by account and order use cases.
// Insert operations ignore the incoming ID and assign the next one.
// Lookups report absence through the boolean result.
type Store interface {
	AccountStore
	OrderStore
	Stats() Stats
	// Clear drops every record and restarts ID sequences.
	Clear()
}
