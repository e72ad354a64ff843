package errors

import "errors"

// Rejection reasons for account and order preconditions.
var (
	ErrEmptyName       = errors.New("empty name")
	ErrInvalidContact  = errors.New("invalid contact")
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountInactive = errors.New("account inactive")
	ErrEmptyItem       = errors.New("empty item description")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidStatus   = errors.New("invalid order status")
)
