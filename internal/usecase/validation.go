package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// ContactRule reports whether a contact value is acceptable for a new account.
type ContactRule func(contact string) bool

// StrictContact requires a local part separator, as in an e-mail address.
func StrictContact(contact string) bool {
	return strings.Contains(contact, "@")
}

// LenientContact accepts any non-empty contact.
func LenientContact(contact string) bool {
	return contact != ""
}

// ValidateAccount checks account creation preconditions in order.
func ValidateAccount(name, contact string, rule ContactRule) error {
	if name == "" {
		return domainErrors.ErrEmptyName
	}
	if contact == "" || !rule(contact) {
		return domainErrors.ErrInvalidContact
	}
	return nil
}

// ValidateOrderFields checks item description and amount of a new order.
func ValidateOrderFields(item string, amount decimal.Decimal) error {
	if item == "" {
		return domainErrors.ErrEmptyItem
	}
	if !amount.IsPositive() {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}

// ValidateOwner checks that an order owner exists and is active.
func ValidateOwner(owner model.Account, found bool) error {
	if !found {
		return domainErrors.ErrAccountNotFound
	}
	if !owner.Active {
		return domainErrors.ErrAccountInactive
	}
	return nil
}
