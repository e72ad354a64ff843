package usecase

import (
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

func TestContactRules(t *testing.T) {
	cases := []struct {
		contact string
		strict  bool
		lenient bool
	}{
		{contact: "alice@example.com", strict: true, lenient: true},
		{contact: "@", strict: true, lenient: true},
		{contact: "alice", strict: false, lenient: true},
		{contact: "", strict: false, lenient: false},
	}
	for _, tc := range cases {
		if got := StrictContact(tc.contact); got != tc.strict {
			t.Fatalf("strict(%q) = %v, want %v", tc.contact, got, tc.strict)
		}
		if got := LenientContact(tc.contact); got != tc.lenient {
			t.Fatalf("lenient(%q) = %v, want %v", tc.contact, got, tc.lenient)
		}
	}
}

func TestValidateAccount(t *testing.T) {
	if err := ValidateAccount("", "a@b", StrictContact); err != domainErrors.ErrEmptyName {
		t.Fatalf("expected empty name error, got %v", err)
	}
	if err := ValidateAccount("", "", StrictContact); err != domainErrors.ErrEmptyName {
		t.Fatalf("expected name to be checked first, got %v", err)
	}
	if err := ValidateAccount("Alice", "", LenientContact); err != domainErrors.ErrInvalidContact {
		t.Fatalf("expected invalid contact error, got %v", err)
	}
	if err := ValidateAccount("Alice", "alice", StrictContact); err != domainErrors.ErrInvalidContact {
		t.Fatalf("expected invalid contact error, got %v", err)
	}
	if err := ValidateAccount("Alice", "alice@example.com", StrictContact); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateOrderFields(t *testing.T) {
	cases := []struct {
		name   string
		item   string
		amount decimal.Decimal
		want   error
	}{
		{name: "ok", item: "Laptop", amount: decimal.NewFromInt(1)},
		{name: "empty item", item: "", amount: decimal.NewFromInt(1), want: domainErrors.ErrEmptyItem},
		{name: "zero amount", item: "Laptop", amount: decimal.Zero, want: domainErrors.ErrInvalidAmount},
		{name: "negative amount", item: "Laptop", amount: decimal.NewFromFloat(-0.01), want: domainErrors.ErrInvalidAmount},
		{name: "item checked first", item: "", amount: decimal.Zero, want: domainErrors.ErrEmptyItem},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateOrderFields(tc.item, tc.amount); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateOwner(t *testing.T) {
	if err := ValidateOwner(model.Account{}, false); err != domainErrors.ErrAccountNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
	if err := ValidateOwner(model.Account{ID: 1}, true); err != domainErrors.ErrAccountInactive {
		t.Fatalf("expected inactive error, got %v", err)
	}
	if err := ValidateOwner(model.Account{ID: 1, Active: true}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
