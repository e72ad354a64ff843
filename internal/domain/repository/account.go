package repository

import "github.com/polkiloo/orderdesk/internal/domain/model"

// AccountStore describes persistence operations for accounts.
type AccountStore interface {
	InsertAccount(account model.Account) int64
	GetAccount(id int64) (model.Account, bool)
	ListAccounts() []model.Account
	ReplaceAccount(account model.Account) bool
	RemoveAccount(id int64) bool
}
