package usecase

import (
	"cmp"
	"log/slog"
	"slices"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// AccountUseCase validates, creates and deactivates accounts.
// It keeps no state besides the store reference.
type AccountUseCase struct {
	accounts repository.AccountStore
	contact  ContactRule
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(accounts repository.AccountStore, contact ContactRule, recorder Recorder, logger *slog.Logger) *AccountUseCase {
	return &AccountUseCase{
		accounts: accounts,
		contact:  contact,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateAccount registers an active account and returns its ID,
// or model.InvalidID when name or contact are rejected.
func (u *AccountUseCase) CreateAccount(name, contact string) int64 {
	if err := ValidateAccount(name, contact, u.contact); err != nil {
		u.logger.Debug("account rejected", slog.String("reason", err.Error()))
		u.recorder.AccountOperation("create", resultRejected)
		return model.InvalidID
	}

	id := u.accounts.InsertAccount(model.Account{
		Name:      name,
		Contact:   contact,
		Active:    true,
		CreatedAt: u.now(),
	})
	u.logger.Info("account created", slog.Int64("account_id", id))
	u.recorder.AccountOperation("create", resultOK)
	return id
}

// GetAccount fetches account by identifier.
func (u *AccountUseCase) GetAccount(id int64) (model.Account, bool) {
	return u.accounts.GetAccount(id)
}

// ListActiveAccounts returns active accounts ordered by ID.
func (u *AccountUseCase) ListActiveAccounts() []model.Account {
	all := u.accounts.ListAccounts()
	active := make([]model.Account, 0, len(all))
	for _, account := range all {
		if account.Active {
			active = append(active, account)
		}
	}
	slices.SortFunc(active, func(a, b model.Account) int { return cmp.Compare(a.ID, b.ID) })
	return active
}

// DeactivateAccount marks account inactive. Deactivating an inactive
// account succeeds without touching the store and is counted as ok.
func (u *AccountUseCase) DeactivateAccount(id int64) bool {
	account, ok := u.accounts.GetAccount(id)
	if !ok {
		u.recorder.AccountOperation("deactivate", resultNotFound)
		return false
	}
	if !account.Active {
		u.recorder.AccountOperation("deactivate", resultOK)
		return true
	}

	account.Active = false
	if !u.accounts.ReplaceAccount(account) {
		u.recorder.AccountOperation("deactivate", resultNotFound)
		return false
	}
	u.logger.Info("account deactivated", slog.Int64("account_id", id))
	u.recorder.AccountOperation("deactivate", resultOK)
	return true
}

// AccountExists reports whether GetAccount would find the account.
func (u *AccountUseCase) AccountExists(id int64) bool {
	_, ok := u.GetAccount(id)
	return ok
}
