package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAccountUseCase(store *test.StoreStub, rule ContactRule) (*AccountUseCase, *test.RecorderStub) {
	recorder := test.NewRecorderStub()
	uc := NewAccountUseCase(store, rule, recorder, discardLogger())
	uc.now = func() time.Time { return time.Unix(1700000000, 0) }
	return uc, recorder
}

func TestAccountUseCaseCreateAccount(t *testing.T) {
	store := test.NewStoreStub()
	uc, recorder := newAccountUseCase(store, StrictContact)

	id := uc.CreateAccount("Alice", "alice@example.com")
	require.Equal(t, int64(1), id)

	account, ok := uc.GetAccount(id)
	require.True(t, ok)
	assert.Equal(t, "Alice", account.Name)
	assert.Equal(t, "alice@example.com", account.Contact)
	assert.True(t, account.Active)
	assert.Equal(t, time.Unix(1700000000, 0), account.CreatedAt)
	assert.Equal(t, 1, recorder.Accounts["create/ok"])
}

func TestAccountUseCaseCreateAccountRejects(t *testing.T) {
	store := test.NewStoreStub()
	uc, recorder := newAccountUseCase(store, StrictContact)

	assert.Equal(t, model.InvalidID, uc.CreateAccount("", "alice@example.com"))
	assert.Equal(t, model.InvalidID, uc.CreateAccount("Alice", ""))
	assert.Equal(t, model.InvalidID, uc.CreateAccount("Alice", "alice"))

	assert.Zero(t, store.Inserts, "rejected accounts must not reach the store")
	assert.Equal(t, 3, recorder.Accounts["create/rejected"])
}

func TestAccountUseCaseLenientContact(t *testing.T) {
	store := test.NewStoreStub()
	uc, _ := newAccountUseCase(store, LenientContact)

	assert.NotEqual(t, model.InvalidID, uc.CreateAccount("Bob", "+1 555 0100"))
	assert.Equal(t, model.InvalidID, uc.CreateAccount("Bob", ""))
}

func TestAccountUseCaseDeactivate(t *testing.T) {
	store := test.NewStoreStub()
	uc, recorder := newAccountUseCase(store, StrictContact)

	id := uc.CreateAccount("Alice", "alice@example.com")
	require.True(t, uc.DeactivateAccount(id))

	account, ok := uc.GetAccount(id)
	require.True(t, ok)
	assert.False(t, account.Active)
	assert.True(t, uc.AccountExists(id), "deactivated accounts still exist")

	require.True(t, uc.DeactivateAccount(id), "deactivation is idempotent")
	account, _ = uc.GetAccount(id)
	assert.False(t, account.Active)
	assert.Equal(t, 2, recorder.Accounts["deactivate/ok"], "repeated deactivation is still reported")

	assert.False(t, uc.DeactivateAccount(42))
	assert.Equal(t, 1, recorder.Accounts["deactivate/not_found"])
}

func TestAccountUseCaseListActiveAccounts(t *testing.T) {
	store := test.NewStoreStub()
	uc, _ := newAccountUseCase(store, StrictContact)

	ids := make([]int64, 0, 5)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		ids = append(ids, uc.CreateAccount(name, name+"@example.com"))
	}
	require.True(t, uc.DeactivateAccount(ids[1]))
	require.True(t, uc.DeactivateAccount(ids[3]))

	active := uc.ListActiveAccounts()
	require.Len(t, active, 3)
	assert.Equal(t, []int64{ids[0], ids[2], ids[4]}, []int64{active[0].ID, active[1].ID, active[2].ID})
	for _, account := range active {
		assert.True(t, account.Active)
	}
}

func TestAccountUseCaseAccountExists(t *testing.T) {
	store := test.NewStoreStub()
	uc, _ := newAccountUseCase(store, StrictContact)

	assert.False(t, uc.AccountExists(1))
	id := uc.CreateAccount("Alice", "alice@example.com")
	assert.True(t, uc.AccountExists(id))
	assert.False(t, uc.AccountExists(model.InvalidID))
}
