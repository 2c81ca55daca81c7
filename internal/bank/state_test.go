package bank

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbank-dev/pocketbank/internal/fixtures"
	"github.com/pocketbank-dev/pocketbank/internal/model"
)

var testNow = time.Date(2026, 2, 9, 14, 7, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestState(t *testing.T) *State {
	t.Helper()
	return New(fixtures.Default(), Options{Now: func() time.Time { return testNow }})
}

func TestNew_SeedsFromFixtures(t *testing.T) {
	s := newTestState(t)

	assert.Len(t, s.Accounts(), 4)
	assert.Len(t, s.Activity(), 3)
	assert.False(t, s.CardFrozen())
	assert.Equal(t, 4, s.nextSeq, "next event follows the seeded evt-3")

	acct, ok := s.Account("acct-savings")
	require.True(t, ok)
	assert.Equal(t, "High-Yield Savings", acct.Name)

	_, ok = s.Account("acct-missing")
	assert.False(t, ok)
}

func TestNew_Defaults(t *testing.T) {
	s := New(fixtures.Default(), Options{})
	assert.True(t, s.hold.Equal(DefaultPendingHold))
	assert.NotNil(t, s.now)
	assert.NotNil(t, s.logger)
}

func TestNew_ZeroHoldIsKept(t *testing.T) {
	zero := decimal.Zero
	s := New(fixtures.Default(), Options{PendingHold: &zero, Now: func() time.Time { return testNow }})

	_, ok := s.Transfer(TransferIntent{SourceID: "acct-checking", PayeeID: "payee-1", Amount: "120.00"})
	require.True(t, ok)

	acct, _ := s.Account("acct-checking")
	assert.Equal(t, "Available $8,332.18", acct.Subtitle)
}

func TestNew_CustomHold(t *testing.T) {
	hold := dec("32.18")
	s := New(fixtures.Default(), Options{PendingHold: &hold})

	_, ok := s.Transfer(TransferIntent{SourceID: "acct-checking", PayeeID: "payee-1", Amount: "120.00"})
	require.True(t, ok)

	acct, _ := s.Account("acct-checking")
	assert.Equal(t, "Available $8,300.00", acct.Subtitle)
}

func TestReadsReturnSnapshots(t *testing.T) {
	s := newTestState(t)

	accts := s.Accounts()
	accts[0].Balance = dec("0")
	got, _ := s.Account(accts[0].ID)
	assert.True(t, got.Balance.Equal(dec("8452.18")))

	events := s.Activity()
	events[0] = model.ActivityEvent{}
	assert.Equal(t, "evt-1", s.Activity()[0].ID)
}

func TestStateDoesNotMutateFixtures(t *testing.T) {
	store := fixtures.Default()
	s := New(store, Options{Now: func() time.Time { return testNow }})

	_, ok := s.Transfer(TransferIntent{SourceID: "acct-checking", PayeeID: "payee-1", Amount: "10"})
	require.True(t, ok)

	assert.True(t, store.Accounts()[0].Balance.Equal(dec("8452.18")))
	assert.Len(t, store.Activity(), 3)
}
