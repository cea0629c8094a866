package accounting

import (
	"testing"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/idgen"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestLedger() *MemoryLedger {
	return NewMemoryLedger(idgen.NewSequence(1000), 1000)
}

func TestMemoryLedger_Register(t *testing.T) {
	t.Parallel()

	l := newTestLedger()

	acct, err := l.Register("alice", "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "ID1000", acct.UserID)
	require.True(t, acct.Balance.Equal(decimal.NewFromInt(1000)))

	// usernames are unique
	_, err = l.Register("alice", "other@example.com")
	require.ErrorIs(t, err, auctionerrors.ErrUsernameTaken)

	second, err := l.Register("bob", "bob@example.com")
	require.NoError(t, err)
	require.Equal(t, "ID1001", second.UserID)
}

func TestMemoryLedger_Deposit(t *testing.T) {
	t.Parallel()

	l := newTestLedger()
	acct, err := l.Register("alice", "alice@example.com")
	require.NoError(t, err)

	updated, err := l.Deposit(acct.UserID, 250.50)
	require.NoError(t, err)
	require.True(t, updated.Balance.Equal(decimal.NewFromFloat(1250.50)))

	_, err = l.Deposit(acct.UserID, 0)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidBid)

	_, err = l.Deposit("nonexistent", 100)
	require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
}

func TestMemoryLedger_HasSufficientBalance(t *testing.T) {
	t.Parallel()

	l := newTestLedger()
	acct, err := l.Register("alice", "alice@example.com")
	require.NoError(t, err)

	require.True(t, l.HasSufficientBalance(acct.UserID, 1000))
	require.True(t, l.HasSufficientBalance(acct.UserID, 999.99))
	require.False(t, l.HasSufficientBalance(acct.UserID, 1000.01))
	require.False(t, l.HasSufficientBalance("nonexistent", 1))
}

func TestMemoryLedger_Transfer(t *testing.T) {
	t.Parallel()

	l := newTestLedger()
	alice, err := l.Register("alice", "alice@example.com")
	require.NoError(t, err)
	bob, err := l.Register("bob", "bob@example.com")
	require.NoError(t, err)

	require.NoError(t, l.Transfer(alice.UserID, bob.UserID, 400))

	aliceAcct, err := l.Profile(alice.UserID)
	require.NoError(t, err)
	bobAcct, err := l.Profile(bob.UserID)
	require.NoError(t, err)
	require.True(t, aliceAcct.Balance.Equal(decimal.NewFromInt(600)))
	require.True(t, bobAcct.Balance.Equal(decimal.NewFromInt(1400)))

	// transfer re-validates the payer's balance regardless of pre-checks
	err = l.Transfer(alice.UserID, bob.UserID, 600.01)
	require.ErrorIs(t, err, auctionerrors.ErrInsufficientBalance)

	err = l.Transfer("nonexistent", bob.UserID, 1)
	require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
	err = l.Transfer(alice.UserID, "nonexistent", 1)
	require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
}

// Decimal arithmetic keeps balances exact across many small transfers,
// where float64 accumulation would drift.
func TestMemoryLedger_Transfer_Precision(t *testing.T) {
	t.Parallel()

	l := newTestLedger()
	alice, err := l.Register("alice", "alice@example.com")
	require.NoError(t, err)
	bob, err := l.Register("bob", "bob@example.com")
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		require.NoError(t, l.Transfer(alice.UserID, bob.UserID, 0.1))
	}

	aliceAcct, err := l.Profile(alice.UserID)
	require.NoError(t, err)
	bobAcct, err := l.Profile(bob.UserID)
	require.NoError(t, err)
	require.True(t, aliceAcct.Balance.Equal(decimal.NewFromInt(900)), "got %s", aliceAcct.Balance)
	require.True(t, bobAcct.Balance.Equal(decimal.NewFromInt(1100)), "got %s", bobAcct.Balance)
}

func TestMemoryLedger_Records(t *testing.T) {
	t.Parallel()

	l := newTestLedger()
	acct, err := l.Register("alice", "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, l.RecordBid(acct.UserID, "item1"))
	// repeated bids on the same item recorded once
	require.NoError(t, l.RecordBid(acct.UserID, "item1"))
	require.NoError(t, l.RecordBid(acct.UserID, "item2"))
	require.NoError(t, l.RecordOwnership(acct.UserID, "item1"))
	require.NoError(t, l.RecordSale(acct.UserID, "item2"))

	profile, err := l.Profile(acct.UserID)
	require.NoError(t, err)
	require.Equal(t, []string{"item1", "item2"}, profile.BidsPlaced)
	require.Equal(t, []string{"item1"}, profile.OwnedItems)
	require.Equal(t, []string{"item2"}, profile.SoldItems)

	require.ErrorIs(t, l.RecordBid("nonexistent", "item1"), auctionerrors.ErrUserNotFound)
	require.ErrorIs(t, l.RecordOwnership("nonexistent", "item1"), auctionerrors.ErrUserNotFound)
	require.ErrorIs(t, l.RecordSale("nonexistent", "item1"), auctionerrors.ErrUserNotFound)
}
