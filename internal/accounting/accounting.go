package accounting

import (
	"fmt"
	"sync"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/idgen"

	"github.com/shopspring/decimal"
)

// Account holds one user's registration record, balance and auction history.
// Balances use decimal arithmetic so they stay exact across any number of
// deposits and transfers.
type Account struct {
	UserID     string          `json:"user_id"`
	Username   string          `json:"username"`
	Email      string          `json:"email"`
	Balance    decimal.Decimal `json:"balance"`
	BidsPlaced []string        `json:"bids_placed"`
	OwnedItems []string        `json:"owned_items"`
	SoldItems  []string        `json:"sold_items"`
}

// Service is the accounting collaborator contract used by the orchestration
// layer: balance pre-checks before a bid reaches an auction, and fund
// transfer plus ownership recording after a sold close.
type Service interface {
	Register(username, email string) (Account, error)
	Deposit(userID string, amount float64) (Account, error)
	Profile(userID string) (Account, error)
	HasSufficientBalance(userID string, amount float64) bool
	Transfer(fromUserID, toUserID string, amount float64) error
	RecordBid(userID, itemID string) error
	RecordOwnership(userID, itemID string) error
	RecordSale(userID, itemID string) error
}

// MemoryLedger is a concurrency-safe in-memory implementation of Service.
type MemoryLedger struct {
	mu             sync.RWMutex
	accounts       map[string]*Account
	byUsername     map[string]string // username -> userID
	ids            *idgen.Sequence
	initialBalance decimal.Decimal
}

// NewMemoryLedger creates an accounting ledger. Newly registered accounts
// start with initialBalance.
func NewMemoryLedger(ids *idgen.Sequence, initialBalance float64) *MemoryLedger {
	return &MemoryLedger{
		accounts:       make(map[string]*Account),
		byUsername:     make(map[string]string),
		ids:            ids,
		initialBalance: decimal.NewFromFloat(initialBalance),
	}
}

// Register creates an account for a new user. Usernames are unique.
func (l *MemoryLedger) Register(username, email string) (Account, error) {
	if username == "" {
		return Account{}, fmt.Errorf("accounting: empty username: %w", auctionerrors.ErrInvalidUser)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, taken := l.byUsername[username]; taken {
		return Account{}, fmt.Errorf("accounting: register %s: %w", username, auctionerrors.ErrUsernameTaken)
	}

	acct := &Account{
		UserID:   l.ids.Next(),
		Username: username,
		Email:    email,
		Balance:  l.initialBalance,
	}
	l.accounts[acct.UserID] = acct
	l.byUsername[username] = acct.UserID
	return *acct, nil
}

// Deposit adds funds to a user's balance and returns the updated account.
func (l *MemoryLedger) Deposit(userID string, amount float64) (Account, error) {
	if amount <= 0 {
		return Account{}, fmt.Errorf("accounting: non-positive deposit: %w", auctionerrors.ErrInvalidBid)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[userID]
	if !ok {
		return Account{}, fmt.Errorf("accounting: deposit for %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	acct.Balance = acct.Balance.Add(decimal.NewFromFloat(amount))
	return *acct, nil
}

// Profile returns a copy of the user's account.
func (l *MemoryLedger) Profile(userID string) (Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acct, ok := l.accounts[userID]
	if !ok {
		return Account{}, fmt.Errorf("accounting: profile for %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return *acct, nil
}

// HasSufficientBalance reports whether the user can afford the amount.
// This is a snapshot read; the balance may change before settlement, which
// is why Transfer re-validates.
func (l *MemoryLedger) HasSufficientBalance(userID string, amount float64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acct, ok := l.accounts[userID]
	if !ok {
		return false
	}
	return acct.Balance.GreaterThanOrEqual(decimal.NewFromFloat(amount))
}

// Transfer moves amount from one user to another. The debit and credit are
// applied atomically under the ledger lock, and the payer's balance is
// re-validated here regardless of any earlier pre-check.
func (l *MemoryLedger) Transfer(fromUserID, toUserID string, amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	from, ok := l.accounts[fromUserID]
	if !ok {
		return fmt.Errorf("accounting: transfer from %s: %w", fromUserID, auctionerrors.ErrUserNotFound)
	}
	to, ok := l.accounts[toUserID]
	if !ok {
		return fmt.Errorf("accounting: transfer to %s: %w", toUserID, auctionerrors.ErrUserNotFound)
	}

	dec := decimal.NewFromFloat(amount)
	if from.Balance.LessThan(dec) {
		return fmt.Errorf("accounting: transfer of %.2f from %s: %w", amount, fromUserID, auctionerrors.ErrInsufficientBalance)
	}
	from.Balance = from.Balance.Sub(dec)
	to.Balance = to.Balance.Add(dec)
	return nil
}

// RecordBid notes that the user placed a bid on the item. Repeated bids on
// the same item are recorded once.
func (l *MemoryLedger) RecordBid(userID, itemID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[userID]
	if !ok {
		return fmt.Errorf("accounting: record bid for %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	for _, id := range acct.BidsPlaced {
		if id == itemID {
			return nil
		}
	}
	acct.BidsPlaced = append(acct.BidsPlaced, itemID)
	return nil
}

// RecordOwnership notes that the user won the item.
func (l *MemoryLedger) RecordOwnership(userID, itemID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[userID]
	if !ok {
		return fmt.Errorf("accounting: record ownership for %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	acct.OwnedItems = append(acct.OwnedItems, itemID)
	return nil
}

// RecordSale notes that the user sold the item.
func (l *MemoryLedger) RecordSale(userID, itemID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[userID]
	if !ok {
		return fmt.Errorf("accounting: record sale for %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	acct.SoldItems = append(acct.SoldItems, itemID)
	return nil
}
