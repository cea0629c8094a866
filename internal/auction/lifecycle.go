package auction

import (
	"fmt"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/ledger"
	model "auction-house/internal/models"
	"auction-house/utils"

	"github.com/jonboulle/clockwork"
)

// Lifecycle wraps one item's listing window and status around a BidLedger.
// An auction is active immediately upon creation and stays active until its
// end time passes or it is explicitly closed; expiry is detected lazily on
// every query against the injected clock, never via a background timer.
//
// Each Lifecycle owns its ledger exclusively and serializes all access to it
// through its own mutex, so bids on the same auction are applied one at a
// time while different auctions proceed fully in parallel.
type Lifecycle struct {
	mu     sync.Mutex
	item   model.Item
	ledger *ledger.BidLedger
	clock  clockwork.Clock
	ended  bool
}

// NewLifecycle creates an active auction for the given item.
func NewLifecycle(item model.Item, clock clockwork.Clock) *Lifecycle {
	return &Lifecycle{
		item:   item,
		ledger: ledger.NewBidLedger(),
		clock:  clock,
	}
}

// isActiveLocked reports the live status. Callers must hold a.mu.
func (a *Lifecycle) isActiveLocked() bool {
	return !a.ended && !a.clock.Now().After(a.item.EndTime)
}

// IsActive reports whether the auction still accepts bids.
func (a *Lifecycle) IsActive() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isActiveLocked()
}

// SubmitBid validates and records a bid. Validation runs in a fixed order
// (active window, starting price, current leader, seller exclusion) and
// completes before any mutation; the bid's timestamp is assigned under the
// auction lock so the order bids are applied matches their timestamps.
// Affordability is the caller's concern and is checked before this call.
func (a *Lifecycle) SubmitBid(bidderID string, amount float64) (model.Bid, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isActiveLocked() {
		return model.Bid{}, fmt.Errorf("auction %s: %w", a.item.ItemID, auctionerrors.ErrNotActive)
	}
	if amount <= a.item.StartingPrice {
		return model.Bid{}, fmt.Errorf("auction %s: starting price is %.2f: %w",
			a.item.ItemID, a.item.StartingPrice, auctionerrors.ErrBelowStartingPrice)
	}
	if leader, ok := a.ledger.Leader(); ok && amount <= leader.Amount {
		return model.Bid{}, fmt.Errorf("auction %s: current highest bid is %.2f: %w",
			a.item.ItemID, leader.Amount, auctionerrors.ErrBelowCurrentBid)
	}
	if bidderID == a.item.SellerID {
		return model.Bid{}, fmt.Errorf("auction %s: %w", a.item.ItemID, auctionerrors.ErrSellerCannotBid)
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		ItemID:    a.item.ItemID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: a.clock.Now(),
	}
	if err := a.ledger.Record(bid); err != nil {
		return model.Bid{}, fmt.Errorf("auction %s: %w", a.item.ItemID, err)
	}
	return bid, nil
}

// Close ends the auction and computes the settlement outcome. The first call
// transitions the auction to ended and returns the outcome; any later call
// returns ErrAlreadyEnded, so settlement runs at most once. Natural expiry
// does not count as a close: a timed-out auction can still be closed to
// produce its outcome, it just no longer accepts bids.
func (a *Lifecycle) Close() (model.SettlementOutcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ended {
		return model.SettlementOutcome{}, fmt.Errorf("auction %s: %w", a.item.ItemID, auctionerrors.ErrAlreadyEnded)
	}
	a.ended = true

	leader, ok := a.ledger.Leader()
	switch {
	case !ok:
		return model.SettlementOutcome{ItemID: a.item.ItemID, Status: model.StatusUnsoldNoBids}, nil
	case leader.Amount < a.item.ReservePrice:
		return model.SettlementOutcome{ItemID: a.item.ItemID, Status: model.StatusUnsoldReserveNotMet}, nil
	default:
		return model.SettlementOutcome{
			ItemID:   a.item.ItemID,
			Status:   model.StatusSold,
			WinnerID: leader.BidderID,
			Amount:   leader.Amount,
		}, nil
	}
}

// Item returns the auctioned item.
func (a *Lifecycle) Item() model.Item {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.item
}

// CurrentPrice returns the leader's amount, or the starting price if no bids
// have been placed.
func (a *Lifecycle) CurrentPrice() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.CurrentPrice(a.item.StartingPrice)
}

// Leader returns the current highest bid, if any.
func (a *Lifecycle) Leader() (model.Bid, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.Leader()
}

// RemainingTime returns the time left until the listing window ends,
// clamped at zero.
func (a *Lifecycle) RemainingTime() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	remaining := a.item.EndTime.Sub(a.clock.Now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// HasReserveBeenMet reports whether the current price covers the reserve.
// With no bids this compares the starting price against the reserve.
func (a *Lifecycle) HasReserveBeenMet() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.CurrentPrice(a.item.StartingPrice) >= a.item.ReservePrice
}

// BidHistory returns a snapshot of all bids in submission order.
func (a *Lifecycle) BidHistory() []model.Bid {
	a.mu.Lock()
	defer a.mu.Unlock()
	bids := make([]model.Bid, 0, a.ledger.Size())
	for b := range a.ledger.History() {
		bids = append(bids, b)
	}
	return bids
}

// TotalBids returns the number of bids placed so far.
func (a *Lifecycle) TotalBids() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.Size()
}

// HighestPerBidder returns each bidder's highest bid on this auction.
func (a *Lifecycle) HighestPerBidder() map[string]float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.HighestPerBidder()
}

// Status returns "active" or "ended" for display.
func (a *Lifecycle) Status() string {
	if a.IsActive() {
		return "active"
	}
	return "ended"
}
