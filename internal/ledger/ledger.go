package ledger

import (
	"fmt"
	"iter"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// BidLedger holds the full bid history for one auction and tracks the
// current leading bid. The leader is kept as an explicit field so leader
// lookups are O(1); history is append-only and never reordered.
//
// The ledger carries no lock of its own: each ledger is owned exclusively
// by one auction lifecycle, which serializes all access to it.
type BidLedger struct {
	leader           *model.Bid
	history          []model.Bid
	highestPerBidder map[string]float64
}

// NewBidLedger creates an empty ledger.
func NewBidLedger() *BidLedger {
	return &BidLedger{
		highestPerBidder: make(map[string]float64),
	}
}

// leads reports whether a outranks b under the auction ordering rule:
// higher amount wins; on exact amount equality the earlier bid wins.
// Applying this rule consistently keeps the leader deterministic for
// equal-amount bids regardless of arrival order.
func leads(a, b model.Bid) bool {
	if a.Amount != b.Amount {
		return a.Amount > b.Amount
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// Record accepts a candidate bid into the ledger. A bid is accepted only if
// the ledger is empty or the amount strictly exceeds the current leader's;
// equal-to-leader bids are rejected. Eligibility rules beyond strict
// improvement (auction window, seller exclusion) are the caller's concern.
func (l *BidLedger) Record(bid model.Bid) error {
	if l.leader != nil && bid.Amount <= l.leader.Amount {
		return fmt.Errorf("ledger: current highest bid is %.2f: %w", l.leader.Amount, auctionerrors.ErrBelowCurrentBid)
	}

	l.history = append(l.history, bid)
	if l.leader == nil || leads(bid, *l.leader) {
		stored := bid
		l.leader = &stored
	}
	if bid.Amount > l.highestPerBidder[bid.BidderID] {
		l.highestPerBidder[bid.BidderID] = bid.Amount
	}
	return nil
}

// Leader returns the current highest bid, or false if no bids are recorded.
func (l *BidLedger) Leader() (model.Bid, bool) {
	if l.leader == nil {
		return model.Bid{}, false
	}
	return *l.leader, true
}

// CurrentPrice returns the leader's amount, or startingPrice if the ledger
// is empty.
func (l *BidLedger) CurrentPrice(startingPrice float64) float64 {
	if l.leader == nil {
		return startingPrice
	}
	return l.leader.Amount
}

// History returns the bids in submission order as a restartable sequence.
// Callers must not retain the yielded values across ledger mutations.
func (l *BidLedger) History() iter.Seq[model.Bid] {
	return func(yield func(model.Bid) bool) {
		for _, b := range l.history {
			if !yield(b) {
				return
			}
		}
	}
}

// Size returns the number of recorded bids.
func (l *BidLedger) Size() int {
	return len(l.history)
}

// HighestPerBidder returns the maximum amount each distinct bidder has
// submitted into this ledger. The returned map is a copy.
func (l *BidLedger) HighestPerBidder() map[string]float64 {
	out := make(map[string]float64, len(l.highestPerBidder))
	for bidder, amount := range l.highestPerBidder {
		out[bidder] = amount
	}
	return out
}
