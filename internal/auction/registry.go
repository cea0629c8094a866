package auction

import (
	"fmt"
	"iter"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/idgen"
	model "auction-house/internal/models"

	"github.com/jonboulle/clockwork"
)

// Registry owns every auction lifecycle in the process, keyed by item id.
// The id→lifecycle map is read-mostly after creation; insertions are
// synchronized by the registry's own lock, independent of per-auction locks.
type Registry struct {
	mu       sync.RWMutex
	auctions map[string]*Lifecycle
	ids      *idgen.Sequence
	clock    clockwork.Clock
}

// NewRegistry creates an empty registry. Item identifiers are drawn from the
// injected sequence so tests can run multiple independent registries with
// deterministic ids.
func NewRegistry(ids *idgen.Sequence, clock clockwork.Clock) *Registry {
	return &Registry{
		auctions: make(map[string]*Lifecycle),
		ids:      ids,
		clock:    clock,
	}
}

// Create opens a new auction for the seller's item and returns it. The
// listing window starts now and runs for the given duration.
func (r *Registry) Create(name, description string, startingPrice, reservePrice float64, sellerID string, duration time.Duration) (model.Item, error) {
	switch {
	case name == "":
		return model.Item{}, fmt.Errorf("registry: empty item name: %w", auctionerrors.ErrInvalidItem)
	case sellerID == "":
		return model.Item{}, fmt.Errorf("registry: empty seller id: %w", auctionerrors.ErrInvalidItem)
	case startingPrice < 0:
		return model.Item{}, fmt.Errorf("registry: negative starting price: %w", auctionerrors.ErrInvalidItem)
	case reservePrice < 0:
		return model.Item{}, fmt.Errorf("registry: negative reserve price: %w", auctionerrors.ErrInvalidItem)
	case duration <= 0:
		return model.Item{}, fmt.Errorf("registry: non-positive duration: %w", auctionerrors.ErrInvalidItem)
	}

	now := r.clock.Now()
	item := model.Item{
		ItemID:        r.ids.Next(),
		Name:          name,
		Description:   description,
		StartingPrice: startingPrice,
		ReservePrice:  reservePrice,
		SellerID:      sellerID,
		StartTime:     now,
		EndTime:       now.Add(duration),
	}

	r.mu.Lock()
	r.auctions[item.ItemID] = NewLifecycle(item, r.clock)
	r.mu.Unlock()

	return item, nil
}

// Get returns the lifecycle for an item id.
func (r *Registry) Get(itemID string) (*Lifecycle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[itemID]
	if !ok {
		return nil, fmt.Errorf("registry: %s: %w", itemID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// ListActive yields the ids of auctions that are active at iteration time.
// There is no cached active set; each iteration re-checks liveness, so an
// auction that expires between two iterations drops out of the next one.
func (r *Registry) ListActive() iter.Seq[string] {
	return func(yield func(string) bool) {
		r.mu.RLock()
		snapshot := make([]*Lifecycle, 0, len(r.auctions))
		for _, a := range r.auctions {
			snapshot = append(snapshot, a)
		}
		r.mu.RUnlock()

		for _, a := range snapshot {
			if !a.IsActive() {
				continue
			}
			if !yield(a.Item().ItemID) {
				return
			}
		}
	}
}

// Close ends the identified auction and returns its settlement outcome.
func (r *Registry) Close(itemID string) (model.SettlementOutcome, error) {
	a, err := r.Get(itemID)
	if err != nil {
		return model.SettlementOutcome{}, err
	}
	return a.Close()
}
