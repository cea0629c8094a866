package auction

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/idgen"
	model "auction-house/internal/models"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) (*Registry, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(testStart)
	return NewRegistry(idgen.NewSequence(1000), clock), clock
}

func TestRegistry_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		itemName      string
		sellerID      string
		startingPrice float64
		reservePrice  float64
		duration      time.Duration
		wantError     bool
	}{
		{name: "valid_item", itemName: "Lamp", sellerID: "seller1", startingPrice: 10, reservePrice: 50, duration: time.Hour},
		{name: "zero_reserve_means_no_reserve", itemName: "Lamp", sellerID: "seller1", startingPrice: 10, duration: time.Hour},
		{name: "empty_name", sellerID: "seller1", startingPrice: 10, duration: time.Hour, wantError: true},
		{name: "empty_seller", itemName: "Lamp", startingPrice: 10, duration: time.Hour, wantError: true},
		{name: "negative_starting_price", itemName: "Lamp", sellerID: "seller1", startingPrice: -1, duration: time.Hour, wantError: true},
		{name: "negative_reserve_price", itemName: "Lamp", sellerID: "seller1", reservePrice: -1, duration: time.Hour, wantError: true},
		{name: "zero_duration", itemName: "Lamp", sellerID: "seller1", startingPrice: 10, wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, clock := newTestRegistry(t)
			item, err := r.Create(tc.itemName, "description", tc.startingPrice, tc.reservePrice, tc.sellerID, tc.duration)
			if tc.wantError {
				require.ErrorIs(t, err, auctionerrors.ErrInvalidItem)
				return
			}
			require.NoError(t, err)
			require.Equal(t, clock.Now(), item.StartTime)
			require.Equal(t, clock.Now().Add(tc.duration), item.EndTime)
			require.True(t, item.EndTime.After(item.StartTime))

			a, err := r.Get(item.ItemID)
			require.NoError(t, err)
			require.True(t, a.IsActive())
		})
	}
}

// Item ids come from the injected sequence
func TestRegistry_SequentialIDs(t *testing.T) {
	t.Parallel()

	r, _ := newTestRegistry(t)
	for i := 0; i < 3; i++ {
		item, err := r.Create("Lamp", "", 10, 0, "seller1", time.Hour)
		require.NoError(t, err)
		require.Equal(t, fmt.Sprintf("ID%d", 1000+i), item.ItemID)
	}
}

func TestRegistry_Get_NotFound(t *testing.T) {
	t.Parallel()

	r, _ := newTestRegistry(t)
	_, err := r.Get("nonexistent")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
}

// ListActive filters by liveness at iteration time: expired and explicitly
// closed auctions drop out without any cached active set.
func TestRegistry_ListActive(t *testing.T) {
	t.Parallel()

	r, clock := newTestRegistry(t)
	short, err := r.Create("Short", "", 10, 0, "seller1", 30*time.Minute)
	require.NoError(t, err)
	long, err := r.Create("Long", "", 10, 0, "seller1", 2*time.Hour)
	require.NoError(t, err)
	closed, err := r.Create("Closed", "", 10, 0, "seller1", 2*time.Hour)
	require.NoError(t, err)

	collect := func() map[string]bool {
		ids := make(map[string]bool)
		for id := range r.ListActive() {
			ids[id] = true
		}
		return ids
	}

	require.Equal(t, map[string]bool{short.ItemID: true, long.ItemID: true, closed.ItemID: true}, collect())

	_, err = r.Close(closed.ItemID)
	require.NoError(t, err)
	require.Equal(t, map[string]bool{short.ItemID: true, long.ItemID: true}, collect())

	clock.Advance(time.Hour)
	require.Equal(t, map[string]bool{long.ItemID: true}, collect())

	clock.Advance(2 * time.Hour)
	require.Empty(t, collect())
}

func TestRegistry_Close(t *testing.T) {
	t.Parallel()

	r, _ := newTestRegistry(t)
	item, err := r.Create("Lamp", "", 10, 0, "seller1", time.Hour)
	require.NoError(t, err)

	a, err := r.Get(item.ItemID)
	require.NoError(t, err)
	_, err = a.SubmitBid("user1", 20)
	require.NoError(t, err)

	outcome, err := r.Close(item.ItemID)
	require.NoError(t, err)
	require.Equal(t, model.StatusSold, outcome.Status)
	require.Equal(t, "user1", outcome.WinnerID)

	_, err = r.Close(item.ItemID)
	require.ErrorIs(t, err, auctionerrors.ErrAlreadyEnded)

	_, err = r.Close("nonexistent")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
}

// Auction creation is safe against concurrent lookups and creations
func TestRegistry_ConcurrentCreateAndGet(t *testing.T) {
	t.Parallel()

	r, _ := newTestRegistry(t)

	var wg sync.WaitGroup
	ids := make([]string, 20)
	errs := make([]error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			item, err := r.Create(fmt.Sprintf("Item %d", i), "", 10, 0, "seller1", time.Hour)
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = item.ItemID

			if _, err := r.Get(item.ItemID); err != nil {
				errs[i] = err
			}
			for range r.ListActive() {
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[string]bool)
	for _, id := range ids {
		require.False(t, seen[id], "duplicate item id %s", id)
		seen[id] = true
	}
}
