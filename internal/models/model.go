package models

import "time"

// Bid represents a user's bid on an auctioned item.
// A bid is immutable once created; CreatedAt is assigned from the
// auction's clock at submission time.
type Bid struct {
	BidID     string    `json:"bid_id"`
	ItemID    string    `json:"item_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Item describes a listing put up for auction.
// A ReservePrice of 0 means the item has no reserve.
type Item struct {
	ItemID        string    `json:"item_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	StartingPrice float64   `json:"starting_price"`
	ReservePrice  float64   `json:"reserve_price"`
	SellerID      string    `json:"seller_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}

// SettlementStatus classifies the result of closing an auction.
type SettlementStatus string

const (
	StatusSold                SettlementStatus = "sold"
	StatusUnsoldNoBids        SettlementStatus = "unsold_no_bids"
	StatusUnsoldReserveNotMet SettlementStatus = "unsold_reserve_not_met"
)

// SettlementOutcome is the result of closing an auction. WinnerID and
// Amount are only set when Status is StatusSold.
type SettlementOutcome struct {
	ItemID   string           `json:"item_id"`
	Status   SettlementStatus `json:"status"`
	WinnerID string           `json:"winner_id,omitempty"`
	Amount   float64          `json:"amount,omitempty"`
}

// AuctionSummary is the listing row shown for an active auction.
type AuctionSummary struct {
	ItemID           string  `json:"item_id"`
	Name             string  `json:"name"`
	CurrentPrice     float64 `json:"current_price"`
	RemainingSeconds int64   `json:"remaining_seconds"`
}

// AuctionDetails is the full public view of one auction.
type AuctionDetails struct {
	Item             Item    `json:"item"`
	Status           string  `json:"status"`
	CurrentPrice     float64 `json:"current_price"`
	RemainingSeconds int64   `json:"remaining_seconds"`
	ReserveMet       bool    `json:"reserve_met"`
	TotalBids        int     `json:"total_bids"`
	LeaderID         string  `json:"leader_id,omitempty"`
}
