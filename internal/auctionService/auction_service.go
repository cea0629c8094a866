package auctionservice

import (
	"fmt"
	"time"

	"auction-house/internal/accounting"
	"auction-house/internal/auction"
	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/utils"
)

// AuctionService orchestrates the auction registry and the accounting
// collaborator: balance pre-checks before a bid reaches an auction's
// lifecycle, and settlement after a close.
type AuctionService struct {
	registry *auction.Registry
	accounts accounting.Service
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(registry *auction.Registry, accounts accounting.Service) *AuctionService {
	return &AuctionService{
		registry: registry,
		accounts: accounts,
	}
}

// RegisterUser creates a new user account.
func (s *AuctionService) RegisterUser(username, email string) (accounting.Account, error) {
	acct, err := s.accounts.Register(username, email)
	if err != nil {
		return accounting.Account{}, fmt.Errorf("service: failed to register user %s: %w", username, err)
	}
	return acct, nil
}

// Deposit adds funds to a user's balance.
func (s *AuctionService) Deposit(userID string, amount float64) (accounting.Account, error) {
	acct, err := s.accounts.Deposit(userID, amount)
	if err != nil {
		return accounting.Account{}, fmt.Errorf("service: failed to deposit for user %s: %w", userID, err)
	}
	return acct, nil
}

// GetUserProfile returns a user's account.
func (s *AuctionService) GetUserProfile(userID string) (accounting.Account, error) {
	acct, err := s.accounts.Profile(userID)
	if err != nil {
		return accounting.Account{}, fmt.Errorf("service: failed to get profile for user %s: %w", userID, err)
	}
	return acct, nil
}

// CreateAuction opens a new auction for a seller's item.
func (s *AuctionService) CreateAuction(sellerID, name, description string, startingPrice, reservePrice float64, duration time.Duration) (models.Item, error) {
	if _, err := s.accounts.Profile(sellerID); err != nil {
		return models.Item{}, fmt.Errorf("service: unknown seller %s: %w", sellerID, err)
	}

	item, err := s.registry.Create(name, description, startingPrice, reservePrice, sellerID, duration)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to create auction for seller %s: %w", sellerID, err)
	}
	return item, nil
}

// PlaceBid validates affordability and forwards the bid to the auction's
// lifecycle. The balance check is a snapshot read taken before the auction
// lock is acquired; the lifecycle never calls back into accounting.
func (s *AuctionService) PlaceBid(itemID, bidderID string, amount float64) (models.Bid, error) {
	if itemID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing itemID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	if !s.accounts.HasSufficientBalance(bidderID, amount) {
		return models.Bid{}, fmt.Errorf("service: bid of %.2f by user %s: %w", amount, bidderID, auctionerrors.ErrInsufficientBalance)
	}

	lifecycle, err := s.registry.Get(itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on item %s: %w", itemID, err)
	}

	bid, err := lifecycle.SubmitBid(bidderID, amount)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on item %s: %w", itemID, err)
	}

	if err := s.accounts.RecordBid(bidderID, itemID); err != nil {
		utils.Warn("PlaceBid: failed to record bid in accounting", map[string]any{
			"item_id": itemID,
			"user_id": bidderID,
			"error":   err.Error(),
		})
	}
	return bid, nil
}

// CloseAuction ends an auction and settles it. A sold outcome transfers the
// winning amount from the winner to the seller and records the ownership
// change; settlement runs at most once because a second close returns
// ErrAlreadyEnded before reaching it. If the transfer fails (the winner's
// balance changed since the pre-check), the close stands and the error is
// reported alongside the outcome.
func (s *AuctionService) CloseAuction(itemID string) (models.SettlementOutcome, error) {
	if itemID == "" {
		return models.SettlementOutcome{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidBid)
	}

	lifecycle, err := s.registry.Get(itemID)
	if err != nil {
		return models.SettlementOutcome{}, fmt.Errorf("service: failed to close auction %s: %w", itemID, err)
	}

	outcome, err := lifecycle.Close()
	if err != nil {
		return models.SettlementOutcome{}, fmt.Errorf("service: failed to close auction %s: %w", itemID, err)
	}

	if outcome.Status != models.StatusSold {
		return outcome, nil
	}

	sellerID := lifecycle.Item().SellerID
	if err := s.accounts.Transfer(outcome.WinnerID, sellerID, outcome.Amount); err != nil {
		return outcome, fmt.Errorf("service: settlement transfer for auction %s: %w", itemID, err)
	}
	if err := s.accounts.RecordOwnership(outcome.WinnerID, itemID); err != nil {
		return outcome, fmt.Errorf("service: settlement ownership for auction %s: %w", itemID, err)
	}
	if err := s.accounts.RecordSale(sellerID, itemID); err != nil {
		return outcome, fmt.Errorf("service: settlement sale record for auction %s: %w", itemID, err)
	}
	return outcome, nil
}

// ListActiveAuctions returns a summary row for every auction that is active
// right now.
func (s *AuctionService) ListActiveAuctions() []models.AuctionSummary {
	summaries := []models.AuctionSummary{}
	for itemID := range s.registry.ListActive() {
		lifecycle, err := s.registry.Get(itemID)
		if err != nil {
			continue
		}
		item := lifecycle.Item()
		summaries = append(summaries, models.AuctionSummary{
			ItemID:           item.ItemID,
			Name:             item.Name,
			CurrentPrice:     lifecycle.CurrentPrice(),
			RemainingSeconds: int64(lifecycle.RemainingTime().Seconds()),
		})
	}
	return summaries
}

// GetAuctionDetails returns the full public view of one auction.
func (s *AuctionService) GetAuctionDetails(itemID string) (models.AuctionDetails, error) {
	lifecycle, err := s.registry.Get(itemID)
	if err != nil {
		return models.AuctionDetails{}, fmt.Errorf("service: failed to get auction %s: %w", itemID, err)
	}

	details := models.AuctionDetails{
		Item:             lifecycle.Item(),
		Status:           lifecycle.Status(),
		CurrentPrice:     lifecycle.CurrentPrice(),
		RemainingSeconds: int64(lifecycle.RemainingTime().Seconds()),
		ReserveMet:       lifecycle.HasReserveBeenMet(),
		TotalBids:        lifecycle.TotalBids(),
	}
	if leader, ok := lifecycle.Leader(); ok {
		details.LeaderID = leader.BidderID
	}
	return details, nil
}

// GetBidHistory returns all bids on an auction in submission order.
func (s *AuctionService) GetBidHistory(itemID string) ([]models.Bid, error) {
	lifecycle, err := s.registry.Get(itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %s: %w", itemID, err)
	}
	return lifecycle.BidHistory(), nil
}

// GetWinningBid returns the current leading bid on an auction.
func (s *AuctionService) GetWinningBid(itemID string) (models.Bid, error) {
	lifecycle, err := s.registry.Get(itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for item %s: %w", itemID, err)
	}

	leader, ok := lifecycle.Leader()
	if !ok {
		return models.Bid{}, fmt.Errorf("service: item %s: %w", itemID, auctionerrors.ErrNoBids)
	}
	return leader, nil
}
