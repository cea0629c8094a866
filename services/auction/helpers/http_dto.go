package helpers

// Request/Response DTOs
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type DepositRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreateAuctionRequest struct {
	SellerID        string  `json:"seller_id" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	StartingPrice   float64 `json:"starting_price" binding:"gte=0"`
	ReservePrice    float64 `json:"reserve_price" binding:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"gte=0"`
}

type PlaceBidRequest struct {
	BidderID string  `json:"bidder_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	ItemID    string  `json:"item_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type AccountResponse struct {
	UserID     string  `json:"user_id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Balance    float64 `json:"balance"`
	BidsPlaced int     `json:"bids_placed"`
	OwnedItems int     `json:"owned_items"`
	SoldItems  int     `json:"sold_items"`
}
