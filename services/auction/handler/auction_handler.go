package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-house/internal/accounting"
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	RegisterUser(username, email string) (accounting.Account, error)
	Deposit(userID string, amount float64) (accounting.Account, error)
	GetUserProfile(userID string) (accounting.Account, error)
	CreateAuction(sellerID, name, description string, startingPrice, reservePrice float64, duration time.Duration) (model.Item, error)
	PlaceBid(itemID, bidderID string, amount float64) (model.Bid, error)
	CloseAuction(itemID string) (model.SettlementOutcome, error)
	ListActiveAuctions() []model.AuctionSummary
	GetAuctionDetails(itemID string) (model.AuctionDetails, error)
	GetBidHistory(itemID string) ([]model.Bid, error)
	GetWinningBid(itemID string) (model.Bid, error)
}

type AuctionHandler struct {
	service         AuctionServiceInterface
	defaultDuration time.Duration
}

func NewAuctionHandler(service AuctionServiceInterface, defaultDuration time.Duration) *AuctionHandler {
	return &AuctionHandler{service: service, defaultDuration: defaultDuration}
}

func accountResponse(acct accounting.Account) helpers.AccountResponse {
	return helpers.AccountResponse{
		UserID:     acct.UserID,
		Username:   acct.Username,
		Email:      acct.Email,
		Balance:    acct.Balance.InexactFloat64(),
		BidsPlaced: len(acct.BidsPlaced),
		OwnedItems: len(acct.OwnedItems),
		SoldItems:  len(acct.SoldItems),
	}
}

func bidResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     bid.BidID,
		ItemID:    bid.ItemID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// RegisterUserHandler handles POST /users
func (h *AuctionHandler) RegisterUserHandler(c *gin.Context) {
	var req helpers.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterUserHandler", err)
		return
	}

	acct, err := h.service.RegisterUser(req.Username, req.Email)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RegisterUserHandler: failed to register user", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, accountResponse(acct), "user registered successfully")
	helpers.LogSuccess("RegisterUserHandler", "user registered successfully", map[string]any{
		"user_id":  acct.UserID,
		"username": acct.Username,
	})
}

// DepositHandler handles POST /users/:user_id/deposit
func (h *AuctionHandler) DepositHandler(c *gin.Context) {
	userID := c.Param("user_id")

	var req helpers.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DepositHandler", err)
		return
	}

	acct, err := h.service.Deposit(userID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DepositHandler: failed to deposit", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, accountResponse(acct), "deposit recorded successfully")
	helpers.LogSuccess("DepositHandler", "deposit recorded successfully", map[string]any{
		"user_id": userID,
		"amount":  req.Amount,
	})
}

// GetUserProfileHandler handles GET /users/:user_id
func (h *AuctionHandler) GetUserProfileHandler(c *gin.Context) {
	userID := c.Param("user_id")

	acct, err := h.service.GetUserProfile(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserProfileHandler: error retrieving profile", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, accountResponse(acct), "profile retrieved successfully")
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	duration := h.defaultDuration
	if req.DurationMinutes > 0 {
		duration = time.Duration(req.DurationMinutes) * time.Minute
	}

	item, err := h.service.CreateAuction(req.SellerID, req.Name, req.Description, req.StartingPrice, req.ReservePrice, duration)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"seller_id": req.SellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"item_id":   item.ItemID,
		"seller_id": item.SellerID,
	})
}

// ListActiveAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListActiveAuctionsHandler(c *gin.Context) {
	summaries := h.service.ListActiveAuctions()
	utils.JSONResponse(c, http.StatusOK, summaries, "active auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:item_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	details, err := h.service.GetAuctionDetails(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, details, "auction retrieved successfully")
}

// PlaceBidHandler handles POST /auctions/:item_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(itemID, req.BidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"item_id":   itemID,
			"bidder_id": req.BidderID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":    bid.BidID,
		"item_id":   bid.ItemID,
		"bidder_id": bid.BidderID,
		"amount":    bid.Amount,
	})
}

// GetBidHistoryHandler handles GET /auctions/:item_id/bids
func (h *AuctionHandler) GetBidHistoryHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	bids, err := h.service.GetBidHistory(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHistoryHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidHistoryHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(bids),
	})
}

// GetWinningBidHandler handles GET /auctions/:item_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	bid, err := h.service.GetWinningBid(itemID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"item_id": itemID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bidResponse(bid), "winning bid retrieved successfully")
}

// CloseAuctionHandler handles POST /auctions/:item_id/close
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	outcome, err := h.service.CloseAuction(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CloseAuctionHandler: failed to close auction", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, outcome, "auction closed successfully")
	helpers.LogSuccess("CloseAuctionHandler", "auction closed successfully", map[string]any{
		"item_id":   outcome.ItemID,
		"status":    string(outcome.Status),
		"winner_id": outcome.WinnerID,
	})
}
