package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidItem):
		return http.StatusBadRequest, "invalid item details"
	case errors.Is(err, auctionerrors.ErrInvalidUser):
		return http.StatusBadRequest, "invalid user details"
	case errors.Is(err, auctionerrors.ErrNotActive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, auctionerrors.ErrBelowStartingPrice):
		return http.StatusConflict, "bid below starting price"
	case errors.Is(err, auctionerrors.ErrBelowCurrentBid):
		return http.StatusConflict, "bid below current highest bid"
	case errors.Is(err, auctionerrors.ErrSellerCannotBid):
		return http.StatusConflict, "seller cannot bid on own item"
	case errors.Is(err, auctionerrors.ErrAlreadyEnded):
		return http.StatusConflict, "auction already ended"
	case errors.Is(err, auctionerrors.ErrUsernameTaken):
		return http.StatusConflict, "username already exists"
	case errors.Is(err, auctionerrors.ErrInsufficientBalance):
		return http.StatusPaymentRequired, "insufficient balance"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids placed on auction"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
