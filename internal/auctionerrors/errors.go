package auctionerrors

import "errors"

// Bid rejection reasons returned from SubmitBid. Each rejection carries a
// specific reason so the presentation layer can render an actionable message.
var (
	ErrNotActive          = errors.New("auction is not active")
	ErrBelowStartingPrice = errors.New("bid must exceed starting price")
	ErrBelowCurrentBid    = errors.New("bid must exceed current highest bid")
	ErrSellerCannotBid    = errors.New("seller cannot bid on own item")
)

// Lifecycle and registry errors
var (
	ErrAlreadyEnded    = errors.New("auction already ended")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrNoBids          = errors.New("no bids placed on auction")
)

// Input validation errors
var (
	ErrInvalidBid  = errors.New("invalid bid")
	ErrInvalidItem = errors.New("invalid item")
	ErrInvalidUser = errors.New("invalid user")
)

// Accounting errors
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrUserNotFound        = errors.New("user not found")
)
