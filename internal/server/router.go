package server

import (
	"time"

	auctionservice "auction-house/internal/auctionService"
	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auctionservice.AuctionService, defaultDuration time.Duration) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService, defaultDuration)

	users := router.Group("/users")
	{
		users.POST("", auctionHandler.RegisterUserHandler)
		users.GET("/:user_id", auctionHandler.GetUserProfileHandler)
		users.POST("/:user_id/deposit", auctionHandler.DepositHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListActiveAuctionsHandler)
		auctions.GET("/:item_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:item_id/bids", auctionHandler.PlaceBidHandler)
		auctions.GET("/:item_id/bids", auctionHandler.GetBidHistoryHandler)
		auctions.GET("/:item_id/winning", auctionHandler.GetWinningBidHandler)
		auctions.POST("/:item_id/close", auctionHandler.CloseAuctionHandler)
	}

	return router
}
