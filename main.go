package main

import (
	"fmt"
	"os"

	"auction-house/internal/accounting"
	"auction-house/internal/auction"
	auctionservice "auction-house/internal/auctionService"
	"auction-house/internal/config"
	"auction-house/internal/idgen"
	"auction-house/internal/server"
	"auction-house/utils"

	"github.com/jonboulle/clockwork"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.Configure(cfg.LogLevel)

	clock := clockwork.NewRealClock()
	// Users and items share one process-wide identifier sequence.
	ids := idgen.NewSequence(cfg.Auction.IDBase)

	accounts := accounting.NewMemoryLedger(ids, cfg.Accounts.InitialBalance)
	registry := auction.NewRegistry(ids, clock)
	auctionSvc := auctionservice.NewAuctionService(registry, accounts)

	router := server.SetupRouter(auctionSvc, cfg.Auction.DefaultDuration)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	utils.Info("Starting auction server", map[string]any{
		"addr":             addr,
		"default_duration": cfg.Auction.DefaultDuration.String(),
	})
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
