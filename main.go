package main

import (
	bidding "auction-tracker/internal/biddingService"
	"auction-tracker/internal/catalog"
	"auction-tracker/internal/ledger"
	model "auction-tracker/internal/models"
	"auction-tracker/internal/server"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {

	_ = godotenv.Load() // optional .env, real env wins

	cat := catalog.New(seedItems())
	led := ledger.NewMemoryLedger()

	biddingSvc := bidding.NewBiddingService(cat, led)

	router := server.SetupRouter(biddingSvc)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedItems returns the fixed auction lots available for the lifetime of
// the process.
func seedItems() []model.Item {
	return []model.Item{
		{ID: 1, Description: "Awesome item 1", Category: "Books"},
		{ID: 2, Description: "Extraordinary item 2", Category: "Electronics"},
		{ID: 3, Description: "Fabulous item 3", Category: "Jewelry"},
		{ID: 4, Description: "Magnificent item 4", Category: "Travel"},
		{ID: 5, Description: "Quite remarkable item 5", Category: "Toys"},
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
