package server

import (
	bidding "auction-tracker/internal/biddingService"
	handler "auction-tracker/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService)

	v1 := router.Group("/v1")
	{
		v1.GET("/bids", biddingHandler.GetAllBidsHandler)

		items := v1.Group("/items")
		{
			items.GET("", biddingHandler.GetItemsHandler)
			items.GET("/:item_id/bids", biddingHandler.GetBidsByItemHandler)
			items.GET("/:item_id/bids/winning", biddingHandler.GetWinningBidHandler)
			items.POST("/:item_id/bids", biddingHandler.RecordBidHandler)
		}

		users := v1.Group("/users")
		{
			users.GET("/:user_id/bids", biddingHandler.GetBidsByUserHandler)
		}
	}

	return router
}
