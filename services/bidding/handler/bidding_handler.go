package handler

import (
	"errors"
	"net/http"

	"auction-tracker/internal/biddingerrors"
	model "auction-tracker/internal/models"
	"auction-tracker/services/bidding/helpers"
	"auction-tracker/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BiddingServiceInterface interface {
	PlaceBid(itemID int64, userID string, amount *decimal.Decimal) (model.Bid, error)
	GetAllBids() []model.Bid
	GetBidsForItem(itemID int64) ([]model.Bid, error)
	GetWinningBid(itemID int64) (model.Bid, error)
	GetBidsForUser(userID string) ([]model.Bid, error)
	GetAllItems() []model.Item
	GetItem(itemID int64) (model.Item, error)
	GetItemsBidOnByUser(userID string) ([]model.Item, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// toBidDetails enriches bids with their item descriptions. An item missing
// from the catalog leaves the description empty rather than failing a read.
func (h *BiddingHandler) toBidDetails(bids []model.Bid) []helpers.BidDetail {
	details := make([]helpers.BidDetail, 0, len(bids))
	descriptions := make(map[int64]string)
	for _, bid := range bids {
		desc, ok := descriptions[bid.ItemID]
		if !ok {
			if item, err := h.service.GetItem(bid.ItemID); err == nil {
				desc = item.Description
			}
			descriptions[bid.ItemID] = desc
		}
		details = append(details, helpers.NewBidDetail(bid, desc))
	}
	return details
}

// GetItemsHandler handles GET /v1/items, optionally filtered to the items
// a user has bid on via ?bid-user-id=
func (h *BiddingHandler) GetItemsHandler(c *gin.Context) {
	bidUserID, filtered := c.GetQuery("bid-user-id")

	var items []model.Item
	if filtered {
		var err error
		items, err = h.service.GetItemsBidOnByUser(bidUserID)
		if err != nil {
			helpers.RespondWithError(c, err)
			utils.Warn("GetItemsHandler: error retrieving items for user", map[string]any{
				"bid_user_id": bidUserID,
				"error":       err.Error(),
			})
			return
		}
	} else {
		items = h.service.GetAllItems()
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
	helpers.LogSuccess("GetItemsHandler", "items retrieved successfully", map[string]any{
		"count": len(items),
	})
}

// RecordBidHandler handles POST /v1/items/:item_id/bids
func (h *BiddingHandler) RecordBidHandler(c *gin.Context) {
	itemID, ok := helpers.ParseItemID(c, "item_id")
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	if req.ItemID != nil && *req.ItemID != itemID {
		utils.JSONError(c, http.StatusBadRequest, 0, "Missing or invalid argument",
			[]string{helpers.ItemIDMismatch})
		utils.Warn("RecordBidHandler: item id mismatch", map[string]any{
			"path_item_id": itemID,
			"body_item_id": *req.ItemID,
		})
		return
	}

	var userID string
	if req.UserID != nil {
		userID = *req.UserID
	}

	bid, err := h.service.PlaceBid(itemID, userID, req.Amount)
	if err != nil {
		helpers.RespondWithError(c, err)
		utils.Error("RecordBidHandler: failed to record bid", map[string]any{
			"handler": "RecordBidHandler",
			"item_id": itemID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	resp := h.toBidDetails([]model.Bid{bid})[0]

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":  bid.BidID,
		"item_id": bid.ItemID,
		"user_id": bid.UserID,
		"amount":  bid.Amount.String(),
	})
}

// GetBidsByItemHandler handles GET /v1/items/:item_id/bids
func (h *BiddingHandler) GetBidsByItemHandler(c *gin.Context) {
	itemID, ok := helpers.ParseItemID(c, "item_id")
	if !ok {
		return
	}

	bids, err := h.service.GetBidsForItem(itemID)
	if err != nil {
		helpers.RespondWithError(c, err)
		utils.Warn("GetBidsByItemHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	details := h.toBidDetails(bids)

	utils.JSONResponse(c, http.StatusOK, details, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByItemHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(details),
	})
}

// GetWinningBidHandler handles GET /v1/items/:item_id/bids/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	itemID, ok := helpers.ParseItemID(c, "item_id")
	if !ok {
		return
	}

	bid, err := h.service.GetWinningBid(itemID)
	if err != nil {
		if errors.Is(err, biddingerrors.ErrNotFound) {
			helpers.RespondWithError(c, err)
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"item_id": itemID})
			return
		}
		helpers.RespondWithError(c, err)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	resp := h.toBidDetails([]model.Bid{bid})[0]

	utils.JSONResponse(c, http.StatusOK, resp, "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":  bid.BidID,
		"item_id": bid.ItemID,
		"user_id": bid.UserID,
		"amount":  bid.Amount.String(),
	})
}

// GetAllBidsHandler handles GET /v1/bids
func (h *BiddingHandler) GetAllBidsHandler(c *gin.Context) {
	details := h.toBidDetails(h.service.GetAllBids())

	utils.JSONResponse(c, http.StatusOK, details, "bids retrieved successfully")
	helpers.LogSuccess("GetAllBidsHandler", "bids retrieved successfully", map[string]any{
		"count": len(details),
	})
}

// GetBidsByUserHandler handles GET /v1/users/:user_id/bids
func (h *BiddingHandler) GetBidsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")

	bids, err := h.service.GetBidsForUser(userID)
	if err != nil {
		helpers.RespondWithError(c, err)
		utils.Warn("GetBidsByUserHandler: error retrieving bids", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	details := h.toBidDetails(bids)

	utils.JSONResponse(c, http.StatusOK, details, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByUserHandler", "bids retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(details),
	})
}
