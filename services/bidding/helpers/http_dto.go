package helpers

import (
	"time"

	model "auction-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// PlaceBidRequest is the POST body for submitting a bid. Fields are
// pointers so that every missing or invalid field can be reported together
// in one validation response instead of failing at binding time.
type PlaceBidRequest struct {
	ItemID *int64           `json:"item_id"`
	UserID *string          `json:"user_id"`
	Amount *decimal.Decimal `json:"amount"`
}

// BidDetail is the API representation of an accepted bid, enriched with
// the item's description for display.
type BidDetail struct {
	BidID           string `json:"bid_id"`
	ItemID          int64  `json:"item_id"`
	ItemDescription string `json:"item_description"`
	UserID          string `json:"user_id"`
	Amount          string `json:"amount"`
	SubmittedAt     string `json:"submitted_at"`
}

// NewBidDetail maps a stored bid and its item description to the API shape.
func NewBidDetail(bid model.Bid, itemDescription string) BidDetail {
	return BidDetail{
		BidID:           bid.BidID,
		ItemID:          bid.ItemID,
		ItemDescription: itemDescription,
		UserID:          bid.UserID,
		Amount:          bid.Amount.String(),
		SubmittedAt:     bid.SubmittedAt.UTC().Format(time.RFC3339),
	}
}
