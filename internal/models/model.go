package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents an auction lot. Items are seeded once at startup and
// never mutated afterwards.
type Item struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Bid represents a user's accepted offer on an item. SubmittedAt and Seq
// are assigned by the ledger at acceptance time, never by the caller.
type Bid struct {
	BidID       string          `json:"bid_id"`
	ItemID      int64           `json:"item_id"`
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	SubmittedAt time.Time       `json:"submitted_at"`

	// Seq is the global acceptance order across all items. Internal only.
	Seq uint64 `json:"-"`
}
