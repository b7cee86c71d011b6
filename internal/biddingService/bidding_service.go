package bidding

import (
	"fmt"

	"auction-tracker/internal/biddingerrors"
	"auction-tracker/internal/catalog"
	"auction-tracker/internal/ledger"
	"auction-tracker/internal/models"
	"auction-tracker/utils"

	"github.com/shopspring/decimal"
)

// Validation reason texts reported to API clients.
const (
	ReasonUserIDMissing   = "User id must be specified"
	ReasonAmountMissing   = "Amount must be specified"
	ReasonAmountInvalid   = "Amount must be greater than zero"
	reasonItemNotExistFmt = "Item id : %d, does not relate to an existing item"
)

// BiddingService implements the business logic for auction bidding: it
// validates candidate bids against the item catalog and delegates storage
// and ranking to the bid ledger.
type BiddingService struct {
	catalog *catalog.Catalog
	ledger  ledger.BidLedger
}

// NewBiddingService creates a new BiddingService instance.
func NewBiddingService(cat *catalog.Catalog, led ledger.BidLedger) *BiddingService {
	return &BiddingService{
		catalog: cat,
		ledger:  led,
	}
}

// PlaceBid validates and records a user's bid for an item. All detectable
// validation failures are collected into a single invalid-bid error rather
// than failing on the first one. A well-formed bid that does not exceed the
// item's current highest is rejected by the ledger with ErrBidTooLow.
func (s *BiddingService) PlaceBid(itemID int64, userID string, amount *decimal.Decimal) (models.Bid, error) {
	if err := s.validateBid(itemID, userID, amount); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:  utils.GenerateID(),
		ItemID: itemID,
		UserID: userID,
		Amount: *amount,
	}

	stored, err := s.ledger.RecordBid(bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on item %d for user %s: %w", itemID, userID, err)
	}

	return stored, nil
}

// validateBid collects every violated precondition into one error.
func (s *BiddingService) validateBid(itemID int64, userID string, amount *decimal.Decimal) error {
	verr := biddingerrors.InvalidBid(fmt.Sprintf("invalid bid on item : %d, for user : %s", itemID, userID))

	if _, err := s.catalog.GetByID(itemID); err != nil {
		verr.AddReason(fmt.Sprintf(reasonItemNotExistFmt, itemID))
	}
	if userID == "" {
		verr.AddReason(ReasonUserIDMissing)
	}
	if amount == nil {
		verr.AddReason(ReasonAmountMissing)
	} else if !amount.GreaterThan(decimal.Zero) {
		verr.AddReason(ReasonAmountInvalid)
	}

	if len(verr.Reasons) > 0 {
		return verr
	}
	return nil
}

// GetAllBids returns every accepted bid across all items.
func (s *BiddingService) GetAllBids() []models.Bid {
	return s.ledger.GetAllBids()
}

// GetBidsForItem returns all bids for an existing item, in submission
// order. An item without bids yields an empty list.
func (s *BiddingService) GetBidsForItem(itemID int64) ([]models.Bid, error) {
	if _, err := s.catalog.GetByID(itemID); err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %d: %w", itemID, err)
	}
	return s.ledger.GetBidsByItem(itemID), nil
}

// GetWinningBid returns the highest bid for an existing item, ties broken
// in favor of the earliest submission.
func (s *BiddingService) GetWinningBid(itemID int64) (models.Bid, error) {
	if _, err := s.catalog.GetByID(itemID); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for item %d: %w", itemID, err)
	}

	winning, err := s.ledger.GetWinningBid(itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for item %d: %w", itemID, err)
	}
	return winning, nil
}

// GetBidsForUser returns all bids placed by a user across items, in
// submission order. A user without bids yields an empty list.
func (s *BiddingService) GetBidsForUser(userID string) ([]models.Bid, error) {
	if userID == "" {
		return nil, biddingerrors.InvalidBid("invalid user", ReasonUserIDMissing)
	}
	return s.ledger.GetBidsByUser(userID), nil
}

// GetAllItems returns every catalog item in seed order.
func (s *BiddingService) GetAllItems() []models.Item {
	return s.catalog.GetAll()
}

// GetItem returns the catalog item with the given identifier.
func (s *BiddingService) GetItem(itemID int64) (models.Item, error) {
	return s.catalog.GetByID(itemID)
}

// GetItemsBidOnByUser returns the distinct items a user has bid on, ordered
// by the user's first bid on each.
func (s *BiddingService) GetItemsBidOnByUser(userID string) ([]models.Item, error) {
	bids, err := s.GetBidsForUser(userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool)
	items := make([]models.Item, 0)
	for _, b := range bids {
		if seen[b.ItemID] {
			continue
		}
		seen[b.ItemID] = true
		item, err := s.catalog.GetByID(b.ItemID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to resolve item %d for user %s: %w", b.ItemID, userID, err)
		}
		items = append(items, item)
	}
	return items, nil
}
