package ledger

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"auction-tracker/internal/biddingerrors"
	model "auction-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// BidLedger defines the bid storage and ranking contract for the auction
// system.
//
// Acceptance policy: monotonic. RecordBid admits a bid only if the item has
// no bids yet or the amount strictly exceeds the item's current highest;
// otherwise it rejects with ErrBidTooLow and leaves the ledger unchanged.
// Losing bids are never stored.
type BidLedger interface {
	RecordBid(bid model.Bid) (model.Bid, error)
	GetAllBids() []model.Bid
	GetBidsByItem(itemID int64) []model.Bid
	GetBidsByUser(userID string) []model.Bid
	GetWinningBid(itemID int64) (model.Bid, error)
}

// itemBids holds one item's accepted bids, guarded by its own mutex so
// submissions for different items never contend.
type itemBids struct {
	mu   sync.RWMutex
	bids []model.Bid
}

// MemoryLedger is a concurrency-safe in-memory implementation of BidLedger.
type MemoryLedger struct {
	mu    sync.RWMutex
	items map[int64]*itemBids // key: itemID

	seq atomic.Uint64 // global acceptance order across items
}

// NewMemoryLedger creates a new in-memory ledger instance.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		items: make(map[int64]*itemBids),
	}
}

// entryFor returns the per-item entry, creating it on first use.
func (l *MemoryLedger) entryFor(itemID int64) *itemBids {
	l.mu.RLock()
	entry, ok := l.items[itemID]
	l.mu.RUnlock()
	if ok {
		return entry
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if entry, ok = l.items[itemID]; !ok {
		entry = &itemBids{}
		l.items[itemID] = entry
	}
	return entry
}

// RecordBid attempts to accept a bid under the monotonic policy. The
// check-then-append runs inside the item's critical section, so two
// concurrent submissions for the same item can never both pass the
// highest-amount check against a stale snapshot. On acceptance the ledger
// stamps the submission time and global sequence and returns the stored bid.
func (l *MemoryLedger) RecordBid(bid model.Bid) (model.Bid, error) {
	// Contract violation, not a normal rejection: the service validates
	// amounts before calling the ledger.
	if !bid.Amount.GreaterThan(decimal.Zero) {
		return model.Bid{}, biddingerrors.InvalidBid("non-positive bid amount", "Amount must be greater than zero")
	}

	entry := l.entryFor(bid.ItemID)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if n := len(entry.bids); n > 0 {
		// Monotonic acceptance means the last stored bid is the current
		// highest.
		highest := entry.bids[n-1].Amount
		if !bid.Amount.GreaterThan(highest) {
			return model.Bid{}, biddingerrors.BidTooLow(
				"bid rejected",
				"Amount bid must be greater than current highest")
		}
	}

	bid.SubmittedAt = time.Now().UTC()
	bid.Seq = l.seq.Add(1)
	entry.bids = append(entry.bids, bid)

	return bid, nil
}

// GetAllBids returns every accepted bid. Order within an item is submission
// order; order across items is unspecified.
func (l *MemoryLedger) GetAllBids() []model.Bid {
	l.mu.RLock()
	entries := make([]*itemBids, 0, len(l.items))
	for _, entry := range l.items {
		entries = append(entries, entry)
	}
	l.mu.RUnlock()

	var all []model.Bid
	for _, entry := range entries {
		entry.mu.RLock()
		all = append(all, entry.bids...)
		entry.mu.RUnlock()
	}
	return all
}

// GetBidsByItem returns all bids for an item in submission order. An item
// with no bids yields an empty slice, not an error.
func (l *MemoryLedger) GetBidsByItem(itemID int64) []model.Bid {
	l.mu.RLock()
	entry, ok := l.items[itemID]
	l.mu.RUnlock()
	if !ok {
		return []model.Bid{}
	}

	entry.mu.RLock()
	defer entry.mu.RUnlock()
	return append([]model.Bid(nil), entry.bids...)
}

// GetBidsByUser returns all bids placed by a user across items, in
// submission order.
func (l *MemoryLedger) GetBidsByUser(userID string) []model.Bid {
	var bids []model.Bid
	for _, b := range l.GetAllBids() {
		if b.UserID == userID {
			bids = append(bids, b)
		}
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].Seq < bids[j].Seq })
	return bids
}

// GetWinningBid returns the highest-amount bid for an item. The scan runs
// in submission order with a strict greater-than replacement, so when
// several bids tie at the maximum the earliest-submitted one wins.
func (l *MemoryLedger) GetWinningBid(itemID int64) (model.Bid, error) {
	l.mu.RLock()
	entry, ok := l.items[itemID]
	l.mu.RUnlock()
	if !ok {
		return model.Bid{}, biddingerrors.NotFound("no winning bid for item id : %d", itemID)
	}

	entry.mu.RLock()
	defer entry.mu.RUnlock()

	if len(entry.bids) == 0 {
		return model.Bid{}, biddingerrors.NotFound("no winning bid for item id : %d", itemID)
	}

	winning := entry.bids[0]
	for _, b := range entry.bids[1:] {
		if b.Amount.GreaterThan(winning.Amount) {
			winning = b
		}
	}
	return winning, nil
}
