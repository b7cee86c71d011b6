package catalog

import (
	"auction-tracker/internal/biddingerrors"
	model "auction-tracker/internal/models"
)

// Catalog is a read-only lookup of auction items. It is populated once at
// construction and never mutated, so reads need no synchronization.
type Catalog struct {
	order []int64
	items map[int64]model.Item
}

// New creates a catalog from the seed items, preserving insertion order.
func New(items []model.Item) *Catalog {
	c := &Catalog{
		items: make(map[int64]model.Item, len(items)),
	}
	for _, item := range items {
		if _, ok := c.items[item.ID]; ok {
			continue
		}
		c.order = append(c.order, item.ID)
		c.items[item.ID] = item
	}
	return c
}

// GetAll returns every item in seed insertion order.
func (c *Catalog) GetAll() []model.Item {
	items := make([]model.Item, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, c.items[id])
	}
	return items
}

// GetByID returns the item with the given identifier.
func (c *Catalog) GetByID(id int64) (model.Item, error) {
	item, ok := c.items[id]
	if !ok {
		return model.Item{}, biddingerrors.NotFound("item does not exist for identifier : %d", id)
	}
	return item, nil
}
