package catalog

import (
	"errors"
	"testing"

	"auction-tracker/internal/biddingerrors"
	model "auction-tracker/internal/models"

	"github.com/stretchr/testify/require"
)

func seedItems() []model.Item {
	return []model.Item{
		{ID: 1, Description: "Awesome item 1", Category: "Books"},
		{ID: 2, Description: "Extraordinary item 2", Category: "Electronics"},
		{ID: 3, Description: "Fabulous item 3", Category: "Jewelry"},
	}
}

func TestCatalog_GetAll(t *testing.T) {
	t.Parallel()

	cat := New(seedItems())

	// GetAll preserves seed insertion order and is stable across calls
	for i := 0; i < 3; i++ {
		items := cat.GetAll()
		require.Equal(t, seedItems(), items)
	}
}

func TestCatalog_GetAll_DuplicateSeedIgnored(t *testing.T) {
	t.Parallel()

	items := append(seedItems(), model.Item{ID: 1, Description: "impostor", Category: "Books"})
	cat := New(items)

	require.Equal(t, seedItems(), cat.GetAll())

	got, err := cat.GetByID(1)
	require.NoError(t, err)
	require.Equal(t, "Awesome item 1", got.Description)
}

func TestCatalog_GetByID(t *testing.T) {
	t.Parallel()

	cat := New(seedItems())

	tests := []struct {
		name      string
		id        int64
		wantItem  model.Item
		wantError bool
	}{
		{name: "first_item", id: 1, wantItem: seedItems()[0]},
		{name: "last_item", id: 3, wantItem: seedItems()[2]},
		{name: "unknown_id", id: 42, wantError: true},
		{name: "zero_id", id: 0, wantError: true},
		{name: "negative_id", id: -1, wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			item, err := cat.GetByID(tc.id)
			if tc.wantError {
				require.Error(t, err)
				require.True(t, errors.Is(err, biddingerrors.ErrNotFound))
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.wantItem, item)
			}
		})
	}
}
