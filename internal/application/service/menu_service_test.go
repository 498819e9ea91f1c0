package service

import (
	"context"
	"testing"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMenu(t *testing.T) {
	items := []entity.MenuItem{
		menuItem("1", "Veg Samosa", 20, 0),
		menuItem("2", "Masala Tea", 15, 0),
		menuItem("3", "Paneer Roll", 120.5, 5),
	}

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{name: "blank returns all", search: "  ", wantIDs: []string{"1", "2", "3"}},
		{name: "case insensitive name", search: "SAMOSA", wantIDs: []string{"1"}},
		{name: "price substring", search: "12", wantIDs: []string{"3"}},
		{name: "price or name", search: "a", wantIDs: []string{"1", "2", "3"}},
		{name: "decimal price", search: "0.5", wantIDs: []string{"3"}},
		{name: "no match", search: "pizza", wantIDs: []string{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := FilterMenu(items, testCase.search)
			ids := make([]string, 0, len(got))
			for _, item := range got {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, testCase.wantIDs, ids)
		})
	}
}

func TestMenuService_CreateAndUpdate(t *testing.T) {
	s := newStores(t)
	svc := NewMenuService(s.menu)
	ctx := context.Background()

	offer := "90"
	created, err := svc.CreateItem(ctx, entity.MenuItemDraft{Name: "Samosa", Price: "100", OfferPrice: &offer})
	require.NoError(t, err)
	require.NotNil(t, created.OfferPrice)
	assert.Equal(t, 90.0, *created.OfferPrice)

	updated, err := svc.UpdateItem(ctx, created.ID, entity.MenuItemDraft{Name: "Samosa Plate", Price: "110"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Samosa Plate", updated.Name)
	require.NotNil(t, updated.OfferPrice, "omitted offer keeps the stored one")

	items, err := svc.ListItems(ctx, "plate")
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = svc.UpdateItem(ctx, "missing", entity.MenuItemDraft{Name: "x", Price: "1"})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestMenuService_ResolveCart(t *testing.T) {
	s := newStores(t)
	svc := NewMenuService(s.menu)
	ctx := context.Background()

	samosa, err := svc.CreateItem(ctx, entity.MenuItemDraft{Name: "Samosa", Price: "20"})
	require.NoError(t, err)
	tea, err := svc.CreateItem(ctx, entity.MenuItemDraft{Name: "Tea", Price: "10"})
	require.NoError(t, err)

	t.Run("resolves current catalog entries", func(t *testing.T) {
		cart, err := svc.ResolveCart(ctx, []CartLineInput{
			{MenuItemID: samosa.ID, Quantity: 2},
			{MenuItemID: tea.ID, Quantity: 1},
		})
		require.NoError(t, err)
		require.Len(t, cart, 2)
		assert.Equal(t, "Samosa", cart[0].MenuItem.Name)
		assert.Equal(t, 2, cart[0].Quantity)
	})

	t.Run("later line replaces earlier", func(t *testing.T) {
		cart, err := svc.ResolveCart(ctx, []CartLineInput{
			{MenuItemID: samosa.ID, Quantity: 2},
			{MenuItemID: samosa.ID, Quantity: 5},
		})
		require.NoError(t, err)
		require.Len(t, cart, 1)
		assert.Equal(t, 5, cart[0].Quantity)
	})

	t.Run("zero quantity dropped", func(t *testing.T) {
		cart, err := svc.ResolveCart(ctx, []CartLineInput{{MenuItemID: tea.ID, Quantity: 0}})
		require.NoError(t, err)
		assert.Empty(t, cart)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := svc.ResolveCart(ctx, []CartLineInput{{MenuItemID: "nope", Quantity: 1}})
		require.Error(t, err)
		assert.Equal(t, "Menu item not found", apperror.GetAppError(err).Message)
	})
}
