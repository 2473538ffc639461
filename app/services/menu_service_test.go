package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/verandah/app/models"
	"github.com/shashiranjanraj/verandah/app/repositories"
)

func TestCreateItemRequiresExistingCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, MenuItemInput{
		Name: "Mocha", Price: 5.25, CategoryID: 999,
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	category, err := svc.CreateCategory(ctx, CategoryInput{Name: "Hot Beverages"})
	require.NoError(t, err)

	item, err := svc.CreateItem(ctx, MenuItemInput{
		Name: "Mocha", Price: 5.25, CategoryID: category.ID, PreparationTime: 6,
	})
	require.NoError(t, err)
	assert.True(t, item.IsAvailable)
	require.NotNil(t, item.Category)
	assert.Equal(t, "Hot Beverages", item.Category.Name)
}

func TestDeleteItemSoftDisablesWhenReferenced(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	espresso, latte := seedMenu(t, db)
	ctx := context.Background()

	// Espresso appears in an order; latte never does.
	orders := NewOrderService(db)
	_, err := orders.Create(user.ID, CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items:     []OrderLineInput{{MenuItemID: espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	svc := NewMenuService(db)

	disabled, err := svc.DeleteItem(ctx, espresso.ID)
	require.NoError(t, err)
	assert.True(t, disabled)

	// Still present, just unavailable, so order history resolves.
	got, err := svc.Item(espresso.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)

	disabled, err = svc.DeleteItem(ctx, latte.ID)
	require.NoError(t, err)
	assert.False(t, disabled)

	_, err = svc.Item(latte.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemsFilter(t *testing.T) {
	db := newTestDB(t)
	espresso, latte := seedMenu(t, db)

	latte.IsAvailable = false
	require.NoError(t, db.Save(latte).Error)

	svc := NewMenuService(db)

	items, pagination, err := svc.Items(repositories.MenuItemFilter{OnlyAvailable: true}, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, espresso.ID, items[0].ID)
	assert.EqualValues(t, 1, pagination.Total)

	items, _, err = svc.Items(repositories.MenuItemFilter{Search: "latt"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, latte.ID, items[0].ID)
}

func TestCategoriesWithItemsSkipsUnavailable(t *testing.T) {
	db := newTestDB(t)
	espresso, latte := seedMenu(t, db)
	_ = espresso

	latte.IsAvailable = false
	require.NoError(t, db.Save(latte).Error)

	svc := NewMenuService(db)
	categories, err := svc.CategoriesWithItems(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Len(t, categories[0].MenuItems, 1)
	assert.Equal(t, "Espresso", categories[0].MenuItems[0].Name)
}
