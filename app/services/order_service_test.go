package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/verandah/app/models"
)

func TestCreateOrderComputesTotalServerSide(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	espresso, latte := seedMenu(t, db)
	seedTable(t, db, 1)

	svc := NewOrderService(db)
	order, err := svc.Create(user.ID, CreateOrderInput{
		Items: []OrderLineInput{
			{MenuItemID: espresso.ID, Quantity: 2},
			{MenuItemID: latte.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	// 2 × 3.50 + 1 × 4.75
	assert.Equal(t, 11.75, order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 7.00, order.Items[0].TotalPrice)
	assert.Equal(t, 3.50, order.Items[0].UnitPrice)
	assert.Equal(t, 4.75, order.Items[1].TotalPrice)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
}

func TestCreateOrderEstimatesPreparationTime(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	espresso, latte := seedMenu(t, db)

	svc := NewOrderService(db)

	// Slowest item (5 min) plus the 10 minute buffer.
	order, err := svc.Create(user.ID, CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items: []OrderLineInput{
			{MenuItemID: espresso.ID, Quantity: 1},
			{MenuItemID: latte.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 15, order.EstimatedPreparationTime)

	// No item carries a positive prep time: fall back to 15.
	var zero models.MenuItem
	require.NoError(t, db.First(&zero, espresso.ID).Error)
	zero.PreparationTime = 0
	require.NoError(t, db.Save(&zero).Error)

	order2, err := svc.Create(user.ID, CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items:     []OrderLineInput{{MenuItemID: espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 15, order2.EstimatedPreparationTime)
}

func TestCreateOrderRejectsUnavailableItemAtomically(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	espresso, latte := seedMenu(t, db)

	latte.IsAvailable = false
	require.NoError(t, db.Save(latte).Error)

	svc := NewOrderService(db)
	_, err := svc.Create(user.ID, CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items: []OrderLineInput{
			{MenuItemID: espresso.ID, Quantity: 1},
			{MenuItemID: latte.ID, Quantity: 1},
		},
	})

	var unavailable *ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, latte.ID, unavailable.MenuItemID)
	assert.Equal(t, "unavailable", unavailable.Reason)

	// The rejected order left nothing behind.
	var orders, items int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&items)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestCreateOrderRejectsUnknownItem(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)

	svc := NewOrderService(db)
	_, err := svc.Create(user.ID, CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items:     []OrderLineInput{{MenuItemID: 999, Quantity: 1}},
	})

	var unavailable *ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "not found", unavailable.Reason)
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)

	svc := NewOrderService(db)
	_, err := svc.Create(user.ID, CreateOrderInput{})
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestCreateOrderResolvesTable(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	espresso, _ := seedMenu(t, db)
	first := seedTable(t, db, 1)
	second := seedTable(t, db, 2)

	svc := NewOrderService(db)
	line := []OrderLineInput{{MenuItemID: espresso.ID, Quantity: 1}}

	// Explicit table id wins.
	order, err := svc.Create(user.ID, CreateOrderInput{Items: line, TableID: second.ID})
	require.NoError(t, err)
	require.NotNil(t, order.TableID)
	assert.Equal(t, second.ID, *order.TableID)

	// Dine-in by table number.
	order, err = svc.Create(user.ID, CreateOrderInput{Items: line, TableNumber: 2})
	require.NoError(t, err)
	require.NotNil(t, order.TableID)
	assert.Equal(t, second.ID, *order.TableID)

	// Dine-in walk-in falls back to the first table.
	order, err = svc.Create(user.ID, CreateOrderInput{Items: line})
	require.NoError(t, err)
	require.NotNil(t, order.TableID)
	assert.Equal(t, first.ID, *order.TableID)

	// Takeaway binds no table.
	order, err = svc.Create(user.ID, CreateOrderInput{Items: line, OrderType: models.OrderTypeTakeaway})
	require.NoError(t, err)
	assert.Nil(t, order.TableID)

	// Unknown explicit id is an error, not a silent fallback.
	_, err = svc.Create(user.ID, CreateOrderInput{Items: line, TableID: 999})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrderWithNoTablesAtAll(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	espresso, _ := seedMenu(t, db)

	svc := NewOrderService(db)
	order, err := svc.Create(user.ID, CreateOrderInput{
		Items: []OrderLineInput{{MenuItemID: espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Nil(t, order.TableID)
}

func TestUpdateStatusFollowsStateMachine(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	espresso, _ := seedMenu(t, db)

	svc := NewOrderService(db)
	order, err := svc.Create(user.ID, CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items:     []OrderLineInput{{MenuItemID: espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Skipping a step is rejected.
	_, err = svc.UpdateStatus(order.ID, models.OrderReady)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// The forward chain works one step at a time.
	for _, status := range []string{
		models.OrderConfirmed, models.OrderPreparing,
		models.OrderReady, models.OrderServed, models.OrderCompleted,
	} {
		order, err = svc.UpdateStatus(order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, order.Status)
	}

	require.NotNil(t, order.CompletedAt)

	// Terminal: nothing moves out of completed.
	_, err = svc.UpdateStatus(order.ID, models.OrderCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelFromAnyNonTerminalStatus(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	espresso, _ := seedMenu(t, db)

	svc := NewOrderService(db)
	order, err := svc.Create(user.ID, CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items:     []OrderLineInput{{MenuItemID: espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	order, err = svc.UpdateStatus(order.ID, models.OrderConfirmed)
	require.NoError(t, err)
	order, err = svc.UpdateStatus(order.ID, models.OrderPreparing)
	require.NoError(t, err)

	order, err = svc.UpdateStatus(order.ID, models.OrderCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, order.Status)

	_, err = svc.UpdateStatus(order.ID, models.OrderConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCompletionReleasesTable(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	espresso, _ := seedMenu(t, db)
	table := seedTable(t, db, 1)

	// Occupy the table, then run an order on it to completion.
	tables := NewTableService(db)
	_, err := tables.Occupy(table.ID, user.ID)
	require.NoError(t, err)

	svc := NewOrderService(db)
	order, err := svc.Create(user.ID, CreateOrderInput{
		Items:   []OrderLineInput{{MenuItemID: espresso.ID, Quantity: 1}},
		TableID: table.ID,
	})
	require.NoError(t, err)

	for _, status := range []string{
		models.OrderConfirmed, models.OrderPreparing,
		models.OrderReady, models.OrderServed, models.OrderCompleted,
	} {
		order, err = svc.UpdateStatus(order.ID, status)
		require.NoError(t, err)
	}

	require.NotNil(t, order.CompletedAt)

	var got models.Table
	require.NoError(t, db.First(&got, table.ID).Error)
	assert.Equal(t, models.TableAvailable, got.Status)
	assert.Nil(t, got.OccupiedBy)
}

func TestUpdateStatusRejectsUnknownStatusAndOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.UpdateStatus(1, "weird")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(999, models.OrderConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemStatusIsIndependentOfOrderStatus(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	espresso, _ := seedMenu(t, db)

	svc := NewOrderService(db)
	order, err := svc.Create(user.ID, CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items:     []OrderLineInput{{MenuItemID: espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)

	item, err := svc.UpdateItemStatus(order.Items[0].ID, models.ItemServed)
	require.NoError(t, err)
	assert.Equal(t, models.ItemServed, item.ItemStatus)

	// Marking the line served did not advance the order.
	got, err := svc.Get(order.ID, user.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, got.Status)

	_, err = svc.UpdateItemStatus(order.Items[0].ID, "burnt")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetEnforcesOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, models.RoleCustomer)
	other := seedUser(t, db, models.RoleCustomer)
	admin := seedUser(t, db, models.RoleAdmin)
	espresso, _ := seedMenu(t, db)

	svc := NewOrderService(db)
	order, err := svc.Create(owner.ID, CreateOrderInput{
		OrderType: models.OrderTypeTakeaway,
		Items:     []OrderLineInput{{MenuItemID: espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.Get(order.ID, other.ID, false)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.Get(order.ID, admin.ID, true)
	assert.NoError(t, err)
}

func TestOrderNumbersAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		n := newOrderNumber()
		if seen[n] {
			t.Fatalf("duplicate order number %s", n)
		}
		seen[n] = true
	}
}

func TestOrderStatusValidationHelpers(t *testing.T) {
	assert.True(t, models.CanTransition(models.OrderPending, models.OrderConfirmed))
	assert.False(t, models.CanTransition(models.OrderPending, models.OrderReady))
	assert.False(t, models.CanTransition(models.OrderCancelled, models.OrderPending))
	assert.True(t, models.IsTerminalOrderStatus(models.OrderCompleted))
	assert.False(t, models.IsTerminalOrderStatus(models.OrderServed))
	assert.False(t, models.ValidOrderStatus("weird"))
}
