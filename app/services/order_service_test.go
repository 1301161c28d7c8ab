package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"quickbites/app/models"
	"quickbites/app/repositories"
	"quickbites/app/services"
)

func newOrderService(t *testing.T) (*services.OrderService, *gorm.DB, []models.MenuItem) {
	t.Helper()
	db := newTestDB(t)
	items := seedMenu(t, db)
	return services.NewOrderService(repositories.NewOrderRepository(db)), db, items
}

func intPtr(n int) *int { return &n }

func TestCreateOrderComputesTotalFromMenuPrices(t *testing.T) {
	svc, db, items := newOrderService(t)
	burger := items[0] // 349

	orderID, total, err := svc.CreateOrder(1, []services.CartLineInput{
		{MenuItemID: burger.ID, Quantity: intPtr(2)},
	})
	require.NoError(t, err)
	assert.Equal(t, 698.0, total)

	var order models.Order
	require.NoError(t, db.First(&order, orderID).Error)
	assert.Equal(t, uint(1), order.UserID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 698.0, order.TotalPrice)

	var lines []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", orderID).Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.Equal(t, burger.ID, lines[0].MenuItemID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 349.0, lines[0].Price)
}

func TestCreateOrderPersistedItemsSumToTotal(t *testing.T) {
	svc, db, items := newOrderService(t)

	orderID, total, err := svc.CreateOrder(1, []services.CartLineInput{
		{MenuItemID: items[0].ID, Quantity: intPtr(3)},
		{MenuItemID: items[1].ID, Quantity: intPtr(1)},
		{MenuItemID: items[0].ID}, // nil quantity defaults to 1
	})
	require.NoError(t, err)
	assert.Equal(t, 349.0*3+499+349, total)

	var lines []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", orderID).Find(&lines).Error)
	require.Len(t, lines, 3)

	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Quantity)
	}
	assert.Equal(t, total, sum)
}

func TestCreateOrderUnknownItemLeavesNothingBehind(t *testing.T) {
	svc, db, items := newOrderService(t)

	_, _, err := svc.CreateOrder(1, []services.CartLineInput{
		{MenuItemID: items[0].ID, Quantity: intPtr(1)},
		{MenuItemID: 9999, Quantity: intPtr(1)},
	})
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Contains(t, err.Error(), "9999")

	// All-or-nothing: the valid first line must not have been written.
	var orders, orderItems int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&orderItems).Error)
	assert.Zero(t, orders)
	assert.Zero(t, orderItems)
}

func TestCreateOrderRejectsBadCarts(t *testing.T) {
	svc, _, items := newOrderService(t)

	_, _, err := svc.CreateOrder(1, nil)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, _, err = svc.CreateOrder(1, []services.CartLineInput{
		{MenuItemID: items[0].ID, Quantity: intPtr(0)},
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, _, err = svc.CreateOrder(1, []services.CartLineInput{
		{MenuItemID: items[0].ID, Quantity: intPtr(-2)},
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateOrderAllowsUnavailableItem(t *testing.T) {
	svc, _, items := newOrderService(t)
	special := items[2] // available = false

	_, total, err := svc.CreateOrder(1, []services.CartLineInput{
		{MenuItemID: special.ID, Quantity: intPtr(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, 599.0, total)
}

func TestListOrdersNewestFirstWithSnapshotPrices(t *testing.T) {
	svc, db, items := newOrderService(t)
	burger := items[0]

	firstID, _, err := svc.CreateOrder(7, []services.CartLineInput{
		{MenuItemID: burger.ID, Quantity: intPtr(2)},
	})
	require.NoError(t, err)

	secondID, _, err := svc.CreateOrder(7, []services.CartLineInput{
		{MenuItemID: burger.ID, Quantity: intPtr(1)},
	})
	require.NoError(t, err)

	// A later price change must not leak into history.
	require.NoError(t, db.Model(&models.MenuItem{}).
		Where("id = ?", burger.ID).
		Update("price", 999).Error)

	summaries, err := svc.ListOrders(7)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, secondID, summaries[0].ID)
	assert.Equal(t, firstID, summaries[1].ID)

	require.Len(t, summaries[1].Items, 1)
	line := summaries[1].Items[0]
	assert.Equal(t, "Classic Burger", line.Name)
	assert.Equal(t, "burger-classic.jpg", line.Image)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 349.0, line.Price)
	assert.Equal(t, 698.0, summaries[1].TotalPrice)
}

func TestListOrdersScopedToUser(t *testing.T) {
	svc, _, items := newOrderService(t)

	_, _, err := svc.CreateOrder(1, []services.CartLineInput{{MenuItemID: items[0].ID}})
	require.NoError(t, err)
	_, _, err = svc.CreateOrder(2, []services.CartLineInput{{MenuItemID: items[1].ID}})
	require.NoError(t, err)

	mine, err := svc.ListOrders(1)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	none, err := svc.ListOrders(3)
	require.NoError(t, err)
	assert.Empty(t, none)
}
