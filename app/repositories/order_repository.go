package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"quickbites/app/models"
)

// CartLine is one (menu item, quantity) pair of a cart. Quantities are
// already normalised and positive by the time a line reaches the store.
type CartLine struct {
	MenuItemID uint
	Quantity   int
}

// OrderItemRow is one order line joined with the menu item it referenced.
// Price is the snapshot stored on the order item, not the current menu
// price.
type OrderItemRow struct {
	OrderID    uint    `json:"order_id"`
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// OrderRepository handles database operations for Order and OrderItem.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateFromCart validates the cart against live menu prices and persists
// the order with its line items as a single transaction.
//
// Each line is resolved in input order; a missing menu item aborts the
// whole operation with models.ErrNotFound naming the offending id, and
// the rollback guarantees no partial order is ever visible. The total is
// folded over the looked-up prices; client-supplied prices do not exist
// in this path.
func (r *OrderRepository) CreateFromCart(userID uint, lines []CartLine) (models.Order, error) {
	var order models.Order

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var total float64
		items := make([]models.OrderItem, 0, len(lines))

		for _, line := range lines {
			var item models.MenuItem
			if err := tx.First(&item, line.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: menu item %d", models.ErrNotFound, line.MenuItemID)
				}
				return fmt.Errorf("look up menu item %d: %w", line.MenuItemID, err)
			}

			total += item.Price * float64(line.Quantity)
			items = append(items, models.OrderItem{
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				Price:      item.Price, // snapshot at lookup time
			})
		}

		order = models.Order{
			UserID:     userID,
			TotalPrice: total,
			Status:     models.StatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
		order.Items = items

		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	return order, nil
}

// ListByUser returns the user's orders, most recent first.
func (r *OrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// ItemRows fetches the line items of the given orders joined with their
// menu item's name and image, in one query.
func (r *OrderRepository) ItemRows(orderIDs []uint) ([]OrderItemRow, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	var rows []OrderItemRow
	err := r.db.Table("order_items").
		Select("order_items.order_id, order_items.menu_item_id, order_items.quantity, order_items.price, menu_items.name, menu_items.image").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("order_items.order_id IN ?", orderIDs).
		Order("order_items.id").
		Scan(&rows).Error
	return rows, err
}
