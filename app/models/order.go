package models

import "gorm.io/gorm"

// StatusPending is the only order status in scope; orders are created
// pending and never transition.
const StatusPending = "pending"

// Order is a placed order. TotalPrice is always server-computed from the
// menu prices in force at creation time; it is never client-supplied.
type Order struct {
	gorm.Model
	UserID     uint        `gorm:"not null;index" json:"user_id"`
	TotalPrice float64     `gorm:"not null"       json:"total_price"`
	Status     string      `gorm:"size:50;default:pending" json:"status"`
	Items      []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem is one line of an order. Price is the menu item's price
// captured at order time, independent of later menu price changes.
type OrderItem struct {
	gorm.Model
	OrderID    uint    `gorm:"not null;index" json:"order_id"`
	MenuItemID uint    `gorm:"not null;index" json:"menu_item_id"`
	Quantity   int     `gorm:"not null"       json:"quantity"`
	Price      float64 `gorm:"not null"       json:"price"`
}
