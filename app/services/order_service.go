package services

import (
	"fmt"
	"time"

	"quickbites/app/models"
	"quickbites/app/repositories"
	"quickbites/pkg/event"
)

// CartLineInput is one submitted cart line. Quantity nil means 1; a
// supplied quantity must be positive.
type CartLineInput struct {
	MenuItemID uint
	Quantity   *int
}

// OrderLine is one line of an order summary, joined with the menu item's
// name and image. Price is the snapshot captured at order time.
type OrderLine struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// OrderSummary is one order in a user's history with its resolved lines.
type OrderSummary struct {
	ID         uint        `json:"id"`
	TotalPrice float64     `json:"total_price"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	Items      []OrderLine `json:"items"`
}

// OrderCreated is the payload fired on the event bus after a successful
// order placement.
type OrderCreated struct {
	OrderID    uint
	UserID     uint
	TotalPrice float64
	Lines      int
}

// OrderService owns cart validation, pricing, and order history assembly.
type OrderService struct {
	orders *repositories.OrderRepository
}

func NewOrderService(orders *repositories.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// CreateOrder validates the cart, prices it against the live menu inside
// a single store transaction, and returns the new order id and computed
// total. A line referencing a missing item aborts the whole order.
func (s *OrderService) CreateOrder(userID uint, cart []CartLineInput) (orderID uint, total float64, err error) {
	if len(cart) == 0 {
		return 0, 0, fmt.Errorf("%w: cart is empty", models.ErrValidation)
	}

	lines := make([]repositories.CartLine, 0, len(cart))
	for _, in := range cart {
		qty := 1
		if in.Quantity != nil {
			qty = *in.Quantity
		}
		if qty <= 0 {
			return 0, 0, fmt.Errorf("%w: quantity for menu item %d must be positive", models.ErrValidation, in.MenuItemID)
		}
		lines = append(lines, repositories.CartLine{MenuItemID: in.MenuItemID, Quantity: qty})
	}

	order, err := s.orders.CreateFromCart(userID, lines)
	if err != nil {
		return 0, 0, err
	}

	event.Fire("order.created", OrderCreated{
		OrderID:    order.ID,
		UserID:     userID,
		TotalPrice: order.TotalPrice,
		Lines:      len(order.Items),
	})

	return order.ID, order.TotalPrice, nil
}

// ListOrders returns the user's order history, most recent first, each
// order carrying its line items joined with menu name and image.
func (s *OrderService) ListOrders(userID uint) ([]OrderSummary, error) {
	orders, err := s.orders.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	ids := make([]uint, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	rows, err := s.orders.ItemRows(ids)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}

	byOrder := make(map[uint][]OrderLine, len(orders))
	for _, row := range rows {
		byOrder[row.OrderID] = append(byOrder[row.OrderID], OrderLine{
			MenuItemID: row.MenuItemID,
			Name:       row.Name,
			Image:      row.Image,
			Quantity:   row.Quantity,
			Price:      row.Price,
		})
	}

	summaries := make([]OrderSummary, len(orders))
	for i, o := range orders {
		summaries[i] = OrderSummary{
			ID:         o.ID,
			TotalPrice: o.TotalPrice,
			Status:     o.Status,
			CreatedAt:  o.CreatedAt,
			Items:      byOrder[o.ID],
		}
	}
	return summaries, nil
}
