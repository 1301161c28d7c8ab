package controllers

import (
	"net/http"

	"quickbites/app/services"
	"quickbites/pkg/bind"
	"quickbites/pkg/logger"
	"quickbites/pkg/middleware"
	"quickbites/pkg/response"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

type cartLineRequest struct {
	ID       uint `json:"id"       validate:"required"`
	Quantity *int `json:"quantity"`
}

type createOrderRequest struct {
	Items []cartLineRequest `json:"items" validate:"required"`
}

// Create places an order for the authenticated user. The total is always
// computed server-side from the current menu prices.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var body createOrderRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	cart := make([]services.CartLineInput, len(body.Items))
	for i, line := range body.Items {
		cart[i] = services.CartLineInput{MenuItemID: line.ID, Quantity: line.Quantity}
	}

	orderID, total, err := c.orders.CreateOrder(userID, cart)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("order created",
		"order_id", orderID,
		"user_id", userID,
		"total", total,
	)
	response.Created(w, map[string]interface{}{
		"order_id":    orderID,
		"total_price": total,
	})
}

// Index returns the authenticated user's order history, newest first.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	orders, err := c.orders.ListOrders(userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]interface{}{"orders": orders})
}
