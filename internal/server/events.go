package server

import (
	"quickbites/app/services"
	"quickbites/pkg/event"
	"quickbites/pkg/logger"
	"quickbites/pkg/metrics"
)

// RegisterListeners attaches the domain event listeners. Services fire
// events; metrics and audit logging live here so the services stay free
// of observability concerns.
func RegisterListeners() {
	event.Listen("user.registered", func(payload interface{}) {
		metrics.UsersRegistered.Inc()
	})

	event.Listen("order.created", func(payload interface{}) {
		created, ok := payload.(services.OrderCreated)
		if !ok {
			return
		}
		metrics.OrdersCreated.Inc()
		metrics.OrderValue.Observe(created.TotalPrice)
		logger.Info("order placed",
			"order_id", created.OrderID,
			"user_id", created.UserID,
			"total", created.TotalPrice,
			"lines", created.Lines,
		)
	})
}
