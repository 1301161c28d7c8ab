package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"quickbites/app/controllers"
	"quickbites/app/repositories"
	"quickbites/app/services"
	"quickbites/config"
	"quickbites/pkg/metrics"
	"quickbites/pkg/middleware"
	"quickbites/pkg/reqid"
	"quickbites/pkg/response"
)

// Handler wires repositories, services and controllers onto a chi router
// with the full middleware stack. The store handle is injected so tests
// can build a handler over an isolated database.
func Handler(db *gorm.DB) http.Handler {
	users := repositories.NewUserRepository(db)
	menu := repositories.NewMenuRepository(db)
	orders := repositories.NewOrderRepository(db)

	authController := controllers.NewAuthController(services.NewAccountService(users))
	menuController := controllers.NewMenuController(services.NewMenuService(menu))
	orderController := controllers.NewOrderController(services.NewOrderService(orders))

	r := chi.NewRouter()

	// Global middleware (outermost first): metrics wraps everything for
	// accurate total latency; recovery before anything that can panic;
	// request id before the logger so log lines carry it.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(config.RateLimitPerMinute(), time.Minute))

	r.Get("/metrics", metrics.Handler())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", authController.Register)
		api.Post("/auth/login", authController.Login)

		api.Get("/menu", menuController.List)
		api.Get("/menu/{id}", menuController.Show)

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.Auth)

			protected.Get("/auth/profile", authController.Profile)
			protected.Put("/auth/profile", authController.UpdateProfile)

			protected.Post("/orders", orderController.Create)
			protected.Get("/orders", orderController.Index)
		})
	})

	return r
}
