package router

import (
	"net/http"

	"github.com/Renal37/order-dashboard/internal/logger"
	"github.com/Renal37/order-dashboard/internal/middlewares"
	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/go-chi/chi/v5"
)

type Config struct {
	Endpoint string
}

// Router serves the dashboard views and accepts user intents. Business rules
// live in the services it is given.
type Router struct {
	config        Config
	board         models.OrderBoard
	notifications models.NotificationCenter
	catalog       models.Catalog
}

func New(
	config Config,
	board models.OrderBoard,
	notifications models.NotificationCenter,
	catalog models.Catalog,
) *Router {
	return &Router{
		config,
		board,
		notifications,
		catalog,
	}
}

func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewares.ServiceInjectorMiddleware(
			middlewares.Provide(middlewares.OrderBoardKey, router.board),
			middlewares.Provide(middlewares.NotificationCenterKey, router.notifications),
			middlewares.Provide(middlewares.CatalogKey, router.catalog),
		),
		logger.RequestLogger,
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", GetDashboard)
		r.Get("/analytics", GetAnalytics)
		r.Get("/health", GetHealth)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", GetOrders)
			r.With(middlewares.JSONMiddleware[models.OrderDraft]).Post("/", CreateOrder)
			r.Post("/refresh", RefreshOrders)
			r.With(middlewares.JSONMiddleware[models.OrderDraft]).Post("/quote", QuoteOrder)
			r.With(middlewares.JSONMiddleware[models.StatusUpdate]).Patch("/{id}/status", UpdateOrderStatus)
			r.Delete("/{id}", DeleteOrder)
		})

		r.Get("/inventory", GetInventory)
		r.Get("/customers", GetCustomers)

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", GetNotifications)
			r.Delete("/", ClearNotifications)
			r.Delete("/{id}", DismissNotification)
		})
	})

	return r
}

func (router *Router) Server() *http.Server {
	return &http.Server{
		Addr:    router.config.Endpoint,
		Handler: router.get(),
	}
}
