// Package app serves the order API: the REST contract the dashboard consumes.
package app

import (
	"net/http"

	"github.com/Renal37/order-dashboard/internal/logger"
	"github.com/Renal37/order-dashboard/internal/middlewares"
	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/go-chi/chi/v5"
)

type Config struct {
	// Endpoint is the address the server listens on.
	Endpoint string
}

type Router struct {
	config   Config
	registry models.OrderRegistry
}

func New(config Config, registry models.OrderRegistry) *Router {
	return &Router{config: config, registry: registry}
}

func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewares.ServiceInjectorMiddleware(
			middlewares.Provide(middlewares.OrderRegistryKey, router.registry),
		),
		logger.RequestLogger,
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middlewares.WriteJSONError(w, http.StatusNotFound, "Invalid endpoint")
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", ListOrders)
		r.With(middlewares.JSONMiddleware[models.OrderRequest]).Post("/", CreateOrder)
		r.Get("/{orderID}", GetOrder)
		r.With(middlewares.JSONMiddleware[models.StatusUpdate]).Patch("/{orderID}/status", UpdateOrderStatus)
		r.Delete("/{orderID}", DeleteOrder)
	})

	r.Get("/notifications", GetNotifications)
	r.Get("/health", GetHealth)

	return r
}

func (router *Router) Server() *http.Server {
	return &http.Server{
		Addr:    router.config.Endpoint,
		Handler: router.get(),
	}
}
