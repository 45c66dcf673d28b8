package app

import (
	"net/http"

	"github.com/Renal37/order-dashboard/internal/logger"
	"github.com/Renal37/order-dashboard/internal/middlewares"
	"github.com/Renal37/order-dashboard/internal/models"
	"go.uber.org/zap"
)

func GetHealth(w http.ResponseWriter, r *http.Request) {
	registry := middlewares.GetServiceFromContext[models.OrderRegistry](w, r, middlewares.OrderRegistryKey)
	if registry == nil {
		return
	}

	if err := (*registry).Health(r.Context()); err != nil {
		logger.Log.Warn("health check failed", zap.Error(err))
		middlewares.EncodeJSONResponse(w, http.StatusServiceUnavailable, models.HealthStatus{Status: "unavailable"})
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, models.HealthStatus{Status: "ok"})
}

// GetNotifications returns pending order events. Each event is returned once.
func GetNotifications(w http.ResponseWriter, r *http.Request) {
	registry := middlewares.GetServiceFromContext[models.OrderRegistry](w, r, middlewares.OrderRegistryKey)
	if registry == nil {
		return
	}

	notifications, err := (*registry).Notifications(r.Context())
	if err != nil {
		logger.Log.Error("failed to drain notifications", zap.Error(err))
		middlewares.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, notifications)
}
