package app

import (
	"errors"
	"net/http"

	"github.com/Renal37/order-dashboard/internal/logger"
	"github.com/Renal37/order-dashboard/internal/middlewares"
	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/Renal37/order-dashboard/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgOrderNotFound = "Order not found"
	msgOrderDeleted  = "Order deleted successfully"
)

func ListOrders(w http.ResponseWriter, r *http.Request) {
	registry := middlewares.GetServiceFromContext[models.OrderRegistry](w, r, middlewares.OrderRegistryKey)
	if registry == nil {
		return
	}

	orders, err := (*registry).List(r.Context())
	if err != nil {
		logger.Log.Error("failed to list orders", zap.Error(err))
		middlewares.WriteJSONError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, orders)
}

func CreateOrder(w http.ResponseWriter, r *http.Request) {
	request, ok := middlewares.GetParsedJSONData[models.OrderRequest](w, r)
	if !ok {
		return
	}

	registry := middlewares.GetServiceFromContext[models.OrderRegistry](w, r, middlewares.OrderRegistryKey)
	if registry == nil {
		return
	}

	order, err := (*registry).Create(r.Context(), request)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			middlewares.WriteJSONError(w, http.StatusBadRequest, validationErr.Message)
			return
		}

		logger.Log.Error("failed to create order", zap.Error(err))
		middlewares.WriteJSONError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusCreated, order)
}

func GetOrder(w http.ResponseWriter, r *http.Request) {
	registry := middlewares.GetServiceFromContext[models.OrderRegistry](w, r, middlewares.OrderRegistryKey)
	if registry == nil {
		return
	}

	order, err := (*registry).Get(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			middlewares.WriteJSONError(w, http.StatusNotFound, msgOrderNotFound)
			return
		}

		logger.Log.Error("failed to get order", zap.Error(err))
		middlewares.WriteJSONError(w, http.StatusInternalServerError, "Failed to get order")
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, order)
}

func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	update, ok := middlewares.GetParsedJSONData[models.StatusUpdate](w, r)
	if !ok {
		return
	}

	registry := middlewares.GetServiceFromContext[models.OrderRegistry](w, r, middlewares.OrderRegistryKey)
	if registry == nil {
		return
	}

	order, err := (*registry).UpdateStatus(r.Context(), chi.URLParam(r, "orderID"), update.Status)
	if err != nil {
		var validationErr *services.ValidationError

		switch {
		case errors.As(err, &validationErr):
			middlewares.WriteJSONError(w, http.StatusBadRequest, validationErr.Message)
		case errors.Is(err, services.ErrNotFound):
			middlewares.WriteJSONError(w, http.StatusNotFound, msgOrderNotFound)
		default:
			logger.Log.Error("failed to update order status", zap.Error(err))
			middlewares.WriteJSONError(w, http.StatusInternalServerError, "Failed to update order status")
		}
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, order)
}

func DeleteOrder(w http.ResponseWriter, r *http.Request) {
	registry := middlewares.GetServiceFromContext[models.OrderRegistry](w, r, middlewares.OrderRegistryKey)
	if registry == nil {
		return
	}

	if err := (*registry).Delete(r.Context(), chi.URLParam(r, "orderID")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			middlewares.WriteJSONError(w, http.StatusNotFound, msgOrderNotFound)
			return
		}

		logger.Log.Error("failed to delete order", zap.Error(err))
		middlewares.WriteJSONError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, models.DeleteConfirmation{Message: msgOrderDeleted})
}
