package router

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Renal37/order-dashboard/internal/middlewares"
	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/Renal37/order-dashboard/internal/services"
	"github.com/go-chi/chi/v5"
)

type dashboardResponse struct {
	Stats         models.OrderStats  `json:"stats"`
	RecentOrders  []models.Order     `json:"recent_orders"`
	Banner        string             `json:"banner,omitempty"`
	Loading       bool               `json:"loading"`
	Health        models.HealthState `json:"health"`
	Notifications int                `json:"notifications"`
}

type ordersResponse struct {
	Orders   []models.Order `json:"orders"`
	Deleting []string       `json:"deleting"`
}

func GetDashboard(w http.ResponseWriter, r *http.Request) {
	board := middlewares.GetServiceFromContext[models.OrderBoard](w, r, middlewares.OrderBoardKey)
	if board == nil {
		return
	}

	center := middlewares.GetServiceFromContext[models.NotificationCenter](w, r, middlewares.NotificationCenterKey)
	if center == nil {
		return
	}

	state := (*board).Snapshot()

	middlewares.EncodeJSONResponse(w, http.StatusOK, dashboardResponse{
		Stats:         services.ComputeStats(state.Orders, time.Now()),
		RecentOrders:  (*board).Recent(services.RecentOrdersLimit),
		Banner:        state.Banner,
		Loading:       state.Loading,
		Health:        state.Health,
		Notifications: len((*center).List()),
	})
}

func GetOrders(w http.ResponseWriter, r *http.Request) {
	board := middlewares.GetServiceFromContext[models.OrderBoard](w, r, middlewares.OrderBoardKey)
	if board == nil {
		return
	}

	state := (*board).Snapshot()

	middlewares.EncodeJSONResponse(w, http.StatusOK, ordersResponse{Orders: state.Orders, Deleting: state.Deleting})
}

func RefreshOrders(w http.ResponseWriter, r *http.Request) {
	board := middlewares.GetServiceFromContext[models.OrderBoard](w, r, middlewares.OrderBoardKey)
	if board == nil {
		return
	}

	if err := (*board).Refresh(r.Context()); err != nil {
		middlewares.WriteJSONError(w, http.StatusBadGateway, services.BannerFetchFailed)
		return
	}

	state := (*board).Snapshot()

	middlewares.EncodeJSONResponse(w, http.StatusOK, ordersResponse{Orders: state.Orders, Deleting: state.Deleting})
}

func QuoteOrder(w http.ResponseWriter, r *http.Request) {
	draft, ok := middlewares.GetParsedJSONData[models.OrderDraft](w, r)
	if !ok {
		return
	}

	catalog := middlewares.GetServiceFromContext[models.Catalog](w, r, middlewares.CatalogKey)
	if catalog == nil {
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, services.QuoteDraft(draft, *catalog))
}

func CreateOrder(w http.ResponseWriter, r *http.Request) {
	draft, ok := middlewares.GetParsedJSONData[models.OrderDraft](w, r)
	if !ok {
		return
	}

	board := middlewares.GetServiceFromContext[models.OrderBoard](w, r, middlewares.OrderBoardKey)
	if board == nil {
		return
	}

	order, err := (*board).Create(r.Context(), draft)
	if err != nil {
		writeIntentError(w, err, services.MsgCreateFailed)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusCreated, order)
}

func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	update, ok := middlewares.GetParsedJSONData[models.StatusUpdate](w, r)
	if !ok {
		return
	}

	board := middlewares.GetServiceFromContext[models.OrderBoard](w, r, middlewares.OrderBoardKey)
	if board == nil {
		return
	}

	order, err := (*board).ChangeStatus(r.Context(), chi.URLParam(r, "id"), update.Status)
	if err != nil {
		writeIntentError(w, err, services.MsgUpdateFailed)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, order)
}

func DeleteOrder(w http.ResponseWriter, r *http.Request) {
	board := middlewares.GetServiceFromContext[models.OrderBoard](w, r, middlewares.OrderBoardKey)
	if board == nil {
		return
	}

	orderID := chi.URLParam(r, "id")

	if err := (*board).Remove(r.Context(), orderID); err != nil {
		writeIntentError(w, err, services.MsgDeleteFailed)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, models.DeleteConfirmation{
		Message: fmt.Sprintf("Order %s deleted successfully", orderID),
	})
}

func GetAnalytics(w http.ResponseWriter, r *http.Request) {
	board := middlewares.GetServiceFromContext[models.OrderBoard](w, r, middlewares.OrderBoardKey)
	if board == nil {
		return
	}

	orders, _ := (*board).View(services.ViewAnalytics)

	middlewares.EncodeJSONResponse(w, http.StatusOK, services.ComputeRevenue(orders))
}

func writeIntentError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &validationErr):
		middlewares.WriteJSONError(w, http.StatusUnprocessableEntity, validationErr.Message)
	case errors.Is(err, services.ErrOrderBusy):
		middlewares.WriteJSONError(w, http.StatusConflict, "Order has an action in progress")
	default:
		middlewares.WriteJSONError(w, http.StatusBadGateway, services.UserMessage(err, fallback))
	}
}
