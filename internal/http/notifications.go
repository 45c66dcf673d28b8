package router

import (
	"net/http"

	"github.com/Renal37/order-dashboard/internal/middlewares"
	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/go-chi/chi/v5"
)

func GetNotifications(w http.ResponseWriter, r *http.Request) {
	center := middlewares.GetServiceFromContext[models.NotificationCenter](w, r, middlewares.NotificationCenterKey)
	if center == nil {
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, (*center).List())
}

// DismissNotification answers 204 whether or not the id was known.
func DismissNotification(w http.ResponseWriter, r *http.Request) {
	center := middlewares.GetServiceFromContext[models.NotificationCenter](w, r, middlewares.NotificationCenterKey)
	if center == nil {
		return
	}

	(*center).Dismiss(chi.URLParam(r, "id"))

	w.WriteHeader(http.StatusNoContent)
}

func ClearNotifications(w http.ResponseWriter, r *http.Request) {
	center := middlewares.GetServiceFromContext[models.NotificationCenter](w, r, middlewares.NotificationCenterKey)
	if center == nil {
		return
	}

	(*center).Clear()

	w.WriteHeader(http.StatusNoContent)
}
