package router

import (
	"net/http"

	"github.com/Renal37/order-dashboard/internal/middlewares"
	"github.com/Renal37/order-dashboard/internal/models"
)

func GetInventory(w http.ResponseWriter, r *http.Request) {
	catalog := middlewares.GetServiceFromContext[models.Catalog](w, r, middlewares.CatalogKey)
	if catalog == nil {
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, (*catalog).SearchProducts(r.URL.Query().Get("search")))
}

func GetCustomers(w http.ResponseWriter, r *http.Request) {
	catalog := middlewares.GetServiceFromContext[models.Catalog](w, r, middlewares.CatalogKey)
	if catalog == nil {
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, (*catalog).Customers())
}
