package router

import (
	"net/http"

	"github.com/Renal37/order-dashboard/internal/middlewares"
	"github.com/Renal37/order-dashboard/internal/models"
)

type healthResponse struct {
	Health models.HealthState `json:"health"`
	Banner string             `json:"banner,omitempty"`
}

func GetHealth(w http.ResponseWriter, r *http.Request) {
	board := middlewares.GetServiceFromContext[models.OrderBoard](w, r, middlewares.OrderBoardKey)
	if board == nil {
		return
	}

	state := (*board).Snapshot()

	middlewares.EncodeJSONResponse(w, http.StatusOK, healthResponse{Health: state.Health, Banner: state.Banner})
}
