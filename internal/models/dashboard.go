package models

import "github.com/shopspring/decimal"

type HealthState string

const (
	HealthUnknown     HealthState = "unknown"
	HealthOK          HealthState = "ok"
	HealthUnavailable HealthState = "unavailable"
)

// DashboardState is the whole view state driving the presentation layer.
type DashboardState struct {
	Orders   []Order     `json:"orders"`
	Loading  bool        `json:"loading"`
	Banner   string      `json:"banner,omitempty"`
	Deleting []string    `json:"deleting"`
	Health   HealthState `json:"health"`
}

type OrderStats struct {
	Total       int    `json:"total"`
	Pending     int    `json:"pending"`
	Processing  int    `json:"processing"`
	Completed   int    `json:"completed"`
	Cancelled   int    `json:"cancelled"`
	OrderGrowth string `json:"order_growth"`
}

type Revenue struct {
	TotalOrders      int             `json:"total_orders"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	CompletedRevenue decimal.Decimal `json:"completed_revenue"`
}

type Quote struct {
	Subtotals []decimal.Decimal `json:"subtotals"`
	Total     decimal.Decimal   `json:"total"`
}
