package services

import (
	"time"

	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

const growthWindow = 30 * 24 * time.Hour

// ComputeStats counts orders per status and compares orders created in the
// last 30 days with the older ones. Growth is 100 when there are no older orders.
func ComputeStats(orders []models.Order, now time.Time) models.OrderStats {
	stats := models.OrderStats{Total: len(orders)}

	var recent, previous int
	cutoff := now.Add(-growthWindow)

	for _, order := range orders {
		switch order.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusProcessing:
			stats.Processing++
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusCancelled:
			stats.Cancelled++
		}

		if order.CreatedAt.Before(cutoff) {
			previous++
		} else {
			recent++
		}
	}

	if previous == 0 {
		stats.OrderGrowth = "100"
		return stats
	}

	growth := decimal.NewFromInt(int64(recent - previous)).
		Div(decimal.NewFromInt(int64(previous))).
		Mul(decimal.NewFromInt(100))
	stats.OrderGrowth = growth.StringFixed(1)

	return stats
}

// ComputeRevenue sums total_amount over all orders and over COMPLETED ones,
// both rounded to 2 decimals.
func ComputeRevenue(orders []models.Order) models.Revenue {
	total := decimal.Zero
	completed := decimal.Zero

	for _, order := range orders {
		total = total.Add(order.TotalAmount)
		if order.Status == models.StatusCompleted {
			completed = completed.Add(order.TotalAmount)
		}
	}

	return models.Revenue{
		TotalOrders:      len(orders),
		TotalRevenue:     total.Round(2),
		CompletedRevenue: completed.Round(2),
	}
}
