package database

import (
	"testing"
	"time"

	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusDB(t *testing.T) {
	var status OrderStatusDB

	require.NoError(t, status.Scan("COMPLETED"))
	assert.Equal(t, models.StatusCompleted, status.OrderStatus)

	value, err := status.Value()
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", value)

	assert.Error(t, status.Scan(42))
}

func TestOrderDBToModel(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)

	order, err := OrderDB{
		ID:           "ORD-1A2B3C4D",
		CustomerID:   "CUST-001",
		CustomerName: "John Doe",
		Items:        []byte(`[{"product_id":"RAM001","name":"RAM","quantity":2,"price":189.99}]`),
		TotalAmount:  "379.98",
		Status:       OrderStatusDB{models.StatusPending},
		CreatedAt:    createdAt,
		UpdatedAt:    &updatedAt,
	}.ToModel()
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "379.98", order.TotalAmount.StringFixed(2))
	assert.True(t, order.CreatedAt.Equal(createdAt))
	require.NotNil(t, order.UpdatedAt)
	assert.True(t, order.UpdatedAt.Equal(updatedAt))

	_, err = OrderDB{ID: "ORD-BAD", Items: []byte(`{`), TotalAmount: "1"}.ToModel()
	assert.Error(t, err)

	_, err = OrderDB{ID: "ORD-BAD", Items: []byte(`[]`), TotalAmount: "abc"}.ToModel()
	assert.Error(t, err)
}
