package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderAPIStub(t *testing.T) *httptest.Server {
	r := chi.NewRouter()

	r.Get("/orders", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"order_id":"ORD-1","customer_id":"CUST-001","customer_name":"John Doe","items":[{"product_id":"RAM001","name":"RAM","quantity":2,"price":"189.99"}],"total_amount":"379.98","status":"PENDING","created_at":"2024-03-01T10:00:00"}]`)
	})

	r.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var order models.NewOrder
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&order))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{
			ID:           "ORD-2",
			CustomerID:   order.CustomerID,
			CustomerName: order.CustomerName,
			Items:        order.Items,
			TotalAmount:  order.TotalAmount,
			Status:       models.StatusPending,
		})
	})

	r.Patch("/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != "ORD-1" {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error":"Order not found"}`)
			return
		}

		var update models.StatusUpdate
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&update))

		json.NewEncoder(w).Encode(models.Order{ID: "ORD-1", Status: update.Status})
	})

	r.Delete("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"message":"Order deleted successfully"}`)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	r.Get("/notifications", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":"evt-1","type":"info","message":"New order ORD-9 created","order_id":"ORD-9","event":"ORDER_CREATED","timestamp":"2024-03-01T10:00:00.123456"}]`)
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return ts
}

func TestAPIClient(t *testing.T) {
	ts := newOrderAPIStub(t)
	client := NewAPIClient(ts.URL+"/", time.Second)
	ctx := context.Background()

	t.Run("Should list orders", func(t *testing.T) {
		orders, err := client.ListOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)

		assert.Equal(t, "ORD-1", orders[0].ID)
		assert.Equal(t, "379.98", orders[0].TotalAmount.StringFixed(2))
		assert.Equal(t, 2024, orders[0].CreatedAt.Year())
	})

	t.Run("Should create an order", func(t *testing.T) {
		created, err := client.CreateOrder(ctx, models.NewOrder{
			CustomerID:  "CUST-001",
			Items:       []models.OrderItem{{ProductID: "RAM001", Quantity: 1, Price: decimal.RequireFromString("189.99")}},
			TotalAmount: decimal.RequireFromString("189.99"),
		})
		require.NoError(t, err)
		assert.Equal(t, "ORD-2", created.ID)
		assert.Equal(t, models.StatusPending, created.Status)
	})

	t.Run("Should update status", func(t *testing.T) {
		updated, err := client.UpdateOrderStatus(ctx, "ORD-1", models.StatusProcessing)
		require.NoError(t, err)
		assert.Equal(t, models.StatusProcessing, updated.Status)
	})

	t.Run("Should return a typed error for unknown orders", func(t *testing.T) {
		_, err := client.UpdateOrderStatus(ctx, "ORD-404", models.StatusProcessing)
		require.ErrorIs(t, err, ErrNotFound)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Order not found", apiErr.Message)
	})

	t.Run("Should delete an order", func(t *testing.T) {
		confirmation, err := client.DeleteOrder(ctx, "ORD-1")
		require.NoError(t, err)
		assert.Equal(t, "Order deleted successfully", confirmation.Message)
	})

	t.Run("Should treat a non-2xx health response as failure", func(t *testing.T) {
		_, err := client.CheckHealth(ctx)
		assert.Error(t, err)
	})

	t.Run("Should fetch notifications", func(t *testing.T) {
		notifications, err := client.FetchNotifications(ctx)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Equal(t, "ORDER_CREATED", notifications[0].Event)
		assert.False(t, notifications[0].Timestamp.IsZero())
	})

	t.Run("Should fail when the server is unreachable", func(t *testing.T) {
		unreachable := NewAPIClient("http://127.0.0.1:1", time.Second)

		_, err := unreachable.ListOrders(ctx)
		require.Error(t, err)

		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
	})
}

func newPlainTextStub(t *testing.T) *httptest.Server {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "OK")
	})

	r.Delete("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "Order deleted\n")
	})

	r.Get("/orders", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "[]")
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return ts
}

func TestAPIClientPlainTextSuccess(t *testing.T) {
	ts := newPlainTextStub(t)
	client := NewAPIClient(ts.URL, time.Second)
	ctx := context.Background()

	t.Run("Should treat a plain text 2xx health response as healthy", func(t *testing.T) {
		status, err := client.CheckHealth(ctx)
		require.NoError(t, err)
		assert.Equal(t, "OK", status.Status)

		store := NewStore()
		assert.Equal(t, models.HealthOK, NewHealthMonitor(client, store, 0).Check(ctx))
		assert.Empty(t, store.Snapshot().Banner)
	})

	t.Run("Should treat a plain text 2xx delete response as deleted", func(t *testing.T) {
		confirmation, err := client.DeleteOrder(ctx, "ORD-1")
		require.NoError(t, err)
		assert.Equal(t, "Order deleted", confirmation.Message)

		notifications := NewNotificationStore()
		vm := NewOrderViewModel(client, nil, NewStore(), notifications)

		require.NoError(t, vm.Remove(ctx, "ORD-1"))

		list := notifications.List()
		require.Len(t, list, 1)
		assert.Equal(t, models.NotificationSuccess, list[0].Type)
		assert.Equal(t, "Order ORD-1 deleted successfully", list[0].Message)
	})
}
