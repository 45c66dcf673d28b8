package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Renal37/order-dashboard/internal/catalog"
	"github.com/Renal37/order-dashboard/internal/models"
	mock_models "github.com/Renal37/order-dashboard/internal/models/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViewModel(t *testing.T) (*OrderViewModel, *mock_models.MockOrderAPI, *NotificationStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	api := mock_models.NewMockOrderAPI(ctrl)
	notifications := NewNotificationStore()

	return NewOrderViewModel(api, catalog.Default(), NewStore(), notifications), api, notifications
}

func testOrder(id string, status models.OrderStatus, total string) models.Order {
	return models.Order{
		ID:           id,
		CustomerID:   "CUST-001",
		CustomerName: "John Doe",
		TotalAmount:  decimal.RequireFromString(total),
		Status:       status,
	}
}

func TestOrderViewModelRefresh(t *testing.T) {
	t.Run("Should replace orders and clear the banner", func(t *testing.T) {
		vm, api, notifications := newTestViewModel(t)

		gomock.InOrder(
			api.EXPECT().ListOrders(gomock.Any()).Return(nil, errors.New("connection refused")),
			api.EXPECT().ListOrders(gomock.Any()).Return([]models.Order{testOrder("ORD-1", models.StatusPending, "10.00")}, nil),
		)

		require.Error(t, vm.Refresh(context.Background()))
		assert.Equal(t, BannerFetchFailed, vm.Snapshot().Banner)

		require.NoError(t, vm.Refresh(context.Background()))

		state := vm.Snapshot()
		assert.Empty(t, state.Banner)
		assert.False(t, state.Loading)
		require.Len(t, state.Orders, 1)
		assert.Equal(t, "ORD-1", state.Orders[0].ID)
		assert.Equal(t, 1, notifications.Len())
	})

	t.Run("Should keep previous orders when the fetch fails", func(t *testing.T) {
		vm, api, notifications := newTestViewModel(t)

		gomock.InOrder(
			api.EXPECT().ListOrders(gomock.Any()).Return([]models.Order{testOrder("ORD-1", models.StatusPending, "10.00")}, nil),
			api.EXPECT().ListOrders(gomock.Any()).Return(nil, errors.New("timeout")),
		)

		require.NoError(t, vm.Refresh(context.Background()))
		require.Error(t, vm.Refresh(context.Background()))

		state := vm.Snapshot()
		assert.Len(t, state.Orders, 1)
		assert.Equal(t, BannerFetchFailed, state.Banner)

		list := notifications.List()
		require.Len(t, list, 1)
		assert.Equal(t, models.NotificationError, list[0].Type)
		assert.Equal(t, "Failed to fetch orders", list[0].Message)
	})
}

func TestOrderViewModelCreate(t *testing.T) {
	t.Run("Should create the order and refresh", func(t *testing.T) {
		vm, api, notifications := newTestViewModel(t)

		price := decimal.RequireFromString("189.99")
		draft := models.OrderDraft{
			CustomerID: "CUST-001",
			Items:      []models.DraftItem{{ProductID: "RAM001", Quantity: 2, Price: &price}},
		}

		created := testOrder("ORD-1", models.StatusPending, "379.98")

		gomock.InOrder(
			api.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, order models.NewOrder) (*models.Order, error) {
					assert.Equal(t, "John Doe", order.CustomerName)
					require.Len(t, order.Items, 1)
					assert.Equal(t, "Corsair Vengeance 32GB DDR5", order.Items[0].Name)
					assert.Equal(t, "379.98", order.Items[0].Subtotal().StringFixed(2))
					assert.Equal(t, "379.98", order.TotalAmount.StringFixed(2))
					return &created, nil
				},
			),
			api.EXPECT().ListOrders(gomock.Any()).Return([]models.Order{created}, nil),
		)

		order, err := vm.Create(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", order.ID)

		list := notifications.List()
		require.Len(t, list, 1)
		assert.Equal(t, models.NotificationSuccess, list[0].Type)
		assert.Contains(t, list[0].Message, "ORD-1")
		assert.Equal(t, "ORD-1", list[0].OrderID)
		assert.Len(t, vm.Orders(), 1)
	})

	testCases := []struct {
		testName        string
		draft           models.OrderDraft
		expectedMessage string
	}{
		{
			testName:        "Should reject a draft without customer",
			draft:           models.OrderDraft{Items: []models.DraftItem{{ProductID: "RAM001", Quantity: 1}}},
			expectedMessage: "Please select a customer",
		},
		{
			testName:        "Should reject a draft without items",
			draft:           models.OrderDraft{CustomerID: "CUST-001"},
			expectedMessage: "Please add at least one item",
		},
		{
			testName:        "Should reject an item without product",
			draft:           models.OrderDraft{CustomerID: "CUST-001", Items: []models.DraftItem{{Quantity: 1}}},
			expectedMessage: "Please select products for all items",
		},
		{
			testName:        "Should reject a zero quantity",
			draft:           models.OrderDraft{CustomerID: "CUST-001", Items: []models.DraftItem{{ProductID: "RAM001", Quantity: 0}}},
			expectedMessage: "Quantity must be at least 1 for all items",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			// No API expectations: any network call fails the test.
			vm, _, notifications := newTestViewModel(t)

			_, err := vm.Create(context.Background(), tc.draft)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.expectedMessage, validationErr.Message)

			list := notifications.List()
			require.Len(t, list, 1)
			assert.Equal(t, tc.expectedMessage, list[0].Message)
		})
	}

	t.Run("Should surface the server message", func(t *testing.T) {
		vm, api, notifications := newTestViewModel(t)

		api.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, &APIError{
			Method:     http.MethodPost,
			Path:       "/orders",
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid price: 0",
		})

		_, err := vm.Create(context.Background(), models.OrderDraft{
			CustomerID: "CUST-001",
			Items:      []models.DraftItem{{ProductID: "RAM001", Quantity: 1}},
		})
		require.Error(t, err)

		list := notifications.List()
		require.Len(t, list, 1)
		assert.Equal(t, "Invalid price: 0", list[0].Message)
		assert.Empty(t, vm.Orders())
	})
}

func TestOrderViewModelChangeStatusThenRemove(t *testing.T) {
	vm, api, notifications := newTestViewModel(t)

	completed := testOrder("ORD-1", models.StatusCompleted, "10.00")
	notFound := &APIError{Method: http.MethodDelete, Path: "/orders/ORD-1", StatusCode: http.StatusNotFound, Message: "Order not found"}

	gomock.InOrder(
		api.EXPECT().UpdateOrderStatus(gomock.Any(), "ORD-1", models.StatusCompleted).Return(&completed, nil),
		api.EXPECT().ListOrders(gomock.Any()).Return([]models.Order{}, nil),
		api.EXPECT().DeleteOrder(gomock.Any(), "ORD-1").Return(nil, notFound),
	)

	_, err := vm.ChangeStatus(context.Background(), "ORD-1", models.StatusCompleted)
	require.NoError(t, err)

	before := notifications.Len()

	err = vm.Remove(context.Background(), "ORD-1")
	require.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, before+1, notifications.Len())

	list := notifications.List()
	assert.Equal(t, models.NotificationError, list[0].Type)
	assert.Equal(t, "Failed to delete order", list[0].Message)
	assert.Empty(t, vm.Snapshot().Deleting)
}

func TestOrderViewModelChangeStatus(t *testing.T) {
	t.Run("Should report success with the new status", func(t *testing.T) {
		vm, api, notifications := newTestViewModel(t)

		updated := testOrder("ORD-1", models.StatusCompleted, "10.00")

		api.EXPECT().UpdateOrderStatus(gomock.Any(), "ORD-1", models.StatusCompleted).Return(&updated, nil)
		api.EXPECT().ListOrders(gomock.Any()).Return([]models.Order{updated}, nil)

		_, err := vm.ChangeStatus(context.Background(), "ORD-1", models.StatusCompleted)
		require.NoError(t, err)

		list := notifications.List()
		require.Len(t, list, 1)
		assert.Equal(t, "Order ORD-1 status updated to COMPLETED", list[0].Message)
	})

	t.Run("Should reject an unknown status before calling the API", func(t *testing.T) {
		vm, _, notifications := newTestViewModel(t)

		_, err := vm.ChangeStatus(context.Background(), "ORD-1", "SHIPPED")

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, 1, notifications.Len())
	})

	t.Run("Should emit one error when the update fails", func(t *testing.T) {
		vm, api, notifications := newTestViewModel(t)

		api.EXPECT().UpdateOrderStatus(gomock.Any(), "ORD-404", models.StatusCancelled).
			Return(nil, &APIError{Method: http.MethodPatch, Path: "/orders/ORD-404/status", StatusCode: http.StatusNotFound})

		_, err := vm.ChangeStatus(context.Background(), "ORD-404", models.StatusCancelled)
		require.ErrorIs(t, err, ErrNotFound)

		list := notifications.List()
		require.Len(t, list, 1)
		assert.Equal(t, "Failed to update status", list[0].Message)
		assert.Equal(t, "ORD-404", list[0].OrderID)
	})
}

func TestOrderViewModelRemoveBusy(t *testing.T) {
	vm, api, notifications := newTestViewModel(t)

	release := make(chan struct{})
	started := make(chan struct{})

	api.EXPECT().DeleteOrder(gomock.Any(), "ORD-1").DoAndReturn(
		func(context.Context, string) (*models.DeleteConfirmation, error) {
			close(started)
			<-release
			return &models.DeleteConfirmation{Message: "Order deleted successfully"}, nil
		},
	)
	api.EXPECT().ListOrders(gomock.Any()).Return([]models.Order{}, nil)

	done := make(chan error, 1)
	go func() {
		done <- vm.Remove(context.Background(), "ORD-1")
	}()

	<-started

	assert.Equal(t, []string{"ORD-1"}, vm.Snapshot().Deleting)
	assert.True(t, vm.Snapshot().Loading)
	assert.ErrorIs(t, vm.Remove(context.Background(), "ORD-1"), ErrOrderBusy)

	_, err := vm.ChangeStatus(context.Background(), "ORD-1", models.StatusCompleted)
	assert.ErrorIs(t, err, ErrOrderBusy)

	close(release)
	require.NoError(t, <-done)

	list := notifications.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Order ORD-1 deleted successfully", list[0].Message)
	assert.Empty(t, vm.Snapshot().Deleting)
}

func TestOrderViewModelClose(t *testing.T) {
	vm, api, notifications := newTestViewModel(t)

	api.EXPECT().ListOrders(gomock.Any()).Return([]models.Order{testOrder("ORD-1", models.StatusPending, "1.00")}, nil)

	vm.Close()

	assert.NoError(t, vm.Refresh(context.Background()))
	assert.Empty(t, vm.Orders())
	assert.Zero(t, notifications.Len())
}

func TestOrderViewModelViews(t *testing.T) {
	vm, api, _ := newTestViewModel(t)

	orders := make([]models.Order, 0, 7)
	for _, id := range []string{"ORD-1", "ORD-2", "ORD-3", "ORD-4", "ORD-5", "ORD-6", "ORD-7"} {
		orders = append(orders, testOrder(id, models.StatusPending, "1.00"))
	}

	api.EXPECT().ListOrders(gomock.Any()).Return(orders, nil)
	require.NoError(t, vm.Refresh(context.Background()))

	dashboard, ok := vm.View(ViewDashboard)
	require.True(t, ok)
	require.Len(t, dashboard, RecentOrdersLimit)
	assert.Equal(t, "ORD-1", dashboard[0].ID)

	all, ok := vm.View(ViewOrderManagement)
	require.True(t, ok)
	assert.Len(t, all, 7)

	_, ok = vm.View("settings")
	assert.False(t, ok)
}
