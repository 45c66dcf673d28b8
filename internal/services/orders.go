package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Renal37/order-dashboard/internal/logger"
	"github.com/Renal37/order-dashboard/internal/models"
	"go.uber.org/zap"
)

const (
	MsgCreateFailed = "Failed to create order"
	MsgUpdateFailed = "Failed to update status"
	MsgDeleteFailed = "Failed to delete order"

	RecentOrdersLimit = 5
)

const (
	ViewDashboard       = "dashboard"
	ViewOrderManagement = "orders"
	ViewAnalytics       = "analytics"
)

type notificationSink interface {
	Add(n models.Notification) (models.Notification, bool)
}

// OrderViewModel runs user intents against the order API and keeps the
// dashboard state in sync with the last successful fetch.
type OrderViewModel struct {
	api           models.OrderAPI
	catalog       models.Catalog
	store         *Store
	notifications notificationSink
}

func NewOrderViewModel(api models.OrderAPI, catalog models.Catalog, store *Store, notifications notificationSink) *OrderViewModel {
	return &OrderViewModel{
		api:           api,
		catalog:       catalog,
		store:         store,
		notifications: notifications,
	}
}

// Refresh reloads the whole order list. On failure the previous list is kept,
// the banner is set and an error notification is emitted.
func (vm *OrderViewModel) Refresh(ctx context.Context) error {
	if err := vm.reload(ctx); err != nil {
		vm.notify(models.NotificationError, BannerFetchFailed, "")
		return err
	}

	return nil
}

// reload is the refresh that follows a successful mutation: it updates the
// state and the banner but emits nothing.
func (vm *OrderViewModel) reload(ctx context.Context) error {
	defer vm.track()()

	orders, err := vm.api.ListOrders(ctx)
	if err != nil {
		logger.Log.Error("failed to fetch orders", zap.Error(err))
		vm.dispatch(ordersFailed{})
		return err
	}

	vm.dispatch(ordersLoaded{orders: orders})

	return nil
}

func (vm *OrderViewModel) Create(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	order, err := BuildOrder(draft, vm.catalog)
	if err != nil {
		logger.Log.Info("order draft rejected", zap.Error(err))
		vm.notify(models.NotificationError, UserMessage(err, MsgCreateFailed), "")
		return nil, err
	}

	created, err := vm.createOrder(ctx, order)
	if err != nil {
		logger.Log.Error("failed to create order", zap.Error(err))
		vm.notify(models.NotificationError, UserMessage(err, MsgCreateFailed), "")
		return nil, err
	}

	_ = vm.reload(ctx)

	vm.notify(models.NotificationSuccess, fmt.Sprintf("Order %s created successfully", created.ID), created.ID)

	return created, nil
}

func (vm *OrderViewModel) createOrder(ctx context.Context, order models.NewOrder) (*models.Order, error) {
	defer vm.track()()

	return vm.api.CreateOrder(ctx, order)
}

// ChangeStatus sets any known status on the order; transitions are not restricted.
// A row that is being deleted is refused with ErrOrderBusy.
func (vm *OrderViewModel) ChangeStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	if err := vm.store.Dispatch(rowGuard{orderID: orderID}); errors.Is(err, ErrOrderBusy) {
		return nil, err
	}

	if !status.Valid() {
		err := &ValidationError{Message: fmt.Sprintf("Unknown status %q", status)}
		vm.notify(models.NotificationError, MsgUpdateFailed, orderID)
		return nil, err
	}

	updated, err := vm.api.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		logger.Log.Error("failed to update order status",
			zap.String("order_id", orderID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		vm.notify(models.NotificationError, MsgUpdateFailed, orderID)
		return nil, err
	}

	_ = vm.reload(ctx)

	vm.notify(models.NotificationSuccess, fmt.Sprintf("Order %s status updated to %s", orderID, status), orderID)

	return updated, nil
}

// Remove deletes the order. The row stays marked as deleting until the call
// returns; a second action on it meanwhile gets ErrOrderBusy.
func (vm *OrderViewModel) Remove(ctx context.Context, orderID string) error {
	if err := vm.store.Dispatch(deleteStarted{orderID: orderID}); errors.Is(err, ErrOrderBusy) {
		return err
	}

	err := vm.deleteOrder(ctx, orderID)
	vm.dispatch(deleteFinished{orderID: orderID})

	if err != nil {
		logger.Log.Error("failed to delete order", zap.String("order_id", orderID), zap.Error(err))
		vm.notify(models.NotificationError, MsgDeleteFailed, orderID)
		return err
	}

	_ = vm.reload(ctx)

	vm.notify(models.NotificationSuccess, fmt.Sprintf("Order %s deleted successfully", orderID), orderID)

	return nil
}

func (vm *OrderViewModel) deleteOrder(ctx context.Context, orderID string) error {
	defer vm.track()()

	_, err := vm.api.DeleteOrder(ctx, orderID)

	return err
}

func (vm *OrderViewModel) Snapshot() models.DashboardState {
	return vm.store.Snapshot()
}

func (vm *OrderViewModel) Orders() []models.Order {
	return vm.store.Snapshot().Orders
}

// Recent returns the first n orders in the order the API listed them.
func (vm *OrderViewModel) Recent(n int) []models.Order {
	orders := vm.Orders()
	if n >= 0 && len(orders) > n {
		orders = orders[:n]
	}

	return orders
}

// View returns the order list a named view renders.
func (vm *OrderViewModel) View(name string) ([]models.Order, bool) {
	switch name {
	case ViewDashboard:
		return vm.Recent(RecentOrdersLimit), true
	case ViewOrderManagement, ViewAnalytics:
		return vm.Orders(), true
	default:
		return nil, false
	}
}

// Close detaches the view model from its state. Requests still in flight
// complete, but their results are dropped.
func (vm *OrderViewModel) Close() {
	vm.store.Close()
}

// track raises the loading flag and returns the func that lowers it.
func (vm *OrderViewModel) track() func() {
	vm.dispatch(loadingStarted{})

	return func() {
		vm.dispatch(loadingFinished{})
	}
}

func (vm *OrderViewModel) dispatch(action Action) {
	if err := vm.store.Dispatch(action); err != nil && !errors.Is(err, ErrStoreClosed) {
		logger.Log.Warn("state update rejected", zap.Error(err))
	}
}

func (vm *OrderViewModel) notify(kind models.NotificationType, message, orderID string) {
	if vm.store.Closed() {
		return
	}

	vm.notifications.Add(models.Notification{
		Type:    kind,
		Message: message,
		OrderID: orderID,
	})
}
