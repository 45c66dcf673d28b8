package models

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_order_api.go . OrderAPI
type OrderAPI interface {
	ListOrders(ctx context.Context) ([]Order, error)

	CreateOrder(ctx context.Context, order NewOrder) (*Order, error)

	UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error)

	DeleteOrder(ctx context.Context, orderID string) (*DeleteConfirmation, error)
}

//go:generate mockgen -destination=mocks/mock_health_checker.go . HealthChecker
type HealthChecker interface {
	CheckHealth(ctx context.Context) (*HealthStatus, error)
}

//go:generate mockgen -destination=mocks/mock_notification_source.go . NotificationSource
type NotificationSource interface {
	FetchNotifications(ctx context.Context) ([]Notification, error)
}

//go:generate mockgen -destination=mocks/mock_order_board.go . OrderBoard
type OrderBoard interface {
	Refresh(ctx context.Context) error

	Create(ctx context.Context, draft OrderDraft) (*Order, error)

	ChangeStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error)

	Remove(ctx context.Context, orderID string) error

	Snapshot() DashboardState

	Recent(n int) []Order

	View(name string) ([]Order, bool)
}

//go:generate mockgen -destination=mocks/mock_notification_center.go . NotificationCenter
type NotificationCenter interface {
	List() []Notification

	Dismiss(id string) bool

	Clear()
}

type Catalog interface {
	Products() []Product

	SearchProducts(term string) []Product

	Product(id string) (Product, bool)

	Customers() []Customer

	Customer(id string) (Customer, bool)
}

//go:generate mockgen -destination=mocks/mock_order_registry.go . OrderRegistry
type OrderRegistry interface {
	Create(ctx context.Context, request OrderRequest) (*Order, error)

	Get(ctx context.Context, orderID string) (*Order, error)

	List(ctx context.Context) ([]Order, error)

	UpdateStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error)

	Delete(ctx context.Context, orderID string) error

	Health(ctx context.Context) error

	Notifications(ctx context.Context) ([]Notification, error)
}
