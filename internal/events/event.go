// Package events carries order lifecycle events from the order API to the
// notification feed and the event stream.
package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/Renal37/order-dashboard/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Type string

const (
	OrderCreated  Type = "ORDER_CREATED"
	StatusUpdated Type = "STATUS_UPDATED"
	OrderDeleted  Type = "ORDER_DELETED"
)

type Event struct {
	ID          string             `json:"id"`
	Type        Type               `json:"event_type"`
	OrderID     string             `json:"order_id"`
	CustomerID  string             `json:"customer_id,omitempty"`
	Status      models.OrderStatus `json:"status,omitempty"`
	TotalAmount *decimal.Decimal   `json:"total_amount,omitempty"`
	Timestamp   utils.Timestamp    `json:"timestamp"`
}

func New(eventType Type, order models.Order, now time.Time) Event {
	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Status:     order.Status,
		Timestamp:  utils.NewTimestamp(now),
	}

	if eventType == OrderCreated {
		total := order.TotalAmount
		event.TotalAmount = &total
	}

	return event
}

func (e Event) Message() string {
	switch e.Type {
	case OrderCreated:
		return fmt.Sprintf("New order %s created", e.OrderID)
	case StatusUpdated:
		return fmt.Sprintf("Order %s status changed to %s", e.OrderID, e.Status)
	case OrderDeleted:
		return fmt.Sprintf("Order %s was deleted", e.OrderID)
	default:
		return fmt.Sprintf("Order %s: %s", e.OrderID, e.Type)
	}
}

// Notification renders the event the way the dashboard shows it.
func (e Event) Notification() models.Notification {
	return models.Notification{
		ID:        e.ID,
		Type:      models.NotificationInfo,
		Message:   e.Message(),
		OrderID:   e.OrderID,
		Event:     string(e.Type),
		Timestamp: e.Timestamp,
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Fanout publishes to every publisher and joins their errors.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, event Event) error {
	var errs []error

	for _, publisher := range f {
		if err := publisher.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
