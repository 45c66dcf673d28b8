package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Renal37/order-dashboard/internal/database"
	"github.com/Renal37/order-dashboard/internal/events"
	"github.com/Renal37/order-dashboard/internal/logger"
	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/Renal37/order-dashboard/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	maxPublishAttempts = 3
	publishRetryDelay  = 2 * time.Second
	// createAttempts bounds retries on order id collisions.
	createAttempts = 3
)

var ErrInvalidStatus = &ValidationError{
	Message: "Invalid status. Must be one of: PENDING, PROCESSING, COMPLETED, CANCELLED",
}

type orderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) error

	FindOrder(ctx context.Context, orderID string) (*models.Order, error)

	ListOrders(ctx context.Context) ([]models.Order, error)

	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus, updatedAt time.Time) (*models.Order, error)

	DeleteOrder(ctx context.Context, orderID string) error

	Ping(ctx context.Context) error
}

type eventQueue interface {
	Enqueue(job Job) error

	ScheduleJob(job Job, delay time.Duration)

	PauseAndResume(delay time.Duration)
}

var _ eventQueue = (*JobQueueService)(nil)

type eventFeed interface {
	Drain(ctx context.Context) ([]events.Event, error)
}

// OrderRegistry is the order API's side of the contract: it validates and
// stores orders and publishes an event for each change.
type OrderRegistry struct {
	repository orderRepository
	queue      eventQueue
	publisher  events.Publisher
	feed       eventFeed

	now   func() time.Time
	newID func() string
}

// NewOrderRegistry wires the registry. The feed may be nil, in which case
// Notifications always returns an empty list.
func NewOrderRegistry(repository orderRepository, queue eventQueue, publisher events.Publisher, feed eventFeed) *OrderRegistry {
	return &OrderRegistry{
		repository: repository,
		queue:      queue,
		publisher:  publisher,
		feed:       feed,
		now:        time.Now,
		newID:      NewOrderID,
	}
}

// NewOrderID returns "ORD-" followed by 8 hex characters.
func NewOrderID() string {
	return "ORD-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// ValidateOrderRequest checks presence of every field, then that the items are
// non-empty with positive quantities and prices.
func ValidateOrderRequest(request models.OrderRequest) error {
	_, err := parseOrderItems(request)
	return err
}

// parseOrderItems validates the request and returns its items. Quantities and
// prices may arrive as numbers or numeric strings.
func parseOrderItems(request models.OrderRequest) ([]models.OrderItem, error) {
	switch {
	case request.CustomerID == nil:
		return nil, &ValidationError{Message: "Missing required field: customer_id"}
	case request.CustomerName == nil:
		return nil, &ValidationError{Message: "Missing required field: customer_name"}
	case request.Items == nil:
		return nil, &ValidationError{Message: "Missing required field: items"}
	case len(*request.Items) == 0:
		return nil, &ValidationError{Message: "Order must contain at least one item"}
	}

	items := make([]models.OrderItem, 0, len(*request.Items))

	for _, item := range *request.Items {
		switch {
		case item.ProductID == nil:
			return nil, &ValidationError{Message: "Missing required item field: product_id"}
		case item.Name == nil:
			return nil, &ValidationError{Message: "Missing required item field: name"}
		case item.Quantity == nil:
			return nil, &ValidationError{Message: "Missing required item field: quantity"}
		case item.Price == nil:
			return nil, &ValidationError{Message: "Missing required item field: price"}
		}

		// Quantities are whole units.
		quantity, err := item.Quantity.Decimal()
		if err != nil || !quantity.IsPositive() || !quantity.IsInteger() {
			return nil, &ValidationError{Message: fmt.Sprintf("Invalid quantity: %s", item.Quantity)}
		}

		price, err := item.Price.Decimal()
		if err != nil || !price.IsPositive() {
			return nil, &ValidationError{Message: fmt.Sprintf("Invalid price: %s", item.Price)}
		}

		items = append(items, models.OrderItem{
			ProductID: *item.ProductID,
			Name:      *item.Name,
			Quantity:  int(quantity.IntPart()),
			Price:     price,
		})
	}

	return items, nil
}

func ValidateStatus(status models.OrderStatus) error {
	if status == "" {
		return &ValidationError{Message: "Status field is required"}
	}

	if !status.Valid() {
		return ErrInvalidStatus
	}

	return nil
}

// Create prices the items itself; a client supplied total is ignored.
func (r *OrderRegistry) Create(ctx context.Context, request models.OrderRequest) (*models.Order, error) {
	items, err := parseOrderItems(request)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		CustomerID:   *request.CustomerID,
		CustomerName: *request.CustomerName,
		Items:        items,
		TotalAmount:  decimal.Zero,
		Status:       models.StatusPending,
		CreatedAt:    utils.NewTimestamp(r.now()),
	}

	for _, item := range items {
		order.TotalAmount = order.TotalAmount.Add(item.Subtotal())
	}

	order.TotalAmount = order.TotalAmount.Round(2)

	for attempt := 0; attempt < createAttempts; attempt++ {
		order.ID = r.newID()

		err = r.repository.CreateOrder(ctx, order)
		if !errors.Is(err, database.ErrDuplicateOrder) {
			break
		}

		logger.Log.Warn("order id collision", zap.String("order_id", order.ID))
	}

	if err != nil {
		return nil, err
	}

	logger.Log.Info("order created", zap.String("order_id", order.ID), zap.String("total", order.TotalAmount.String()))

	r.publish(events.New(events.OrderCreated, order, r.now()))

	return &order, nil
}

func (r *OrderRegistry) Get(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := r.repository.FindOrder(ctx, orderID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return order, nil
}

func (r *OrderRegistry) List(ctx context.Context) ([]models.Order, error) {
	return r.repository.ListOrders(ctx)
}

func (r *OrderRegistry) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	if err := ValidateStatus(status); err != nil {
		return nil, err
	}

	order, err := r.repository.UpdateOrderStatus(ctx, orderID, status, r.now())
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	logger.Log.Info("order status updated", zap.String("order_id", orderID), zap.String("status", string(status)))

	r.publish(events.New(events.StatusUpdated, *order, r.now()))

	return order, nil
}

func (r *OrderRegistry) Delete(ctx context.Context, orderID string) error {
	order, err := r.repository.FindOrder(ctx, orderID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := r.repository.DeleteOrder(ctx, orderID); err != nil {
		return mapRepositoryError(err)
	}

	logger.Log.Info("order deleted", zap.String("order_id", orderID))

	r.publish(events.New(events.OrderDeleted, *order, r.now()))

	return nil
}

func (r *OrderRegistry) Health(ctx context.Context) error {
	return r.repository.Ping(ctx)
}

// Notifications hands out every pending event once.
func (r *OrderRegistry) Notifications(ctx context.Context) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)

	if r.feed == nil {
		return notifications, nil
	}

	pending, err := r.feed.Drain(ctx)
	if err != nil {
		return nil, err
	}

	for _, event := range pending {
		notifications = append(notifications, event.Notification())
	}

	return notifications, nil
}

// publish hands the event to the job queue so the request never waits on a
// broker. A failed publish pauses the queue, since every queued event goes to
// the same brokers, and is queued again, up to maxPublishAttempts times.
func (r *OrderRegistry) publish(event events.Event) {
	r.enqueue(event, 1, func(job Job) error {
		return r.queue.Enqueue(job)
	})
}

func (r *OrderRegistry) enqueue(event events.Event, attempt int, submit func(Job) error) {
	job := func(ctx context.Context) {
		err := r.publisher.Publish(ctx, event)
		if err == nil {
			logger.Log.Debug("event published", zap.String("event_id", event.ID), zap.String("type", string(event.Type)))
			return
		}

		if attempt >= maxPublishAttempts {
			logger.Log.Error("event dropped",
				zap.String("event_id", event.ID),
				zap.String("type", string(event.Type)),
				zap.Int("attempts", attempt),
				zap.Error(err),
			)
			return
		}

		delay := publishRetryDelay * time.Duration(attempt)
		logger.Log.Warn("event publish failed, pausing queue",
			zap.String("event_id", event.ID),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		r.queue.PauseAndResume(delay)

		r.enqueue(event, attempt+1, func(job Job) error {
			if err := r.queue.Enqueue(job); err != nil {
				logger.Log.Info("job queue is full, scheduling retry", zap.String("event_id", event.ID))
				r.queue.ScheduleJob(job, delay)
			}
			return nil
		})
	}

	if err := submit(job); err != nil {
		logger.Log.Error("failed to enqueue event", zap.String("event_id", event.ID), zap.Error(err))
	}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, database.ErrOrderNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return err
}
