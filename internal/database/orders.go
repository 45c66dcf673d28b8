package database

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/Renal37/order-dashboard/internal/utils"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateOrder = errors.New("order already exists")
	ErrOrderNotFound  = errors.New("order not found")
)

const (
	orderColumns = `
		id,
		customer_id,
		customer_name,
		items,
		total_amount::text,
		status,
		created_at,
		updated_at
	`
	InsertOrderQuery = `
		INSERT INTO
			orders (id, customer_id, customer_name, items, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7)
	`
	SelectOrderQuery = `
		SELECT` + orderColumns + `
		FROM
			orders
		WHERE
			id = $1
	`
	SelectOrdersQuery = `
		SELECT` + orderColumns + `
		FROM
			orders
		ORDER BY
			created_at DESC
	`
	UpdateOrderStatusQuery = `
		UPDATE
			orders
		SET
			status = $2,
			updated_at = $3
		WHERE
			id = $1
		RETURNING` + orderColumns
	DeleteOrderQuery = `
		DELETE FROM
			orders
		WHERE
			id = $1
	`
)

type OrderDB struct {
	ID           string
	CustomerID   string
	CustomerName string
	Items        []byte
	TotalAmount  string
	Status       OrderStatusDB
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type OrderStatusDB struct {
	models.OrderStatus
}

func (s *OrderStatusDB) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		return fmt.Errorf("order status must be a string, got %T", value)
	}

	*s = OrderStatusDB{models.OrderStatus(strVal)}
	return nil
}

func (s OrderStatusDB) Value() (driver.Value, error) {
	return string(s.OrderStatus), nil
}

// ToModel decodes the stored items and amount.
func (o OrderDB) ToModel() (models.Order, error) {
	var items []models.OrderItem
	if err := json.Unmarshal(o.Items, &items); err != nil {
		return models.Order{}, fmt.Errorf("failed to decode items of order %s: %w", o.ID, err)
	}

	total, err := decimal.NewFromString(o.TotalAmount)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to decode total of order %s: %w", o.ID, err)
	}

	order := models.Order{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Items:        items,
		TotalAmount:  total,
		Status:       o.Status.OrderStatus,
		CreatedAt:    utils.NewTimestamp(o.CreatedAt),
	}

	if o.UpdatedAt != nil {
		updatedAt := utils.NewTimestamp(*o.UpdatedAt)
		order.UpdatedAt = &updatedAt
	}

	return order, nil
}

func scanOrder(row pgx.Row) (models.Order, error) {
	var o OrderDB

	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.CustomerName,
		&o.Items,
		&o.TotalAmount,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}

	return o.ToModel()
}

func (d *Database) CreateOrder(ctx context.Context, order models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	_, err = d.db.Exec(ctx, InsertOrderQuery,
		order.ID,
		order.CustomerID,
		order.CustomerName,
		items,
		order.TotalAmount.String(),
		OrderStatusDB{order.Status},
		order.CreatedAt.Time,
	)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateOrder
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (d *Database) FindOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := scanOrder(d.db.QueryRow(ctx, SelectOrderQuery, orderID))
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ListOrders returns every order, newest first.
func (d *Database) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := d.db.Query(ctx, SelectOrdersQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	return orders, nil
}

func (d *Database) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus, updatedAt time.Time) (*models.Order, error) {
	order, err := scanOrder(d.db.QueryRow(ctx, UpdateOrderStatusQuery, orderID, OrderStatusDB{status}, updatedAt))
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (d *Database) DeleteOrder(ctx context.Context, orderID string) error {
	tag, err := d.db.Exec(ctx, DeleteOrderQuery, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}
