package models

import (
	"encoding/json"
	"strings"

	"github.com/Renal37/order-dashboard/internal/utils"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// OrderStatuses lists every status an order can be set to. Any status may be
// changed to any other one.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusCompleted,
	StatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Subtotal returns price * quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID           string           `json:"order_id"`
	CustomerID   string           `json:"customer_id"`
	CustomerName string           `json:"customer_name"`
	Items        []OrderItem      `json:"items"`
	TotalAmount  decimal.Decimal  `json:"total_amount"`
	Status       OrderStatus      `json:"status"`
	CreatedAt    utils.Timestamp  `json:"created_at"`
	UpdatedAt    *utils.Timestamp `json:"updated_at,omitempty"`
}

// NewOrder is the body of a create request. TotalAmount is the client-side
// estimate; the server prices the items itself.
type NewOrder struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Items        []OrderItem     `json:"items"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

type StatusUpdate struct {
	Status OrderStatus `json:"status"`
}

type DraftItem struct {
	ProductID string           `json:"product_id"`
	Name      string           `json:"name,omitempty"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

// OrderDraft is what the order form submits before it is validated and priced.
type OrderDraft struct {
	CustomerID   string      `json:"customer_id"`
	CustomerName string      `json:"customer_name,omitempty"`
	Items        []DraftItem `json:"items"`
}

type DeleteConfirmation struct {
	Message string `json:"message"`
}

type HealthStatus struct {
	Status string `json:"status"`
}

// OrderRequest is the create body as the order API receives it. Pointers tell
// a missing field from a zero one.
type OrderRequest struct {
	CustomerID   *string        `json:"customer_id"`
	CustomerName *string        `json:"customer_name"`
	Items        *[]ItemRequest `json:"items"`
}

type ItemRequest struct {
	ProductID *string       `json:"product_id"`
	Name      *string       `json:"name"`
	Quantity  *NumericValue `json:"quantity"`
	Price     *NumericValue `json:"price"`
}

// NumericValue holds a JSON number or numeric string exactly as it was sent,
// so a value that does not parse can be echoed back in the error.
type NumericValue struct {
	raw json.RawMessage
}

func NewNumericValue(raw string) *NumericValue {
	return &NumericValue{raw: json.RawMessage(raw)}
}

func (v *NumericValue) UnmarshalJSON(data []byte) error {
	v.raw = append(v.raw[:0], data...)
	return nil
}

func (v NumericValue) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// Decimal parses the value; "2" and 2 are the same number.
func (v NumericValue) Decimal() (decimal.Decimal, error) {
	var str string
	if err := json.Unmarshal(v.raw, &str); err == nil {
		return decimal.NewFromString(strings.TrimSpace(str))
	}

	return decimal.NewFromString(string(v.raw))
}

func (v NumericValue) String() string {
	var str string
	if err := json.Unmarshal(v.raw, &str); err == nil {
		return str
	}

	return string(v.raw)
}
