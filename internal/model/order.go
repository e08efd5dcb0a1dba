package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Order lifecycle labels, in their documented order
const (
	OrderStatusPlaced         = "Placed"
	OrderStatusPreparing      = "Preparing"
	OrderStatusOutForDelivery = "Out for Delivery"
	OrderStatusDelivered      = "Delivered"
)

// OrderStatuses lists every permissible status
var OrderStatuses = []string{
	OrderStatusPlaced,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// IsValidOrderStatus reports whether status belongs to the fixed enumeration
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderItem is one cart line captured at checkout
type OrderItem struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`
	Qty  int    `json:"qty" validate:"required,min=1"`
}

// OrderItems is stored as a JSONB array
type OrderItems []OrderItem

// Value implements driver.Valuer
func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		return "[]", nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (items *OrderItems) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*items = OrderItems{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into OrderItems", src)
	}
	var decoded OrderItems
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("failed to decode order items: %w", err)
	}
	*items = decoded
	return nil
}

// Order is a placed order with a denormalized snapshot of the requester
type Order struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Mobile     string          `json:"mobile"`
	Address    string          `json:"address"`
	Items      OrderItems      `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	UserID     *int64          `json:"user_id"` // nil for guest checkout
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// MarshalJSON renders total_price with two decimals, the way NUMERIC(10,2) is stored
func (o Order) MarshalJSON() ([]byte, error) {
	type order Order
	return json.Marshal(struct {
		order
		TotalPrice string `json:"total_price"`
	}{order(o), o.TotalPrice.StringFixed(2)})
}

// CreateOrderRequest is the checkout payload
type CreateOrderRequest struct {
	Name       string          `json:"name" validate:"required,min=2,max=100"`
	Email      string          `json:"email" validate:"required,email,max=100"`
	Mobile     string          `json:"mobile" validate:"required,mobile"`
	Address    string          `json:"address" validate:"required,min=10"`
	Items      []OrderItem     `json:"items" validate:"required,min=1,dive"`
	TotalPrice decimal.Decimal `json:"total_price" validate:"gt=0"`
	UserID     *int64          `json:"user_id" validate:"omitempty,gt=0"`
	Status     string          `json:"status" validate:"omitempty,order_status"`
}

// UpdateOrderStatusRequest is the body of PUT /orders/:id/status
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderStatusView is the body of GET /orders/:id/status
type OrderStatusView struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
