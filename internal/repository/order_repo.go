package repository

import (
	"context"
	"errors"
	"fmt"

	"food_order/internal/model"

	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, name, email, mobile, address, items, total_price, user_id, status, created_at`

// OrderRepository defines operations for order data
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByUser(ctx context.Context, userID int64) ([]model.Order, error)
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error)
}

type orderRepository struct {
	db DBTX
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DBTX) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts a new order and fills in the generated id and timestamp
func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	items, err := o.Items.Value()
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	sql := `INSERT INTO orders (name, email, mobile, address, items, total_price, user_id, status)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`
	err = r.db.QueryRow(ctx, sql, o.Name, o.Email, o.Mobile, o.Address, items, o.TotalPrice, o.UserID, o.Status).
		Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// FindAll returns every order, most recent first
func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	sql := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC, id DESC`
	return r.queryOrders(ctx, sql)
}

// FindByUser returns the orders placed by one account, most recent first
func (r *orderRepository) FindByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	sql := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return r.queryOrders(ctx, sql, userID)
}

// FindByID retrieves an order by its ID
func (r *orderRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	sql := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}
	return o, nil
}

// UpdateStatus sets the status of an order and returns the updated row.
// A nil order means no row matched id.
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error) {
	sql := `UPDATE orders SET status = $1 WHERE id = $2 RETURNING ` + orderColumns
	o, err := scanOrder(r.db.QueryRow(ctx, sql, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return o, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, sql string, args ...any) ([]model.Order, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, *o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	o := &model.Order{}
	err := row.Scan(&o.ID, &o.Name, &o.Email, &o.Mobile, &o.Address,
		&o.Items, &o.TotalPrice, &o.UserID, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}
