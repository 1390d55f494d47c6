package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderService persists finalized orders and serves the order history view.
type OrderService interface {
	// Finalize commits a draft order to durable storage as one transaction:
	// order header, line items in insertion order, and a stock decrement per
	// item. Either every write lands or none does. On success the new order id
	// is returned and the caller is expected to Reset the draft and re-query
	// dependent views; on failure the draft is untouched so the user can retry.
	Finalize(ctx context.Context, draft *DraftOrder) (int, error)

	// ListOrders returns the order history, newest first.
	ListOrders(ctx context.Context) ([]OrderSummary, error)
	// GetOrder returns one order with its line items.
	GetOrder(ctx context.Context, orderID int) (*Order, error)
}

type orderService struct {
	pool *pgxpool.Pool
}

// NewOrderService constructs an OrderService backed by PostgreSQL.
func NewOrderService(pool *pgxpool.Pool) OrderService {
	return &orderService{pool: pool}
}

func (s *orderService) Finalize(ctx context.Context, draft *DraftOrder) (int, error) {
	// Preconditions, checked before any durable mutation.
	customerID := draft.CustomerID()
	if customerID == nil {
		return 0, validationf("customer required")
	}
	if draft.Empty() {
		return 0, validationf("at least one item required")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, storageErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	var orderID int
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_id, total, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id
	`, *customerID, draft.Total()).Scan(&orderID)
	if err != nil {
		return 0, storageErr("failed to insert order", err)
	}

	// Line items land in insertion order. The stock decrement is unconditional:
	// it is not re-checked against the current level, so stock may go negative.
	for i, item := range draft.Items() {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
		`, orderID, item.ProductID, item.Quantity, item.UnitPrice)
		if err != nil {
			return 0, storageErr(fmt.Sprintf("failed to insert order item %d", i+1), err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE products SET stock = stock - $1 WHERE id = $2
		`, item.Quantity, item.ProductID)
		if err != nil {
			return 0, storageErr(fmt.Sprintf("failed to decrement stock for product %d", item.ProductID), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, storageErr("failed to commit order", err)
	}

	return orderID, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]OrderSummary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT o.id, c.name, o.created_at, o.total
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		ORDER BY o.created_at DESC, o.id DESC
	`)
	if err != nil {
		return nil, storageErr("failed to query orders", err)
	}
	defer rows.Close()

	var orders []OrderSummary
	for rows.Next() {
		var o OrderSummary
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CreatedAt, &o.Total); err != nil {
			return nil, storageErr("failed to scan order", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *orderService) GetOrder(ctx context.Context, orderID int) (*Order, error) {
	var o Order
	err := s.pool.QueryRow(ctx, `
		SELECT o.id, o.customer_id, c.name, o.created_at, o.total
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1
	`, orderID).Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.CreatedAt, &o.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %d not found", orderID)
		}
		return nil, storageErr(fmt.Sprintf("failed to fetch order %d", orderID), err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.unit_price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, storageErr("failed to query order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, storageErr("failed to scan order item", err)
		}
		o.Lines = append(o.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("error iterating order items", err)
	}
	return &o, nil
}
