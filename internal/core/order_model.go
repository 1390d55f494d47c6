package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a finalized sales order header. Created atomically with its line
// items; never updated or deleted afterwards. Total is stored redundantly and
// equals the sum of the line subtotals at finalization time by construction.
type Order struct {
	ID           int             `json:"id"`
	CustomerID   int             `json:"customer_id"`
	CustomerName string          `json:"customer_name"` // joined from customers
	CreatedAt    time.Time       `json:"created_at"`
	Total        decimal.Decimal `json:"total"`
	Lines        []OrderLine     `json:"lines"`
}

// OrderLine is one line item on a finalized order. UnitPrice is the price
// captured at sale time, independent of later product price changes.
type OrderLine struct {
	ID          int             `json:"id"`
	OrderID     int             `json:"order_id"`
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"` // joined from products
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Subtotal is quantity × unit price. Always derived, never stored.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderSummary is one row of the order history view: the orders×customers join
// used for display.
type OrderSummary struct {
	ID           int             `json:"id"`
	CustomerName string          `json:"customer_name"`
	CreatedAt    time.Time       `json:"created_at"`
	Total        decimal.Decimal `json:"total"`
}
