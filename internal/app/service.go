package app

import (
	"context"

	"sales-desk/internal/core"
)

// ApplicationService is the single interface all UI adapters (REPL, CLI) call.
// It decouples presentation from business logic. Implementations must contain
// no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// AddCustomer creates a customer record. Name and tax id are required and
	// the tax id must be unique.
	AddCustomer(ctx context.Context, req AddCustomerRequest) (*CustomerResult, error)

	// ListCustomers returns all customers ordered by name.
	ListCustomers(ctx context.Context) (*CustomerListResult, error)

	// AddProduct creates a product record. Price and stock are raw user input,
	// parsed leniently ("," accepted as decimal separator; blank stock = 0).
	AddProduct(ctx context.Context, req AddProductRequest) (*ProductResult, error)

	// ListProducts returns products ordered by name. With includeOutOfStock
	// false, only products with stock > 0 are returned — the order-entry
	// selection list.
	ListProducts(ctx context.Context, includeOutOfStock bool) (*ProductListResult, error)

	// GetCustomer returns one customer by id.
	GetCustomer(ctx context.Context, customerID int) (*CustomerResult, error)

	// GetProduct returns one product by id.
	GetProduct(ctx context.Context, productID int) (*ProductResult, error)

	// FinalizeOrder atomically commits a draft order: order header, line items,
	// and stock decrements land together or not at all. On success the caller
	// must Reset the draft and refresh stock and order views.
	FinalizeOrder(ctx context.Context, draft *core.DraftOrder) (*FinalizeResult, error)

	// ListOrders returns the order history, newest first.
	ListOrders(ctx context.Context) (*OrderListResult, error)

	// GetOrder returns one finalized order with its line items.
	GetOrder(ctx context.Context, orderID int) (*OrderResult, error)
}
