package app

import (
	"context"

	"sales-desk/internal/core"
)

type appService struct {
	catalog      core.CatalogService
	orderService core.OrderService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(catalog core.CatalogService, orderService core.OrderService) ApplicationService {
	return &appService{
		catalog:      catalog,
		orderService: orderService,
	}
}

// AddCustomer creates a customer record.
func (s *appService) AddCustomer(ctx context.Context, req AddCustomerRequest) (*CustomerResult, error) {
	customer, err := s.catalog.AddCustomer(ctx, req.Name, req.TaxID, req.Phone, req.Email)
	if err != nil {
		return nil, err
	}
	return &CustomerResult{Customer: customer}, nil
}

// ListCustomers returns all customers ordered by name.
func (s *appService) ListCustomers(ctx context.Context) (*CustomerListResult, error) {
	customers, err := s.catalog.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return &CustomerListResult{Customers: customers}, nil
}

// AddProduct creates a product record from raw user input.
func (s *appService) AddProduct(ctx context.Context, req AddProductRequest) (*ProductResult, error) {
	product, err := s.catalog.AddProduct(ctx, req.Name, req.Description, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}
	return &ProductResult{Product: product}, nil
}

// ListProducts returns products ordered by name, optionally filtered to stock > 0.
func (s *appService) ListProducts(ctx context.Context, includeOutOfStock bool) (*ProductListResult, error) {
	products, err := s.catalog.ListProducts(ctx, includeOutOfStock)
	if err != nil {
		return nil, err
	}
	return &ProductListResult{Products: products}, nil
}

// GetCustomer returns one customer by id.
func (s *appService) GetCustomer(ctx context.Context, customerID int) (*CustomerResult, error) {
	customer, err := s.catalog.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &CustomerResult{Customer: customer}, nil
}

// GetProduct returns one product by id.
func (s *appService) GetProduct(ctx context.Context, productID int) (*ProductResult, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &ProductResult{Product: product}, nil
}

// FinalizeOrder atomically commits a draft order.
func (s *appService) FinalizeOrder(ctx context.Context, draft *core.DraftOrder) (*FinalizeResult, error) {
	orderID, err := s.orderService.Finalize(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &FinalizeResult{OrderID: orderID}, nil
}

// ListOrders returns the order history, newest first.
func (s *appService) ListOrders(ctx context.Context) (*OrderListResult, error) {
	orders, err := s.orderService.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return &OrderListResult{Orders: orders}, nil
}

// GetOrder returns one finalized order with its line items.
func (s *appService) GetOrder(ctx context.Context, orderID int) (*OrderResult, error) {
	order, err := s.orderService.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderResult{Order: order}, nil
}
