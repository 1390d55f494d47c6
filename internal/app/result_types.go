package app

import "sales-desk/internal/core"

// CustomerResult is returned by AddCustomer and GetCustomer.
type CustomerResult struct {
	Customer *core.Customer
}

// CustomerListResult is returned by ListCustomers.
type CustomerListResult struct {
	Customers []core.Customer
}

// ProductResult is returned by AddProduct and GetProduct.
type ProductResult struct {
	Product *core.Product
}

// ProductListResult is returned by ListProducts.
type ProductListResult struct {
	Products []core.Product
}

// FinalizeResult is returned by FinalizeOrder.
type FinalizeResult struct {
	OrderID int
}

// OrderResult is returned by GetOrder.
type OrderResult struct {
	Order *core.Order
}

// OrderListResult is returned by ListOrders.
type OrderListResult struct {
	Orders []core.OrderSummary
}
