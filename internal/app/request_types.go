package app

// AddCustomerRequest is the input for creating a new customer.
type AddCustomerRequest struct {
	Name  string
	TaxID string
	Phone string
	Email string
}

// AddProductRequest is the input for creating a new product. Price and Stock
// are kept as the raw strings the user typed; parsing happens in the catalog
// service so every adapter gets identical lenient-input behavior.
type AddProductRequest struct {
	Name        string
	Description string
	Price       string
	Stock       string
}
