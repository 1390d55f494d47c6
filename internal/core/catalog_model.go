package core

import (
	"github.com/shopspring/decimal"
)

// Customer is a customer master record. Records are immutable once created:
// the application has no edit or delete path for them.
type Customer struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Product is a sellable item in the catalog. Stock is mutated only by order
// finalization, which decrements it per sold line item.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}
