package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// CatalogService manages the customer and product master records.
type CatalogService interface {
	// AddCustomer persists a new customer. Name and tax id are required; the
	// tax id must be unique across all customers.
	AddCustomer(ctx context.Context, name, taxID, phone, email string) (*Customer, error)
	// ListCustomers returns all customers ordered by name. Each call re-queries
	// current state.
	ListCustomers(ctx context.Context) ([]Customer, error)
	GetCustomer(ctx context.Context, customerID int) (*Customer, error)

	// AddProduct persists a new product. Price and stock arrive as raw user
	// input and are parsed leniently: a "," decimal separator is accepted for
	// the price, and a blank stock defaults to 0.
	AddProduct(ctx context.Context, name, description, priceInput, stockInput string) (*Product, error)
	// ListProducts returns products ordered by name. With includeOutOfStock
	// false, products with stock ≤ 0 are excluded — the order-entry selection
	// list. With true, everything is returned — the general catalog view.
	ListProducts(ctx context.Context, includeOutOfStock bool) ([]Product, error)
	GetProduct(ctx context.Context, productID int) (*Product, error)
}

type catalogService struct {
	pool *pgxpool.Pool
}

// NewCatalogService constructs a CatalogService backed by PostgreSQL.
func NewCatalogService(pool *pgxpool.Pool) CatalogService {
	return &catalogService{pool: pool}
}

// ── Customers ────────────────────────────────────────────────────────────────

func (s *catalogService) AddCustomer(ctx context.Context, name, taxID, phone, email string) (*Customer, error) {
	name = strings.TrimSpace(name)
	taxID = strings.TrimSpace(taxID)
	if name == "" || taxID == "" {
		return nil, validationf("name and tax id are required")
	}

	var c Customer
	err := s.pool.QueryRow(ctx, `
		INSERT INTO customers (name, tax_id, phone, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, tax_id, COALESCE(phone, ''), COALESCE(email, '')
	`, name, taxID, nullIfBlank(phone), nullIfBlank(email)).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Phone, &c.Email,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &DuplicateTaxIDError{TaxID: taxID}
		}
		return nil, storageErr("failed to create customer", err)
	}
	return &c, nil
}

func (s *catalogService) ListCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, tax_id, COALESCE(phone, ''), COALESCE(email, '')
		FROM customers
		ORDER BY name
	`)
	if err != nil {
		return nil, storageErr("failed to query customers", err)
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Phone, &c.Email); err != nil {
			return nil, storageErr("failed to scan customer", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (s *catalogService) GetCustomer(ctx context.Context, customerID int) (*Customer, error) {
	var c Customer
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, tax_id, COALESCE(phone, ''), COALESCE(email, '')
		FROM customers
		WHERE id = $1
	`, customerID).Scan(&c.ID, &c.Name, &c.TaxID, &c.Phone, &c.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("customer %d not found", customerID)
		}
		return nil, storageErr(fmt.Sprintf("failed to fetch customer %d", customerID), err)
	}
	return &c, nil
}

// ── Products ─────────────────────────────────────────────────────────────────

func (s *catalogService) AddProduct(ctx context.Context, name, description, priceInput, stockInput string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("name is required")
	}

	price, err := ParsePrice(priceInput)
	if err != nil {
		return nil, err
	}
	stock, err := ParseStock(stockInput)
	if err != nil {
		return nil, err
	}

	var p Product
	err = s.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, COALESCE(description, ''), price, stock
	`, name, nullIfBlank(description), price, stock).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
	)
	if err != nil {
		return nil, storageErr("failed to create product", err)
	}
	return &p, nil
}

func (s *catalogService) ListProducts(ctx context.Context, includeOutOfStock bool) ([]Product, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, stock
		FROM products
	`
	if !includeOutOfStock {
		query += " WHERE stock > 0"
	}
	query += " ORDER BY name"

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, storageErr("failed to query products", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock); err != nil {
			return nil, storageErr("failed to scan product", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *catalogService) GetProduct(ctx context.Context, productID int) (*Product, error) {
	var p Product
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, COALESCE(description, ''), price, stock
		FROM products
		WHERE id = $1
	`, productID).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %d not found", productID)
		}
		return nil, storageErr(fmt.Sprintf("failed to fetch product %d", productID), err)
	}
	return &p, nil
}

// ── Input parsing ────────────────────────────────────────────────────────────

// ParsePrice parses a price typed by the user. A "," decimal separator is
// accepted in place of "." ("12,50" reads as 12.50). The price is required and
// must not be negative.
func ParsePrice(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Decimal{}, validationf("price is required")
	}
	price, err := decimal.NewFromString(strings.ReplaceAll(input, ",", "."))
	if err != nil {
		return decimal.Decimal{}, validationf("price %q is not a valid number", input)
	}
	if price.IsNegative() {
		return decimal.Decimal{}, validationf("price cannot be negative")
	}
	return price, nil
}

// ParseStock parses a stock quantity typed by the user. Blank defaults to 0.
func ParseStock(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	stock, err := strconv.Atoi(input)
	if err != nil {
		return 0, validationf("stock %q is not a valid integer", input)
	}
	return stock, nil
}

func nullIfBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
