package core_test

import (
	"context"
	"errors"
	"testing"

	"sales-desk/internal/core"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// seedCatalog inserts one customer and two products and returns them.
func seedCatalog(t *testing.T, pool *pgxpool.Pool) (*core.Customer, *core.Product, *core.Product) {
	t.Helper()
	catalog := core.NewCatalogService(pool)
	ctx := context.Background()

	customer, err := catalog.AddCustomer(ctx, "Acme Corp", uuid.NewString(), "", "")
	if err != nil {
		t.Fatalf("Failed to seed customer: %v", err)
	}
	p1, err := catalog.AddProduct(ctx, "Widget A", "", "10.00", "5")
	if err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	p2, err := catalog.AddProduct(ctx, "Widget B", "", "5.00", "3")
	if err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return customer, p1, p2
}

func countRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()
	var n int
	if err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

func TestOrder_Finalize(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	customer, p1, p2 := seedCatalog(t, pool)
	catalog := core.NewCatalogService(pool)
	orders := core.NewOrderService(pool)
	ctx := context.Background()

	draft := core.NewDraftOrder()
	draft.SelectCustomer(customer.ID)
	if err := draft.AddItem(p1.ID, p1.Name, p1.Price, 2); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := draft.AddItem(p2.ID, p2.Name, p2.Price, 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	orderID, err := orders.Finalize(ctx, draft)
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if orderID == 0 {
		t.Fatal("Expected a generated order id")
	}

	// 2 × 10.00 + 1 × 5.00 = 25.00
	order, err := orders.GetOrder(ctx, orderID)
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if !order.Total.Equal(decimal.NewFromFloat(25.00)) {
		t.Errorf("Expected total 25.00, got %s", order.Total)
	}
	if order.CustomerID != customer.ID || order.CustomerName != customer.Name {
		t.Errorf("Order not linked to customer: %+v", order)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("Expected 2 line items, got %d", len(order.Lines))
	}
	// Line items preserve insertion order.
	if order.Lines[0].ProductID != p1.ID || order.Lines[0].Quantity != 2 {
		t.Errorf("First line mismatch: %+v", order.Lines[0])
	}
	if order.Lines[1].ProductID != p2.ID || order.Lines[1].Quantity != 1 {
		t.Errorf("Second line mismatch: %+v", order.Lines[1])
	}
	if !order.Lines[0].Subtotal().Equal(decimal.NewFromFloat(20.00)) {
		t.Errorf("First line subtotal: got %s, want 20.00", order.Lines[0].Subtotal())
	}

	// Stock decremented by the ordered quantities: 5-2=3, 3-1=2.
	got1, err := catalog.GetProduct(ctx, p1.ID)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if got1.Stock != 3 {
		t.Errorf("Expected stock 3 for %s, got %d", p1.Name, got1.Stock)
	}
	got2, err := catalog.GetProduct(ctx, p2.ID)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if got2.Stock != 2 {
		t.Errorf("Expected stock 2 for %s, got %d", p2.Name, got2.Stock)
	}
}

func TestOrder_Finalize_Preconditions(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	customer, p1, _ := seedCatalog(t, pool)
	orders := core.NewOrderService(pool)
	ctx := context.Background()

	// No customer selected.
	noCustomer := core.NewDraftOrder()
	if err := noCustomer.AddItem(p1.ID, p1.Name, p1.Price, 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	_, err := orders.Finalize(ctx, noCustomer)
	if err == nil {
		t.Fatal("Expected error for draft without a customer")
	}
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("Expected *ValidationError, got %T", err)
	}

	// Customer but no items.
	noItems := core.NewDraftOrder()
	noItems.SelectCustomer(customer.ID)
	if _, err := orders.Finalize(ctx, noItems); err == nil {
		t.Fatal("Expected error for draft without items")
	}

	// Neither attempt may touch storage.
	if n := countRows(t, pool, "orders"); n != 0 {
		t.Errorf("Rejected drafts must not create orders, found %d", n)
	}
	if n := countRows(t, pool, "order_items"); n != 0 {
		t.Errorf("Rejected drafts must not create order items, found %d", n)
	}
}

func TestOrder_Finalize_RollsBackOnFailure(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	customer, p1, _ := seedCatalog(t, pool)
	catalog := core.NewCatalogService(pool)
	orders := core.NewOrderService(pool)
	ctx := context.Background()

	// A line referencing a nonexistent product fails the FK constraint after
	// the order header and the first line have already been written. The
	// whole transaction must roll back.
	draft := core.NewDraftOrder()
	draft.SelectCustomer(customer.ID)
	if err := draft.AddItem(p1.ID, p1.Name, p1.Price, 2); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := draft.AddItem(999999, "Ghost", decimal.NewFromFloat(1.00), 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	_, err := orders.Finalize(ctx, draft)
	if err == nil {
		t.Fatal("Expected finalization to fail")
	}
	var sErr *core.StorageError
	if !errors.As(err, &sErr) {
		t.Errorf("Expected *StorageError, got %T: %v", err, err)
	}

	if n := countRows(t, pool, "orders"); n != 0 {
		t.Errorf("Failed finalization must leave no order, found %d", n)
	}
	if n := countRows(t, pool, "order_items"); n != 0 {
		t.Errorf("Failed finalization must leave no order items, found %d", n)
	}
	got, err := catalog.GetProduct(ctx, p1.ID)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if got.Stock != 5 {
		t.Errorf("Failed finalization must not change stock, got %d", got.Stock)
	}

	// The draft survives the failure and finalizes cleanly once the bad line
	// is gone.
	draft.Reset()
	draft.SelectCustomer(customer.ID)
	if err := draft.AddItem(p1.ID, p1.Name, p1.Price, 2); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := orders.Finalize(ctx, draft); err != nil {
		t.Fatalf("Retry after failure should succeed: %v", err)
	}
}

func TestOrder_Finalize_StockMayGoNegative(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	customer, p1, _ := seedCatalog(t, pool)
	catalog := core.NewCatalogService(pool)
	orders := core.NewOrderService(pool)
	ctx := context.Background()

	// Ordering more than is on hand is allowed; the decrement is not
	// re-checked against the current level.
	draft := core.NewDraftOrder()
	draft.SelectCustomer(customer.ID)
	if err := draft.AddItem(p1.ID, p1.Name, p1.Price, 8); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := orders.Finalize(ctx, draft); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	got, err := catalog.GetProduct(ctx, p1.ID)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if got.Stock != -3 {
		t.Errorf("Expected stock -3 after overselling, got %d", got.Stock)
	}
}

func TestOrder_ListOrders_NewestFirst(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	customer, p1, p2 := seedCatalog(t, pool)
	orders := core.NewOrderService(pool)
	ctx := context.Background()

	var ids []int
	for _, p := range []*core.Product{p1, p2} {
		draft := core.NewDraftOrder()
		draft.SelectCustomer(customer.ID)
		if err := draft.AddItem(p.ID, p.Name, p.Price, 1); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
		id, err := orders.Finalize(ctx, draft)
		if err != nil {
			t.Fatalf("Finalize failed: %v", err)
		}
		ids = append(ids, id)
	}

	list, err := orders.ListOrders(ctx)
	if err != nil {
		t.Fatalf("ListOrders failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 orders, got %d", len(list))
	}
	if list[0].ID != ids[1] || list[1].ID != ids[0] {
		t.Errorf("Expected newest first [%d %d], got [%d %d]", ids[1], ids[0], list[0].ID, list[1].ID)
	}
	if list[0].CustomerName != customer.Name {
		t.Errorf("Order summary should carry the customer name, got %q", list[0].CustomerName)
	}
}

func TestOrder_GetOrder_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	orders := core.NewOrderService(pool)
	if _, err := orders.GetOrder(context.Background(), 999999); err == nil {
		t.Error("Expected error for unknown order id")
	}
}
