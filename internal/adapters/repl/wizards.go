package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"sales-desk/internal/app"
	"sales-desk/internal/core"
)

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	raw, _ := reader.ReadString('\n')
	return strings.TrimSpace(raw)
}

// handleNewCustomer runs the customer registration form.
func handleNewCustomer(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	fmt.Println("New customer. Name and tax id are required.")

	req := app.AddCustomerRequest{
		Name:  prompt(reader, "  Name: "),
		TaxID: prompt(reader, "  Tax id: "),
		Phone: prompt(reader, "  Phone (optional): "),
		Email: prompt(reader, "  Email (optional): "),
	}

	result, err := svc.AddCustomer(ctx, req)
	if err != nil {
		fmt.Printf("Customer not created: %v\n", err)
		return
	}
	fmt.Printf("Customer created (ID: %d)\n", result.Customer.ID)
}

// handleNewProduct runs the product registration form. Price and stock are
// passed through as typed — the catalog service does the lenient parsing.
func handleNewProduct(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	fmt.Println("New product. Name and price are required; stock defaults to 0.")

	req := app.AddProductRequest{
		Name:        prompt(reader, "  Name: "),
		Description: prompt(reader, "  Description (optional): "),
		Price:       prompt(reader, "  Price: "),
		Stock:       prompt(reader, "  Stock: "),
	}

	result, err := svc.AddProduct(ctx, req)
	if err != nil {
		fmt.Printf("Product not created: %v\n", err)
		return
	}
	fmt.Printf("Product created (ID: %d, price %s, stock %d)\n",
		result.Product.ID, result.Product.Price.StringFixed(2), result.Product.Stock)
}

// handleNewOrder runs an interactive order-entry session. The session owns a
// single draft order: pick a customer, add items from the in-stock product
// list with a live running total, then finalize or cancel. On a finalize
// failure the draft is kept so the user can retry without re-entering lines.
func handleNewOrder(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	customers, err := svc.ListCustomers(ctx)
	if err != nil {
		fmt.Printf("Error loading customers: %v\n", err)
		return
	}
	if len(customers.Customers) == 0 {
		fmt.Println("No customers registered yet — use /new-customer first.")
		return
	}

	// Order entry only offers products that are in stock.
	products, err := svc.ListProducts(ctx, false)
	if err != nil {
		fmt.Printf("Error loading products: %v\n", err)
		return
	}
	if len(products.Products) == 0 {
		fmt.Println("No products in stock — use /new-product first.")
		return
	}

	printCustomers(customers)
	customerID, ok := promptID(reader, "Customer id: ")
	if !ok {
		fmt.Println("Order cancelled.")
		return
	}
	if _, err := svc.GetCustomer(ctx, customerID); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	draft := core.NewDraftOrder()
	draft.SelectCustomer(customerID)

	printProducts(products)
	fmt.Println("Add items as: <product-id> <quantity>. Type 'done' to finalize, 'cancel' to abort.")

	for {
		raw := prompt(reader, fmt.Sprintf("  [total %s] item: ", draft.Total().StringFixed(2)))
		switch strings.ToLower(raw) {
		case "cancel":
			draft.Reset()
			fmt.Println("Order cancelled.")
			return
		case "done":
			result, err := svc.FinalizeOrder(ctx, draft)
			if err != nil {
				// Draft untouched — the user may add items or retry.
				fmt.Printf("Order not finalized: %v\n", err)
				continue
			}
			fmt.Printf("Order #%d finalized. Total: %s\n", result.OrderID, draft.Total().StringFixed(2))
			draft.Reset()
			return
		case "":
			continue
		}

		parts := strings.Fields(raw)
		if len(parts) != 2 {
			fmt.Println("  Invalid format. Use: <product-id> <quantity>")
			continue
		}
		productID, err := strconv.Atoi(parts[0])
		if err != nil {
			fmt.Println("  Invalid product id.")
			continue
		}
		quantity, err := strconv.Atoi(parts[1])
		if err != nil {
			fmt.Println("  Quantity must be an integer.")
			continue
		}

		product, err := svc.GetProduct(ctx, productID)
		if err != nil {
			fmt.Printf("  Error: %v\n", err)
			continue
		}

		if err := draft.AddItem(product.Product.ID, product.Product.Name, product.Product.Price, quantity); err != nil {
			fmt.Printf("  Item rejected: %v\n", err)
			continue
		}
		printDraft(draft)
	}
}

// promptID reads a numeric id; a blank line or "cancel" aborts.
func promptID(reader *bufio.Reader, label string) (int, bool) {
	raw := prompt(reader, label)
	if raw == "" || strings.ToLower(raw) == "cancel" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("Invalid id: %s\n", raw)
		return 0, false
	}
	return id, true
}
