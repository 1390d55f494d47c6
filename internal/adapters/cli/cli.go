package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"sales-desk/internal/app"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:] — the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "customers":
		result, err := svc.ListCustomers(ctx)
		if err != nil {
			log.Fatalf("Failed to list customers: %v", err)
		}
		for _, c := range result.Customers {
			fmt.Printf("%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.TaxID, c.Phone, c.Email)
		}

	case "products":
		// "products" lists the full catalog; "products --in-stock" narrows to
		// what order entry would offer.
		includeOutOfStock := true
		if len(args) > 1 && args[1] == "--in-stock" {
			includeOutOfStock = false
		}
		result, err := svc.ListProducts(ctx, includeOutOfStock)
		if err != nil {
			log.Fatalf("Failed to list products: %v", err)
		}
		for _, p := range result.Products {
			fmt.Printf("%d\t%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Price.StringFixed(2), p.Stock, p.Description)
		}

	case "orders":
		result, err := svc.ListOrders(ctx)
		if err != nil {
			log.Fatalf("Failed to list orders: %v", err)
		}
		for _, o := range result.Orders {
			fmt.Printf("%d\t%s\t%s\t%s\n",
				o.ID, o.CustomerName, o.CreatedAt.Format("2006-01-02 15:04"), o.Total.StringFixed(2))
		}

	case "order":
		if len(args) < 2 {
			log.Fatal("Usage: app order <order-id>")
		}
		orderID, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("Invalid order id: %s", args[1])
		}
		result, err := svc.GetOrder(ctx, orderID)
		if err != nil {
			log.Fatalf("Failed to fetch order: %v", err)
		}
		o := result.Order
		fmt.Printf("Order #%d  %s  %s  total %s\n",
			o.ID, o.CustomerName, o.CreatedAt.Format("2006-01-02 15:04"), o.Total.StringFixed(2))
		for _, l := range o.Lines {
			fmt.Printf("  %s\tx%d\t@ %s\t= %s\n",
				l.ProductName, l.Quantity, l.UnitPrice.StringFixed(2), l.Subtotal().StringFixed(2))
		}

	case "add-customer":
		// Usage: app add-customer <name> <tax-id> [phone] [email]
		if len(args) < 3 {
			log.Fatal("Usage: app add-customer <name> <tax-id> [phone] [email]")
		}
		req := app.AddCustomerRequest{Name: args[1], TaxID: args[2]}
		if len(args) > 3 {
			req.Phone = args[3]
		}
		if len(args) > 4 {
			req.Email = args[4]
		}
		result, err := svc.AddCustomer(ctx, req)
		if err != nil {
			log.Fatalf("Failed to add customer: %v", err)
		}
		fmt.Printf("Customer created (ID: %d)\n", result.Customer.ID)

	case "add-product":
		// Usage: app add-product <name> <price> [stock] [description]
		if len(args) < 3 {
			log.Fatal("Usage: app add-product <name> <price> [stock] [description]")
		}
		req := app.AddProductRequest{Name: args[1], Price: args[2]}
		if len(args) > 3 {
			req.Stock = args[3]
		}
		if len(args) > 4 {
			req.Description = strings.Join(args[4:], " ")
		}
		result, err := svc.AddProduct(ctx, req)
		if err != nil {
			log.Fatalf("Failed to add product: %v", err)
		}
		fmt.Printf("Product created (ID: %d)\n", result.Product.ID)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: customers, products, orders, order, add-customer, add-product", args[0])
	}
}
