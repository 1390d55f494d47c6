package repl

import (
	"fmt"
	"strings"

	"sales-desk/internal/app"
	"sales-desk/internal/core"
)

func printCustomers(result *app.CustomerListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("  CUSTOMERS")
	fmt.Println(strings.Repeat("=", 72))
	if len(result.Customers) == 0 {
		fmt.Println("  No customers found.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-5s %-25s %-15s %-14s %s\n", "ID", "NAME", "TAX ID", "PHONE", "EMAIL")
	fmt.Println(strings.Repeat("-", 72))
	for _, c := range result.Customers {
		fmt.Printf("  %-5d %-25s %-15s %-14s %s\n", c.ID, c.Name, c.TaxID, c.Phone, c.Email)
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printProducts(result *app.ProductListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("  PRODUCTS")
	fmt.Println(strings.Repeat("=", 72))
	if len(result.Products) == 0 {
		fmt.Println("  No products found.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-5s %-28s %12s %8s  %s\n", "ID", "NAME", "PRICE", "STOCK", "DESCRIPTION")
	fmt.Println(strings.Repeat("-", 72))
	for _, p := range result.Products {
		desc := p.Description
		if len(desc) > 24 {
			desc = desc[:21] + "..."
		}
		fmt.Printf("  %-5d %-28s %12s %8d  %s\n", p.ID, p.Name, p.Price.StringFixed(2), p.Stock, desc)
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printOrders(result *app.OrderListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("  ORDER HISTORY")
	fmt.Println(strings.Repeat("=", 72))
	if len(result.Orders) == 0 {
		fmt.Println("  No orders found.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-5s %-25s %-18s %12s\n", "ID", "CUSTOMER", "DATE", "TOTAL")
	fmt.Println(strings.Repeat("-", 72))
	for _, o := range result.Orders {
		fmt.Printf("  %-5d %-25s %-18s %12s\n",
			o.ID, o.CustomerName, o.CreatedAt.Format("02/01/2006 15:04"), o.Total.StringFixed(2))
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printOrderDetail(o *core.Order) {
	fmt.Println()
	fmt.Println(strings.Repeat("-", 64))
	fmt.Printf("  Order:     #%d\n", o.ID)
	fmt.Printf("  Customer:  %s\n", o.CustomerName)
	fmt.Printf("  Date:      %s\n", o.CreatedAt.Format("02/01/2006 15:04"))
	fmt.Println(strings.Repeat("-", 64))
	fmt.Printf("  %-28s %8s %12s %12s\n", "PRODUCT", "QTY", "UNIT PRICE", "SUBTOTAL")
	fmt.Println(strings.Repeat("-", 64))
	for _, l := range o.Lines {
		fmt.Printf("  %-28s %8d %12s %12s\n",
			l.ProductName, l.Quantity, l.UnitPrice.StringFixed(2), l.Subtotal().StringFixed(2))
	}
	fmt.Println(strings.Repeat("-", 64))
	fmt.Printf("  %-50s %12s\n", "TOTAL", o.Total.StringFixed(2))
	fmt.Println(strings.Repeat("-", 64))
}

func printDraft(d *core.DraftOrder) {
	fmt.Println(strings.Repeat("-", 64))
	fmt.Printf("  %-28s %8s %12s %12s\n", "PRODUCT", "QTY", "UNIT PRICE", "SUBTOTAL")
	for _, item := range d.Items() {
		fmt.Printf("  %-28s %8d %12s %12s\n",
			item.ProductName, item.Quantity, item.UnitPrice.StringFixed(2), item.Subtotal.StringFixed(2))
	}
	fmt.Println(strings.Repeat("-", 64))
	fmt.Printf("  %-50s %12s\n", "RUNNING TOTAL", d.Total().StringFixed(2))
}

func printHelp() {
	fmt.Println()
	fmt.Println("SALES DESK — COMMANDS")
	fmt.Println(strings.Repeat("=", 62))
	fmt.Println()
	fmt.Println("  CATALOG")
	fmt.Println("  /customers               List customers (sorted by name)")
	fmt.Println("  /new-customer            Register a customer (interactive)")
	fmt.Println("  /products                List products, out-of-stock included")
	fmt.Println("  /new-product             Register a product (interactive)")
	fmt.Println()
	fmt.Println("  SALES ORDERS")
	fmt.Println("  /orders                  Order history, newest first")
	fmt.Println("  /order <id>              Order detail with line items")
	fmt.Println("  /new-order               Build and finalize an order (interactive)")
	fmt.Println()
	fmt.Println("  SESSION")
	fmt.Println("  /help                    Show this help")
	fmt.Println("  /exit                    Exit")
	fmt.Println(strings.Repeat("=", 62))
}
