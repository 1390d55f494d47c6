package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"sales-desk/internal/app"
)

// Run starts the interactive REPL loop. It reads slash commands from reader
// and dispatches them against the application service. The order-entry session
// (/new-order) owns its draft order for the duration of the wizard; nothing
// else ever touches it.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("Sales Desk")
	fmt.Println("Manage customers, products and sales orders. Type /help for commands.")
	fmt.Println(strings.Repeat("-", 70))

	errExit := fmt.Errorf("exit")

	dispatchSlash := func(input string) error {
		tokens := strings.Fields(strings.TrimPrefix(input, "/"))
		if len(tokens) == 0 {
			return nil
		}
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch cmd {
		case "customers":
			result, err := svc.ListCustomers(ctx)
			if err != nil {
				return err
			}
			printCustomers(result)

		case "products":
			// Catalog view: out-of-stock products stay visible here.
			result, err := svc.ListProducts(ctx, true)
			if err != nil {
				return err
			}
			printProducts(result)

		case "orders":
			result, err := svc.ListOrders(ctx)
			if err != nil {
				return err
			}
			printOrders(result)

		case "order":
			if len(args) < 1 {
				fmt.Println("Usage: /order <order-id>")
				return nil
			}
			orderID, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("Invalid order id: %s\n", args[0])
				return nil
			}
			result, err := svc.GetOrder(ctx, orderID)
			if err != nil {
				return err
			}
			printOrderDetail(result.Order)

		case "new-customer":
			handleNewCustomer(ctx, reader, svc)

		case "new-product":
			handleNewProduct(ctx, reader, svc)

		case "new-order":
			handleNewOrder(ctx, reader, svc)

		case "help", "h":
			printHelp()

		case "exit", "quit", "e", "q":
			return errExit

		default:
			fmt.Printf("Unknown command: /%s  (type /help for all commands)\n", cmd)
		}
		return nil
	}

	for {
		fmt.Print("\n> ")
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !strings.HasPrefix(input, "/") {
			fmt.Printf("Commands start with a slash — try /help.\n")
			continue
		}

		if err := dispatchSlash(input); err != nil {
			if err == errExit {
				fmt.Println("Goodbye!")
				break
			}
			fmt.Printf("Error: %v\n", err)
		}
	}
}
