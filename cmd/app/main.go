package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"sales-desk/internal/adapters/cli"
	"sales-desk/internal/adapters/repl"
	"sales-desk/internal/app"
	"sales-desk/internal/core"
	"sales-desk/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	catalog := core.NewCatalogService(pool)
	orders := core.NewOrderService(pool)
	svc := app.NewAppService(catalog, orders)

	// With arguments: one-shot CLI. Without: interactive REPL.
	if len(os.Args) > 1 {
		cli.Run(ctx, svc, os.Args[1:])
		return
	}
	repl.Run(ctx, svc, bufio.NewReader(os.Stdin))
}
