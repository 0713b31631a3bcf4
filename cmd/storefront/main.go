package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yazanstore/storefront/config"
	"github.com/yazanstore/storefront/internal/app"
	"go.uber.org/zap"
)

var (
	configFile   = flag.String("c", "storefront.yml", "config file path")
	exportOrders = flag.Bool("export-orders", false, "write the order book as CSV to stdout and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApplication(cfg)
	if err := application.Init(cfg); err != nil {
		zap.S().Fatalf("init application: %v", err)
	}
	defer application.Release()

	if *exportOrders {
		if err := application.Backoffice().ExportOrdersCSV(os.Stdout); err != nil {
			zap.S().Fatalf("export orders: %v", err)
		}
		return
	}

	stats := application.Backoffice().Stats()
	zap.S().Infow("storefront ready",
		"products", stats.TotalProducts,
		"orders", stats.TotalOrders,
		"customers", stats.TotalCustomers,
		"revenue", stats.TotalRevenue,
		"pending_orders", stats.PendingOrders,
		"pending_payments", stats.PendingPayments,
	)
}
