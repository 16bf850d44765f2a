package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/domain/tax"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/service"
	"github.com/flexprice/storefront/internal/types"
)

// taxcalc prints the tax calculation for a country and amount, the same JSON
// the /tax/calculate endpoint returns.
//
//	go run ./cmd/taxcalc -country DE -amount 1000
func main() {
	var (
		country = flag.String("country", "", "ISO-3166 alpha-2 country code or country name")
		amount  = flag.String("amount", "", "base amount in minor currency units")
		rates   = flag.Bool("rates", false, "print the EU VAT table instead")
		pretty  = flag.Bool("pretty", true, "indent the output")
	)
	flag.Parse()

	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelWarn
	log, err := logger.NewLogger(cfg)
	if err != nil {
		log = logger.GetLogger()
	}

	svc := service.NewTaxService(service.ServiceParams{
		Logger: log,
		Config: cfg,
	})
	ctx := context.Background()

	var out any
	if *rates {
		out, err = svc.ListRates(ctx)
	} else {
		var base int64
		base, err = tax.ParseAmount(*amount)
		if err == nil {
			out, err = svc.Calculate(ctx, *country, base)
		}
	}
	if err != nil {
		log.Errorw("tax calculation failed", "country", *country, "amount", *amount, "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
