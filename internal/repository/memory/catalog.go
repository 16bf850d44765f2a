package memory

import (
	"context"

	"github.com/flexprice/storefront/internal/domain/product"
	"github.com/flexprice/storefront/internal/types"
)

// DefaultCatalog returns the demo products served in local development
func DefaultCatalog() []*product.Product {
	return []*product.Product{
		newCatalogProduct("edge-router", "Edge Router X2", "Dual WAN router with a hardware firewall",
			types.ProductKindHardware, 12900, 13900, true),
		newCatalogProduct("mesh-node", "Mesh Node", "Add-on access point for whole-home coverage",
			types.ProductKindHardware, 7990, 8490, true),
		newCatalogProduct("smart-plug", "Smart Plug", "Wi-Fi plug with energy metering",
			types.ProductKindHardware, 2499, 2699, true),
		newCatalogProduct("vpn-licence", "VPN Licence (1 year)", "Site-to-site VPN for up to 5 devices",
			types.ProductKindSoftware, 4900, 5400, true),
		newCatalogProduct("backup-suite", "Backup Suite", "Encrypted offsite backups for one machine",
			types.ProductKindSoftware, 1999, 2199, true),
		newCatalogProduct("legacy-modem", "Legacy Modem", "Discontinued ADSL modem",
			types.ProductKindHardware, 3900, 4200, false),
	}
}

func newCatalogProduct(slug, name, description string, kind types.ProductKind, eur, usd int64, active bool) *product.Product {
	return &product.Product{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT),
		Slug:        slug,
		Name:        name,
		Description: description,
		Kind:        kind,
		Prices: map[types.Currency]int64{
			types.CurrencyEUR: eur,
			types.CurrencyUSD: usd,
		},
		Active: active,
	}
}

// SeedCatalog loads products into the store, stopping at the first failure
func SeedCatalog(ctx context.Context, store product.Repository, products []*product.Product) error {
	for _, p := range products {
		if err := store.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
