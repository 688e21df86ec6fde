package config

import (
	"encoding/json"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/prasetyow/nota-spbu-api/internal/domain/pricing"
)

// defaultPricing is the built-in price list (per October 2025) and subsidy
// breakdown, used when no pricing file is configured. Product names are the
// join key between the two maps.
func defaultPricing() PricingConfig {
	return PricingConfig{
		Products: map[string]int64{
			"Pertalite":      10000,
			"Pertamax":       12200,
			"Pertamax Turbo": 13100,
			"Dexlite":        13700,
			"Pertamina Dex":  14000,
			"Solar Subsidi":  6800,
		},
		Subsidies: map[string]pricing.Subsidy{
			"Pertalite":     {NonSubsidyPrice: 10612, SubsidyAmount: 612},
			"Solar Subsidi": {NonSubsidyPrice: 7412, SubsidyAmount: 612},
		},
	}
}

// loadPricing reads the pricing table from the JSON file named by
// PRICING_FILE. Viper is not used for the table itself because it lowercases
// map keys, which would mangle product names.
func loadPricing() PricingConfig {
	viper.SetDefault("PRICING_FILE", "")

	path := viper.GetString("PRICING_FILE")
	if path == "" {
		return defaultPricing()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: failed to read pricing file %s, using defaults: %v", path, err)
		return defaultPricing()
	}

	var cfg struct {
		Products  map[string]int64           `json:"products"`
		Subsidies map[string]pricing.Subsidy `json:"subsidies"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Warning: failed to parse pricing file %s, using defaults: %v", path, err)
		return defaultPricing()
	}

	return PricingConfig{Products: cfg.Products, Subsidies: cfg.Subsidies}
}
