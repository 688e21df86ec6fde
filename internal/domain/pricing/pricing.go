// Package pricing holds the fuel product price table and the government
// subsidy breakdown. Both are immutable after construction and injected from
// configuration at startup so prices can change without a rebuild.
package pricing

import (
	"fmt"
	"sort"
)

// Subsidy is the per-liter subsidy breakdown for a subsidized product.
type Subsidy struct {
	NonSubsidyPrice int64 `json:"non_subsidy_price"`
	SubsidyAmount   int64 `json:"subsidy_amount"`
}

// Table maps product names to unit prices and, for a subset of products, to
// subsidy entries.
type Table struct {
	prices    map[string]int64
	subsidies map[string]Subsidy
}

// New builds a pricing table from configuration data. The maps are copied so
// the table stays immutable even if the caller mutates its arguments.
func New(prices map[string]int64, subsidies map[string]Subsidy) *Table {
	t := &Table{
		prices:    make(map[string]int64, len(prices)),
		subsidies: make(map[string]Subsidy, len(subsidies)),
	}
	for name, price := range prices {
		t.prices[name] = price
	}
	for name, s := range subsidies {
		t.subsidies[name] = s
	}
	return t
}

// PriceOf returns the unit price for a product, or 0 when the product is not
// in the table. Missing products are treated as zero-cost by callers; this is
// a deliberate fallback, not an error.
func (t *Table) PriceOf(productName string) int64 {
	return t.prices[productName]
}

// SubsidyOf returns the subsidy entry for a product. Absence means the
// receipt is computed with no subsidy breakdown.
func (t *Table) SubsidyOf(productName string) (Subsidy, bool) {
	s, ok := t.subsidies[productName]
	return s, ok
}

// ProductNames returns all priced product names in stable order.
func (t *Table) ProductNames() []string {
	names := make([]string, 0, len(t.prices))
	for name := range t.prices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Prices returns a copy of the full price map, for API listings.
func (t *Table) Prices() map[string]int64 {
	out := make(map[string]int64, len(t.prices))
	for name, price := range t.prices {
		out[name] = price
	}
	return out
}

// Validate checks the consistency of the two tables: every subsidy entry must
// reference a priced product, and the non-subsidy price must equal the
// subsidized price plus the subsidy amount. If the tables drift, displayed
// totals become inconsistent, so drift is reported at startup.
func (t *Table) Validate() error {
	for name, s := range t.subsidies {
		price, ok := t.prices[name]
		if !ok {
			return fmt.Errorf("subsidy entry %q has no price entry", name)
		}
		if s.NonSubsidyPrice != price+s.SubsidyAmount {
			return fmt.Errorf("subsidy entry %q is inconsistent: non-subsidy price %d != subsidized price %d + subsidy %d",
				name, s.NonSubsidyPrice, price, s.SubsidyAmount)
		}
	}
	return nil
}
