package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *Table {
	return New(
		map[string]int64{
			"Pertalite":     10000,
			"Pertamax":      12200,
			"Solar Subsidi": 6800,
		},
		map[string]Subsidy{
			"Pertalite":     {NonSubsidyPrice: 10612, SubsidyAmount: 612},
			"Solar Subsidi": {NonSubsidyPrice: 7412, SubsidyAmount: 612},
		},
	)
}

func TestPriceOf(t *testing.T) {
	table := testTable()

	assert.Equal(t, int64(10000), table.PriceOf("Pertalite"))
	assert.Equal(t, int64(12200), table.PriceOf("Pertamax"))

	// Unknown products price at 0, no error.
	assert.Equal(t, int64(0), table.PriceOf("Avtur"))
	assert.Equal(t, int64(0), table.PriceOf(""))
}

func TestSubsidyOf(t *testing.T) {
	table := testTable()

	s, ok := table.SubsidyOf("Pertalite")
	require.True(t, ok)
	assert.Equal(t, int64(10612), s.NonSubsidyPrice)
	assert.Equal(t, int64(612), s.SubsidyAmount)

	_, ok = table.SubsidyOf("Pertamax")
	assert.False(t, ok)
}

func TestProductNamesSorted(t *testing.T) {
	names := testTable().ProductNames()
	assert.Equal(t, []string{"Pertalite", "Pertamax", "Solar Subsidi"}, names)
}

func TestTableIsImmutable(t *testing.T) {
	prices := map[string]int64{"Pertalite": 10000}
	table := New(prices, nil)

	prices["Pertalite"] = 1
	assert.Equal(t, int64(10000), table.PriceOf("Pertalite"))

	table.Prices()["Pertalite"] = 2
	assert.Equal(t, int64(10000), table.PriceOf("Pertalite"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, testTable().Validate())

	// Subsidy entry without a priced product.
	orphan := New(
		map[string]int64{"Pertamax": 12200},
		map[string]Subsidy{"Pertalite": {NonSubsidyPrice: 10612, SubsidyAmount: 612}},
	)
	assert.Error(t, orphan.Validate())

	// Non-subsidy price drifted away from price + subsidy.
	drifted := New(
		map[string]int64{"Pertalite": 10000},
		map[string]Subsidy{"Pertalite": {NonSubsidyPrice: 11000, SubsidyAmount: 612}},
	)
	assert.Error(t, drifted.Validate())
}
