package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyow/nota-spbu-api/internal/domain/entity"
	"github.com/prasetyow/nota-spbu-api/internal/domain/pricing"
)

func testPricingTable() *pricing.Table {
	return pricing.New(
		map[string]int64{
			"Pertalite":     10000,
			"Pertamax":      12200,
			"Solar Subsidi": 6800,
		},
		map[string]pricing.Subsidy{
			"Pertalite":     {NonSubsidyPrice: 10612, SubsidyAmount: 612},
			"Solar Subsidi": {NonSubsidyPrice: 7412, SubsidyAmount: 612},
		},
	)
}

func newTestTransactionService() *TransactionService {
	return NewTransactionService(testPricingTable(), time.Hour)
}

func strp(s string) *string { return &s }

func TestTransactionDefaults(t *testing.T) {
	svc := newTestTransactionService()

	tx := svc.Get("session-a")
	assert.Equal(t, "1", tx.Shift)
	assert.Equal(t, entity.SequenceAutomatic, tx.SequenceNumber)
	assert.Equal(t, "Pertalite", tx.ProductName)
	assert.Equal(t, 10000.0, tx.UnitPrice)
	assert.Equal(t, 20.0, tx.VolumeLiters)
	assert.Equal(t, 200000.0, tx.CashAmount)
}

func TestTransactionSessionsAreIsolated(t *testing.T) {
	svc := newTestTransactionService()

	svc.Update("session-a", &UpdateTransactionInput{OperatorName: strp("BUDI")})

	assert.Equal(t, "BUDI", svc.Get("session-a").OperatorName)
	assert.Equal(t, "OPERATOR", svc.Get("session-b").OperatorName)
}

func TestTransactionUpdateCoercesNumbers(t *testing.T) {
	svc := newTestTransactionService()

	tx := svc.Update("s", &UpdateTransactionInput{
		VolumeLiters: strp("12.5"),
		CashAmount:   strp("not a number"),
	})

	assert.Equal(t, 12.5, tx.VolumeLiters)
	assert.Equal(t, 0.0, tx.CashAmount)
}

func TestTransactionUpdateClampsNegativeVolume(t *testing.T) {
	svc := newTestTransactionService()

	tx := svc.Update("s", &UpdateTransactionInput{VolumeLiters: strp("-5")})
	assert.Equal(t, 0.0, tx.VolumeLiters)
}

func TestProductChangeOverwritesUnitPrice(t *testing.T) {
	svc := newTestTransactionService()

	// A manually typed price in the same patch loses to the table lookup.
	tx := svc.Update("s", &UpdateTransactionInput{
		UnitPrice:   strp("99999"),
		ProductName: strp("Pertamax"),
	})

	assert.Equal(t, "Pertamax", tx.ProductName)
	assert.Equal(t, 12200.0, tx.UnitPrice)

	// An unknown product prices at 0.
	tx = svc.Update("s", &UpdateTransactionInput{ProductName: strp("Avtur")})
	assert.Equal(t, 0.0, tx.UnitPrice)

	// Without a product change the manual price sticks.
	tx = svc.Update("s", &UpdateTransactionInput{UnitPrice: strp("11500")})
	assert.Equal(t, 11500.0, tx.UnitPrice)
}

func TestGetReturnsCopy(t *testing.T) {
	svc := newTestTransactionService()

	tx := svc.Get("s")
	tx.OperatorName = "MUTATED"

	assert.Equal(t, "OPERATOR", svc.Get("s").OperatorName)
}

func TestActiveStationSelection(t *testing.T) {
	svc := newTestTransactionService()

	assert.Equal(t, "", svc.ActiveStation("s"))
	svc.SetStation("s", "spbu-1")
	assert.Equal(t, "spbu-1", svc.ActiveStation("s"))
}

func TestRegenerateSequence(t *testing.T) {
	svc := newTestTransactionService()

	require.Equal(t, entity.SequenceAutomatic, svc.Get("s").SequenceNumber)

	tx := svc.RegenerateSequence("s")
	assert.Regexp(t, `^\d{6}$`, tx.SequenceNumber)
	assert.Equal(t, tx.SequenceNumber, svc.Get("s").SequenceNumber)
}

func TestExportBusyFlag(t *testing.T) {
	svc := newTestTransactionService()

	require.True(t, svc.BeginExport("s"))
	assert.False(t, svc.BeginExport("s"))

	svc.EndExport("s")
	assert.True(t, svc.BeginExport("s"))

	// Other sessions are unaffected.
	assert.True(t, svc.BeginExport("other"))
}
