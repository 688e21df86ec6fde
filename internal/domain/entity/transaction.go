package entity

import (
	"time"

	"github.com/prasetyow/nota-spbu-api/pkg/format"
)

// SequenceAutomatic is the sequence-number placeholder shown until the first
// export generates a real 6-digit number.
const SequenceAutomatic = "Otomatis"

// Transaction is the input data for a single fuel sale. It is session-scoped
// and held in memory, never persisted. UnitPrice mirrors the pricing table's
// value for ProductName and is overwritten whenever ProductName changes.
type Transaction struct {
	Shift          string  `json:"shift"`
	SequenceNumber string  `json:"sequence_number"`
	Date           string  `json:"date"` // DD/MM/YYYY
	Time           string  `json:"time"` // HH:MM:SS
	PumpID         string  `json:"pump_id"`
	ProductName    string  `json:"product_name"`
	UnitPrice      float64 `json:"unit_price"`
	VolumeLiters   float64 `json:"volume_liters"`
	CashAmount     float64 `json:"cash_amount"`
	OperatorName   string  `json:"operator_name"`
	PlateNumber    string  `json:"plate_number"`
}

// NewTransaction returns a transaction with the defaults a new session
// starts from. The unit price is looked up from the supplied price so the
// product/price coupling holds from the first render.
func NewTransaction(productName string, unitPrice int64) *Transaction {
	now := time.Now()
	return &Transaction{
		Shift:          "1",
		SequenceNumber: SequenceAutomatic,
		Date:           format.Date(now),
		Time:           format.Clock(now),
		PumpID:         "4",
		ProductName:    productName,
		UnitPrice:      float64(unitPrice),
		VolumeLiters:   20.00,
		CashAmount:     200000,
		OperatorName:   "OPERATOR",
		PlateNumber:    "H 1490 LF",
	}
}
