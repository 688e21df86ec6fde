// Package receipt derives the receipt view model from a transaction and a
// station profile. Compute is a pure function: identical inputs always yield
// identical outputs and no state is carried between calls.
package receipt

import (
	"math"
	"strings"

	"github.com/prasetyow/nota-spbu-api/internal/domain/entity"
	"github.com/prasetyow/nota-spbu-api/internal/domain/pricing"
	"github.com/prasetyow/nota-spbu-api/pkg/format"
)

// Model selects one of the two fixed receipt layouts.
const (
	Model1 = "1" // default: full field list, footer always shown
	Model2 = "2" // alternate: subsidy breakdown when present, footer only with subsidy
)

// View is the computed receipt view model. All derived totals are kept
// unrounded; rounding happens at display time only.
type View struct {
	Model string `json:"model"`

	StationName  string   `json:"station_name"`
	AddressLines []string `json:"address_lines"`
	ReceiptWidth int      `json:"receipt_width"`

	Shift          string `json:"shift"`
	SequenceNumber string `json:"sequence_number"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	PumpID         string `json:"pump_id"`
	ProductName    string `json:"product_name"`
	OperatorName   string `json:"operator_name"`
	PlateNumber    string `json:"plate_number"`

	UnitPrice  float64 `json:"unit_price"`
	Volume     float64 `json:"volume"`
	GrossTotal float64 `json:"gross_total"`
	Cash       float64 `json:"cash"`

	HasSubsidy          bool    `json:"has_subsidy"`
	NonSubsidyUnitPrice int64   `json:"non_subsidy_unit_price,omitempty"`
	SubsidyUnitAmount   int64   `json:"subsidy_unit_amount,omitempty"`
	NonSubsidyTotal     float64 `json:"non_subsidy_total"`
	SubsidyTotal        float64 `json:"subsidy_total"`

	// ShowFooter preserves the layout asymmetry: Model 1 always shows the
	// footer, Model 2 omits it entirely for non-subsidized products.
	ShowFooter  bool     `json:"show_footer"`
	FooterLines []string `json:"footer_lines"`
}

// NormalizeModel maps any flag value other than "2" to Model1.
func NormalizeModel(model string) string {
	if model == Model2 {
		return Model2
	}
	return Model1
}

// Compute derives the receipt view from a transaction and station profile.
// All numeric inputs are defensively coerced; no errors are raised.
func Compute(tx *entity.Transaction, station *entity.StationProfile, table *pricing.Table, model string) View {
	model = NormalizeModel(model)

	volume := sanitize(tx.VolumeLiters)
	if volume < 0 {
		volume = 0
	}
	unitPrice := sanitize(tx.UnitPrice)
	gross := volume * unitPrice

	// A blank cash field falls back to the gross total so the cash figure is
	// never empty on the rendered receipt.
	cash := sanitize(tx.CashAmount)
	if cash == 0 {
		cash = gross
	}

	v := View{
		Model:          model,
		StationName:    station.Name,
		AddressLines:   splitLines(station.Address),
		ReceiptWidth:   station.ReceiptWidth,
		Shift:          tx.Shift,
		SequenceNumber: tx.SequenceNumber,
		Date:           tx.Date,
		Time:           tx.Time,
		PumpID:         tx.PumpID,
		ProductName:    tx.ProductName,
		OperatorName:   tx.OperatorName,
		PlateNumber:    tx.PlateNumber,
		UnitPrice:      unitPrice,
		Volume:         volume,
		GrossTotal:     gross,
		Cash:           cash,
	}

	if subsidy, ok := table.SubsidyOf(tx.ProductName); ok {
		v.HasSubsidy = true
		v.NonSubsidyUnitPrice = subsidy.NonSubsidyPrice
		v.SubsidyUnitAmount = subsidy.SubsidyAmount
		v.NonSubsidyTotal = float64(subsidy.NonSubsidyPrice) * volume
		v.SubsidyTotal = float64(subsidy.SubsidyAmount) * volume
	} else {
		v.NonSubsidyTotal = gross
		v.SubsidyTotal = 0
	}

	// First occurrence only; the template is expected to contain at most one
	// placeholder.
	footer := strings.Replace(station.FooterNote, "{subsidi}", format.RupiahRound(v.SubsidyTotal), 1)
	v.FooterLines = splitLines(footer)
	v.ShowFooter = model == Model1 || v.HasSubsidy

	return v
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
