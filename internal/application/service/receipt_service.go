package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/prasetyow/nota-spbu-api/internal/domain/entity"
	"github.com/prasetyow/nota-spbu-api/internal/domain/pricing"
	"github.com/prasetyow/nota-spbu-api/internal/domain/receipt"
	"github.com/prasetyow/nota-spbu-api/internal/domain/repository"
	"github.com/prasetyow/nota-spbu-api/pkg/apperror"
	"github.com/prasetyow/nota-spbu-api/pkg/export"
	"github.com/prasetyow/nota-spbu-api/pkg/format"
	"github.com/prasetyow/nota-spbu-api/pkg/render"
)

// model2HeaderCode is the station terminal code printed under the logo on the
// Model 2 layout.
const model2HeaderCode = "4459521"

// ReceiptService derives the receipt view, renders it, and drives the export
// pipeline.
type ReceiptService struct {
	transactions *TransactionService
	stationRepo  repository.StationRepository
	table        *pricing.Table
	exporter     *export.Exporter
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	transactions *TransactionService,
	stationRepo repository.StationRepository,
	table *pricing.Table,
	exporter *export.Exporter,
) *ReceiptService {
	return &ReceiptService{
		transactions: transactions,
		stationRepo:  stationRepo,
		table:        table,
		exporter:     exporter,
	}
}

// PreviewResult is the computed view plus its rendered monospace lines.
type PreviewResult struct {
	View  receipt.View  `json:"view"`
	Lines []render.Line `json:"lines"`
}

// Preview computes and renders the receipt for the session's current
// transaction and active station profile.
func (s *ReceiptService) Preview(ctx context.Context, sessionID, stationID, model string) (*PreviewResult, error) {
	station, err := s.resolveStation(ctx, sessionID, stationID)
	if err != nil {
		return nil, err
	}

	tx := s.transactions.Get(sessionID)
	view := receipt.Compute(tx, station, s.table, model)
	doc := FormatReceipt(&view)

	return &PreviewResult{View: view, Lines: doc.Lines()}, nil
}

// ExportResult is a generated receipt file.
type ExportResult struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Export regenerates the transaction's sequence number, renders the receipt,
// and hands it to the export pipeline. Only one export per session may be in
// flight; the busy flag is cleared on every exit path.
func (s *ReceiptService) Export(ctx context.Context, sessionID, stationID, model, fileFormat string) (*ExportResult, error) {
	if fileFormat != export.FormatJPG && fileFormat != export.FormatPDF {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Unsupported export format %q, use 'jpg' or 'pdf'", fileFormat))
	}
	if !s.exporter.Ready() {
		return nil, apperror.ErrExporterNotReady
	}

	if !s.transactions.BeginExport(sessionID) {
		return nil, apperror.ErrExportInFlight
	}
	defer s.transactions.EndExport(sessionID)

	station, err := s.resolveStation(ctx, sessionID, stationID)
	if err != nil {
		return nil, err
	}

	// The sequence number changes first so the captured view reflects the
	// fresh number, never a stale one.
	tx := s.transactions.RegenerateSequence(sessionID)

	view := receipt.Compute(tx, station, s.table, model)
	doc := FormatReceipt(&view)

	data, contentType, err := s.exporter.Export(doc, station.ReceiptWidth, fileFormat)
	if err != nil {
		if errors.Is(err, export.ErrNotReady) {
			return nil, apperror.ErrExporterNotReady
		}
		return nil, apperror.NewAppError(500, "Failed to generate file: "+err.Error())
	}

	return &ExportResult{
		FileName:    export.FileName(tx.SequenceNumber, fileFormat),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// ExportStatus reports the export capability state.
func (s *ReceiptService) ExportStatus() export.Status {
	return s.exporter.GetStatus()
}

// resolveStation picks the active station profile: an explicit ID wins, then
// the session's selection, then the first profile in the store.
func (s *ReceiptService) resolveStation(ctx context.Context, sessionID, stationID string) (*entity.StationProfile, error) {
	if stationID == "" {
		stationID = s.transactions.ActiveStation(sessionID)
	}
	if stationID != "" {
		station, err := s.stationRepo.GetByID(ctx, stationID)
		if err != nil {
			return nil, err
		}
		if station == nil {
			return nil, apperror.NewNotFoundError("Station profile")
		}
		return station, nil
	}

	stations, err := s.stationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(stations) == 0 {
		return nil, apperror.NewNotFoundError("Station profile")
	}
	return &stations[0], nil
}

// FormatReceipt renders a computed view into fixed-width receipt lines.
// The two layouts consume the same computed values; Model 2 adds the subsidy
// breakdown when present and omits the footer when absent, while Model 1
// always prints the footer. The asymmetry is intentional.
func FormatReceipt(v *receipt.View) *render.Document {
	doc := render.NewDocument(charWidth(v.ReceiptWidth))
	if v.Model == receipt.Model2 {
		formatModel2(doc, v)
	} else {
		formatModel1(doc, v)
	}
	return doc
}

// charWidth maps the profile's pixel width to monospace columns. The
// rasterizer draws 7px glyphs inside a 10px pad on each side, so the column
// count derives from the drawable width, not the full canvas.
func charWidth(widthPx int) int {
	if widthPx <= 0 {
		widthPx = 300
	}
	w := (widthPx - 20) / 7
	if w < 24 {
		w = 24
	}
	if w > 64 {
		w = 64
	}
	return w
}

func formatModel1(doc *render.Document, v *receipt.View) {
	doc.CenterBold(v.StationName)
	for _, line := range v.AddressLines {
		doc.Center(line)
	}

	doc.Separator('-')
	doc.KeyValue("Shift: "+v.Shift, "No. Trans: "+v.SequenceNumber)
	doc.KeyValue("Waktu", ": "+v.Date+"  "+v.Time)
	doc.Separator('-')

	doc.KeyValue("Pulau/Pompa", ": "+v.PumpID)
	doc.KeyValue("Nama Produk", ": "+v.ProductName)
	doc.KeyValue("Harga/Liter", ": Rp. "+format.RupiahRound(v.UnitPrice))
	doc.KeyValue("Volume", fmt.Sprintf(": (L) %.2f", v.Volume))
	doc.KeyValueBold("Total Harga", ": Rp. "+format.RupiahRound(v.GrossTotal))
	doc.KeyValue("Operator", ": "+v.OperatorName)
	doc.KeyValue("Nopol", ": "+v.PlateNumber)

	doc.Separator('-')
	doc.KeyValueBold("CASH", format.RupiahRound(v.Cash))
	doc.Separator('-')

	doc.Blank()
	for _, line := range v.FooterLines {
		doc.Center(line)
	}
}

func formatModel2(doc *render.Document, v *receipt.View) {
	doc.CenterBold(model2HeaderCode)
	doc.Text(v.StationName)
	for _, line := range v.AddressLines {
		doc.Text(line)
	}

	doc.KeyValue("Shift: "+v.Shift, "No. Trans: "+v.SequenceNumber)
	doc.Text("Waktu: " + v.Date + " " + v.Time)
	doc.Separator('-')

	doc.KeyValue("Pulau/Pompa", ": "+v.PumpID)
	doc.KeyValue("Operator", ": "+v.OperatorName)
	doc.KeyValue("Jenis BBM", ": "+v.ProductName)
	doc.KeyValue("Volume", fmt.Sprintf(": %.2f liter", v.Volume))

	if v.HasSubsidy {
		doc.Blank()
		doc.Text("Informasi Harga BBM (Rp/Liter)")
		doc.Indented("Harga Non Subsidi", ": "+format.Rupiah(v.NonSubsidyUnitPrice))
		doc.Indented("Subsidi Pemerintah", ": "+format.Rupiah(v.SubsidyUnitAmount))
		doc.Indented("Harga Jual", ": "+format.RupiahRound(v.UnitPrice))
		doc.Blank()
		doc.Text("Total Penjualan (Rp)")
		doc.Indented("Tanpa Subsidi", ": "+format.RupiahRound(v.NonSubsidyTotal))
		doc.Indented("Subsidi Pemerintah", ": "+format.RupiahRound(v.SubsidyTotal))
		doc.Indented("Dibayar Konsumen", ": "+format.RupiahRound(v.GrossTotal))
	} else {
		doc.Blank()
		doc.KeyValueBold("Total Harga", ": Rp. "+format.RupiahRound(v.GrossTotal))
	}

	doc.Blank()
	doc.KeyValue("CASH", format.RupiahRound(v.Cash))
	doc.KeyValue("No. Plat", ": "+v.PlateNumber)

	if v.ShowFooter {
		doc.Blank()
		for _, line := range v.FooterLines {
			doc.Center(line)
		}
	}
}
