package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyow/nota-spbu-api/internal/domain/entity"
	"github.com/prasetyow/nota-spbu-api/internal/domain/receipt"
	"github.com/prasetyow/nota-spbu-api/pkg/apperror"
	"github.com/prasetyow/nota-spbu-api/pkg/export"
)

// readyExporter returns an exporter whose assets are ready without any
// network fetch (no logo configured).
func readyExporter() *export.Exporter {
	assets := export.NewAssetLoader()
	assets.LoadInBackground("", 0)
	return export.New(assets)
}

func coldExporter() *export.Exporter {
	return export.New(export.NewAssetLoader())
}

func newTestReceiptService(exp *export.Exporter, stations ...*entity.StationProfile) (*ReceiptService, *TransactionService) {
	if len(stations) == 0 {
		stations = []*entity.StationProfile{entity.DefaultStationProfile()}
	}
	table := testPricingTable()
	transactions := NewTransactionService(table, 0)
	svc := NewReceiptService(transactions, newFakeStationRepo(stations...), table, exp)
	return svc, transactions
}

func TestPreviewDefaultSession(t *testing.T) {
	svc, _ := newTestReceiptService(readyExporter())

	result, err := svc.Preview(context.Background(), "s", "", "1")
	require.NoError(t, err)

	assert.Equal(t, receipt.Model1, result.View.Model)
	assert.Equal(t, "Pertalite", result.View.ProductName)
	assert.Equal(t, entity.SequenceAutomatic, result.View.SequenceNumber)
	require.NotEmpty(t, result.Lines)

	// The default profile's name shows up centered on the first line.
	assert.Contains(t, result.Lines[0].Text, "SPBU SEMARANG DEMAK, BATU")
}

func TestPreviewModel2SubsidyBreakdown(t *testing.T) {
	svc, _ := newTestReceiptService(readyExporter())

	result, err := svc.Preview(context.Background(), "s", "", "2")
	require.NoError(t, err)

	var joined strings.Builder
	for _, line := range result.Lines {
		joined.WriteString(line.Text)
		joined.WriteString("\n")
	}
	text := joined.String()

	assert.Contains(t, text, "Informasi Harga BBM (Rp/Liter)")
	assert.Contains(t, text, "Harga Non Subsidi")
	assert.Contains(t, text, "Total Penjualan (Rp)")
	// Pertalite at 20 liters: 612 * 20 subsidy in the footer.
	assert.Contains(t, text, "12.240")
}

func TestPreviewUnknownStation(t *testing.T) {
	svc, _ := newTestReceiptService(readyExporter())

	_, err := svc.Preview(context.Background(), "s", "missing", "1")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestExportRegeneratesSequence(t *testing.T) {
	svc, transactions := newTestReceiptService(readyExporter())

	require.Equal(t, entity.SequenceAutomatic, transactions.Get("s").SequenceNumber)

	result, err := svc.Export(context.Background(), "s", "", "1", export.FormatJPG)
	require.NoError(t, err)

	seq := transactions.Get("s").SequenceNumber
	assert.Regexp(t, `^\d{6}$`, seq)
	assert.Equal(t, "nota-spbu-"+seq+".jpg", result.FileName)
	assert.Equal(t, "image/jpeg", result.ContentType)
	assert.NotEmpty(t, result.Data)
}

func TestExportPDF(t *testing.T) {
	svc, _ := newTestReceiptService(readyExporter())

	result, err := svc.Export(context.Background(), "s", "", "2", export.FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasSuffix(result.FileName, ".pdf"))
	assert.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	svc, _ := newTestReceiptService(readyExporter())

	_, err := svc.Export(context.Background(), "s", "", "1", "png")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestExportGatedOnAssets(t *testing.T) {
	svc, _ := newTestReceiptService(coldExporter())

	_, err := svc.Export(context.Background(), "s", "", "1", export.FormatJPG)
	require.Error(t, err)
	assert.Equal(t, apperror.ErrExporterNotReady, apperror.GetAppError(err))

	status := svc.ExportStatus()
	assert.Equal(t, "unloaded", status.State)
}

func TestExportBusyFlagCleared(t *testing.T) {
	svc, transactions := newTestReceiptService(readyExporter())

	// A concurrent export holds the flag; the second request is rejected.
	require.True(t, transactions.BeginExport("s"))
	_, err := svc.Export(context.Background(), "s", "", "1", export.FormatJPG)
	require.Error(t, err)
	assert.Equal(t, apperror.ErrExportInFlight, apperror.GetAppError(err))
	transactions.EndExport("s")

	// The flag is released after both failing and successful exports.
	_, err = svc.Export(context.Background(), "s", "missing", "1", export.FormatJPG)
	require.Error(t, err)
	_, err = svc.Export(context.Background(), "s", "", "1", export.FormatJPG)
	require.NoError(t, err)
}

func TestResolveStationPrecedence(t *testing.T) {
	first := entity.DefaultStationProfile()
	first.ID = "spbu-a"
	second := entity.DefaultStationProfile()
	second.ID = "spbu-b"
	second.Name = "SPBU KEDUA"

	svc, transactions := newTestReceiptService(readyExporter(), first, second)

	// No selection: the first profile in the list wins.
	result, err := svc.Preview(context.Background(), "s", "", "1")
	require.NoError(t, err)
	assert.Equal(t, first.Name, result.View.StationName)

	// Session selection.
	transactions.SetStation("s", "spbu-b")
	result, err = svc.Preview(context.Background(), "s", "", "1")
	require.NoError(t, err)
	assert.Equal(t, "SPBU KEDUA", result.View.StationName)

	// Explicit ID beats the session selection.
	result, err = svc.Preview(context.Background(), "s", "spbu-a", "1")
	require.NoError(t, err)
	assert.Equal(t, first.Name, result.View.StationName)
}

func TestFormatReceiptWidth(t *testing.T) {
	v := &receipt.View{Model: receipt.Model1, ReceiptWidth: 300}
	doc := FormatReceipt(v)

	// 300px minus 10px raster padding each side leaves 280px of drawable
	// width, 40 columns of 7px glyphs.
	assert.Equal(t, 40, doc.Width())

	// Width is clamped on both ends.
	v.ReceiptWidth = 50
	assert.Equal(t, 24, FormatReceipt(v).Width())
	v.ReceiptWidth = 2000
	assert.Equal(t, 64, FormatReceipt(v).Width())
}
