package export

import (
	"bytes"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyow/nota-spbu-api/pkg/render"
)

func testDoc() *render.Document {
	doc := render.NewDocument(40)
	doc.CenterBold("SPBU SEMARANG DEMAK, BATU")
	doc.Center("JL. RY SEMARANG DEMAK DS.BATU")
	doc.Separator('-')
	doc.KeyValue("Volume", ": (L) 20.00")
	doc.KeyValueBold("Total Harga", ": Rp. 200.000")
	return doc
}

func newReadyExporter(t *testing.T) *Exporter {
	t.Helper()
	assets := NewAssetLoader()
	assets.LoadInBackground("", 0)
	require.True(t, assets.Ready())
	return New(assets)
}

func TestAssetLoaderStates(t *testing.T) {
	assets := NewAssetLoader()
	assert.Equal(t, StateUnloaded, assets.State())
	assert.False(t, assets.Ready())
	assert.NoError(t, assets.Err())

	// No logo configured: ready immediately, no fetch.
	assets.LoadInBackground("", 0)
	assert.Equal(t, StateReady, assets.State())

	_, _, hasLogo := assets.Logo()
	assert.False(t, hasLogo)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unloaded", StateUnloaded.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "failed", StateFailed.String())
}

func TestExportRejectedBeforeReady(t *testing.T) {
	e := New(NewAssetLoader())

	_, _, err := e.Export(testDoc(), 300, FormatJPG)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	e := newReadyExporter(t)

	_, _, err := e.Export(testDoc(), 300, "gif")
	assert.Error(t, err)
}

func TestExportJPEG(t *testing.T) {
	e := newReadyExporter(t)

	data, contentType, err := e.Export(testDoc(), 300, FormatJPG)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	// 40 columns of 7px glyphs plus 10px padding each side fill exactly
	// 300px; the canvas is captured at 3x.
	assert.Equal(t, 900, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestExportJPEGFitsLongestLine(t *testing.T) {
	e := newReadyExporter(t)

	doc := render.NewDocument(42)
	doc.Separator('-')
	doc.KeyValueBold("Total Harga", ": Rp. 122.000")

	data, _, err := e.Export(doc, 300, FormatJPG)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	// 42 glyph cells need 10+42*7+10 = 314px, more than the 300px profile
	// width; the canvas grows instead of clipping the last cell.
	assert.Equal(t, 314*3, img.Bounds().Dx())
}

func TestExportPDF(t *testing.T) {
	e := newReadyExporter(t)

	data, contentType, err := e.Export(testDoc(), 300, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGetStatus(t *testing.T) {
	e := newReadyExporter(t)
	status := e.GetStatus()
	assert.Equal(t, "ready", status.State)
	assert.Empty(t, status.Error)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "nota-spbu-482913.jpg", FileName("482913", FormatJPG))
	assert.Equal(t, "nota-spbu-123456.pdf", FileName("123456", FormatPDF))
}
