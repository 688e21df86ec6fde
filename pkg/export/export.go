package export

import (
	"errors"
	"fmt"

	"github.com/prasetyow/nota-spbu-api/pkg/render"
)

// Output formats.
const (
	FormatJPG = "jpg"
	FormatPDF = "pdf"
)

// ErrNotReady is returned when an export is requested before the asset load
// completed, or after it failed.
var ErrNotReady = errors.New("export: assets not ready")

// Exporter turns a rendered receipt document into a downloadable file.
type Exporter struct {
	assets *AssetLoader
}

// New creates an exporter backed by the given asset loader.
func New(assets *AssetLoader) *Exporter {
	return &Exporter{assets: assets}
}

// Ready reports whether the exporter can serve requests.
func (e *Exporter) Ready() bool {
	return e.assets.Ready()
}

// Status describes the capability state for API clients.
type Status struct {
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}

// GetStatus returns the current capability status.
func (e *Exporter) GetStatus() Status {
	st := Status{State: e.assets.State().String()}
	if err := e.assets.Err(); err != nil {
		st.Error = err.Error()
	}
	return st
}

// Export renders the document in the requested format and returns the file
// bytes together with the content type. widthPx is the station profile's
// receipt width.
func (e *Exporter) Export(doc *render.Document, widthPx int, format string) ([]byte, string, error) {
	if !e.assets.Ready() {
		return nil, "", ErrNotReady
	}

	switch format {
	case FormatJPG:
		data, err := e.renderJPEG(doc, widthPx)
		return data, "image/jpeg", err
	case FormatPDF:
		data, err := e.renderPDF(doc, widthPx)
		return data, "application/pdf", err
	default:
		return nil, "", fmt.Errorf("export: unsupported format %q", format)
	}
}

// FileName builds the exported file name from the transaction's sequence
// number, e.g. "nota-spbu-482913.jpg".
func FileName(sequenceNumber, format string) string {
	return fmt.Sprintf("nota-spbu-%s.%s", sequenceNumber, format)
}
