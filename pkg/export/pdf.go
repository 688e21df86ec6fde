package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/prasetyow/nota-spbu-api/pkg/render"
)

const (
	mmPerPx    = 25.4 / 96.0 // CSS pixel to millimeter
	pdfMargin  = 4.0         // mm
	pdfLineMM  = 3.2         // row height per text line
	pdfLogoMM  = 14.0        // logo row height
	pdfFontPts = 7.0
)

// renderPDF wraps the receipt as a single full-bleed page sized to the
// rendered view's pixel dimensions.
func (e *Exporter) renderPDF(doc *render.Document, widthPx int) ([]byte, error) {
	if widthPx <= 0 {
		widthPx = 300
	}

	_, logoPNG, hasLogo := e.assets.Logo()
	lines := doc.Lines()

	pageWidth := float64(widthPx) * mmPerPx
	pageHeight := 2*pdfMargin + float64(len(lines))*pdfLineMM
	if hasLogo {
		pageHeight += pdfLogoMM
	}

	cfg := config.NewBuilder().
		WithDimensions(pageWidth, pageHeight).
		WithLeftMargin(pdfMargin).
		WithTopMargin(pdfMargin).
		WithRightMargin(pdfMargin).
		WithDefaultFont(&props.Font{Family: fontfamily.Courier, Size: pdfFontPts}).
		Build()

	m := maroto.New(cfg)

	if hasLogo {
		m.AddRow(pdfLogoMM, image.NewFromBytesCol(12, logoPNG, extension.Png, props.Rect{
			Center:  true,
			Percent: 90,
		}))
	}

	for _, line := range lines {
		style := fontstyle.Normal
		if line.Bold {
			style = fontstyle.Bold
		}
		m.AddRow(pdfLineMM, col.New(12).Add(
			text.New(line.Text, props.Text{
				Size:   pdfFontPts,
				Style:  style,
				Align:  align.Left,
				Family: fontfamily.Courier,
			}),
		))
	}

	pdfDoc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("export: failed to generate PDF: %w", err)
	}
	return pdfDoc.GetBytes(), nil
}
