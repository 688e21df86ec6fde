package export

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/prasetyow/nota-spbu-api/pkg/render"
)

const (
	rasterScale = 3  // capture at 3x for crisp text
	jpegQuality = 90 // 0.9 encoder quality

	rasterPadding  = 10 // px around the receipt body
	rasterLineStep = 15 // px per text line at 1x
	glyphAdvance   = 7  // basicfont.Face7x13 horizontal advance
	logoWidthPx    = 120
)

// renderJPEG rasterizes the receipt lines onto a white canvas at the
// profile's pixel width, composites the logo when loaded, upscales 3x, and
// encodes at quality 90.
func (e *Exporter) renderJPEG(doc *render.Document, widthPx int) ([]byte, error) {
	if widthPx <= 0 {
		widthPx = 300
	}

	logo, _, hasLogo := e.assets.Logo()

	logoHeight := 0
	if hasLogo {
		b := logo.Bounds()
		logoHeight = b.Dy() * logoWidthPx / b.Dx()
	}

	lines := doc.Lines()

	// Grow the canvas when the longest line would overrun the profile width,
	// so no glyph cell is ever clipped.
	maxLen := 0
	for _, line := range lines {
		if len(line.Text) > maxLen {
			maxLen = len(line.Text)
		}
	}
	if need := rasterPadding*2 + maxLen*glyphAdvance; need > widthPx {
		widthPx = need
	}

	height := rasterPadding*2 + logoHeight + len(lines)*rasterLineStep
	canvas := image.NewRGBA(image.Rect(0, 0, widthPx, height))
	xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	y := rasterPadding
	if hasLogo {
		left := (widthPx - logoWidthPx) / 2
		dst := image.Rect(left, y, left+logoWidthPx, y+logoHeight)
		xdraw.ApproxBiLinear.Scale(canvas, dst, logo, logo.Bounds(), xdraw.Over, nil)
		y += logoHeight
	}

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	for _, line := range lines {
		y += rasterLineStep
		drawer.Dot = fixed.P(rasterPadding, y)
		drawer.DrawString(line.Text)
		if line.Bold {
			// Fake bold: overstrike shifted one pixel right.
			drawer.Dot = fixed.P(rasterPadding+1, y)
			drawer.DrawString(line.Text)
		}
	}

	scaled := image.NewRGBA(image.Rect(0, 0, widthPx*rasterScale, height*rasterScale))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
