package fotoframe

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Geometry holds the pixel measurements derived from one template and one
// source image. Values are recomputed per frame.
type Geometry struct {
	Border     int
	BandHeight int

	CanvasWidth  int
	CanvasHeight int

	BrandFontSize int
	MetaFontSize  int
	Gap           int
	LogoMaxHeight int
}

// templateGeometry derives absolute pixel geometry from template ratios.
// The band height scales with the source width so the band keeps its
// proportions across resolutions; text and logo sizing scale with the
// full canvas width. Font sizes are floored at readable minimums.
func templateGeometry(t Template, srcW, srcH int) Geometry {
	g := Geometry{Border: t.BorderPx}
	g.BandHeight = int(math.Round(t.BottomBandRatio * float64(srcW)))
	g.CanvasWidth = srcW + 2*g.Border
	g.CanvasHeight = srcH + g.BandHeight + 2*g.Border

	cw := float64(g.CanvasWidth)
	g.BrandFontSize = max(12, int(math.Round(t.BrandFontRatio*cw)))
	g.MetaFontSize = max(10, int(math.Round(t.MetaFontRatio*cw)))
	g.Gap = int(math.Round(t.GapRatio * cw))
	g.LogoMaxHeight = int(math.Round(t.LogoMaxHeightRatio * cw))
	return g
}

// bandTop returns the y coordinate where the bottom band begins.
func (g Geometry) bandTop() int {
	return g.CanvasHeight - g.Border - g.BandHeight
}

// placeBand lays out logo, brand text, and settings text inside the bottom
// band, each horizontally centered. The combined block is vertically
// centered within the band, with a 4px minimum top margin when the block
// overflows it. Elements are skipped per template toggle.
func placeBand(canvas *image.NRGBA, g Geometry, t Template, brand, metaLine string, logo image.Image, brandFace, metaFace font.Face) *image.NRGBA {
	blockH := g.LogoMaxHeight + g.BrandFontSize + g.MetaFontSize + g.Gap
	curY := g.bandTop() + max(4, (g.BandHeight-blockH)/2)

	if t.UseLogo && logo != nil {
		fitted := logo
		if fitted.Bounds().Dy() > g.LogoMaxHeight {
			// Shrink to the height budget, never upscale.
			fitted = imaging.Resize(logo, 0, g.LogoMaxHeight, imaging.Lanczos)
		}
		x := (g.CanvasWidth - fitted.Bounds().Dx()) / 2
		canvas = imaging.Overlay(canvas, fitted, image.Pt(x, curY), 1.0)
		curY += fitted.Bounds().Dy() + g.Gap/2
	}

	if t.ShowBrandText && brand != "" {
		curY = drawCenteredText(canvas, brand, brandFace, g.CanvasWidth, curY, t.TextColor)
		curY += g.Gap
	}

	if t.ShowMetaText && metaLine != "" {
		drawCenteredText(canvas, metaLine, metaFace, g.CanvasWidth, curY, t.TextColor)
	}

	return canvas
}

// drawCenteredText draws text horizontally centered with its top edge at
// y, returning the y just below the rendered text. Centering is floored,
// so odd leftover space leaves a 1px bias to the left.
func drawCenteredText(dst *image.NRGBA, text string, face font.Face, canvasW, y int, c color.NRGBA) int {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}

	w := d.MeasureString(text).Ceil()
	x := (canvasW - w) / 2

	m := face.Metrics()
	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + m.Ascent.Ceil())}
	d.DrawString(text)

	return y + (m.Ascent + m.Descent).Ceil()
}
