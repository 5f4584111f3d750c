package fotoframe

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"k8s.io/klog/v2"

	"github.com/fotoframe/fotoframe/pkg/exifmeta"
)

// DefaultBrand is displayed when the EXIF block names no camera make.
const DefaultBrand = "Canon"

const jpegQuality = 95

// Frame reads the photograph at inPath, wraps it in the named template's
// border and bottom band, annotates the band with logo, brand, and capture
// settings, and writes the result as a JPEG to outPath. The extension is
// normalized to .jpg and parent directories are created. A source that
// fails to decode is an error and produces no output; a logo that fails to
// decode only costs the logo.
func Frame(inPath, outPath string, c *Config) error {
	tpl := LookupTemplate(c.Template)

	src, err := imgio.Open(inPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inPath, err)
	}

	params := readParams(inPath)
	metaLine := params.MetaLine()
	brand := params.Brand
	if brand == "" {
		brand = DefaultBrand
	}

	g := templateGeometry(tpl, src.Bounds().Dx(), src.Bounds().Dy())

	canvas := imaging.New(g.CanvasWidth, g.CanvasHeight, tpl.BGColor)
	if g.Border > 0 {
		outlineRect(canvas, tpl.BorderColor)
	}
	canvas = imaging.Paste(canvas, flatten(src), image.Pt(g.Border, g.Border))

	var logo image.Image
	if tpl.UseLogo && c.LogoPath != "" {
		logo, err = imgio.Open(c.LogoPath)
		if err != nil {
			klog.Warningf("skipping logo %s: %v", c.LogoPath, err)
			logo = nil
		}
	}

	fonts := ResolveFontPaths(c.FontPaths)
	brandFace := loadFace(fonts, g.BrandFontSize)
	metaFace := loadFace(fonts, g.MetaFontSize)

	canvas = placeBand(canvas, g, tpl, brand, metaLine, logo, brandFace, metaFace)

	out := normalizeOutPath(outPath)
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}

	if err := imgio.Save(out, canvas, imgio.JPEGEncoder(jpegQuality)); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	if abs, err := filepath.Abs(out); err == nil {
		out = abs
	}
	klog.Infof("wrote %s", out)
	return nil
}

// readParams extracts camera parameters from the file's EXIF block. Any
// failure yields empty params; missing metadata is never an error.
func readParams(path string) exifmeta.Params {
	f, err := os.Open(path)
	if err != nil {
		klog.V(1).Infof("reopen %s for metadata: %v", path, err)
		return exifmeta.Params{}
	}
	defer f.Close()
	return exifmeta.Extract(f)
}

// flatten drops any alpha channel the source carries. The photograph is
// pasted opaquely; only the logo is alpha-composited.
func flatten(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

// outlineRect strokes a 1px rectangle along the outermost edge of img.
func outlineRect(img *image.NRGBA, c color.NRGBA) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		img.SetNRGBA(x, b.Min.Y, c)
		img.SetNRGBA(x, b.Max.Y-1, c)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.SetNRGBA(b.Min.X, y, c)
		img.SetNRGBA(b.Max.X-1, y, c)
	}
}

// normalizeOutPath appends a .jpg suffix when the caller supplied none;
// output is always encoded as JPEG.
func normalizeOutPath(p string) string {
	if !strings.HasSuffix(strings.ToLower(p), ".jpg") {
		p += ".jpg"
	}
	return p
}
