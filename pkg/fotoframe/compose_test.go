package fotoframe

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/fotoframe/fotoframe/internal/sampleimg"
)

func writeSample(t *testing.T, dir, name string, w, h int, withExif bool) string {
	t.Helper()
	b, err := sampleimg.JPEG(w, h, withExif)
	if err != nil {
		t.Fatalf("sample jpeg: %v", err)
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, b, 0o600); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return p
}

// darkSpan scans a region for dark pixels and returns the leftmost and
// rightmost x containing one, with found=false when the region is clean.
func darkSpan(img image.Image, x0, y0, x1, y1 int) (left, right int, found bool) {
	left, right = x1, x0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r>>8 < 100 && g>>8 < 100 && b>>8 < 100 {
				if x < left {
					left = x
				}
				if x > right {
					right = x
				}
				found = true
			}
		}
	}
	return left, right, found
}

func TestFrameEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir, "z6.jpg", 400, 300, true)
	out := filepath.Join(dir, "z6_framed.jpg")

	if err := Frame(in, out, &Config{Template: "nikon_like"}); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	got, err := imgio.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}

	// canvas is (W+2B, H+round(r*W)+2B)
	band := int(math.Round(0.18 * 400))
	wantW, wantH := 400+40, 300+band+40
	if got.Bounds().Dx() != wantW || got.Bounds().Dy() != wantH {
		t.Fatalf("output size = %dx%d, want %dx%d", got.Bounds().Dx(), got.Bounds().Dy(), wantW, wantH)
	}

	// the border outline is stroked along the canvas edge
	r, g, b, _ := got.At(0, 0).RGBA()
	if r>>8 > 60 || g>>8 > 60 || b>>8 > 60 {
		t.Errorf("corner pixel = (%d,%d,%d), want border color", r>>8, g>>8, b>>8)
	}

	// the band holds centered dark text on the white background; stay off
	// the 1px outline when scanning
	bandTop := wantH - 20 - band
	left, right, found := darkSpan(got, 2, bandTop+2, wantW-2, wantH-2)
	if !found {
		t.Fatal("no text rendered in the bottom band")
	}
	lm := left
	rm := (wantW - 2) - right
	if lm-rm > 12 || rm-lm > 12 {
		t.Errorf("band content margins %d vs %d, want roughly centered", lm, rm)
	}
}

func TestFrameNoExif(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir, "plain.jpg", 300, 200, false)
	out := filepath.Join(dir, "plain_framed.jpg")

	if err := Frame(in, out, &Config{Template: "nikon_like"}); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	got, err := imgio.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}

	// placeholder brand and the sentinel settings line still render
	band := int(math.Round(0.18 * 300))
	wantH := 200 + band + 40
	bandTop := wantH - 20 - band
	if _, _, found := darkSpan(got, 2, bandTop+2, got.Bounds().Dx()-2, wantH-2); !found {
		t.Fatal("band is empty, want placeholder text")
	}
}

func TestFrameMissingSource(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.jpg")

	if err := Frame(filepath.Join(dir, "nope.jpg"), out, &Config{}); err == nil {
		t.Fatal("Frame on a missing source succeeded")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatal("partial output written for a failed frame")
	}
}

func TestFrameNormalizesExtension(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir, "pic.jpg", 120, 90, false)

	if err := Frame(in, filepath.Join(dir, "pic_framed"), &Config{}); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "pic_framed.jpg")); err != nil {
		t.Fatalf("normalized output missing: %v", err)
	}
}

func TestFrameCreatesOutputDirs(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir, "pic.jpg", 120, 90, false)
	out := filepath.Join(dir, "nested", "deeper", "pic_framed.jpg")

	if err := Frame(in, out, &Config{}); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestFrameUnreadableLogoIsSkipped(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir, "pic.jpg", 200, 150, false)
	logo := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(logo, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "pic_framed.jpg")
	if err := Frame(in, out, &Config{LogoPath: logo}); err != nil {
		t.Fatalf("Frame with a bad logo: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestFrameScalesLogoIntoBand(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir, "pic.jpg", 400, 300, false)

	// a tall red logo that must be scaled down to the band's logo budget
	logo := image.NewNRGBA(image.Rect(0, 0, 100, 200))
	red := color.NRGBA{R: 220, A: 255}
	for y := 0; y < 200; y++ {
		for x := 0; x < 100; x++ {
			logo.SetNRGBA(x, y, red)
		}
	}
	logoPath := filepath.Join(dir, "logo.png")
	f, err := os.Create(logoPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, logo); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out := filepath.Join(dir, "pic_framed.jpg")
	if err := Frame(in, out, &Config{Template: "nikon_like", LogoPath: logoPath}); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	got, err := imgio.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}

	// block overflows the band, so the logo starts 4px under the band top
	// and is centered; sample inside it
	band := int(math.Round(0.18 * 400))
	bandTop := 300 + band + 40 - 20 - band
	r, g, _, _ := got.At(440/2, bandTop+20).RGBA()
	if r>>8 < 150 || g>>8 > 120 {
		t.Errorf("pixel inside logo = (%d,%d), want red", r>>8, g>>8)
	}
}
