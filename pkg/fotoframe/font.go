package fotoframe

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"k8s.io/klog/v2"
)

// DefaultFontPaths are the built-in candidate font files, tried in order.
// Caller-supplied candidates take priority via ResolveFontPaths.
var DefaultFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// ResolveFontPaths prepends caller-supplied candidates to the built-in
// defaults.
func ResolveFontPaths(user []string) []string {
	return append(append([]string{}, user...), DefaultFontPaths...)
}

var (
	parsedMu    sync.Mutex
	parsedFonts = map[string]*opentype.Font{}

	fallbackOnce sync.Once
	fallbackFont *opentype.Font
)

// loadFace returns a face for the first candidate that reads and parses at
// the given size. Candidate failures are logged and the search continues;
// the ultimate fallback is the embedded Go Regular face.
func loadFace(paths []string, size int) font.Face {
	for _, p := range paths {
		if p == "" {
			continue
		}
		f, err := parsedFont(p)
		if err != nil {
			if os.IsNotExist(err) {
				klog.V(1).Infof("font candidate %s not present", p)
			} else {
				klog.Warningf("unable to load font %s: %v", p, err)
			}
			continue
		}
		face, err := opentype.NewFace(f, faceOpts(size))
		if err != nil {
			klog.Warningf("unable to use font %s at size %d: %v", p, size, err)
			continue
		}
		return face
	}
	return fallbackFace(size)
}

// parsedFont parses a font file, caching successes. The cache is read-only
// once warm, so it is safe to share across a parallel batch.
func parsedFont(path string) (*opentype.Font, error) {
	parsedMu.Lock()
	defer parsedMu.Unlock()

	if f, ok := parsedFonts[path]; ok {
		return f, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	parsedFonts[path] = f
	return f, nil
}

func fallbackFace(size int) font.Face {
	fallbackOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			klog.Errorf("parse embedded font: %v", err)
			return
		}
		fallbackFont = f
	})

	if fallbackFont == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(fallbackFont, faceOpts(size))
	if err != nil {
		klog.Errorf("embedded font face: %v", err)
		return basicfont.Face7x13
	}
	return face
}

func faceOpts(size int) *opentype.FaceOptions {
	return &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	}
}
