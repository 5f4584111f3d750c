package fotoframe

import (
	"fmt"
	"image/color"
	"sort"
)

// Template is a named bundle of layout ratios, colors, and toggles
// controlling frame appearance. Ratios are taken against the canvas width,
// except BottomBandRatio which is against the source image width.
type Template struct {
	Name string

	// BorderPx is the width of the margin around the photograph. A 1px
	// outline in BorderColor is stroked along the canvas edge when > 0.
	BorderPx        int
	BottomBandRatio float64

	BGColor     color.NRGBA
	BorderColor color.NRGBA
	TextColor   color.NRGBA

	BrandFontRatio     float64
	MetaFontRatio      float64
	LogoMaxHeightRatio float64
	GapRatio           float64

	UseLogo       bool
	ShowBrandText bool
	ShowMetaText  bool
}

// DefaultTemplate is used when a requested template name is unknown.
const DefaultTemplate = "nikon_like"

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

var catalog = mustCatalog(
	// Small border, large bottom band, logo centered above brand and
	// settings lines.
	Template{
		Name:               "nikon_like",
		BorderPx:           20,
		BottomBandRatio:    0.18,
		BGColor:            white,
		BorderColor:        black,
		TextColor:          black,
		BrandFontRatio:     0.06,
		MetaFontRatio:      0.026,
		LogoMaxHeightRatio: 0.08,
		GapRatio:           0.015,
		UseLogo:            true,
		ShowBrandText:      true,
		ShowMetaText:       true,
	},
	// Inverted colors, borderless, logo only.
	Template{
		Name:               "minimal_black",
		BorderPx:           0,
		BottomBandRatio:    0.14,
		BGColor:            black,
		BorderColor:        white,
		TextColor:          white,
		BrandFontRatio:     0.055,
		MetaFontRatio:      0.024,
		LogoMaxHeightRatio: 0.08,
		GapRatio:           0.012,
		UseLogo:            true,
		ShowBrandText:      false,
		ShowMetaText:       false,
	},
)

// mustCatalog validates every template once, at package init. A malformed
// entry is a programmer error.
func mustCatalog(ts ...Template) map[string]Template {
	m := map[string]Template{}
	for _, t := range ts {
		if err := validateTemplate(t); err != nil {
			panic(fmt.Sprintf("template %q: %v", t.Name, err))
		}
		if _, ok := m[t.Name]; ok {
			panic(fmt.Sprintf("duplicate template %q", t.Name))
		}
		m[t.Name] = t
	}
	if _, ok := m[DefaultTemplate]; !ok {
		panic(fmt.Sprintf("catalog is missing the default template %q", DefaultTemplate))
	}
	return m
}

func validateTemplate(t Template) error {
	if t.Name == "" {
		return fmt.Errorf("empty name")
	}
	if t.BorderPx < 0 {
		return fmt.Errorf("negative border: %d", t.BorderPx)
	}
	ratios := map[string]float64{
		"bottom band":     t.BottomBandRatio,
		"brand font":      t.BrandFontRatio,
		"meta font":       t.MetaFontRatio,
		"logo max height": t.LogoMaxHeightRatio,
	}
	for name, r := range ratios {
		if r <= 0 || r >= 1 {
			return fmt.Errorf("%s ratio %v outside (0,1)", name, r)
		}
	}
	if t.GapRatio < 0 || t.GapRatio >= 1 {
		return fmt.Errorf("gap ratio %v outside [0,1)", t.GapRatio)
	}
	return nil
}

// LookupTemplate returns the named template, silently falling back to the
// default for unknown names.
func LookupTemplate(name string) Template {
	if t, ok := catalog[name]; ok {
		return t
	}
	return catalog[DefaultTemplate]
}

// Templates lists the catalog entries by name.
func Templates() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
