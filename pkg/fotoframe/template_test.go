package fotoframe

import "testing"

func TestLookupTemplate(t *testing.T) {
	if got := LookupTemplate("nikon_like"); got.Name != "nikon_like" {
		t.Fatalf("LookupTemplate(nikon_like).Name = %q", got.Name)
	}
	if got := LookupTemplate("minimal_black"); got.Name != "minimal_black" {
		t.Fatalf("LookupTemplate(minimal_black).Name = %q", got.Name)
	}
}

func TestLookupTemplateUnknownFallsBack(t *testing.T) {
	got := LookupTemplate("vaporwave")
	if got.Name != DefaultTemplate {
		t.Fatalf("LookupTemplate(vaporwave).Name = %q, want %q", got.Name, DefaultTemplate)
	}
}

func TestTemplatesSorted(t *testing.T) {
	names := Templates()
	if len(names) < 2 {
		t.Fatalf("Templates() = %v, want at least 2 entries", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Templates() not sorted: %v", names)
		}
	}
}

func TestValidateTemplateRejectsBadRatios(t *testing.T) {
	tpl := LookupTemplate(DefaultTemplate)

	bad := tpl
	bad.BottomBandRatio = 0
	if err := validateTemplate(bad); err == nil {
		t.Error("zero band ratio accepted")
	}

	bad = tpl
	bad.BrandFontRatio = 1.5
	if err := validateTemplate(bad); err == nil {
		t.Error("brand font ratio above 1 accepted")
	}

	bad = tpl
	bad.BorderPx = -1
	if err := validateTemplate(bad); err == nil {
		t.Error("negative border accepted")
	}

	bad = tpl
	bad.Name = ""
	if err := validateTemplate(bad); err == nil {
		t.Error("empty name accepted")
	}
}
