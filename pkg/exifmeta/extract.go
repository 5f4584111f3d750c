package exifmeta

import (
	"io"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	"k8s.io/klog/v2"
)

// NoExifData is displayed in place of the settings line when nothing
// usable could be extracted.
const NoExifData = "No EXIF Data"

// Params holds formatted camera settings ready for display. An empty
// string means the tag was absent or unformattable.
type Params struct {
	Brand string
	Model string
	Lens  string

	Focal   string
	FNumber string
	Shutter string
	ISO     string
}

// MetaLine joins the formatted capture settings in display order with a
// double-space separator. It never returns an empty string.
func (p Params) MetaLine() string {
	pieces := []string{}
	for _, s := range []string{p.Focal, p.FNumber, p.Shutter, p.ISO} {
		if s != "" {
			pieces = append(pieces, s)
		}
	}
	if len(pieces) == 0 {
		return NoExifData
	}
	return strings.Join(pieces, "  ")
}

// RawMap holds decoded tag values keyed by EXIF field name. Only the
// curated tags below are retained; everything else is dropped.
type RawMap map[string]Value

var knownTags = map[string]bool{
	"Make":                    true,
	"Model":                   true,
	"LensMake":                true,
	"LensModel":               true,
	"FocalLength":             true,
	"FNumber":                 true,
	"ApertureValue":           true,
	"ExposureTime":            true,
	"ShutterSpeedValue":       true,
	"ISOSpeedRatings":         true,
	"PhotographicSensitivity": true,
}

type tagWalker struct {
	m RawMap
}

func (w *tagWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if knownTags[string(name)] {
		w.m[string(name)] = tagValue(tag)
	}
	return nil
}

func rawValues(x *exif.Exif) RawMap {
	w := &tagWalker{m: RawMap{}}
	if err := x.Walk(w); err != nil {
		klog.V(1).Infof("tag walk stopped early: %v", err)
	}
	return w.m
}

// tagValue lifts a wire-format tag into a Value.
func tagValue(t *tiff.Tag) Value {
	switch t.Format() {
	case tiff.RatVal:
		if t.Count == 1 {
			num, den, err := t.Rat2(0)
			if err != nil {
				return Str(t.String())
			}
			return Ratio(num, den)
		}
		seq := make([]Value, 0, t.Count)
		for i := 0; i < int(t.Count); i++ {
			num, den, err := t.Rat2(i)
			if err != nil {
				return Str(t.String())
			}
			seq = append(seq, Ratio(num, den))
		}
		return Sequence(seq...)
	case tiff.IntVal:
		if t.Count == 1 {
			n, err := t.Int64(0)
			if err != nil {
				return Str(t.String())
			}
			return Scalar(float64(n))
		}
		seq := make([]Value, 0, t.Count)
		for i := 0; i < int(t.Count); i++ {
			n, err := t.Int64(i)
			if err != nil {
				return Str(t.String())
			}
			seq = append(seq, Scalar(float64(n)))
		}
		return Sequence(seq...)
	case tiff.FloatVal:
		f, err := t.Float(0)
		if err != nil {
			return Str(t.String())
		}
		return Scalar(f)
	case tiff.StringVal:
		s, err := t.StringVal()
		if err != nil {
			return Str(t.String())
		}
		return Str(s)
	default:
		return Str(t.String())
	}
}

// Extract reads the EXIF block from r and returns formatted camera
// parameters. Absent or unreadable metadata is not an error; each field
// that cannot be extracted and formatted is simply left empty.
func Extract(r io.Reader) Params {
	p := Params{}

	x, err := exif.Decode(r)
	if err != nil {
		klog.V(1).Infof("no EXIF data: %v", err)
		return p
	}

	raw := rawValues(x)
	for k, v := range raw {
		klog.V(2).Infof("exif %s = %+v", k, v)
	}

	p.Brand = trimmedString(raw, "Make")
	p.Model = trimmedString(raw, "Model")

	if s := trimmedString(raw, "LensModel"); s != "" {
		p.Lens = s
	} else if s := trimmedString(raw, "LensMake"); s != "" {
		p.Lens = s
	}

	if v, ok := firstPresent(raw, "FocalLength"); ok {
		if s, ok := FormatFocal(v); ok {
			p.Focal = s
		}
	}

	// TODO: ApertureValue and ShutterSpeedValue are APEX (log2) encoded,
	// not linear like FNumber/ExposureTime. Cameras that only write the
	// APEX tags get mislabeled here; converting needs confirmation of the
	// intended display semantics first.
	if v, ok := firstPresent(raw, "FNumber", "ApertureValue"); ok {
		if s, ok := FormatFNumber(v); ok {
			p.FNumber = s
		}
	}

	if v, ok := firstPresent(raw, "ExposureTime", "ShutterSpeedValue"); ok {
		if s, ok := FormatExposure(v); ok {
			p.Shutter = s
		}
	}

	if v, ok := firstPresent(raw, "ISOSpeedRatings", "PhotographicSensitivity"); ok {
		if s, ok := FormatISO(v); ok {
			p.ISO = s
		}
	}

	return p
}

func firstPresent(m RawMap, names ...string) (Value, bool) {
	for _, n := range names {
		if v, ok := m[n]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// trimmedString returns the named tag as display text, with the trailing
// NULs some cameras pad string fields with removed.
func trimmedString(m RawMap, name string) string {
	v, ok := m[name]
	if !ok || v.Kind != KindString {
		return ""
	}
	return strings.TrimSpace(strings.TrimRight(v.Str, "\x00"))
}
