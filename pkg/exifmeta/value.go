// Package exifmeta reads camera metadata from an image's EXIF block and
// turns it into display-ready strings.
package exifmeta

import (
	"strconv"
	"strings"
)

// Kind discriminates the shapes a raw EXIF value can take. EXIF encodes
// numbers inconsistently across cameras: plain integers, rationals, short
// arrays, and occasionally numeric ASCII.
type Kind int

const (
	KindScalar Kind = iota
	KindRatio
	KindSequence
	KindString
)

// Value is a raw EXIF value lifted into a single type so the rest of the
// pipeline never has to switch on wire encodings.
type Value struct {
	Kind  Kind
	Float float64 // KindScalar
	Num   int64   // KindRatio
	Den   int64   // KindRatio
	Seq   []Value // KindSequence
	Str   string  // KindString
}

// Scalar wraps a plain number.
func Scalar(f float64) Value { return Value{Kind: KindScalar, Float: f} }

// Ratio wraps a numerator/denominator pair.
func Ratio(num, den int64) Value { return Value{Kind: KindRatio, Num: num, Den: den} }

// Sequence wraps an ordered list of values.
func Sequence(vs ...Value) Value { return Value{Kind: KindSequence, Seq: vs} }

// Str wraps a string value.
func Str(s string) Value { return Value{Kind: KindString, Str: s} }

// Normalize reduces any EXIF numeric encoding to a single float64. The
// second return is false when the value has no numeric interpretation:
// a zero denominator, a sequence that is not a 2-tuple, or a string that
// does not parse. It never panics.
func Normalize(v Value) (float64, bool) {
	switch v.Kind {
	case KindScalar:
		return v.Float, true
	case KindRatio:
		if v.Den == 0 {
			return 0, false
		}
		return float64(v.Num) / float64(v.Den), true
	case KindSequence:
		// A 2-element sequence is the tuple form of a rational.
		if len(v.Seq) != 2 {
			return 0, false
		}
		num, ok := Normalize(v.Seq[0])
		if !ok {
			return 0, false
		}
		den, ok := Normalize(v.Seq[1])
		if !ok || den == 0 {
			return 0, false
		}
		return num / den, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
