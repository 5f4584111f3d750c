package exifmeta

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatExposure renders an exposure time in seconds as photographers
// expect to read it: "1/250s" for short exposures that are close to a
// unit fraction, "0.300s" when no unit fraction is within 2% of the true
// value, and "2s" / "2.3s" for exposures of a second or longer.
func FormatExposure(v Value) (string, bool) {
	t, ok := Normalize(v)
	if !ok || t <= 0 {
		return "", false
	}

	if t < 1.0 {
		denom := math.Round(1.0 / t)
		if denom > 0 && math.Abs(1.0/denom-t) < 0.02*t {
			return fmt.Sprintf("1/%ds", int64(denom)), true
		}
		return fmt.Sprintf("%.3fs", t), true
	}

	if math.Abs(t-math.Round(t)) < 0.05 {
		return fmt.Sprintf("%ds", int64(math.Round(t))), true
	}
	return fmt.Sprintf("%.1fs", t), true
}

// FormatFNumber renders an aperture as "F2" or "F1.8": one decimal,
// trailing zero stripped.
func FormatFNumber(v Value) (string, bool) {
	f, ok := Normalize(v)
	if !ok || f <= 0 {
		return "", false
	}
	return "F" + trimDecimal(f), true
}

// FormatFocal renders a focal length as "50mm" or "35.5mm": one decimal,
// trailing zero stripped.
func FormatFocal(v Value) (string, bool) {
	fl, ok := Normalize(v)
	if !ok || fl <= 0 {
		return "", false
	}
	return trimDecimal(fl) + "mm", true
}

// FormatISO renders a sensitivity as "ISO800". ISO is the one tag that is
// not rational-normalized: cameras write it as an integer or a short array
// of integers, and only the first element is displayed.
func FormatISO(v Value) (string, bool) {
	if v.Kind == KindSequence {
		if len(v.Seq) == 0 {
			return "", false
		}
		v = v.Seq[0]
	}

	switch v.Kind {
	case KindScalar:
		return fmt.Sprintf("ISO%d", int64(v.Float)), true
	case KindString:
		n, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err != nil {
			return "", false
		}
		return fmt.Sprintf("ISO%d", n), true
	default:
		return "", false
	}
}

// trimDecimal formats with one decimal place, then strips a trailing zero
// and the dangling point, so 2.0 reads "2" and 1.8 stays "1.8".
func trimDecimal(f float64) string {
	s := fmt.Sprintf("%.1f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
