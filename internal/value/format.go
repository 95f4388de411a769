package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// abbreviateAt is the decimal magnitude at which abbreviation applies.
const abbreviateAt = 1e6

// Format renders v according to the display modes in opts.
func Format(v Value, opts Options) string {
	if v.IsComplex() {
		return formatComplex(v, opts)
	}
	re, _ := v.Rect()
	return formatReal(re, opts)
}

func formatReal(v float64, opts Options) string {
	switch opts.Base {
	case Hexadecimal:
		return formatInBase(v, 16, "0x", "hex")
	case Binary:
		return formatInBase(v, 2, "0b", "bin")
	default:
		if opts.Abbreviate && math.Abs(v) >= abbreviateAt {
			return strconv.FormatFloat(v, 'e', 3, 64)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// formatInBase renders an integral value as a prefixed numeral in the
// given base. Values with a fractional part, or too large for int64,
// fall back to decimal annotated with the truncated base form.
func formatInBase(v float64, base int, prefix, note string) string {
	if v == math.Trunc(v) && fitsInt64(v) {
		return baseString(int64(v), base, prefix)
	}
	dec := strconv.FormatFloat(v, 'f', -1, 64)
	return fmt.Sprintf("%s (%s: %s)", dec, note, baseString(clampInt64(v), base, prefix))
}

func formatComplex(v Value, opts Options) string {
	if opts.Layout == Polar {
		phase := v.Phase()
		unit := "rad"
		if opts.Angle == Degrees {
			phase = phase * 180 / math.Pi
			unit = "°"
		}
		return fmt.Sprintf("%s ∠ %s%s", formatReal(v.Magnitude(), opts), formatReal(phase, opts), unit)
	}
	re, im := v.Rect()
	if im >= 0 {
		return fmt.Sprintf("%s + %si", formatReal(re, opts), formatReal(im, opts))
	}
	return fmt.Sprintf("%s - %si", formatReal(re, opts), formatReal(-im, opts))
}

// baseString renders n in the given base with the sign ahead of the
// prefix ("-0xFF"), not in two's complement.
func baseString(n int64, base int, prefix string) string {
	s := strconv.FormatInt(n, base)
	if base == 16 {
		s = strings.ToUpper(s)
	}
	if neg, ok := strings.CutPrefix(s, "-"); ok {
		return "-" + prefix + neg
	}
	return prefix + s
}

// fitsInt64 reports whether v converts to int64 without overflow.
// The bound is exclusive because float64(MaxInt64) rounds up to 2^63.
func fitsInt64(v float64) bool {
	return math.Abs(v) < 1<<63
}

// clampInt64 truncates v toward zero, saturating at the int64 bounds.
func clampInt64(v float64) int64 {
	switch {
	case v >= 1<<63:
		return math.MaxInt64
	case v < -(1 << 63):
		return math.MinInt64
	}
	return int64(math.Trunc(v))
}
