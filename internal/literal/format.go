package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The two renderers below reproduce the fixture corpus's output spellings
// digit for digit, so regenerated fixtures diff clean against the existing
// files. Hex values carry the full 52-bit fraction as 13 hex
// digits with an unpadded binary exponent; decimal values use the shortest
// round-trip digits laid out with a mandatory fractional part in fixed
// notation and a two-digit-minimum exponent in scientific notation.

// formatHex renders v as a hexadecimal float, e.g. "0x1.921fb54442d18p+2",
// "-0x0.0p+0", "0x0.0000000000001p-1022".
func formatHex(v float64) string {
	sign := ""
	if math.Signbit(v) {
		sign = "-"
	}
	if v == 0 {
		return sign + "0x0.0p+0"
	}

	bits := math.Float64bits(v)
	exp := int(bits >> 52 & 0x7ff)
	frac := bits & (1<<52 - 1)
	if exp == 0 {
		// Subnormal: no implicit leading bit, fixed exponent.
		return fmt.Sprintf("%s0x0.%013xp-1022", sign, frac)
	}
	return fmt.Sprintf("%s0x1.%013xp%+d", sign, frac, exp-1023)
}

// formatDecimal renders v in plain decimal, e.g. "246913578.0", "-0.0",
// "0.0001234", "2.46913578e+27", "1e-05".
//
// Fixed notation covers decimal exponents in [-4, 16); everything else is
// scientific with an explicit exponent sign and at least two exponent
// digits.
func formatDecimal(v float64) string {
	sign := ""
	if math.Signbit(v) {
		sign = "-"
	}
	if v == 0 {
		return sign + "0.0"
	}

	// Shortest round-trip digits, normalized as d[.ddd]e±dd.
	mant, expStr, _ := strings.Cut(strconv.FormatFloat(math.Abs(v), 'e', -1, 64), "e")
	exp, err := strconv.Atoi(expStr)
	if err != nil {
		panic("literal: malformed strconv exponent: " + expStr)
	}
	digits := strings.Replace(mant, ".", "", 1)

	if exp < -4 || exp >= 16 {
		m := digits[:1]
		if len(digits) > 1 {
			m += "." + digits[1:]
		}
		return fmt.Sprintf("%s%se%+03d", sign, m, exp)
	}

	switch {
	case exp >= len(digits)-1:
		// All digits land left of the point; pad with zeros and keep a
		// fractional part.
		return sign + digits + strings.Repeat("0", exp-len(digits)+1) + ".0"
	case exp >= 0:
		return sign + digits[:exp+1] + "." + digits[exp+1:]
	default:
		return sign + "0." + strings.Repeat("0", -exp-1) + digits
	}
}
