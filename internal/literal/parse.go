package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError reports a literal spelling outside the fixture grammar.
// Malformed literals are caller bugs, not recoverable runtime conditions:
// the operand tables are fixed, so an unparseable entry means the table
// itself is wrong.
type ParseError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid literal %q: %s", e.Input, e.Reason)
}

// Parse reads a fixture literal. Accepted spellings:
//
//	plain decimal        "1.125", "0123456789e+019"
//	hexadecimal float    "0x1.fffffep+127", "0x0123456789ABCDEF" (exponent optional)
//	signed infinity      "inf", "-inf"
//	signed NaN           "nan", "-nan"
//	NaN with payload     "nan:0x200000", "-nan:0x200000"
//
// Anything else fails with a ParseError.
func Parse(s string) (Literal, error) {
	if s == "" {
		return nil, &ParseError{Input: s, Reason: "empty string"}
	}

	neg := false
	body := s
	if body[0] == '-' {
		neg = true
		body = body[1:]
	}
	if body == "" {
		return nil, &ParseError{Input: s, Reason: "sign with no value"}
	}

	switch {
	case body == "inf":
		return Infinity{Neg: neg}, nil

	case body == "nan":
		return NaN{Neg: neg}, nil

	case strings.HasPrefix(body, "nan:"):
		payload := strings.TrimPrefix(body, "nan:")
		if !strings.HasPrefix(payload, "0x") {
			return nil, &ParseError{Input: s, Reason: "NaN payload must start with 0x"}
		}
		bits, err := strconv.ParseUint(payload[2:], 16, 64)
		if err != nil {
			return nil, &ParseError{Input: s, Reason: fmt.Sprintf("bad NaN payload: %v", err)}
		}
		return NaN{Neg: neg, HasPayload: true, Payload: bits}, nil

	case strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X"):
		return parseFinite(s, body, neg, Hex)

	case body[0] == '.' || (body[0] >= '0' && body[0] <= '9'):
		return parseFinite(s, body, neg, Decimal)

	default:
		return nil, &ParseError{Input: s, Reason: "unrecognized literal form"}
	}
}

// MustParse is Parse for fixed, known-good tables. It panics on error,
// matching the fail-fast contract for malformed operand tables.
func MustParse(s string) Literal {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

func parseFinite(orig, body string, neg bool, d Dialect) (Literal, error) {
	num := body
	if d == Hex && !strings.ContainsAny(body, "pP") {
		// strconv requires a binary exponent on hex floats; the fixture
		// grammar makes it optional, defaulting to p0.
		num += "p0"
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		if !isRangeError(err) {
			return nil, &ParseError{Input: orig, Reason: fmt.Sprintf("bad number: %v", err)}
		}
		// Out-of-range magnitudes follow the governing float semantics:
		// overflow becomes infinity, underflow keeps the flushed value
		// strconv already produced (zero or a subnormal).
		if math.IsInf(v, 0) {
			return Infinity{Neg: neg}, nil
		}
	}
	return Finite{Neg: neg, Magnitude: v, Dialect: d, Source: orig}, nil
}

func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
