package pgtype

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd"
	"github.com/shopspring/decimal"
)

var (
	integerLiteral = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
	decimalLiteral = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
)

// parseDecimalLiteral parses s, which must match pattern after trimming surrounding whitespace.
func parseDecimalLiteral(s string, pattern *regexp.Regexp) (*apd.Decimal, bool) {
	s = strings.TrimSpace(s)
	if !pattern.MatchString(s) {
		return nil, false
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, false
	}
	return d, true
}

func decimalFromBigInt(n *big.Int) *apd.Decimal {
	d := apd.NewWithBigInt(new(big.Int).Abs(n), 0)
	d.Negative = n.Sign() < 0
	return d
}

// decimalOf converts a normalized number, bigint or decimal to a finite apd.Decimal.
func decimalOf(v any) (*apd.Decimal, bool) {
	switch v := v.(type) {
	case int64:
		return apd.New(v, 0), true
	case uint64:
		return decimalFromBigInt(new(big.Int).SetUint64(v)), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		d, _, err := apd.NewFromString(strconv.FormatFloat(v, 'g', -1, 64))
		return d, err == nil
	case *big.Int:
		return decimalFromBigInt(v), true
	case *apd.Decimal:
		if v.Form != apd.Finite {
			return nil, false
		}
		return new(apd.Decimal).Set(v), true
	case decimal.Decimal:
		d, _, err := apd.NewFromString(v.String())
		return d, err == nil
	}
	return nil, false
}

func isWhole(d *apd.Decimal) bool {
	var frac apd.Decimal
	d.Modf(nil, &frac)
	return frac.IsZero()
}

// bigIntOf returns the integral part of d.
func bigIntOf(d *apd.Decimal) *big.Int {
	var integ apd.Decimal
	d.Modf(&integ, nil)
	n := new(big.Int).Set(&integ.Coeff)
	if integ.Exponent > 0 {
		n.Mul(n, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(integ.Exponent)), nil))
	}
	if d.Negative {
		n.Neg(n)
	}
	return n
}

// checkBounds reports whether d lies within [min, max].
func checkBounds(d *apd.Decimal, subject Subject, min, max *apd.Decimal, minText, maxText string) Issue {
	if d.Cmp(min) < 0 {
		return TooSmall{Subject: subject, Minimum: minText, Inclusive: true}
	}
	if d.Cmp(max) > 0 {
		return TooBig{Subject: subject, Maximum: maxText, Inclusive: true}
	}
	return nil
}

// wholeArg converts a positional or object argument to an int64 in [min, max].
func wholeArg(v any, min, max int64) (int64, Issue) {
	v = normalize(v)
	switch kind := classifyNormalized(v); kind {
	case KindNumber, KindBigInt, KindDecimal:
		d, ok := decimalOf(v)
		if !ok {
			return 0, NotFinite{}
		}
		if !isWhole(d) {
			return 0, NotWhole{}
		}
		subject := SubjectNumber
		if kind == KindBigInt {
			subject = SubjectBigInt
		}
		if issue := checkBounds(d, subject, apd.New(min, 0), apd.New(max, 0), strconv.FormatInt(min, 10), strconv.FormatInt(max, 10)); issue != nil {
			return 0, issue
		}
		return bigIntOf(d).Int64(), nil
	case KindNaN, KindInfinity:
		return 0, NotFinite{}
	default:
		return 0, InvalidType{Expected: []string{KindNumber.String()}, Received: receivedName(v)}
	}
}

// floatArg converts a positional or object argument to a float64. NaN and infinities are allowed.
func floatArg(v any) (float64, Issue) {
	v = normalize(v)
	switch classifyNormalized(v) {
	case KindNumber, KindNaN, KindInfinity:
		switch v := v.(type) {
		case int64:
			return float64(v), nil
		case uint64:
			return float64(v), nil
		case float64:
			return v, nil
		}
	case KindBigInt:
		f, _ := new(big.Float).SetInt(v.(*big.Int)).Float64()
		return f, nil
	case KindDecimal:
		switch v := v.(type) {
		case *apd.Decimal:
			f, err := strconv.ParseFloat(v.String(), 64)
			if err != nil && v.Form == apd.Finite {
				return 0, InvalidString{Expected: "float8", Received: v.String()}
			}
			return f, nil
		case decimal.Decimal:
			f, _ := v.Float64()
			return f, nil
		}
	case KindString:
		return parseFloatLiteral(v.(string), "float8", 64)
	}
	return 0, InvalidType{Expected: []string{KindNumber.String(), KindString.String()}, Received: receivedName(v)}
}
