package pgtype

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd"
)

var floatSpecialLiteral = regexp.MustCompile(`(?i)^([+-]?)(nan|inf|infinity)$`)

// parseFloatLiteral parses the PostgreSQL float grammar for a float of bitSize bits.
func parseFloatLiteral(src, pgName string, bitSize int) (float64, Issue) {
	s := strings.TrimSpace(src)
	if m := floatSpecialLiteral.FindStringSubmatch(s); m != nil {
		if strings.EqualFold(m[2], "nan") {
			return math.NaN(), nil
		}
		if m[1] == "-" {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}

	d, ok := parseDecimalLiteral(s, decimalLiteral)
	if !ok {
		return 0, InvalidString{Expected: pgName, Received: src}
	}
	f, issue := floatFromDecimal(d, pgName, bitSize)
	if _, ok := issue.(InvalidString); ok {
		return 0, InvalidString{Expected: pgName, Received: src}
	}
	return f, issue
}

func floatLimit(bitSize int) (*apd.Decimal, string) {
	max := math.MaxFloat64
	if bitSize == 32 {
		max = math.MaxFloat32
	}
	text := strconv.FormatFloat(max, 'g', -1, bitSize)
	d, _, _ := apd.NewFromString(text)
	return d, text
}

// floatFromDecimal converts d, rejecting magnitudes the float type cannot hold. A nonzero d that rounds to zero is
// out of range like one that overflows.
func floatFromDecimal(d *apd.Decimal, pgName string, bitSize int) (float64, Issue) {
	max, maxText := floatLimit(bitSize)
	min := new(apd.Decimal).Neg(max)
	if issue := checkBounds(d, SubjectNumber, min, max, "-"+maxText, maxText); issue != nil {
		return 0, issue
	}
	f, err := strconv.ParseFloat(d.Text('e'), bitSize)
	if (err != nil && !math.IsInf(f, 0)) || (f == 0 && !d.IsZero()) {
		return 0, InvalidString{Expected: pgName, Received: d.String()}
	}
	if math.IsInf(f, 0) {
		f = math.Copysign(math.MaxFloat64, f)
		if bitSize == 32 {
			f = math.Copysign(math.MaxFloat32, f)
		}
	}
	return f, nil
}

// formatFloat renders f the way PostgreSQL does with extra_float_digits at its default: the shortest text that
// round trips, in exponent form when the decimal exponent is below -4 or at least the type's digit count.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0"
		}
		return "0"
	}

	e := strconv.FormatFloat(f, 'e', -1, bitSize)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])

	digits := 15
	if bitSize == 32 {
		digits = 6
	}
	if exp < -4 || exp >= digits {
		return e
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// compareFloat orders NaN after every other value and equal to itself.
func compareFloat(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func floatRoutes[T any](pgName string, bitSize int, build func(float64) T) []route[T] {
	fromFloat := func(f float64) Result[T] {
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			d, _ := decimalOf(f)
			var issue Issue
			if f, issue = floatFromDecimal(d, pgName, bitSize); issue != nil {
				return Invalid[T](issue)
			}
		}
		return Ok(build(f))
	}

	return []route[T]{
		on(KindString, func(v any) Result[T] {
			f, issue := parseFloatLiteral(v.(string), pgName, bitSize)
			if issue != nil {
				return Invalid[T](issue)
			}
			return Ok(build(f))
		}),
		on(KindNumber, func(v any) Result[T] {
			f, _ := floatArg(v)
			return fromFloat(f)
		}),
		on(KindBigInt, func(v any) Result[T] {
			d, _ := decimalOf(v)
			f, issue := floatFromDecimal(d, pgName, bitSize)
			if issue != nil {
				return Invalid[T](issue)
			}
			return Ok(build(f))
		}),
		on(KindNaN, func(v any) Result[T] { return Ok(build(math.NaN())) }),
		on(KindInfinity, func(v any) Result[T] { return Ok(build(v.(float64))) }),
		on(KindDecimal, func(v any) Result[T] {
			if d, ok := decimalOf(v); ok {
				f, issue := floatFromDecimal(d, pgName, bitSize)
				if issue != nil {
					return Invalid[T](issue)
				}
				return Ok(build(f))
			}
			f, issue := floatArg(v)
			if issue != nil {
				return Invalid[T](issue)
			}
			return Ok(build(f))
		}),
	}
}

func parseFloat[T any](name, pgName string, bitSize int, build func(float64) T, args []any) Result[T] {
	valueShape := shape{required("value", KindString, KindNumber, KindBigInt, KindDecimal, KindNaN, KindInfinity)}

	routes := append(floatRoutes(pgName, bitSize, build),
		on(KindObject, parseObject(valueShape, func(obj map[string]any) Result[T] {
			return dispatch(name, []any{obj["value"]}, floatRoutes(pgName, bitSize, build)...)
		})),
		on(KindInstance, func(v any) Result[T] { return Ok(v.(T)) }),
	)
	return dispatch(name, args, routes...)
}

// floatObjectValue keeps non-finite values representable once the object is encoded as JSON.
func floatObjectValue(f float64, bitSize int) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return formatFloat(f, bitSize)
	}
	return f
}

// Float8 is a PostgreSQL double precision.
type Float8 struct {
	value float64
}

func (f Float8) Float64() float64 {
	return f.value
}

func (f Float8) String() string {
	return formatFloat(f.value, 64)
}

func (f Float8) Object() map[string]any {
	return map[string]any{"value": floatObjectValue(f.value, 64)}
}

func (f Float8) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Object())
}

func (f Float8) Equals(args ...any) (bool, error) {
	return f.SafeEquals(args...).Get()
}

func (f Float8) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Float8](Float8Codec{}, f, args)
}

type Float8Codec struct{}

// SafeFrom accepts a text literal (including NaN and the infinities), a number, a *big.Int, a decimal, an object
// {value} or a Float8.
func (Float8Codec) SafeFrom(args ...any) Result[Float8] {
	return parseFloat("Float8", "float8", 64, func(f float64) Float8 { return Float8{value: f} }, args)
}

func (c Float8Codec) From(args ...any) (Float8, error) {
	return c.SafeFrom(args...).Get()
}

func (Float8Codec) Compare(a, b Float8) int {
	return compareFloat(a.value, b.value)
}

func Float8From(args ...any) (Float8, error) {
	return Float8Codec{}.From(args...)
}

func SafeFloat8From(args ...any) Result[Float8] {
	return Float8Codec{}.SafeFrom(args...)
}
