package pgtype

import (
	"encoding/json"
	"math/big"
	"regexp"
	"strings"

	"github.com/cockroachdb/apd"
	"github.com/shopspring/decimal"
)

var (
	moneyLiteral = regexp.MustCompile(`^(\d{1,3}(,\d{3})+|\d*)(\.\d*)?$`)

	moneyMin = decimal.RequireFromString("-92233720368547758.08")
	moneyMax = decimal.RequireFromString("92233720368547758.07")
)

// Money is a PostgreSQL money value held as a whole number of cents.
type Money struct {
	cents int64
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

func (m Money) String() string {
	text := m.Decimal().Abs().StringFixed(2)
	point := strings.IndexByte(text, '.')
	whole, frac := text[:point], text[point+1:]

	sb := &strings.Builder{}
	if m.cents < 0 {
		sb.WriteByte('-')
	}
	sb.WriteByte('$')
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(whole[i])
	}
	sb.WriteByte('.')
	sb.WriteString(frac)
	return sb.String()
}

func (m Money) Object() map[string]any {
	return map[string]any{"value": m.String()}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Object())
}

func (m Money) Equals(args ...any) (bool, error) {
	return m.SafeEquals(args...).Get()
}

func (m Money) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Money](MoneyCodec{}, m, args)
}

type MoneyCodec struct{}

// parseMoneyLiteral accepts an optional sign or parentheses, an optional currency symbol and thousands separators.
func parseMoneyLiteral(src string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(src)
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "$")
	if !neg && strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	if s == "" || s == "." || !moneyLiteral.MatchString(s) {
		return decimal.Decimal{}, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}

func moneyFromDecimal(d decimal.Decimal) Result[Money] {
	d = d.Round(2)
	if d.Cmp(moneyMin) < 0 {
		return Invalid[Money](TooSmall{Subject: SubjectNumber, Minimum: moneyMin.String(), Inclusive: true})
	}
	if d.Cmp(moneyMax) > 0 {
		return Invalid[Money](TooBig{Subject: SubjectNumber, Maximum: moneyMax.String(), Inclusive: true})
	}
	return Ok(Money{cents: d.Shift(2).IntPart()})
}

func moneyRoutes() []route[Money] {
	return []route[Money]{
		on(KindString, func(v any) Result[Money] {
			d, ok := parseMoneyLiteral(v.(string))
			if !ok {
				return Invalid[Money](InvalidString{Expected: "money", Received: v.(string)})
			}
			return moneyFromDecimal(d)
		}),
		on(KindNumber, func(v any) Result[Money] {
			switch v := v.(type) {
			case int64:
				return moneyFromDecimal(decimal.NewFromInt(v))
			case uint64:
				return moneyFromDecimal(decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0))
			default:
				return moneyFromDecimal(decimal.NewFromFloat(v.(float64)))
			}
		}),
		on(KindBigInt, func(v any) Result[Money] {
			return moneyFromDecimal(decimal.NewFromBigInt(v.(*big.Int), 0))
		}),
		on(KindDecimal, func(v any) Result[Money] {
			switch v := v.(type) {
			case *apd.Decimal:
				if v.Form != apd.Finite {
					return Invalid[Money](NotFinite{})
				}
				return moneyFromDecimal(decimal.RequireFromString(v.Text('f')))
			default:
				return moneyFromDecimal(v.(decimal.Decimal))
			}
		}),
		on(KindNaN, func(any) Result[Money] { return Invalid[Money](NotFinite{}) }),
		on(KindInfinity, func(any) Result[Money] { return Invalid[Money](NotFinite{}) }),
	}
}

// SafeFrom accepts a money literal such as $1,234.56 or (12.50), a number, a *big.Int, a decimal, an object {value}
// or a Money. Values are rounded to cents.
func (MoneyCodec) SafeFrom(args ...any) Result[Money] {
	valueShape := shape{required("value", KindString, KindNumber, KindBigInt, KindDecimal, KindNaN, KindInfinity)}

	routes := append(moneyRoutes(),
		on(KindObject, parseObject(valueShape, func(obj map[string]any) Result[Money] {
			return dispatch("Money", []any{obj["value"]}, moneyRoutes()...)
		})),
		on(KindInstance, func(v any) Result[Money] { return Ok(v.(Money)) }),
	)
	return dispatch("Money", args, routes...)
}

func (c MoneyCodec) From(args ...any) (Money, error) {
	return c.SafeFrom(args...).Get()
}

func (MoneyCodec) Compare(a, b Money) int {
	return compareInt64(a.cents, b.cents)
}

func MoneyFrom(args ...any) (Money, error) {
	return MoneyCodec{}.From(args...)
}

func SafeMoneyFrom(args ...any) Result[Money] {
	return MoneyCodec{}.SafeFrom(args...)
}
