package pgtype

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd"
)

// Numeric is an arbitrary precision PostgreSQL numeric. The scale of the input is preserved, so 1.50 and 1.5 have
// different canonical text.
type Numeric struct {
	d *apd.Decimal
}

func (n Numeric) decimal() *apd.Decimal {
	if n.d == nil {
		return apd.New(0, 0)
	}
	return n.d
}

// Decimal returns a copy of the underlying decimal.
func (n Numeric) Decimal() *apd.Decimal {
	return new(apd.Decimal).Set(n.decimal())
}

func (n Numeric) IsNaN() bool {
	form := n.decimal().Form
	return form == apd.NaN || form == apd.NaNSignaling
}

func (n Numeric) InfinityModifier() InfinityModifier {
	d := n.decimal()
	if d.Form != apd.Infinite {
		return Finite
	}
	if d.Negative {
		return NegativeInfinity
	}
	return Infinity
}

// BigInt returns the integral part of n. ok is false for NaN and the infinities.
func (n Numeric) BigInt() (i *big.Int, ok bool) {
	d := n.decimal()
	if d.Form != apd.Finite {
		return nil, false
	}
	return bigIntOf(d), true
}

func (n Numeric) String() string {
	d := n.decimal()
	switch d.Form {
	case apd.NaN, apd.NaNSignaling:
		return "NaN"
	case apd.Infinite:
		if d.Negative {
			return "-Infinity"
		}
		return "Infinity"
	}

	s := d.Text('f')
	if d.IsZero() {
		s = strings.TrimPrefix(s, "-")
	}
	return s
}

func (n Numeric) Object() map[string]any {
	return map[string]any{"value": n.String()}
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Object())
}

func (n Numeric) Equals(args ...any) (bool, error) {
	return n.SafeEquals(args...).Get()
}

func (n Numeric) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Numeric](NumericCodec{}, n, args)
}

type NumericCodec struct{}

func numericSpecial(nan bool, inf InfinityModifier) Numeric {
	if nan {
		return Numeric{d: &apd.Decimal{Form: apd.NaN}}
	}
	return Numeric{d: &apd.Decimal{Form: apd.Infinite, Negative: inf == NegativeInfinity}}
}

func numericRoutes() []route[Numeric] {
	return []route[Numeric]{
		on(KindString, func(v any) Result[Numeric] {
			s := strings.TrimSpace(v.(string))
			if m := floatSpecialLiteral.FindStringSubmatch(s); m != nil {
				if strings.EqualFold(m[2], "nan") {
					return Ok(numericSpecial(true, Finite))
				}
				if m[1] == "-" {
					return Ok(numericSpecial(false, NegativeInfinity))
				}
				return Ok(numericSpecial(false, Infinity))
			}

			d, ok := parseDecimalLiteral(s, decimalLiteral)
			if !ok {
				return Invalid[Numeric](InvalidString{Expected: "numeric", Received: v.(string)})
			}
			return Ok(Numeric{d: d})
		}),
		on(KindNumber, func(v any) Result[Numeric] {
			d, _ := decimalOf(v)
			return Ok(Numeric{d: d})
		}),
		on(KindBigInt, func(v any) Result[Numeric] {
			d, _ := decimalOf(v)
			return Ok(Numeric{d: d})
		}),
		on(KindNaN, func(any) Result[Numeric] { return Ok(numericSpecial(true, Finite)) }),
		on(KindInfinity, func(v any) Result[Numeric] {
			if math.IsInf(v.(float64), -1) {
				return Ok(numericSpecial(false, NegativeInfinity))
			}
			return Ok(numericSpecial(false, Infinity))
		}),
		on(KindDecimal, func(v any) Result[Numeric] {
			if d, ok := v.(*apd.Decimal); ok {
				return Ok(Numeric{d: new(apd.Decimal).Set(d)})
			}
			d, _ := decimalOf(v)
			return Ok(Numeric{d: d})
		}),
	}
}

// SafeFrom accepts a text literal (including NaN and the infinities), a number, a *big.Int, an apd or shopspring
// decimal, an object {value} or a Numeric.
func (NumericCodec) SafeFrom(args ...any) Result[Numeric] {
	valueShape := shape{required("value", KindString, KindNumber, KindBigInt, KindDecimal, KindNaN, KindInfinity)}

	routes := append(numericRoutes(),
		on(KindObject, parseObject(valueShape, func(obj map[string]any) Result[Numeric] {
			return dispatch("Numeric", []any{obj["value"]}, numericRoutes()...)
		})),
		on(KindInstance, func(v any) Result[Numeric] { return Ok(v.(Numeric)) }),
	)
	return dispatch("Numeric", args, routes...)
}

func (c NumericCodec) From(args ...any) (Numeric, error) {
	return c.SafeFrom(args...).Get()
}

// numericRank places -Infinity before finite values, then Infinity, then NaN.
func numericRank(d *apd.Decimal) int {
	switch d.Form {
	case apd.NaN, apd.NaNSignaling:
		return 3
	case apd.Infinite:
		if d.Negative {
			return 0
		}
		return 2
	default:
		return 1
	}
}

func (NumericCodec) Compare(a, b Numeric) int {
	da, db := a.decimal(), b.decimal()
	ra, rb := numericRank(da), numericRank(db)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	case ra == 1:
		return da.Cmp(db)
	default:
		return 0
	}
}

func NumericFrom(args ...any) (Numeric, error) {
	return NumericCodec{}.From(args...)
}

func SafeNumericFrom(args ...any) Result[Numeric] {
	return NumericCodec{}.SafeFrom(args...)
}
