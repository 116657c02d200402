package pgtype

import (
	"encoding/json"
	"math/big"
	"strings"
)

// parseBitLiteral returns the binary digits of a bit string literal: binary digits, optionally prefixed with B, or
// hexadecimal digits prefixed with X.
func parseBitLiteral(src, pgName string) (string, Issue) {
	s := strings.TrimSpace(src)
	invalid := InvalidString{Expected: pgName, Received: src}

	if len(s) > 0 && (s[0] == 'x' || s[0] == 'X') {
		var sb strings.Builder
		for _, r := range s[1:] {
			n, ok := hexDigit(r)
			if !ok {
				return "", invalid
			}
			for shift := 3; shift >= 0; shift-- {
				sb.WriteByte('0' + byte(n>>shift&1))
			}
		}
		return sb.String(), nil
	}

	if len(s) > 0 && (s[0] == 'b' || s[0] == 'B') {
		s = s[1:]
	}
	if strings.Trim(s, "01") != "" {
		return "", invalid
	}
	return s, nil
}

func hexDigit(r rune) (int, bool) {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0'), true
	case 'a' <= r && r <= 'f':
		return int(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// bitsOfNumber converts a non-negative whole number to binary digits left padded with zeros to width.
func bitsOfNumber(v any, subject Subject, width int) (string, Issue) {
	d, ok := decimalOf(v)
	if !ok {
		return "", NotFinite{}
	}
	if !isWhole(d) {
		return "", NotWhole{}
	}
	if d.Negative && !d.IsZero() {
		return "", TooSmall{Subject: subject, Minimum: "0", Inclusive: true}
	}

	digits := bigIntOf(d).Text(2)
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}
	return digits, nil
}

func bitsOfBytes(buf []byte) string {
	var sb strings.Builder
	sb.Grow(len(buf) * 8)
	for _, b := range buf {
		for shift := 7; shift >= 0; shift-- {
			sb.WriteByte('0' + b>>shift&1)
		}
	}
	return sb.String()
}

func bitsBigInt(digits string) *big.Int {
	n := new(big.Int)
	if digits != "" {
		n.SetString(digits, 2)
	}
	return n
}

// bitsBytes packs digits most significant bit first. The last byte is padded with zero bits.
func bitsBytes(digits string) []byte {
	buf := make([]byte, (len(digits)+7)/8)
	for i := 0; i < len(digits); i++ {
		if digits[i] == '1' {
			buf[i/8] |= 0x80 >> (i % 8)
		}
	}
	return buf
}

// bitRoutes routes the inputs shared by Bit and Varbit. width pads numeric inputs. check enforces the length
// modifier.
func bitRoutes[T any](name, pgName string, width int, check func(digits string) Result[T]) []route[T] {
	scalar := []route[T]{
		on(KindString, func(v any) Result[T] {
			digits, issue := parseBitLiteral(v.(string), pgName)
			if issue != nil {
				return Invalid[T](issue)
			}
			return check(digits)
		}),
		on(KindNumber, func(v any) Result[T] {
			digits, issue := bitsOfNumber(v, SubjectNumber, width)
			if issue != nil {
				return Invalid[T](issue)
			}
			return check(digits)
		}),
		on(KindBigInt, func(v any) Result[T] {
			digits, issue := bitsOfNumber(v, SubjectBigInt, width)
			if issue != nil {
				return Invalid[T](issue)
			}
			return check(digits)
		}),
		on(KindBytes, func(v any) Result[T] {
			return check(bitsOfBytes(v.([]byte)))
		}),
	}

	valueShape := shape{required("value", KindString, KindNumber, KindBigInt)}
	return append(scalar,
		on(KindObject, parseObject(valueShape, func(obj map[string]any) Result[T] {
			return dispatch(name, []any{obj["value"]}, scalar...)
		})),
	)
}

// Bit is a PostgreSQL bit(n): a fixed length bit string.
type Bit struct {
	digits string
}

func (b Bit) Len() int {
	return len(b.digits)
}

// BigInt returns the bit string as an unsigned integer.
func (b Bit) BigInt() *big.Int {
	return bitsBigInt(b.digits)
}

func (b Bit) Bytes() []byte {
	return bitsBytes(b.digits)
}

func (b Bit) String() string {
	return b.digits
}

func (b Bit) Object() map[string]any {
	return map[string]any{"value": b.digits}
}

func (b Bit) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Object())
}

func (b Bit) Equals(args ...any) (bool, error) {
	return b.SafeEquals(args...).Get()
}

func (b Bit) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Bit](BitCodec{N: len(b.digits)}, b, args)
}

// BitCodec parses bit(N). N of zero means 1, as in PostgreSQL.
type BitCodec struct {
	N int
}

func (c BitCodec) n() int {
	if c.N <= 0 {
		return 1
	}
	return c.N
}

func (c BitCodec) check(digits string) Result[Bit] {
	if len(digits) != c.n() {
		return Invalid[Bit](InvalidNLength{Maximum: c.n(), Received: len(digits), Exact: true})
	}
	return Ok(Bit{digits: digits})
}

// SafeFrom accepts a bit string literal, a non-negative whole number or *big.Int (left padded to N bits), a byte
// slice, an object {value} or a Bit.
func (c BitCodec) SafeFrom(args ...any) Result[Bit] {
	routes := append(bitRoutes("Bit", "bit", c.n(), c.check),
		on(KindInstance, func(v any) Result[Bit] { return c.check(v.(Bit).digits) }),
	)
	return dispatch("Bit", args, routes...)
}

func (c BitCodec) From(args ...any) (Bit, error) {
	return c.SafeFrom(args...).Get()
}

func (BitCodec) Compare(a, b Bit) int {
	return strings.Compare(a.digits, b.digits)
}

// Varbit is a PostgreSQL bit varying(n).
type Varbit struct {
	digits string
}

func (b Varbit) Len() int {
	return len(b.digits)
}

// BigInt returns the bit string as an unsigned integer.
func (b Varbit) BigInt() *big.Int {
	return bitsBigInt(b.digits)
}

func (b Varbit) Bytes() []byte {
	return bitsBytes(b.digits)
}

func (b Varbit) String() string {
	return b.digits
}

func (b Varbit) Object() map[string]any {
	return map[string]any{"value": b.digits}
}

func (b Varbit) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Object())
}

func (b Varbit) Equals(args ...any) (bool, error) {
	return b.SafeEquals(args...).Get()
}

func (b Varbit) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Varbit](VarbitCodec{}, b, args)
}

// VarbitCodec parses bit varying(N). N of zero means no limit.
type VarbitCodec struct {
	N int
}

func (c VarbitCodec) check(digits string) Result[Varbit] {
	if c.N > 0 && len(digits) > c.N {
		return Invalid[Varbit](InvalidNLength{Maximum: c.N, Received: len(digits)})
	}
	return Ok(Varbit{digits: digits})
}

// SafeFrom accepts a bit string literal, a non-negative whole number or *big.Int, a byte slice, an object {value}
// or a Varbit.
func (c VarbitCodec) SafeFrom(args ...any) Result[Varbit] {
	routes := append(bitRoutes("Varbit", "varbit", 0, c.check),
		on(KindInstance, func(v any) Result[Varbit] { return c.check(v.(Varbit).digits) }),
	)
	return dispatch("Varbit", args, routes...)
}

func (c VarbitCodec) From(args ...any) (Varbit, error) {
	return c.SafeFrom(args...).Get()
}

func (VarbitCodec) Compare(a, b Varbit) int {
	return strings.Compare(a.digits, b.digits)
}

func BitFrom(n int, args ...any) (Bit, error) {
	return BitCodec{N: n}.From(args...)
}

func SafeBitFrom(n int, args ...any) Result[Bit] {
	return BitCodec{N: n}.SafeFrom(args...)
}

func VarbitFrom(n int, args ...any) (Varbit, error) {
	return VarbitCodec{N: n}.From(args...)
}

func SafeVarbitFrom(n int, args ...any) Result[Varbit] {
	return VarbitCodec{N: n}.SafeFrom(args...)
}
