package pgtype

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/cockroachdb/apd"
)

// integerType describes one of the fixed width integer types.
type integerType[T Value] struct {
	name   string
	pgName string
	min    int64
	max    int64
	build  func(int64) T
}

func (it integerType[T]) scalarRoutes() []route[T] {
	return []route[T]{
		on(KindString, func(v any) Result[T] {
			d, ok := parseDecimalLiteral(v.(string), integerLiteral)
			if !ok {
				return Invalid[T](InvalidString{Expected: it.pgName, Received: v.(string)})
			}
			return it.fromDecimal(d, SubjectNumber)
		}),
		on(KindNumber, func(v any) Result[T] {
			d, _ := decimalOf(v)
			return it.fromDecimal(d, SubjectNumber)
		}),
		on(KindBigInt, func(v any) Result[T] {
			d, _ := decimalOf(v)
			return it.fromDecimal(d, SubjectBigInt)
		}),
		on(KindNaN, func(any) Result[T] { return Invalid[T](NotFinite{}) }),
		on(KindInfinity, func(any) Result[T] { return Invalid[T](NotFinite{}) }),
		on(KindDecimal, func(v any) Result[T] {
			d, ok := decimalOf(v)
			if !ok {
				return Invalid[T](NotFinite{})
			}
			return it.fromDecimal(d, SubjectNumber)
		}),
	}
}

func (it integerType[T]) fromDecimal(d *apd.Decimal, subject Subject) Result[T] {
	if !isWhole(d) {
		return Invalid[T](NotWhole{})
	}
	minText, maxText := strconv.FormatInt(it.min, 10), strconv.FormatInt(it.max, 10)
	if issue := checkBounds(d, subject, apd.New(it.min, 0), apd.New(it.max, 0), minText, maxText); issue != nil {
		return Invalid[T](issue)
	}
	return Ok(it.build(bigIntOf(d).Int64()))
}

func (it integerType[T]) parse(args []any) Result[T] {
	valueShape := shape{required("value", KindString, KindNumber, KindBigInt, KindDecimal, KindNaN, KindInfinity)}

	routes := append(it.scalarRoutes(),
		on(KindObject, parseObject(valueShape, func(obj map[string]any) Result[T] {
			return dispatch(it.name, []any{obj["value"]}, it.scalarRoutes()...)
		})),
		on(KindInstance, func(v any) Result[T] { return Ok(v.(T)) }),
	)
	return dispatch(it.name, args, routes...)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Int2 is a PostgreSQL smallint.
type Int2 struct {
	value int16
}

func (n Int2) Int16() int16 {
	return n.value
}

func (n Int2) String() string {
	return strconv.FormatInt(int64(n.value), 10)
}

func (n Int2) Object() map[string]any {
	return map[string]any{"value": int64(n.value)}
}

func (n Int2) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Object())
}

func (n Int2) Equals(args ...any) (bool, error) {
	return n.SafeEquals(args...).Get()
}

func (n Int2) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Int2](Int2Codec{}, n, args)
}

type Int2Codec struct{}

var int2Type = integerType[Int2]{
	name:   "Int2",
	pgName: "int2",
	min:    math.MinInt16,
	max:    math.MaxInt16,
	build:  func(n int64) Int2 { return Int2{value: int16(n)} },
}

// SafeFrom accepts a text literal, a number, a *big.Int, a decimal, an object {value} or an Int2.
func (Int2Codec) SafeFrom(args ...any) Result[Int2] {
	return int2Type.parse(args)
}

func (c Int2Codec) From(args ...any) (Int2, error) {
	return c.SafeFrom(args...).Get()
}

func (Int2Codec) Compare(a, b Int2) int {
	return compareInt64(int64(a.value), int64(b.value))
}

func Int2From(args ...any) (Int2, error) {
	return Int2Codec{}.From(args...)
}

func SafeInt2From(args ...any) Result[Int2] {
	return Int2Codec{}.SafeFrom(args...)
}

// Int4 is a PostgreSQL integer.
type Int4 struct {
	value int32
}

func (n Int4) Int32() int32 {
	return n.value
}

func (n Int4) String() string {
	return strconv.FormatInt(int64(n.value), 10)
}

func (n Int4) Object() map[string]any {
	return map[string]any{"value": int64(n.value)}
}

func (n Int4) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Object())
}

func (n Int4) Equals(args ...any) (bool, error) {
	return n.SafeEquals(args...).Get()
}

func (n Int4) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Int4](Int4Codec{}, n, args)
}

type Int4Codec struct{}

var int4Type = integerType[Int4]{
	name:   "Int4",
	pgName: "int4",
	min:    math.MinInt32,
	max:    math.MaxInt32,
	build:  func(n int64) Int4 { return Int4{value: int32(n)} },
}

func (Int4Codec) SafeFrom(args ...any) Result[Int4] {
	return int4Type.parse(args)
}

func (c Int4Codec) From(args ...any) (Int4, error) {
	return c.SafeFrom(args...).Get()
}

func (Int4Codec) Compare(a, b Int4) int {
	return compareInt64(int64(a.value), int64(b.value))
}

func Int4From(args ...any) (Int4, error) {
	return Int4Codec{}.From(args...)
}

func SafeInt4From(args ...any) Result[Int4] {
	return Int4Codec{}.SafeFrom(args...)
}

// Int8 is a PostgreSQL bigint.
type Int8 struct {
	value int64
}

func (n Int8) Int64() int64 {
	return n.value
}

func (n Int8) String() string {
	return strconv.FormatInt(n.value, 10)
}

// Object carries the value as text when it cannot be represented exactly by a float64.
func (n Int8) Object() map[string]any {
	if n.value > 1<<53 || n.value < -(1<<53) {
		return map[string]any{"value": n.String()}
	}
	return map[string]any{"value": n.value}
}

func (n Int8) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Object())
}

func (n Int8) Equals(args ...any) (bool, error) {
	return n.SafeEquals(args...).Get()
}

func (n Int8) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Int8](Int8Codec{}, n, args)
}

type Int8Codec struct{}

var int8Type = integerType[Int8]{
	name:   "Int8",
	pgName: "int8",
	min:    math.MinInt64,
	max:    math.MaxInt64,
	build:  func(n int64) Int8 { return Int8{value: n} },
}

func (Int8Codec) SafeFrom(args ...any) Result[Int8] {
	return int8Type.parse(args)
}

func (c Int8Codec) From(args ...any) (Int8, error) {
	return c.SafeFrom(args...).Get()
}

func (Int8Codec) Compare(a, b Int8) int {
	return compareInt64(a.value, b.value)
}

func Int8From(args ...any) (Int8, error) {
	return Int8Codec{}.From(args...)
}

func SafeInt8From(args ...any) Result[Int8] {
	return Int8Codec{}.SafeFrom(args...)
}
