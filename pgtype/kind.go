package pgtype

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"time"

	"github.com/cockroachdb/apd"
	"github.com/shopspring/decimal"
)

// Kind is the runtime shape of an input argument. Every parser routes on the Kind of its first argument.
type Kind int

const (
	KindUnknown Kind = iota
	KindNil
	KindString
	KindNumber
	KindBigInt
	KindBoolean
	KindArray
	KindObject
	KindBytes
	KindNaN
	KindInfinity
	KindTime
	KindDecimal
	KindInstance

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindNil:
		return "nil"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBigInt:
		return "bigint"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindBytes:
		return "bytes"
	case KindNaN:
		return "nan"
	case KindInfinity:
		return "infinity"
	case KindTime:
		return "time"
	case KindDecimal:
		return "decimal"
	case KindInstance:
		return "instance"
	default:
		panic(fmt.Sprintf("pgtype: unknown kind %d", int(k)))
	}
}

// Classify returns the Kind of v. Pointers are followed, named types are reduced to their underlying kind, and
// KindInstance is never returned because Classify does not know which type is being parsed.
func Classify(v any) Kind {
	return classifyNormalized(normalize(v))
}

func classifyNormalized(v any) Kind {
	switch v := v.(type) {
	case nil:
		return KindNil
	case string:
		return KindString
	case bool:
		return KindBoolean
	case int64, uint64:
		return KindNumber
	case float64:
		switch {
		case math.IsNaN(v):
			return KindNaN
		case math.IsInf(v, 0):
			return KindInfinity
		default:
			return KindNumber
		}
	case *big.Int:
		return KindBigInt
	case []byte:
		return KindBytes
	case time.Time:
		return KindTime
	case *apd.Decimal, decimal.Decimal:
		return KindDecimal
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	default:
		return KindUnknown
	}
}

// classifyFor is Classify extended with instance detection for T. The returned value is normalized, or is the T
// itself for KindInstance.
func classifyFor[T any](v any) (Kind, any) {
	if t, ok := v.(T); ok {
		return KindInstance, t
	}
	if p, ok := v.(*T); ok && p != nil {
		return KindInstance, *p
	}

	n := normalize(v)
	return classifyNormalized(n), n
}

// receivedName describes v for issues. Unknown shapes are described by their Go type.
func receivedName(v any) string {
	kind := Classify(v)
	if kind == KindUnknown {
		return fmt.Sprintf("%T", v)
	}
	return kind.String()
}

// normalize reduces v to one of the representations classifyNormalized understands: int64, uint64, float64,
// string, bool, []byte, []any, map[string]any, *big.Int, *apd.Decimal, decimal.Decimal or time.Time. Anything
// else is returned unchanged.
func normalize(v any) any {
	switch v := v.(type) {
	case nil, string, bool, int64, uint64, float64, []byte, []any, map[string]any, time.Time, decimal.Decimal:
		return v
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return uint64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case float32:
		return float64(v)
	case *big.Int:
		if v == nil {
			return nil
		}
		return v
	case big.Int:
		return &v
	case *apd.Decimal:
		if v == nil {
			return nil
		}
		return v
	case apd.Decimal:
		return &v
	case *time.Time:
		if v == nil {
			return nil
		}
		return *v
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Bytes()
		}
		return sliceToAny(rv)
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			buf := make([]byte, rv.Len())
			for i := range buf {
				buf[i] = byte(rv.Index(i).Uint())
			}
			return buf
		}
		return sliceToAny(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return m
	}

	return v
}

func sliceToAny(rv reflect.Value) []any {
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems
}
