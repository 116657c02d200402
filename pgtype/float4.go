package pgtype

import (
	"encoding/json"
)

// Float4 is a PostgreSQL real. Values are held as float32 precision.
type Float4 struct {
	value float32
}

func (f Float4) Float32() float32 {
	return f.value
}

func (f Float4) String() string {
	return formatFloat(float64(f.value), 32)
}

func (f Float4) Object() map[string]any {
	return map[string]any{"value": floatObjectValue(float64(f.value), 32)}
}

func (f Float4) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Object())
}

func (f Float4) Equals(args ...any) (bool, error) {
	return f.SafeEquals(args...).Get()
}

func (f Float4) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Float4](Float4Codec{}, f, args)
}

type Float4Codec struct{}

func (Float4Codec) SafeFrom(args ...any) Result[Float4] {
	return parseFloat("Float4", "float4", 32, func(f float64) Float4 { return Float4{value: float32(f)} }, args)
}

func (c Float4Codec) From(args ...any) (Float4, error) {
	return c.SafeFrom(args...).Get()
}

func (Float4Codec) Compare(a, b Float4) int {
	return compareFloat(float64(a.value), float64(b.value))
}

func Float4From(args ...any) (Float4, error) {
	return Float4Codec{}.From(args...)
}

func SafeFloat4From(args ...any) Result[Float4] {
	return Float4Codec{}.SafeFrom(args...)
}
