package pgtype

import (
	"encoding/json"
)

// Line is a PostgreSQL line Ax + By + C = 0. A and B are never both zero.
type Line struct {
	a, b, c float64
}

func (l Line) A() float64 { return l.a }
func (l Line) B() float64 { return l.b }
func (l Line) C() float64 { return l.c }

func (l Line) String() string {
	return "{" + formatFloat(l.a, 64) + "," + formatFloat(l.b, 64) + "," + formatFloat(l.c, 64) + "}"
}

func (l Line) Object() map[string]any {
	return map[string]any{
		"a": floatObjectValue(l.a, 64),
		"b": floatObjectValue(l.b, 64),
		"c": floatObjectValue(l.c, 64),
	}
}

func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Object())
}

func (l Line) Equals(args ...any) (bool, error) {
	return l.SafeEquals(args...).Get()
}

func (l Line) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Line](LineCodec{}, l, args)
}

type LineCodec struct{}

var lineShape = shape{coordField("a"), coordField("b"), coordField("c")}

func newLine(a, b, c float64) Result[Line] {
	l := Line{a: a, b: b, c: c}
	if a == 0 && b == 0 {
		return Invalid[Line](InvalidString{Expected: "line", Received: l.String()})
	}
	return Ok(l)
}

func lineFromCoords(args ...any) Result[Line] {
	coords, issue := coordArgs(args...)
	if issue != nil {
		return Invalid[Line](issue)
	}
	return newLine(coords[0], coords[1], coords[2])
}

// SafeFrom accepts "{A,B,C}", three coefficients as arguments, an object {a, b, c} or a Line.
func (LineCodec) SafeFrom(args ...any) Result[Line] {
	return dispatch("Line", args,
		on(KindString, func(v any) Result[Line] {
			src := v.(string)
			s := &geomScanner{src: src}
			if !s.consume('{') {
				return Invalid[Line](InvalidString{Expected: "line", Received: src})
			}
			nums, ok := s.numbers(3)
			if !ok || !s.consume('}') || !s.done() {
				return Invalid[Line](InvalidString{Expected: "line", Received: src})
			}
			if nums[0] == 0 && nums[1] == 0 {
				return Invalid[Line](InvalidString{Expected: "line", Received: src})
			}
			return Ok(Line{a: nums[0], b: nums[1], c: nums[2]})
		}),
		onArgs(KindNumber, 3, 3, func(args []any) Result[Line] {
			return lineFromCoords(args...)
		}),
		on(KindObject, parseObject(lineShape, func(obj map[string]any) Result[Line] {
			return lineFromCoords(obj["a"], obj["b"], obj["c"])
		})),
		on(KindInstance, func(v any) Result[Line] { return Ok(v.(Line)) }),
	)
}

func (c LineCodec) From(args ...any) (Line, error) {
	return c.SafeFrom(args...).Get()
}

func LineFrom(args ...any) (Line, error) {
	return LineCodec{}.From(args...)
}

func SafeLineFrom(args ...any) Result[Line] {
	return LineCodec{}.SafeFrom(args...)
}
