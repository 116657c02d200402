package pgtype

import (
	"encoding/json"
)

// Point is a PostgreSQL point.
type Point struct {
	p Vec2
}

func (p Point) Vec2() Vec2 {
	return p.p
}

func (p Point) X() float64 {
	return p.p.X
}

func (p Point) Y() float64 {
	return p.p.Y
}

func (p Point) String() string {
	return p.p.String()
}

func (p Point) Object() map[string]any {
	return p.p.object()
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Object())
}

func (p Point) Equals(args ...any) (bool, error) {
	return p.SafeEquals(args...).Get()
}

func (p Point) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Point](PointCodec{}, p, args)
}

type PointCodec struct{}

var pointShape = shape{coordField("x"), coordField("y")}

func pointFromCoords(args ...any) Result[Point] {
	coords, issue := coordArgs(args...)
	if issue != nil {
		return Invalid[Point](issue)
	}
	return Ok(Point{p: Vec2{X: coords[0], Y: coords[1]}})
}

// SafeFrom accepts "(x,y)" or "x,y", two coordinates as arguments or as an array, an object {x, y} or a Point.
func (PointCodec) SafeFrom(args ...any) Result[Point] {
	return dispatch("Point", args,
		on(KindString, func(v any) Result[Point] {
			s := &geomScanner{src: v.(string)}
			p, ok := s.point()
			if !ok || !s.done() {
				return Invalid[Point](InvalidString{Expected: "point", Received: v.(string)})
			}
			return Ok(Point{p: p})
		}),
		onArgs(KindNumber, 2, 2, func(args []any) Result[Point] {
			return pointFromCoords(args...)
		}),
		on(KindArray, func(v any) Result[Point] {
			coords := v.([]any)
			if issue := exactlyTwo(len(coords)); issue != nil {
				return Invalid[Point](issue)
			}
			return pointFromCoords(coords...)
		}),
		on(KindObject, parseObject(pointShape, func(obj map[string]any) Result[Point] {
			return pointFromCoords(obj["x"], obj["y"])
		})),
		on(KindInstance, func(v any) Result[Point] { return Ok(v.(Point)) }),
	)
}

func (c PointCodec) From(args ...any) (Point, error) {
	return c.SafeFrom(args...).Get()
}

func PointFrom(args ...any) (Point, error) {
	return PointCodec{}.From(args...)
}

func SafePointFrom(args ...any) Result[Point] {
	return PointCodec{}.SafeFrom(args...)
}
