package pgtype

import (
	"encoding/json"
)

// Circle is a PostgreSQL circle. The radius is never negative.
type Circle struct {
	center Vec2
	radius float64
}

func (c Circle) Center() Vec2 {
	return c.center
}

func (c Circle) Radius() float64 {
	return c.radius
}

func (c Circle) String() string {
	return "<" + c.center.String() + "," + formatFloat(c.radius, 64) + ">"
}

func (c Circle) Object() map[string]any {
	obj := c.center.object()
	obj["radius"] = floatObjectValue(c.radius, 64)
	return obj
}

func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Object())
}

func (c Circle) Equals(args ...any) (bool, error) {
	return c.SafeEquals(args...).Get()
}

func (c Circle) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Circle](CircleCodec{}, c, args)
}

type CircleCodec struct{}

var circleShape = shape{coordField("x"), coordField("y"), coordField("radius")}

func newCircle(center Vec2, radius float64) Result[Circle] {
	if radius < 0 {
		return Invalid[Circle](TooSmall{Subject: SubjectNumber, Minimum: "0", Inclusive: true})
	}
	return Ok(Circle{center: center, radius: radius})
}

func circleFromCoords(args ...any) Result[Circle] {
	coords, issue := coordArgs(args...)
	if issue != nil {
		return Invalid[Circle](issue)
	}
	return newCircle(Vec2{X: coords[0], Y: coords[1]}, coords[2])
}

// SafeFrom accepts "<(x,y),r>", "((x,y),r)" or "(x,y),r", x, y and radius as arguments, an object {x, y, radius}
// or a Circle.
func (CircleCodec) SafeFrom(args ...any) Result[Circle] {
	return dispatch("Circle", args,
		on(KindString, func(v any) Result[Circle] {
			src := v.(string)
			s := &geomScanner{src: src}
			var end byte
			switch {
			case s.consume('<'):
				end = '>'
			case s.consumeOuter('('):
				end = ')'
			}
			center, ok := s.point()
			if !ok || !s.consume(',') {
				return Invalid[Circle](InvalidString{Expected: "circle", Received: src})
			}
			radius, ok := s.number()
			if !ok || (end != 0 && !s.consume(end)) || !s.done() {
				return Invalid[Circle](InvalidString{Expected: "circle", Received: src})
			}
			return newCircle(center, radius)
		}),
		onArgs(KindNumber, 3, 3, func(args []any) Result[Circle] {
			return circleFromCoords(args...)
		}),
		on(KindObject, parseObject(circleShape, func(obj map[string]any) Result[Circle] {
			return circleFromCoords(obj["x"], obj["y"], obj["radius"])
		})),
		on(KindInstance, func(v any) Result[Circle] { return Ok(v.(Circle)) }),
	)
}

func (c CircleCodec) From(args ...any) (Circle, error) {
	return c.SafeFrom(args...).Get()
}

func CircleFrom(args ...any) (Circle, error) {
	return CircleCodec{}.From(args...)
}

func SafeCircleFrom(args ...any) Result[Circle] {
	return CircleCodec{}.SafeFrom(args...)
}
