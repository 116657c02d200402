package pgtype

import (
	"encoding/json"
)

// Polygon is a PostgreSQL polygon.
type Polygon struct {
	points []Vec2
}

func (p Polygon) Points() []Vec2 {
	points := make([]Vec2, len(p.points))
	copy(points, p.points)
	return points
}

func (p Polygon) String() string {
	return "(" + formatPoints(p.points) + ")"
}

func (p Polygon) Object() map[string]any {
	return map[string]any{"points": pointObjects(p.points)}
}

func (p Polygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Object())
}

func (p Polygon) Equals(args ...any) (bool, error) {
	return p.SafeEquals(args...).Get()
}

func (p Polygon) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Polygon](PolygonCodec{}, p, args)
}

type PolygonCodec struct{}

var polygonShape = shape{required("points", KindArray)}

// SafeFrom accepts "((x1,y1),...)" or "(x1,y1),...", an array of point inputs, an object {points} or a Polygon.
func (PolygonCodec) SafeFrom(args ...any) Result[Polygon] {
	return dispatch("Polygon", args,
		on(KindString, func(v any) Result[Polygon] {
			src := v.(string)
			s := &geomScanner{src: src}
			outer := s.consumeOuter('(')
			points, ok := s.points()
			if !ok || (outer && !s.consume(')')) || !s.done() {
				return Invalid[Polygon](InvalidString{Expected: "polygon", Received: src})
			}
			return Ok(Polygon{points: points})
		}),
		on(KindArray, func(v any) Result[Polygon] {
			points, issue := pointArgs(v.([]any))
			if issue != nil {
				return Invalid[Polygon](issue)
			}
			return Ok(Polygon{points: points})
		}),
		on(KindObject, parseObject(polygonShape, func(obj map[string]any) Result[Polygon] {
			points, issue := pointArgs(normalize(obj["points"]).([]any))
			if issue != nil {
				return Invalid[Polygon](issue)
			}
			return Ok(Polygon{points: points})
		})),
		on(KindInstance, func(v any) Result[Polygon] { return Ok(v.(Polygon)) }),
	)
}

func (c PolygonCodec) From(args ...any) (Polygon, error) {
	return c.SafeFrom(args...).Get()
}

func PolygonFrom(args ...any) (Polygon, error) {
	return PolygonCodec{}.From(args...)
}

func SafePolygonFrom(args ...any) Result[Polygon] {
	return PolygonCodec{}.SafeFrom(args...)
}
