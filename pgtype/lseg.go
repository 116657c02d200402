package pgtype

import (
	"encoding/json"
)

// Lseg is a PostgreSQL line segment.
type Lseg struct {
	p [2]Vec2
}

func (l Lseg) Points() [2]Vec2 {
	return l.p
}

func (l Lseg) String() string {
	return "[" + l.p[0].String() + "," + l.p[1].String() + "]"
}

func cornerObject(p [2]Vec2) map[string]any {
	return map[string]any{
		"x1": floatObjectValue(p[0].X, 64),
		"y1": floatObjectValue(p[0].Y, 64),
		"x2": floatObjectValue(p[1].X, 64),
		"y2": floatObjectValue(p[1].Y, 64),
	}
}

func (l Lseg) Object() map[string]any {
	return cornerObject(l.p)
}

func (l Lseg) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Object())
}

func (l Lseg) Equals(args ...any) (bool, error) {
	return l.SafeEquals(args...).Get()
}

func (l Lseg) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Lseg](LsegCodec{}, l, args)
}

type LsegCodec struct{}

var cornerShape = shape{coordField("x1"), coordField("y1"), coordField("x2"), coordField("y2")}

func cornerArgs(args ...any) ([2]Vec2, Issue) {
	coords, issue := coordArgs(args...)
	if issue != nil {
		return [2]Vec2{}, issue
	}
	return [2]Vec2{{X: coords[0], Y: coords[1]}, {X: coords[2], Y: coords[3]}}, nil
}

// SafeFrom accepts "[(x1,y1),(x2,y2)]", "((x1,y1),(x2,y2))" or "(x1,y1),(x2,y2)", four coordinates as arguments,
// an object {x1, y1, x2, y2} or an Lseg.
func (LsegCodec) SafeFrom(args ...any) Result[Lseg] {
	return dispatch("Lseg", args,
		on(KindString, func(v any) Result[Lseg] {
			src := v.(string)
			s := &geomScanner{src: src}
			var points []Vec2
			var ok bool
			if s.peek() == '[' {
				points, ok = s.pointPair('[', ']')
			} else {
				points, ok = s.pointPair('(', ')')
			}
			if !ok {
				return Invalid[Lseg](InvalidString{Expected: "lseg", Received: src})
			}
			return Ok(Lseg{p: [2]Vec2{points[0], points[1]}})
		}),
		onArgs(KindNumber, 4, 4, func(args []any) Result[Lseg] {
			p, issue := cornerArgs(args...)
			if issue != nil {
				return Invalid[Lseg](issue)
			}
			return Ok(Lseg{p: p})
		}),
		on(KindObject, parseObject(cornerShape, func(obj map[string]any) Result[Lseg] {
			p, issue := cornerArgs(obj["x1"], obj["y1"], obj["x2"], obj["y2"])
			if issue != nil {
				return Invalid[Lseg](issue)
			}
			return Ok(Lseg{p: p})
		})),
		on(KindInstance, func(v any) Result[Lseg] { return Ok(v.(Lseg)) }),
	)
}

func (c LsegCodec) From(args ...any) (Lseg, error) {
	return c.SafeFrom(args...).Get()
}

func LsegFrom(args ...any) (Lseg, error) {
	return LsegCodec{}.From(args...)
}

func SafeLsegFrom(args ...any) Result[Lseg] {
	return LsegCodec{}.SafeFrom(args...)
}
