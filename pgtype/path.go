package pgtype

import (
	"encoding/json"
)

// Path is a PostgreSQL path: one or more points that are either open or closed.
type Path struct {
	points []Vec2
	closed bool
}

func (p Path) Points() []Vec2 {
	points := make([]Vec2, len(p.points))
	copy(points, p.points)
	return points
}

func (p Path) Closed() bool {
	return p.closed
}

func (p Path) connection() string {
	if p.closed {
		return "closed"
	}
	return "open"
}

func (p Path) String() string {
	if p.closed {
		return "(" + formatPoints(p.points) + ")"
	}
	return "[" + formatPoints(p.points) + "]"
}

// Object returns {points, connection} where connection is "open" or "closed".
func (p Path) Object() map[string]any {
	return map[string]any{"points": pointObjects(p.points), "connection": p.connection()}
}

func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Object())
}

func (p Path) Equals(args ...any) (bool, error) {
	return p.SafeEquals(args...).Get()
}

func (p Path) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Path](PathCodec{}, p, args)
}

type PathCodec struct{}

var pathShape = shape{
	required("points", KindArray),
	required("connection", KindString),
}

// SafeFrom accepts "[(x1,y1),...]" (open), "((x1,y1),...)" or "(x1,y1),..." (closed), an array of point inputs
// (open), an object {points, connection} or a Path.
func (PathCodec) SafeFrom(args ...any) Result[Path] {
	return dispatch("Path", args,
		on(KindString, func(v any) Result[Path] {
			src := v.(string)
			s := &geomScanner{src: src}
			closed := true
			var end byte
			switch {
			case s.consume('['):
				closed = false
				end = ']'
			case s.consumeOuter('('):
				end = ')'
			}
			points, ok := s.points()
			if !ok || (end != 0 && !s.consume(end)) || !s.done() {
				return Invalid[Path](InvalidString{Expected: "path", Received: src})
			}
			return Ok(Path{points: points, closed: closed})
		}),
		on(KindArray, func(v any) Result[Path] {
			points, issue := pointArgs(v.([]any))
			if issue != nil {
				return Invalid[Path](issue)
			}
			return Ok(Path{points: points})
		}),
		on(KindObject, parseObject(pathShape, func(obj map[string]any) Result[Path] {
			var closed bool
			switch conn := normalize(obj["connection"]).(string); conn {
			case "open":
			case "closed":
				closed = true
			default:
				return Invalid[Path](InvalidString{Expected: "path connection", Received: conn})
			}
			points, issue := pointArgs(normalize(obj["points"]).([]any))
			if issue != nil {
				return Invalid[Path](issue)
			}
			return Ok(Path{points: points, closed: closed})
		})),
		on(KindInstance, func(v any) Result[Path] { return Ok(v.(Path)) }),
	)
}

func (c PathCodec) From(args ...any) (Path, error) {
	return c.SafeFrom(args...).Get()
}

func PathFrom(args ...any) (Path, error) {
	return PathCodec{}.From(args...)
}

func SafePathFrom(args ...any) Result[Path] {
	return PathCodec{}.SafeFrom(args...)
}
