package pgtype

import (
	"encoding/json"
	"math"
)

// Box is a PostgreSQL box. The upper right corner is always stored first.
type Box struct {
	p [2]Vec2
}

func newBox(a, b Vec2) Box {
	return Box{p: [2]Vec2{
		{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
		{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
	}}
}

// Corners returns the upper right and lower left corners.
func (b Box) Corners() [2]Vec2 {
	return b.p
}

func (b Box) String() string {
	return b.p[0].String() + "," + b.p[1].String()
}

func (b Box) Object() map[string]any {
	return cornerObject(b.p)
}

func (b Box) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Object())
}

func (b Box) Equals(args ...any) (bool, error) {
	return b.SafeEquals(args...).Get()
}

func (b Box) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Box](BoxCodec{}, b, args)
}

type BoxCodec struct{}

// ArrayDelimiter is ';' because the text of a box contains commas.
func (BoxCodec) ArrayDelimiter() byte {
	return ';'
}

// SafeFrom accepts "(x1,y1),(x2,y2)" or "((x1,y1),(x2,y2))", four coordinates as arguments, an object
// {x1, y1, x2, y2} or a Box. Any two opposite corners may be given.
func (BoxCodec) SafeFrom(args ...any) Result[Box] {
	return dispatch("Box", args,
		on(KindString, func(v any) Result[Box] {
			src := v.(string)
			s := &geomScanner{src: src}
			points, ok := s.pointPair('(', ')')
			if !ok {
				return Invalid[Box](InvalidString{Expected: "box", Received: src})
			}
			return Ok(newBox(points[0], points[1]))
		}),
		onArgs(KindNumber, 4, 4, func(args []any) Result[Box] {
			p, issue := cornerArgs(args...)
			if issue != nil {
				return Invalid[Box](issue)
			}
			return Ok(newBox(p[0], p[1]))
		}),
		on(KindObject, parseObject(cornerShape, func(obj map[string]any) Result[Box] {
			p, issue := cornerArgs(obj["x1"], obj["y1"], obj["x2"], obj["y2"])
			if issue != nil {
				return Invalid[Box](issue)
			}
			return Ok(newBox(p[0], p[1]))
		})),
		on(KindInstance, func(v any) Result[Box] { return Ok(v.(Box)) }),
	)
}

func (c BoxCodec) From(args ...any) (Box, error) {
	return c.SafeFrom(args...).Get()
}

func BoxFrom(args ...any) (Box, error) {
	return BoxCodec{}.From(args...)
}

func SafeBoxFrom(args ...any) Result[Box] {
	return BoxCodec{}.SafeFrom(args...)
}
