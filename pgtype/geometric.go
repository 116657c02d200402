package pgtype

import (
	"strings"
)

type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) String() string {
	return "(" + formatFloat(v.X, 64) + "," + formatFloat(v.Y, 64) + ")"
}

func (v Vec2) object() map[string]any {
	return map[string]any{"x": floatObjectValue(v.X, 64), "y": floatObjectValue(v.Y, 64)}
}

func formatPoints(points []Vec2) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}

func pointObjects(points []Vec2) []any {
	objs := make([]any, len(points))
	for i, p := range points {
		objs[i] = p.object()
	}
	return objs
}

var coordKinds = []Kind{KindString, KindNumber, KindBigInt, KindNaN, KindInfinity, KindDecimal}

func coordField(name string) field {
	return required(name, coordKinds...)
}

// coordArg reads one coordinate using the float8 rules.
func coordArg(v any) (float64, Issue) {
	r := Float8Codec{}.SafeFrom(v)
	if r.issue != nil {
		return 0, r.issue
	}
	return r.value.Float64(), nil
}

func coordArgs(args ...any) ([]float64, Issue) {
	coords := make([]float64, len(args))
	for i, a := range args {
		f, issue := coordArg(a)
		if issue != nil {
			return nil, issue
		}
		coords[i] = f
	}
	return coords, nil
}

// pointArgs parses every element of inputs as a point. At least one point is required.
func pointArgs(inputs []any) ([]Vec2, Issue) {
	if len(inputs) == 0 {
		return nil, TooSmall{Subject: SubjectArray, Minimum: "1", Inclusive: true}
	}
	points := make([]Vec2, len(inputs))
	for i, in := range inputs {
		r := PointCodec{}.SafeFrom(in)
		if r.issue != nil {
			return nil, r.issue
		}
		points[i] = r.value.p
	}
	return points, nil
}

// geomScanner reads the whitespace insensitive grammars of the geometric types.
type geomScanner struct {
	src string
	pos int
}

func isGeomSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func (s *geomScanner) peek() byte {
	for s.pos < len(s.src) && isGeomSpace(s.src[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *geomScanner) consume(c byte) bool {
	if s.peek() == c {
		s.pos++
		return true
	}
	return false
}

// consumeOuter consumes open only when it wraps a parenthesized point.
func (s *geomScanner) consumeOuter(open byte) bool {
	if s.peek() != open {
		return false
	}
	save := s.pos
	s.pos++
	if s.peek() == '(' {
		return true
	}
	s.pos = save
	return false
}

func (s *geomScanner) done() bool {
	return s.peek() == 0
}

func (s *geomScanner) number() (float64, bool) {
	s.peek()
	start := s.pos
	for s.pos < len(s.src) && strings.IndexByte(",()[]<>{}", s.src[s.pos]) < 0 {
		s.pos++
	}
	f, issue := parseFloatLiteral(s.src[start:s.pos], "float8", 64)
	return f, issue == nil
}

// numbers reads n comma separated numbers.
func (s *geomScanner) numbers(n int) ([]float64, bool) {
	nums := make([]float64, n)
	for i := range nums {
		if i > 0 && !s.consume(',') {
			return nil, false
		}
		f, ok := s.number()
		if !ok {
			return nil, false
		}
		nums[i] = f
	}
	return nums, true
}

// point reads "(x,y)" or "x,y".
func (s *geomScanner) point() (Vec2, bool) {
	paren := s.consume('(')
	nums, ok := s.numbers(2)
	if !ok || (paren && !s.consume(')')) {
		return Vec2{}, false
	}
	return Vec2{X: nums[0], Y: nums[1]}, true
}

// points reads one or more comma separated points.
func (s *geomScanner) points() ([]Vec2, bool) {
	var points []Vec2
	for {
		p, ok := s.point()
		if !ok {
			return nil, false
		}
		points = append(points, p)
		if !s.consume(',') {
			return points, true
		}
	}
}

// pointPair reads two points optionally wrapped in open and end.
func (s *geomScanner) pointPair(open, end byte) ([]Vec2, bool) {
	outer := s.consumeOuter(open)
	a, ok := s.point()
	if !ok || !s.consume(',') {
		return nil, false
	}
	b, ok := s.point()
	if !ok || (outer && !s.consume(end)) || !s.done() {
		return nil, false
	}
	return []Vec2{a, b}, true
}
