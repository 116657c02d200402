package pgtype

import (
	"encoding/json"
	"strings"
)

// MultiRange is an ordered list of ranges over T. The ranges are kept in the order they were given; they are not
// sorted or merged.
type MultiRange[T Value, C OrderedCodec[T]] struct {
	codec  C
	ranges []Range[T, C]
}

// Ranges returns a copy of the ranges.
func (mr MultiRange[T, C]) Ranges() []Range[T, C] {
	ranges := make([]Range[T, C], len(mr.ranges))
	copy(ranges, mr.ranges)
	return ranges
}

func (mr MultiRange[T, C]) Len() int {
	return len(mr.ranges)
}

// Contains reports whether any range contains v.
func (mr MultiRange[T, C]) Contains(v T) bool {
	for _, r := range mr.ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// IsWithinRange parses args as an element and reports whether any range contains it.
func (mr MultiRange[T, C]) IsWithinRange(args ...any) (bool, error) {
	v, err := mr.codec.SafeFrom(args...).Get()
	if err != nil {
		return false, err
	}
	return mr.Contains(v), nil
}

// SetRanges replaces the ranges with any input MultiRangeCodec.SafeFrom accepts. mr is unchanged on failure.
func (mr *MultiRange[T, C]) SetRanges(args ...any) error {
	next, err := MultiRangeCodec[T, C]{Element: mr.codec}.From(args...)
	if err != nil {
		return err
	}
	*mr = next
	return nil
}

func (mr MultiRange[T, C]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range mr.ranges {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Object returns {ranges} with each range as its canonical text.
func (mr MultiRange[T, C]) Object() map[string]any {
	ranges := make([]any, len(mr.ranges))
	for i, r := range mr.ranges {
		ranges[i] = r.String()
	}
	return map[string]any{"ranges": ranges}
}

func (mr MultiRange[T, C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(mr.Object())
}

func (mr MultiRange[T, C]) Equals(args ...any) (bool, error) {
	return mr.SafeEquals(args...).Get()
}

func (mr MultiRange[T, C]) SafeEquals(args ...any) Result[bool] {
	return safeEquals[MultiRange[T, C]](MultiRangeCodec[T, C]{Element: mr.codec}, mr, args)
}

// MultiRangeCodec parses multiranges whose ranges are handled by RangeCodec{Element}.
type MultiRangeCodec[T Value, C OrderedCodec[T]] struct {
	Element C
}

var multiRangeShape = shape{
	required("ranges", KindArray),
}

func (c MultiRangeCodec[T, C]) ranges(inputs []any) Result[MultiRange[T, C]] {
	rc := RangeCodec[T, C]{Element: c.Element}
	mr := MultiRange[T, C]{codec: c.Element, ranges: make([]Range[T, C], 0, len(inputs))}
	for _, in := range inputs {
		r := rc.SafeFrom(in)
		if r.issue != nil {
			return Invalid[MultiRange[T, C]](r.issue)
		}
		mr.ranges = append(mr.ranges, r.value)
	}
	return Ok(mr)
}

func (c MultiRangeCodec[T, C]) parseText(src string) Result[MultiRange[T, C]] {
	halves, ok := splitMultiRange(src)
	if !ok {
		return Invalid[MultiRange[T, C]](InvalidString{Expected: "multirange", Received: src})
	}

	// empty has no comma and stands alone. Every other range is a half opening with [ or ( followed by a half
	// closing with ) or ].
	inputs := make([]any, 0, len(halves)/2)
	for i := 0; i < len(halves); i++ {
		if strings.EqualFold(strings.TrimSpace(halves[i]), "empty") {
			inputs = append(inputs, halves[i])
			continue
		}
		if i+1 == len(halves) || !opensRange(halves[i]) || !closesRange(halves[i+1]) {
			return Invalid[MultiRange[T, C]](InvalidString{Expected: "multirange", Received: src})
		}
		inputs = append(inputs, halves[i]+","+halves[i+1])
		i++
	}
	return c.ranges(inputs)
}

func opensRange(half string) bool {
	half = strings.TrimSpace(half)
	return half != "" && (half[0] == '[' || half[0] == '(')
}

func closesRange(half string) bool {
	half = strings.TrimSpace(half)
	return half != "" && (half[len(half)-1] == ']' || half[len(half)-1] == ')')
}

// SafeFrom accepts a multirange literal, an array of range inputs, an object {ranges}, two or more range input
// arguments, a single Range or a MultiRange.
func (c MultiRangeCodec[T, C]) SafeFrom(args ...any) Result[MultiRange[T, C]] {
	rc := RangeCodec[T, C]{Element: c.Element}
	if len(args) > 1 || (len(args) == 1 && rc.IsRange(args[0])) {
		return c.ranges(args)
	}

	return dispatch("MultiRange", args,
		on(KindString, func(v any) Result[MultiRange[T, C]] {
			return c.parseText(v.(string))
		}),
		on(KindArray, func(v any) Result[MultiRange[T, C]] {
			return c.ranges(v.([]any))
		}),
		on(KindObject, parseObject(multiRangeShape, func(obj map[string]any) Result[MultiRange[T, C]] {
			return c.ranges(normalize(obj["ranges"]).([]any))
		})),
		on(KindInstance, func(v any) Result[MultiRange[T, C]] {
			return c.ranges(v.(MultiRange[T, C]).Object()["ranges"].([]any))
		}),
	)
}

func (c MultiRangeCodec[T, C]) From(args ...any) (MultiRange[T, C], error) {
	return c.SafeFrom(args...).Get()
}

// IsMultiRange reports whether x is a MultiRange over the same element type and codec.
func (c MultiRangeCodec[T, C]) IsMultiRange(x any) bool {
	switch x := x.(type) {
	case MultiRange[T, C]:
		return true
	case *MultiRange[T, C]:
		return x != nil
	default:
		return false
	}
}

// splitMultiRange strips the braces of a multirange literal and splits its body on every comma outside of quotes.
// Each range contributes two halves.
func splitMultiRange(src string) ([]string, bool) {
	src = strings.TrimSpace(src)
	if len(src) < 2 || src[0] != '{' || src[len(src)-1] != '}' {
		return nil, false
	}
	body := src[1 : len(src)-1]
	if strings.TrimSpace(body) == "" {
		return nil, true
	}

	var halves []string
	start := 0
	inQuote := false
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '"':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				halves = append(halves, body[start:i])
				start = i + 1
			}
		}
	}
	if inQuote {
		return nil, false
	}
	halves = append(halves, body[start:])

	return halves, true
}
