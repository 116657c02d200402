package pgtype

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

type BoundType byte

const (
	Inclusive = BoundType('i')
	Exclusive = BoundType('e')
	Unbounded = BoundType('U')
	Empty     = BoundType('E')
)

func (bt BoundType) String() string {
	return string(bt)
}

// Range is a PostgreSQL range over T. The zero value is the empty range.
type Range[T Value, C OrderedCodec[T]] struct {
	codec     C
	lower     T
	upper     T
	lowerType BoundType
	upperType BoundType
}

func (r Range[T, C]) IsEmpty() bool {
	return r.lowerType == Empty || r.lowerType == 0
}

// BoundTypes returns the lower and upper bound types. Both are Empty for the empty range.
func (r Range[T, C]) BoundTypes() (lower, upper BoundType) {
	if r.IsEmpty() {
		return Empty, Empty
	}
	return r.lowerType, r.upperType
}

// LowerBound returns "[" for an inclusive lower bound and "(" otherwise.
func (r Range[T, C]) LowerBound() string {
	if r.lowerType == Inclusive {
		return "["
	}
	return "("
}

// UpperBound returns "]" for an inclusive upper bound and ")" otherwise.
func (r Range[T, C]) UpperBound() string {
	if r.upperType == Inclusive {
		return "]"
	}
	return ")"
}

// Lower returns the lower bound value. ok is false if the range is empty or has no lower bound.
func (r Range[T, C]) Lower() (v T, ok bool) {
	if r.IsEmpty() || r.lowerType == Unbounded {
		return v, false
	}
	return r.lower, true
}

// Upper returns the upper bound value. ok is false if the range is empty or has no upper bound.
func (r Range[T, C]) Upper() (v T, ok bool) {
	if r.IsEmpty() || r.upperType == Unbounded {
		return v, false
	}
	return r.upper, true
}

// Contains reports whether v lies within r.
func (r Range[T, C]) Contains(v T) bool {
	if r.IsEmpty() {
		return false
	}

	switch r.lowerType {
	case Inclusive:
		if r.codec.Compare(v, r.lower) < 0 {
			return false
		}
	case Exclusive:
		if r.codec.Compare(v, r.lower) <= 0 {
			return false
		}
	}

	switch r.upperType {
	case Inclusive:
		if r.codec.Compare(v, r.upper) > 0 {
			return false
		}
	case Exclusive:
		if r.codec.Compare(v, r.upper) >= 0 {
			return false
		}
	}

	return true
}

// IsWithinRange parses args as an element and reports whether it lies within r. It is always false for the empty
// range.
func (r Range[T, C]) IsWithinRange(args ...any) (bool, error) {
	if r.IsEmpty() {
		return false, nil
	}
	v, err := r.codec.SafeFrom(args...).Get()
	if err != nil {
		return false, err
	}
	return r.Contains(v), nil
}

func (r Range[T, C]) String() string {
	if r.IsEmpty() {
		return "empty"
	}

	var sb strings.Builder
	sb.WriteString(r.LowerBound())
	if r.lowerType != Unbounded {
		sb.WriteString(quoteRangeBoundIfNeeded(r.lower.String()))
	}
	sb.WriteByte(',')
	if r.upperType != Unbounded {
		sb.WriteString(quoteRangeBoundIfNeeded(r.upper.String()))
	}
	sb.WriteString(r.UpperBound())
	return sb.String()
}

// Object returns {lower, upper, values} with the bound values as canonical text and nil for unbounded sides. The
// empty range returns nil.
func (r Range[T, C]) Object() map[string]any {
	if r.IsEmpty() {
		return nil
	}

	values := make([]any, 2)
	if v, ok := r.Lower(); ok {
		values[0] = v.String()
	}
	if v, ok := r.Upper(); ok {
		values[1] = v.String()
	}
	return map[string]any{"lower": r.LowerBound(), "upper": r.UpperBound(), "values": values}
}

func (r Range[T, C]) MarshalJSON() ([]byte, error) {
	if r.IsEmpty() {
		return json.Marshal("empty")
	}
	return json.Marshal(r.Object())
}

func (r Range[T, C]) Equals(args ...any) (bool, error) {
	return r.SafeEquals(args...).Get()
}

func (r Range[T, C]) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Range[T, C]](RangeCodec[T, C]{Element: r.codec}, r, args)
}

var setOnEmptyRange = InvalidString{Expected: "range", Received: "empty"}

func parseBoundChar(s string, inclusive, exclusive string) (BoundType, Issue) {
	switch s {
	case inclusive:
		return Inclusive, nil
	case exclusive:
		return Exclusive, nil
	default:
		return 0, InvalidString{Expected: "range bound", Received: s}
	}
}

// SetLowerBound sets the lower bound to "[" or "(". It has no effect on an unbounded side and fails on the empty
// range. A range whose bounds become equal with an exclusive side becomes empty.
func (r *Range[T, C]) SetLowerBound(bound string) error {
	if r.IsEmpty() {
		return NewError(setOnEmptyRange)
	}
	bt, issue := parseBoundChar(bound, "[", "(")
	if issue != nil {
		return NewError(issue)
	}
	if r.lowerType == Unbounded {
		return nil
	}

	next := *r
	next.lowerType = bt
	*r = next.normalize()
	return nil
}

// SetUpperBound sets the upper bound to "]" or ")". It follows the same rules as SetLowerBound.
func (r *Range[T, C]) SetUpperBound(bound string) error {
	if r.IsEmpty() {
		return NewError(setOnEmptyRange)
	}
	bt, issue := parseBoundChar(bound, "]", ")")
	if issue != nil {
		return NewError(issue)
	}
	if r.upperType == Unbounded {
		return nil
	}

	next := *r
	next.upperType = bt
	*r = next.normalize()
	return nil
}

// SetValues replaces both bound values, keeping the bound types ("[)" for an empty range). A nil value leaves that
// side unbounded. r is unchanged if either value fails to parse or the bounds are out of order.
func (r *Range[T, C]) SetValues(lower, upper any) error {
	lowerType, upperType := Inclusive, Exclusive
	if !r.IsEmpty() {
		if r.lowerType != Unbounded {
			lowerType = r.lowerType
		}
		if r.upperType != Unbounded {
			upperType = r.upperType
		}
	}

	next, err := RangeCodec[T, C]{Element: r.codec}.bounds(lowerType, lower, upperType, upper).Get()
	if err != nil {
		return err
	}
	*r = next
	return nil
}

// normalize turns a range with equal bounds and an exclusive side into the empty range.
func (r Range[T, C]) normalize() Range[T, C] {
	if r.lowerType == Unbounded || r.upperType == Unbounded {
		return r
	}
	if r.codec.Compare(r.lower, r.upper) == 0 && (r.lowerType == Exclusive || r.upperType == Exclusive) {
		return Range[T, C]{codec: r.codec, lowerType: Empty, upperType: Empty}
	}
	return r
}

// RangeCodec parses ranges whose bound values are handled by Element.
type RangeCodec[T Value, C OrderedCodec[T]] struct {
	Element C
}

var rangeShape = shape{
	required("lower", KindString),
	required("upper", KindString),
	required("values", KindArray),
}

func exactlyTwo(n int) Issue {
	switch {
	case n < 2:
		return TooSmall{Subject: SubjectArray, Minimum: "2", Inclusive: true, Exact: true}
	case n > 2:
		return TooBig{Subject: SubjectArray, Maximum: "2", Inclusive: true, Exact: true}
	default:
		return nil
	}
}

func (c RangeCodec[T, C]) empty() Range[T, C] {
	return Range[T, C]{codec: c.Element, lowerType: Empty, upperType: Empty}
}

// bounds builds a range from bound types and element inputs. A nil input or an Unbounded type leaves that side
// unbounded.
func (c RangeCodec[T, C]) bounds(lowerType BoundType, lower any, upperType BoundType, upper any) Result[Range[T, C]] {
	r := Range[T, C]{codec: c.Element, lowerType: lowerType, upperType: upperType}

	if lowerType != Unbounded && Classify(lower) != KindNil {
		v := c.Element.SafeFrom(lower)
		if v.issue != nil {
			return Invalid[Range[T, C]](v.issue)
		}
		r.lower = v.value
	} else {
		r.lowerType = Unbounded
	}

	if upperType != Unbounded && Classify(upper) != KindNil {
		v := c.Element.SafeFrom(upper)
		if v.issue != nil {
			return Invalid[Range[T, C]](v.issue)
		}
		r.upper = v.value
	} else {
		r.upperType = Unbounded
	}

	if r.lowerType != Unbounded && r.upperType != Unbounded && c.Element.Compare(r.lower, r.upper) > 0 {
		return Invalid[Range[T, C]](InvalidRangeBound{Lower: r.lower.String(), Upper: r.upper.String()})
	}

	return Ok(r.normalize())
}

func (c RangeCodec[T, C]) parseText(src string) Result[Range[T, C]] {
	utr, err := parseUntypedTextRange(src)
	if err != nil {
		return Invalid[Range[T, C]](InvalidString{Expected: "range", Received: src})
	}
	if utr.LowerType == Empty {
		return Ok(c.empty())
	}

	var lower, upper any
	if utr.LowerType != Unbounded {
		lower = utr.Lower
	}
	if utr.UpperType != Unbounded {
		upper = utr.Upper
	}
	return c.bounds(utr.LowerType, lower, utr.UpperType, upper)
}

// SafeFrom accepts a range literal or "empty", two element inputs, an array of two element inputs, an object
// {lower, upper, values} or a Range. Element inputs without explicit bounds form a "[)" range.
func (c RangeCodec[T, C]) SafeFrom(args ...any) Result[Range[T, C]] {
	switch {
	case len(args) > 2:
		return Invalid[Range[T, C]](TooBig{Subject: SubjectArguments, Maximum: "2", Inclusive: true})
	case len(args) == 2:
		return c.bounds(Inclusive, args[0], Exclusive, args[1])
	}

	return dispatch("Range", args,
		on(KindString, func(v any) Result[Range[T, C]] {
			return c.parseText(v.(string))
		}),
		on(KindArray, func(v any) Result[Range[T, C]] {
			values := v.([]any)
			if issue := exactlyTwo(len(values)); issue != nil {
				return Invalid[Range[T, C]](issue)
			}
			return c.bounds(Inclusive, values[0], Exclusive, values[1])
		}),
		on(KindObject, parseObject(rangeShape, func(obj map[string]any) Result[Range[T, C]] {
			lowerType, issue := parseBoundChar(normalize(obj["lower"]).(string), "[", "(")
			if issue != nil {
				return Invalid[Range[T, C]](issue)
			}
			upperType, issue := parseBoundChar(normalize(obj["upper"]).(string), "]", ")")
			if issue != nil {
				return Invalid[Range[T, C]](issue)
			}
			values := normalize(obj["values"]).([]any)
			if issue := exactlyTwo(len(values)); issue != nil {
				return Invalid[Range[T, C]](issue)
			}
			return c.bounds(lowerType, values[0], upperType, values[1])
		})),
		on(KindInstance, func(v any) Result[Range[T, C]] {
			return c.parseText(v.(Range[T, C]).String())
		}),
	)
}

func (c RangeCodec[T, C]) From(args ...any) (Range[T, C], error) {
	return c.SafeFrom(args...).Get()
}

// IsRange reports whether x is a Range over the same element type and codec.
func (c RangeCodec[T, C]) IsRange(x any) bool {
	switch x := x.(type) {
	case Range[T, C]:
		return true
	case *Range[T, C]:
		return x != nil
	default:
		return false
	}
}

type untypedTextRange struct {
	Lower     string
	Upper     string
	LowerType BoundType
	UpperType BoundType
}

func parseUntypedTextRange(src string) (*untypedTextRange, error) {
	utr := &untypedTextRange{}
	if strings.EqualFold(strings.TrimSpace(src), "empty") {
		utr.LowerType = Empty
		utr.UpperType = Empty
		return utr, nil
	}

	buf := bytes.NewBufferString(src)

	skipWhitespace(buf)

	r, _, err := buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("invalid lower bound: %v", err)
	}
	switch r {
	case '(':
		utr.LowerType = Exclusive
	case '[':
		utr.LowerType = Inclusive
	default:
		return nil, fmt.Errorf("missing lower bound, instead got: %v", string(r))
	}

	r, _, err = buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("invalid lower value: %v", err)
	}
	buf.UnreadRune()

	if r == ',' {
		utr.LowerType = Unbounded
	} else {
		utr.Lower, err = rangeParseValue(buf)
		if err != nil {
			return nil, fmt.Errorf("invalid lower value: %v", err)
		}
	}

	r, _, err = buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("missing range separator: %v", err)
	}
	if r != ',' {
		return nil, fmt.Errorf("missing range separator: %v", string(r))
	}

	r, _, err = buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("invalid upper value: %v", err)
	}

	if r == ')' || r == ']' {
		utr.UpperType = Unbounded
	} else {
		buf.UnreadRune()
		utr.Upper, err = rangeParseValue(buf)
		if err != nil {
			return nil, fmt.Errorf("invalid upper value: %v", err)
		}

		r, _, err = buf.ReadRune()
		if err != nil {
			return nil, fmt.Errorf("missing upper bound: %v", err)
		}
		switch r {
		case ')':
			utr.UpperType = Exclusive
		case ']':
			utr.UpperType = Inclusive
		default:
			return nil, fmt.Errorf("missing upper bound, instead got: %v", string(r))
		}
	}

	skipWhitespace(buf)

	if buf.Len() > 0 {
		return nil, fmt.Errorf("unexpected trailing data: %v", buf.String())
	}

	return utr, nil
}

func rangeParseValue(buf *bytes.Buffer) (string, error) {
	r, _, err := buf.ReadRune()
	if err != nil {
		return "", err
	}
	if r == '"' {
		return rangeParseQuotedValue(buf)
	}
	buf.UnreadRune()

	s := &bytes.Buffer{}

	for {
		r, _, err := buf.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case '\\':
			r, _, err = buf.ReadRune()
			if err != nil {
				return "", err
			}
		case ',', '[', ']', '(', ')':
			buf.UnreadRune()
			return s.String(), nil
		}

		s.WriteRune(r)
	}
}

func rangeParseQuotedValue(buf *bytes.Buffer) (string, error) {
	s := &bytes.Buffer{}

	for {
		r, _, err := buf.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case '\\':
			r, _, err = buf.ReadRune()
			if err != nil {
				return "", err
			}
		case '"':
			r, _, err = buf.ReadRune()
			if err != nil {
				return "", err
			}
			if r != '"' {
				buf.UnreadRune()
				return s.String(), nil
			}
		}
		s.WriteRune(r)
	}
}

// quoteRangeBoundIfNeeded quotes bound text that is empty or contains characters with meaning in a range literal.
// Quotes and backslashes inside the bound are doubled.
func quoteRangeBoundIfNeeded(src string) string {
	if src != "" && !strings.ContainsAny(src, `"\()[],`) && strings.IndexFunc(src, unicode.IsSpace) < 0 {
		return src
	}

	var sb strings.Builder
	sb.Grow(len(src) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '"' || c == '\\' {
			sb.WriteByte(c)
		}
		sb.WriteByte(c)
	}
	sb.WriteByte('"')
	return sb.String()
}
