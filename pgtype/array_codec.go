package pgtype

// ArrayCodec serializes and parses one dimensional array literals whose elements are handled by Element.
type ArrayCodec[T Value, C Codec[T]] struct {
	Element C

	// Delimiter separates elements. If zero the element codec's ArrayDelimiter is used when it has one, else ','.
	Delimiter byte
}

// NewArrayCodec returns an ArrayCodec for element using its default delimiter.
func NewArrayCodec[T Value, C Codec[T]](element C) ArrayCodec[T, C] {
	return ArrayCodec[T, C]{Element: element}
}

func (c ArrayCodec[T, C]) delimiter() byte {
	if c.Delimiter != 0 {
		return c.Delimiter
	}
	if d, ok := any(c.Element).(ArrayDelimiterer); ok {
		return d.ArrayDelimiter()
	}
	return ','
}

// Serialize returns the array literal for values. A nil slice is NULL.
func (c ArrayCodec[T, C]) Serialize(values []T) string {
	if values == nil {
		return "NULL"
	}

	elements := make([]*T, len(values))
	for i := range values {
		elements[i] = &values[i]
	}
	return c.SerializeNullable(elements)
}

// SerializeNullable is Serialize for arrays that may hold NULL elements. nil elements are written as NULL.
func (c ArrayCodec[T, C]) SerializeNullable(values []*T) string {
	if values == nil {
		return "NULL"
	}

	delim := c.delimiter()
	buf := make([]byte, 0, 2+len(values)*8)
	buf = append(buf, '{')
	for i, v := range values {
		if i > 0 {
			buf = append(buf, delim)
		}
		if v == nil {
			buf = append(buf, "NULL"...)
		} else {
			buf = append(buf, quoteArrayElementIfNeeded((*v).String(), delim)...)
		}
	}
	buf = append(buf, '}')

	return string(buf)
}

// SafeParse parses an array literal. NULL parses to a nil slice. The first element that fails to parse decides the
// issue of the whole array.
func (c ArrayCodec[T, C]) SafeParse(src string) Result[[]*T] {
	if src == "NULL" {
		return Ok[[]*T](nil)
	}

	elements, err := parseTextArray(src, c.delimiter())
	if err != nil {
		return Invalid[[]*T](InvalidString{Expected: "array", Received: src})
	}

	values := make([]*T, len(elements))
	for i, e := range elements {
		if e == nil {
			continue
		}
		r := c.Element.SafeFrom(*e)
		if r.issue != nil {
			return Invalid[[]*T](r.issue)
		}
		v := r.value
		values[i] = &v
	}

	return Ok(values)
}

func (c ArrayCodec[T, C]) Parse(src string) ([]*T, error) {
	return c.SafeParse(src).Get()
}
