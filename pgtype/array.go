package pgtype

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// parseTextArray splits a one dimensional array literal into its elements. Unquoted NULL elements are returned as
// nil. Quoted elements and backslash escapes are unescaped.
func parseTextArray(src string, delim byte) ([]*string, error) {
	buf := bytes.NewBufferString(src)

	skipWhitespace(buf)

	r, _, err := buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("invalid array: %v", err)
	}
	if r != '{' {
		return nil, fmt.Errorf("invalid array, expected '{' got %q", r)
	}

	elements := []*string{}

	skipWhitespace(buf)
	r, _, err = buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("invalid array: %v", err)
	}
	if r != '}' {
		buf.UnreadRune()

		for {
			skipWhitespace(buf)
			value, quoted, err := arrayParseValue(buf, delim)
			if err != nil {
				return nil, fmt.Errorf("invalid array value: %v", err)
			}
			if !quoted && strings.EqualFold(value, "NULL") {
				elements = append(elements, nil)
			} else {
				elements = append(elements, &value)
			}

			skipWhitespace(buf)
			r, _, err = buf.ReadRune()
			if err != nil {
				return nil, fmt.Errorf("invalid array: %v", err)
			}
			if r == '}' {
				break
			}
			if r != rune(delim) {
				return nil, fmt.Errorf("invalid array, expected %q or '}' got %q", delim, r)
			}
		}
	}

	skipWhitespace(buf)

	if buf.Len() > 0 {
		return nil, fmt.Errorf("unexpected trailing data: %v", buf.String())
	}

	return elements, nil
}

func skipWhitespace(buf *bytes.Buffer) {
	var r rune
	var err error
	for r, _, err = buf.ReadRune(); err == nil && unicode.IsSpace(r); r, _, err = buf.ReadRune() {
	}

	if err != io.EOF {
		buf.UnreadRune()
	}
}

func arrayParseValue(buf *bytes.Buffer, delim byte) (value string, quoted bool, err error) {
	r, _, err := buf.ReadRune()
	if err != nil {
		return "", false, err
	}
	switch r {
	case '"':
		value, err = arrayParseQuotedValue(buf)
		return value, true, err
	case '{':
		return "", false, fmt.Errorf("multidimensional arrays are not supported")
	}
	buf.UnreadRune()

	s := &bytes.Buffer{}

	for {
		r, _, err := buf.ReadRune()
		if err != nil {
			return "", false, err
		}

		switch r {
		case rune(delim), '}':
			buf.UnreadRune()
			value = strings.TrimRightFunc(s.String(), unicode.IsSpace)
			if value == "" {
				return "", false, fmt.Errorf("empty unquoted element")
			}
			return value, false, nil
		case '{', '"':
			return "", false, fmt.Errorf("unexpected %q in unquoted element", r)
		case '\\':
			r, _, err = buf.ReadRune()
			if err != nil {
				return "", false, err
			}
		}

		s.WriteRune(r)
	}
}

func arrayParseQuotedValue(buf *bytes.Buffer) (string, error) {
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
			return s.String(), nil
		}
		s.WriteRune(r)
	}
}

// quoteArrayElementIfNeeded returns src ready to be embedded in an array literal using delim. Elements that are
// empty, spell NULL, or contain whitespace, quotes, backslashes, braces or the delimiter are double quoted with
// backslash escapes.
func quoteArrayElementIfNeeded(src string, delim byte) string {
	if src == "" || strings.EqualFold(src, "NULL") || strings.ContainsAny(src, `{}"\`+string(delim)) || strings.IndexFunc(src, unicode.IsSpace) >= 0 {
		return quoteArrayElement(src, delim)
	}
	return src
}

func quoteArrayElement(src string, delim byte) string {
	var sb strings.Builder
	sb.Grow(len(src) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '\\', '"', '{', '}', delim:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
