package pgtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestParseTextArray(t *testing.T) {
	tests := []struct {
		source string
		delim  byte
		result []*string
	}{
		{source: "{}", delim: ',', result: []*string{}},
		{source: " { } ", delim: ',', result: []*string{}},
		{source: "{1}", delim: ',', result: []*string{strPtr("1")}},
		{source: "{a,b}", delim: ',', result: []*string{strPtr("a"), strPtr("b")}},
		{source: "{ a , b }", delim: ',', result: []*string{strPtr("a"), strPtr("b")}},
		{source: `{"NULL"}`, delim: ',', result: []*string{strPtr("NULL")}},
		{source: `{NULL,null}`, delim: ',', result: []*string{nil, nil}},
		{source: `{""}`, delim: ',', result: []*string{strPtr("")}},
		{source: `{"He said, \"Hello.\""}`, delim: ',', result: []*string{strPtr(`He said, "Hello."`)}},
		{source: `{a\,b,c}`, delim: ',', result: []*string{strPtr("a,b"), strPtr("c")}},
		{
			source: `{"[2022-09-02\,2022-10-03)","(2022-11-02\,2022-12-03]"}`,
			delim:  ',',
			result: []*string{strPtr("[2022-09-02,2022-10-03)"), strPtr("(2022-11-02,2022-12-03]")},
		},
		{source: `{(1,2),(0,0);(3,3),(2,2)}`, delim: ';', result: []*string{strPtr("(1,2),(0,0)"), strPtr("(3,3),(2,2)")}},
	}

	for i, tt := range tests {
		r, err := parseTextArray(tt.source, tt.delim)
		require.NoErrorf(t, err, "%d: %s", i, tt.source)
		assert.Equalf(t, tt.result, r, "%d: %s", i, tt.source)
	}
}

func TestParseTextArrayErrors(t *testing.T) {
	for i, src := range []string{
		``,
		`1,2`,
		`{1,2`,
		`{1,,2}`,
		`{1,2} x`,
		`{{1,2},{3,4}}`,
		`{"abc}`,
		`{a"b}`,
	} {
		_, err := parseTextArray(src, ',')
		assert.Errorf(t, err, "%d: %s", i, src)
	}
}

func TestQuoteArrayElementIfNeeded(t *testing.T) {
	tests := []struct {
		src    string
		delim  byte
		result string
	}{
		{src: "abc", delim: ',', result: "abc"},
		{src: "", delim: ',', result: `""`},
		{src: "NULL", delim: ',', result: `"NULL"`},
		{src: "a b", delim: ',', result: `"a b"`},
		{src: "a,b", delim: ',', result: `"a\,b"`},
		{src: "a,b", delim: ';', result: "a,b"},
		{src: "a;b", delim: ';', result: `"a\;b"`},
		{src: `{[1,2)}`, delim: ',', result: `"\{[1\,2)\}"`},
		{src: `a"b\c`, delim: ',', result: `"a\"b\\c"`},
	}

	for i, tt := range tests {
		quoted := quoteArrayElementIfNeeded(tt.src, tt.delim)
		assert.Equalf(t, tt.result, quoted, "%d", i)

		elements, err := parseTextArray("{"+quoted+"}", tt.delim)
		require.NoErrorf(t, err, "%d", i)
		require.Lenf(t, elements, 1, "%d", i)
		require.NotNilf(t, elements[0], "%d", i)
		assert.Equalf(t, tt.src, *elements[0], "%d", i)
	}
}
