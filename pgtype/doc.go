// Package pgtype parses the PostgreSQL text format into validated Go values and serializes them back.
/*
Every type in this package has a codec. A codec's SafeFrom accepts the type's text literal, a structural object
(map[string]any with a fixed set of keys), another value of the type and, where it makes sense, native Go values
such as time.Time or positional arguments. SafeFrom never panics and never returns an error. It returns a Result
holding either the value or exactly one Issue describing the first failure. From wraps SafeFrom and returns the
issue as a *Error.

	d, err := pgtype.DateFrom("2022-09-02")
	r := pgtype.SafeInt2From("32768") // r.Issue() is pgtype.TooBig{Subject: pgtype.SubjectNumber, Maximum: "32767", ...}

Values are immutable. String returns the canonical PostgreSQL text, and Equals parses its arguments with the same
codec and compares canonical text, so a value equals its own text and object forms.

Input Classification

SafeFrom classifies its first argument into a Kind and dispatches on it. Calling SafeFrom with no arguments is
always a too_small issue on the argument count. Structural objects are validated in a fixed order: unrecognized
keys first, then missing keys, then keys holding a value of the wrong kind.

Ranges and Multiranges

Range and MultiRange are generic over an element type and its OrderedCodec. RangeCodec parses "[a,b)", "empty",
element pairs and {lower, upper, values} objects. Unbounded sides are supported. MultiRangeCodec parses "{r1,r2}"
and keeps ranges in the order given.

Arrays

ArrayCodec serializes and parses one dimensional array literals with the quoting rules of PostgreSQL. Element
codecs may choose a delimiter other than ',' by implementing ArrayDelimiterer. Box does this.
*/
package pgtype
