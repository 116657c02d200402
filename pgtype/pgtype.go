package pgtype

// Value is implemented by every type in this package. String returns the canonical PostgreSQL text representation,
// which is also the basis for equality.
type Value interface {
	String() string
}

// Codec parses values of type T from any of the input shapes it supports. SafeFrom never panics and never returns an
// error; failures are reported as an invalid Result.
type Codec[T Value] interface {
	SafeFrom(args ...any) Result[T]
}

// OrderedCodec is a Codec whose values have a total order. Range and MultiRange require one.
type OrderedCodec[T Value] interface {
	Codec[T]

	// Compare returns -1, 0 or 1 when a is less than, equal to or greater than b.
	Compare(a, b T) int
}

// ArrayDelimiterer is implemented by codecs whose values need a delimiter other than ',' inside array literals.
type ArrayDelimiterer interface {
	ArrayDelimiter() byte
}

// Result is the outcome of a parse. It holds either a value or an Issue, never both.
type Result[T any] struct {
	value T
	issue Issue
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Invalid returns a failed Result holding issue.
func Invalid[T any](issue Issue) Result[T] {
	if issue == nil {
		panic("pgtype: Invalid requires an issue")
	}
	return Result[T]{issue: issue}
}

func (r Result[T]) Success() bool {
	return r.issue == nil
}

// Value returns the parsed value. It is the zero value of T if r is not successful.
func (r Result[T]) Value() T {
	return r.value
}

// Issue returns the failure or nil if r is successful.
func (r Result[T]) Issue() Issue {
	return r.issue
}

// Err returns r's issue as a *Error or nil if r is successful.
func (r Result[T]) Err() error {
	if r.issue == nil {
		return nil
	}
	return NewError(r.issue)
}

// Get returns the value and error of r.
func (r Result[T]) Get() (T, error) {
	if r.issue != nil {
		var zero T
		return zero, NewError(r.issue)
	}
	return r.value, nil
}

func mapResult[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.issue != nil {
		return Invalid[B](r.issue)
	}
	return Ok(f(r.value))
}

// safeEquals parses args with c and compares the canonical text of the result with v.
func safeEquals[T Value](c Codec[T], v T, args []any) Result[bool] {
	other := c.SafeFrom(args...)
	if other.issue != nil {
		return Invalid[bool](other.issue)
	}
	return Ok(other.value.String() == v.String())
}

type InfinityModifier int8

const (
	Infinity         InfinityModifier = 1
	Finite           InfinityModifier = 0
	NegativeInfinity InfinityModifier = -Infinity
)

func (im InfinityModifier) String() string {
	switch im {
	case Finite:
		return "finite"
	case Infinity:
		return "infinity"
	case NegativeInfinity:
		return "-infinity"
	default:
		return "invalid"
	}
}

func compareInfinity(a, b InfinityModifier) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
