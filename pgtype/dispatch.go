package pgtype

import (
	"sort"
	"strconv"
)

// route handles the inputs whose first argument has kind. The arguments handed to parse have their first element
// normalized (or replaced by the instance for KindInstance); the rest are untouched.
type route[T any] struct {
	kind  Kind
	min   int
	max   int
	parse func(args []any) Result[T]
}

// on routes a single argument of kind to parse.
func on[T any](kind Kind, parse func(v any) Result[T]) route[T] {
	return route[T]{
		kind: kind,
		min:  1,
		max:  1,
		parse: func(args []any) Result[T] {
			return parse(args[0])
		},
	}
}

// onArgs routes between min and max arguments whose first argument has kind to parse.
func onArgs[T any](kind Kind, min, max int, parse func(args []any) Result[T]) route[T] {
	return route[T]{kind: kind, min: min, max: max, parse: parse}
}

// dispatch classifies args[0] and hands args to the matching route. name is the type name reported as the
// expected shape for instance routes.
func dispatch[T any](name string, args []any, routes ...route[T]) Result[T] {
	if len(args) == 0 {
		return Invalid[T](TooSmall{Subject: SubjectArguments, Minimum: "1", Inclusive: true, Exact: true})
	}

	kind, first := classifyFor[T](args[0])
	for _, r := range routes {
		if r.kind != kind {
			continue
		}

		if len(args) < r.min {
			return Invalid[T](TooSmall{Subject: SubjectArguments, Minimum: strconv.Itoa(r.min), Inclusive: true, Exact: r.min == r.max})
		}
		if len(args) > r.max {
			return Invalid[T](TooBig{Subject: SubjectArguments, Maximum: strconv.Itoa(r.max), Inclusive: true, Exact: r.min == r.max})
		}

		routed := make([]any, len(args))
		copy(routed, args)
		routed[0] = first
		return r.parse(routed)
	}

	return Invalid[T](InvalidType{Expected: expectedKinds(name, routes), Received: receivedName(args[0])})
}

func expectedKinds[T any](name string, routes []route[T]) []string {
	kinds := make([]Kind, 0, len(routes))
	for _, r := range routes {
		if !kindIn(r.kind, kinds) {
			kinds = append(kinds, r.kind)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	names := make([]string, len(kinds))
	for i, k := range kinds {
		if k == KindInstance {
			names[i] = name
		} else {
			names[i] = k.String()
		}
	}
	return names
}

func kindIn(k Kind, kinds []Kind) bool {
	for _, kk := range kinds {
		if kk == k {
			return true
		}
	}
	return false
}

// field is one key of a structural object.
type field struct {
	name     string
	kinds    []Kind
	optional bool
}

func required(name string, kinds ...Kind) field {
	return field{name: name, kinds: kinds}
}

func optional(name string, kinds ...Kind) field {
	return field{name: name, kinds: kinds, optional: true}
}

// shape is the ordered key whitelist of a structural object.
type shape []field

func (s shape) field(name string) (field, bool) {
	for _, f := range s {
		if f.name == name {
			return f, true
		}
	}
	return field{}, false
}

// check validates obj against s. Unrecognized keys are reported first, then missing keys, then the first key with
// an unaccepted kind. An optional key holding nil counts as absent.
func (s shape) check(obj map[string]any) Issue {
	var unrecognized []string
	for key := range obj {
		if _, ok := s.field(key); !ok {
			unrecognized = append(unrecognized, key)
		}
	}
	if len(unrecognized) > 0 {
		sort.Strings(unrecognized)
		return UnrecognizedKeys{Keys: unrecognized}
	}

	var missing []string
	for _, f := range s {
		if _, ok := obj[f.name]; !ok && !f.optional {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return MissingKeys{Keys: missing}
	}

	for _, f := range s {
		v, ok := obj[f.name]
		if !ok {
			continue
		}
		kind := Classify(v)
		if kind == KindNil && f.optional {
			continue
		}
		if !kindIn(kind, f.kinds) {
			expected := make([]string, len(f.kinds))
			for i, k := range f.kinds {
				expected[i] = k.String()
			}
			return InvalidKeyType{Key: f.name, Expected: expected, Received: receivedName(v)}
		}
	}

	return nil
}

// parseObject checks obj against s and calls parse with the validated object.
func parseObject[T any](s shape, parse func(obj map[string]any) Result[T]) func(v any) Result[T] {
	return func(v any) Result[T] {
		obj := v.(map[string]any)
		if issue := s.check(obj); issue != nil {
			return Invalid[T](issue)
		}
		return parse(obj)
	}
}

// present reports whether key is set to a non-nil value in obj.
func present(obj map[string]any, key string) bool {
	v, ok := obj[key]
	return ok && Classify(v) != KindNil
}
