package pgtype

import (
	"bytes"
	"encoding/json"

	"github.com/gofrs/uuid"
)

// UUID is a PostgreSQL uuid.
type UUID struct {
	u uuid.UUID
}

// UUID returns the value as a gofrs uuid.UUID.
func (u UUID) UUID() uuid.UUID {
	return u.u
}

func (u UUID) Bytes() [16]byte {
	return u.u
}

func (u UUID) String() string {
	return u.u.String()
}

func (u UUID) Object() map[string]any {
	return map[string]any{"value": u.String()}
}

func (u UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Object())
}

func (u UUID) Equals(args ...any) (bool, error) {
	return u.SafeEquals(args...).Get()
}

func (u UUID) SafeEquals(args ...any) Result[bool] {
	return safeEquals[UUID](UUIDCodec{}, u, args)
}

type UUIDCodec struct{}

func uuidRoutes() []route[UUID] {
	return []route[UUID]{
		on(KindString, func(v any) Result[UUID] {
			u, err := uuid.FromString(v.(string))
			if err != nil {
				return Invalid[UUID](InvalidString{Expected: "uuid", Received: v.(string)})
			}
			return Ok(UUID{u: u})
		}),
		on(KindBytes, func(v any) Result[UUID] {
			buf := v.([]byte)
			switch {
			case len(buf) < uuid.Size:
				return Invalid[UUID](TooSmall{Subject: SubjectBytes, Minimum: "16", Inclusive: true, Exact: true})
			case len(buf) > uuid.Size:
				return Invalid[UUID](TooBig{Subject: SubjectBytes, Maximum: "16", Inclusive: true, Exact: true})
			}
			u, _ := uuid.FromBytes(buf)
			return Ok(UUID{u: u})
		}),
	}
}

var uuidShape = shape{required("value", KindString, KindBytes)}

// SafeFrom accepts any text form uuid.FromString accepts, 16 bytes as a slice or array, an object {value} or a
// UUID.
func (UUIDCodec) SafeFrom(args ...any) Result[UUID] {
	routes := append(uuidRoutes(),
		on(KindObject, parseObject(uuidShape, func(obj map[string]any) Result[UUID] {
			return dispatch("UUID", []any{obj["value"]}, uuidRoutes()...)
		})),
		on(KindInstance, func(v any) Result[UUID] { return Ok(v.(UUID)) }),
	)
	return dispatch("UUID", args, routes...)
}

func (c UUIDCodec) From(args ...any) (UUID, error) {
	return c.SafeFrom(args...).Get()
}

func (UUIDCodec) Compare(a, b UUID) int {
	return bytes.Compare(a.u[:], b.u[:])
}

func UUIDFrom(args ...any) (UUID, error) {
	return UUIDCodec{}.From(args...)
}

func SafeUUIDFrom(args ...any) Result[UUID] {
	return UUIDCodec{}.SafeFrom(args...)
}
