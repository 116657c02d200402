package pgtype

import (
	"bytes"
	"encoding/json"
)

// JSON is a PostgreSQL json value. Text is kept exactly as given.
type JSON struct {
	raw []byte
}

// Bytes returns a copy of the JSON text.
func (j JSON) Bytes() []byte {
	return append([]byte(nil), j.raw...)
}

func (j JSON) String() string {
	return string(j.raw)
}

// Unmarshal decodes the JSON text into v.
func (j JSON) Unmarshal(v any) error {
	return json.Unmarshal(j.raw, v)
}

func (j JSON) MarshalJSON() ([]byte, error) {
	if len(j.raw) == 0 {
		return []byte("null"), nil
	}
	return j.Bytes(), nil
}

func (j JSON) Equals(args ...any) (bool, error) {
	return j.SafeEquals(args...).Get()
}

func (j JSON) SafeEquals(args ...any) Result[bool] {
	return safeEquals[JSON](JSONCodec{}, j, args)
}

type JSONCodec struct{}

func parseJSONText(src []byte) Result[JSON] {
	if !json.Valid(src) {
		return Invalid[JSON](InvalidJSON{Received: string(src)})
	}
	return Ok(JSON{raw: append([]byte(nil), src...)})
}

// SafeFrom accepts JSON text as a string or byte slice, or a JSON. Any other value is marshalled with
// encoding/json.
func (JSONCodec) SafeFrom(args ...any) Result[JSON] {
	if len(args) == 1 {
		switch v := args[0].(type) {
		case string:
			return parseJSONText([]byte(v))
		case []byte:
			return parseJSONText(v)
		case json.RawMessage:
			return parseJSONText(v)
		case JSON:
			return Ok(v)
		case *JSON:
			if v != nil {
				return Ok(*v)
			}
		}
	}
	if len(args) == 0 {
		return Invalid[JSON](TooSmall{Subject: SubjectArguments, Minimum: "1", Inclusive: true, Exact: true})
	}
	if len(args) > 1 {
		return Invalid[JSON](TooBig{Subject: SubjectArguments, Maximum: "1", Inclusive: true, Exact: true})
	}

	buf, err := json.Marshal(args[0])
	if err != nil {
		return Invalid[JSON](InvalidJSON{Received: receivedName(args[0])})
	}
	return Ok(JSON{raw: bytes.TrimSpace(buf)})
}

func (c JSONCodec) From(args ...any) (JSON, error) {
	return c.SafeFrom(args...).Get()
}

func JSONFrom(args ...any) (JSON, error) {
	return JSONCodec{}.From(args...)
}

func SafeJSONFrom(args ...any) Result[JSON] {
	return JSONCodec{}.SafeFrom(args...)
}
