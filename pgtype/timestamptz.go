package pgtype

import (
	"encoding/json"
	"time"
)

// Timestamptz is a PostgreSQL timestamp with time zone. It is an instant, rendered in the location of the codec
// that parsed it.
type Timestamptz struct {
	t        time.Time
	infinity InfinityModifier
}

func (ts Timestamptz) Time() time.Time {
	return ts.t
}

func (ts Timestamptz) InfinityModifier() InfinityModifier {
	return ts.infinity
}

func (ts Timestamptz) String() string {
	switch ts.infinity {
	case Infinity:
		return "infinity"
	case NegativeInfinity:
		return "-infinity"
	}
	_, offset := ts.t.Zone()
	return formatTimestamp(ts.t, formatZoneOffset(offset))
}

// Object returns the wall clock fields and the zone offset, or nil for the infinities.
func (ts Timestamptz) Object() map[string]any {
	if ts.infinity != Finite {
		return nil
	}
	_, offset := ts.t.Zone()
	obj := timestampObject(ts.t)
	obj["timezone"] = formatZoneOffset(offset)
	return obj
}

func (ts Timestamptz) MarshalJSON() ([]byte, error) {
	if ts.infinity != Finite {
		return json.Marshal(ts.String())
	}
	return json.Marshal(ts.Object())
}

func (ts Timestamptz) Equals(args ...any) (bool, error) {
	return ts.SafeEquals(args...).Get()
}

func (ts Timestamptz) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Timestamptz](TimestamptzCodec{Location: ts.t.Location()}, ts, args)
}

// TimestamptzCodec parses timestamps with time zone. Literals without a zone are read in Location, and values are
// rendered in Location. A nil Location is UTC.
type TimestamptzCodec struct {
	Location *time.Location
}

func (c TimestamptzCodec) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

func (c TimestamptzCodec) at(t time.Time) Timestamptz {
	return Timestamptz{t: t.In(c.location())}
}

// SafeFrom accepts a timestamp literal with an optional zone, a time.Time, milliseconds since the Unix epoch, year,
// month, day[, hour[, minute[, second[, microsecond]]]] numbers read in Location, an infinite float, an object
// {year, month, day, hour, minute, second[, microsecond, timezone]} or a Timestamptz.
func (c TimestamptzCodec) SafeFrom(args ...any) Result[Timestamptz] {
	loc := c.location()

	return dispatch("Timestamptz", args,
		on(KindString, func(v any) Result[Timestamptz] {
			dt, issue := parseDateTime(v.(string), "timestamptz")
			if issue != nil {
				return Invalid[Timestamptz](issue)
			}
			if !dt.hasDate {
				return Invalid[Timestamptz](InvalidString{Expected: "timestamptz", Received: v.(string)})
			}
			if dt.infinity != Finite {
				return Ok(Timestamptz{infinity: dt.infinity})
			}
			return Ok(c.at(dt.in(dt.zoneFor(loc))))
		}),
		onArgs(KindNumber, 1, 7, func(args []any) Result[Timestamptz] {
			var t time.Time
			var issue Issue
			if len(args) == 1 {
				t, issue = epochMillis(args[0])
			} else {
				t, issue = positionalTimestamp(args, loc)
			}
			if issue != nil {
				return Invalid[Timestamptz](issue)
			}
			return Ok(c.at(t))
		}),
		on(KindInfinity, func(v any) Result[Timestamptz] {
			return Ok(Timestamptz{infinity: infinityOf(v)})
		}),
		on(KindObject, parseObject(timestamptzShape, func(obj map[string]any) Result[Timestamptz] {
			t, issue := objectTimestamp(obj, time.UTC)
			if issue != nil {
				return Invalid[Timestamptz](issue)
			}
			if !present(obj, "timezone") {
				wall := t
				t = time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), loc)
				return Ok(c.at(t))
			}
			offset, issue := zoneArg(obj["timezone"], t)
			if issue != nil {
				return Invalid[Timestamptz](issue)
			}
			return Ok(c.at(t.Add(-time.Duration(offset) * time.Second)))
		})),
		on(KindTime, func(v any) Result[Timestamptz] {
			return Ok(c.at(v.(time.Time).Truncate(time.Microsecond)))
		}),
		on(KindInstance, func(v any) Result[Timestamptz] {
			ts := v.(Timestamptz)
			if ts.infinity != Finite {
				return Ok(ts)
			}
			return Ok(c.at(ts.t))
		}),
	)
}

func (c TimestamptzCodec) From(args ...any) (Timestamptz, error) {
	return c.SafeFrom(args...).Get()
}

func (TimestamptzCodec) Compare(a, b Timestamptz) int {
	return compareTimes(a.infinity, b.infinity, a.t, b.t)
}

func TimestamptzFrom(args ...any) (Timestamptz, error) {
	return TimestamptzCodec{}.From(args...)
}

func SafeTimestamptzFrom(args ...any) Result[Timestamptz] {
	return TimestamptzCodec{}.SafeFrom(args...)
}
