package pgtype

import (
	"encoding/json"
	"time"
)

// timeZoneReference is the date used to resolve named zones in time with time zone literals that carry no date.
var timeZoneReference = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Time is a PostgreSQL time without time zone with microsecond precision. 24:00:00 is a valid value.
type Time struct {
	micros int64
}

// Microseconds returns the number of microseconds since midnight.
func (t Time) Microseconds() int64 {
	return t.micros
}

func (t Time) String() string {
	return formatClock(t.micros)
}

func clockObject(micros int64) map[string]any {
	secs := micros / microsecondsPerSecond
	return map[string]any{
		"hour":        secs / 3600,
		"minute":      secs / 60 % 60,
		"second":      secs % 60,
		"microsecond": micros % microsecondsPerSecond,
	}
}

func (t Time) Object() map[string]any {
	return clockObject(t.micros)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Object())
}

func (t Time) Equals(args ...any) (bool, error) {
	return t.SafeEquals(args...).Get()
}

func (t Time) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Time](TimeCodec{}, t, args)
}

type TimeCodec struct{}

var clockShape = shape{
	required("hour", KindNumber),
	required("minute", KindNumber),
	required("second", KindNumber),
	optional("microsecond", KindNumber),
}

// positionalClock reads hour, minute[, second[, microsecond]] from args.
func positionalClock(args []any) (int64, Issue) {
	fields := make([]any, 4)
	copy(fields, args)
	return clockArgs(describeArgs(args), fields[0], fields[1], fields[2], fields[3])
}

func objectClock(obj map[string]any) (int64, Issue) {
	return clockArgs(describeArgs([]any{obj["hour"], obj["minute"], obj["second"]}), obj["hour"], obj["minute"], obj["second"], obj["microsecond"])
}

// parseClockLiteral parses a literal that must carry a finite clock time.
func parseClockLiteral(src, pgName string) (dateTime, Issue) {
	dt, issue := parseDateTime(src, pgName)
	if issue != nil {
		return dt, issue
	}
	if !dt.hasTime || dt.infinity != Finite {
		return dt, InvalidString{Expected: pgName, Received: src}
	}
	return dt, nil
}

// SafeFrom accepts a time literal (any date or zone is ignored), a time.Time, milliseconds since the Unix epoch,
// hour, minute[, second[, microsecond]] numbers, an object {hour, minute, second[, microsecond]} or a Time.
func (TimeCodec) SafeFrom(args ...any) Result[Time] {
	return dispatch("Time", args,
		on(KindString, func(v any) Result[Time] {
			dt, issue := parseClockLiteral(v.(string), "time")
			if issue != nil {
				return Invalid[Time](issue)
			}
			return Ok(Time{micros: dt.micros})
		}),
		onArgs(KindNumber, 1, 4, func(args []any) Result[Time] {
			if len(args) == 1 {
				t, issue := epochMillis(args[0])
				if issue != nil {
					return Invalid[Time](issue)
				}
				return Ok(Time{micros: clockOf(t)})
			}
			micros, issue := positionalClock(args)
			if issue != nil {
				return Invalid[Time](issue)
			}
			return Ok(Time{micros: micros})
		}),
		on(KindObject, parseObject(clockShape, func(obj map[string]any) Result[Time] {
			micros, issue := objectClock(obj)
			if issue != nil {
				return Invalid[Time](issue)
			}
			return Ok(Time{micros: micros})
		})),
		on(KindTime, func(v any) Result[Time] {
			return Ok(Time{micros: clockOf(v.(time.Time))})
		}),
		on(KindInstance, func(v any) Result[Time] { return Ok(v.(Time)) }),
	)
}

func (c TimeCodec) From(args ...any) (Time, error) {
	return c.SafeFrom(args...).Get()
}

func (TimeCodec) Compare(a, b Time) int {
	return compareInt64(a.micros, b.micros)
}

func TimeFrom(args ...any) (Time, error) {
	return TimeCodec{}.From(args...)
}

func SafeTimeFrom(args ...any) Result[Time] {
	return TimeCodec{}.SafeFrom(args...)
}

// TimeTZ is a PostgreSQL time with time zone: a clock time and a UTC offset in seconds east of Greenwich.
type TimeTZ struct {
	micros int64
	offset int
}

func (t TimeTZ) Microseconds() int64 {
	return t.micros
}

// Offset returns the zone offset in seconds east of UTC.
func (t TimeTZ) Offset() int {
	return t.offset
}

func (t TimeTZ) String() string {
	return formatClock(t.micros) + formatZoneOffset(t.offset)
}

func (t TimeTZ) Object() map[string]any {
	obj := clockObject(t.micros)
	obj["timezone"] = formatZoneOffset(t.offset)
	return obj
}

func (t TimeTZ) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Object())
}

func (t TimeTZ) Equals(args ...any) (bool, error) {
	return t.SafeEquals(args...).Get()
}

func (t TimeTZ) SafeEquals(args ...any) Result[bool] {
	return safeEquals[TimeTZ](TimeTZCodec{}, t, args)
}

type TimeTZCodec struct{}

var clockZoneShape = shape{
	required("hour", KindNumber),
	required("minute", KindNumber),
	required("second", KindNumber),
	optional("microsecond", KindNumber),
	optional("timezone", KindString, KindNumber),
}

// SafeFrom accepts a time literal with an optional zone (UTC when absent), a time.Time, milliseconds since the Unix
// epoch, hour, minute[, second[, microsecond]] numbers, an object {hour, minute, second[, microsecond, timezone]}
// or a TimeTZ. Named zones are resolved at the literal's date, or at 2000-01-01 when it has none.
func (TimeTZCodec) SafeFrom(args ...any) Result[TimeTZ] {
	return dispatch("TimeTZ", args,
		on(KindString, func(v any) Result[TimeTZ] {
			dt, issue := parseClockLiteral(v.(string), "timetz")
			if issue != nil {
				return Invalid[TimeTZ](issue)
			}
			return Ok(TimeTZ{micros: dt.micros, offset: dt.zoneOffset(timeZoneReference)})
		}),
		onArgs(KindNumber, 1, 4, func(args []any) Result[TimeTZ] {
			if len(args) == 1 {
				t, issue := epochMillis(args[0])
				if issue != nil {
					return Invalid[TimeTZ](issue)
				}
				return Ok(TimeTZ{micros: clockOf(t)})
			}
			micros, issue := positionalClock(args)
			if issue != nil {
				return Invalid[TimeTZ](issue)
			}
			return Ok(TimeTZ{micros: micros})
		}),
		on(KindObject, parseObject(clockZoneShape, func(obj map[string]any) Result[TimeTZ] {
			micros, issue := objectClock(obj)
			if issue != nil {
				return Invalid[TimeTZ](issue)
			}
			var offset int
			if present(obj, "timezone") {
				if offset, issue = zoneArg(obj["timezone"], timeZoneReference); issue != nil {
					return Invalid[TimeTZ](issue)
				}
			}
			return Ok(TimeTZ{micros: micros, offset: offset})
		})),
		on(KindTime, func(v any) Result[TimeTZ] {
			t := v.(time.Time)
			_, offset := t.Zone()
			return Ok(TimeTZ{micros: clockOf(t), offset: offset})
		}),
		on(KindInstance, func(v any) Result[TimeTZ] { return Ok(v.(TimeTZ)) }),
	)
}

func (c TimeTZCodec) From(args ...any) (TimeTZ, error) {
	return c.SafeFrom(args...).Get()
}

// Compare orders by the UTC instant and then by offset, with western zones sorting after eastern ones.
func (TimeTZCodec) Compare(a, b TimeTZ) int {
	ua := a.micros - int64(a.offset)*microsecondsPerSecond
	ub := b.micros - int64(b.offset)*microsecondsPerSecond
	if c := compareInt64(ua, ub); c != 0 {
		return c
	}
	return compareInt64(int64(b.offset), int64(a.offset))
}

func TimeTZFrom(args ...any) (TimeTZ, error) {
	return TimeTZCodec{}.From(args...)
}

func SafeTimeTZFrom(args ...any) Result[TimeTZ] {
	return TimeTZCodec{}.SafeFrom(args...)
}
