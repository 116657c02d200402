package pgtype

import (
	"encoding/json"
	"math"
	"time"
)

// Timestamp is a PostgreSQL timestamp without time zone. The wall clock is held as a UTC time.
type Timestamp struct {
	t        time.Time
	infinity InfinityModifier
}

func (ts Timestamp) Time() time.Time {
	return ts.t
}

func (ts Timestamp) InfinityModifier() InfinityModifier {
	return ts.infinity
}

// formatTimestamp renders t's wall clock as YYYY-MM-DD HH:MM:SS[.ffffff] followed by suffix and, for years before
// 1 AD, BC.
func formatTimestamp(t time.Time, suffix string) string {
	s, bc := formatDate(t.Year(), t.Month(), t.Day())
	s += " " + formatClock(clockOf(t)) + suffix
	if bc {
		s += " BC"
	}
	return s
}

func (ts Timestamp) String() string {
	switch ts.infinity {
	case Infinity:
		return "infinity"
	case NegativeInfinity:
		return "-infinity"
	}
	return formatTimestamp(ts.t, "")
}

func timestampObject(t time.Time) map[string]any {
	obj := Date{t: t}.Object()
	for k, v := range clockObject(clockOf(t)) {
		obj[k] = v
	}
	return obj
}

// Object returns {year, month, day, hour, minute, second, microsecond}, or nil for the infinities.
func (ts Timestamp) Object() map[string]any {
	if ts.infinity != Finite {
		return nil
	}
	return timestampObject(ts.t)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.infinity != Finite {
		return json.Marshal(ts.String())
	}
	return json.Marshal(ts.Object())
}

func (ts Timestamp) Equals(args ...any) (bool, error) {
	return ts.SafeEquals(args...).Get()
}

func (ts Timestamp) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Timestamp](TimestampCodec{}, ts, args)
}

type TimestampCodec struct{}

var timestampShape = shape{
	required("year", KindNumber),
	required("month", KindNumber),
	required("day", KindNumber),
	required("hour", KindNumber),
	required("minute", KindNumber),
	required("second", KindNumber),
	optional("microsecond", KindNumber),
}

var timestamptzShape = append(append(shape{}, timestampShape...), optional("timezone", KindString, KindNumber))

// wallClock builds a wall clock time in loc from year, month, day and optional clock fields.
func wallClock(received string, loc *time.Location, year, month, day, hour, minute, second, micro any) (time.Time, Issue) {
	y, m, d, issue := dateArgs(received, "timestamp", year, month, day)
	if issue != nil {
		return time.Time{}, issue
	}
	micros, issue := clockArgs(received, hour, minute, second, micro)
	if issue != nil {
		return time.Time{}, issue
	}
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(micros) * time.Microsecond), nil
}

// positionalTimestamp reads year, month, day[, hour[, minute[, second[, microsecond]]]] from args.
func positionalTimestamp(args []any, loc *time.Location) (time.Time, Issue) {
	if len(args) < 3 {
		return time.Time{}, TooSmall{Subject: SubjectArguments, Minimum: "3", Inclusive: true}
	}
	fields := make([]any, 7)
	copy(fields, args)
	return wallClock(describeArgs(args), loc, fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6])
}

func objectTimestamp(obj map[string]any, loc *time.Location) (time.Time, Issue) {
	keys := []string{"year", "month", "day", "hour", "minute", "second", "microsecond"}
	fields := make([]any, len(keys))
	for i, k := range keys {
		fields[i] = obj[k]
	}
	return wallClock(describeArgs(fields[:6]), loc, fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6])
}

func infinityOf(v any) InfinityModifier {
	if math.IsInf(v.(float64), -1) {
		return NegativeInfinity
	}
	return Infinity
}

// SafeFrom accepts a timestamp literal (a zone is ignored), a time.Time (its wall clock is kept), milliseconds since
// the Unix epoch, year, month, day[, hour[, minute[, second[, microsecond]]]] numbers, an infinite float, an object
// {year, month, day, hour, minute, second[, microsecond]} or a Timestamp.
func (TimestampCodec) SafeFrom(args ...any) Result[Timestamp] {
	return dispatch("Timestamp", args,
		on(KindString, func(v any) Result[Timestamp] {
			dt, issue := parseDateTime(v.(string), "timestamp")
			if issue != nil {
				return Invalid[Timestamp](issue)
			}
			if !dt.hasDate {
				return Invalid[Timestamp](InvalidString{Expected: "timestamp", Received: v.(string)})
			}
			if dt.infinity != Finite {
				return Ok(Timestamp{infinity: dt.infinity})
			}
			return Ok(Timestamp{t: dt.in(time.UTC)})
		}),
		onArgs(KindNumber, 1, 7, func(args []any) Result[Timestamp] {
			var t time.Time
			var issue Issue
			if len(args) == 1 {
				t, issue = epochMillis(args[0])
			} else {
				t, issue = positionalTimestamp(args, time.UTC)
			}
			if issue != nil {
				return Invalid[Timestamp](issue)
			}
			return Ok(Timestamp{t: t})
		}),
		on(KindInfinity, func(v any) Result[Timestamp] {
			return Ok(Timestamp{infinity: infinityOf(v)})
		}),
		on(KindObject, parseObject(timestampShape, func(obj map[string]any) Result[Timestamp] {
			t, issue := objectTimestamp(obj, time.UTC)
			if issue != nil {
				return Invalid[Timestamp](issue)
			}
			return Ok(Timestamp{t: t})
		})),
		on(KindTime, func(v any) Result[Timestamp] {
			t := v.(time.Time)
			return Ok(Timestamp{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1000*1000, time.UTC)})
		}),
		on(KindInstance, func(v any) Result[Timestamp] { return Ok(v.(Timestamp)) }),
	)
}

func (c TimestampCodec) From(args ...any) (Timestamp, error) {
	return c.SafeFrom(args...).Get()
}

func (TimestampCodec) Compare(a, b Timestamp) int {
	return compareTimes(a.infinity, b.infinity, a.t, b.t)
}

func TimestampFrom(args ...any) (Timestamp, error) {
	return TimestampCodec{}.From(args...)
}

func SafeTimestampFrom(args ...any) Result[Timestamp] {
	return TimestampCodec{}.SafeFrom(args...)
}
