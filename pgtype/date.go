package pgtype

import (
	"encoding/json"
	"math"
	"time"
)

// Date is a PostgreSQL date: a calendar day or one of the infinities.
type Date struct {
	t        time.Time
	infinity InfinityModifier
}

// Time returns midnight UTC of the date. It is the zero time for the infinities.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) InfinityModifier() InfinityModifier {
	return d.infinity
}

func (d Date) String() string {
	switch d.infinity {
	case Infinity:
		return "infinity"
	case NegativeInfinity:
		return "-infinity"
	}

	s, bc := formatDate(d.t.Year(), d.t.Month(), d.t.Day())
	if bc {
		s += " BC"
	}
	return s
}

// Object returns {year, month, day} with years before 1 AD counted negatively from -1. The infinities have no
// object form and return nil.
func (d Date) Object() map[string]any {
	if d.infinity != Finite {
		return nil
	}
	year := d.t.Year()
	if year <= 0 {
		year--
	}
	return map[string]any{"year": year, "month": int(d.t.Month()), "day": d.t.Day()}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.infinity != Finite {
		return json.Marshal(d.String())
	}
	return json.Marshal(d.Object())
}

func (d Date) Equals(args ...any) (bool, error) {
	return d.SafeEquals(args...).Get()
}

func (d Date) SafeEquals(args ...any) Result[bool] {
	return safeEquals[Date](DateCodec{}, d, args)
}

type DateCodec struct{}

func newDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

var dateShape = shape{
	required("year", KindNumber),
	required("month", KindNumber),
	required("day", KindNumber),
}

// SafeFrom accepts a date literal, a time.Time, milliseconds since the Unix epoch, year, month and day numbers, an
// infinite float, an object {year, month, day} or a Date.
func (DateCodec) SafeFrom(args ...any) Result[Date] {
	return dispatch("Date", args,
		on(KindString, func(v any) Result[Date] {
			dt, issue := parseDateTime(v.(string), "date")
			if issue != nil {
				return Invalid[Date](issue)
			}
			if !dt.hasDate {
				return Invalid[Date](InvalidString{Expected: "date", Received: v.(string)})
			}
			if dt.infinity != Finite {
				return Ok(Date{infinity: dt.infinity})
			}
			return Ok(newDate(dt.year, dt.month, dt.day))
		}),
		onArgs(KindNumber, 1, 3, func(args []any) Result[Date] {
			switch len(args) {
			case 1:
				t, issue := epochMillis(args[0])
				if issue != nil {
					return Invalid[Date](issue)
				}
				return Ok(newDate(t.Date()))
			case 2:
				return Invalid[Date](TooSmall{Subject: SubjectArguments, Minimum: "3", Inclusive: true})
			default:
				year, month, day, issue := dateArgs(describeArgs(args), "date", args[0], args[1], args[2])
				if issue != nil {
					return Invalid[Date](issue)
				}
				return Ok(newDate(year, month, day))
			}
		}),
		on(KindInfinity, func(v any) Result[Date] {
			if math.IsInf(v.(float64), -1) {
				return Ok(Date{infinity: NegativeInfinity})
			}
			return Ok(Date{infinity: Infinity})
		}),
		on(KindObject, parseObject(dateShape, func(obj map[string]any) Result[Date] {
			year, month, day, issue := dateArgs(describeArgs([]any{obj["year"], obj["month"], obj["day"]}), "date", obj["year"], obj["month"], obj["day"])
			if issue != nil {
				return Invalid[Date](issue)
			}
			return Ok(newDate(year, month, day))
		})),
		on(KindTime, func(v any) Result[Date] {
			return Ok(newDate(v.(time.Time).Date()))
		}),
		on(KindInstance, func(v any) Result[Date] { return Ok(v.(Date)) }),
	)
}

func (c DateCodec) From(args ...any) (Date, error) {
	return c.SafeFrom(args...).Get()
}

func (DateCodec) Compare(a, b Date) int {
	return compareTimes(a.infinity, b.infinity, a.t, b.t)
}

func DateFrom(args ...any) (Date, error) {
	return DateCodec{}.From(args...)
}

func SafeDateFrom(args ...any) Result[Date] {
	return DateCodec{}.SafeFrom(args...)
}

func compareTimes(ai, bi InfinityModifier, a, b time.Time) int {
	if ai != Finite || bi != Finite {
		return compareInfinity(ai, bi)
	}
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
