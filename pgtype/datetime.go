package pgtype

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	microsecondsPerSecond = 1000000
	microsecondsPerDay    = 24 * 60 * 60 * microsecondsPerSecond

	maxZoneOffset = 15*60*60 + 59*60 + 59
)

var (
	dateTimeEra    = regexp.MustCompile(`(?i)\s+(bc|ad)$`)
	dateTimeDate   = regexp.MustCompile(`^(\d+)-(\d{1,2})-(\d{1,2})`)
	dateTimeClock  = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2})(?:\.(\d+))?)?`)
	dateTimeOffset = regexp.MustCompile(`^([+-])(\d{1,2})(?::?(\d{2})(?::?(\d{2}))?)?$`)
	dateTimeZone   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_+\-/]*$`)
)

// dateTime holds the fields of a parsed date/time literal. Years are astronomical: 1 BC is year 0.
type dateTime struct {
	infinity InfinityModifier

	hasDate bool
	year    int
	month   time.Month
	day     int

	hasTime bool
	micros  int64

	hasZone bool
	offset  int
	loc     *time.Location
}

// zoneFor returns the location for dt's zone, or def when dt has none.
func (dt dateTime) zoneFor(def *time.Location) *time.Location {
	switch {
	case !dt.hasZone:
		return def
	case dt.loc != nil:
		return dt.loc
	default:
		return time.FixedZone("", dt.offset)
	}
}

// in returns the instant dt denotes when its wall clock is read in loc.
func (dt dateTime) in(loc *time.Location) time.Time {
	return time.Date(dt.year, dt.month, dt.day, 0, 0, 0, 0, loc).Add(time.Duration(dt.micros) * time.Microsecond)
}

// zoneOffset returns dt's offset from UTC in seconds for the date it denotes or for on when it has no date.
func (dt dateTime) zoneOffset(on time.Time) int {
	if !dt.hasZone {
		return 0
	}
	if dt.loc == nil {
		return dt.offset
	}
	if dt.hasDate {
		on = dt.in(dt.loc)
	}
	_, offset := on.In(dt.loc).Zone()
	return offset
}

// parseDateTime parses the full PostgreSQL timestamp grammar: an optional ISO date, an optional clock time, an
// optional zone and an optional BC/AD suffix, or one of infinity, -infinity and epoch. Callers check which parts
// they require. pgName is reported by invalid_string issues.
func parseDateTime(src, pgName string) (dateTime, Issue) {
	var dt dateTime
	s := strings.TrimSpace(src)

	switch strings.ToLower(s) {
	case "infinity", "+infinity":
		return dateTime{infinity: Infinity, hasDate: true, hasTime: true}, nil
	case "-infinity":
		return dateTime{infinity: NegativeInfinity, hasDate: true, hasTime: true}, nil
	case "epoch":
		return dateTime{hasDate: true, year: 1970, month: time.January, day: 1, hasTime: true, hasZone: true}, nil
	}

	bc := false
	if m := dateTimeEra.FindStringSubmatch(s); m != nil {
		bc = strings.EqualFold(m[1], "bc")
		s = s[:len(s)-len(m[0])]
	}

	if m := dateTimeDate.FindStringSubmatch(s); m != nil {
		year, err := strconv.Atoi(m[1])
		if err != nil || year == 0 {
			return dt, InvalidDate{Received: src}
		}
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if bc {
			year = 1 - year
		}
		if !validDate(year, month, day) || !inDateRange(pgName, year, month, day) {
			return dt, InvalidDate{Received: src}
		}
		dt.hasDate = true
		dt.year, dt.month, dt.day = year, time.Month(month), day

		s = s[len(m[0]):]
		if len(s) > 0 && (s[0] == 'T' || s[0] == 't') {
			s = s[1:]
		}
		s = strings.TrimLeft(s, " \t")
	} else if bc {
		return dt, InvalidString{Expected: pgName, Received: src}
	}

	if m := dateTimeClock.FindStringSubmatch(s); m != nil {
		micros, ok := clockMicros(m[1], m[2], m[3], m[4])
		if !ok {
			return dt, InvalidDate{Received: src}
		}
		dt.hasTime = true
		dt.micros = micros
		s = s[len(m[0]):]
	}

	if !dt.hasDate && !dt.hasTime {
		return dt, InvalidString{Expected: pgName, Received: src}
	}

	zone := strings.TrimSpace(s)
	if zone == "" {
		return dt, nil
	}
	dt.hasZone = true

	if !dateTimeOffset.MatchString(zone) && !dateTimeZone.MatchString(zone) {
		return dt, InvalidString{Expected: pgName, Received: src}
	}
	offset, loc, issue := parseZone(zone)
	if issue != nil {
		return dt, issue
	}
	dt.offset, dt.loc = offset, loc
	return dt, nil
}

// parseZone parses Z, UTC, GMT, a numeric offset or an IANA zone name. Named zones other than UTC return their
// location so the offset can be resolved for a particular date.
func parseZone(zone string) (int, *time.Location, Issue) {
	zone = strings.TrimSpace(zone)
	switch upper := strings.ToUpper(zone); {
	case upper == "Z" || upper == "UTC" || upper == "GMT":
		return 0, nil, nil
	case dateTimeOffset.MatchString(zone):
		offset, ok := parseZoneOffset(zone)
		if !ok {
			return 0, nil, InvalidTimezone{Received: zone}
		}
		return offset, nil, nil
	case dateTimeZone.MatchString(zone):
		loc, err := time.LoadLocation(zone)
		if err != nil {
			return 0, nil, InvalidTimezone{Received: zone}
		}
		return 0, loc, nil
	default:
		return 0, nil, InvalidTimezone{Received: zone}
	}
}

// zoneArg converts an object timezone value, either zone text or an offset in seconds east of UTC, to an offset
// in effect at on.
func zoneArg(v any, on time.Time) (int, Issue) {
	v = normalize(v)
	if s, ok := v.(string); ok {
		offset, loc, issue := parseZone(s)
		if issue != nil {
			return 0, issue
		}
		if loc != nil {
			_, offset = on.In(loc).Zone()
		}
		return offset, nil
	}

	offset, issue := wholeArg(v, -maxZoneOffset, maxZoneOffset)
	if issue != nil {
		if _, ok := issue.(InvalidType); ok {
			return 0, InvalidType{Expected: []string{KindNumber.String(), KindString.String()}, Received: receivedName(v)}
		}
		return 0, InvalidTimezone{Received: fmt.Sprint(v)}
	}
	return int(offset), nil
}

// Supported date ranges as astronomical year, month and day. Dates start at 4713-11-24 BC; timestamps end
// earlier than dates do.
var (
	minDate      = [3]int{-4712, 11, 24}
	maxDate      = [3]int{5874897, 12, 31}
	maxTimestamp = [3]int{294276, 12, 31}
)

func compareYMD(a, b [3]int) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// inDateRange reports whether the date lies within the range PostgreSQL supports for pgName. Time types only
// read the clock so any date is accepted.
func inDateRange(pgName string, year, month, day int) bool {
	var max [3]int
	switch pgName {
	case "date":
		max = maxDate
	case "timestamp", "timestamptz":
		max = maxTimestamp
	default:
		return true
	}
	ymd := [3]int{year, month, day}
	return compareYMD(ymd, minDate) >= 0 && compareYMD(ymd, max) <= 0
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// clockMicros converts clock fields to microseconds since midnight. Fractions beyond microseconds are rounded.
// 24:00:00 is accepted, as is a leap second that rolls into the next minute.
func clockMicros(hourText, minuteText, secondText, fracText string) (int64, bool) {
	hour, _ := strconv.Atoi(hourText)
	minute, _ := strconv.Atoi(minuteText)
	second := 0
	if secondText != "" {
		second, _ = strconv.Atoi(secondText)
	}

	var frac int64
	if fracText != "" {
		digits := (fracText + "0000000")[:7]
		n, _ := strconv.ParseInt(digits, 10, 64)
		frac = n / 10
		if n%10 >= 5 {
			frac++
		}
	}

	if hour > 24 || minute > 59 || second > 60 {
		return 0, false
	}
	if hour == 24 && (minute != 0 || second != 0 || frac != 0) {
		return 0, false
	}

	micros := ((int64(hour)*60+int64(minute))*60+int64(second))*microsecondsPerSecond + frac
	if micros > microsecondsPerDay {
		return 0, false
	}
	return micros, true
}

func parseZoneOffset(zone string) (int, bool) {
	m := dateTimeOffset.FindStringSubmatch(zone)
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[2])
	var minutes, seconds int
	if m[3] != "" {
		minutes, _ = strconv.Atoi(m[3])
	}
	if m[4] != "" {
		seconds, _ = strconv.Atoi(m[4])
	}
	if minutes > 59 || seconds > 59 {
		return 0, false
	}

	offset := hours*3600 + minutes*60 + seconds
	if offset > maxZoneOffset {
		return 0, false
	}
	if m[1] == "-" {
		offset = -offset
	}
	return offset, true
}

// formatZoneOffset renders an offset as ±HH[:MM[:SS]].
func formatZoneOffset(offset int) string {
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	hours, minutes, seconds := offset/3600, offset/60%60, offset%60

	s := fmt.Sprintf("%c%02d", sign, hours)
	if minutes != 0 || seconds != 0 {
		s += fmt.Sprintf(":%02d", minutes)
	}
	if seconds != 0 {
		s += fmt.Sprintf(":%02d", seconds)
	}
	return s
}

// formatClock renders microseconds since midnight as HH:MM:SS with a fraction when one is present.
func formatClock(micros int64) string {
	secs := micros / microsecondsPerSecond
	frac := micros % microsecondsPerSecond

	s := fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
	if frac != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%06d", frac), "0")
	}
	return s
}

// formatDate renders an astronomical year, month and day, adding the BC suffix for years before 1 AD.
func formatDate(year int, month time.Month, day int) (string, bool) {
	bc := year <= 0
	if bc {
		year = 1 - year
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day), bc
}

// clockOf returns the microseconds since midnight of t's wall clock.
func clockOf(t time.Time) int64 {
	return int64(t.Hour()*3600+t.Minute()*60+t.Second())*microsecondsPerSecond + int64(t.Nanosecond()/1000)
}

// epochMillis converts a whole number of milliseconds since the Unix epoch.
func epochMillis(v any) (time.Time, Issue) {
	ms, issue := wholeArg(v, -(1 << 53), 1<<53)
	if issue != nil {
		return time.Time{}, issue
	}
	return time.UnixMilli(ms).UTC(), nil
}

// clockArgs converts positional or object hour, minute, second and microsecond values to microseconds since
// midnight. received is reported by InvalidDate on failure.
func clockArgs(received string, hour, minute, second, micro any) (int64, Issue) {
	fields := [4]int64{}
	limits := [4]int64{24, 59, 60, 999999}
	for i, v := range []any{hour, minute, second, micro} {
		if v == nil {
			continue
		}
		n, issue := wholeArg(v, 0, limits[i])
		if issue != nil {
			if _, ok := issue.(InvalidType); ok {
				return 0, issue
			}
			return 0, InvalidDate{Received: received}
		}
		fields[i] = n
	}

	micros := ((fields[0]*60+fields[1])*60+fields[2])*microsecondsPerSecond + fields[3]
	if micros > microsecondsPerDay {
		return 0, InvalidDate{Received: received}
	}
	return micros, nil
}

// dateArgs validates positional or object year, month and day values against the range of pgName.
func dateArgs(received, pgName string, year, month, day any) (int, time.Month, int, Issue) {
	var fields [3]int64
	for i, v := range []any{year, month, day} {
		n, issue := wholeArg(v, -4713, int64(maxDate[0]))
		if issue != nil {
			if _, ok := issue.(InvalidType); ok {
				return 0, 0, 0, issue
			}
			return 0, 0, 0, InvalidDate{Received: received}
		}
		fields[i] = n
	}
	if fields[0] == 0 {
		return 0, 0, 0, InvalidDate{Received: received}
	}

	// Negative years count back from 1 BC.
	y := int(fields[0])
	if y < 0 {
		y++
	}
	if !validDate(y, int(fields[1]), int(fields[2])) || !inDateRange(pgName, y, int(fields[1]), int(fields[2])) {
		return 0, 0, 0, InvalidDate{Received: received}
	}
	return y, time.Month(fields[1]), int(fields[2]), nil
}

func describeArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, ", ")
}
