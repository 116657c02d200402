package pgtype_test

import (
	"testing"
	"time"

	"github.com/jackc/pgtext/pgtype"
	"github.com/jackc/pgtext/pgtype/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeRoundTrip(t *testing.T) {
	testutil.RunRoundTripTests[pgtype.Time](t, pgtype.TimeCodec{}, []testutil.RoundTripTestCase{
		{Args: []any{"13:45"}, String: "13:45:00"},
		{Args: []any{"13:45:30.5"}, String: "13:45:30.5"},
		{Args: []any{"13:45:30.1234567"}, String: "13:45:30.123457"},
		{Args: []any{"24:00:00"}, String: "24:00:00"},
		{Args: []any{"2022-09-02 08:00:00+02"}, String: "08:00:00"},
		{Args: []any{13, 45}, String: "13:45:00"},
		{Args: []any{13, 45, 30, 500000}, String: "13:45:30.5"},
		{Args: []any{0}, String: "00:00:00"},
		{Args: []any{3723000}, String: "01:02:03"},
		{Args: []any{time.Date(2022, 1, 1, 7, 8, 9, 123456789, time.UTC)}, String: "07:08:09.123456"},
		{Args: []any{map[string]any{"hour": 1, "minute": 2, "second": 3}}, String: "01:02:03"},
		{Args: []any{map[string]any{"hour": 1, "minute": 2, "second": 3, "microsecond": 40}}, String: "01:02:03.00004"},
	})
}

func TestTimeIssues(t *testing.T) {
	testutil.RunIssueTests[pgtype.Time](t, pgtype.TimeCodec{}, []testutil.IssueTestCase{
		{Args: []any{"25:00"}, Issue: pgtype.InvalidDate{Received: "25:00"}},
		{Args: []any{"24:00:01"}, Issue: pgtype.InvalidDate{Received: "24:00:01"}},
		{Args: []any{"hello"}, Issue: pgtype.InvalidString{Expected: "time", Received: "hello"}},
		{Args: []any{"2022-09-02"}, Issue: pgtype.InvalidString{Expected: "time", Received: "2022-09-02"}},
		{Args: []any{"infinity"}, Issue: pgtype.InvalidString{Expected: "time", Received: "infinity"}},
		{Args: []any{25, 0}, Issue: pgtype.InvalidDate{Received: "25, 0"}},
		{Args: []any{map[string]any{"hour": 1, "minute": 2}}, Issue: pgtype.MissingKeys{Keys: []string{"second"}}},
		{
			Args:  []any{map[string]any{"hour": "1", "minute": 2, "second": 3}},
			Issue: pgtype.InvalidKeyType{Key: "hour", Expected: []string{"number"}, Received: "string"},
		},
	})
}

func TestTimeObject(t *testing.T) {
	tm, err := pgtype.TimeFrom("13:45:30.25")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"hour": int64(13), "minute": int64(45), "second": int64(30), "microsecond": int64(250000)}, tm.Object())
	assert.EqualValues(t, 49530250000, tm.Microseconds())
}

func TestTimeTZRoundTrip(t *testing.T) {
	testutil.RunRoundTripTests[pgtype.TimeTZ](t, pgtype.TimeTZCodec{}, []testutil.RoundTripTestCase{
		{Args: []any{"13:45:00+02"}, String: "13:45:00+02"},
		{Args: []any{"13:45:00-05:30"}, String: "13:45:00-05:30"},
		{Args: []any{"13:45:00+05:30:15"}, String: "13:45:00+05:30:15"},
		{Args: []any{"13:45"}, String: "13:45:00+00"},
		{Args: []any{"13:45:00 Z"}, String: "13:45:00+00"},
		{Args: []any{"12:00:00 America/New_York"}, String: "12:00:00-05"},
		{Args: []any{"2022-07-01 12:00:00 America/New_York"}, String: "12:00:00-04"},
		{Args: []any{13, 45}, String: "13:45:00+00"},
		{Args: []any{map[string]any{"hour": 1, "minute": 2, "second": 3, "timezone": "+01"}}, String: "01:02:03+01"},
		{Args: []any{map[string]any{"hour": 1, "minute": 2, "second": 3, "timezone": -3600}}, String: "01:02:03-01"},
		{Args: []any{time.Date(2022, 1, 1, 10, 0, 0, 0, time.FixedZone("", -3*3600))}, String: "10:00:00-03"},
	})
}

func TestTimeTZIssues(t *testing.T) {
	testutil.RunIssueTests[pgtype.TimeTZ](t, pgtype.TimeTZCodec{}, []testutil.IssueTestCase{
		{Args: []any{"13:45:00+16"}, Issue: pgtype.InvalidTimezone{Received: "+16"}},
		{Args: []any{"13:45:00 Mars/Base"}, Issue: pgtype.InvalidTimezone{Received: "Mars/Base"}},
		{Args: []any{"13:45:00 +02 +03"}, Issue: pgtype.InvalidString{Expected: "timetz", Received: "13:45:00 +02 +03"}},
		{Args: []any{map[string]any{"hour": 1, "minute": 2, "second": 3, "timezone": 100000}}, Issue: pgtype.InvalidTimezone{Received: "100000"}},
		{
			Args:  []any{map[string]any{"hour": 1, "minute": 2, "second": 3, "timezone": true}},
			Issue: pgtype.InvalidKeyType{Key: "timezone", Expected: []string{"string", "number"}, Received: "boolean"},
		},
	})
}

func TestTimeTZCompare(t *testing.T) {
	c := pgtype.TimeTZCodec{}
	a, err := c.From("12:00:00+00")
	require.NoError(t, err)
	b, err := c.From("13:00:00+02")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Compare(a, b))
	assert.Equal(t, -1, c.Compare(b, a))

	east, err := c.From("14:00:00+02")
	require.NoError(t, err)
	assert.Equal(t, -1, c.Compare(east, a))
}
