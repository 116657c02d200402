package pgtype_test

import (
	"math"
	"testing"
	"time"

	"github.com/jackc/pgtext/pgtype"
	"github.com/jackc/pgtext/pgtype/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampRoundTrip(t *testing.T) {
	testutil.RunRoundTripTests[pgtype.Timestamp](t, pgtype.TimestampCodec{}, []testutil.RoundTripTestCase{
		{Args: []any{"2022-09-02 13:45:00"}, String: "2022-09-02 13:45:00"},
		{Args: []any{"2022-09-02T13:45:00.123"}, String: "2022-09-02 13:45:00.123"},
		{Args: []any{"2022-09-02"}, String: "2022-09-02 00:00:00"},
		{Args: []any{"2022-09-02 13:45:00+02"}, String: "2022-09-02 13:45:00"},
		{Args: []any{"0044-03-15 12:00:00 BC"}, String: "0044-03-15 12:00:00 BC"},
		{Args: []any{"4713-11-24 00:00:00 BC"}, String: "4713-11-24 00:00:00 BC"},
		{Args: []any{"294276-12-31 23:59:59"}, String: "294276-12-31 23:59:59"},
		{Args: []any{"epoch"}, String: "1970-01-01 00:00:00"},
		{Args: []any{"infinity"}, String: "infinity"},
		{Args: []any{2022, 9, 2}, String: "2022-09-02 00:00:00"},
		{Args: []any{2022, 9, 2, 13, 45, 0, 500000}, String: "2022-09-02 13:45:00.5"},
		{Args: []any{1662126300000}, String: "2022-09-02 13:45:00"},
		{Args: []any{math.Inf(1)}, String: "infinity"},
		{Args: []any{time.Date(2022, 9, 2, 13, 45, 0, 999, time.FixedZone("", 7200))}, String: "2022-09-02 13:45:00"},
		{
			Args:   []any{map[string]any{"year": 2022, "month": 9, "day": 2, "hour": 13, "minute": 45, "second": 0}},
			String: "2022-09-02 13:45:00",
		},
	})
}

func TestTimestampIssues(t *testing.T) {
	testutil.RunIssueTests[pgtype.Timestamp](t, pgtype.TimestampCodec{}, []testutil.IssueTestCase{
		{Args: []any{"13:45"}, Issue: pgtype.InvalidString{Expected: "timestamp", Received: "13:45"}},
		{Args: []any{"2022-13-01"}, Issue: pgtype.InvalidDate{Received: "2022-13-01"}},
		{Args: []any{"2022-09-02 13:61"}, Issue: pgtype.InvalidDate{Received: "2022-09-02 13:61"}},
		{Args: []any{2022, 9}, Issue: pgtype.TooSmall{Subject: pgtype.SubjectArguments, Minimum: "3", Inclusive: true}},
		{Args: []any{2022, 2, 30}, Issue: pgtype.InvalidDate{Received: "2022, 2, 30"}},
		{Args: []any{"294277-01-01"}, Issue: pgtype.InvalidDate{Received: "294277-01-01"}},
		{Args: []any{"9999999-01-01"}, Issue: pgtype.InvalidDate{Received: "9999999-01-01"}},
		{Args: []any{"4714-11-23 00:00:00 BC"}, Issue: pgtype.InvalidDate{Received: "4714-11-23 00:00:00 BC"}},
		{Args: []any{"4713-11-23 00:00:00 BC"}, Issue: pgtype.InvalidDate{Received: "4713-11-23 00:00:00 BC"}},
		{Args: []any{300000, 1, 1}, Issue: pgtype.InvalidDate{Received: "300000, 1, 1"}},
		{
			Args:  []any{map[string]any{"year": 2022, "month": 9, "day": 2}},
			Issue: pgtype.MissingKeys{Keys: []string{"hour", "minute", "second"}},
		},
		{
			Args:  []any{map[string]any{"year": 2022, "month": 9, "day": 2, "hour": 0, "minute": 0, "second": 0, "timezone": "UTC"}},
			Issue: pgtype.UnrecognizedKeys{Keys: []string{"timezone"}},
		},
	})
}

func TestTimestampObject(t *testing.T) {
	ts, err := pgtype.TimestampFrom("2022-09-02 13:45:00.5")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"year": 2022, "month": 9, "day": 2,
		"hour": int64(13), "minute": int64(45), "second": int64(0), "microsecond": int64(500000),
	}, ts.Object())

	again, err := pgtype.TimestampFrom(ts.Object())
	require.NoError(t, err)
	assert.Equal(t, ts.String(), again.String())
}

func TestTimestampCompare(t *testing.T) {
	c := pgtype.TimestampCodec{}
	a, _ := c.From("2022-09-02 13:45:00")
	b, _ := c.From("2022-09-02 13:45:00.000001")
	inf, _ := c.From("infinity")
	assert.Equal(t, -1, c.Compare(a, b))
	assert.Equal(t, -1, c.Compare(b, inf))
	assert.Equal(t, 0, c.Compare(inf, inf))
}

func TestTimestamptzRoundTrip(t *testing.T) {
	testutil.RunRoundTripTests[pgtype.Timestamptz](t, pgtype.TimestamptzCodec{}, []testutil.RoundTripTestCase{
		{Args: []any{"2022-09-02 13:45:00+02"}, String: "2022-09-02 11:45:00+00"},
		{Args: []any{"2022-09-02 13:45:00"}, String: "2022-09-02 13:45:00+00"},
		{Args: []any{"2022-09-02 13:45:00 America/New_York"}, String: "2022-09-02 17:45:00+00"},
		{Args: []any{"2022-09-02T13:45:00.25Z"}, String: "2022-09-02 13:45:00.25+00"},
		{Args: []any{"-infinity"}, String: "-infinity"},
		{Args: []any{1662126300000}, String: "2022-09-02 13:45:00+00"},
		{Args: []any{time.Date(2022, 9, 2, 13, 45, 0, 0, time.FixedZone("", 7200))}, String: "2022-09-02 11:45:00+00"},
		{
			Args:   []any{map[string]any{"year": 2022, "month": 9, "day": 2, "hour": 13, "minute": 45, "second": 0, "timezone": "+02"}},
			String: "2022-09-02 11:45:00+00",
		},
		{
			Args:   []any{map[string]any{"year": 2022, "month": 9, "day": 2, "hour": 13, "minute": 45, "second": 0, "timezone": -3600}},
			String: "2022-09-02 14:45:00+00",
		},
	})
}

func TestTimestamptzCodecLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	codec := pgtype.TimestamptzCodec{Location: ny}

	testutil.RunRoundTripTests[pgtype.Timestamptz](t, codec, []testutil.RoundTripTestCase{
		{Args: []any{"2022-09-02 13:45:00"}, String: "2022-09-02 13:45:00-04"},
		{Args: []any{"2022-01-02 00:00:00+00"}, String: "2022-01-01 19:00:00-05"},
		{Args: []any{2022, 1, 2}, String: "2022-01-02 00:00:00-05"},
		{
			Args:   []any{map[string]any{"year": 2022, "month": 9, "day": 2, "hour": 13, "minute": 45, "second": 0}},
			String: "2022-09-02 13:45:00-04",
		},
	})

	ts, err := codec.From("2022-09-02 13:45:00")
	require.NoError(t, err)
	eq, err := ts.Equals("2022-09-02 17:45:00Z")
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestTimestamptzIssues(t *testing.T) {
	testutil.RunIssueTests[pgtype.Timestamptz](t, pgtype.TimestamptzCodec{}, []testutil.IssueTestCase{
		{Args: []any{"13:45+02"}, Issue: pgtype.InvalidString{Expected: "timestamptz", Received: "13:45+02"}},
		{Args: []any{"2022-09-02 13:45:00 Nowhere/Special"}, Issue: pgtype.InvalidTimezone{Received: "Nowhere/Special"}},
		{
			Args:  []any{map[string]any{"year": 2022, "month": 9, "day": 2, "hour": 13, "minute": 45, "second": 0, "timezone": "+99"}},
			Issue: pgtype.InvalidTimezone{Received: "+99"},
		},
	})
}

func TestTimestamptzObject(t *testing.T) {
	ts, err := pgtype.TimestamptzFrom("2022-09-02 13:45:00+02")
	require.NoError(t, err)
	obj := ts.Object()
	assert.Equal(t, "+00", obj["timezone"])
	assert.Equal(t, int64(11), obj["hour"])

	again, err := pgtype.TimestamptzFrom(obj)
	require.NoError(t, err)
	assert.Equal(t, 0, pgtype.TimestamptzCodec{}.Compare(ts, again))
}
