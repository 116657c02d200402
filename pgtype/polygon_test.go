package pgtype_test

import (
	"testing"

	"github.com/jackc/pgtext/pgtype"
	"github.com/jackc/pgtext/pgtype/testutil"
)

func TestPolygonRoundTrip(t *testing.T) {
	testutil.RunRoundTripTests[pgtype.Polygon](t, pgtype.PolygonCodec{}, []testutil.RoundTripTestCase{
		{Args: []any{"((0,0),(1,1),(1,0))"}, String: "((0,0),(1,1),(1,0))"},
		{Args: []any{"(0,0),(1,1)"}, String: "((0,0),(1,1))"},
		{Args: []any{"0,0,1,1"}, String: "((0,0),(1,1))"},
		{Args: []any{[]any{"(0,0)", map[string]any{"x": 1, "y": 1}}}, String: "((0,0),(1,1))"},
		{Args: []any{map[string]any{"points": []any{[]any{2, 3}}}}, String: "((2,3))"},
	})
}

func TestPolygonIssues(t *testing.T) {
	testutil.RunIssueTests[pgtype.Polygon](t, pgtype.PolygonCodec{}, []testutil.IssueTestCase{
		{Args: []any{"((0,0),(1,1)"}, Issue: pgtype.InvalidString{Expected: "polygon", Received: "((0,0),(1,1)"}},
		{Args: []any{"[(0,0)]"}, Issue: pgtype.InvalidString{Expected: "polygon", Received: "[(0,0)]"}},
		{Args: []any{map[string]any{"points": []any{}}}, Issue: pgtype.TooSmall{Subject: pgtype.SubjectArray, Minimum: "1", Inclusive: true}},
	})
}
