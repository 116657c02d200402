package pgtype_test

import (
	"testing"

	"github.com/jackc/pgtext/pgtype"
	"github.com/jackc/pgtext/pgtype/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathRoundTrip(t *testing.T) {
	testutil.RunRoundTripTests[pgtype.Path](t, pgtype.PathCodec{}, []testutil.RoundTripTestCase{
		{Args: []any{"[(1,2),(3,4)]"}, String: "[(1,2),(3,4)]"},
		{Args: []any{"((1,2),(3,4))"}, String: "((1,2),(3,4))"},
		{Args: []any{"(1,2),(3,4)"}, String: "((1,2),(3,4))"},
		{Args: []any{" [ ( 1 , 2 ) ] "}, String: "[(1,2)]"},
		{Args: []any{[]any{"(1,2)", []any{3, 4}}}, String: "[(1,2),(3,4)]"},
		{
			Args:   []any{map[string]any{"points": []any{map[string]any{"x": 1, "y": 2}}, "connection": "closed"}},
			String: "((1,2))",
		},
	})
}

func TestPathIssues(t *testing.T) {
	testutil.RunIssueTests[pgtype.Path](t, pgtype.PathCodec{}, []testutil.IssueTestCase{
		{Args: []any{"[(1,2),(3,4))"}, Issue: pgtype.InvalidString{Expected: "path", Received: "[(1,2),(3,4))"}},
		{Args: []any{"[]"}, Issue: pgtype.InvalidString{Expected: "path", Received: "[]"}},
		{Args: []any{[]any{}}, Issue: pgtype.TooSmall{Subject: pgtype.SubjectArray, Minimum: "1", Inclusive: true}},
		{
			Args:  []any{map[string]any{"points": []any{"(1,2)"}, "connection": "ajar"}},
			Issue: pgtype.InvalidString{Expected: "path connection", Received: "ajar"},
		},
	})
}

func TestPathObject(t *testing.T) {
	p, err := pgtype.PathFrom("[(1,2),(3,4)]")
	require.NoError(t, err)
	assert.False(t, p.Closed())
	assert.Equal(t, []pgtype.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}, p.Points())
	assert.Equal(t, map[string]any{
		"points":     []any{map[string]any{"x": 1.0, "y": 2.0}, map[string]any{"x": 3.0, "y": 4.0}},
		"connection": "open",
	}, p.Object())

	eq, err := p.Equals(p.Object())
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = p.Equals("((1,2),(3,4))")
	require.NoError(t, err)
	assert.False(t, eq)
}
