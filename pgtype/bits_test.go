package pgtype_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/jackc/pgtext/pgtype"
	"github.com/jackc/pgtext/pgtype/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitRoundTrip(t *testing.T) {
	testutil.RunRoundTripTests[pgtype.Bit](t, pgtype.BitCodec{N: 8}, []testutil.RoundTripTestCase{
		{Args: []any{"10100101"}, String: "10100101"},
		{Args: []any{" B00001111 "}, String: "00001111"},
		{Args: []any{"X0f"}, String: "00001111"},
		{Args: []any{"xA5"}, String: "10100101"},
		{Args: []any{5}, String: "00000101"},
		{Args: []any{big.NewInt(255)}, String: "11111111"},
		{Args: []any{[]byte{0xA5}}, String: "10100101"},
		{Args: []any{map[string]any{"value": "11110000"}}, String: "11110000"},
		{Args: []any{map[string]any{"value": 3}}, String: "00000011"},
	})

	testutil.RunRoundTripTests[pgtype.Bit](t, pgtype.BitCodec{}, []testutil.RoundTripTestCase{
		{Args: []any{"1"}, String: "1"},
		{Args: []any{0}, String: "0"},
	})
}

func TestBitIssues(t *testing.T) {
	testutil.RunIssueTests[pgtype.Bit](t, pgtype.BitCodec{N: 1}, []testutil.IssueTestCase{
		{Args: []any{"101"}, Issue: pgtype.InvalidNLength{Maximum: 1, Received: 3, Exact: true}},
		{Args: []any{""}, Issue: pgtype.InvalidNLength{Maximum: 1, Received: 0, Exact: true}},
		{Args: []any{"102"}, Issue: pgtype.InvalidString{Expected: "bit", Received: "102"}},
		{Args: []any{"Xg"}, Issue: pgtype.InvalidString{Expected: "bit", Received: "Xg"}},
		{Args: []any{-1}, Issue: pgtype.TooSmall{Subject: pgtype.SubjectNumber, Minimum: "0", Inclusive: true}},
		{Args: []any{big.NewInt(-1)}, Issue: pgtype.TooSmall{Subject: pgtype.SubjectBigInt, Minimum: "0", Inclusive: true}},
		{Args: []any{0.5}, Issue: pgtype.NotWhole{}},
		{Args: []any{math.Inf(1)}, Issue: pgtype.InvalidType{
			Expected: []string{"string", "number", "bigint", "object", "bytes", "Bit"},
			Received: "infinity",
		}},
		{Args: []any{true}, Issue: pgtype.InvalidType{
			Expected: []string{"string", "number", "bigint", "object", "bytes", "Bit"},
			Received: "boolean",
		}},
		{Args: []any{map[string]any{"bits": "1"}}, Issue: pgtype.UnrecognizedKeys{Keys: []string{"bits"}}},
	})

	testutil.RunIssueTests[pgtype.Bit](t, pgtype.BitCodec{N: 3}, []testutil.IssueTestCase{
		{Args: []any{9}, Issue: pgtype.InvalidNLength{Maximum: 3, Received: 4, Exact: true}},
	})
}

func TestBitAccessors(t *testing.T) {
	b, err := pgtype.BitFrom(10, "1010101011")
	require.NoError(t, err)

	assert.Equal(t, 10, b.Len())
	assert.Equal(t, []byte{0xAA, 0xC0}, b.Bytes())
	assert.Equal(t, big.NewInt(683), b.BigInt())
	assert.Equal(t, map[string]any{"value": "1010101011"}, b.Object())

	buf, err := b.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"1010101011"}`, string(buf))
}

func TestBitEquals(t *testing.T) {
	b, err := pgtype.BitFrom(3, "101")
	require.NoError(t, err)

	for _, arg := range []any{"101", "B101", 5, big.NewInt(5), map[string]any{"value": "101"}, b} {
		eq, err := b.Equals(arg)
		require.NoError(t, err)
		assert.Truef(t, eq, "%v", arg)
	}

	eq, err := b.Equals("100")
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestBitInstanceKeepsLengthModifier(t *testing.T) {
	b, err := pgtype.BitFrom(3, "101")
	require.NoError(t, err)

	r := pgtype.SafeBitFrom(4, b)
	require.False(t, r.Success())
	assert.Equal(t, pgtype.InvalidNLength{Maximum: 4, Received: 3, Exact: true}, r.Issue())
	assert.Equal(t, "Bit string length must be exactly 4, received 3", r.Err().Error())
}

func TestVarbitRoundTrip(t *testing.T) {
	testutil.RunRoundTripTests[pgtype.Varbit](t, pgtype.VarbitCodec{}, []testutil.RoundTripTestCase{
		{Args: []any{""}, String: ""},
		{Args: []any{"1"}, String: "1"},
		{Args: []any{"0001"}, String: "0001"},
		{Args: []any{"X1"}, String: "0001"},
		{Args: []any{5}, String: "101"},
		{Args: []any{0}, String: "0"},
		{Args: []any{[]byte{0x01, 0x80}}, String: "0000000110000000"},
	})

	testutil.RunRoundTripTests[pgtype.Varbit](t, pgtype.VarbitCodec{N: 4}, []testutil.RoundTripTestCase{
		{Args: []any{"1"}, String: "1"},
		{Args: []any{"1111"}, String: "1111"},
	})
}

func TestVarbitIssues(t *testing.T) {
	testutil.RunIssueTests[pgtype.Varbit](t, pgtype.VarbitCodec{N: 4}, []testutil.IssueTestCase{
		{Args: []any{"10101"}, Issue: pgtype.InvalidNLength{Maximum: 4, Received: 5}},
		{Args: []any{"XFF"}, Issue: pgtype.InvalidNLength{Maximum: 4, Received: 8}},
		{Args: []any{16}, Issue: pgtype.InvalidNLength{Maximum: 4, Received: 5}},
		{Args: []any{"12"}, Issue: pgtype.InvalidString{Expected: "varbit", Received: "12"}},
		{Args: []any{"1", "0"}, Issue: pgtype.TooBig{Subject: pgtype.SubjectArguments, Maximum: "1", Inclusive: true, Exact: true}},
	})

	r := pgtype.SafeVarbitFrom(2, "111")
	require.False(t, r.Success())
	assert.Equal(t, "Bit string length must be at most 2, received 3", r.Err().Error())
}

func TestVarbitCompare(t *testing.T) {
	c := pgtype.VarbitCodec{}
	a, _ := c.From("0")
	b, _ := c.From("01")
	d, _ := c.From("1")

	assert.Equal(t, -1, c.Compare(a, b))
	assert.Equal(t, -1, c.Compare(b, d))
	assert.Equal(t, 1, c.Compare(d, a))
	assert.Equal(t, 0, c.Compare(d, d))
}
