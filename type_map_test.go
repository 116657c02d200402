package pgtext_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgtext"
	"github.com/jackc/pgtext/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLog struct {
	lvl  pgtext.LogLevel
	msg  string
	data map[string]any
}

type testLogger struct {
	logs []testLog

	mux sync.Mutex
}

func (l *testLogger) Log(ctx context.Context, level pgtext.LogLevel, msg string, data map[string]any) {
	l.mux.Lock()
	defer l.mux.Unlock()

	l.logs = append(l.logs, testLog{lvl: level, msg: msg, data: data})
}

func newTypeMap(t *testing.T, config pgtext.Config) *pgtext.TypeMap {
	t.Helper()
	tm, err := pgtext.NewTypeMap(config)
	require.NoError(t, err)
	return tm
}

func TestTypeMapParse(t *testing.T) {
	tm := newTypeMap(t, pgtext.Config{})
	ctx := context.Background()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"int2", "12", "12"},
		{"smallint", " 12 ", "12"},
		{"INTEGER", "+7", "7"},
		{"double  precision", "1.5", "1.5"},
		{"numeric", "1.50", "1.50"},
		{"date", "2022-09-02", "2022-09-02"},
		{"timestamp with time zone", "2022-09-02 13:45:00+00", "2022-09-02 13:45:00+00"},
		{"daterange", "[2022-09-02,2022-10-03)", "[2022-09-02,2022-10-03)"},
		{"int4multirange", "{[1,3),[5,7)}", "{[1,3),[5,7)}"},
		{"bit", "1", "1"},
		{"bit(3)", "101", "101"},
		{"bit varying(4)", "11", "11"},
		{"varbit", "X1", "0001"},
		{"uuid", "A0EEBC99-9C0B-4EF8-BB6D-6BB9BD380A11", "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"},
		{"int4[]", "{1,NULL, 3}", "{1,NULL,3}"},
		{"_int4", "{}", "{}"},
		{"bit(2)[]", "{01,10}", "{01,10}"},
		{"daterange[]", `{"[2022-09-02,2022-10-03)"}`, `{"[2022-09-02\,2022-10-03)"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tm.Parse(ctx, tt.name, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestTypeMapParseIssue(t *testing.T) {
	tm := newTypeMap(t, pgtext.Config{})
	ctx := context.Background()

	_, err := tm.Parse(ctx, "int2", "32768")
	require.Error(t, err)
	var pgErr *pgtype.Error
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, pgtype.TooBig{Subject: pgtype.SubjectNumber, Maximum: "32767", Inclusive: true}, pgErr.Issue)

	_, err = tm.Parse(ctx, "bit(1)", "101")
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, pgtype.InvalidNLength{Maximum: 1, Received: 3, Exact: true}, pgErr.Issue)

	_, err = tm.Parse(ctx, "int4[]", "{1,x}")
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, pgtype.InvalidString{Expected: "int4", Received: "x"}, pgErr.Issue)
}

func TestTypeMapUnknownType(t *testing.T) {
	tm := newTypeMap(t, pgtext.Config{})
	ctx := context.Background()

	for _, name := range []string{"hstore", "hstore[]", "int4[][]", "int4(3)", "bit(0)", "bit(x)", "_"} {
		_, err := tm.Parse(ctx, name, "")
		assert.ErrorIsf(t, err, pgtext.ErrUnknownType, "%s", name)
	}

	_, ok := tm.DataTypeForName("numeric(10,2)")
	assert.False(t, ok)
}

func TestTypeMapServerVersion(t *testing.T) {
	old := newTypeMap(t, pgtext.Config{ServerVersion: "13.4"})
	_, ok := old.DataTypeForName("int4multirange")
	assert.False(t, ok)
	_, ok = old.DataTypeForName("int4range")
	assert.True(t, ok)

	current := newTypeMap(t, pgtext.Config{ServerVersion: "14.3 (Debian 14.3-1.pgdg110+1)"})
	_, ok = current.DataTypeForName("tstzmultirange")
	assert.True(t, ok)

	_, err := pgtext.NewTypeMap(pgtext.Config{ServerVersion: "banana"})
	require.Error(t, err)
}

func TestTypeMapTimeZone(t *testing.T) {
	tm := newTypeMap(t, pgtext.Config{TimeZone: "America/New_York"})

	v, err := tm.Parse(context.Background(), "timestamptz", "2022-01-02 00:00:00+00")
	require.NoError(t, err)
	assert.Equal(t, "2022-01-01 19:00:00-05", v.String())

	_, err = pgtext.NewTypeMap(pgtext.Config{TimeZone: "Mars/Olympus_Mons"})
	require.Error(t, err)
}

func TestTypeMapParseArray(t *testing.T) {
	tm := newTypeMap(t, pgtext.Config{})
	ctx := context.Background()

	for _, name := range []string{"int8", "int8[]", "_int8", "bigint"} {
		values, err := tm.ParseArray(ctx, name, "{1,NULL,3}")
		require.NoError(t, err)
		require.Len(t, values, 3)
		assert.Equal(t, "1", values[0].String())
		assert.Nil(t, values[1])
		assert.Equal(t, "3", values[2].String())
	}

	values, err := tm.ParseArray(ctx, "box", "{(1,1),(0,0);(3,3),(2,2)}")
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "(3,3),(2,2)", values[1].String())

	values, err = tm.ParseArray(ctx, "int4", "NULL")
	require.NoError(t, err)
	assert.Nil(t, values)

	_, err = tm.ParseArray(ctx, "widget", "{}")
	assert.ErrorIs(t, err, pgtext.ErrUnknownType)
}

func TestTypeMapRegisterDataType(t *testing.T) {
	tm := newTypeMap(t, pgtext.Config{ServerVersion: "14"})

	dt := pgtext.NewDataType[pgtype.Int4]("ticket_id", pgtype.Int4Codec{})
	dt.Aliases = []string{"ticket"}
	require.NoError(t, tm.RegisterDataType(dt))

	v, err := tm.Parse(context.Background(), "TICKET", "42")
	require.NoError(t, err)
	assert.Equal(t, "42", v.String())
	assert.Contains(t, tm.Names(), "ticket_id")

	future := pgtext.NewDataType[pgtype.Int4]("future", pgtype.Int4Codec{})
	future.MinServerVersion = ">= 99"
	assert.ErrorIs(t, tm.RegisterDataType(future), pgtext.ErrUnsupportedServerVersion)

	bad := pgtext.NewDataType[pgtype.Int4]("bad", pgtype.Int4Codec{})
	bad.MinServerVersion = "soon"
	assert.Error(t, tm.RegisterDataType(bad))
}

func TestTypeMapNames(t *testing.T) {
	names := newTypeMap(t, pgtext.Config{}).Names()

	assert.IsIncreasing(t, names)
	for _, name := range []string{"int2", "smallint", "double precision", "bit varying", "timestamp with time zone", "tstzmultirange"} {
		assert.Contains(t, names, name)
	}
}

func TestTypeMapLogging(t *testing.T) {
	logger := &testLogger{}
	tm := newTypeMap(t, pgtext.Config{Logger: logger, LogLevel: pgtext.LogLevelDebug})
	ctx := context.Background()

	_, err := tm.Parse(ctx, "integer", "1")
	require.NoError(t, err)
	_, err = tm.Parse(ctx, "int2", strings.Repeat("9", 70))
	require.Error(t, err)

	require.Len(t, logger.logs, 2)

	assert.Equal(t, pgtext.LogLevelDebug, logger.logs[0].lvl)
	assert.Equal(t, "Parse", logger.logs[0].msg)
	assert.Equal(t, map[string]any{"type": "int4", "src": "1"}, logger.logs[0].data)

	assert.Equal(t, pgtext.LogLevelWarn, logger.logs[1].lvl)
	assert.Equal(t, "int2", logger.logs[1].data["type"])
	assert.Equal(t, strings.Repeat("9", 64)+" (truncated 6 bytes)", logger.logs[1].data["src"])
	assert.Equal(t, "too_big", logger.logs[1].data["issue"])
}

func TestTypeMapDefaultLogLevelSkipsDebug(t *testing.T) {
	logger := &testLogger{}
	tm := newTypeMap(t, pgtext.Config{Logger: pgtext.LoggerFunc(logger.Log)})
	ctx := context.Background()

	_, _ = tm.Parse(ctx, "int4", "1")
	_, _ = tm.Parse(ctx, "int4", "x")

	require.Len(t, logger.logs, 1)
	assert.Equal(t, pgtext.LogLevelWarn, logger.logs[0].lvl)
	assert.Equal(t, "invalid_string", logger.logs[0].data["issue"])
}
