package pgtext

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/jackc/pgtext/pgtype"
)

var (
	// ErrUnknownType is returned when a type name is not registered.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnsupportedServerVersion is returned by RegisterDataType for a type the configured server does not have.
	ErrUnsupportedServerVersion = errors.New("unsupported server version")
)

// Array is a parsed one dimensional array. Elements holds nil for NULL elements and is nil for a NULL array.
type Array struct {
	Elements []pgtype.Value
	text     string
}

// String returns the canonical array literal.
func (a Array) String() string {
	return a.text
}

// DataType is a named PostgreSQL type and the codec that parses it.
type DataType struct {
	Name    string
	Aliases []string

	// MinServerVersion is a semver constraint such as ">= 14". Empty means every server version.
	MinServerVersion string

	parse      func(src string) (pgtype.Value, error)
	parseArray func(src string) (Array, error)
}

// NewDataType returns a DataType that parses name with codec. Its array type uses pgtype.ArrayCodec with codec as
// the element codec.
func NewDataType[T pgtype.Value, C pgtype.Codec[T]](name string, codec C) *DataType {
	arrayCodec := pgtype.NewArrayCodec[T, C](codec)

	return &DataType{
		Name: name,
		parse: func(src string) (pgtype.Value, error) {
			v, err := codec.SafeFrom(src).Get()
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		parseArray: func(src string) (Array, error) {
			elements, err := arrayCodec.Parse(src)
			if err != nil {
				return Array{}, err
			}

			a := Array{text: arrayCodec.SerializeNullable(elements)}
			if elements != nil {
				a.Elements = make([]pgtype.Value, len(elements))
				for i, e := range elements {
					if e != nil {
						a.Elements[i] = *e
					}
				}
			}
			return a, nil
		},
	}
}

// Parse parses src as a value of dt.
func (dt *DataType) Parse(src string) (pgtype.Value, error) {
	return dt.parse(src)
}

// ParseArray parses src as an array of dt.
func (dt *DataType) ParseArray(src string) (Array, error) {
	if dt.parseArray == nil {
		return Array{}, fmt.Errorf("%w: %s[]", ErrUnknownType, dt.Name)
	}
	return dt.parseArray(src)
}

// arrayType returns the DataType for arrays of dt.
func (dt *DataType) arrayType() *DataType {
	return &DataType{
		Name:             dt.Name + "[]",
		MinServerVersion: dt.MinServerVersion,
		parse: func(src string) (pgtype.Value, error) {
			a, err := dt.parseArray(src)
			if err != nil {
				return nil, err
			}
			return a, nil
		},
	}
}

// Config configures a TypeMap.
type Config struct {
	// ServerVersion is the server_version reported by PostgreSQL, e.g. "14.3" or "16.1 (Debian 16.1-1.pgdg120+1)".
	// Empty means the newest server.
	ServerVersion string

	// TimeZone is the IANA zone that timestamptz values are read and rendered in. Empty means UTC.
	TimeZone string

	Logger   Logger
	LogLevel LogLevel
}

// TypeMap maps PostgreSQL type names to codecs. RegisterDataType must not be called concurrently with other methods.
type TypeMap struct {
	serverVersion *semver.Version
	location      *time.Location
	logger        Logger
	logLevel      LogLevel

	nameToDataType map[string]*DataType
}

var leadingVersion = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*`)

func parseServerVersion(s string) (*semver.Version, error) {
	vs := leadingVersion.FindString(strings.TrimSpace(s))
	if vs == "" {
		return nil, fmt.Errorf("invalid server version %q", s)
	}
	v, err := semver.NewVersion(vs)
	if err != nil {
		return nil, fmt.Errorf("invalid server version %q: %w", s, err)
	}
	return v, nil
}

// NewTypeMap returns a TypeMap with every built-in type supported by config.ServerVersion registered.
func NewTypeMap(config Config) (*TypeMap, error) {
	m := &TypeMap{
		location:       time.UTC,
		logger:         config.Logger,
		logLevel:       config.LogLevel,
		nameToDataType: make(map[string]*DataType, 128),
	}

	if m.logLevel == 0 {
		m.logLevel = LogLevelInfo
	}

	if config.ServerVersion != "" {
		v, err := parseServerVersion(config.ServerVersion)
		if err != nil {
			return nil, err
		}
		m.serverVersion = v
	}

	if config.TimeZone != "" {
		loc, err := time.LoadLocation(config.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("invalid time zone %q: %w", config.TimeZone, err)
		}
		m.location = loc
	}

	for _, dt := range builtinDataTypes(m.location) {
		err := m.RegisterDataType(dt)
		if errors.Is(err, ErrUnsupportedServerVersion) {
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *TypeMap) supports(dt *DataType) (bool, error) {
	if dt.MinServerVersion == "" || m.serverVersion == nil {
		return true, nil
	}

	c, err := semver.NewConstraint(dt.MinServerVersion)
	if err != nil {
		return false, fmt.Errorf("invalid server version constraint %q for %s: %w", dt.MinServerVersion, dt.Name, err)
	}
	return c.Check(m.serverVersion), nil
}

// RegisterDataType registers dt under its name and aliases, replacing any type already registered under them.
func (m *TypeMap) RegisterDataType(dt *DataType) error {
	ok, err := m.supports(dt)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s requires %s, server is %s", ErrUnsupportedServerVersion, dt.Name, dt.MinServerVersion, m.serverVersion)
	}

	m.nameToDataType[normalizeTypeName(dt.Name)] = dt
	for _, alias := range dt.Aliases {
		m.nameToDataType[normalizeTypeName(alias)] = dt
	}
	return nil
}

func normalizeTypeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// DataTypeForName finds the type for name. name may be a registered name or alias, an array of one written as
// "name[]" or "_name", or "bit(n)", "varbit(n)" or "bit varying(n)".
func (m *TypeMap) DataTypeForName(name string) (*DataType, bool) {
	name = normalizeTypeName(name)

	if dt, ok := m.nameToDataType[name]; ok {
		return dt, true
	}

	if elem, ok := strings.CutSuffix(name, "[]"); ok {
		return m.arrayTypeForName(elem)
	}
	if elem, ok := strings.CutPrefix(name, "_"); ok {
		return m.arrayTypeForName(elem)
	}

	if base, n, ok := splitLengthModifier(name); ok {
		if dt, ok := m.nameToDataType[base]; ok {
			switch dt.Name {
			case "bit":
				return NewDataType[pgtype.Bit](name, pgtype.BitCodec{N: n}), true
			case "varbit":
				return NewDataType[pgtype.Varbit](name, pgtype.VarbitCodec{N: n}), true
			}
		}
	}

	return nil, false
}

func (m *TypeMap) arrayTypeForName(elem string) (*DataType, bool) {
	dt, ok := m.DataTypeForName(elem)
	if !ok || dt.parseArray == nil {
		return nil, false
	}
	return dt.arrayType(), true
}

// splitLengthModifier splits "bit(3)" into "bit" and 3.
func splitLengthModifier(name string) (string, int, bool) {
	open := strings.IndexByte(name, '(')
	if open <= 0 || !strings.HasSuffix(name, ")") {
		return "", 0, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(name[open+1 : len(name)-1]))
	if err != nil || n < 1 {
		return "", 0, false
	}
	return strings.TrimSpace(name[:open]), n, true
}

// Names returns every registered name and alias in sorted order.
func (m *TypeMap) Names() []string {
	names := make([]string, 0, len(m.nameToDataType))
	for name := range m.nameToDataType {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse parses src as a value of the type named name. Validation failures are returned as *pgtype.Error.
func (m *TypeMap) Parse(ctx context.Context, name, src string) (pgtype.Value, error) {
	dt, ok := m.DataTypeForName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}

	v, err := dt.Parse(src)
	m.logParse(ctx, dt.Name, src, err)
	return v, err
}

// ParseArray parses src as an array whose elements are of the type named name. name may also be the array type
// itself.
func (m *TypeMap) ParseArray(ctx context.Context, name, src string) ([]pgtype.Value, error) {
	elemName := normalizeTypeName(name)
	if _, ok := m.nameToDataType[elemName]; !ok {
		if s, ok := strings.CutSuffix(elemName, "[]"); ok {
			elemName = s
		} else if s, ok := strings.CutPrefix(elemName, "_"); ok {
			elemName = s
		}
	}

	dt, ok := m.DataTypeForName(elemName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}

	a, err := dt.ParseArray(src)
	m.logParse(ctx, dt.Name+"[]", src, err)
	if err != nil {
		return nil, err
	}
	return a.Elements, nil
}

func (m *TypeMap) shouldLog(lvl LogLevel) bool {
	return m.logger != nil && m.logLevel >= lvl
}

func (m *TypeMap) logParse(ctx context.Context, typeName, src string, err error) {
	if err != nil {
		if m.shouldLog(LogLevelWarn) {
			data := map[string]any{"type": typeName, "src": logSrc(src), "err": err}
			var pgErr *pgtype.Error
			if errors.As(err, &pgErr) {
				data["issue"] = string(pgErr.Code())
			}
			m.logger.Log(ctx, LogLevelWarn, "Parse", data)
		}
		return
	}

	if m.shouldLog(LogLevelDebug) {
		m.logger.Log(ctx, LogLevelDebug, "Parse", map[string]any{"type": typeName, "src": logSrc(src)})
	}
}

func withAliases(dt *DataType, aliases ...string) *DataType {
	dt.Aliases = aliases
	return dt
}

func multirange(dt *DataType) *DataType {
	dt.MinServerVersion = ">= 14"
	return dt
}

func builtinDataTypes(loc *time.Location) []*DataType {
	tz := pgtype.TimestamptzCodec{Location: loc}

	return []*DataType{
		withAliases(NewDataType[pgtype.Int2]("int2", pgtype.Int2Codec{}), "smallint"),
		withAliases(NewDataType[pgtype.Int4]("int4", pgtype.Int4Codec{}), "integer", "int"),
		withAliases(NewDataType[pgtype.Int8]("int8", pgtype.Int8Codec{}), "bigint"),
		withAliases(NewDataType[pgtype.Float4]("float4", pgtype.Float4Codec{}), "real"),
		withAliases(NewDataType[pgtype.Float8]("float8", pgtype.Float8Codec{}), "double precision"),
		withAliases(NewDataType[pgtype.Numeric]("numeric", pgtype.NumericCodec{}), "decimal"),
		NewDataType[pgtype.Money]("money", pgtype.MoneyCodec{}),

		NewDataType[pgtype.Date]("date", pgtype.DateCodec{}),
		withAliases(NewDataType[pgtype.Time]("time", pgtype.TimeCodec{}), "time without time zone"),
		withAliases(NewDataType[pgtype.TimeTZ]("timetz", pgtype.TimeTZCodec{}), "time with time zone"),
		withAliases(NewDataType[pgtype.Timestamp]("timestamp", pgtype.TimestampCodec{}), "timestamp without time zone"),
		withAliases(NewDataType[pgtype.Timestamptz]("timestamptz", tz), "timestamp with time zone"),

		NewDataType[pgtype.Point]("point", pgtype.PointCodec{}),
		NewDataType[pgtype.Line]("line", pgtype.LineCodec{}),
		NewDataType[pgtype.Lseg]("lseg", pgtype.LsegCodec{}),
		NewDataType[pgtype.Box]("box", pgtype.BoxCodec{}),
		NewDataType[pgtype.Path]("path", pgtype.PathCodec{}),
		NewDataType[pgtype.Polygon]("polygon", pgtype.PolygonCodec{}),
		NewDataType[pgtype.Circle]("circle", pgtype.CircleCodec{}),

		NewDataType[pgtype.Bit]("bit", pgtype.BitCodec{}),
		withAliases(NewDataType[pgtype.Varbit]("varbit", pgtype.VarbitCodec{}), "bit varying"),
		NewDataType[pgtype.UUID]("uuid", pgtype.UUIDCodec{}),
		NewDataType[pgtype.JSON]("json", pgtype.JSONCodec{}),

		NewDataType[pgtype.Int4Range]("int4range", pgtype.Int4RangeCodec),
		NewDataType[pgtype.Int8Range]("int8range", pgtype.Int8RangeCodec),
		NewDataType[pgtype.NumRange]("numrange", pgtype.NumRangeCodec),
		NewDataType[pgtype.DateRange]("daterange", pgtype.DateRangeCodec),
		NewDataType[pgtype.TsRange]("tsrange", pgtype.TsRangeCodec),
		NewDataType[pgtype.TstzRange]("tstzrange", pgtype.RangeCodec[pgtype.Timestamptz, pgtype.TimestamptzCodec]{Element: tz}),

		multirange(NewDataType[pgtype.Int4MultiRange]("int4multirange", pgtype.Int4MultiRangeCodec)),
		multirange(NewDataType[pgtype.Int8MultiRange]("int8multirange", pgtype.Int8MultiRangeCodec)),
		multirange(NewDataType[pgtype.NumMultiRange]("nummultirange", pgtype.NumMultiRangeCodec)),
		multirange(NewDataType[pgtype.DateMultiRange]("datemultirange", pgtype.DateMultiRangeCodec)),
		multirange(NewDataType[pgtype.TsMultiRange]("tsmultirange", pgtype.TsMultiRangeCodec)),
		multirange(NewDataType[pgtype.TstzMultiRange]("tstzmultirange", pgtype.MultiRangeCodec[pgtype.Timestamptz, pgtype.TimestamptzCodec]{Element: tz})),
	}
}
