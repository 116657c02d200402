package pgtype

type (
	Int4Range = Range[Int4, Int4Codec]
	Int8Range = Range[Int8, Int8Codec]
	NumRange  = Range[Numeric, NumericCodec]
	DateRange = Range[Date, DateCodec]
	TsRange   = Range[Timestamp, TimestampCodec]
	TstzRange = Range[Timestamptz, TimestamptzCodec]

	Int4MultiRange = MultiRange[Int4, Int4Codec]
	Int8MultiRange = MultiRange[Int8, Int8Codec]
	NumMultiRange  = MultiRange[Numeric, NumericCodec]
	DateMultiRange = MultiRange[Date, DateCodec]
	TsMultiRange   = MultiRange[Timestamp, TimestampCodec]
	TstzMultiRange = MultiRange[Timestamptz, TimestamptzCodec]
)

var (
	Int4RangeCodec = RangeCodec[Int4, Int4Codec]{}
	Int8RangeCodec = RangeCodec[Int8, Int8Codec]{}
	NumRangeCodec  = RangeCodec[Numeric, NumericCodec]{}
	DateRangeCodec = RangeCodec[Date, DateCodec]{}
	TsRangeCodec   = RangeCodec[Timestamp, TimestampCodec]{}
	TstzRangeCodec = RangeCodec[Timestamptz, TimestamptzCodec]{}

	Int4MultiRangeCodec = MultiRangeCodec[Int4, Int4Codec]{}
	Int8MultiRangeCodec = MultiRangeCodec[Int8, Int8Codec]{}
	NumMultiRangeCodec  = MultiRangeCodec[Numeric, NumericCodec]{}
	DateMultiRangeCodec = MultiRangeCodec[Date, DateCodec]{}
	TsMultiRangeCodec   = MultiRangeCodec[Timestamp, TimestampCodec]{}
	TstzMultiRangeCodec = MultiRangeCodec[Timestamptz, TimestamptzCodec]{}
)
