package encoding

import (
	"iter"
	"time"

	"github.com/arloliu/zorder/endian"
	"github.com/arloliu/zorder/pool"
)

// Int96Size is the byte width of a packed Parquet INT96 timestamp record:
// nanos-of-day (8 bytes) followed by julian day (4 bytes), little-endian.
const Int96Size = 12

const (
	julianEpochOffsetDays = 2_440_588
	millisPerDay          = 24 * 60 * 60 * 1000
	nanosPerMilli         = 1_000_000
)

// Timestamp is a millisecond-precision point in time with sub-millisecond
// nanos, decoded from an INT96 column value.
type Timestamp struct {
	// EpochMillis is the number of milliseconds since the Unix epoch.
	EpochMillis int64
	// NanosOfMilli is the nanosecond remainder within the millisecond, in [0, 1e6).
	NanosOfMilli int32
}

// Time converts the timestamp to a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.Unix(0, t.EpochMillis*nanosPerMilli+int64(t.NanosOfMilli)).UTC()
}

// Compare returns -1, 0, or 1 depending on whether t is before, equal to, or
// after other.
func (t Timestamp) Compare(other Timestamp) int {
	switch {
	case t.EpochMillis < other.EpochMillis:
		return -1
	case t.EpochMillis > other.EpochMillis:
		return 1
	case t.NanosOfMilli < other.NanosOfMilli:
		return -1
	case t.NanosOfMilli > other.NanosOfMilli:
		return 1
	default:
		return 0
	}
}

// TimestampToOrderedBytes encodes a timestamp into 8 ordered bytes using its
// epoch-millisecond value. Sub-millisecond nanos do not participate in key
// ordering.
func TimestampToOrderedBytes(ts Timestamp, buf *pool.ByteBuffer) []byte {
	return LongToOrderedBytes(ts.EpochMillis, buf)
}

// TimestampDecoder decodes packed INT96 timestamp records as written by
// Parquet writers: 12 bytes per record, julian day + nanos-of-day,
// little-endian.
type TimestampDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[Timestamp] = TimestampDecoder{}

// NewTimestampDecoder creates an INT96 timestamp decoder using the specified
// endian engine. Parquet INT96 data is little-endian; pass
// endian.GetLittleEndianEngine() unless decoding a non-standard layout.
//
// The decoder is immutable and stateless, so it is returned by value and can
// be shared freely.
func NewTimestampDecoder(engine endian.EndianEngine) TimestampDecoder {
	return TimestampDecoder{engine: engine}
}

// All decodes all timestamps from the packed INT96 payload.
//
// The payload must hold count records of Int96Size bytes each; a shorter
// payload yields an empty sequence.
func (d TimestampDecoder) All(data []byte, count int) iter.Seq[Timestamp] {
	return func(yield func(Timestamp) bool) {
		if len(data) < count*Int96Size || count == 0 {
			return
		}

		for i := range count {
			start := i * Int96Size
			if !yield(d.decode(data[start : start+Int96Size])) {
				return
			}
		}
	}
}

// At retrieves the timestamp at the specified index from the packed INT96
// payload.
func (d TimestampDecoder) At(data []byte, index int, count int) (Timestamp, bool) {
	if len(data) == 0 || index < 0 || index >= count {
		return Timestamp{}, false
	}

	start := index * Int96Size
	if start+Int96Size > len(data) {
		return Timestamp{}, false
	}

	return d.decode(data[start : start+Int96Size]), true
}

// decode converts one 12-byte INT96 record into a Timestamp.
func (d TimestampDecoder) decode(rec []byte) Timestamp {
	nanosOfDay := int64(d.engine.Uint64(rec[0:8]))
	julianDay := int32(d.engine.Uint32(rec[8:12]))

	millis := int64(julianDay-julianEpochOffsetDays)*millisPerDay + nanosOfDay/nanosPerMilli

	return Timestamp{
		EpochMillis:  millis,
		NanosOfMilli: int32(nanosOfDay % nanosPerMilli),
	}
}
