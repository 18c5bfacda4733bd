package rowkey

import (
	"bytes"
	"sort"
	"testing"
	"time"

	"github.com/arloliu/zorder/encoding"
	"github.com/arloliu/zorder/format"
	"github.com/arloliu/zorder/pool"
	"github.com/stretchr/testify/require"
)

func singleColumnSchema(t *testing.T, typ format.ColumnType, length int) *Schema {
	t.Helper()
	schema, err := NewSchema(Column{Name: "col", Type: typ, Length: length})
	require.NoError(t, err)

	return schema
}

func TestEncoder_SingleColumnOrdering(t *testing.T) {
	schema := singleColumnSchema(t, format.TypeInt64, 0)
	encoder := NewEncoder(schema)

	values := []int64{-500, -1, 0, 1, 42, 1 << 40}
	var keys [][]byte
	for _, v := range values {
		key, err := encoder.AppendKey(nil, Row{v})
		require.NoError(t, err)
		require.Len(t, key, schema.KeyLength())
		keys = append(keys, key)
	}

	require.True(t, sort.SliceIsSorted(keys, func(i, j int) bool {
		return bytes.Compare(keys[i], keys[j]) < 0
	}), "key order must match value order")
}

func TestEncoder_FirstColumnSignBitDominates(t *testing.T) {
	schema, err := NewSchema(
		Column{Name: "a", Type: format.TypeInt32},
		Column{Name: "b", Type: format.TypeInt32},
	)
	require.NoError(t, err)
	encoder := NewEncoder(schema)

	// The first column's sign bit is the first interleaved bit, so any
	// negative/positive split on column a decides the order before column b
	// contributes anything.
	neg, err := encoder.AppendKey(nil, Row{int32(-1), int32(1 << 30)})
	require.NoError(t, err)
	pos, err := encoder.AppendKey(nil, Row{int32(1), int32(-(1 << 30))})
	require.NoError(t, err)

	require.Equal(t, -1, bytes.Compare(neg, pos))
}

func TestEncoder_MatchesEncodingPackage(t *testing.T) {
	schema, err := NewSchema(
		Column{Name: "id", Type: format.TypeInt32},
		Column{Name: "name", Type: format.TypeString, Length: 8},
	)
	require.NoError(t, err)
	encoder := NewEncoder(schema)

	key, err := encoder.Encode(Row{int32(7), "widget"})
	require.NoError(t, err)

	idBuf := pool.NewByteBuffer(4)
	nameBuf := pool.NewByteBuffer(8)
	expected := encoding.InterleaveBits([][]byte{
		encoding.IntToOrderedBytes(7, idBuf),
		encoding.StringToOrderedBytes("widget", 8, nameBuf),
	}, schema.KeyLength())

	require.Equal(t, expected, key)
}

func TestEncoder_RowArityMismatch(t *testing.T) {
	schema := singleColumnSchema(t, format.TypeInt32, 0)
	encoder := NewEncoder(schema)

	_, err := encoder.Encode(Row{int32(1), int32(2)})
	require.Error(t, err)
	require.Contains(t, err.Error(), "schema has 1 columns")
}

func TestEncoder_TypeMismatch(t *testing.T) {
	schema, err := NewSchema(
		Column{Name: "n", Type: format.TypeInt32},
		Column{Name: "s", Type: format.TypeString, Length: 4},
	)
	require.NoError(t, err)
	encoder := NewEncoder(schema)

	// int64 into an Int32 column is a width mismatch, rejected before
	// encoding.
	_, err = encoder.Encode(Row{int64(1), "ok"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not match declared type Int32")

	_, err = encoder.Encode(Row{int32(1), []byte("ok")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not match declared type String")
}

func TestEncoder_AllColumnTypes(t *testing.T) {
	schema, err := NewSchema(
		Column{Name: "i8", Type: format.TypeInt8},
		Column{Name: "i16", Type: format.TypeInt16},
		Column{Name: "i32", Type: format.TypeInt32},
		Column{Name: "i64", Type: format.TypeInt64},
		Column{Name: "f32", Type: format.TypeFloat32},
		Column{Name: "f64", Type: format.TypeFloat64},
		Column{Name: "ts", Type: format.TypeTimestamp},
		Column{Name: "raw", Type: format.TypeBytes, Length: 6},
		Column{Name: "txt", Type: format.TypeString, Length: 10},
	)
	require.NoError(t, err)
	encoder := NewEncoder(schema)

	key, err := encoder.Encode(Row{
		int8(-3),
		int16(12),
		int32(-40000),
		int64(1 << 50),
		float32(2.5),
		float64(-0.125),
		encoding.Timestamp{EpochMillis: 1_700_000_000_000},
		[]byte{0xDE, 0xAD},
		"hello world, truncated",
	})
	require.NoError(t, err)
	require.Len(t, key, schema.KeyLength())
}

func TestEncoder_TimestampAcceptsTime(t *testing.T) {
	schema := singleColumnSchema(t, format.TypeTimestamp, 0)
	encoder := NewEncoder(schema)

	at := time.UnixMilli(1_700_000_000_000)

	fromTime, err := encoder.AppendKey(nil, Row{at})
	require.NoError(t, err)
	fromTimestamp, err := encoder.AppendKey(nil, Row{encoding.Timestamp{EpochMillis: at.UnixMilli()}})
	require.NoError(t, err)

	require.Equal(t, fromTime, fromTimestamp)
}

func TestEncoder_ViewOverwrittenByNextCall(t *testing.T) {
	schema := singleColumnSchema(t, format.TypeInt32, 0)
	encoder := NewEncoder(schema)

	first, err := encoder.Encode(Row{int32(1)})
	require.NoError(t, err)
	firstCopy := append([]byte(nil), first...)

	_, err = encoder.Encode(Row{int32(-1)})
	require.NoError(t, err)

	// The earlier view now reflects the newer key.
	require.NotEqual(t, firstCopy, first)
}

func TestEncoder_DeterministicAcrossCalls(t *testing.T) {
	schema, err := NewSchema(
		Column{Name: "a", Type: format.TypeInt64},
		Column{Name: "b", Type: format.TypeString, Length: 12},
	)
	require.NoError(t, err)
	encoder := NewEncoder(schema)

	row := Row{int64(99), "repeatable"}

	first, err := encoder.AppendKey(nil, row)
	require.NoError(t, err)

	// Disturb the scratch buffers with a different row, then re-encode.
	_, err = encoder.Encode(Row{int64(-99), "something else entirely"})
	require.NoError(t, err)

	second, err := encoder.AppendKey(nil, row)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
