package rowkey

import (
	"fmt"
	"time"

	"github.com/arloliu/zorder/encoding"
	"github.com/arloliu/zorder/format"
	"github.com/arloliu/zorder/pool"
)

// Row holds one row's column values in schema order. Each value must match
// its column's declared type; mismatches are rejected before any encoding
// happens.
type Row []any

// Encoder converts rows into composite Z-order keys.
//
// The encoder owns its scratch buffers and reuses them across calls, so
// encoding a row allocates nothing once the encoder is constructed. An
// Encoder is not safe for concurrent use; create one per goroutine.
type Encoder struct {
	schema  *Schema
	scratch []*pool.ByteBuffer
	sources [][]byte
	keyBuf  *pool.ByteBuffer
}

// NewEncoder creates a key encoder for the given schema.
func NewEncoder(schema *Schema) *Encoder {
	scratch := make([]*pool.ByteBuffer, schema.NumColumns())
	for i := range scratch {
		scratch[i] = pool.NewByteBuffer(schema.ColumnLength(i))
	}

	return &Encoder{
		schema:  schema,
		scratch: scratch,
		sources: make([][]byte, schema.NumColumns()),
		keyBuf:  pool.NewByteBuffer(schema.KeyLength()),
	}
}

// Schema returns the schema this encoder was built for.
func (e *Encoder) Schema() *Schema {
	return e.schema
}

// KeyLength returns the width in bytes of every key this encoder produces.
func (e *Encoder) KeyLength() int {
	return e.schema.KeyLength()
}

// Encode produces the composite sort key for one row.
//
// The returned slice is a view into the encoder's internal buffer and is
// overwritten by the next Encode call; callers that retain keys must copy
// them out (or use AppendKey).
func (e *Encoder) Encode(row Row) ([]byte, error) {
	if len(row) != e.schema.NumColumns() {
		return nil, fmt.Errorf("row has %d values, schema has %d columns",
			len(row), e.schema.NumColumns())
	}

	for i, col := range e.schema.columns {
		src, err := encodeColumn(col, e.schema.lengths[i], row[i], e.scratch[i])
		if err != nil {
			return nil, err
		}
		e.sources[i] = src
	}

	return encoding.InterleaveBitsInto(e.sources, e.schema.keyLen, e.keyBuf), nil
}

// AppendKey encodes row and appends the resulting key to dst, returning the
// extended slice. On error dst is returned unchanged.
func (e *Encoder) AppendKey(dst []byte, row Row) ([]byte, error) {
	key, err := e.Encode(row)
	if err != nil {
		return dst, err
	}

	return append(dst, key...), nil
}

// encodeColumn dispatches one value to the ordered-byte encoding declared by
// its column. A value whose dynamic type does not match the declaration is a
// type-width mismatch, rejected here at the boundary.
func encodeColumn(col Column, length int, val any, buf *pool.ByteBuffer) ([]byte, error) {
	switch col.Type {
	case format.TypeInt8:
		if v, ok := val.(int8); ok {
			return encoding.TinyToOrderedBytes(v, buf), nil
		}
	case format.TypeInt16:
		if v, ok := val.(int16); ok {
			return encoding.ShortToOrderedBytes(v, buf), nil
		}
	case format.TypeInt32:
		if v, ok := val.(int32); ok {
			return encoding.IntToOrderedBytes(v, buf), nil
		}
	case format.TypeInt64:
		if v, ok := val.(int64); ok {
			return encoding.LongToOrderedBytes(v, buf), nil
		}
	case format.TypeFloat32:
		if v, ok := val.(float32); ok {
			return encoding.FloatToOrderedBytes(v, buf), nil
		}
	case format.TypeFloat64:
		if v, ok := val.(float64); ok {
			return encoding.DoubleToOrderedBytes(v, buf), nil
		}
	case format.TypeTimestamp:
		switch v := val.(type) {
		case encoding.Timestamp:
			return encoding.TimestampToOrderedBytes(v, buf), nil
		case time.Time:
			return encoding.LongToOrderedBytes(v.UnixMilli(), buf), nil
		}
	case format.TypeBytes:
		if v, ok := val.([]byte); ok {
			return encoding.BytesTruncateOrFill(v, length, buf), nil
		}
	case format.TypeString:
		if v, ok := val.(string); ok {
			return encoding.StringToOrderedBytes(v, length, buf), nil
		}
	}

	return nil, fmt.Errorf("column %q: value of type %T does not match declared type %s",
		col.Name, val, col.Type)
}
