// Package zorder builds order-preserving multi-dimensional (Z-order) sort
// keys for table-format storage engines that cluster rows by several columns
// at once.
//
// Each participating column value is converted into a fixed-length byte
// sequence whose unsigned lexicographic order matches the value's natural
// order, and the per-column sequences are bit-interleaved into one composite
// key. Sorting rows by the composite key with plain byte-wise comparison
// clusters them along all participating dimensions, which lets range queries
// over any of the columns prune files and row groups.
//
// # Core Features
//
//   - Ordered byte encodings for signed integers, IEEE floats, timestamps,
//     and truncate-or-fill normalized strings/bytes
//   - Round-robin bit interleaving over columns of different widths
//   - Reusable scratch buffers: zero allocations per row on the encode path
//   - Hash-based column identification (64-bit xxHash64)
//   - Self-describing key batches with optional compression (Zstd, S2, LZ4)
//     and xxHash64 checksums
//
// # Basic Usage
//
// Declaring a schema and encoding rows:
//
//	import "github.com/arloliu/zorder"
//
//	schema, _ := zorder.NewSchema(
//	    zorder.Column{Name: "event_time", Type: format.TypeInt64},
//	    zorder.Column{Name: "region", Type: format.TypeString, Length: 16},
//	)
//
//	encoder := zorder.NewRowKeyEncoder(schema)
//	key, _ := encoder.Encode(zorder.Row{int64(1700000000000), "eu-west-1"})
//	// key is valid until the next Encode call; copy it out to retain it.
//
// Accumulating keys for a whole write batch:
//
//	be, _ := zorder.NewBatchEncoder(schema, rowkey.WithCompression(format.CompressionS2))
//	for _, row := range rows {
//	    _ = be.Append(row)
//	}
//	data, _ := be.Finish()
//
// The resulting keys have no structure beyond their ordering contract:
// compare them with bytes.Compare and hand them to any sort/merge stage.
package zorder

import (
	"github.com/arloliu/zorder/internal/hash"
	"github.com/arloliu/zorder/rowkey"
)

// Column declares one participant of the composite sort key.
type Column = rowkey.Column

// Row holds one row's column values in schema order.
type Row = rowkey.Row

// ColumnID computes the unique 64-bit identifier of a column name using
// xxHash64.
func ColumnID(name string) uint64 {
	return hash.ID(name)
}

// NewSchema validates the column declarations and fixes the composite key
// geometry. Column order is priority order for interleaving.
func NewSchema(columns ...Column) (*rowkey.Schema, error) {
	return rowkey.NewSchema(columns...)
}

// NewRowKeyEncoder creates a row-at-a-time key encoder for the schema.
func NewRowKeyEncoder(schema *rowkey.Schema) *rowkey.Encoder {
	return rowkey.NewEncoder(schema)
}

// NewBatchEncoder creates a batch key encoder for the schema.
func NewBatchEncoder(schema *rowkey.Schema, opts ...rowkey.BatchEncoderOption) (*rowkey.BatchEncoder, error) {
	return rowkey.NewBatchEncoder(schema, opts...)
}
