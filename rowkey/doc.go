// Package rowkey turns rows of typed column values into composite Z-order
// sort keys.
//
// A Schema declares the participating columns: their types, the
// truncate-or-fill width for variable-length columns, and the column
// priority order (declaration order). An Encoder validates each row against
// the schema, runs every value through the order-preserving byte encodings
// in the encoding package, and interleaves the per-column bytes into one
// fixed-length key whose unsigned lexicographic order reflects all columns
// jointly.
//
// A BatchEncoder accumulates the keys of many rows and emits a
// self-describing batch: a small header (magic, compression, key geometry,
// xxHash64 checksum) followed by the optionally compressed key payload.
// DecodeBatch reverses this for the consuming sort or merge stage.
package rowkey
