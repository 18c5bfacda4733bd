// Package encoding implements order-preserving byte encodings and bit
// interleaving for multi-dimensional (Z-order) sort keys.
//
// Every primitive encoder produces a fixed-length byte sequence whose
// unsigned lexicographic order equals the value's numeric order. Signed
// integers are written big-endian with the sign bit flipped, which maps
// two's-complement order onto unsigned byte order. IEEE floats are written
// big-endian with the sign bit flipped for non-negative values and all bits
// inverted for negative values (including negative zero). NaN inputs encode
// deterministically but their order relative to other values is unspecified;
// callers must not rely on it.
//
// Variable-length values (byte slices, UTF-8 strings) are fixed to a
// caller-chosen length by truncating trailing bytes or zero-padding. The
// padded form preserves relative order only among values normalized to the
// same length, which holds because every value destined for the same key
// slot uses the same target length.
//
// InterleaveBits combines the per-column encodings into one composite key by
// round-robin bit interleaving, giving each participating column equal
// influence over the composite order at every bit plane while respecting
// the declared column order within a plane.
//
// All encoders write into a caller-owned pool.ByteBuffer and return a view
// into it. The view is overwritten by the next call on the same buffer;
// callers that retain encodings must copy them out. Buffers are not safe for
// concurrent use; use one buffer per goroutine.
package encoding
