package encoding

import "github.com/arloliu/zorder/pool"

// BytesTruncateOrFill fixes a variable-length byte sequence to exactly
// length bytes: inputs longer than length are truncated from the tail,
// shorter inputs are zero-padded.
//
// The returned slice is a view into buf, overwritten by the next call on the
// same buffer. The pad explicitly zeroes the tail so bytes left over from a
// previous, longer call never leak into the output.
func BytesTruncateOrFill(data []byte, length int, buf *pool.ByteBuffer) []byte {
	dst := reserve(buf, length)
	n := copy(dst, data)
	clear(dst[n:])

	return dst
}

// StringToOrderedBytes fixes a UTF-8 string to exactly length bytes using
// the same truncate-or-fill rule as BytesTruncateOrFill.
//
// Zero-padding preserves relative order only among values normalized to the
// same length; every value destined for the same key slot must use the same
// length.
func StringToOrderedBytes(s string, length int, buf *pool.ByteBuffer) []byte {
	dst := reserve(buf, length)
	n := copy(dst, s)
	clear(dst[n:])

	return dst
}
