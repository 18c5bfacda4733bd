package encoding

import (
	"math"

	"github.com/arloliu/zorder/endian"
	"github.com/arloliu/zorder/pool"
)

// PrimitiveBufferSize is the scratch capacity sufficient for any primitive
// ordered encoding (the widest primitive is 8 bytes).
const PrimitiveBufferSize = 8

// keyEngine is the byte order for ordered key bytes. Big-endian is required
// so that the most significant byte drives lexicographic comparison.
var keyEngine = endian.GetBigEndianEngine()

const (
	signMask8  = 0x80
	signMask16 = 0x8000
	signMask32 = 0x80000000
	signMask64 = 0x8000000000000000
)

// NewPrimitiveBuffer allocates a scratch buffer sized for any primitive
// ordered encoding.
func NewPrimitiveBuffer() *pool.ByteBuffer {
	return pool.NewByteBuffer(PrimitiveBufferSize)
}

// reserve positions the scratch buffer at the start and bounds it to n
// bytes. A buffer with capacity below n panics via SetLength; encoding never
// allocates when the buffer is already large enough.
func reserve(buf *pool.ByteBuffer, n int) []byte {
	buf.Reset()
	buf.SetLength(n)

	return buf.Slice(0, n)
}

// TinyToOrderedBytes encodes a signed 8-bit integer into 1 ordered byte.
func TinyToOrderedBytes(val int8, buf *pool.ByteBuffer) []byte {
	dst := reserve(buf, 1)
	dst[0] = uint8(val) ^ signMask8

	return dst
}

// ShortToOrderedBytes encodes a signed 16-bit integer into 2 ordered bytes.
func ShortToOrderedBytes(val int16, buf *pool.ByteBuffer) []byte {
	dst := reserve(buf, 2)
	keyEngine.PutUint16(dst, uint16(val)^signMask16)

	return dst
}

// IntToOrderedBytes encodes a signed 32-bit integer into 4 ordered bytes.
//
// The value is written big-endian with the sign bit flipped, so the most
// negative value becomes the lexicographically smallest sequence and the
// most positive the largest.
func IntToOrderedBytes(val int32, buf *pool.ByteBuffer) []byte {
	dst := reserve(buf, 4)
	keyEngine.PutUint32(dst, uint32(val)^signMask32)

	return dst
}

// LongToOrderedBytes encodes a signed 64-bit integer into 8 ordered bytes.
func LongToOrderedBytes(val int64, buf *pool.ByteBuffer) []byte {
	dst := reserve(buf, 8)
	keyEngine.PutUint64(dst, uint64(val)^signMask64)

	return dst
}

// FloatToOrderedBytes encodes an IEEE 754 32-bit float into 4 ordered bytes.
//
// The byte order matches IEEE total ordering for finite values and
// infinities. NaN order is unspecified.
func FloatToOrderedBytes(val float32, buf *pool.ByteBuffer) []byte {
	dst := reserve(buf, 4)
	keyEngine.PutUint32(dst, orderFloatBits32(math.Float32bits(val)))

	return dst
}

// DoubleToOrderedBytes encodes an IEEE 754 64-bit float into 8 ordered bytes.
//
// The byte order matches IEEE total ordering for finite values and
// infinities. NaN order is unspecified.
func DoubleToOrderedBytes(val float64, buf *pool.ByteBuffer) []byte {
	dst := reserve(buf, 8)
	keyEngine.PutUint64(dst, orderFloatBits64(math.Float64bits(val)))

	return dst
}

// orderFloatBits32 applies the monotonic float ordering transform: negative
// values (sign bit set) invert entirely, non-negative values invert only the
// sign bit. ^((bits>>31)-1) is all-ones when the sign bit is set and zero
// otherwise.
func orderFloatBits32(bits uint32) uint32 {
	return bits ^ (^((bits >> 31) - 1) | signMask32)
}

// orderFloatBits64 is the 64-bit analog of orderFloatBits32.
func orderFloatBits64(bits uint64) uint64 {
	return bits ^ (^((bits >> 63) - 1) | signMask64)
}
