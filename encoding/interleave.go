package encoding

import "github.com/arloliu/zorder/pool"

// InterleaveBits combines the source byte sequences into one totalLength-byte
// composite by round-robin bit interleaving: bit 0 of every source in source
// order, then bit 1 of every source, and so on, most significant bit first
// within each byte. Sources stop contributing once exhausted without shifting
// the relative priority of the remaining sources, so sources of different
// lengths interleave correctly. When every source runs dry before
// totalLength*8 bits, the remaining output bits are zero.
//
// The result is allocated; use InterleaveBitsInto in batch loops.
func InterleaveBits(sources [][]byte, totalLength int) []byte {
	out := make([]byte, totalLength)
	interleave(sources, out)

	return out
}

// InterleaveBitsInto is the buffer-reuse variant of InterleaveBits. It writes
// into buf positionally and returns a view of exactly totalLength bytes,
// overwritten by the next call on the same buffer. A buffer with capacity
// below totalLength panics.
func InterleaveBitsInto(sources [][]byte, totalLength int, buf *pool.ByteBuffer) []byte {
	dst := reserve(buf, totalLength)
	clear(dst)
	interleave(sources, dst)

	return dst
}

// interleave packs source bits into out, round-robin by bit plane. The
// cursor (srcByte, srcShift) advances over all sources in lockstep; sources
// shorter than the current byte position are skipped. out must be zeroed.
func interleave(sources [][]byte, out []byte) {
	totalBits := len(out) * 8
	outBit := 0

	for srcByte, srcShift := 0, 7; outBit < totalBits; {
		progressed := false
		for _, src := range sources {
			if srcByte >= len(src) {
				continue
			}
			progressed = true

			bit := (src[srcByte] >> uint(srcShift)) & 1
			out[outBit>>3] |= bit << uint(7-outBit&7)
			outBit++
			if outBit == totalBits {
				return
			}
		}
		if !progressed {
			// All sources exhausted; the remaining output bits stay zero.
			return
		}

		if srcShift == 0 {
			srcByte++
			srcShift = 7
		} else {
			srcShift--
		}
	}
}
