package compress

// ZstdCompressor provides Zstandard compression for key batch payloads. It
// trades compression speed for ratio, which suits batches that are staged or
// shipped rather than consumed immediately.
//
// The implementation is selected at build time: the pure-Go
// klauspost/compress encoder by default, or valyala/gozstd when built with
// the zstdcgo tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
