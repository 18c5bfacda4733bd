package rowkey

import (
	"fmt"
	"iter"

	"github.com/arloliu/zorder/compress"
	"github.com/arloliu/zorder/endian"
	"github.com/arloliu/zorder/format"
	"github.com/arloliu/zorder/internal/hash"
	"github.com/arloliu/zorder/internal/options"
	"github.com/arloliu/zorder/pool"
)

// MagicKeyBatchV1 is the version 1 magic number for the key batch format.
const MagicKeyBatchV1 uint16 = 0xEC10

// Key batch layout, little-endian:
//
//	magic      uint16
//	compression uint8
//	reserved   uint8
//	keyLength  uint32
//	keyCount   uint32
//	checksum   uint64 (xxHash64 of the uncompressed key payload)
//	payload    keyLength*keyCount bytes, compressed per the compression field
const batchHeaderSize = 20

// BatchEncoder accumulates the composite keys of many rows and assembles
// them into one self-describing batch for the consuming sort/merge stage.
//
// The zero compression default keeps Finish allocation-light; batches that
// are staged or shipped can opt into a codec via WithCompression.
type BatchEncoder struct {
	encoder     *Encoder
	codec       compress.Codec
	compression format.CompressionType
	payload     *pool.ByteBuffer
	engine      endian.EndianEngine
	count       int
}

// BatchEncoderOption is a functional option for configuring a BatchEncoder.
type BatchEncoderOption = options.Option[*BatchEncoder]

// WithCompression selects the codec applied to the key payload when the
// batch is finished. The default is format.CompressionNone.
func WithCompression(compressionType format.CompressionType) BatchEncoderOption {
	return options.New(func(be *BatchEncoder) error {
		codec, err := compress.CreateCodec(compressionType, "key batch")
		if err != nil {
			return err
		}

		be.codec = codec
		be.compression = compressionType

		return nil
	})
}

// NewBatchEncoder creates a batch encoder for the given schema.
func NewBatchEncoder(schema *Schema, opts ...BatchEncoderOption) (*BatchEncoder, error) {
	be := &BatchEncoder{
		encoder:     NewEncoder(schema),
		codec:       compress.NewNoOpCompressor(),
		compression: format.CompressionNone,
		payload:     pool.GetBatchBuffer(),
		engine:      endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(be, opts...); err != nil {
		pool.PutBatchBuffer(be.payload)
		be.payload = nil

		return nil, err
	}

	return be, nil
}

// Append encodes one row and adds its key to the batch.
//
// Panics if Finish() has been called (nil payload buffer).
func (be *BatchEncoder) Append(row Row) error {
	if be.payload == nil {
		panic("batch encoder already finished - cannot append after Finish()")
	}

	key, err := be.encoder.Encode(row)
	if err != nil {
		return err
	}

	be.payload.MustWrite(key)
	be.count++

	return nil
}

// Count returns the number of keys appended so far.
func (be *BatchEncoder) Count() int {
	return be.count
}

// KeyLength returns the width in bytes of every key in the batch.
func (be *BatchEncoder) KeyLength() int {
	return be.encoder.KeyLength()
}

// Finish assembles the batch (header + compressed payload), returns the
// payload buffer to the pool, and renders the encoder unusable.
//
// The returned slice is newly allocated and owned by the caller.
func (be *BatchEncoder) Finish() ([]byte, error) {
	if be.payload == nil {
		panic("batch encoder already finished")
	}

	raw := be.payload.Bytes()
	checksum := hash.Sum64(raw)

	compressed, err := be.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress key batch: %w", err)
	}

	out := make([]byte, 0, batchHeaderSize+len(compressed))
	out = be.engine.AppendUint16(out, MagicKeyBatchV1)
	out = append(out, byte(be.compression), 0)
	out = be.engine.AppendUint32(out, uint32(be.encoder.KeyLength())) //nolint:gosec
	out = be.engine.AppendUint32(out, uint32(be.count))               //nolint:gosec
	out = be.engine.AppendUint64(out, checksum)
	out = append(out, compressed...)

	pool.PutBatchBuffer(be.payload)
	be.payload = nil
	be.count = 0

	return out, nil
}

// Batch is a decoded key batch: fixed-length keys ready for byte-wise
// lexicographic sorting.
type Batch struct {
	keys      []byte
	keyLength int
	count     int
}

// DecodeBatch parses a batch produced by BatchEncoder.Finish, decompresses
// the payload, and verifies its checksum.
func DecodeBatch(data []byte) (*Batch, error) {
	if len(data) < batchHeaderSize {
		return nil, fmt.Errorf("key batch truncated: %d bytes, header needs %d", len(data), batchHeaderSize)
	}

	engine := endian.GetLittleEndianEngine()
	if magic := engine.Uint16(data[0:2]); magic != MagicKeyBatchV1 {
		return nil, fmt.Errorf("invalid key batch magic: 0x%04X", magic)
	}

	compression := format.CompressionType(data[2])
	keyLength := int(engine.Uint32(data[4:8]))
	count := int(engine.Uint32(data[8:12]))
	checksum := engine.Uint64(data[12:20])

	codec, err := compress.CreateCodec(compression, "key batch")
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[batchHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("decompress key batch: %w", err)
	}

	if hash.Sum64(payload) != checksum {
		return nil, fmt.Errorf("key batch checksum mismatch")
	}
	if len(payload) != keyLength*count {
		return nil, fmt.Errorf("key batch payload is %d bytes, expected %d keys of %d bytes",
			len(payload), count, keyLength)
	}

	return &Batch{keys: payload, keyLength: keyLength, count: count}, nil
}

// Len returns the number of keys in the batch.
func (b *Batch) Len() int {
	return b.count
}

// KeyLength returns the width in bytes of every key in the batch.
func (b *Batch) KeyLength() int {
	return b.keyLength
}

// At returns the key at the given index. The returned slice aliases the
// batch's payload and must not be modified.
func (b *Batch) At(index int) ([]byte, bool) {
	if index < 0 || index >= b.count {
		return nil, false
	}

	start := index * b.keyLength

	return b.keys[start : start+b.keyLength], true
}

// All returns an iterator over the keys in batch order.
func (b *Batch) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for i := 0; i < b.count; i++ {
			start := i * b.keyLength
			if !yield(b.keys[start : start+b.keyLength]) {
				return
			}
		}
	}
}
