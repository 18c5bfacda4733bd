package compress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/arloliu/zorder/format"
	"github.com/stretchr/testify/require"
)

// batchPayload builds a payload shaped like a sorted key batch: fixed-length
// keys with long shared prefixes.
func batchPayload(keyLen, count int) []byte {
	rng := rand.New(rand.NewSource(42))
	prefix := make([]byte, keyLen-2)
	rng.Read(prefix)

	payload := make([]byte, 0, keyLen*count)
	for i := 0; i < count; i++ {
		payload = append(payload, prefix...)
		payload = append(payload, byte(i>>8), byte(i))
	}

	return payload
}

func TestCreateCodec_AllTypes(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(ct, "keys")
		require.NoError(t, err, "type=%s", ct)
		require.NotNil(t, codec)
	}
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xEE), "keys")
	require.Error(t, err)
	require.Contains(t, err.Error(), "keys")
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionLZ4)
	require.NoError(t, err)
	require.IsType(t, LZ4Compressor{}, codec)

	_, err = GetCodec(format.CompressionType(0xEE))
	require.Error(t, err)
}

func TestCodec_Roundtrip(t *testing.T) {
	payload := batchPayload(24, 512)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, "type=%s", ct)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err, "type=%s", ct)
		require.True(t, bytes.Equal(payload, restored), "type=%s", ct)

		if ct != format.CompressionNone {
			require.Less(t, len(compressed), len(payload), "type=%s should shrink prefix-heavy keys", ct)
		}
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestCodec_CorruptedInput(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02}

	zstdCodec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	_, err = zstdCodec.Decompress(garbage)
	require.Error(t, err)
}
