// Package compress provides the compression codecs used for key batch
// payloads.
//
// Composite sort keys share long common prefixes within a sorted or
// near-sorted batch, which makes even fast codecs (S2, LZ4) effective. The
// batch encoder selects a codec through CreateCodec based on the configured
// format.CompressionType; CompressionNone is the default.
package compress
