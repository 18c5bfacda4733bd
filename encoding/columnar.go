package encoding

import "iter"

// ColumnarDecoder decodes fixed-width records of type T from a packed column
// payload, as produced by the columnar file reader feeding the key encoder.
type ColumnarDecoder[T any] interface {
	// All returns an iterator that yields all decoded values from the
	// provided column payload.
	//
	// The count parameter specifies the expected number of values. If the
	// payload is truncated or malformed the iterator may yield fewer values;
	// the caller should handle this case appropriately.
	All(data []byte, count int) iter.Seq[T]

	// At retrieves the value at the specified zero-based index from the
	// column payload. The count parameter bounds the valid index range.
	//
	// The second return value is false when the index is out of bounds or
	// the payload is too short.
	At(data []byte, index int, count int) (T, bool)
}
