// Package format defines the shared column type and compression enums used
// across the zorder module.
package format

type (
	ColumnType      uint8
	CompressionType uint8
)

const (
	TypeInt8      ColumnType = 0x1 // TypeInt8 represents a signed 8-bit integer column.
	TypeInt16     ColumnType = 0x2 // TypeInt16 represents a signed 16-bit integer column.
	TypeInt32     ColumnType = 0x3 // TypeInt32 represents a signed 32-bit integer column.
	TypeInt64     ColumnType = 0x4 // TypeInt64 represents a signed 64-bit integer column.
	TypeFloat32   ColumnType = 0x5 // TypeFloat32 represents an IEEE 754 32-bit float column.
	TypeFloat64   ColumnType = 0x6 // TypeFloat64 represents an IEEE 754 64-bit float column.
	TypeTimestamp ColumnType = 0x7 // TypeTimestamp represents a millisecond-precision timestamp column.
	TypeBytes     ColumnType = 0x8 // TypeBytes represents a variable-length byte column.
	TypeString    ColumnType = 0x9 // TypeString represents a variable-length UTF-8 string column.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c ColumnType) String() string {
	switch c {
	case TypeInt8:
		return "Int8"
	case TypeInt16:
		return "Int16"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	case TypeTimestamp:
		return "Timestamp"
	case TypeBytes:
		return "Bytes"
	case TypeString:
		return "String"
	default:
		return "Unknown"
	}
}

// FixedLength returns the encoded byte width of the column type, or 0 for
// variable-length types whose width is chosen by the caller.
func (c ColumnType) FixedLength() int {
	switch c {
	case TypeInt8:
		return 1
	case TypeInt16:
		return 2
	case TypeInt32, TypeFloat32:
		return 4
	case TypeInt64, TypeFloat64, TypeTimestamp:
		return 8
	default:
		return 0
	}
}

// IsVariableLength reports whether the column type requires a caller-chosen
// truncate-or-fill length.
func (c ColumnType) IsVariableLength() bool {
	return c == TypeBytes || c == TypeString
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
