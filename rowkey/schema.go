package rowkey

import (
	"fmt"

	"github.com/arloliu/zorder/format"
	"github.com/arloliu/zorder/internal/hash"
)

// MaxColumnCount is the maximum number of columns participating in one
// composite key.
const MaxColumnCount = 64

// Column describes one participant of the composite sort key.
type Column struct {
	// Name identifies the column; its xxHash64 becomes the column ID.
	Name string
	// Type is the column's value type.
	Type format.ColumnType
	// Length is the truncate-or-fill width for variable-length columns
	// (Bytes, String). Fixed-width types imply their own width; setting a
	// conflicting Length is rejected.
	Length int
}

// Schema is the ordered set of columns participating in the composite key.
//
// Column order is priority order: within every interleaved bit plane the
// first column's bit is compared before the second column's, and so on.
// Which columns participate, and in what order, is the caller's decision;
// the schema only validates and fixes the geometry.
type Schema struct {
	columns []Column
	ids     []uint64
	lengths []int
	keyLen  int
}

// NewSchema validates the column declarations and fixes the key geometry.
//
// Variable-length columns must carry a positive Length; fixed-width columns
// may leave Length zero or repeat their implied width. Duplicate column IDs
// (xxHash64 of the name) are rejected.
func NewSchema(columns ...Column) (*Schema, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("schema requires at least one column")
	}
	if len(columns) > MaxColumnCount {
		return nil, fmt.Errorf("schema has %d columns, maximum is %d", len(columns), MaxColumnCount)
	}

	s := &Schema{
		columns: make([]Column, len(columns)),
		ids:     make([]uint64, len(columns)),
		lengths: make([]int, len(columns)),
	}
	copy(s.columns, columns)

	seen := make(map[uint64]string, len(columns))
	for i, col := range columns {
		if col.Name == "" {
			return nil, fmt.Errorf("column %d: name must not be empty", i)
		}

		length := col.Type.FixedLength()
		switch {
		case col.Type.IsVariableLength():
			if col.Length <= 0 {
				return nil, fmt.Errorf("column %q: type %s requires a positive length", col.Name, col.Type)
			}
			length = col.Length
		case length == 0:
			return nil, fmt.Errorf("column %q: unknown column type %d", col.Name, col.Type)
		case col.Length != 0 && col.Length != length:
			return nil, fmt.Errorf("column %q: length %d conflicts with %s width %d",
				col.Name, col.Length, col.Type, length)
		}

		id := hash.ID(col.Name)
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("column %q: ID collides with column %q", col.Name, prev)
		}
		seen[id] = col.Name

		s.ids[i] = id
		s.lengths[i] = length
		s.keyLen += length
	}

	return s, nil
}

// KeyLength returns the composite key width in bytes: the sum of the
// per-column encoded widths.
func (s *Schema) KeyLength() int {
	return s.keyLen
}

// NumColumns returns the number of participating columns.
func (s *Schema) NumColumns() int {
	return len(s.columns)
}

// ColumnID returns the xxHash64 ID of the i-th column.
func (s *Schema) ColumnID(i int) uint64 {
	return s.ids[i]
}

// ColumnLength returns the encoded byte width of the i-th column.
func (s *Schema) ColumnLength(i int) int {
	return s.lengths[i]
}

// Columns returns the column declarations in priority order. The returned
// slice must not be modified.
func (s *Schema) Columns() []Column {
	return s.columns
}
