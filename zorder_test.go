package zorder_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/arloliu/zorder"
	"github.com/arloliu/zorder/format"
	"github.com/arloliu/zorder/rowkey"
	"github.com/stretchr/testify/require"
)

func TestColumnID(t *testing.T) {
	require.Equal(t, zorder.ColumnID("event_time"), zorder.ColumnID("event_time"))
	require.NotEqual(t, zorder.ColumnID("event_time"), zorder.ColumnID("region"))
}

func TestEndToEnd_RowKeys(t *testing.T) {
	schema, err := zorder.NewSchema(
		zorder.Column{Name: "event_time", Type: format.TypeInt64},
		zorder.Column{Name: "region", Type: format.TypeString, Length: 16},
	)
	require.NoError(t, err)
	require.Equal(t, 24, schema.KeyLength())

	encoder := zorder.NewRowKeyEncoder(schema)

	rows := []zorder.Row{
		{int64(3_000), "us-east-1"},
		{int64(1_000), "eu-west-1"},
		{int64(2_000), "ap-south-1"},
		{int64(1_000), "us-east-1"},
	}

	keys := make([][]byte, 0, len(rows))
	for _, row := range rows {
		key, err := encoder.AppendKey(nil, row)
		require.NoError(t, err)
		require.Len(t, key, schema.KeyLength())
		keys = append(keys, key)
	}

	// Keys are opaque to the sorter: plain byte comparison is the whole
	// contract.
	sort.Slice(keys, func(i, j int) bool { return bytes.Compare(keys[i], keys[j]) < 0 })

	for i := 1; i < len(keys); i++ {
		require.LessOrEqual(t, bytes.Compare(keys[i-1], keys[i]), 0)
	}
}

func TestEndToEnd_BatchRoundtrip(t *testing.T) {
	schema, err := zorder.NewSchema(
		zorder.Column{Name: "user_id", Type: format.TypeInt32},
		zorder.Column{Name: "score", Type: format.TypeFloat64},
	)
	require.NoError(t, err)

	be, err := zorder.NewBatchEncoder(schema, rowkey.WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.NoError(t, be.Append(zorder.Row{int32(i), float64(i) / 3}))
	}

	data, err := be.Finish()
	require.NoError(t, err)

	batch, err := rowkey.DecodeBatch(data)
	require.NoError(t, err)
	require.Equal(t, 100, batch.Len())
	require.Equal(t, schema.KeyLength(), batch.KeyLength())
}
