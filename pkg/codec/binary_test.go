package codec_test

import (
	"encoding/binary"
	"testing"

	"github.com/dusklight/pixelpipe/pkg/codec"
	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryRoundTrip(t *testing.T) {
	list := order.NewListFromEntries([]types.Entry{
		{Operation: "rawprepare"},
		{Operation: "exposure", Instance: 0},
		{Operation: "exposure", Instance: 3, Name: "sky"},
		{Operation: "gamma"},
	})

	blob := codec.EncodeBinary(list)
	decoded, err := codec.DecodeBinary(blob)
	require.NoError(t, err)

	require.Equal(t, list.Len(), decoded.Len())
	for i := 0; i < list.Len(); i++ {
		want := list.At(i)
		got := decoded.At(i)
		assert.Equal(t, want.Operation, got.Operation)
		assert.Equal(t, want.Instance, got.Instance)
		// Names are not durable in the binary form
		assert.Empty(t, got.Name)
		// Ranks are re-derived on load
		assert.Equal(t, i+1, got.Rank)
	}
}

func TestBinaryLayout(t *testing.T) {
	list := order.NewListFromEntries([]types.Entry{{Operation: "flip", Instance: 2}})
	blob := codec.EncodeBinary(list)

	// [int32 4]["flip"][int32 2], little-endian, no terminator
	require.Len(t, blob, 12)
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(blob[0:4]))
	assert.Equal(t, "flip", string(blob[4:8]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(blob[8:12]))
}

func TestDecodeBinaryRejects(t *testing.T) {
	valid := codec.EncodeBinary(order.NewListFromOperations([]string{"rawprepare", "gamma"}))

	t.Run("truncated_blob", func(t *testing.T) {
		_, err := codec.DecodeBinary(valid[:len(valid)-2])
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDecodeInvalid))
	})

	t.Run("name_length_out_of_bounds", func(t *testing.T) {
		blob := make([]byte, 4)
		binary.LittleEndian.PutUint32(blob, 21)
		_, err := codec.DecodeBinary(blob)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDecodeInvalid))
	})

	t.Run("negative_name_length", func(t *testing.T) {
		blob := make([]byte, 4)
		binary.LittleEndian.PutUint32(blob, ^uint32(0)) // -1
		_, err := codec.DecodeBinary(blob)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDecodeInvalid))
	})

	t.Run("instance_out_of_bounds", func(t *testing.T) {
		var blob []byte
		scratch := make([]byte, 4)
		binary.LittleEndian.PutUint32(scratch, 4)
		blob = append(blob, scratch...)
		blob = append(blob, "flip"...)
		binary.LittleEndian.PutUint32(scratch, 1001)
		blob = append(blob, scratch...)

		_, err := codec.DecodeBinary(blob)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDecodeInvalid))
	})
}

func TestDecodeBinaryEmpty(t *testing.T) {
	list, err := codec.DecodeBinary(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Len())
}
