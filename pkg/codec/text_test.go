package codec_test

import (
	"testing"

	"github.com/dusklight/pixelpipe/pkg/codec"
	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRoundTrip(t *testing.T) {
	list := order.NewListFromEntries([]types.Entry{
		{Operation: "rawprepare"},
		{Operation: "exposure", Instance: 0},
		{Operation: "exposure", Instance: 2},
		{Operation: "gamma"},
	})

	text := codec.EncodeText(list)
	assert.Equal(t, "rawprepare,0,exposure,0,exposure,2,gamma,0", text)

	decoded, err := codec.DecodeText(text)
	require.NoError(t, err)
	require.Equal(t, list.Len(), decoded.Len())
	for i := 0; i < list.Len(); i++ {
		assert.Equal(t, list.At(i).Operation, decoded.At(i).Operation)
		assert.Equal(t, list.At(i).Instance, decoded.At(i).Instance)
		assert.Equal(t, i+1, decoded.At(i).Rank)
	}
}

func TestTextRoundTripCanonical(t *testing.T) {
	for _, v := range []types.Version{types.VersionLegacy, types.VersionCurrent} {
		list := order.NewCanonicalList(v)
		decoded, err := codec.DecodeText(codec.EncodeText(list))
		require.NoError(t, err, v.String())
		assert.Equal(t, list.Entries(), decoded.Entries(), v.String())
	}
}

func TestDecodeTextRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.ErrorCode
	}{
		{"empty", "", errors.ErrDecodeInvalid},
		{"odd_fields", "rawprepare,0,gamma", errors.ErrDecodeInvalid},
		{"bad_instance", "rawprepare,zero,gamma,0", errors.ErrDecodeInvalid},
		{"instance_out_of_bounds", "rawprepare,0,gamma,1001", errors.ErrDecodeInvalid},
		{"name_too_long", "rawprepare,0,averyveryverylongmodulename,0,gamma,0", errors.ErrDecodeInvalid},
		{"missing_head_anchor", "temperature,0,gamma,0", errors.ErrDecodeAnchor},
		{"missing_tail_anchor", "rawprepare,0,colorout,0", errors.ErrDecodeAnchor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := codec.DecodeText(tt.in)
			require.Error(t, err)
			assert.Nil(t, list)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}
