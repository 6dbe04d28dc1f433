package codec

import (
	"encoding/binary"

	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/logging"
	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/types"
)

// EncodeBinary renders the list as repeated
// [int32 name_length][name_bytes][int32 instance] records, little-endian,
// no trailing terminator. Ranks and names are not persisted.
func EncodeBinary(list *order.List) []byte {
	var buf []byte
	var scratch [4]byte
	for _, e := range list.Entries() {
		binary.LittleEndian.PutUint32(scratch[:], uint32(len(e.Operation)))
		buf = append(buf, scratch[:]...)
		buf = append(buf, e.Operation...)
		binary.LittleEndian.PutUint32(scratch[:], uint32(e.Instance))
		buf = append(buf, scratch[:]...)
	}
	return buf
}

// DecodeBinary parses a binary blob back into a renumbered list. Any bounds
// violation or truncated record aborts the whole decode; the caller must
// fall back to a default table.
func DecodeBinary(data []byte) (*order.List, error) {
	logger := logging.GetLogger("codec.binary")

	var entries []types.Entry
	off := 0
	for off < len(data) {
		if off+4 > len(data) {
			return nil, errors.Newf(errors.ErrDecodeInvalid, "truncated record at offset %d", off)
		}
		nameLen := int(int32(binary.LittleEndian.Uint32(data[off:])))
		off += 4
		if nameLen < 0 || nameLen > types.MaxOperationNameLen {
			logger.Warn().Int("nameLen", nameLen).Msg("binary order blob rejected, name length out of bounds")
			return nil, errors.Newf(errors.ErrDecodeInvalid, "name length %d out of bounds", nameLen)
		}
		if off+nameLen+4 > len(data) {
			return nil, errors.Newf(errors.ErrDecodeInvalid, "truncated record at offset %d", off)
		}
		name := string(data[off : off+nameLen])
		off += nameLen
		instance := int(int32(binary.LittleEndian.Uint32(data[off:])))
		off += 4
		if instance < 0 || instance > types.MaxInstance {
			logger.Warn().Int("instance", instance).Msg("binary order blob rejected, instance out of bounds")
			return nil, errors.Newf(errors.ErrDecodeInvalid, "instance %d out of bounds", instance)
		}
		entries = append(entries, types.Entry{Operation: name, Instance: instance})
	}

	return order.NewListFromEntries(entries), nil
}
