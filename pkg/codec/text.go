package codec

import (
	"strconv"
	"strings"

	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/logging"
	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/types"
)

// EncodeText renders the list as comma-separated name,instance pairs in
// list order. Names carry no commas by construction (the binary charset
// bound applies), so no escaping is needed.
func EncodeText(list *order.List) string {
	return list.String()
}

// DecodeText parses the text form back into a renumbered list and runs the
// anchor sanity check: the first operation must be the canonical head and
// the last the canonical tail, guarding against the historically known
// truncation corruption. Violations discard the whole list.
func DecodeText(s string) (*order.List, error) {
	logger := logging.GetLogger("codec.text")

	if s == "" {
		return nil, errors.New(errors.ErrDecodeInvalid, "empty order text")
	}

	fields := strings.Split(s, ",")
	if len(fields)%2 != 0 {
		return nil, errors.Newf(errors.ErrDecodeInvalid, "odd field count %d", len(fields))
	}

	entries := make([]types.Entry, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		name := fields[i]
		if len(name) == 0 || len(name) > types.MaxOperationNameLen {
			logger.Warn().Str("name", name).Msg("order text rejected, bad operation name")
			return nil, errors.Newf(errors.ErrDecodeInvalid, "operation name %q out of bounds", name)
		}
		instance, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDecodeInvalid, "bad instance %q", fields[i+1])
		}
		if instance < 0 || instance > types.MaxInstance {
			return nil, errors.Newf(errors.ErrDecodeInvalid, "instance %d out of bounds", instance)
		}
		entries = append(entries, types.Entry{Operation: name, Instance: instance})
	}

	list := order.NewListFromEntries(entries)

	first := list.At(0).Operation
	last := list.At(list.Len() - 1).Operation
	if first != order.FirstOperation || last != order.LastOperation {
		logger.Warn().
			Str("first", first).
			Str("last", last).
			Msg("order text rejected, anchor operations out of position")
		return nil, errors.Newf(errors.ErrDecodeAnchor,
			"anchors %q..%q, want %q..%q", first, last, order.FirstOperation, order.LastOperation)
	}

	return list, nil
}
