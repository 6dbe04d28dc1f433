package codec

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/types"
)

// Sidecar XML layout:
//
//	<pixelpipe:sidecar version="1">
//	  <pixelpipe:order version="custom" list="rawprepare,0,...,gamma,0"/>
//	</pixelpipe:sidecar>
//
// Built-in versions omit the list attribute; the table is looked up on read.
const sidecarFormatVersion = "1"

// EncodeSidecar renders a version tag plus, for custom orders, the full
// text-form list into a standalone XML document.
func EncodeSidecar(version types.Version, list *order.List) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("pixelpipe:sidecar")
	root.CreateAttr("version", sidecarFormatVersion)

	elem := root.CreateElement("pixelpipe:order")
	elem.CreateAttr("version", version.String())
	if !version.IsBuiltin() {
		if list == nil {
			return nil, errors.New(errors.ErrInvalidInput, "custom order requires a list")
		}
		elem.CreateAttr("list", EncodeText(list))
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// DecodeSidecar parses a sidecar document back into a version and, for
// custom orders, the embedded list. Malformed sidecars are discarded whole,
// like any other decode failure.
func DecodeSidecar(data []byte) (types.Version, *order.List, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return 0, nil, errors.Wrap(err, errors.ErrSidecarParse, "unreadable sidecar")
	}

	root := doc.SelectElement("pixelpipe:sidecar")
	if root == nil {
		return 0, nil, errors.New(errors.ErrSidecarParse, "missing sidecar root element")
	}
	if v := root.SelectAttrValue("version", ""); v != sidecarFormatVersion {
		return 0, nil, errors.Newf(errors.ErrSidecarParse, "unsupported sidecar format version %q", v)
	}

	elem := root.SelectElement("pixelpipe:order")
	if elem == nil {
		return 0, nil, errors.New(errors.ErrSidecarParse, "missing order element")
	}

	name := elem.SelectAttrValue("version", "")
	version, ok := types.ParseVersion(name)
	if !ok {
		// Tolerate numeric tags written by older builds
		n, err := strconv.Atoi(name)
		if err != nil {
			return 0, nil, errors.Newf(errors.ErrSidecarParse, "unknown order version %q", name)
		}
		version = types.Version(n)
	}

	if version.IsBuiltin() {
		return version, order.NewCanonicalList(version), nil
	}

	text := elem.SelectAttrValue("list", "")
	list, err := DecodeText(text)
	if err != nil {
		return 0, nil, errors.Wrap(err, errors.ErrSidecarParse, "embedded order list invalid")
	}
	return version, list, nil
}
