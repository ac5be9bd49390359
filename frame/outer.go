package frame

import (
	"unsafe"

	"github.com/gorillatsdb/tsgorilla/endian"
	"github.com/gorillatsdb/tsgorilla/errs"
)

// OuterHeader is the frame's fixed header, serialized big-endian as either
// 80 bytes (V1, no metrics-mode fields) or 84 bytes (V2, with
// ScaleDecimals). Which layout is written is determined by Flags: any flag
// in flagMask forces V2.
type OuterHeader struct {
	Count            uint32
	CompressedSize   uint32
	OriginalSize     uint32
	CRC32            uint32
	FirstTimestamp   int64
	FirstDelta       int32
	FirstValueBits   uint64
	TsBitLen         uint32
	ValBitLen        uint32
	TotalBits        uint32
	CompressionRatio float64
	CreationTime     int64
	Flags            Flags
	ScaleDecimals    uint32 // V2 only; ignored and zero for V1
}

// HeaderSize returns 84 if h.Flags requires V2, otherwise 80.
func (h OuterHeader) HeaderSize() uint16 {
	if h.Flags.RequiresV2() {
		return OuterHeaderSizeV2
	}

	return OuterHeaderSizeV1
}

// Bytes serializes h into its big-endian wire form, 80 or 84 bytes
// depending on HeaderSize.
func (h OuterHeader) Bytes() []byte {
	size := h.HeaderSize()
	b := make([]byte, size)
	engine := endian.GetBigEndianEngine()

	engine.PutUint64(b[0:8], Magic)
	engine.PutUint16(b[8:10], Version)
	engine.PutUint16(b[10:12], size)
	engine.PutUint32(b[12:16], h.Count)
	engine.PutUint32(b[16:20], h.CompressedSize)
	engine.PutUint32(b[20:24], h.OriginalSize)
	engine.PutUint32(b[24:28], h.CRC32)
	engine.PutUint64(b[28:36], uint64(h.FirstTimestamp))
	engine.PutUint32(b[36:40], uint32(h.FirstDelta))
	engine.PutUint64(b[40:48], h.FirstValueBits)
	engine.PutUint32(b[48:52], h.TsBitLen)
	engine.PutUint32(b[52:56], h.ValBitLen)
	engine.PutUint32(b[56:60], h.TotalBits)
	engine.PutUint64(b[60:68], *(*uint64)(unsafe.Pointer(&h.CompressionRatio)))
	engine.PutUint64(b[68:76], uint64(h.CreationTime))
	engine.PutUint32(b[76:80], uint32(h.Flags))

	if size == OuterHeaderSizeV2 {
		engine.PutUint32(b[80:84], h.ScaleDecimals)
	}

	return b
}

// ParseOuterHeader parses and validates the outer header at the start of
// data, returning the header and the number of bytes it occupied.
//
// Validation follows the frame format's parse contract: bad magic,
// unsupported version, and malformed header_size/lengths all fail fast.
// CRC32 is not checked here — Checksum must be recomputed by the caller
// against the inner payload and compared against h.CRC32, since a mismatch
// is a soft warning rather than a parse failure.
func ParseOuterHeader(data []byte) (h OuterHeader, headerSize int, err error) {
	if len(data) < OuterHeaderSizeV1 {
		return OuterHeader{}, 0, errs.ErrTruncated
	}

	engine := endian.GetBigEndianEngine()

	magic := engine.Uint64(data[0:8])
	if magic != Magic {
		return OuterHeader{}, 0, errs.ErrBadMagic
	}

	version := engine.Uint16(data[8:10])
	if version > Version {
		return OuterHeader{}, 0, errs.ErrUnsupportedVersion
	}

	size := engine.Uint16(data[10:12])
	if size != OuterHeaderSizeV1 && size != OuterHeaderSizeV2 {
		return OuterHeader{}, 0, errs.ErrBadHeader
	}
	if len(data) < int(size) {
		return OuterHeader{}, 0, errs.ErrTruncated
	}

	h.Count = engine.Uint32(data[12:16])
	h.CompressedSize = engine.Uint32(data[16:20])
	h.OriginalSize = engine.Uint32(data[20:24])
	h.CRC32 = engine.Uint32(data[24:28])

	firstTsUint := engine.Uint64(data[28:36])
	h.FirstTimestamp = *(*int64)(unsafe.Pointer(&firstTsUint))

	firstDeltaUint := engine.Uint32(data[36:40])
	h.FirstDelta = *(*int32)(unsafe.Pointer(&firstDeltaUint))

	h.FirstValueBits = engine.Uint64(data[40:48])
	h.TsBitLen = engine.Uint32(data[48:52])
	h.ValBitLen = engine.Uint32(data[52:56])
	h.TotalBits = engine.Uint32(data[56:60])

	ratioUint := engine.Uint64(data[60:68])
	h.CompressionRatio = *(*float64)(unsafe.Pointer(&ratioUint))

	creationUint := engine.Uint64(data[68:76])
	h.CreationTime = *(*int64)(unsafe.Pointer(&creationUint))

	h.Flags = Flags(engine.Uint32(data[76:80]))

	if size == OuterHeaderSizeV2 {
		h.ScaleDecimals = engine.Uint32(data[80:84])
	}

	if uint64(len(data)) < uint64(size)+uint64(h.CompressedSize) {
		return OuterHeader{}, 0, errs.ErrTruncated
	}

	if h.Flags.RequiresV2() && size != OuterHeaderSizeV2 {
		return OuterHeader{}, 0, errs.ErrBadHeader
	}

	return h, int(size), nil
}
