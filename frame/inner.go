package frame

import (
	"unsafe"

	"github.com/gorillatsdb/tsgorilla/endian"
	"github.com/gorillatsdb/tsgorilla/errs"
)

// InnerHeader is the fixed 32-byte header at the start of the inner
// payload, immediately followed by the timestamp and value bit streams.
type InnerHeader struct {
	Count          uint32 // byte offset 0-3
	FirstTimestamp int64  // byte offset 4-11
	FirstValueBits uint64 // byte offset 12-19
	FirstDelta     int32  // byte offset 20-23
	TsBitLen       uint32 // byte offset 24-27
	ValBitLen      uint32 // byte offset 28-31
}

// Bytes serializes h into a big-endian 32-byte slice.
func (h InnerHeader) Bytes() []byte {
	b := make([]byte, InnerHeaderSize)
	engine := endian.GetBigEndianEngine()

	engine.PutUint32(b[0:4], h.Count)
	engine.PutUint64(b[4:12], uint64(h.FirstTimestamp))
	engine.PutUint64(b[12:20], h.FirstValueBits)
	engine.PutUint32(b[20:24], uint32(h.FirstDelta))
	engine.PutUint32(b[24:28], h.TsBitLen)
	engine.PutUint32(b[28:32], h.ValBitLen)

	return b
}

// ParseInnerHeader parses a 32-byte big-endian InnerHeader from data.
func ParseInnerHeader(data []byte) (InnerHeader, error) {
	if len(data) < InnerHeaderSize {
		return InnerHeader{}, errs.ErrTruncated
	}

	engine := endian.GetBigEndianEngine()

	var h InnerHeader
	h.Count = engine.Uint32(data[0:4])

	firstTsUint := engine.Uint64(data[4:12])
	h.FirstTimestamp = *(*int64)(unsafe.Pointer(&firstTsUint))

	h.FirstValueBits = engine.Uint64(data[12:20])

	firstDeltaUint := engine.Uint32(data[20:24])
	h.FirstDelta = *(*int32)(unsafe.Pointer(&firstDeltaUint))

	h.TsBitLen = engine.Uint32(data[24:28])
	h.ValBitLen = engine.Uint32(data[28:32])

	return h, nil
}
