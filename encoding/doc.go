// Package encoding defines the generic encoder/decoder interfaces used by
// the timestamp and value codecs in internal/gorilla.
//
// # Architecture
//
// The package is organized around two interfaces:
//
//	type ColumnarEncoder[T comparable] interface {
//	    Write(data T)
//	    WriteSlice(data []T)
//	    Bytes() []byte
//	    Len() int
//	    Size() int
//	    Reset()
//	    Finish()
//	}
//
//	type ColumnarDecoder[T comparable] interface {
//	    All(data []byte, count int) iter.Seq[T]
//	}
//
// internal/gorilla implements both for int64 timestamps (delta-of-delta)
// and float64 values (XOR/Gorilla). There is deliberately no random-access
// method: both wire formats are sequential bit streams with no index, so
// retrieving an arbitrary element requires decoding from the start.
package encoding
