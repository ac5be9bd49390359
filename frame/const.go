// Package frame implements the binary container around a Gorilla-encoded
// inner payload: the fixed-size InnerHeader, the versioned OuterHeader
// (V1/V2), and their big-endian serialization.
package frame

const (
	// Magic is the literal value stored in the outer header's first 8
	// bytes: the 7 ASCII characters "GORILLA" do not fit an 8-byte field,
	// so the format stores them with a leading zero byte. This exact value
	// must be written and verified; it is not meant to spell an 8-character
	// sentinel.
	Magic uint64 = 0x00474F52494C4C41

	// Version is the frame version this codec emits. ParseOuterHeader
	// rejects any higher version.
	Version uint16 = 1

	// InnerHeaderSize is the fixed size of InnerHeader in bytes.
	InnerHeaderSize = 32

	// OuterHeaderSizeV1 is the outer header size when no metrics-mode
	// fields are present.
	OuterHeaderSizeV1 = 80

	// OuterHeaderSizeV2 is the outer header size including scale_decimals.
	OuterHeaderSizeV2 = 84
)

// Flag bits for OuterHeader.Flags.
const (
	FlagMetricsMode uint32 = 0x1
	FlagCounter     uint32 = 0x2

	flagMask = FlagMetricsMode | FlagCounter
)
