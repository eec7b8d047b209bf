package codec

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// Uint32Size is the exact width of the fixed binary encoding of a uint32.
const Uint32Size = 4

// FormatUint32 renders v in base-10.
func FormatUint32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

// ParseUint32 parses a base-10 string produced by FormatUint32.
func ParseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse uint32 %q: %w", s, err)
	}
	return uint32(v), nil
}

// EncodeUint32 encodes v as 4 big-endian bytes.
func EncodeUint32(v uint32) [Uint32Size]byte {
	var buf [Uint32Size]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return buf
}

// DecodeUint32 is the inverse of EncodeUint32. The fixed-size argument
// makes a wrong-width buffer unrepresentable.
func DecodeUint32(buf [Uint32Size]byte) uint32 {
	return binary.BigEndian.Uint32(buf[:])
}

// DecodeUint32Bytes decodes a slice that must hold exactly 4 bytes.
// Callers that already hold a [4]byte should use DecodeUint32 instead.
func DecodeUint32Bytes(b []byte) (uint32, error) {
	if len(b) != Uint32Size {
		return 0, fmt.Errorf("expected %d bytes, got %d: %w", Uint32Size, len(b), ErrSizeMismatch)
	}
	return binary.BigEndian.Uint32(b), nil
}
