package codec

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// EncodeSequence serializes an ordered list of uint32 values.
// Format: [CRC32(4)][Count(4)][Value(4)]...
func EncodeSequence(s []uint32) ([]byte, error) {
	buf := make([]byte, frameHeaderSize+4*len(s))
	binary.LittleEndian.PutUint32(buf[4:], uint32(len(s)))

	off := frameHeaderSize
	for _, v := range s {
		binary.LittleEndian.PutUint32(buf[off:], v)
		off += 4
	}

	binary.LittleEndian.PutUint32(buf[0:], crc32.ChecksumIEEE(buf[4:]))
	return buf, nil
}

// DecodeSequence deserializes a blob produced by EncodeSequence,
// preserving element order and count exactly.
func DecodeSequence(data []byte) ([]uint32, error) {
	if len(data) < frameHeaderSize {
		return nil, fmt.Errorf("sequence blob: %d bytes is shorter than frame header: %w", len(data), ErrTruncated)
	}

	if binary.LittleEndian.Uint32(data[0:4]) != crc32.ChecksumIEEE(data[4:]) {
		return nil, fmt.Errorf("sequence blob: checksum mismatch: %w", ErrCorruption)
	}

	count := int(binary.LittleEndian.Uint32(data[4:8]))
	if len(data)-frameHeaderSize != 4*count {
		return nil, fmt.Errorf("sequence blob: count %d does not match %d payload bytes: %w",
			count, len(data)-frameHeaderSize, ErrCorruption)
	}

	out := make([]uint32, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(data[frameHeaderSize+4*i:])
	}

	return out, nil
}
