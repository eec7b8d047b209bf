package codec

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// frameHeaderSize is CRC32(4) + Count(4), shared by the mapping and
// sequence blob formats.
const frameHeaderSize = 8

// EncodeMapping serializes a string-to-int32 mapping into a
// self-describing binary blob.
// Format: [CRC32(4)][Count(4)] then per entry [KeyLen(4)][Key][Value(4)]
func EncodeMapping(m map[string]int32) ([]byte, error) {
	size := frameHeaderSize
	for k := range m {
		size += 4 + len(k) + 4
	}

	buf := make([]byte, size)
	binary.LittleEndian.PutUint32(buf[4:], uint32(len(m)))

	off := frameHeaderSize
	for k, v := range m {
		binary.LittleEndian.PutUint32(buf[off:], uint32(len(k)))
		off += 4
		copy(buf[off:], k)
		off += len(k)
		binary.LittleEndian.PutUint32(buf[off:], uint32(v))
		off += 4
	}

	binary.LittleEndian.PutUint32(buf[0:], crc32.ChecksumIEEE(buf[4:]))
	return buf, nil
}

// DecodeMapping deserializes a blob produced by EncodeMapping.
func DecodeMapping(data []byte) (map[string]int32, error) {
	if len(data) < frameHeaderSize {
		return nil, fmt.Errorf("mapping blob: %d bytes is shorter than frame header: %w", len(data), ErrTruncated)
	}

	if binary.LittleEndian.Uint32(data[0:4]) != crc32.ChecksumIEEE(data[4:]) {
		return nil, fmt.Errorf("mapping blob: checksum mismatch: %w", ErrCorruption)
	}

	count := int(binary.LittleEndian.Uint32(data[4:8]))
	// The smallest possible entry is KeyLen(4) + Value(4), which bounds
	// how many entries the payload can hold.
	if count > (len(data)-frameHeaderSize)/8 {
		return nil, fmt.Errorf("mapping blob: count %d exceeds %d payload bytes: %w",
			count, len(data)-frameHeaderSize, ErrCorruption)
	}
	m := make(map[string]int32, count)

	off := frameHeaderSize
	for i := 0; i < count; i++ {
		if len(data)-off < 4 {
			return nil, fmt.Errorf("mapping blob: entry %d: %w", i, ErrTruncated)
		}
		keyLen := int(binary.LittleEndian.Uint32(data[off:]))
		off += 4

		if len(data)-off < keyLen+4 {
			return nil, fmt.Errorf("mapping blob: entry %d: %w", i, ErrTruncated)
		}
		key := string(data[off : off+keyLen])
		off += keyLen
		value := int32(binary.LittleEndian.Uint32(data[off:]))
		off += 4

		if _, dup := m[key]; dup {
			return nil, fmt.Errorf("mapping blob: duplicate key %q: %w", key, ErrCorruption)
		}
		m[key] = value
	}

	if off != len(data) {
		return nil, fmt.Errorf("mapping blob: %d trailing bytes: %w", len(data)-off, ErrCorruption)
	}

	return m, nil
}
