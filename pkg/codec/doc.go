// Package codec converts typed records between their in-memory form and
// the byte-level representations saga persists to disk.
//
// Five representations are supported:
//
//   - uint32 as a base-10 decimal string
//   - uint32 as a fixed 4-byte big-endian buffer
//   - map[string]int32 as a CRC-framed, length-prefixed binary blob
//   - []uint32 as a CRC-framed, counted binary blob (order-preserving)
//   - the Institution compound record as JSON text and as CBOR
//
// # Framed Blob Format
//
// The mapping and sequence blobs share a common frame:
//
//	[CRC32(4)][Count(4)][payload]
//
// Fields:
//   - CRC32: IEEE checksum over every byte after the CRC field itself
//     (little-endian)
//   - Count: number of entries in the payload (little-endian)
//
// The mapping payload is a run of entries, each
// [KeyLen(4)][Key][Value int32(4)]; the sequence payload is Count
// little-endian uint32 values. The frame is self-describing: a blob can
// be reconstructed into the exact original value with no external schema.
//
// The fixed 4-byte integer encoding is big-endian, unlike the framed
// blobs, because that is the wire layout its files have always had.
//
// # Error Handling
//
// Decoders never panic on malformed input. Truncated payloads report
// ErrTruncated, checksum and structural failures report ErrCorruption,
// and the slice-based fixed-width decoder reports ErrSizeMismatch for any
// buffer that is not exactly 4 bytes. All sentinel errors work with
// errors.Is through wrapping.
//
// # Thread Safety
//
// Every function in this package is pure and safe for concurrent use.
package codec
