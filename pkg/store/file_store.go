package store

import (
	"path/filepath"

	"github.com/saga-io/saga/pkg/codec"
)

// FileStore persists each representation of a typed record to a named
// file and reads it back. Every call opens, fully writes or fully reads,
// and closes its own file; no state is shared across operations.
type FileStore interface {
	PersistMapping(path string, m map[string]int32) error
	LoadMapping(path string) (map[string]int32, error)

	PersistSequence(path string, s []uint32) error
	LoadSequence(path string) ([]uint32, error)

	WriteUint32Bytes(path string, v uint32) error
	ReadUint32Bytes(path string) (uint32, error)
	WriteUint32String(path string, v uint32) error
	ReadUint32String(path string) (uint32, error)

	WriteInstitutionJSON(path string, r *codec.Institution) error
	ReadInstitutionJSON(path string) (*codec.Institution, error)
	WriteInstitutionCBOR(path string, r *codec.Institution) error
	ReadInstitutionCBOR(path string) (*codec.Institution, error)
}

// FileStoreImpl is the concrete implementation
type FileStoreImpl struct {
	config FileStoreConfig
}

// NewFileStore creates a new file store
func NewFileStore(config FileStoreConfig) FileStore {
	return &FileStoreImpl{config: config}
}

// resolve joins relative paths under the data directory; absolute paths
// are used as given.
func (s *FileStoreImpl) resolve(path string) string {
	if filepath.IsAbs(path) || s.config.DataDir == "" {
		return path
	}
	return filepath.Join(s.config.DataDir, path)
}

func (s *FileStoreImpl) write(path string, blob []byte) error {
	writer := NewBlobWriter(BlobWriterConfig{
		FilePath:     s.resolve(path),
		FsyncOnWrite: s.config.FsyncOnWrite,
		Atomic:       s.config.AtomicWrites,
	})
	return writer.Write(blob)
}

func (s *FileStoreImpl) read(path string) ([]byte, error) {
	reader := NewBlobReader(BlobReaderConfig{FilePath: s.resolve(path)})
	return reader.Read()
}

// PersistMapping serializes the mapping to its framed blob format and
// writes it to path.
func (s *FileStoreImpl) PersistMapping(path string, m map[string]int32) error {
	blob, err := codec.EncodeMapping(m)
	if err != nil {
		return err
	}
	return s.write(path, blob)
}

// LoadMapping reads and deserializes a mapping blob from path.
func (s *FileStoreImpl) LoadMapping(path string) (map[string]int32, error) {
	blob, err := s.read(path)
	if err != nil {
		return nil, err
	}
	return codec.DecodeMapping(blob)
}

// PersistSequence serializes the ordered list to its framed blob format
// and writes it to path.
func (s *FileStoreImpl) PersistSequence(path string, seq []uint32) error {
	blob, err := codec.EncodeSequence(seq)
	if err != nil {
		return err
	}
	return s.write(path, blob)
}

// LoadSequence reads and deserializes a sequence blob from path.
func (s *FileStoreImpl) LoadSequence(path string) ([]uint32, error) {
	blob, err := s.read(path)
	if err != nil {
		return nil, err
	}
	return codec.DecodeSequence(blob)
}

// WriteUint32Bytes writes v as a fixed 4-byte big-endian file.
func (s *FileStoreImpl) WriteUint32Bytes(path string, v uint32) error {
	buf := codec.EncodeUint32(v)
	return s.write(path, buf[:])
}

// ReadUint32Bytes reads a file that must hold exactly 4 bytes.
func (s *FileStoreImpl) ReadUint32Bytes(path string) (uint32, error) {
	blob, err := s.read(path)
	if err != nil {
		return 0, err
	}
	return codec.DecodeUint32Bytes(blob)
}

// WriteUint32String writes v as a UTF-8 decimal text file.
func (s *FileStoreImpl) WriteUint32String(path string, v uint32) error {
	return s.write(path, []byte(codec.FormatUint32(v)))
}

// ReadUint32String reads a decimal text file back into a uint32.
func (s *FileStoreImpl) ReadUint32String(path string) (uint32, error) {
	blob, err := s.read(path)
	if err != nil {
		return 0, err
	}
	return codec.ParseUint32(string(blob))
}

// WriteInstitutionJSON writes the record as a UTF-8 JSON text file.
func (s *FileStoreImpl) WriteInstitutionJSON(path string, r *codec.Institution) error {
	text, err := codec.MarshalInstitutionJSON(r)
	if err != nil {
		return err
	}
	return s.write(path, []byte(text))
}

// ReadInstitutionJSON reads and strictly parses a JSON record file.
func (s *FileStoreImpl) ReadInstitutionJSON(path string) (*codec.Institution, error) {
	blob, err := s.read(path)
	if err != nil {
		return nil, err
	}
	return codec.UnmarshalInstitutionJSON(string(blob))
}

// WriteInstitutionCBOR writes the record as a compact CBOR file.
func (s *FileStoreImpl) WriteInstitutionCBOR(path string, r *codec.Institution) error {
	blob, err := codec.MarshalInstitutionCBOR(r)
	if err != nil {
		return err
	}
	return s.write(path, blob)
}

// ReadInstitutionCBOR reads and decodes a CBOR record file.
func (s *FileStoreImpl) ReadInstitutionCBOR(path string) (*codec.Institution, error) {
	blob, err := s.read(path)
	if err != nil {
		return nil, err
	}
	return codec.UnmarshalInstitutionCBOR(blob)
}
