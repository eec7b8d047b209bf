package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// BlobReader reads one whole blob file.
type BlobReader struct {
	config BlobReaderConfig
}

// NewBlobReader creates a blob reader for the configured path
func NewBlobReader(config BlobReaderConfig) *BlobReader {
	return &BlobReader{config: config}
}

// Read returns the full contents of the configured file. A missing file
// reports ErrNotFound so callers can branch without string matching.
func (r *BlobReader) Read() ([]byte, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", r.config.FilePath, ErrNotFound)
		}
		return nil, err
	}

	data, err := io.ReadAll(bufio.NewReader(file))
	if err != nil {
		file.Close()
		return nil, err
	}

	return data, file.Close()
}

// Path returns the file path
func (r *BlobReader) Path() string {
	return r.config.FilePath
}
