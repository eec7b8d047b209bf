package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/segmentio/ksuid"
)

// BlobWriter writes one whole blob to a file. The default path is
// create-or-truncate then write, which is what the on-disk formats
// expect; Atomic swaps in a rename from a temp file for callers that
// want crash safety.
type BlobWriter struct {
	config BlobWriterConfig
}

// NewBlobWriter creates a blob writer for the configured path
func NewBlobWriter(config BlobWriterConfig) *BlobWriter {
	return &BlobWriter{config: config}
}

// Write stores the blob at the configured path. The file handle is
// scoped to this call and released on every exit path.
func (w *BlobWriter) Write(blob []byte) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(w.config.FilePath), 0750); err != nil {
		return err
	}

	target := w.config.FilePath
	if w.config.Atomic {
		// The ksuid keeps concurrent writers to the same path from
		// colliding on the temp name.
		target = fmt.Sprintf("%s.%s.tmp", w.config.FilePath, ksuid.New().String())
	}

	if err := w.writeFile(target, blob); err != nil {
		if w.config.Atomic {
			os.Remove(target)
		}
		return err
	}

	if w.config.Atomic {
		return os.Rename(target, w.config.FilePath)
	}
	return nil
}

func (w *BlobWriter) writeFile(path string, blob []byte) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}

	writer := bufio.NewWriterSize(file, w.config.BufferSize)
	if _, err := writer.Write(blob); err != nil {
		file.Close()
		return err
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return err
	}

	if w.config.FsyncOnWrite {
		if err := file.Sync(); err != nil {
			file.Close()
			return err
		}
	}

	return file.Close()
}

// Path returns the file path
func (w *BlobWriter) Path() string {
	return w.config.FilePath
}
