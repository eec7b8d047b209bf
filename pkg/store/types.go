package store

// BlobWriterConfig holds configuration for the blob writer
type BlobWriterConfig struct {
	FilePath     string // Destination path
	FsyncOnWrite bool   // Fsync before closing the file
	Atomic       bool   // Write to a temp file, then rename into place
	BufferSize   int    // Write buffer size (<= 0 uses the bufio default)
}

// BlobReaderConfig holds configuration for the blob reader
type BlobReaderConfig struct {
	FilePath string // Path to the blob file
}

// FileStoreConfig holds configuration for the file store
type FileStoreConfig struct {
	DataDir      string // Directory relative paths resolve under ("" = cwd)
	FsyncOnWrite bool   // Fsync every persisted file
	AtomicWrites bool   // Use temp-file-and-rename for every persisted file
}

// Errors
var (
	ErrNotFound = &StoreError{"file not found"}
)

// StoreError represents a persistence error
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}
