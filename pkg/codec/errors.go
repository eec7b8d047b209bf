package codec

// Errors
var (
	ErrTruncated    = &CodecError{"payload truncated"}
	ErrCorruption   = &CodecError{"payload corruption detected"}
	ErrSizeMismatch = &CodecError{"buffer size mismatch"}
)

// CodecError represents a codec error
type CodecError struct {
	Message string
}

func (e *CodecError) Error() string {
	return e.Message
}
