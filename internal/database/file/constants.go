package file

// File naming
const (
	ExtJSON     = ".json"
	ExtZstd     = ".zst"
	TempPattern = ".tmp-*"
	DirPerm     = 0o755
)

// Error messages
const (
	ErrMsgEmptyDir         = "empty store directory"
	ErrMsgInvalidKey       = "invalid key %q"
	ErrMsgCreateDirFailed  = "failed to create store directory: %w"
	ErrMsgReadFailed       = "failed to read %s: %w"
	ErrMsgWriteFailed      = "failed to write %s: %w"
	ErrMsgDecompressFailed = "failed to decompress %s: %w"
	ErrMsgCompressFailed   = "failed to compress state: %w"
	ErrMsgRemoveFailed     = "failed to remove %s: %w"
)
