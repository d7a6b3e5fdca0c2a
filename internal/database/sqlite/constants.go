package sqlite

// Driver name registered by modernc.org/sqlite
const DriverName = "sqlite"

// Error messages
const (
	ErrMsgEmptyPath      = "empty sqlite path"
	ErrMsgOpenFailed     = "failed to open sqlite database: %w"
	ErrMsgPragmaFailed   = "failed to apply pragma %q: %w"
	ErrMsgSchemaFailed   = "failed to create schema: %w"
	ErrMsgGetFailed      = "failed to read key %s: %w"
	ErrMsgPutFailed      = "failed to write key %s: %w"
	ErrMsgDeleteFailed   = "failed to delete key %s: %w"
	ErrMsgCreateDirFails = "failed to create sqlite directory: %w"
)
