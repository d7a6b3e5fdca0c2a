package postgres

// Migrations
const (
	// MigrationsDir is the directory inside the embedded filesystem
	MigrationsDir = "migrations"
	// GooseDialect selects goose's PostgreSQL dialect
	GooseDialect = "postgres"
)

// Error Messages - State Store
const (
	ErrMsgGetStateFailed    = "failed to get state %s: %w"
	ErrMsgPutStateFailed    = "failed to put state %s: %w"
	ErrMsgDeleteStateFailed = "failed to delete state %s: %w"
	ErrMsgSetDialectFailed  = "failed to set migration dialect: %w"
	ErrMsgMigrateFailed     = "failed to apply migrations: %w"
)

// Log Messages
const (
	LogMsgMigrationsApplied = "Database migrations applied"
)
