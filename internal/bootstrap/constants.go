package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept beside the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingMinerTapper = "Starting MinerTapper"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Store Configuration
// =============================================================================

const (
	// SQLiteFileName is the database file created under STORE_PATH
	SQLiteFileName = "minertapper.db"

	// PersistWorkers is fixed at one so background writes land in order
	PersistWorkers = 1

	// TickWorkers is fixed at one so ticks never run concurrently
	TickWorkers = 1

	// TickQueueSize of one lets a slow tick skip the next instead of piling up
	TickQueueSize = 1
)

const (
	LogMsgStoreOpened            = "State store opened"
	LogMsgCatalogLoaded          = "Catalog loaded"
	LogMsgStateRestored          = "Economy state ready"
	LogMsgReferralPollerDisabled = "Referral stats polling disabled: no base URL"
	LogMsgReferralEnabled        = "Referral integration enabled"
	ErrMsgUnknownStoreDriver     = "unknown store driver %q"
	ErrMsgOpenStoreFailed        = "failed to open %s store: %w"
	ErrMsgMigrateFailed          = "failed to migrate postgres store: %w"
	ErrMsgLoadCatalogFailed      = "failed to load catalog: %w"
	ErrMsgLoadStateFailed        = "failed to load economy state: %w"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgPresenterSubscribed        = "Presenter subscribed"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgWorkerShutdownFailed = "Worker shutdown failed"
	LogMsgStoreCloseFailed     = "State store close failed"

	// Component names for shutdown logging
	ServiceNameEconomy = "economy"
	WorkerNameReferral = "referral_poller"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
