package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

	// ErrMsgHandlerPanicFormat is used when a handler panics
	ErrMsgHandlerPanicFormat = "handler for %s panicked: %v"
)
