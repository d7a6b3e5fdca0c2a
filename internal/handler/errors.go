package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path parameter error messages
	ErrMsgInvalidUnitID = "Invalid unit id"
)

// Health check messages
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgStoreUnavailable     = "state store unreachable"
	ReadinessTimeoutSeconds = 2
)

// Log messages
const (
	LogMsgEncodeFailed          = "Failed to encode JSON response"
	LogMsgWriteFailed           = "Failed to write response buffer"
	LogMsgReadinessFailed       = "Readiness check failed"
	LogMsgStateRetrieved        = "Economy state retrieved"
	LogMsgUnitActionRejected    = "Unit action rejected"
	LogMsgUnitActionSucceeded   = "Unit action succeeded"
	LogMsgInvalidUnitID         = "Invalid unit id in path"
	LogMsgReferralPanelRendered = "Referral panel rendered"
)
