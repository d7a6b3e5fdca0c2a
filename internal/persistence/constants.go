package persistence

// Error messages
const (
	ErrMsgEncodeFailed     = "failed to encode state: %w"
	ErrMsgDecodeFailed     = "%w: %v"
	ErrMsgNegativeField    = "%w: %s is negative"
	ErrMsgInvalidUnitState = "%w: unit %d has count %d level %d"
	ErrMsgNonFiniteField   = "%w: %s is not finite"
	ErrMsgLoadFailed       = "failed to load state: %w"
	ErrMsgSaveFailed       = "failed to save state: %w"
	ErrMsgResetFailed      = "failed to reset state: %w"
	ErrMsgNilState         = "state is nil"
)

// Log messages
const (
	LogMsgNoSavedState       = "No saved state, starting fresh"
	LogMsgMalformedState     = "Saved state is malformed, starting fresh"
	LogMsgStateRestored      = "Saved state restored"
	LogMsgSaveDropped        = "Save dropped, queue full"
	LogMsgSaveFailed         = "Background save failed"
	LogMsgStateEncodeFailed  = "Failed to encode state for saving"
	LogMsgStateSavedSync     = "State saved"
	LogMsgStateResetComplete = "Saved state cleared"
)
