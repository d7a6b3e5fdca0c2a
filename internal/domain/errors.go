package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgUnknownUnit       = "unknown unit"

	// Persistence errors
	ErrMsgMalformedState = "malformed persisted state"
	ErrMsgStateNotFound  = "persisted state not found"

	// Referral errors
	ErrMsgRemoteServiceUnavailable = "referral service unavailable"
	ErrMsgMissingIdentity          = "host identity unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInsufficientFunds is returned when a purchase or upgrade costs more than the balance.
	// No state is changed when it is returned.
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// ErrUnknownUnit signals a unit id that is not part of the catalog.
	ErrUnknownUnit = errors.New(ErrMsgUnknownUnit)

	// ErrMalformedState is returned when persisted data cannot be restored.
	ErrMalformedState = errors.New(ErrMsgMalformedState)

	// ErrStateNotFound is returned by stores when nothing was saved under a key.
	ErrStateNotFound = errors.New(ErrMsgStateNotFound)

	// ErrRemoteServiceUnavailable wraps every referral stats fetch failure.
	ErrRemoteServiceUnavailable = errors.New(ErrMsgRemoteServiceUnavailable)

	// ErrMissingIdentity means the host platform supplied no user identity.
	ErrMissingIdentity = errors.New(ErrMsgMissingIdentity)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
