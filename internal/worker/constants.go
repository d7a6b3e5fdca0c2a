package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
)

// ============================================================================
// Log Messages - Referral Poller
// ============================================================================

// Log messages for referral poller operations
const (
	LogMsgReferralPollerStarting  = "Referral poller starting"
	LogMsgReferralPollerDisabled  = "Referral poller disabled, no host identity"
	LogMsgReferralPollFailed      = "Referral poll failed"
	LogMsgReferralPollCompleted   = "Referral poll completed"
	LogMsgReferralPublishFailed   = "Failed to publish referral stats"
	LogMsgReferralPollerStopping  = "Shutting down referral poller"
	LogMsgReferralPollerStopped   = "Referral poller shutdown complete"
	LogMsgReferralPollerTimedOut  = "Referral poller shutdown timeout, a poll may still be running"
	DefaultReferralPollerInterval = 30 // seconds
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
