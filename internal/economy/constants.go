package economy

// ==================== Error Messages ====================

// Formatted error messages for transitions
const (
	ErrMsgInsufficientFundsFmt = "%s costs %.4f, balance is %.4f: %w"
	ErrMsgShutdownTimedOut     = "shutdown timed out: %w"
	ErrMsgFinalSaveFailed      = "final save failed: %w"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgBuyUnitCalled       = "BuyUnit called"
	LogMsgUnitPurchased       = "Unit purchased"
	LogMsgUpgradeUnitCalled   = "UpgradeUnit called"
	LogMsgUnitUpgraded        = "Unit upgraded"
	LogMsgTransitionRejected  = "Transition rejected"
	LogMsgAchievementUnlocked = "Achievement unlocked"
	LogMsgPublishFailed       = "Failed to publish event"
	LogMsgClockRegression     = "Clock moved backwards, accrual clamped to zero"
	LogMsgShuttingDown        = "Economy service shutting down"
	LogMsgShutdownComplete    = "Economy service shutdown complete"
)

// ==================== Metric labels ====================

// Downstream stages whose failures are counted but never returned from a tick
const (
	StagePublish = "publish"
	StagePersist = "persist"
)

// Operation names used as metric labels
const (
	OperationBuy     = "buy"
	OperationUpgrade = "upgrade"
)
